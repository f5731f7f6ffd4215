package postgres

import (
	"context"
	"easyrent/pkg/domain"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	subscriptionsTable = "subscriptions"
)

func (p *PgSQL) StoreSubscription(ctx context.Context,
	subscription domain.Subscription) (*domain.Subscription, error) {
	var row PgSubscription
	if err := row.FromDomain(subscription); err != nil {
		return nil, err
	}

	var stored PgSubscription
	if _, err := p.Builder.Insert(subscriptionsTable).
		Rows(row).
		Returning(&PgSubscription{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, fmt.Errorf("could not store subscription into pg: %w", mapError(err))
	}

	return stored.ToDomain()
}

func (p *PgSQL) Subscriptions(ctx context.Context, userID domain.UserID) ([]domain.Subscription, error) {
	var rows []PgSubscription
	if err := p.Builder.From(subscriptionsTable).
		Where(goqu.I("user_id").Eq(uuid.UUID(userID))).
		Order(goqu.I("created_at").Desc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch subscriptions from pg: %w", err)
	}

	return pgSubscriptionsToDomain(rows)
}

func (p *PgSQL) SubscriptionByID(ctx context.Context,
	userID domain.UserID,
	id domain.SubscriptionID) (*domain.Subscription, error) {
	var row PgSubscription
	found, err := p.Builder.From(subscriptionsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch subscription by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) UpdateSubscription(ctx context.Context,
	subscription domain.Subscription) (*domain.Subscription, error) {
	var row PgSubscription
	if err := row.FromDomain(subscription); err != nil {
		return nil, err
	}

	var stored PgSubscription
	found, err := p.Builder.Update(subscriptionsTable).
		Set(goqu.Record{"criteria": row.Criteria}).
		Where(
			goqu.I("id").Eq(row.ID),
			goqu.I("user_id").Eq(row.UserID),
		).
		Returning(&PgSubscription{}).
		Executor().ScanStructContext(ctx, &stored)
	if err != nil {
		return nil, fmt.Errorf("could not update subscription in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return stored.ToDomain()
}

func (p *PgSQL) DeleteSubscription(ctx context.Context, userID domain.UserID, id domain.SubscriptionID) (bool, error) {
	res, err := p.Builder.Delete(subscriptionsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
		).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not delete subscription in pg: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not get affected rows: %w", err)
	}

	return n > 0, nil
}

// SubscriptionCandidates pre-filters on the indexed-by-intent criteria, city and
// listing type. The listing owner is never notified about their own listing.
func (p *PgSQL) SubscriptionCandidates(ctx context.Context, listing domain.Listing) ([]domain.Subscription, error) {
	var rows []PgSubscription
	if err := p.Builder.From(subscriptionsTable).
		Where(
			goqu.I("user_id").Neq(uuid.UUID(listing.OwnerID)),
			goqu.Or(
				goqu.L("criteria->'cityId' IS NULL"),
				goqu.L("(criteria->>'cityId')::bigint = ?", listing.CityID),
			),
			goqu.Or(
				goqu.L("criteria->'listingTypeId' IS NULL"),
				goqu.L("(criteria->>'listingTypeId')::bigint = ?", listing.ListingTypeID),
			),
		).
		Order(goqu.I("created_at").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch subscription candidates from pg: %w", err)
	}

	return pgSubscriptionsToDomain(rows)
}
