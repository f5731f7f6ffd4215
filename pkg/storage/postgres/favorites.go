package postgres

import (
	"context"
	"easyrent/pkg/domain"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	favoritesTable = "favorites"
)

func (p *PgSQL) StoreFavorite(ctx context.Context, favorite domain.Favorite) (*domain.Favorite, error) {
	var stored PgFavorite
	if _, err := p.Builder.Insert(favoritesTable).
		Rows(PgFavorite{
			UserID:    uuid.UUID(favorite.UserID),
			ListingID: uuid.UUID(favorite.ListingID),
		}).
		Returning(&PgFavorite{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, fmt.Errorf("could not store favorite into pg: %w", mapError(err))
	}

	res := stored.ToDomain()

	return &res, nil
}

func (p *PgSQL) Favorites(ctx context.Context, userID domain.UserID) ([]domain.Favorite, error) {
	var rows []PgFavorite
	if err := p.Builder.From(favoritesTable).
		Where(goqu.I("user_id").Eq(uuid.UUID(userID))).
		Order(goqu.I("created_at").Desc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch favorites from pg: %w", err)
	}

	out := make([]domain.Favorite, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.ToDomain())
	}

	return out, nil
}

func (p *PgSQL) deleteFavorites(ctx context.Context, where ...goqu.Expression) (bool, error) {
	res, err := p.Builder.Delete(favoritesTable).
		Where(where...).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not delete favorite in pg: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not get affected rows: %w", err)
	}

	return n > 0, nil
}

func (p *PgSQL) DeleteFavorite(ctx context.Context, userID domain.UserID, id domain.FavoriteID) (bool, error) {
	return p.deleteFavorites(ctx,
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("user_id").Eq(uuid.UUID(userID)))
}

func (p *PgSQL) DeleteFavoriteByListing(ctx context.Context,
	userID domain.UserID,
	listingID domain.ListingID) (bool, error) {
	return p.deleteFavorites(ctx,
		goqu.I("listing_id").Eq(uuid.UUID(listingID)),
		goqu.I("user_id").Eq(uuid.UUID(userID)))
}
