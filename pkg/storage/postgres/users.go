package postgres

import (
	"context"
	"easyrent/pkg/domain"
	"easyrent/pkg/storage"
	"fmt"
	"strings"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	usersTable = "users"
)

func (p *PgSQL) StoreUser(ctx context.Context, user domain.User) (*domain.User, error) {
	var row PgUser
	row.FromDomain(user)
	row.Email = strings.ToLower(row.Email)

	var stored PgUser
	if _, err := p.Builder.Insert(usersTable).
		Rows(row).
		Returning(&PgUser{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, fmt.Errorf("could not store user into pg: %w", mapError(err))
	}

	return stored.ToDomain(), nil
}

func (p *PgSQL) userBy(ctx context.Context, where ...goqu.Expression) (*domain.User, error) {
	var row PgUser
	found, err := p.Builder.From(usersTable).
		Where(where...).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) UserByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	return p.userBy(ctx, goqu.I("id").Eq(uuid.UUID(id)))
}

func (p *PgSQL) UserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return p.userBy(ctx, goqu.I("email").Eq(strings.ToLower(strings.TrimSpace(email))))
}

func (p *PgSQL) UserByPhone(ctx context.Context, phone string) (*domain.User, error) {
	return p.userBy(ctx, goqu.I("phone").Eq(strings.TrimSpace(phone)))
}

// UpdateUser sets only the provided fields and bumps updated_at.
func (p *PgSQL) UpdateUser(ctx context.Context, id domain.UserID, updates storage.UserUpdates) (*domain.User, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Email != nil {
		rec["email"] = strings.ToLower(*updates.Email)
	}
	if updates.Phone != nil {
		rec["phone"] = *updates.Phone
	}
	if updates.PasswordHash != nil {
		rec["password_hash"] = *updates.PasswordHash
	}
	if updates.FirstName != nil {
		rec["first_name"] = *updates.FirstName
	}
	if updates.LastName != nil {
		rec["last_name"] = *updates.LastName
	}
	if updates.Patronymic != nil {
		rec["patronymic"] = nullString(*updates.Patronymic)
	}
	if updates.BirthDate != nil {
		rec["birth_date"] = nullTime(*updates.BirthDate)
	}
	if updates.PhotoID != nil {
		rec["photo_id"] = nullString(string(*updates.PhotoID))
	}
	if updates.PassportID != nil {
		rec["passport_id"] = nullString(string(*updates.PassportID))
	}
	if updates.Active != nil {
		rec["is_active"] = *updates.Active
	}
	if updates.Verified != nil {
		rec["is_verified"] = *updates.Verified
	}

	var row PgUser
	found, err := p.Builder.Update(usersTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgUser{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update user in pg: %w", mapError(err))
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) DeleteUser(ctx context.Context, id domain.UserID) (bool, error) {
	res, err := p.Builder.Delete(usersTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not delete user in pg: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not get affected rows: %w", err)
	}

	return n > 0, nil
}

func (p *PgSQL) UserRating(ctx context.Context, id domain.UserID) (domain.Rating, error) {
	var row struct {
		Average float64 `db:"average"`
		Count   int64   `db:"count"`
	}
	if _, err := p.Builder.From(reviewsTable).
		Select(
			goqu.L("COALESCE(AVG(rating), 0)").As("average"),
			goqu.COUNT(goqu.Star()).As("count"),
		).
		Where(goqu.I("target_id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row); err != nil {
		return domain.Rating{}, fmt.Errorf("could not fetch user rating from pg: %w", err)
	}

	return domain.Rating{Average: row.Average, Count: row.Count}, nil
}

// UserStats returns users ordered by registration date, newest first.
func (p *PgSQL) UserStats(ctx context.Context, filter storage.UserFilter) ([]domain.UserStats, error) {
	var w []goqu.Expression
	if filter.ID != nil {
		w = append(w, goqu.I("u.id").Eq(uuid.UUID(*filter.ID)))
	}
	if filter.FirstName != "" {
		w = append(w, goqu.I("u.first_name").ILike(containsPattern(filter.FirstName)))
	}
	if filter.LastName != "" {
		w = append(w, goqu.I("u.last_name").ILike(containsPattern(filter.LastName)))
	}

	ds := p.Builder.From(goqu.T(usersTable).As("u")).
		Select(
			goqu.L("u.*"),
			goqu.L("(SELECT COUNT(*) FROM listings l WHERE l.owner_id = u.id)").As("listing_count"),
			goqu.L("(SELECT COUNT(*) FROM reviews r WHERE r.target_id = u.id)").As("review_count"),
			goqu.L("(SELECT COALESCE(AVG(r.rating), 0) FROM reviews r WHERE r.target_id = u.id)").As("average_rating"),
		).
		Where(w...).
		Order(goqu.I("u.created_at").Desc(), goqu.I("u.id").Desc())
	if filter.Limit > 0 {
		ds = ds.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		ds = ds.Offset(filter.Offset)
	}

	var rows []PgUserStats
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch user stats from pg: %w", err)
	}

	out := make([]domain.UserStats, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.ToDomain())
	}

	return out, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`) //nolint: gochecknoglobals

func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

func prefixPattern(s string) string {
	return likeEscaper.Replace(strings.ToLower(s)) + "%"
}
