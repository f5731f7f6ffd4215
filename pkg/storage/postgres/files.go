package postgres

import (
	"context"
	"database/sql"
	"easyrent/pkg/domain"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

type PgFileUsage struct {
	Kind    string         `db:"kind"`
	OwnerID uuid.UUID      `db:"owner_id"`
	Status  sql.NullString `db:"status"`
}

func (p PgFileUsage) ToDomain() domain.FileUsage {
	return domain.FileUsage{
		Kind:          domain.FileKind(p.Kind),
		OwnerID:       domain.UserID(p.OwnerID),
		ListingStatus: domain.ListingStatus(p.Status.String),
	}
}

func fileKind(kind domain.FileKind) interface{} {
	return goqu.L("'" + string(kind) + "'::text").As("kind")
}

// FileUsages looks the id up in every column that stores file ids.
func (p *PgSQL) FileUsages(ctx context.Context, id domain.FileID) ([]domain.FileUsage, error) {
	images := p.Builder.From(goqu.T(listingImagesTable).As("i")).
		Join(goqu.T(listingsTable).As("l"), goqu.On(goqu.I("l.id").Eq(goqu.I("i.listing_id")))).
		Select(fileKind(domain.FileKindListingImage), goqu.I("l.owner_id").As("owner_id"), goqu.I("l.status").As("status")).
		Where(goqu.I("i.file_id").Eq(string(id)))
	documents := p.Builder.From(listingsTable).
		Select(fileKind(domain.FileKindOwnershipDocument), goqu.I("owner_id"), goqu.I("status")).
		Where(goqu.I("ownership_document_id").Eq(string(id)))
	photos := p.Builder.From(usersTable).
		Select(fileKind(domain.FileKindUserPhoto), goqu.I("id").As("owner_id"), goqu.L("NULL::text").As("status")).
		Where(goqu.I("photo_id").Eq(string(id)))
	passports := p.Builder.From(usersTable).
		Select(fileKind(domain.FileKindPassport), goqu.I("id").As("owner_id"), goqu.L("NULL::text").As("status")).
		Where(goqu.I("passport_id").Eq(string(id)))

	var rows []PgFileUsage
	if err := images.UnionAll(documents).UnionAll(photos).UnionAll(passports).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch file usages from pg: %w", err)
	}

	out := make([]domain.FileUsage, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.ToDomain())
	}

	return out, nil
}
