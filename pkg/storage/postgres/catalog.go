package postgres

import (
	"context"
	"easyrent/pkg/domain"
	"fmt"

	"github.com/doug-martin/goqu/v9"
)

const (
	listingTagsTable = "listing_tags"
)

var catalogTables = map[domain.CatalogKind]string{ //nolint: gochecknoglobals
	domain.CatalogListingTypes:  "listing_types",
	domain.CatalogHeatingTypes:  "heating_types",
	domain.CatalogTagCategories: "listing_tag_categories",
	domain.CatalogReviewTags:    "review_tags",
}

func (p *PgSQL) CatalogItems(ctx context.Context, kind domain.CatalogKind) ([]domain.CatalogItem, error) {
	table, ok := catalogTables[kind]
	if !ok {
		return nil, fmt.Errorf("unknown catalog %q", kind)
	}

	var rows []PgCatalogItem
	if err := p.Builder.From(table).
		Order(goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch %s from pg: %w", table, err)
	}

	out := make([]domain.CatalogItem, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.CatalogItem{ID: row.ID, Name: row.Name})
	}

	return out, nil
}

func (p *PgSQL) ListingTags(ctx context.Context) ([]domain.ListingTag, error) {
	var rows []PgListingTag
	if err := p.Builder.From(listingTagsTable).
		Order(goqu.I("category_id").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch listing tags from pg: %w", err)
	}

	out := make([]domain.ListingTag, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.ListingTag{ID: row.ID, Name: row.Name, CategoryID: row.CategoryID})
	}

	return out, nil
}
