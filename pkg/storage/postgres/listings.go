package postgres

import (
	"context"
	"easyrent/pkg/domain"
	"easyrent/pkg/storage"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
)

const (
	listingsTable        = "listings"
	listingImagesTable   = "listing_images"
	listingTagLinksTable = "listing_tag_links"
)

// listingColumns are the columns of the listings table, in select order.
var listingColumns = []string{ //nolint: gochecknoglobals
	"id", "owner_id", "name", "description", "price", "city_id", "street_id", "building", "flat",
	"floor", "all_floors", "rooms", "bathrooms", "square", "communal", "latitude", "longitude",
	"heating_type_id", "listing_type_id", "status", "discard_reason", "ownership_document_id",
	"created_at", "updated_at",
}

// listings builds the select every listing read goes through: the listing row
// with city and street names, the ordered image ids and the tag ids.
func (p *PgSQL) listings() *goqu.SelectDataset {
	cols := make([]interface{}, 0, len(listingColumns)+4)
	for _, c := range listingColumns {
		cols = append(cols, goqu.I("l."+c).As(c))
	}
	cols = append(cols,
		goqu.I("c.name").As("city_name"),
		goqu.I("s.name").As("street_name"),
		goqu.L(`COALESCE((SELECT json_agg(i.file_id ORDER BY i.position) FROM listing_images i `+
			`WHERE i.listing_id = l.id), '[]'::json)`).As("images"),
		goqu.L(`COALESCE((SELECT json_agg(t.tag_id ORDER BY t.tag_id) FROM listing_tag_links t `+
			`WHERE t.listing_id = l.id), '[]'::json)`).As("tags"),
	)

	return p.Builder.From(goqu.T(listingsTable).As("l")).
		Join(goqu.T(citiesTable).As("c"), goqu.On(goqu.I("c.id").Eq(goqu.I("l.city_id")))).
		Join(goqu.T(streetsTable).As("s"), goqu.On(goqu.I("s.id").Eq(goqu.I("l.street_id")))).
		Select(cols...)
}

func (p *PgSQL) replaceListingTags(ctx context.Context, id uuid.UUID, tagIDs []int64) error {
	if _, err := p.Builder.Delete(listingTagLinksTable).
		Where(goqu.I("listing_id").Eq(id)).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not delete listing tags in pg: %w", err)
	}
	if len(tagIDs) == 0 {
		return nil
	}

	rows := make([]goqu.Record, 0, len(tagIDs))
	seen := make(map[int64]struct{}, len(tagIDs))
	for _, tagID := range tagIDs {
		if _, ok := seen[tagID]; ok {
			continue
		}
		seen[tagID] = struct{}{}
		rows = append(rows, goqu.Record{"listing_id": id, "tag_id": tagID})
	}
	if _, err := p.Builder.Insert(listingTagLinksTable).
		Rows(rows).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not store listing tags into pg: %w", mapError(err))
	}

	return nil
}

// StoreListing must run inside a transaction for the row, images and tags to
// be written atomically.
func (p *PgSQL) StoreListing(ctx context.Context, listing domain.Listing) (*domain.Listing, error) {
	var row PgListing
	row.FromDomain(listing)

	var id uuid.UUID
	if _, err := p.Builder.Insert(listingsTable).
		Rows(row).
		Returning("id").
		Executor().ScanValContext(ctx, &id); err != nil {
		return nil, fmt.Errorf("could not store listing into pg: %w", mapError(err))
	}

	if len(listing.Images) > 0 {
		images := make([]goqu.Record, 0, len(listing.Images))
		for i, fileID := range listing.Images {
			images = append(images, goqu.Record{"listing_id": id, "file_id": string(fileID), "position": i})
		}
		if _, err := p.Builder.Insert(listingImagesTable).
			Rows(images).
			Executor().ExecContext(ctx); err != nil {
			return nil, fmt.Errorf("could not store listing images into pg: %w", err)
		}
	}

	if err := p.replaceListingTags(ctx, id, listing.TagIDs); err != nil {
		return nil, err
	}

	return p.ListingByID(ctx, domain.ListingID(id))
}

func (p *PgSQL) ListingByID(ctx context.Context, id domain.ListingID) (*domain.Listing, error) {
	var row PgListing
	found, err := p.listings().
		Where(goqu.I("l.id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch listing by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func listingFilterExpressions(filter storage.ListingFilter) []goqu.Expression {
	var w []goqu.Expression
	eq := func(col string, v *int64) {
		if v != nil {
			w = append(w, goqu.I(col).Eq(*v))
		}
	}
	eqInt := func(col string, v *int) {
		if v != nil {
			w = append(w, goqu.I(col).Eq(*v))
		}
	}
	gte := func(col string, v interface{}) { w = append(w, goqu.I(col).Gte(v)) }
	lte := func(col string, v interface{}) { w = append(w, goqu.I(col).Lte(v)) }

	c := filter.ListingCriteria
	eq("l.city_id", c.CityID)
	eq("l.listing_type_id", c.ListingTypeID)
	eq("l.heating_type_id", c.HeatingTypeID)
	eqInt("l.rooms", c.Rooms)
	eqInt("l.bathrooms", c.Bathrooms)
	if c.PriceMin != nil {
		gte("l.price", *c.PriceMin)
	}
	if c.PriceMax != nil {
		lte("l.price", *c.PriceMax)
	}
	if c.FloorMin != nil {
		gte("l.floor", *c.FloorMin)
	}
	if c.FloorMax != nil {
		lte("l.floor", *c.FloorMax)
	}
	if c.AllFloorsMin != nil {
		gte("l.all_floors", *c.AllFloorsMin)
	}
	if c.AllFloorsMax != nil {
		lte("l.all_floors", *c.AllFloorsMax)
	}
	if c.SquareMin != nil {
		gte("l.square", *c.SquareMin)
	}
	if c.SquareMax != nil {
		lte("l.square", *c.SquareMax)
	}
	if filter.CommunalMin != nil {
		gte("l.communal", *filter.CommunalMin)
	}
	if filter.CommunalMax != nil {
		lte("l.communal", *filter.CommunalMax)
	}
	for _, tagID := range c.TagIDs {
		w = append(w, goqu.L(
			"EXISTS (SELECT 1 FROM listing_tag_links t WHERE t.listing_id = l.id AND t.tag_id = ?)", tagID))
	}

	if filter.City != "" {
		w = append(w, goqu.I("c.name").ILike(containsPattern(filter.City)))
	}
	if filter.Street != "" {
		w = append(w, goqu.I("s.name").ILike(containsPattern(filter.Street)))
	}
	if filter.Building != "" {
		w = append(w, goqu.I("l.building").ILike(containsPattern(filter.Building)))
	}
	if filter.OwnerID != nil {
		w = append(w, goqu.I("l.owner_id").Eq(uuid.UUID(*filter.OwnerID)))
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, s := range filter.Statuses {
			statuses = append(statuses, string(s))
		}
		w = append(w, goqu.I("l.status").In(statuses))
	}

	return w
}

// SearchListings orders by created_at DESC, id DESC and fetches one extra row
// to find out whether a next page exists.
func (p *PgSQL) SearchListings(ctx context.Context,
	filter storage.ListingFilter,
	cursor storage.ListingCursor,
	limit uint) (storage.ListingPage, error) {
	w := listingFilterExpressions(filter)
	if !cursor.IsZero() {
		w = append(w, goqu.L("(l.created_at, l.id) < (?, ?)", cursor.CreatedAt, uuid.UUID(cursor.ID)))
	}

	var rows []PgListing
	if err := p.listings().
		Where(w...).
		Order(goqu.I("l.created_at").Desc(), goqu.I("l.id").Desc()).
		Limit(limit+1).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.ListingPage{}, fmt.Errorf("could not search listings in pg: %w", err)
	}

	var nextCursor *storage.ListingCursor
	if uint(len(rows)) > limit {
		rows = rows[:limit]
		last := rows[len(rows)-1]
		nextCursor = &storage.ListingCursor{CreatedAt: last.CreatedAt, ID: domain.ListingID(last.ID)}
	}

	listings, err := pgListingsToDomain(rows)
	if err != nil {
		return storage.ListingPage{}, err
	}

	return storage.ListingPage{Listings: listings, NextCursor: nextCursor}, nil
}

func (p *PgSQL) UpdateListing(ctx context.Context, listing domain.Listing) (*domain.Listing, error) {
	var row PgListing
	row.FromDomain(listing)

	var id uuid.UUID
	found, err := p.Builder.Update(listingsTable).
		Set(goqu.Record{
			"name":                  row.Name,
			"description":           row.Description,
			"price":                 row.Price,
			"city_id":               row.CityID,
			"street_id":             row.StreetID,
			"building":              row.Building,
			"flat":                  row.Flat,
			"floor":                 row.Floor,
			"all_floors":            row.AllFloors,
			"rooms":                 row.Rooms,
			"bathrooms":             row.Bathrooms,
			"square":                row.Square,
			"communal":              row.Communal,
			"latitude":              row.Latitude,
			"longitude":             row.Longitude,
			"heating_type_id":       row.HeatingTypeID,
			"listing_type_id":       row.ListingTypeID,
			"status":                row.Status,
			"discard_reason":        row.DiscardReason,
			"ownership_document_id": row.OwnershipDocumentID,
			"updated_at":            goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.I("id").Eq(row.ID)).
		Returning("id").
		Executor().ScanValContext(ctx, &id)
	if err != nil {
		return nil, fmt.Errorf("could not update listing in pg: %w", mapError(err))
	}
	if !found {
		return nil, nil
	}

	if err := p.replaceListingTags(ctx, id, listing.TagIDs); err != nil {
		return nil, err
	}

	return p.ListingByID(ctx, listing.ID)
}

func (p *PgSQL) TransitionListing(ctx context.Context,
	id domain.ListingID,
	from []domain.ListingStatus,
	to domain.ListingStatus,
	reason string) (*domain.Listing, error) {
	statuses := make([]string, 0, len(from))
	for _, s := range from {
		statuses = append(statuses, string(s))
	}

	var updated uuid.UUID
	found, err := p.Builder.Update(listingsTable).
		Set(goqu.Record{
			"status":         string(to),
			"discard_reason": nullString(reason),
			"updated_at":     goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("status").In(statuses),
		).
		Returning("id").
		Executor().ScanValContext(ctx, &updated)
	if err != nil {
		return nil, fmt.Errorf("could not transition listing in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return p.ListingByID(ctx, id)
}

func (p *PgSQL) ListingIDsByStatus(ctx context.Context,
	status domain.ListingStatus,
	limit uint) ([]domain.ListingID, error) {
	var ids []uuid.UUID
	if err := p.Builder.From(listingsTable).
		Select("id").
		Where(goqu.I("status").Eq(string(status))).
		Order(goqu.I("created_at").Asc()).
		Limit(limit).
		Executor().ScanValsContext(ctx, &ids); err != nil {
		return nil, fmt.Errorf("could not fetch listing ids by status from pg: %w", err)
	}

	out := make([]domain.ListingID, 0, len(ids))
	for _, id := range ids {
		out = append(out, domain.ListingID(id))
	}

	return out, nil
}

func lastActivity() exp.LiteralExpression {
	return goqu.L("COALESCE(l.updated_at, l.created_at)")
}

func (p *PgSQL) StaleListings(ctx context.Context, before time.Time, limit uint) ([]domain.Listing, error) {
	var rows []PgListing
	if err := p.listings().
		Where(
			goqu.I("l.status").Eq(string(domain.ListingStatusActive)),
			lastActivity().Lt(before),
		).
		Order(lastActivity().Asc()).
		Limit(limit).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch stale listings from pg: %w", err)
	}

	return pgListingsToDomain(rows)
}

func (p *PgSQL) DeleteListing(ctx context.Context, id domain.ListingID) (*domain.Listing, error) {
	listing, err := p.ListingByID(ctx, id)
	if err != nil || listing == nil {
		return nil, err
	}

	if _, err := p.Builder.Delete(listingsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx); err != nil {
		return nil, fmt.Errorf("could not delete listing in pg: %w", err)
	}

	return listing, nil
}
