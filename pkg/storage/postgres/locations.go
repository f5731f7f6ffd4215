package postgres

import (
	"context"
	"easyrent/pkg/domain"
	"fmt"
	"strings"

	"github.com/doug-martin/goqu/v9"
)

const (
	citiesTable  = "cities"
	streetsTable = "streets"
)

func cityNameColumn(lang domain.Language) string {
	if lang == domain.LanguageEN {
		return "name_en"
	}

	return "name"
}

func (p *PgSQL) cities(ctx context.Context, ds *goqu.SelectDataset) ([]domain.City, error) {
	var rows []PgCity
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch cities from pg: %w", err)
	}

	out := make([]domain.City, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.ToDomain())
	}

	return out, nil
}

func (p *PgSQL) CitiesByPrefix(ctx context.Context,
	lang domain.Language,
	prefix string,
	limit uint) ([]domain.City, error) {
	col := cityNameColumn(lang)

	return p.cities(ctx, p.Builder.From(citiesTable).
		Where(goqu.L("LOWER(?) LIKE ?", goqu.I(col), prefixPattern(prefix))).
		Order(goqu.L("LENGTH(?)", goqu.I(col)).Asc(), goqu.I(col).Asc()).
		Limit(limit))
}

func (p *PgSQL) CitiesByRefs(ctx context.Context, refs []domain.CityRef) ([]domain.City, error) {
	if len(refs) == 0 {
		return nil, nil
	}

	match := make([]goqu.Expression, 0, len(refs))
	for _, ref := range refs {
		match = append(match, goqu.And(
			goqu.I("name").Eq(ref.Name),
			goqu.I("oblast").Eq(ref.Oblast),
		))
	}

	return p.cities(ctx, p.Builder.From(citiesTable).
		Where(goqu.Or(match...)).
		Order(goqu.I("id").Asc()))
}

func (p *PgSQL) CityByName(ctx context.Context, name, oblast string) (*domain.City, error) {
	w := []goqu.Expression{
		goqu.L("LOWER(name) = ?", strings.ToLower(strings.TrimSpace(name))),
	}
	if oblast != "" {
		w = append(w, goqu.L("LOWER(oblast) = ?", strings.ToLower(strings.TrimSpace(oblast))))
	}

	var row PgCity
	found, err := p.Builder.From(citiesTable).
		Where(w...).
		Order(goqu.I("id").Asc()).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch city by name: %w", err)
	}
	if !found {
		return nil, nil
	}
	city := row.ToDomain()

	return &city, nil
}

func (p *PgSQL) CityByID(ctx context.Context, id int64) (*domain.City, error) {
	var row PgCity
	found, err := p.Builder.From(citiesTable).
		Where(goqu.I("id").Eq(id)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch city by id: %w", err)
	}
	if !found {
		return nil, nil
	}
	city := row.ToDomain()

	return &city, nil
}

func (p *PgSQL) StreetByID(ctx context.Context, id int64) (*domain.Street, error) {
	var row PgStreet
	found, err := p.Builder.From(streetsTable).
		Where(goqu.I("id").Eq(id)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch street by id: %w", err)
	}
	if !found {
		return nil, nil
	}
	street := row.ToDomain()

	return &street, nil
}

func (p *PgSQL) StreetsByPrefix(ctx context.Context,
	cityID int64,
	prefix string,
	limit uint) ([]domain.Street, error) {
	bare := goqu.L(`LOWER(REGEXP_REPLACE(name, '^(вул\.|просп\.|пр\.|пров\.|пл\.|бул\.)\s*', '', 'i'))`)

	var rows []PgStreet
	if err := p.Builder.From(streetsTable).
		Where(
			goqu.I("city_id").Eq(cityID),
			goqu.Or(
				goqu.L("LOWER(name) LIKE ?", prefixPattern(prefix)),
				goqu.L("? LIKE ?", bare, prefixPattern(prefix)),
			),
		).
		Order(bare.Asc(), goqu.I("name").Asc()).
		Limit(limit).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch streets from pg: %w", err)
	}

	out := make([]domain.Street, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.ToDomain())
	}

	return out, nil
}

func (p *PgSQL) StoreCity(ctx context.Context, city domain.City) (*domain.City, error) {
	row := PgCity{Name: city.Name, NameEn: nullString(city.NameEn), Oblast: city.Oblast}

	var stored PgCity
	found, err := p.Builder.Insert(citiesTable).
		Rows(row).
		OnConflict(goqu.DoNothing()).
		Returning(&PgCity{}).
		Executor().ScanStructContext(ctx, &stored)
	if err != nil {
		return nil, fmt.Errorf("could not store city into pg: %w", err)
	}
	if !found {
		// already imported
		return p.CityByName(ctx, city.Name, city.Oblast)
	}
	res := stored.ToDomain()

	return &res, nil
}

func (p *PgSQL) StoreStreets(ctx context.Context, cityID int64, names ...string) (int64, error) {
	if len(names) == 0 {
		return 0, nil
	}

	rows := make([]PgStreet, 0, len(names))
	for _, name := range names {
		rows = append(rows, PgStreet{CityID: cityID, Name: name})
	}

	res, err := p.Builder.Insert(streetsTable).
		Rows(rows).
		OnConflict(goqu.DoNothing()).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not store streets into pg: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not get affected rows: %w", err)
	}

	return n, nil
}
