package storage

import (
	"context"
	"easyrent/pkg/domain"
)

type LocationStorage interface {
	// CitiesByPrefix matches the name in the given language case-insensitively.
	CitiesByPrefix(ctx context.Context, lang domain.Language, prefix string, limit uint) ([]domain.City, error)
	// CitiesByRefs returns the cities matching one of refs exactly on both
	// name and oblast.
	CitiesByRefs(ctx context.Context, refs []domain.CityRef) ([]domain.City, error)
	// CityByName returns nil when not found. An empty oblast matches any.
	CityByName(ctx context.Context, name, oblast string) (*domain.City, error)
	CityByID(ctx context.Context, id int64) (*domain.City, error)
	StreetByID(ctx context.Context, id int64) (*domain.Street, error)
	// StreetsByPrefix returns the streets of a city whose name starts with
	// prefix, case-insensitively. A leading street type such as "вул." is
	// ignored both when matching and when ordering.
	StreetsByPrefix(ctx context.Context, cityID int64, prefix string, limit uint) ([]domain.Street, error)
	// StoreCity inserts the city or returns the existing one with the same
	// name and oblast.
	StoreCity(ctx context.Context, city domain.City) (*domain.City, error)
	// StoreStreets inserts the streets that do not exist yet and returns how
	// many were added.
	StoreStreets(ctx context.Context, cityID int64, names ...string) (int64, error)
}
