// Package catalog serves the read-only dictionaries listings and reviews
// refer to.
package catalog

import (
	"context"
	"fmt"

	"easyrent/pkg/domain"
	"easyrent/pkg/serrors"
	"easyrent/pkg/storage"
)

// Service lists dictionary entries.
//
//go:generate mockgen -package mockcatalog -source=catalog.go -destination=mock/mockcatalog.go
type Service interface {
	// Items lists one of the id/name dictionaries.
	Items(ctx context.Context, kind domain.CatalogKind) ([]domain.CatalogItem, error)
	ListingTags(ctx context.Context) ([]domain.ListingTag, error)
	ListingStatuses() []domain.ListingStatus
}

type service struct {
	storage storage.Storage
}

func New(storage storage.Storage) Service {
	return &service{storage: storage}
}

func (s *service) Items(ctx context.Context, kind domain.CatalogKind) ([]domain.CatalogItem, error) {
	switch kind {
	case domain.CatalogListingTypes, domain.CatalogHeatingTypes, domain.CatalogTagCategories, domain.CatalogReviewTags:
	default:
		return nil, serrors.With(serrors.ErrNotFound, "unknown catalog %q", kind)
	}

	items, err := s.storage.CatalogItems(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("could not list %s: %w", kind, err)
	}

	return items, nil
}

func (s *service) ListingTags(ctx context.Context) ([]domain.ListingTag, error) {
	tags, err := s.storage.ListingTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list listing tags: %w", err)
	}

	return tags, nil
}

func (s *service) ListingStatuses() []domain.ListingStatus {
	return domain.ListingStatuses
}
