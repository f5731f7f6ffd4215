package storage

import (
	"context"
	"easyrent/pkg/domain"
)

type CatalogStorage interface {
	// CatalogItems lists a dictionary ordered by id.
	CatalogItems(ctx context.Context, kind domain.CatalogKind) ([]domain.CatalogItem, error)
	ListingTags(ctx context.Context) ([]domain.ListingTag, error)
}
