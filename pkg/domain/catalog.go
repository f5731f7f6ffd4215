package domain

// CatalogKind names a read-only dictionary.
type CatalogKind string

const (
	CatalogListingTypes  CatalogKind = "listing_types"
	CatalogHeatingTypes  CatalogKind = "heating_types"
	CatalogTagCategories CatalogKind = "listing_tag_categories"
	CatalogReviewTags    CatalogKind = "review_tags"
)

// CatalogItem is an entry of a dictionary.
type CatalogItem struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ListingTag is a listing feature tag grouped by category.
type ListingTag struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	CategoryID int64  `json:"categoryId"`
}
