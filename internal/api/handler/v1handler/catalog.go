package v1handler

import (
	"io"
	"net/http"
	"strconv"

	"easyrent/internal/location"
	"easyrent/pkg/domain"

	"github.com/gin-gonic/gin"
)

const (
	catalogListingTags     = "listing_tags"
	catalogListingStatuses = "listing_statuses"
)

// Catalog serves every dictionary under one route.
func (h Handler) Catalog(c *gin.Context) {
	ctx := c.Request.Context()

	switch kind := c.Param("kind"); kind {
	case catalogListingStatuses:
		c.JSON(http.StatusOK, h.deps.Catalog.ListingStatuses())
	case catalogListingTags:
		tags, err := h.deps.Catalog.ListingTags(ctx)
		if err != nil {
			h.fail(c, err)

			return
		}
		c.JSON(http.StatusOK, tags)
	default:
		items, err := h.deps.Catalog.Items(ctx, domain.CatalogKind(kind))
		if err != nil {
			h.fail(c, err)

			return
		}
		c.JSON(http.StatusOK, items)
	}
}

func (h Handler) Cities(c *gin.Context) {
	lang := domain.Language(c.DefaultQuery("lang", string(domain.LanguageUK)))

	cities, err := h.deps.Locations.Cities(c.Request.Context(), c.Query("q"), lang)
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusOK, cities)
}

// Streets takes either cityId or city with an optional oblast.
func (h Handler) Streets(c *gin.Context) {
	query := location.StreetQuery{
		City:   c.Query("city"),
		Oblast: c.Query("oblast"),
		Q:      c.Query("q"),
	}
	if raw := c.Query("cityId"); raw != "" {
		cityID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.badRequest(c, err)

			return
		}
		query.CityID = cityID
	}

	streets, err := h.deps.Locations.Streets(c.Request.Context(), query)
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusOK, streets)
}

// DownloadFile streams an image, avatar or document the caller may read.
func (h Handler) DownloadFile(c *gin.Context) {
	ctx := c.Request.Context()
	file, err := h.deps.Media.Open(ctx, GetCallerFromContext(ctx), domain.FileID(c.Param("id")))
	if err != nil {
		h.fail(c, err)

		return
	}
	defer func() { _ = file.Content.Close() }()

	c.Header("Content-Disposition", "inline; filename="+strconv.Quote(file.Name))
	c.DataFromReader(http.StatusOK, file.Size, file.ContentType, io.Reader(file.Content), nil)
}
