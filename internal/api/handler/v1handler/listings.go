package v1handler

import (
	"encoding/json"
	"net/http"

	"easyrent/internal/listing"
	"easyrent/pkg/domain"
	"easyrent/pkg/filestore"
	"easyrent/pkg/serrors"
	"easyrent/pkg/storage"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// ListingRequest is the editable part of a listing. On create it is sent as
// the "listing" field of a multipart form next to the files.
type ListingRequest struct {
	Name          string   `binding:"required" json:"name"`
	Description   string   `binding:"required" json:"description"`
	Price         int64    `json:"price"`
	CityID        int64    `binding:"required" json:"cityId"`
	StreetID      int64    `binding:"required" json:"streetId"`
	Building      string   `binding:"required" json:"building"`
	Flat          string   `json:"flat"`
	Floor         int      `json:"floor"`
	AllFloors     int      `json:"allFloors"`
	Rooms         int      `json:"rooms"`
	Bathrooms     int      `json:"bathrooms"`
	Square        float64  `json:"square"`
	Communal      int64    `json:"communal"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
	HeatingTypeID int64    `binding:"required" json:"heatingTypeId"`
	ListingTypeID int64    `binding:"required" json:"listingTypeId"`
	TagIDs        []int64  `json:"tagIds"`
}

func (r ListingRequest) input() listing.Input {
	return listing.Input{
		Name:          r.Name,
		Description:   r.Description,
		Price:         r.Price,
		CityID:        r.CityID,
		StreetID:      r.StreetID,
		Building:      r.Building,
		Flat:          r.Flat,
		Floor:         r.Floor,
		AllFloors:     r.AllFloors,
		Rooms:         r.Rooms,
		Bathrooms:     r.Bathrooms,
		Square:        r.Square,
		Communal:      r.Communal,
		Latitude:      r.Latitude,
		Longitude:     r.Longitude,
		HeatingTypeID: r.HeatingTypeID,
		ListingTypeID: r.ListingTypeID,
		TagIDs:        r.TagIDs,
	}
}

// ListingQuery holds the search filters. Repeated tagId parameters must all
// be present on a listing.
type ListingQuery struct {
	CityID        *int64   `form:"cityId"`
	City          string   `form:"city"`
	Street        string   `form:"street"`
	Building      string   `form:"building"`
	ListingTypeID *int64   `form:"listingTypeId"`
	HeatingTypeID *int64   `form:"heatingTypeId"`
	PriceMin      *int64   `form:"priceMin"`
	PriceMax      *int64   `form:"priceMax"`
	Rooms         *int     `form:"rooms"`
	Bathrooms     *int     `form:"bathrooms"`
	FloorMin      *int     `form:"floorMin"`
	FloorMax      *int     `form:"floorMax"`
	AllFloorsMin  *int     `form:"allFloorsMin"`
	AllFloorsMax  *int     `form:"allFloorsMax"`
	SquareMin     *float64 `form:"squareMin"`
	SquareMax     *float64 `form:"squareMax"`
	CommunalMin   *int64   `form:"communalMin"`
	CommunalMax   *int64   `form:"communalMax"`
	TagIDs        []int64  `form:"tagId"`
	OwnerID       string   `form:"ownerId"`
	Status        []string `form:"status"`

	// Cursor is the nextCursor of the previous page.
	Cursor string `form:"cursor"`
	Limit  uint   `form:"limit"`
}

func (q ListingQuery) filter() (storage.ListingFilter, error) {
	filter := storage.ListingFilter{
		ListingCriteria: domain.ListingCriteria{
			CityID:        q.CityID,
			ListingTypeID: q.ListingTypeID,
			HeatingTypeID: q.HeatingTypeID,
			PriceMin:      q.PriceMin,
			PriceMax:      q.PriceMax,
			Rooms:         q.Rooms,
			Bathrooms:     q.Bathrooms,
			FloorMin:      q.FloorMin,
			FloorMax:      q.FloorMax,
			AllFloorsMin:  q.AllFloorsMin,
			AllFloorsMax:  q.AllFloorsMax,
			SquareMin:     q.SquareMin,
			SquareMax:     q.SquareMax,
			TagIDs:        q.TagIDs,
		},
		City:        q.City,
		Street:      q.Street,
		Building:    q.Building,
		CommunalMin: q.CommunalMin,
		CommunalMax: q.CommunalMax,
	}

	if q.OwnerID != "" {
		var ownerID domain.UserID
		if err := ownerID.UnmarshalText([]byte(q.OwnerID)); err != nil {
			return filter, serrors.With(serrors.ErrBadRequest, "invalid ownerId")
		}
		filter.OwnerID = &ownerID
	}
	for _, s := range q.Status {
		status := domain.ListingStatus(s)
		if !status.Valid() {
			return filter, serrors.With(serrors.ErrBadRequest, "unknown status %q", s)
		}
		filter.Statuses = append(filter.Statuses, status)
	}

	return filter, nil
}

// ListingPage is a page of search results. NextCursor is absent on the last page.
type ListingPage struct {
	Listings   []domain.Listing       `json:"listings"`
	NextCursor *storage.ListingCursor `json:"nextCursor,omitempty"`
}

func (h Handler) search(c *gin.Context, adjust func(*storage.ListingFilter)) {
	var query ListingQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.badRequest(c, err)

		return
	}

	filter, err := query.filter()
	if err != nil {
		h.fail(c, err)

		return
	}
	if adjust != nil {
		adjust(&filter)
	}
	cursor, err := storage.ParseListingCursor(query.Cursor)
	if err != nil {
		h.badRequest(c, err)

		return
	}

	page, err := h.deps.Listings.Search(c.Request.Context(),
		GetCallerFromContext(c.Request.Context()), filter, cursor, query.Limit)
	if err != nil {
		h.fail(c, err)

		return
	}

	listings := page.Listings
	if listings == nil {
		listings = []domain.Listing{}
	}
	c.JSON(http.StatusOK, ListingPage{Listings: listings, NextCursor: page.NextCursor})
}

func (h Handler) SearchListings(c *gin.Context) { h.search(c, nil) }

// MyListings lists the caller's listings in every status unless filtered.
func (h Handler) MyListings(c *gin.Context) {
	caller := mustCaller(c)
	h.search(c, func(filter *storage.ListingFilter) {
		filter.OwnerID = &caller.ID
		if len(filter.Statuses) == 0 {
			filter.Statuses = domain.ListingStatuses
		}
	})
}

// AdminListings defaults to listings waiting in moderation.
func (h Handler) AdminListings(c *gin.Context) {
	h.search(c, func(filter *storage.ListingFilter) {
		if len(filter.Statuses) == 0 {
			filter.Statuses = []domain.ListingStatus{domain.ListingStatusModeration}
		}
	})
}

func (h Handler) GetListing(c *gin.Context) {
	id, err := uuidParam(c, "id")
	if err != nil {
		h.fail(c, err)

		return
	}

	detail, err := h.deps.Listings.Get(c.Request.Context(),
		GetCallerFromContext(c.Request.Context()), domain.ListingID(id))
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusOK, detail)
}

// CreateListing accepts a multipart form with the "listing" JSON field, at
// least four "images" and one "document".
func (h Handler) CreateListing(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		h.badRequest(c, err)

		return
	}

	var req ListingRequest
	if err := json.Unmarshal([]byte(c.PostForm("listing")), &req); err != nil {
		h.fail(c, serrors.With(serrors.ErrBadRequest, "listing field must be a JSON object"))

		return
	}
	if err := binding.Validator.ValidateStruct(&req); err != nil {
		h.badRequest(c, err)

		return
	}

	images := make([]filestore.Upload, 0, len(form.File["images"]))
	for _, header := range form.File["images"] {
		upload, closeUpload, err := openUpload(header)
		if err != nil {
			h.fail(c, err)

			return
		}
		defer closeUpload()
		images = append(images, upload)
	}

	document, closeDocument, err := formUpload(c, "document")
	if err != nil {
		h.fail(c, err)

		return
	}
	defer closeDocument()

	created, err := h.deps.Listings.Create(c.Request.Context(), mustCaller(c).ID, req.input(), images, document)
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h Handler) UpdateListing(c *gin.Context) {
	id, err := uuidParam(c, "id")
	if err != nil {
		h.fail(c, err)

		return
	}

	var req ListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)

		return
	}

	updated, err := h.deps.Listings.Update(c.Request.Context(), mustCaller(c), domain.ListingID(id), req.input())
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h Handler) ReplaceDocument(c *gin.Context) {
	id, err := uuidParam(c, "id")
	if err != nil {
		h.fail(c, err)

		return
	}

	document, closeDocument, err := formUpload(c, "document")
	if err != nil {
		h.fail(c, err)

		return
	}
	defer closeDocument()

	updated, err := h.deps.Listings.ReplaceOwnershipDocument(c.Request.Context(),
		mustCaller(c), domain.ListingID(id), document)
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h Handler) transition(c *gin.Context,
	fn func(*gin.Context, domain.Caller, domain.ListingID) (*domain.Listing, error)) {
	id, err := uuidParam(c, "id")
	if err != nil {
		h.fail(c, err)

		return
	}

	updated, err := fn(c, mustCaller(c), domain.ListingID(id))
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h Handler) ArchiveListing(c *gin.Context) {
	h.transition(c, func(c *gin.Context, caller domain.Caller, id domain.ListingID) (*domain.Listing, error) {
		return h.deps.Listings.Archive(c.Request.Context(), caller, id) //nolint: wrapcheck
	})
}

func (h Handler) ReactivateListing(c *gin.Context) {
	h.transition(c, func(c *gin.Context, caller domain.Caller, id domain.ListingID) (*domain.Listing, error) {
		return h.deps.Listings.Reactivate(c.Request.Context(), caller, id) //nolint: wrapcheck
	})
}

func (h Handler) DeleteListing(c *gin.Context) {
	id, err := uuidParam(c, "id")
	if err != nil {
		h.fail(c, err)

		return
	}

	if err := h.deps.Listings.Delete(c.Request.Context(), mustCaller(c), domain.ListingID(id)); err != nil {
		h.fail(c, err)

		return
	}

	c.Status(http.StatusNoContent)
}

type FavoriteRequest struct {
	ListingID domain.ListingID `binding:"required" json:"listingId"`
}

func (h Handler) Favorites(c *gin.Context) {
	favorites, err := h.deps.Listings.Favorites(c.Request.Context(), mustCaller(c).ID)
	if err != nil {
		h.fail(c, err)

		return
	}
	if favorites == nil {
		favorites = []domain.Favorite{}
	}

	c.JSON(http.StatusOK, favorites)
}

func (h Handler) AddFavorite(c *gin.Context) {
	var req FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)

		return
	}

	favorite, err := h.deps.Listings.AddFavorite(c.Request.Context(), mustCaller(c).ID, req.ListingID)
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusCreated, favorite)
}

func (h Handler) RemoveFavorite(c *gin.Context) {
	id, err := uuidParam(c, "id")
	if err != nil {
		h.fail(c, err)

		return
	}

	if err := h.deps.Listings.RemoveFavorite(c.Request.Context(), mustCaller(c).ID, domain.FavoriteID(id)); err != nil {
		h.fail(c, err)

		return
	}

	c.Status(http.StatusNoContent)
}

func (h Handler) RemoveFavoriteByListing(c *gin.Context) {
	id, err := uuidParam(c, "id")
	if err != nil {
		h.fail(c, err)

		return
	}

	err = h.deps.Listings.RemoveFavoriteByListing(c.Request.Context(), mustCaller(c).ID, domain.ListingID(id))
	if err != nil {
		h.fail(c, err)

		return
	}

	c.Status(http.StatusNoContent)
}
