package v1handler

import (
	"context"
	"net/http"

	"easyrent/internal/account"
	"easyrent/internal/catalog"
	"easyrent/internal/listing"
	"easyrent/internal/location"
	"easyrent/internal/media"
	"easyrent/internal/review"
	"easyrent/internal/subscription"
	"easyrent/pkg/logger"
	"easyrent/pkg/serrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Deps struct {
	Accounts      account.Service
	Listings      listing.Service
	Reviews       review.Service
	Catalog       catalog.Service
	Locations     location.Service
	Subscriptions subscription.Service
	Media         media.Service
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Error is the body of every failed response.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorStatusCode struct {
	StatusCode int
	Response   Error
}

var kindStatus = map[serrors.Kind]struct { //nolint: gochecknoglobals
	status  int
	message string
}{
	serrors.ErrNotFound:     {http.StatusNotFound, "resource not found"},
	serrors.ErrUnauthorized: {http.StatusUnauthorized, "unauthorized"},
	serrors.ErrForbidden:    {http.StatusForbidden, "forbidden"},
	serrors.ErrBadRequest:   {http.StatusBadRequest, "bad request"},
	serrors.ErrConflict:     {http.StatusConflict, "conflict"},
	serrors.ErrInternal:     {http.StatusInternalServerError, "internal error"},
	serrors.ErrTimeout:      {http.StatusGatewayTimeout, "request timed out"},
	serrors.ErrUnavailable:  {http.StatusServiceUnavailable, "service unavailable"},
	serrors.ErrRateLimited:  {http.StatusTooManyRequests, "too many requests"},
}

// NewError maps a service error to a status code and body. Only the message
// of a semantic error is exposed, never its cause.
func (h Handler) NewError(ctx context.Context, err error) *ErrorStatusCode {
	kind := serrors.KindOf(err)
	mapped, ok := kindStatus[kind]
	if !ok || kind == serrors.ErrInternal {
		logger.Error(ctx, "request failed", zap.Error(err))

		return &ErrorStatusCode{
			StatusCode: http.StatusInternalServerError,
			Response:   Error{Code: serrors.ErrInternal.Error(), Message: "internal error"},
		}
	}
	if mapped.status >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err))
	}

	message := serrors.MessageOf(err)
	if message == "" {
		message = mapped.message
	}

	return &ErrorStatusCode{
		StatusCode: mapped.status,
		Response:   Error{Code: kind.Error(), Message: message},
	}
}

// fail aborts the request with the mapped error.
func (h Handler) fail(c *gin.Context, err error) {
	res := h.NewError(c.Request.Context(), err)
	c.AbortWithStatusJSON(res.StatusCode, res.Response)
}

func (h Handler) badRequest(c *gin.Context, err error) {
	h.fail(c, serrors.Wrap(serrors.ErrBadRequest, err, "invalid request: %s", err.Error()))
}

// Register mounts every v1 route on rg.
func (h Handler) Register(rg *gin.RouterGroup, sec *SecHandler) {
	public := rg.Group("", sec.OptionalAuth())
	authed := rg.Group("", sec.RequireAuth())
	admin := rg.Group("/admin", sec.RequireAuth(), sec.RequireAdmin())

	public.POST("/auth/signup", h.Signup)
	public.POST("/auth/login", h.Login)
	authed.GET("/users/me", h.Me)
	authed.PATCH("/users/me", h.UpdateMe)
	authed.DELETE("/users/me", h.DeleteMe)
	authed.PUT("/users/me/photo", h.UploadPhoto)
	authed.PUT("/users/me/passport", h.UploadPassport)
	authed.GET("/users/me/listings", h.MyListings)
	public.GET("/users/:id", h.GetUser)

	public.GET("/listings", h.SearchListings)
	public.GET("/listings/:id", h.GetListing)
	authed.POST("/listings", h.CreateListing)
	authed.PUT("/listings/:id", h.UpdateListing)
	authed.PUT("/listings/:id/document", h.ReplaceDocument)
	authed.POST("/listings/:id/archive", h.ArchiveListing)
	authed.POST("/listings/:id/reactivate", h.ReactivateListing)
	authed.DELETE("/listings/:id", h.DeleteListing)
	authed.DELETE("/listings/:id/favorite", h.RemoveFavoriteByListing)

	authed.GET("/favorites", h.Favorites)
	authed.POST("/favorites", h.AddFavorite)
	authed.DELETE("/favorites/:id", h.RemoveFavorite)

	public.GET("/reviews", h.ListReviews)
	public.GET("/reviews/:id", h.GetReview)
	authed.POST("/users/:id/reviews", h.CreateReview)
	authed.PUT("/reviews/:id", h.UpdateReview)
	authed.DELETE("/reviews/:id", h.DeleteReview)

	authed.GET("/subscriptions", h.ListSubscriptions)
	authed.POST("/subscriptions", h.CreateSubscription)
	authed.GET("/subscriptions/:id", h.GetSubscription)
	authed.PUT("/subscriptions/:id", h.UpdateSubscription)
	authed.DELETE("/subscriptions/:id", h.DeleteSubscription)

	public.GET("/catalog/:kind", h.Catalog)
	public.GET("/locations/cities", h.Cities)
	public.GET("/locations/streets", h.Streets)
	public.GET("/files/:id", h.DownloadFile)

	admin.GET("/users", h.AdminUsers)
	admin.POST("/users/:id/block", h.BlockUser)
	admin.POST("/users/:id/unblock", h.UnblockUser)
	admin.GET("/listings", h.AdminListings)
}
