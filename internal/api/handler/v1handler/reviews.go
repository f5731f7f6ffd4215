package v1handler

import (
	"net/http"

	"easyrent/internal/review"
	"easyrent/pkg/domain"
	"easyrent/pkg/serrors"
	"easyrent/pkg/storage"

	"github.com/gin-gonic/gin"
)

type ReviewRequest struct {
	Rating      float64 `binding:"required" json:"rating"`
	Description string  `binding:"required" json:"description"`
	TagIDs      []int64 `json:"tagIds"`
}

func (r ReviewRequest) input() review.Input {
	return review.Input{Rating: r.Rating, Description: r.Description, TagIDs: r.TagIDs}
}

type ReviewQuery struct {
	AuthorID string `form:"authorId"`
	TargetID string `form:"targetId"`
	Limit    uint   `form:"limit"`
	Offset   uint   `form:"offset"`
}

func userIDQuery(s, name string) (*domain.UserID, error) {
	if s == "" {
		return nil, nil //nolint: nilnil
	}

	var id domain.UserID
	if err := id.UnmarshalText([]byte(s)); err != nil {
		return nil, serrors.With(serrors.ErrBadRequest, "invalid %s", name)
	}

	return &id, nil
}

func (h Handler) ListReviews(c *gin.Context) {
	var query ReviewQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.badRequest(c, err)

		return
	}

	authorID, err := userIDQuery(query.AuthorID, "authorId")
	if err != nil {
		h.fail(c, err)

		return
	}
	targetID, err := userIDQuery(query.TargetID, "targetId")
	if err != nil {
		h.fail(c, err)

		return
	}

	reviews, err := h.deps.Reviews.List(c.Request.Context(), storage.ReviewFilter{
		AuthorID: authorID,
		TargetID: targetID,
		Limit:    query.Limit,
		Offset:   query.Offset,
	})
	if err != nil {
		h.fail(c, err)

		return
	}
	if reviews == nil {
		reviews = []domain.Review{}
	}

	c.JSON(http.StatusOK, reviews)
}

func (h Handler) GetReview(c *gin.Context) {
	id, err := uuidParam(c, "id")
	if err != nil {
		h.fail(c, err)

		return
	}

	r, err := h.deps.Reviews.Get(c.Request.Context(), domain.ReviewID(id))
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusOK, r)
}

// CreateReview reviews the user in the path.
func (h Handler) CreateReview(c *gin.Context) {
	target, err := uuidParam(c, "id")
	if err != nil {
		h.fail(c, err)

		return
	}

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)

		return
	}

	r, err := h.deps.Reviews.Create(c.Request.Context(), mustCaller(c).ID, domain.UserID(target), req.input())
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusCreated, r)
}

func (h Handler) UpdateReview(c *gin.Context) {
	id, err := uuidParam(c, "id")
	if err != nil {
		h.fail(c, err)

		return
	}

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)

		return
	}

	r, err := h.deps.Reviews.Update(c.Request.Context(), mustCaller(c), domain.ReviewID(id), req.input())
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusOK, r)
}

func (h Handler) DeleteReview(c *gin.Context) {
	id, err := uuidParam(c, "id")
	if err != nil {
		h.fail(c, err)

		return
	}

	if err := h.deps.Reviews.Delete(c.Request.Context(), mustCaller(c), domain.ReviewID(id)); err != nil {
		h.fail(c, err)

		return
	}

	c.Status(http.StatusNoContent)
}
