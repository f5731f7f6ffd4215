package v1handler

import (
	"net/http"

	"easyrent/pkg/domain"

	"github.com/gin-gonic/gin"
)

func (h Handler) ListSubscriptions(c *gin.Context) {
	subscriptions, err := h.deps.Subscriptions.List(c.Request.Context(), mustCaller(c).ID)
	if err != nil {
		h.fail(c, err)

		return
	}
	if subscriptions == nil {
		subscriptions = []domain.Subscription{}
	}

	c.JSON(http.StatusOK, subscriptions)
}

// CreateSubscription takes the criteria object as the body.
func (h Handler) CreateSubscription(c *gin.Context) {
	var criteria domain.ListingCriteria
	if err := c.ShouldBindJSON(&criteria); err != nil {
		h.badRequest(c, err)

		return
	}

	s, err := h.deps.Subscriptions.Create(c.Request.Context(), mustCaller(c).ID, criteria)
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusCreated, s)
}

func (h Handler) GetSubscription(c *gin.Context) {
	id, err := uuidParam(c, "id")
	if err != nil {
		h.fail(c, err)

		return
	}

	s, err := h.deps.Subscriptions.Get(c.Request.Context(), mustCaller(c).ID, domain.SubscriptionID(id))
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusOK, s)
}

func (h Handler) UpdateSubscription(c *gin.Context) {
	id, err := uuidParam(c, "id")
	if err != nil {
		h.fail(c, err)

		return
	}

	var criteria domain.ListingCriteria
	if err := c.ShouldBindJSON(&criteria); err != nil {
		h.badRequest(c, err)

		return
	}

	s, err := h.deps.Subscriptions.Update(c.Request.Context(), mustCaller(c).ID, domain.SubscriptionID(id), criteria)
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusOK, s)
}

func (h Handler) DeleteSubscription(c *gin.Context) {
	id, err := uuidParam(c, "id")
	if err != nil {
		h.fail(c, err)

		return
	}

	if err := h.deps.Subscriptions.Delete(c.Request.Context(), mustCaller(c).ID, domain.SubscriptionID(id)); err != nil {
		h.fail(c, err)

		return
	}

	c.Status(http.StatusNoContent)
}
