package v1handler

import (
	"net/http"
	"time"

	"easyrent/internal/account"
	"easyrent/pkg/domain"
	"easyrent/pkg/storage"

	"github.com/gin-gonic/gin"
)

type SignupRequest struct {
	Email      string `binding:"required"          json:"email"`
	Phone      string `binding:"required"          json:"phone"`
	Password   string `binding:"required"          json:"password"`
	FirstName  string `binding:"required"          json:"firstName"`
	LastName   string `binding:"required"          json:"lastName"`
	Patronymic string `json:"patronymic"`
	// BirthDate is formatted as 2006-01-02.
	BirthDate string `json:"birthDate"`
}

type LoginRequest struct {
	Login    string `binding:"required" json:"login"`
	Password string `binding:"required" json:"password"`
}

type UpdateUserRequest struct {
	Email      *string `json:"email"`
	Phone      *string `json:"phone"`
	Password   *string `json:"password"`
	FirstName  *string `json:"firstName"`
	LastName   *string `json:"lastName"`
	Patronymic *string `json:"patronymic"`
	BirthDate  *string `json:"birthDate"`
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(time.DateOnly, s) //nolint: wrapcheck
}

func (h Handler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)

		return
	}

	var birthDate time.Time
	if req.BirthDate != "" {
		var err error
		if birthDate, err = parseDate(req.BirthDate); err != nil {
			h.badRequest(c, err)

			return
		}
	}

	session, err := h.deps.Accounts.Signup(c.Request.Context(), account.SignupRequest{
		Email:      req.Email,
		Phone:      req.Phone,
		Password:   req.Password,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Patronymic: req.Patronymic,
		BirthDate:  birthDate,
	})
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusCreated, session)
}

func (h Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)

		return
	}

	session, err := h.deps.Accounts.Login(c.Request.Context(), req.Login, req.Password)
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusOK, session)
}

// Me returns the caller's own profile including private fields.
func (h Handler) Me(c *gin.Context) {
	profile, err := h.deps.Accounts.Profile(c.Request.Context(), mustCaller(c).ID)
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusOK, profile)
}

// PublicUser is what other users see about an account.
type PublicUser struct {
	ID        domain.UserID `json:"id"`
	FirstName string        `json:"firstName"`
	LastName  string        `json:"lastName"`
	PhotoID   domain.FileID `json:"photoId,omitempty"`
	Verified  bool          `json:"verified"`
	Rating    domain.Rating `json:"rating"`
}

func (h Handler) GetUser(c *gin.Context) {
	id, err := uuidParam(c, "id")
	if err != nil {
		h.fail(c, err)

		return
	}

	profile, err := h.deps.Accounts.Profile(c.Request.Context(), domain.UserID(id))
	if err != nil {
		h.fail(c, err)

		return
	}

	caller := GetCallerFromContext(c.Request.Context())
	if caller != nil && (caller.Owns(profile.ID) || caller.IsAdmin()) {
		c.JSON(http.StatusOK, profile)

		return
	}

	c.JSON(http.StatusOK, PublicUser{
		ID:        profile.ID,
		FirstName: profile.FirstName,
		LastName:  profile.LastName,
		PhotoID:   profile.PhotoID,
		Verified:  profile.Verified,
		Rating:    profile.Rating,
	})
}

func (h Handler) UpdateMe(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)

		return
	}

	update := account.UpdateRequest{
		Email:      req.Email,
		Phone:      req.Phone,
		Password:   req.Password,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Patronymic: req.Patronymic,
	}
	if req.BirthDate != nil {
		birthDate, err := parseDate(*req.BirthDate)
		if err != nil {
			h.badRequest(c, err)

			return
		}
		update.BirthDate = &birthDate
	}

	user, err := h.deps.Accounts.Update(c.Request.Context(), mustCaller(c).ID, update)
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusOK, user)
}

func (h Handler) DeleteMe(c *gin.Context) {
	if err := h.deps.Accounts.Delete(c.Request.Context(), mustCaller(c).ID); err != nil {
		h.fail(c, err)

		return
	}

	c.Status(http.StatusNoContent)
}

func (h Handler) UploadPhoto(c *gin.Context) {
	upload, closeUpload, err := formUpload(c, "photo")
	if err != nil {
		h.fail(c, err)

		return
	}
	defer closeUpload()

	user, err := h.deps.Accounts.UploadPhoto(c.Request.Context(), mustCaller(c).ID, upload)
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusOK, user)
}

// UploadPassport answers 202 since verification runs in the background.
func (h Handler) UploadPassport(c *gin.Context) {
	upload, closeUpload, err := formUpload(c, "passport")
	if err != nil {
		h.fail(c, err)

		return
	}
	defer closeUpload()

	user, err := h.deps.Accounts.UploadPassport(c.Request.Context(), mustCaller(c).ID, upload)
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusAccepted, user)
}

type AdminUsersQuery struct {
	ID        string `form:"id"`
	FirstName string `form:"firstName"`
	LastName  string `form:"lastName"`
	Limit     uint   `form:"limit"`
	Offset    uint   `form:"offset"`
}

func (h Handler) AdminUsers(c *gin.Context) {
	var query AdminUsersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.badRequest(c, err)

		return
	}

	filter := storage.UserFilter{
		FirstName: query.FirstName,
		LastName:  query.LastName,
		Limit:     query.Limit,
		Offset:    query.Offset,
	}
	if query.ID != "" {
		var id domain.UserID
		if err := id.UnmarshalText([]byte(query.ID)); err != nil {
			h.badRequest(c, err)

			return
		}
		filter.ID = &id
	}

	users, err := h.deps.Accounts.AdminUsers(c.Request.Context(), filter)
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusOK, users)
}

func (h Handler) setBlocked(c *gin.Context, blocked bool) {
	id, err := uuidParam(c, "id")
	if err != nil {
		h.fail(c, err)

		return
	}

	var user *domain.User
	if blocked {
		user, err = h.deps.Accounts.Block(c.Request.Context(), domain.UserID(id))
	} else {
		user, err = h.deps.Accounts.Unblock(c.Request.Context(), domain.UserID(id))
	}
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusOK, user)
}

func (h Handler) BlockUser(c *gin.Context)   { h.setBlocked(c, true) }
func (h Handler) UnblockUser(c *gin.Context) { h.setBlocked(c, false) }
