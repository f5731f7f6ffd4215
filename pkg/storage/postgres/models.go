package postgres

import (
	"database/sql"
	"easyrent/pkg/domain"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}

	return sql.NullFloat64{Float64: *f, Valid: true}
}

func floatPtr(f sql.NullFloat64) *float64 {
	if !f.Valid {
		return nil
	}

	return &f.Float64
}

type PgUser struct {
	ID uuid.UUID `db:"id" goqu:"skipinsert"`

	Email        string `db:"email"`
	Phone        string `db:"phone"`
	PasswordHash string `db:"password_hash"`

	FirstName  string         `db:"first_name"`
	LastName   string         `db:"last_name"`
	Patronymic sql.NullString `db:"patronymic"`
	BirthDate  sql.NullTime   `db:"birth_date"`

	PhotoID    sql.NullString `db:"photo_id"`
	PassportID sql.NullString `db:"passport_id"`

	Role     string `db:"role"`
	Active   bool   `db:"is_active"`
	Verified bool   `db:"is_verified"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgUser) ToDomain() *domain.User {
	return &domain.User{
		ID:           domain.UserID(p.ID),
		Email:        p.Email,
		Phone:        p.Phone,
		PasswordHash: p.PasswordHash,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Patronymic:   p.Patronymic.String,
		BirthDate:    p.BirthDate.Time,
		PhotoID:      domain.FileID(p.PhotoID.String),
		PassportID:   domain.FileID(p.PassportID.String),
		Role:         domain.UserRole(p.Role),
		Active:       p.Active,
		Verified:     p.Verified,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt.Time,
	}
}

func (p *PgUser) FromDomain(user domain.User) {
	*p = PgUser{
		ID:           uuid.UUID(user.ID),
		Email:        user.Email,
		Phone:        user.Phone,
		PasswordHash: user.PasswordHash,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Patronymic:   nullString(user.Patronymic),
		BirthDate:    nullTime(user.BirthDate),
		PhotoID:      nullString(string(user.PhotoID)),
		PassportID:   nullString(string(user.PassportID)),
		Role:         string(user.Role),
		Active:       user.Active,
		Verified:     user.Verified,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    nullTime(user.UpdatedAt),
	}
}

type PgUserStats struct {
	PgUser

	ListingCount  int64   `db:"listing_count"`
	ReviewCount   int64   `db:"review_count"`
	AverageRating float64 `db:"average_rating"`
}

func (p *PgUserStats) ToDomain() domain.UserStats {
	return domain.UserStats{
		User:         *p.PgUser.ToDomain(),
		ListingCount: p.ListingCount,
		Rating:       domain.Rating{Average: p.AverageRating, Count: p.ReviewCount},
	}
}

// PgListing maps a row of the listings table. CityName, StreetName, Images and
// Tags are produced by the listing select and never written.
type PgListing struct {
	ID      uuid.UUID `db:"id"       goqu:"skipinsert"`
	OwnerID uuid.UUID `db:"owner_id"`

	Name        string `db:"name"`
	Description string `db:"description"`
	Price       int64  `db:"price"`

	CityID     int64          `db:"city_id"`
	CityName   string         `db:"city_name"   goqu:"skipinsert,skipupdate"`
	StreetID   int64          `db:"street_id"`
	StreetName string         `db:"street_name" goqu:"skipinsert,skipupdate"`
	Building   string         `db:"building"`
	Flat       sql.NullString `db:"flat"`

	Floor     int     `db:"floor"`
	AllFloors int     `db:"all_floors"`
	Rooms     int     `db:"rooms"`
	Bathrooms int     `db:"bathrooms"`
	Square    float64 `db:"square"`
	Communal  int64   `db:"communal"`

	Latitude  sql.NullFloat64 `db:"latitude"`
	Longitude sql.NullFloat64 `db:"longitude"`

	HeatingTypeID int64 `db:"heating_type_id"`
	ListingTypeID int64 `db:"listing_type_id"`

	Status              string         `db:"status"`
	DiscardReason       sql.NullString `db:"discard_reason"`
	OwnershipDocumentID sql.NullString `db:"ownership_document_id"`

	Images json.RawMessage `db:"images" goqu:"skipinsert,skipupdate"`
	Tags   json.RawMessage `db:"tags"   goqu:"skipinsert,skipupdate"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgListing) ToDomain() (*domain.Listing, error) {
	var images []domain.FileID
	if len(p.Images) > 0 {
		if err := json.Unmarshal(p.Images, &images); err != nil {
			return nil, fmt.Errorf("could not unmarshal listing images: %w", err)
		}
	}
	tags := []int64{}
	if len(p.Tags) > 0 {
		if err := json.Unmarshal(p.Tags, &tags); err != nil {
			return nil, fmt.Errorf("could not unmarshal listing tags: %w", err)
		}
	}

	return &domain.Listing{
		ID:                  domain.ListingID(p.ID),
		OwnerID:             domain.UserID(p.OwnerID),
		Name:                p.Name,
		Description:         p.Description,
		Price:               p.Price,
		CityID:              p.CityID,
		CityName:            p.CityName,
		StreetID:            p.StreetID,
		StreetName:          p.StreetName,
		Building:            p.Building,
		Flat:                p.Flat.String,
		Floor:               p.Floor,
		AllFloors:           p.AllFloors,
		Rooms:               p.Rooms,
		Bathrooms:           p.Bathrooms,
		Square:              p.Square,
		Communal:            p.Communal,
		Latitude:            floatPtr(p.Latitude),
		Longitude:           floatPtr(p.Longitude),
		HeatingTypeID:       p.HeatingTypeID,
		ListingTypeID:       p.ListingTypeID,
		Status:              domain.ListingStatus(p.Status),
		DiscardReason:       p.DiscardReason.String,
		OwnershipDocumentID: domain.FileID(p.OwnershipDocumentID.String),
		Images:              images,
		TagIDs:              tags,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt.Time,
	}, nil
}

func (p *PgListing) FromDomain(listing domain.Listing) {
	*p = PgListing{
		ID:                  uuid.UUID(listing.ID),
		OwnerID:             uuid.UUID(listing.OwnerID),
		Name:                listing.Name,
		Description:         listing.Description,
		Price:               listing.Price,
		CityID:              listing.CityID,
		StreetID:            listing.StreetID,
		Building:            listing.Building,
		Flat:                nullString(listing.Flat),
		Floor:               listing.Floor,
		AllFloors:           listing.AllFloors,
		Rooms:               listing.Rooms,
		Bathrooms:           listing.Bathrooms,
		Square:              listing.Square,
		Communal:            listing.Communal,
		Latitude:            nullFloat(listing.Latitude),
		Longitude:           nullFloat(listing.Longitude),
		HeatingTypeID:       listing.HeatingTypeID,
		ListingTypeID:       listing.ListingTypeID,
		Status:              string(listing.Status),
		DiscardReason:       nullString(listing.DiscardReason),
		OwnershipDocumentID: nullString(string(listing.OwnershipDocumentID)),
	}
}

func pgListingsToDomain(rows []PgListing) ([]domain.Listing, error) {
	out := make([]domain.Listing, 0, len(rows))
	for _, row := range rows {
		l, err := row.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *l)
	}

	return out, nil
}

type PgReview struct {
	ID       uuid.UUID `db:"id"        goqu:"skipinsert"`
	AuthorID uuid.UUID `db:"author_id"`
	TargetID uuid.UUID `db:"target_id"`

	Rating      float64         `db:"rating"`
	Description string          `db:"description"`
	Status      string          `db:"status"`
	Tags        json.RawMessage `db:"tags" goqu:"skipinsert,skipupdate"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgReview) ToDomain() (*domain.Review, error) {
	tags := []int64{}
	if len(p.Tags) > 0 {
		if err := json.Unmarshal(p.Tags, &tags); err != nil {
			return nil, fmt.Errorf("could not unmarshal review tags: %w", err)
		}
	}

	return &domain.Review{
		ID:          domain.ReviewID(p.ID),
		AuthorID:    domain.UserID(p.AuthorID),
		TargetID:    domain.UserID(p.TargetID),
		Rating:      p.Rating,
		Description: p.Description,
		Status:      domain.ReviewStatus(p.Status),
		TagIDs:      tags,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt.Time,
	}, nil
}

func (p *PgReview) FromDomain(review domain.Review) {
	*p = PgReview{
		ID:          uuid.UUID(review.ID),
		AuthorID:    uuid.UUID(review.AuthorID),
		TargetID:    uuid.UUID(review.TargetID),
		Rating:      review.Rating,
		Description: review.Description,
		Status:      string(review.Status),
	}
}

type PgFavorite struct {
	ID        uuid.UUID `db:"id"         goqu:"skipinsert"`
	UserID    uuid.UUID `db:"user_id"`
	ListingID uuid.UUID `db:"listing_id"`
	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgFavorite) ToDomain() domain.Favorite {
	return domain.Favorite{
		ID:        domain.FavoriteID(p.ID),
		UserID:    domain.UserID(p.UserID),
		ListingID: domain.ListingID(p.ListingID),
		CreatedAt: p.CreatedAt,
	}
}

type PgSubscription struct {
	ID        uuid.UUID       `db:"id"         goqu:"skipinsert"`
	UserID    uuid.UUID       `db:"user_id"`
	Criteria  json.RawMessage `db:"criteria"`
	CreatedAt time.Time       `db:"created_at" goqu:"skipinsert"`
}

func (p *PgSubscription) ToDomain() (*domain.Subscription, error) {
	var criteria domain.ListingCriteria
	if err := json.Unmarshal(p.Criteria, &criteria); err != nil {
		return nil, fmt.Errorf("could not unmarshal subscription criteria: %w", err)
	}

	return &domain.Subscription{
		ID:        domain.SubscriptionID(p.ID),
		UserID:    domain.UserID(p.UserID),
		Criteria:  criteria,
		CreatedAt: p.CreatedAt,
	}, nil
}

func (p *PgSubscription) FromDomain(subscription domain.Subscription) error {
	criteria, err := json.Marshal(subscription.Criteria)
	if err != nil {
		return fmt.Errorf("could not marshal subscription criteria: %w", err)
	}

	*p = PgSubscription{
		ID:        uuid.UUID(subscription.ID),
		UserID:    uuid.UUID(subscription.UserID),
		Criteria:  criteria,
		CreatedAt: subscription.CreatedAt,
	}

	return nil
}

func pgSubscriptionsToDomain(rows []PgSubscription) ([]domain.Subscription, error) {
	out := make([]domain.Subscription, 0, len(rows))
	for _, row := range rows {
		s, err := row.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *s)
	}

	return out, nil
}

type PgCatalogItem struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

type PgListingTag struct {
	ID         int64  `db:"id"`
	Name       string `db:"name"`
	CategoryID int64  `db:"category_id"`
}

type PgCity struct {
	ID     int64          `db:"id"     goqu:"skipinsert"`
	Name   string         `db:"name"`
	NameEn sql.NullString `db:"name_en"`
	Oblast string         `db:"oblast"`
}

func (p *PgCity) ToDomain() domain.City {
	return domain.City{ID: p.ID, Name: p.Name, NameEn: p.NameEn.String, Oblast: p.Oblast}
}

type PgStreet struct {
	ID     int64  `db:"id"      goqu:"skipinsert"`
	CityID int64  `db:"city_id"`
	Name   string `db:"name"`
}

func (p *PgStreet) ToDomain() domain.Street {
	return domain.Street{ID: p.ID, CityID: p.CityID, Name: p.Name}
}
