package postgres_test

import (
	"context"
	"easyrent/pkg/domain"
	"easyrent/pkg/storage/postgres"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func seedUser(t *testing.T, pg *postgres.PgSQL) domain.User {
	t.Helper()

	suffix := uuid.NewString()[:8]
	user, err := pg.StoreUser(context.Background(), domain.User{
		Email:        "user-" + suffix + "@example.com",
		Phone:        "+380" + suffix,
		PasswordHash: "hash",
		FirstName:    "Taras",
		LastName:     "Shevchenko",
		Role:         domain.UserRoleUser,
		Active:       true,
	})
	require.NoError(t, err)

	return *user
}

// seedAddress stores a city with one street and returns their ids.
func seedAddress(t *testing.T, pg *postgres.PgSQL, cityName string) (int64, int64) {
	t.Helper()
	ctx := context.Background()

	city, err := pg.StoreCity(ctx, domain.City{Name: cityName, NameEn: "Kyiv", Oblast: "Київська"})
	require.NoError(t, err)
	_, err = pg.StoreStreets(ctx, city.ID, "Хрещатик")
	require.NoError(t, err)
	streets, err := pg.StreetsByPrefix(ctx, city.ID, "Хрещ", 1)
	require.NoError(t, err)
	require.Len(t, streets, 1)

	return city.ID, streets[0].ID
}

func newListing(owner domain.UserID, cityID, streetID int64) domain.Listing {
	return domain.Listing{
		OwnerID:             owner,
		Name:                "Two room flat",
		Description:         "Bright flat in the center",
		Price:               20000,
		CityID:              cityID,
		StreetID:            streetID,
		Building:            "22",
		Floor:               3,
		AllFloors:           9,
		Rooms:               2,
		Bathrooms:           1,
		Square:              54.5,
		Communal:            1500,
		HeatingTypeID:       1,
		ListingTypeID:       1,
		Status:              domain.ListingStatusModeration,
		OwnershipDocumentID: "doc-1",
		Images:              []domain.FileID{"img-1", "img-2", "img-3", "img-4"},
		TagIDs:              []int64{1, 6},
	}
}
