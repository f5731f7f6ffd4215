package location_test

import (
	"context"
	"strings"
	"testing"

	"easyrent/internal/location"
	"easyrent/pkg/domain"
	"easyrent/pkg/logger"
	"easyrent/pkg/serrors"
	mockstorage "easyrent/pkg/storage/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func TestService_Cities(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	s := location.New(st)
	ctx := context.Background()

	t.Run("top cities when blank", func(t *testing.T) {
		st.EXPECT().CitiesByRefs(gomock.Any(), location.TopCities).Return([]domain.City{
			{ID: 2, Name: "Львів", NameEn: "Lviv", Oblast: "Львівська обл."},
			{ID: 1, Name: "Київ", NameEn: "Kyiv", Oblast: "м.Київ"},
		}, nil)

		options, err := s.Cities(ctx, "  ", domain.LanguageEN)
		require.NoError(t, err)
		require.Equal(t, []location.CityOption{
			{ID: 1, Label: "Kyiv (м.Київ)"},
			{ID: 2, Label: "Lviv (Львівська обл.)"},
		}, options)
	})

	t.Run("prefix search", func(t *testing.T) {
		st.EXPECT().CitiesByPrefix(gomock.Any(), domain.LanguageUK, "Бор", uint(location.MaxResults)).
			Return([]domain.City{{ID: 7, Name: "Боярка", Oblast: "Київська"}}, nil)

		options, err := s.Cities(ctx, "м. Бор", "de")
		require.NoError(t, err)
		require.Equal(t, []location.CityOption{{ID: 7, Label: "Боярка (Київська)"}}, options)
	})
}

func TestService_Streets(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	s := location.New(st)
	ctx := context.Background()

	t.Run("by name", func(t *testing.T) {
		st.EXPECT().CityByName(gomock.Any(), "Київ", "м.Київ").Return(&domain.City{ID: 1}, nil)
		st.EXPECT().StreetsByPrefix(gomock.Any(), int64(1), "Хре", uint(location.MaxResults)).
			Return([]domain.Street{{ID: 3, CityID: 1, Name: "вул. Хрещатик"}}, nil)

		streets, err := s.Streets(ctx, location.StreetQuery{City: "Київ", Oblast: "м.Київ", Q: "вул. Хре"})
		require.NoError(t, err)
		require.Len(t, streets, 1)
	})

	t.Run("unknown city", func(t *testing.T) {
		st.EXPECT().CityByID(gomock.Any(), int64(9)).Return(nil, nil)

		_, err := s.Streets(ctx, location.StreetQuery{CityID: 9})
		require.ErrorIs(t, err, serrors.ErrNotFound)
	})

	t.Run("city required", func(t *testing.T) {
		_, err := s.Streets(ctx, location.StreetQuery{Q: "Хре"})
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})
}

const registry = `<?xml version="1.0" encoding="UTF-8"?>
<DATA>
  <RECORD><OBL_NAME>м.Київ</OBL_NAME><CITY_NAME></CITY_NAME><STREET_NAME>вул. Хрещатик, 22</STREET_NAME></RECORD>
  <RECORD><OBL_NAME>м.Київ</OBL_NAME><CITY_NAME></CITY_NAME><STREET_NAME>вул. Хрещатик 1</STREET_NAME></RECORD>
  <RECORD><OBL_NAME>м.Київ</OBL_NAME><CITY_NAME></CITY_NAME><STREET_NAME>вул.</STREET_NAME></RECORD>
  <RECORD><OBL_NAME>Київська обл.</OBL_NAME><CITY_NAME>м. Боярка</CITY_NAME><STREET_NAME>вул. Молодіжна 5</STREET_NAME></RECORD>
  <RECORD><OBL_NAME>Київська обл.</OBL_NAME><CITY_NAME>с/рада. Іванівська</CITY_NAME><STREET_NAME>вул. Садова</STREET_NAME></RECORD>
  <RECORD><OBL_NAME>м.Київ</OBL_NAME><CITY_NAME></CITY_NAME><STREET_NAME>просп. Перемоги 10</STREET_NAME></RECORD>
</DATA>`

func TestService_Import(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	s := location.New(st)

	gomock.InOrder(
		st.EXPECT().StoreCity(gomock.Any(), domain.City{Name: "Київ", NameEn: "Kyiv", Oblast: "м.Київ"}).
			Return(&domain.City{ID: 1}, nil),
		st.EXPECT().StoreCity(gomock.Any(), domain.City{Name: "Боярка", NameEn: "Boiarka", Oblast: "Київська обл."}).
			Return(&domain.City{ID: 2}, nil),
	)
	st.EXPECT().StoreStreets(gomock.Any(), int64(1), "вул. Хрещатик", "просп. Перемоги").Return(int64(2), nil)
	st.EXPECT().StoreStreets(gomock.Any(), int64(2), "вул. Молодіжна").Return(int64(1), nil)

	stats, err := s.Import(context.Background(), strings.NewReader(registry))
	require.NoError(t, err)
	require.Equal(t, location.ImportStats{Records: 6, Cities: 2, Streets: 3, Skipped: 1}, stats)
}

func TestService_ImportMalformed(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := location.New(mockstorage.NewMockStorage(ctrl))

	_, err := s.Import(context.Background(), strings.NewReader(`<DATA><RECORD><OBL_NAME>x</RECORD>`))
	require.Error(t, err)
}
