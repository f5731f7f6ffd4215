// Package location answers city and street lookups for address forms and
// loads the address registry into storage.
package location

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"easyrent/pkg/domain"
	"easyrent/pkg/serrors"
	"easyrent/pkg/storage"
)

const MaxResults = 100

// TopCities are offered before the user types anything.
var TopCities = []domain.CityRef{ //nolint: gochecknoglobals
	{Name: "Вінниця", Oblast: "Вінницька обл."},
	{Name: "Дніпро", Oblast: "Дніпропетровська обл."},
	{Name: "Житомир", Oblast: "Житомирська обл."},
	{Name: "Запоріжжя", Oblast: "Запорізька обл."},
	{Name: "Івано-Франківськ", Oblast: "Івано-Франківська обл."},
	{Name: "Київ", Oblast: "м.Київ"},
	{Name: "Кривий Ріг", Oblast: "Дніпропетровська обл."},
	{Name: "Львів", Oblast: "Львівська обл."},
	{Name: "Маріуполь", Oblast: "Донецька обл."},
	{Name: "Миколаїв", Oblast: "Миколаївська обл."},
	{Name: "Одеса", Oblast: "Одеська обл."},
	{Name: "Полтава", Oblast: "Полтавська обл."},
	{Name: "Рівне", Oblast: "Рівненська обл."},
	{Name: "Суми", Oblast: "Сумська обл."},
	{Name: "Тернопіль", Oblast: "Тернопільська обл."},
	{Name: "Харків", Oblast: "Харківська обл."},
	{Name: "Хмельницький", Oblast: "Хмельницька обл."},
	{Name: "Черкаси", Oblast: "Черкаська обл."},
	{Name: "Чернівці", Oblast: "Чернівецька обл."},
	{Name: "Чернігів", Oblast: "Чернігівська обл."},
}

// CityOption is a city rendered for a picker.
type CityOption struct {
	ID    int64  `json:"id"`
	Label string `json:"label"`
}

// StreetQuery selects the city either by id or by name and oblast.
type StreetQuery struct {
	CityID int64
	City   string
	Oblast string
	Q      string
}

//go:generate mockgen -package mocklocation -source=location.go -destination=mock/mocklocation.go
type Service interface {
	Cities(ctx context.Context, q string, lang domain.Language) ([]CityOption, error)
	Streets(ctx context.Context, query StreetQuery) ([]domain.Street, error)
	// Import reads an address registry XML export.
	Import(ctx context.Context, r io.Reader) (ImportStats, error)
}

type service struct {
	storage   storage.Storage
	batchSize int
}

func New(storage storage.Storage) Service {
	return &service{storage: storage, batchSize: defaultImportBatch}
}

func (s *service) Cities(ctx context.Context, q string, lang domain.Language) ([]CityOption, error) {
	if lang != domain.LanguageEN {
		lang = domain.LanguageUK
	}

	var (
		cities []domain.City
		err    error
	)
	q = strings.TrimSpace(q)
	if q == "" {
		cities, err = s.storage.CitiesByRefs(ctx, TopCities)
	} else {
		cities, err = s.storage.CitiesByPrefix(ctx, lang, NormalizeCityName(q), MaxResults)
	}
	if err != nil {
		return nil, fmt.Errorf("could not search cities: %w", err)
	}

	options := make([]CityOption, 0, len(cities))
	for _, city := range cities {
		options = append(options, CityOption{ID: city.ID, Label: city.Label(lang)})
	}
	if q == "" {
		sort.SliceStable(options, func(i, j int) bool { return options[i].Label < options[j].Label })
	}

	return options, nil
}

func (s *service) Streets(ctx context.Context, query StreetQuery) ([]domain.Street, error) {
	var (
		city *domain.City
		err  error
	)
	switch {
	case query.CityID != 0:
		city, err = s.storage.CityByID(ctx, query.CityID)
	case strings.TrimSpace(query.City) != "":
		city, err = s.storage.CityByName(ctx, NormalizeCityName(query.City), strings.TrimSpace(query.Oblast))
	default:
		return nil, serrors.With(serrors.ErrBadRequest, "city is required")
	}
	if err != nil {
		return nil, fmt.Errorf("could not get city: %w", err)
	}
	if city == nil {
		return nil, serrors.With(serrors.ErrNotFound, "city not found")
	}

	streets, err := s.storage.StreetsByPrefix(ctx, city.ID, BareStreetName(query.Q), MaxResults)
	if err != nil {
		return nil, fmt.Errorf("could not search streets: %w", err)
	}

	return streets, nil
}
