package location

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"easyrent/pkg/domain"
	"easyrent/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/net/html/charset"
)

const defaultImportBatch = 500

// ImportStats summarises one registry import.
type ImportStats struct {
	Records int   `json:"records"`
	Cities  int   `json:"cities"`
	Streets int64 `json:"streets"`
	Skipped int   `json:"skipped"`
}

type registryRecord struct {
	Oblast string `xml:"OBL_NAME"`
	City   string `xml:"CITY_NAME"`
	Street string `xml:"STREET_NAME"`
}

type cityKey struct {
	name   string
	oblast string
}

type importer struct {
	*service

	stats   ImportStats
	cities  map[cityKey]int64
	pending map[int64][]string
	// seen de-duplicates streets per city across batches
	seen map[int64]map[string]struct{}
}

func (s *service) Import(ctx context.Context, r io.Reader) (ImportStats, error) {
	imp := &importer{
		service: s,
		cities:  map[cityKey]int64{},
		pending: map[int64][]string{},
		seen:    map[int64]map[string]struct{}{},
	}

	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charset.NewReaderLabel

	for {
		if err := ctx.Err(); err != nil {
			return imp.stats, fmt.Errorf("import interrupted: %w", err)
		}

		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imp.stats, fmt.Errorf("could not read registry: %w", err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "RECORD" {
			continue
		}

		var record registryRecord
		if err := decoder.DecodeElement(&record, &start); err != nil {
			return imp.stats, fmt.Errorf("could not decode record: %w", err)
		}
		if err := imp.add(ctx, record); err != nil {
			return imp.stats, err
		}
	}

	if err := imp.flush(ctx); err != nil {
		return imp.stats, err
	}

	logger.Info(ctx, "address registry imported",
		zap.Int("records", imp.stats.Records),
		zap.Int("cities", imp.stats.Cities),
		zap.Int64("streets", imp.stats.Streets),
		zap.Int("skipped", imp.stats.Skipped))

	return imp.stats, nil
}

func (imp *importer) add(ctx context.Context, record registryRecord) error {
	imp.stats.Records++

	oblast := strings.TrimSpace(record.Oblast)
	city := strings.TrimSpace(record.City)
	// cities with special status are listed as an oblast of their own
	if city == "" && strings.HasPrefix(oblast, "м.") {
		city = oblast
	}
	if city == "" || IsAdministrativeUnit(city) {
		imp.stats.Skipped++

		return nil
	}

	cityID, err := imp.city(ctx, NormalizeCityName(city), oblast)
	if err != nil {
		return err
	}

	street := CleanStreetName(record.Street)
	if street == "" {
		return nil
	}

	seen, ok := imp.seen[cityID]
	if !ok {
		seen = map[string]struct{}{}
		imp.seen[cityID] = seen
	}
	if _, ok := seen[street]; ok {
		return nil
	}
	seen[street] = struct{}{}

	imp.pending[cityID] = append(imp.pending[cityID], street)
	if len(imp.pending[cityID]) >= imp.batchSize {
		return imp.flushCity(ctx, cityID)
	}

	return nil
}

func (imp *importer) city(ctx context.Context, name, oblast string) (int64, error) {
	key := cityKey{name: name, oblast: oblast}
	if id, ok := imp.cities[key]; ok {
		return id, nil
	}

	stored, err := imp.storage.StoreCity(ctx, domain.City{
		Name:   name,
		NameEn: Transliterate(name),
		Oblast: oblast,
	})
	if err != nil {
		return 0, fmt.Errorf("could not store city %s: %w", name, err)
	}

	imp.cities[key] = stored.ID
	imp.stats.Cities++

	return stored.ID, nil
}

func (imp *importer) flushCity(ctx context.Context, cityID int64) error {
	names := imp.pending[cityID]
	if len(names) == 0 {
		return nil
	}

	added, err := imp.storage.StoreStreets(ctx, cityID, names...)
	if err != nil {
		return fmt.Errorf("could not store streets of city %d: %w", cityID, err)
	}
	imp.stats.Streets += added
	delete(imp.pending, cityID)

	return nil
}

func (imp *importer) flush(ctx context.Context) error {
	for cityID := range imp.pending {
		if err := imp.flushCity(ctx, cityID); err != nil {
			return err
		}
	}

	return nil
}
