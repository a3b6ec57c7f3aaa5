package services

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"itinera/internal/itinerary"
	"itinera/internal/models/db_models"
	"itinera/internal/repositories"
	"itinera/pkg/logger"
	"itinera/pkg/utils"

	"github.com/pgvector/pgvector-go"
)

const embeddingBatchSize = 32

var knownPlaceColumns = map[string]bool{
	"id": true, "code": true, "slug": true, "name": true, "city": true, "country": true,
	"category": true, "description": true, "budget": true, "duration_hours": true,
	"duration": true, "best_time": true, "tags": true, "tips": true,
	"latitude": true, "longitude": true,
}

type ImportReport struct {
	Files  []string
	Places int
}

type PlaceImportServiceInterface interface {
	ImportDir(ctx context.Context, dir string) (ImportReport, error)
	ImportPlaces(ctx context.Context, places []db_models.Place) error
}

type PlaceImportService struct {
	embedder      utils.EmbeddingClientInterface
	placeRepo     repositories.PlaceRepository
	embeddingRepo repositories.PlaceEmbeddingRepository
}

func NewPlaceImportService(
	embedder utils.EmbeddingClientInterface,
	placeRepo repositories.PlaceRepository,
	embeddingRepo repositories.PlaceEmbeddingRepository,
) PlaceImportServiceInterface {
	return &PlaceImportService{
		embedder:      embedder,
		placeRepo:     placeRepo,
		embeddingRepo: embeddingRepo,
	}
}

// PlaceFiles lists the *_places.csv files of dir, or every *.csv when there are none.
func PlaceFiles(dir string) ([]string, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("data directory: %w", err)
	}
	files, err := filepath.Glob(filepath.Join(dir, "*_places.csv"))
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		if files, err = filepath.Glob(filepath.Join(dir, "*.csv")); err != nil {
			return nil, err
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no CSV file in %s, expected files like marrakech_places.csv", dir)
	}
	sort.Strings(files)
	return files, nil
}

func (s *PlaceImportService) ImportDir(ctx context.Context, dir string) (ImportReport, error) {
	files, err := PlaceFiles(dir)
	if err != nil {
		return ImportReport{}, err
	}

	report := ImportReport{Files: files}
	for _, path := range files {
		f, err := os.Open(path)
		if err != nil {
			return report, err
		}
		places, err := ParsePlacesCSV(f)
		_ = f.Close()
		if err != nil {
			return report, fmt.Errorf("parse %s: %w", path, err)
		}

		if err := s.ImportPlaces(ctx, places); err != nil {
			return report, fmt.Errorf("import %s: %w", path, err)
		}
		report.Places += len(places)
		importLog := logger.Component("importer")
		importLog.Info().Str("file", path).Int("places", len(places)).Msg("places imported")
	}
	return report, nil
}

// ImportPlaces upserts places and their embeddings in batches.
func (s *PlaceImportService) ImportPlaces(ctx context.Context, places []db_models.Place) error {
	for start := 0; start < len(places); start += embeddingBatchSize {
		end := min(start+embeddingBatchSize, len(places))
		batch := places[start:end]

		texts := make([]string, len(batch))
		for i, p := range batch {
			texts[i] = PlaceDocument(p)
		}
		vectors, err := s.embedder.GetEmbeddings(ctx, texts)
		if err != nil {
			return fmt.Errorf("%w: %v", utils.ErrUnexpectedBehaviorOfAI, err)
		}
		if len(vectors) != len(batch) {
			return fmt.Errorf("%w: got %d embeddings for %d places", utils.ErrUnexpectedBehaviorOfAI, len(vectors), len(batch))
		}

		for i := range batch {
			if err := s.upsert(ctx, &batch[i], texts[i], vectors[i]); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *PlaceImportService) upsert(ctx context.Context, p *db_models.Place, text string, vector pgvector.Vector) error {
	if err := s.placeRepo.Upsert(ctx, p); err != nil {
		return fmt.Errorf("%w: upsert place %s: %v", utils.ErrDatabaseError, p.ID, err)
	}
	err := s.embeddingRepo.Upsert(ctx, &db_models.PlaceEmbedding{
		PlaceID:   p.ID,
		Name:      p.Name,
		City:      p.City,
		Category:  p.Category,
		Tags:      p.Tags,
		Content:   text,
		Embedding: vector,
	})
	if err != nil {
		return fmt.Errorf("%w: upsert embedding %s: %v", utils.ErrDatabaseError, p.ID, err)
	}
	return nil
}

// ParsePlacesCSV reads a ';' separated place file. Header keys are trimmed,
// lowercased and have spaces replaced by underscores. Rows without any of
// id, code, slug or name are skipped. Unknown columns are kept in Extra.
func ParsePlacesCSV(r io.Reader) ([]db_models.Place, error) {
	reader := csv.NewReader(r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	for i, h := range header {
		header[i] = normalizeColumn(h)
	}

	var places []db_models.Place
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		row := make(map[string]string, len(header))
		for i, key := range header {
			if key == "" || i >= len(record) {
				continue
			}
			row[key] = record[i]
		}

		place, ok := placeFromRow(row)
		if !ok {
			continue
		}
		places = append(places, place)
	}
	return places, nil
}

func placeFromRow(row map[string]string) (db_models.Place, bool) {
	id := firstValue(row, "id", "code", "slug", "name")
	if id == "" {
		return db_models.Place{}, false
	}

	place := db_models.Place{
		ID:            id,
		Name:          orDefault(firstValue(row, "name"), "Lieu sans nom"),
		City:          orDefault(firstValue(row, "city"), "Ville inconnue"),
		Country:       orDefault(firstValue(row, "country"), "Morocco"),
		Category:      firstValue(row, "category"),
		Description:   firstValue(row, "description"),
		Budget:        firstValue(row, "budget"),
		DurationHours: parseDuration(firstValue(row, "duration_hours", "duration")),
		BestTime:      firstValue(row, "best_time"),
		Tips:          firstValue(row, "tips"),
		Tags:          parseTags(row["tags"]),
		Latitude:      parseFloat(row["latitude"]),
		Longitude:     parseFloat(row["longitude"]),
	}

	extra := map[string]string{}
	for k, v := range row {
		if !knownPlaceColumns[k] {
			extra[k] = v
		}
	}
	if len(extra) > 0 {
		data, _ := json.Marshal(extra)
		place.Extra = string(data)
	}
	return place, true
}

// PlaceDocument is the text embedded for a place.
func PlaceDocument(p db_models.Place) string {
	lines := []string{
		"Name: " + p.Name,
		fmt.Sprintf("City: %s (%s)", p.City, p.Country),
	}
	if p.Category != "" {
		lines = append(lines, "Category: "+p.Category)
	}
	if p.Budget != "" {
		lines = append(lines, "Budget: "+p.Budget)
	}
	if p.DurationHours != nil {
		lines = append(lines, "Recommended duration (hours): "+strconv.FormatFloat(*p.DurationHours, 'f', -1, 64))
	}
	if p.BestTime != "" {
		lines = append(lines, "Best time: "+p.BestTime)
	}
	if p.Description != "" {
		lines = append(lines, "Description: "+p.Description)
	}
	if p.Tips != "" {
		lines = append(lines, "Tips: "+p.Tips)
	}
	if len(p.Tags) > 0 {
		lines = append(lines, "Tags: "+strings.Join(p.Tags, ", "))
	}
	return strings.Join(lines, "\n")
}

func normalizeColumn(h string) string {
	h = strings.TrimPrefix(h, "\ufeff")
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(h)), " ", "_")
}

func firstValue(row map[string]string, keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(row[k]); v != "" {
			return v
		}
	}
	return ""
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func parseFloat(raw string) *float64 {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// parseDuration keeps an empty cell unset and normalizes everything else.
func parseDuration(raw string) *float64 {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	v := itinerary.ParseDurationHours(raw)
	return &v
}

func parseTags(raw string) []string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	sep := ";"
	if strings.Contains(s, ",") {
		sep = ","
	}
	var tags []string
	for _, t := range strings.Split(s, sep) {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
