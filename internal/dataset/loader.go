package dataset

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"dashforge/internal/engine"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// LoadFile reads one dataset file into rows. The dataset ID is the file
// name without its extension. JSON files hold an array of flat records;
// CSV files contribute their header row as column names with every cell
// kept as a string (the engine's coercion policy handles the rest).
func LoadFile(path string) (string, []engine.Row, error) {
	id := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read dataset file: %w", err)
	}

	var rows []engine.Row
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		rows, err = decodeJSONRows(data)
	case ".csv":
		rows, err = decodeCSVRows(data)
	default:
		return "", nil, fmt.Errorf("unsupported dataset format %q", filepath.Ext(path))
	}
	if err != nil {
		return "", nil, fmt.Errorf("dataset %s: %w", id, err)
	}
	return id, rows, nil
}

func decodeJSONRows(data []byte) ([]engine.Row, error) {
	var rows []engine.Row
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode JSON rows: %w", err)
	}
	return rows, nil
}

func decodeCSVRows(data []byte) ([]engine.Row, error) {
	reader := csv.NewReader(strings.NewReader(string(data)))
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	header := records[0]
	rows := make([]engine.Row, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(engine.Row, len(header))
		for i, name := range header {
			if i < len(record) {
				row[name] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// LoadDir loads every .json and .csv file of a directory into the store,
// concurrently. The first failing file aborts the load.
func LoadDir(ctx context.Context, store *Store, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read datasets directory: %w", err)
	}

	g, _ := errgroup.WithContext(ctx)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".json" && ext != ".csv" {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		g.Go(func() error {
			id, rows, err := LoadFile(path)
			if err != nil {
				return err
			}
			store.Put(id, rows)
			log.Info().Str("dataset", id).Int("rows", len(rows)).Msg("Dataset loaded")
			return nil
		})
	}
	return g.Wait()
}
