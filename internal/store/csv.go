package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ahmetcoskunkizilkaya/review-analyzer/internal/models"
)

var csvHeader = []string{"ReviewId", "Location", "Timestamp", "ReviewBody"}

// CSVPersister keeps reviews in a CSV file with a header row. Every append
// rewrites the whole file through a temp file and rename.
type CSVPersister struct {
	path string
}

func NewCSVPersister(path string) *CSVPersister {
	return &CSVPersister{path: path}
}

// Load reads the file. A missing or empty file yields no reviews. Columns are
// matched by header name and extra columns are ignored.
func (p *CSVPersister) Load() ([]models.Review, error) {
	f, err := os.Open(p.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header of %s: %w", p.path, err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	for _, name := range csvHeader {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("%s: missing column %q", p.path, name)
		}
	}

	field := func(rec []string, name string) string {
		if i := col[name]; i < len(rec) {
			return rec[i]
		}
		return ""
	}

	var reviews []models.Review
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", p.path, err)
		}
		reviews = append(reviews, models.Review{
			ReviewId:   field(rec, "ReviewId"),
			Location:   field(rec, "Location"),
			Timestamp:  field(rec, "Timestamp"),
			ReviewBody: field(rec, "ReviewBody"),
		})
	}
	return reviews, nil
}

func (p *CSVPersister) Append(all []models.Review, _ models.Review) error {
	dir := filepath.Dir(p.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".reviews-*.csv")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err := w.Write(csvHeader); err != nil {
		tmp.Close()
		return err
	}
	for _, r := range all {
		if err := w.Write([]string{r.ReviewId, r.Location, r.Timestamp, r.ReviewBody}); err != nil {
			tmp.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), p.path)
}
