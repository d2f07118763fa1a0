package repository

import (
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/Intesar-Tahmid/Doctor-AI-Assistant/internal/model"
)

// directoryHeader is the fixed column schema of the directory file.
var directoryHeader = []string{
	"Provider", "Department", "District", "Upazila", "Address",
	"Degree", "Post", "ContactNo", "Professional",
}

// CSVRepository loads the doctor directory from a CSV file. The file is
// read in full on first use and cached for the process lifetime; a missing
// or malformed file makes every query fail with the same load error.
type CSVRepository struct {
	path string

	once    sync.Once
	doctors []model.DoctorRecord
	loadErr error
}

// NewCSVRepository creates a repository backed by the given CSV file.
// The file is not touched until the first query.
func NewCSVRepository(path string) *CSVRepository {
	return &CSVRepository{path: path}
}

// All returns every directory record in file order, loading lazily once.
func (r *CSVRepository) All(context.Context) ([]model.DoctorRecord, error) {
	r.once.Do(func() {
		r.doctors, r.loadErr = r.load()
		if r.loadErr == nil {
			log.Printf("✅ Loaded %d doctors from %s", len(r.doctors), r.path)
		}
	})
	return r.doctors, r.loadErr
}

// Close is a no-op for the CSV backend
func (r *CSVRepository) Close() error {
	return nil
}

func (r *CSVRepository) load() ([]model.DoctorRecord, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open directory file %s: %w", r.path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse directory file %s: %w", r.path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("directory file %s is empty", r.path)
	}

	if err := checkHeader(rows[0]); err != nil {
		return nil, fmt.Errorf("directory file %s: %w", r.path, err)
	}

	doctors := make([]model.DoctorRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		doctors = append(doctors, model.DoctorRecord{
			ID:           int64(i + 1), // 1-based, in file order
			Provider:     row[0],
			Department:   row[1],
			District:     row[2],
			Upazila:      row[3],
			Address:      row[4],
			Degree:       row[5],
			Post:         row[6],
			ContactNo:    row[7],
			Professional: row[8],
		})
	}

	return doctors, nil
}

func checkHeader(header []string) error {
	if len(header) != len(directoryHeader) {
		return fmt.Errorf("schema mismatch: expected %d columns, got %d", len(directoryHeader), len(header))
	}
	for i, want := range directoryHeader {
		if header[i] != want {
			return fmt.Errorf("schema mismatch: column %d is %q, expected %q", i, header[i], want)
		}
	}
	return nil
}
