package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Intesar-Tahmid/Doctor-AI-Assistant/internal/model"
	"github.com/Intesar-Tahmid/Doctor-AI-Assistant/internal/repository"
)

// DirectoryService answers specialty/location queries against the loaded
// doctor directory. The table is read-only after load and shared between
// queries; the only per-query state is the availability draw.
type DirectoryService struct {
	repo   repository.DoctorRepository
	oracle AvailabilityOracle
}

// NewDirectoryService creates a new directory service
func NewDirectoryService(repo repository.DoctorRepository, oracle AvailabilityOracle) *DirectoryService {
	return &DirectoryService{
		repo:   repo,
		oracle: oracle,
	}
}

// Query filters the directory by specialty and optional location, then
// applies the availability simulation. Unmatched specialty or location is
// an empty result, never an error; only a missing/malformed backing store
// fails, with ErrDirectoryUnavailable.
func (s *DirectoryService) Query(ctx context.Context, specialty, location string) (*model.SearchResponse, error) {
	startTime := time.Now()

	candidates, err := s.Candidates(ctx, specialty, location)
	if err != nil {
		return nil, err
	}

	// Independent draw per remaining record; unavailable doctors are
	// dropped, never returned with a false flag
	results := make([]model.DoctorSearchResult, 0, len(candidates))
	for _, doctor := range candidates {
		if !s.oracle.IsAvailable(doctor) {
			continue
		}
		results = append(results, model.DoctorSearchResult{
			DoctorRecord: doctor,
			IsAvailable:  true,
		})
	}

	return &model.SearchResponse{
		Results:   results,
		Total:     len(candidates),
		Specialty: specialty,
		Took:      time.Since(startTime).Milliseconds(),
	}, nil
}

// Candidates returns the specialty+location matches in original table
// order, before the availability draw. Deterministic for a fixed table.
func (s *DirectoryService) Candidates(ctx context.Context, specialty, location string) ([]model.DoctorRecord, error) {
	doctors, err := s.repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDirectoryUnavailable, err)
	}

	matched := filterByDepartment(doctors, []string{specialty})

	// No exact department match: retry with the synonym table's union of
	// mapped departments. Still nothing is a valid empty result.
	if len(matched) == 0 {
		if departments := resolveSynonyms(specialty); len(departments) > 0 {
			matched = filterByDepartment(doctors, departments)
		}
	}

	if location = strings.TrimSpace(location); location != "" {
		matched = filterByLocation(matched, location)
	}

	return matched, nil
}

// GetDoctor returns a single directory record by ID.
func (s *DirectoryService) GetDoctor(ctx context.Context, id int64) (*model.DoctorRecord, error) {
	doctors, err := s.repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDirectoryUnavailable, err)
	}

	for i := range doctors {
		if doctors[i].ID == id {
			doctor := doctors[i]
			return &doctor, nil
		}
	}
	return nil, ErrDoctorNotFound
}

// filterByDepartment keeps records whose department equals any of the given
// names, case-insensitively. Order is preserved.
func filterByDepartment(doctors []model.DoctorRecord, departments []string) []model.DoctorRecord {
	wanted := make(map[string]bool, len(departments))
	for _, d := range departments {
		wanted[strings.ToLower(strings.TrimSpace(d))] = true
	}

	var matched []model.DoctorRecord
	for _, doctor := range doctors {
		if wanted[strings.ToLower(doctor.Department)] {
			matched = append(matched, doctor)
		}
	}
	return matched
}

// filterByLocation keeps records where the location appears as a substring
// of district, upazila, or address (logical OR), case-insensitively.
func filterByLocation(doctors []model.DoctorRecord, location string) []model.DoctorRecord {
	needle := strings.ToLower(location)

	var matched []model.DoctorRecord
	for _, doctor := range doctors {
		if strings.Contains(strings.ToLower(doctor.District), needle) ||
			strings.Contains(strings.ToLower(doctor.Upazila), needle) ||
			strings.Contains(strings.ToLower(doctor.Address), needle) {
			matched = append(matched, doctor)
		}
	}
	return matched
}
