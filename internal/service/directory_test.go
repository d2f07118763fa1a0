package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Intesar-Tahmid/Doctor-AI-Assistant/internal/model"
)

// stubRepository serves a fixed in-memory table
type stubRepository struct {
	doctors []model.DoctorRecord
	err     error
}

func (s *stubRepository) All(context.Context) ([]model.DoctorRecord, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.doctors, nil
}

func (s *stubRepository) Close() error { return nil }

// alwaysAvailable keeps every matched doctor
type alwaysAvailable struct{}

func (alwaysAvailable) IsAvailable(model.DoctorRecord) bool { return true }

// neverAvailable drops every matched doctor
type neverAvailable struct{}

func (neverAvailable) IsAvailable(model.DoctorRecord) bool { return false }

func testDoctors() []model.DoctorRecord {
	return []model.DoctorRecord{
		{ID: 1, Provider: "Karim", Department: "Cardiology", District: "Dhaka", Upazila: "Dhanmondi", Address: "Labaid Cardiac Hospital"},
		{ID: 2, Provider: "Rahman", Department: "Cardiology", District: "Chattogram", Upazila: "Panchlaish", Address: "Chattogram Heart Centre"},
		{ID: 3, Provider: "Islam", Department: "General Medicine", District: "Khulna", Upazila: "Khulna Sadar", Address: "Khulna Medical College Hospital"},
		{ID: 4, Provider: "Alam", Department: "General Surgery", District: "Dhaka", Upazila: "Ramna", Address: "Dhaka Medical College Hospital"},
		{ID: 5, Provider: "Begum", Department: "Gastroenterology", District: "Rajshahi", Upazila: "Boalia", Address: "Hospital in dhaka road area"},
	}
}

func newTestDirectory(oracle AvailabilityOracle) *DirectoryService {
	return NewDirectoryService(&stubRepository{doctors: testDoctors()}, oracle)
}

func TestQuery_SpecialtyMatchCaseInsensitive(t *testing.T) {
	svc := newTestDirectory(alwaysAvailable{})

	resp, err := svc.Query(context.Background(), "cARdiOlogy", "")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(resp.Results) != 2 {
		t.Fatalf("Expected 2 cardiologists, got %d", len(resp.Results))
	}
	if resp.Results[0].ID != 1 || resp.Results[1].ID != 2 {
		t.Error("Results must preserve original table order")
	}
	for _, r := range resp.Results {
		if !r.IsAvailable {
			t.Error("Returned doctors must carry is_available=true")
		}
	}
}

func TestQuery_SynonymUnion(t *testing.T) {
	svc := newTestDirectory(alwaysAvailable{})

	// Any letter case of "general practice" resolves to the union of
	// General Medicine and General Surgery
	for _, specialty := range []string{"general practice", "General Practice", "GENERAL PRACTICE"} {
		resp, err := svc.Query(context.Background(), specialty, "")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if len(resp.Results) != 2 {
			t.Fatalf("%q: expected 2 doctors, got %d", specialty, len(resp.Results))
		}
		if resp.Results[0].Department != "General Medicine" || resp.Results[1].Department != "General Surgery" {
			t.Errorf("%q: expected the General Medicine + General Surgery union in table order", specialty)
		}
	}
}

func TestQuery_UnmatchedSpecialtyIsEmptyNotError(t *testing.T) {
	svc := newTestDirectory(alwaysAvailable{})

	resp, err := svc.Query(context.Background(), "Nonexistent Specialty", "")
	if err != nil {
		t.Fatalf("Unmatched specialty must not error, got %v", err)
	}
	if len(resp.Results) != 0 || resp.Total != 0 {
		t.Errorf("Expected empty result, got %d results (total %d)", len(resp.Results), resp.Total)
	}
}

func TestQuery_LocationSubstringORAcrossFields(t *testing.T) {
	svc := newTestDirectory(alwaysAvailable{})

	tests := []struct {
		name      string
		specialty string
		location  string
		wantIDs   []int64
	}{
		{
			name:      "district match, case-insensitive",
			specialty: "Cardiology",
			location:  "dhaka",
			wantIDs:   []int64{1},
		},
		{
			name:      "upazila match",
			specialty: "Cardiology",
			location:  "Panchlaish",
			wantIDs:   []int64{2},
		},
		{
			name:      "address-only match still passes",
			specialty: "Gastroenterology",
			location:  "dhaka",
			wantIDs:   []int64{5},
		},
		{
			name:      "no location leaves specialty set intact",
			specialty: "Cardiology",
			location:  "",
			wantIDs:   []int64{1, 2},
		},
		{
			name:      "unmatched location is empty, not an error",
			specialty: "Cardiology",
			location:  "Mars",
			wantIDs:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.Query(context.Background(), tt.specialty, tt.location)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if len(resp.Results) != len(tt.wantIDs) {
				t.Fatalf("Expected %d results, got %d", len(tt.wantIDs), len(resp.Results))
			}
			for i, want := range tt.wantIDs {
				if resp.Results[i].ID != want {
					t.Errorf("Result %d: expected ID %d, got %d", i, want, resp.Results[i].ID)
				}
			}
		})
	}
}

func TestQuery_AvailabilityNeverAddsRecords(t *testing.T) {
	available := newTestDirectory(alwaysAvailable{})
	unavailable := newTestDirectory(neverAvailable{})

	respAll, err := available.Query(context.Background(), "Cardiology", "")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	respNone, err := unavailable.Query(context.Background(), "Cardiology", "")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// Total counts the pre-availability candidate set either way
	if respAll.Total != 2 || respNone.Total != 2 {
		t.Errorf("Expected total 2 regardless of the draw, got %d and %d", respAll.Total, respNone.Total)
	}
	if len(respAll.Results) > respAll.Total {
		t.Error("Availability filtering must never add records")
	}
	if len(respNone.Results) != 0 {
		t.Errorf("Expected 0 available doctors, got %d", len(respNone.Results))
	}
}

func TestCandidates_IdempotentForFixedTable(t *testing.T) {
	svc := newTestDirectory(alwaysAvailable{})

	first, err := svc.Candidates(context.Background(), "Cardiology", "dhaka")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	second, err := svc.Candidates(context.Background(), "Cardiology", "dhaka")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("Candidate sets differ in size: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Errorf("Candidate %d differs: %d vs %d", i, first[i].ID, second[i].ID)
		}
	}
}

func TestQuery_BackingStoreFailureIsDirectoryUnavailable(t *testing.T) {
	svc := NewDirectoryService(&stubRepository{err: errors.New("no such file")}, alwaysAvailable{})

	_, err := svc.Query(context.Background(), "Cardiology", "")
	if !errors.Is(err, ErrDirectoryUnavailable) {
		t.Fatalf("Expected ErrDirectoryUnavailable, got %v", err)
	}
}

func TestGetDoctor(t *testing.T) {
	svc := newTestDirectory(alwaysAvailable{})

	doctor, err := svc.GetDoctor(context.Background(), 3)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if doctor.Provider != "Islam" {
		t.Errorf("Expected Islam, got %s", doctor.Provider)
	}

	_, err = svc.GetDoctor(context.Background(), 99)
	if !errors.Is(err, ErrDoctorNotFound) {
		t.Fatalf("Expected ErrDoctorNotFound, got %v", err)
	}
}
