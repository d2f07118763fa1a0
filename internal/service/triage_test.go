package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Intesar-Tahmid/Doctor-AI-Assistant/internal/model"
)

func TestTriage_ClassifyThenSearch(t *testing.T) {
	gen := &fakeGenerator{response: "Cardiology"}
	classifier := NewSpecialtyClassifier(gen, "")
	directory := newTestDirectory(alwaysAvailable{})
	svc := NewTriageService(classifier, directory)

	resp, err := svc.Triage(context.Background(), model.UserConcern{Keywords: "chest pain"}, "dhaka")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if resp.Specialty != "Cardiology" {
		t.Errorf("Expected Cardiology, got %q", resp.Specialty)
	}
	if len(resp.Results) != 1 || resp.Results[0].ID != 1 {
		t.Errorf("Expected the Dhaka cardiologist, got %+v", resp.Results)
	}
	if gen.lastPrompt == "" {
		t.Error("Expected the classifier to have called the generator")
	}
}

func TestTriage_ClassificationFailurePropagates(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("connection refused")}
	classifier := NewSpecialtyClassifier(gen, "")
	svc := NewTriageService(classifier, newTestDirectory(alwaysAvailable{}))

	_, err := svc.Triage(context.Background(), model.UserConcern{Keywords: "fever"}, "")
	if !errors.Is(err, ErrClassificationUnavailable) {
		t.Fatalf("Expected ErrClassificationUnavailable, got %v", err)
	}
}

func TestTriage_UnknownSpecialtyIsEmptyResult(t *testing.T) {
	gen := &fakeGenerator{response: "Astrology"}
	classifier := NewSpecialtyClassifier(gen, "")
	svc := NewTriageService(classifier, newTestDirectory(alwaysAvailable{}))

	resp, err := svc.Triage(context.Background(), model.UserConcern{Keywords: "stars"}, "")
	if err != nil {
		t.Fatalf("An unknown label must filter to empty, not error: %v", err)
	}
	if len(resp.Results) != 0 {
		t.Errorf("Expected no results for an unknown specialty, got %d", len(resp.Results))
	}
}
