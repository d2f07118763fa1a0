package service

import (
	"context"
	"log"
	"time"

	"github.com/Intesar-Tahmid/Doctor-AI-Assistant/internal/model"
)

// TriageService composes the two core steps of an interaction: classify the
// concern, then query the directory with the resulting specialty. Each
// interaction is one classification call and one directory query, in order.
type TriageService struct {
	classifier *SpecialtyClassifier
	directory  *DirectoryService
}

// NewTriageService creates a new triage service
func NewTriageService(classifier *SpecialtyClassifier, directory *DirectoryService) *TriageService {
	return &TriageService{
		classifier: classifier,
		directory:  directory,
	}
}

// Triage runs classify-then-search for one interaction. A classification
// failure propagates; a specialty with no matching doctors is a valid
// empty response.
func (s *TriageService) Triage(ctx context.Context, concern model.UserConcern, location string) (*model.TriageResponse, error) {
	startTime := time.Now()

	specialty, err := s.classifier.Classify(ctx, concern)
	if err != nil {
		return nil, err
	}

	log.Printf("🩺 Recommended specialty: %s", specialty)

	search, err := s.directory.Query(ctx, specialty, location)
	if err != nil {
		return nil, err
	}

	return &model.TriageResponse{
		Specialty: specialty,
		Results:   search.Results,
		Total:     search.Total,
		Took:      time.Since(startTime).Milliseconds(),
	}, nil
}
