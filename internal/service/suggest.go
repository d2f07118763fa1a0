package service

import (
	"context"
	"fmt"

	"github.com/Intesar-Tahmid/Doctor-AI-Assistant/internal/model"
)

// DepartmentVectorStore stores department embeddings and answers
// nearest-neighbour lookups. Only the PostgreSQL backend provides one.
type DepartmentVectorStore interface {
	UpsertDepartmentEmbedding(ctx context.Context, department string, embedding []float32) error
	SuggestDepartments(ctx context.Context, queryEmbedding []float32, limit int) ([]model.DepartmentSuggestion, error)
}

// SuggestService offers embedding-based department suggestions for free
// text. Purely advisory for the host UI: it never changes how Query
// resolves a specialty, and an unmatched specialty still returns empty.
type SuggestService struct {
	embedder Embedder
	store    DepartmentVectorStore
}

// NewSuggestService creates a new suggestion service
func NewSuggestService(embedder Embedder, store DepartmentVectorStore) *SuggestService {
	return &SuggestService{
		embedder: embedder,
		store:    store,
	}
}

// Suggest embeds the text and returns the nearest stored departments.
func (s *SuggestService) Suggest(ctx context.Context, text string, topK int) ([]model.DepartmentSuggestion, error) {
	if topK <= 0 {
		topK = 3
	}

	embeddings, err := s.embedder.CreateEmbeddings(ctx, []string{text})
	if err != nil {
		return nil, fmt.Errorf("failed to embed query text: %w", err)
	}

	return s.store.SuggestDepartments(ctx, embeddings[0], topK)
}

// UpsertDepartments embeds and stores the given department names, returning
// how many succeeded plus per-department errors.
func (s *SuggestService) UpsertDepartments(ctx context.Context, departments []string) (int, []string) {
	embeddings, err := s.embedder.CreateEmbeddings(ctx, departments)
	if err != nil {
		return 0, []string{fmt.Sprintf("failed to create embeddings: %v", err)}
	}

	success := 0
	var errors []string
	for i, dept := range departments {
		if err := s.store.UpsertDepartmentEmbedding(ctx, dept, embeddings[i]); err != nil {
			errors = append(errors, fmt.Sprintf("%s: %v", dept, err))
			continue
		}
		success++
	}

	return success, errors
}
