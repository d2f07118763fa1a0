package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/Intesar-Tahmid/Doctor-AI-Assistant/internal/model"
	"github.com/Intesar-Tahmid/Doctor-AI-Assistant/internal/utils"
)

// SpecialtyClassifier turns a user concern into a medical specialty label
// using the external text-generation service.
type SpecialtyClassifier struct {
	generator TextGenerator

	// fallbackSpecialty, when non-empty, is substituted for a failed or
	// empty model call instead of surfacing ErrClassificationUnavailable.
	// Off by default: a guessed specialty misroutes patients silently,
	// while a surfaced failure gives the host a retry path.
	fallbackSpecialty string
}

// NewSpecialtyClassifier creates a new specialty classifier
func NewSpecialtyClassifier(generator TextGenerator, fallbackSpecialty string) *SpecialtyClassifier {
	return &SpecialtyClassifier{
		generator:         generator,
		fallbackSpecialty: fallbackSpecialty,
	}
}

// Classify maps a concern to a specialty label. The caller must have
// verified the concern is non-empty; an empty one is a caller bug and
// returns ErrEmptyConcern. The returned label is whatever the model
// produced (normalized for known aliases) — downstream filtering copes
// with unknown labels by returning an empty result set.
func (sc *SpecialtyClassifier) Classify(ctx context.Context, concern model.UserConcern) (string, error) {
	if concern.IsEmpty() {
		return "", ErrEmptyConcern
	}

	prompt := buildTriagePrompt(concern)

	raw, err := sc.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return sc.fallback(fmt.Errorf("%w: %v", ErrClassificationUnavailable, err))
	}

	specialty := utils.CleanModelText(raw)
	if specialty == "" {
		return sc.fallback(fmt.Errorf("%w: empty model response", ErrClassificationUnavailable))
	}

	return normalizeLabel(specialty), nil
}

// fallback applies the configured fallback policy to a classification failure
func (sc *SpecialtyClassifier) fallback(err error) (string, error) {
	if sc.fallbackSpecialty == "" {
		return "", err
	}
	log.Printf("⚠️  Classification failed (%v), falling back to %q", err, sc.fallbackSpecialty)
	return sc.fallbackSpecialty, nil
}

// buildTriagePrompt assembles the one-shot triage prompt: fixed framing
// followed by one line per populated field, in the order keywords,
// questions, description, attachment note. Empty fields are omitted.
func buildTriagePrompt(concern model.UserConcern) string {
	parts := []string{
		"You are a medical triage assistant. Based on the following symptoms and concerns, " +
			"recommend the most appropriate medical specialty. Your response should be only the name " +
			"of the specialty (e.g., 'Cardiology', 'Dermatology', 'General Practice').",
		"User Input:",
	}

	if kw := strings.TrimSpace(concern.Keywords); kw != "" {
		parts = append(parts, fmt.Sprintf("Keywords: %s", kw))
	}
	if q := strings.TrimSpace(concern.Questions); q != "" {
		parts = append(parts, fmt.Sprintf("Questions: %s", q))
	}
	if desc := strings.TrimSpace(concern.Description); desc != "" {
		parts = append(parts, fmt.Sprintf("Description: %s", desc))
	}
	// Document contents are never parsed, only counted
	if concern.AttachmentCount > 0 {
		parts = append(parts, fmt.Sprintf("User also uploaded %d document(s)", concern.AttachmentCount))
	}

	return strings.Join(parts, "\n")
}
