package repository

import (
	"context"

	"github.com/Intesar-Tahmid/Doctor-AI-Assistant/internal/model"
)

// DoctorRepository supplies the doctor directory. Implementations load the
// full table once and hand out the same slice on every call; callers must
// treat the returned records as read-only shared state.
type DoctorRepository interface {
	// All returns every directory record in original table order.
	All(ctx context.Context) ([]model.DoctorRecord, error)

	// Close releases any resources held by the backend.
	Close() error
}
