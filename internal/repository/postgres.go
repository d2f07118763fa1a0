package repository

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/Intesar-Tahmid/Doctor-AI-Assistant/internal/model"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

// PostgresRepository loads the doctor directory from PostgreSQL. The
// directory table is immutable and small, so the full table is read into
// memory on first query and filtered there, same as the CSV backend. The
// connection stays open for the embedding-suggestion tables, which are the
// only thing queried per request.
type PostgresRepository struct {
	db *sqlx.DB

	once    sync.Once
	doctors []model.DoctorRecord
	loadErr error
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(dsn string, maxConn, maxIdleConn int) (*PostgresRepository, error) {
	// Disable prepared statement caching to avoid "unnamed prepared statement does not exist" errors
	if !strings.Contains(dsn, "?") {
		dsn += "?prefer_simple_protocol=true"
	} else {
		dsn += "&prefer_simple_protocol=true"
	}

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(maxConn)
	db.SetMaxIdleConns(maxIdleConn)
	db.SetConnMaxLifetime(5 * time.Minute) // Shorter lifetime to avoid stale connections
	db.SetConnMaxIdleTime(2 * time.Minute) // Close idle connections sooner

	// Test connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresRepository{db: db}, nil
}

// Close closes the database connection
func (r *PostgresRepository) Close() error {
	return r.db.Close()
}

// All returns every directory record in table order, loading once.
func (r *PostgresRepository) All(ctx context.Context) ([]model.DoctorRecord, error) {
	r.once.Do(func() {
		query := `
			SELECT id, provider, department, district, upazila, address,
			       degree, post, contact_no, professional
			FROM doctor_directory
			ORDER BY id
		`
		var doctors []model.DoctorRecord
		if err := r.db.SelectContext(ctx, &doctors, query); err != nil {
			r.loadErr = fmt.Errorf("failed to load doctor directory: %w", err)
			return
		}
		r.doctors = doctors
		log.Printf("✅ Loaded %d doctors from PostgreSQL", len(doctors))
	})
	return r.doctors, r.loadErr
}

// UpsertDepartmentEmbedding stores or refreshes the embedding for one
// department name.
func (r *PostgresRepository) UpsertDepartmentEmbedding(ctx context.Context, department string, embedding []float32) error {
	vec := pgvector.NewVector(embedding)
	query := `
		INSERT INTO department_embeddings (department, embedding, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (department) DO UPDATE SET embedding = $2, updated_at = NOW()
	`
	if _, err := r.db.ExecContext(ctx, query, department, vec); err != nil {
		return fmt.Errorf("failed to upsert embedding for %s: %w", department, err)
	}
	return nil
}

// SuggestDepartments returns the departments whose stored embeddings sit
// nearest the query embedding, closest first.
func (r *PostgresRepository) SuggestDepartments(ctx context.Context, queryEmbedding []float32, limit int) ([]model.DepartmentSuggestion, error) {
	vec := pgvector.NewVector(queryEmbedding)
	query := `
		SELECT department, embedding <=> $1 AS distance
		FROM department_embeddings
		ORDER BY embedding <=> $1
		LIMIT $2
	`
	var suggestions []model.DepartmentSuggestion
	if err := r.db.SelectContext(ctx, &suggestions, query, vec, limit); err != nil {
		return nil, fmt.Errorf("failed to suggest departments: %w", err)
	}
	return suggestions, nil
}
