package service

import (
	"math/rand"

	"github.com/Intesar-Tahmid/Doctor-AI-Assistant/internal/model"
)

// AvailabilityOracle decides whether a matched doctor can currently take an
// appointment. Real scheduling data does not exist yet, so the production
// oracle is a random draw; the interface keeps the filter logic untouched
// when a real source lands.
type AvailabilityOracle interface {
	IsAvailable(doctor model.DoctorRecord) bool
}

// RandomAvailability flags each doctor available with a fixed probability.
// Deliberately unseeded: the simulation is meant to be non-reproducible,
// standing in for live scheduling data.
type RandomAvailability struct {
	rate float64
}

// NewRandomAvailability creates an oracle with the given availability rate
func NewRandomAvailability(rate float64) *RandomAvailability {
	if rate < 0 {
		rate = 0
	}
	if rate > 1 {
		rate = 1
	}
	return &RandomAvailability{rate: rate}
}

// IsAvailable draws independently per doctor
func (r *RandomAvailability) IsAvailable(model.DoctorRecord) bool {
	return rand.Float64() < r.rate
}
