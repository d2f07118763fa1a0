package service

import (
	"testing"

	"github.com/Intesar-Tahmid/Doctor-AI-Assistant/internal/model"
)

func TestRandomAvailability_Extremes(t *testing.T) {
	doctor := model.DoctorRecord{ID: 1, Provider: "Karim"}

	always := NewRandomAvailability(1.0)
	never := NewRandomAvailability(0.0)

	for i := 0; i < 100; i++ {
		if !always.IsAvailable(doctor) {
			t.Fatal("Rate 1.0 must always be available")
		}
		if never.IsAvailable(doctor) {
			t.Fatal("Rate 0.0 must never be available")
		}
	}
}

func TestRandomAvailability_RateClamped(t *testing.T) {
	doctor := model.DoctorRecord{ID: 1}

	low := NewRandomAvailability(-0.5)
	high := NewRandomAvailability(1.5)

	for i := 0; i < 100; i++ {
		if low.IsAvailable(doctor) {
			t.Fatal("Negative rate must clamp to never available")
		}
		if !high.IsAvailable(doctor) {
			t.Fatal("Rate above 1 must clamp to always available")
		}
	}
}
