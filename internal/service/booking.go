package service

import (
	"context"
	"fmt"

	"github.com/Intesar-Tahmid/Doctor-AI-Assistant/internal/model"

	"github.com/google/uuid"
)

// TimeSlots is the fixed candidate list the host offers for appointments.
var TimeSlots = []string{"9:00 AM", "11:00 AM", "2:00 PM", "4:00 PM"}

// BookingService produces mock booking acknowledgments. Nothing is
// persisted; the confirmation exists so the host has something to render.
type BookingService struct {
	directory *DirectoryService
}

// NewBookingService creates a new booking service
func NewBookingService(directory *DirectoryService) *BookingService {
	return &BookingService{directory: directory}
}

// Slots returns the fixed candidate slot list.
func (s *BookingService) Slots() []string {
	return TimeSlots
}

// Book validates the request against the directory and slot list and
// returns an ephemeral confirmation.
func (s *BookingService) Book(ctx context.Context, req model.BookingRequest) (*model.BookingConfirmation, error) {
	if !validSlot(req.Slot) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTimeSlot, req.Slot)
	}

	doctor, err := s.directory.GetDoctor(ctx, req.DoctorID)
	if err != nil {
		return nil, err
	}

	return &model.BookingConfirmation{
		Reference: uuid.NewString(),
		Provider:  doctor.Provider,
		Slot:      req.Slot,
		Date:      req.Date,
		Message:   fmt.Sprintf("Appointment booked with Dr. %s at %s on %s!", doctor.Provider, req.Slot, req.Date),
	}, nil
}

func validSlot(slot string) bool {
	for _, s := range TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}
