package model

// BookingRequest is the host's mock booking submission. Date is whatever
// the host collected earlier (e.g. "2026-08-23"); it is echoed back, never
// interpreted.
type BookingRequest struct {
	DoctorID int64  `json:"doctor_id" binding:"required"`
	Slot     string `json:"slot" binding:"required"`
	Date     string `json:"date" binding:"required"`
}

// BookingConfirmation is a presentation acknowledgment only. Nothing is
// persisted; the reference exists so the host can show something
// receipt-shaped.
type BookingConfirmation struct {
	Reference string `json:"reference"`
	Provider  string `json:"provider"`
	Slot      string `json:"slot"`
	Date      string `json:"date"`
	Message   string `json:"message"`
}
