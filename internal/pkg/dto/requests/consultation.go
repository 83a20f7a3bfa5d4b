package requests

type CreateConsultationRequest struct {
	LawyerID              string `json:"lawyer_id" validate:"required"`
	Date                  string `json:"date" validate:"required,datevalue"`
	Time                  string `json:"time" validate:"required,hhmm"`
	Type                  string `json:"type" validate:"required,consultation_type"`
	Notes                 string `json:"notes"`
	TimezoneOffsetMinutes int    `json:"timezone_offset_minutes" validate:"min=-720,max=840"`

	// Resolved from the session, never from the body.
	ClientID string `json:"-"`
}

type UpdateConsultationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending accepted rejected completed"`
}

type RescheduleConsultationRequest struct {
	Date                  string `json:"date" validate:"required,datevalue"`
	Time                  string `json:"time" validate:"required,hhmm"`
	Message               string `json:"message"`
	TimezoneOffsetMinutes int    `json:"timezone_offset_minutes" validate:"min=-720,max=840"`
}
