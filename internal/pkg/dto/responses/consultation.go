package responses

import "time"

type ConsultationParticipant struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email,omitempty"`
	ProfileImage string `json:"profile_image,omitempty"`
}

type ConsultationLawyer struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	ProfileImage    string `json:"profile_image,omitempty"`
	ConsultationFee int64  `json:"consultation_fee"`
	Currency        string `json:"currency"`
}

type RescheduleEntry struct {
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Message     string    `json:"message"`
	RequestedBy string    `json:"requested_by"`
	RequestedAt time.Time `json:"requested_at"`
}

type CreateConsultation struct {
	ID                string    `json:"id"`
	Status            string    `json:"status"`
	Date              string    `json:"date"`
	Time              string    `json:"time"`
	Type              string    `json:"type"`
	ScheduledDateTime time.Time `json:"scheduled_date_time"`
}

// LawyerConsultation is one row of the lawyer-facing list; the status is
// legacy-mapped for display.
type LawyerConsultation struct {
	ID                 string                  `json:"id"`
	Client             ConsultationParticipant `json:"client"`
	Date               string                  `json:"date"`
	Time               string                  `json:"time"`
	ScheduledDateTime  time.Time               `json:"scheduled_date_time"`
	Type               string                  `json:"type"`
	Notes              string                  `json:"notes,omitempty"`
	Status             string                  `json:"status"`
	Paid               bool                    `json:"paid"`
	Message            string                  `json:"message,omitempty"`
	RescheduleRequests []RescheduleEntry       `json:"reschedule_requests"`
}

type ClientConsultation struct {
	ID                 string             `json:"id"`
	Lawyer             ConsultationLawyer `json:"lawyer"`
	Date               string             `json:"date"`
	Time               string             `json:"time"`
	ScheduledDateTime  time.Time          `json:"scheduled_date_time"`
	Type               string             `json:"type"`
	Notes              string             `json:"notes,omitempty"`
	Status             string             `json:"status"`
	Paid               bool               `json:"paid"`
	UnreadByClient     bool               `json:"unread_by_client"`
	Message            string             `json:"message,omitempty"`
	RescheduleRequests []RescheduleEntry  `json:"reschedule_requests"`
}

type ConsultationStatusUpdate struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type CancelConsultation struct {
	ID      string `json:"id"`
	Status  string `json:"status,omitempty"`
	Deleted bool   `json:"deleted"`
}

type RescheduleConsultation struct {
	ID                string    `json:"id"`
	Status            string    `json:"status"`
	Date              string    `json:"date"`
	Time              string    `json:"time"`
	ScheduledDateTime time.Time `json:"scheduled_date_time"`
	Message           string    `json:"message"`
}

type UnreadCount struct {
	Count int64 `json:"count"`
}
