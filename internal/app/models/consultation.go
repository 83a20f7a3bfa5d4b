package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ConsultationStatus string

const (
	ConsultationPending   ConsultationStatus = "pending"
	ConsultationAccepted  ConsultationStatus = "accepted"
	ConsultationRejected  ConsultationStatus = "rejected"
	ConsultationCompleted ConsultationStatus = "completed"
	ConsultationCancelled ConsultationStatus = "cancelled"

	// ConsultationRescheduled is a legacy stored value. It is accepted when
	// decoding old documents and mapped to accepted for display; no write
	// path produces it.
	ConsultationRescheduled ConsultationStatus = "rescheduled"
)

// IsCurrent reports whether s is one of the five statuses write paths may use.
func (s ConsultationStatus) IsCurrent() bool {
	switch s {
	case ConsultationPending, ConsultationAccepted, ConsultationRejected,
		ConsultationCompleted, ConsultationCancelled:
		return true
	}
	return false
}

func (s ConsultationStatus) IsTerminal() bool {
	switch s {
	case ConsultationRejected, ConsultationCompleted, ConsultationCancelled:
		return true
	}
	return false
}

// Display maps the legacy rescheduled value to accepted for outward-facing
// views. The stored value is never rewritten.
func (s ConsultationStatus) Display() ConsultationStatus {
	if s == ConsultationRescheduled {
		return ConsultationAccepted
	}
	return s
}

type ConsultationType string

const (
	ConsultationVideo    ConsultationType = "video"
	ConsultationPhone    ConsultationType = "phone"
	ConsultationInPerson ConsultationType = "in-person"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentSuccess PaymentStatus = "success"
	PaymentFailed  PaymentStatus = "failed"
)

type PaymentDetails struct {
	OrderID   string        `bson:"orderId" json:"order_id"`
	PaymentID string        `bson:"paymentId,omitempty" json:"payment_id,omitempty"`
	Signature string        `bson:"signature,omitempty" json:"signature,omitempty"`
	Amount    int64         `bson:"amount" json:"amount"`
	Currency  string        `bson:"currency" json:"currency"`
	Status    PaymentStatus `bson:"status" json:"status"`
	PaidAt    *time.Time    `bson:"paidAt,omitempty" json:"paid_at,omitempty"`
}

type RescheduleRequest struct {
	Date        string             `bson:"date" json:"date"`
	Time        string             `bson:"time" json:"time"`
	Message     string             `bson:"message" json:"message"`
	RequestedBy primitive.ObjectID `bson:"requestedBy" json:"requested_by"`
	RequestedAt time.Time          `bson:"requestedAt" json:"requested_at"`
}

// Consultation is a scheduled engagement between one client and one lawyer
// at a specific UTC instant. ScheduledDateTime is the single source of truth
// for "when"; Date and Time are display copies of the wall-clock input that
// produced it and must be kept consistent by every mutating operation.
type Consultation struct {
	ID                 primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	LawyerID           primitive.ObjectID  `bson:"lawyerId" json:"lawyer_id"`
	ClientID           primitive.ObjectID  `bson:"clientId" json:"client_id"`
	ScheduledDateTime  time.Time           `bson:"scheduledDateTime" json:"scheduled_date_time"`
	Date               string              `bson:"date" json:"date"`
	Time               string              `bson:"time" json:"time"`
	Type               ConsultationType    `bson:"type" json:"type"`
	Notes              string              `bson:"notes,omitempty" json:"notes,omitempty"`
	Status             ConsultationStatus  `bson:"status" json:"status"`
	Paid               bool                `bson:"paid" json:"paid"`
	PaymentDetails     *PaymentDetails     `bson:"paymentDetails,omitempty" json:"payment_details,omitempty"`
	UnreadByClient     bool                `bson:"unreadByClient" json:"unread_by_client"`
	Message            string              `bson:"message,omitempty" json:"message,omitempty"`
	RescheduleRequests []RescheduleRequest `bson:"rescheduleRequests" json:"reschedule_requests"`
	CreatedAt          time.Time           `bson:"createdAt" json:"created_at"`
	UpdatedAt          time.Time           `bson:"updatedAt" json:"updated_at"`
}

func (c *Consultation) IsLawyer(userID string) bool {
	return c.LawyerID.Hex() == userID
}

func (c *Consultation) IsClient(userID string) bool {
	return c.ClientID.Hex() == userID
}

func (c *Consultation) IsParty(userID string) bool {
	return c.IsLawyer(userID) || c.IsClient(userID)
}
