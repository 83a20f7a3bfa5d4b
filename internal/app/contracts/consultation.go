package contracts

import (
	"context"
	"time"

	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/app/models"
	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/pkg/dto/requests"
	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/pkg/dto/responses"
)

type ConsultationUsecase interface {
	Schedule(ctx context.Context, sessionData string, request *requests.CreateConsultationRequest) (*responses.CreateConsultation, error)
	ListForLawyer(ctx context.Context, sessionData string) ([]responses.LawyerConsultation, error)
	ListForClient(ctx context.Context, sessionData string) ([]responses.ClientConsultation, error)
	UpdateStatus(ctx context.Context, sessionData, consultationID string, request *requests.UpdateConsultationStatusRequest) (*responses.ConsultationStatusUpdate, error)
	Cancel(ctx context.Context, sessionData, consultationID string) (*responses.CancelConsultation, error)
	Reschedule(ctx context.Context, sessionData, consultationID string, request *requests.RescheduleConsultationRequest) (*responses.RescheduleConsultation, error)
	UnreadCount(ctx context.Context, sessionData string) (*responses.UnreadCount, error)
	MarkRead(ctx context.Context, sessionData string) error

	// CompleteDueConsultations flips every accepted consultation whose
	// scheduled instant has passed to completed. Idempotent.
	CompleteDueConsultations(ctx context.Context) (int64, error)
}

// StatusUpdateFields narrows what a conditional status write may touch
// besides the status itself.
type StatusUpdateFields struct {
	UnreadByClient *bool
	Message        *string
}

type ConsultationRepository interface {
	Create(ctx context.Context, consultation *models.Consultation) (string, error)
	FindByID(ctx context.Context, consultationID string) (*models.Consultation, error)
	FindByLawyerID(ctx context.Context, lawyerID string) ([]models.Consultation, error)
	FindByClientID(ctx context.Context, clientID string) ([]models.Consultation, error)

	// UpdateStatusIf performs a compare-and-swap: the status (and optional
	// extra fields) are written only when the stored status is one of
	// expected. Returns false when no document matched.
	UpdateStatusIf(ctx context.Context, consultationID string, expected []models.ConsultationStatus, target models.ConsultationStatus, fields StatusUpdateFields) (bool, error)

	// AppendRescheduleIf atomically appends the reschedule entry and
	// overwrites the schedule, but only while the record is paid, in one of
	// the expected statuses, and has no prior reschedule. The limit check
	// and the append are a single conditional update.
	AppendRescheduleIf(ctx context.Context, consultationID string, expected []models.ConsultationStatus, entry models.RescheduleRequest, newInstant time.Time, newStatus models.ConsultationStatus, message string, unreadByClient bool) (bool, error)

	// SetPaymentOrderIf stores freshly created gateway order details, only
	// while the record is accepted and unpaid.
	SetPaymentOrderIf(ctx context.Context, consultationID string, details *models.PaymentDetails) (bool, error)

	// MarkPaymentSucceededIf records a verified payment, only while unpaid.
	MarkPaymentSucceededIf(ctx context.Context, consultationID string, details *models.PaymentDetails) (bool, error)

	// MarkPaymentFailed records a failed verification attempt; deliberately
	// unconditional so the audit trail survives the rejected request.
	MarkPaymentFailed(ctx context.Context, consultationID, orderID, paymentID string) error

	Delete(ctx context.Context, consultationID string) error

	// CompleteDue is the sweep write: accepted AND scheduled <= now ->
	// completed, in bulk. Returns the number of flipped documents.
	CompleteDue(ctx context.Context, now time.Time) (int64, error)

	CountUnreadByClient(ctx context.Context, clientID string) (int64, error)
	MarkAllReadForClient(ctx context.Context, clientID string) error
}

// ConsultationNotifier publishes lifecycle events after state changes so any
// transport-layer notifier can subscribe, instead of the handlers reaching
// into ambient global state.
type ConsultationNotifier interface {
	PublishStatusChanged(ctx context.Context, consultation *models.Consultation) error
}
