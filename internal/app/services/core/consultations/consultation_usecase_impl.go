package consultations

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/app/contracts"
	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/app/models"
	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/pkg/constvars"
	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/pkg/dto/requests"
	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/pkg/dto/responses"
	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/pkg/exceptions"
	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/pkg/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

var (
	consultationUsecaseInstance contracts.ConsultationUsecase
	onceConsultationUsecase     sync.Once
)

// allowedTransitions is the only source of truth for explicit status writes.
// Cancellation and the completion sweep have dedicated paths and are not
// reachable through UpdateStatus.
var allowedTransitions = map[models.ConsultationStatus]map[models.ConsultationStatus]bool{
	models.ConsultationPending: {
		models.ConsultationAccepted: true,
		models.ConsultationRejected: true,
	},
	models.ConsultationAccepted: {
		models.ConsultationCompleted: true,
	},
}

type consultationUsecase struct {
	ConsultationRepository contracts.ConsultationRepository
	LawyerRepository       contracts.LawyerRepository
	UserRepository         contracts.UserRepository
	SessionService         contracts.SessionService
	Notifier               contracts.ConsultationNotifier
	Log                    *zap.Logger
}

func NewConsultationUsecase(
	consultationRepository contracts.ConsultationRepository,
	lawyerRepository contracts.LawyerRepository,
	userRepository contracts.UserRepository,
	sessionService contracts.SessionService,
	notifier contracts.ConsultationNotifier,
	logger *zap.Logger,
) contracts.ConsultationUsecase {
	onceConsultationUsecase.Do(func() {
		instance := &consultationUsecase{
			ConsultationRepository: consultationRepository,
			LawyerRepository:       lawyerRepository,
			UserRepository:         userRepository,
			SessionService:         sessionService,
			Notifier:               notifier,
			Log:                    logger,
		}
		consultationUsecaseInstance = instance
	})
	return consultationUsecaseInstance
}

func (uc *consultationUsecase) parseSession(ctx context.Context, sessionData string) (*models.Session, error) {
	if sessionData == "" {
		return nil, exceptions.ErrMissingSessionData(fmt.Errorf("empty session data in context"))
	}
	return uc.SessionService.ParseSessionData(ctx, sessionData)
}

func (uc *consultationUsecase) publishStatusChanged(ctx context.Context, requestID string, consultation *models.Consultation) {
	if err := uc.Notifier.PublishStatusChanged(ctx, consultation); err != nil {
		uc.Log.Warn("consultationUsecase failed to publish status change event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingConsultationIDKey, consultation.ID.Hex()),
			zap.Error(err),
		)
	}
}

func (uc *consultationUsecase) Schedule(ctx context.Context, sessionData string, request *requests.CreateConsultationRequest) (*responses.CreateConsultation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("consultationUsecase.Schedule called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingLawyerIDKey, request.LawyerID),
	)

	session, err := uc.parseSession(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	if !session.IsClient() {
		return nil, exceptions.ErrNotMatchRoleType(fmt.Errorf("user %s is not a client", session.UserID))
	}
	request.ClientID = session.UserID

	lawyer, err := uc.LawyerRepository.FindByID(ctx, request.LawyerID)
	if err != nil {
		uc.Log.Error("consultationUsecase.Schedule error calling LawyerRepository.FindByID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if lawyer == nil {
		return nil, exceptions.ErrLawyerNotFound(fmt.Errorf("lawyer %s not found", request.LawyerID))
	}

	scheduledAt, err := utils.ToUTCInstant(request.Date, request.Time, request.TimezoneOffsetMinutes)
	if err != nil {
		return nil, exceptions.ErrCannotParseTime(err)
	}
	if !scheduledAt.After(time.Now().UTC()) {
		return nil, exceptions.ErrConsultationDateInPast(fmt.Errorf("requested instant %s already passed", scheduledAt.Format(time.RFC3339)))
	}

	clientObjectID, err := primitive.ObjectIDFromHex(request.ClientID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	now := time.Now().UTC()
	consultation := &models.Consultation{
		LawyerID:           lawyer.ID,
		ClientID:           clientObjectID,
		ScheduledDateTime:  scheduledAt,
		Date:               request.Date,
		Time:               request.Time,
		Type:               models.ConsultationType(request.Type),
		Notes:              request.Notes,
		Status:             models.ConsultationPending,
		Paid:               false,
		UnreadByClient:     false,
		RescheduleRequests: []models.RescheduleRequest{},
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	consultationID, err := uc.ConsultationRepository.Create(ctx, consultation)
	if err != nil {
		uc.Log.Error("consultationUsecase.Schedule error calling ConsultationRepository.Create",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("consultationUsecase.Schedule succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConsultationIDKey, consultationID),
	)
	return &responses.CreateConsultation{
		ID:                consultationID,
		Status:            string(models.ConsultationPending),
		Date:              request.Date,
		Time:              request.Time,
		Type:              request.Type,
		ScheduledDateTime: scheduledAt,
	}, nil
}

func (uc *consultationUsecase) ListForLawyer(ctx context.Context, sessionData string) ([]responses.LawyerConsultation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("consultationUsecase.ListForLawyer called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.parseSession(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	if !session.IsLawyer() {
		return nil, exceptions.ErrNotMatchRoleType(fmt.Errorf("user %s is not a lawyer", session.UserID))
	}

	// Overdue accepted records are flipped before reading so callers never see
	// a stale accepted consultation in the past.
	if _, err := uc.CompleteDueConsultations(ctx); err != nil {
		return nil, err
	}

	consultations, err := uc.ConsultationRepository.FindByLawyerID(ctx, session.UserID)
	if err != nil {
		uc.Log.Error("consultationUsecase.ListForLawyer error calling ConsultationRepository.FindByLawyerID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := make([]responses.LawyerConsultation, 0, len(consultations))
	for i := range consultations {
		consultation := &consultations[i]

		client := responses.ConsultationParticipant{ID: consultation.ClientID.Hex()}
		user, err := uc.UserRepository.FindByID(ctx, consultation.ClientID.Hex())
		if err != nil {
			uc.Log.Error("consultationUsecase.ListForLawyer error calling UserRepository.FindByID",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingClientIDKey, consultation.ClientID.Hex()),
				zap.Error(err),
			)
			return nil, err
		}
		if user != nil {
			client.Name = user.Name
			client.Email = user.Email
			client.ProfileImage = user.ProfileImage
		}

		response = append(response, responses.LawyerConsultation{
			ID:                 consultation.ID.Hex(),
			Client:             client,
			Date:               consultation.Date,
			Time:               consultation.Time,
			ScheduledDateTime:  consultation.ScheduledDateTime,
			Type:               string(consultation.Type),
			Notes:              consultation.Notes,
			Status:             string(consultation.Status.Display()),
			Paid:               consultation.Paid,
			Message:            consultation.Message,
			RescheduleRequests: buildRescheduleEntries(consultation.RescheduleRequests),
		})
	}

	uc.Log.Info("consultationUsecase.ListForLawyer succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(response)),
	)
	return response, nil
}

func (uc *consultationUsecase) ListForClient(ctx context.Context, sessionData string) ([]responses.ClientConsultation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("consultationUsecase.ListForClient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.parseSession(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	if !session.IsClient() {
		return nil, exceptions.ErrNotMatchRoleType(fmt.Errorf("user %s is not a client", session.UserID))
	}

	if _, err := uc.CompleteDueConsultations(ctx); err != nil {
		return nil, err
	}

	consultations, err := uc.ConsultationRepository.FindByClientID(ctx, session.UserID)
	if err != nil {
		uc.Log.Error("consultationUsecase.ListForClient error calling ConsultationRepository.FindByClientID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := make([]responses.ClientConsultation, 0, len(consultations))
	for i := range consultations {
		consultation := &consultations[i]

		lawyerView := responses.ConsultationLawyer{ID: consultation.LawyerID.Hex()}
		lawyer, err := uc.LawyerRepository.FindByID(ctx, consultation.LawyerID.Hex())
		if err != nil {
			uc.Log.Error("consultationUsecase.ListForClient error calling LawyerRepository.FindByID",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingLawyerIDKey, consultation.LawyerID.Hex()),
				zap.Error(err),
			)
			return nil, err
		}
		if lawyer != nil {
			lawyerView.Name = lawyer.Name
			lawyerView.ProfileImage = lawyer.ProfileImage
			lawyerView.ConsultationFee = lawyer.ConsultationFee
			lawyerView.Currency = lawyer.Currency
		}

		response = append(response, responses.ClientConsultation{
			ID:                 consultation.ID.Hex(),
			Lawyer:             lawyerView,
			Date:               consultation.Date,
			Time:               consultation.Time,
			ScheduledDateTime:  consultation.ScheduledDateTime,
			Type:               string(consultation.Type),
			Notes:              consultation.Notes,
			Status:             string(consultation.Status.Display()),
			Paid:               consultation.Paid,
			UnreadByClient:     consultation.UnreadByClient,
			Message:            consultation.Message,
			RescheduleRequests: buildRescheduleEntries(consultation.RescheduleRequests),
		})
	}

	uc.Log.Info("consultationUsecase.ListForClient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(response)),
	)
	return response, nil
}

func (uc *consultationUsecase) UpdateStatus(ctx context.Context, sessionData, consultationID string, request *requests.UpdateConsultationStatusRequest) (*responses.ConsultationStatusUpdate, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("consultationUsecase.UpdateStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConsultationIDKey, consultationID),
		zap.String(constvars.LoggingStatusKey, request.Status),
	)

	session, err := uc.parseSession(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	consultation, err := uc.ConsultationRepository.FindByID(ctx, consultationID)
	if err != nil {
		return nil, err
	}
	if consultation == nil {
		return nil, exceptions.ErrConsultationNotFound(fmt.Errorf("consultation %s not found", consultationID))
	}
	if !consultation.IsLawyer(session.UserID) {
		return nil, exceptions.ErrNotConsultationParty(fmt.Errorf("user %s is not the lawyer of consultation %s", session.UserID, consultationID))
	}

	current := consultation.Status.Display()
	target := models.ConsultationStatus(request.Status)
	if current.IsTerminal() {
		return nil, exceptions.ErrConsultationTerminalState(fmt.Errorf("consultation %s is %s", consultationID, current))
	}
	if !allowedTransitions[current][target] {
		return nil, exceptions.ErrInvalidStatusTransition(fmt.Errorf("transition %s to %s is not allowed", current, target))
	}

	// Only an acceptance notifies the client.
	fields := contracts.StatusUpdateFields{}
	if target == models.ConsultationAccepted {
		unread := true
		fields.UnreadByClient = &unread
	}

	// Expected encodes the stored value, which may be the legacy alias of the
	// displayed one. A miss after a successful read means a concurrent writer
	// won.
	expected := []models.ConsultationStatus{consultation.Status}
	if consultation.Status != current {
		expected = append(expected, current)
	}
	matched, err := uc.ConsultationRepository.UpdateStatusIf(ctx, consultationID, expected, target, fields)
	if err != nil {
		uc.Log.Error("consultationUsecase.UpdateStatus error calling ConsultationRepository.UpdateStatusIf",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if !matched {
		return nil, exceptions.ErrConsultationConflict(fmt.Errorf("consultation %s changed concurrently", consultationID))
	}

	consultation.Status = target
	uc.publishStatusChanged(ctx, requestID, consultation)

	uc.Log.Info("consultationUsecase.UpdateStatus succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConsultationIDKey, consultationID),
		zap.String(constvars.LoggingStatusKey, string(target)),
	)
	return &responses.ConsultationStatusUpdate{
		ID:     consultationID,
		Status: string(target),
	}, nil
}

func (uc *consultationUsecase) Cancel(ctx context.Context, sessionData, consultationID string) (*responses.CancelConsultation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("consultationUsecase.Cancel called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConsultationIDKey, consultationID),
	)

	session, err := uc.parseSession(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	consultation, err := uc.ConsultationRepository.FindByID(ctx, consultationID)
	if err != nil {
		return nil, err
	}
	if consultation == nil {
		return nil, exceptions.ErrConsultationNotFound(fmt.Errorf("consultation %s not found", consultationID))
	}
	if !consultation.IsParty(session.UserID) {
		return nil, exceptions.ErrNotConsultationParty(fmt.Errorf("user %s is not a party of consultation %s", session.UserID, consultationID))
	}

	current := consultation.Status.Display()
	if current.IsTerminal() {
		return nil, exceptions.ErrConsultationTerminalState(fmt.Errorf("consultation %s is %s", consultationID, current))
	}

	// A client walking away from an unpaid request never took money, so the
	// record is removed outright. Every other cancellation keeps the record
	// with a cancelled status so the payment trail survives for the refund
	// process.
	if consultation.IsClient(session.UserID) && !consultation.Paid {
		if err := uc.ConsultationRepository.Delete(ctx, consultationID); err != nil {
			uc.Log.Error("consultationUsecase.Cancel error calling ConsultationRepository.Delete",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
		uc.Log.Info("consultationUsecase.Cancel deleted unpaid consultation",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingConsultationIDKey, consultationID),
		)
		return &responses.CancelConsultation{ID: consultationID, Deleted: true}, nil
	}

	fields := contracts.StatusUpdateFields{}
	if consultation.IsLawyer(session.UserID) {
		unread := true
		fields.UnreadByClient = &unread
	}
	expected := []models.ConsultationStatus{consultation.Status}
	if consultation.Status != current {
		expected = append(expected, current)
	}
	matched, err := uc.ConsultationRepository.UpdateStatusIf(ctx, consultationID, expected, models.ConsultationCancelled, fields)
	if err != nil {
		uc.Log.Error("consultationUsecase.Cancel error calling ConsultationRepository.UpdateStatusIf",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if !matched {
		return nil, exceptions.ErrConsultationConflict(fmt.Errorf("consultation %s changed concurrently", consultationID))
	}

	consultation.Status = models.ConsultationCancelled
	uc.publishStatusChanged(ctx, requestID, consultation)

	uc.Log.Info("consultationUsecase.Cancel succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConsultationIDKey, consultationID),
	)
	return &responses.CancelConsultation{
		ID:      consultationID,
		Status:  string(models.ConsultationCancelled),
		Deleted: false,
	}, nil
}

func (uc *consultationUsecase) Reschedule(ctx context.Context, sessionData, consultationID string, request *requests.RescheduleConsultationRequest) (*responses.RescheduleConsultation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("consultationUsecase.Reschedule called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConsultationIDKey, consultationID),
	)

	session, err := uc.parseSession(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	consultation, err := uc.ConsultationRepository.FindByID(ctx, consultationID)
	if err != nil {
		return nil, err
	}
	if consultation == nil {
		return nil, exceptions.ErrConsultationNotFound(fmt.Errorf("consultation %s not found", consultationID))
	}
	if !consultation.IsParty(session.UserID) {
		return nil, exceptions.ErrNotConsultationParty(fmt.Errorf("user %s is not a party of consultation %s", session.UserID, consultationID))
	}

	current := consultation.Status.Display()
	if current.IsTerminal() {
		return nil, exceptions.ErrConsultationTerminalState(fmt.Errorf("consultation %s is %s", consultationID, current))
	}
	if !consultation.Paid {
		return nil, exceptions.ErrConsultationNotPaid(fmt.Errorf("consultation %s is not paid", consultationID))
	}
	if len(consultation.RescheduleRequests) > 0 {
		return nil, exceptions.ErrRescheduleLimitReached(fmt.Errorf("consultation %s already used its reschedule", consultationID))
	}

	newInstant, err := utils.ToUTCInstant(request.Date, request.Time, request.TimezoneOffsetMinutes)
	if err != nil {
		return nil, exceptions.ErrCannotParseTime(err)
	}
	if !newInstant.After(time.Now().UTC()) {
		return nil, exceptions.ErrConsultationDateInPast(fmt.Errorf("requested instant %s already passed", newInstant.Format(time.RFC3339)))
	}

	requestedBy, err := primitive.ObjectIDFromHex(session.UserID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	// A lawyer-driven reschedule keeps the consultation confirmed and flags
	// the client; a client-driven one sends it back to pending until the
	// lawyer accepts the new time.
	fromLawyer := consultation.IsLawyer(session.UserID)
	newStatus := models.ConsultationPending
	if fromLawyer {
		newStatus = models.ConsultationAccepted
	}
	message := request.Message
	if message == "" {
		message = "Reschedule requested by client."
		if fromLawyer {
			message = "Reschedule requested by lawyer."
		}
	}

	entry := models.RescheduleRequest{
		Date:        request.Date,
		Time:        request.Time,
		Message:     message,
		RequestedBy: requestedBy,
		RequestedAt: time.Now().UTC(),
	}

	expected := []models.ConsultationStatus{consultation.Status}
	if consultation.Status != current {
		expected = append(expected, current)
	}
	matched, err := uc.ConsultationRepository.AppendRescheduleIf(ctx, consultationID, expected, entry, newInstant, newStatus, message, fromLawyer)
	if err != nil {
		uc.Log.Error("consultationUsecase.Reschedule error calling ConsultationRepository.AppendRescheduleIf",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if !matched {
		return nil, exceptions.ErrConsultationConflict(fmt.Errorf("consultation %s changed concurrently", consultationID))
	}

	consultation.Status = newStatus
	consultation.ScheduledDateTime = newInstant
	consultation.Date = request.Date
	consultation.Time = request.Time
	uc.publishStatusChanged(ctx, requestID, consultation)

	uc.Log.Info("consultationUsecase.Reschedule succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConsultationIDKey, consultationID),
	)
	return &responses.RescheduleConsultation{
		ID:                consultationID,
		Status:            string(newStatus),
		Date:              request.Date,
		Time:              request.Time,
		ScheduledDateTime: newInstant,
		Message:           message,
	}, nil
}

func (uc *consultationUsecase) UnreadCount(ctx context.Context, sessionData string) (*responses.UnreadCount, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	session, err := uc.parseSession(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	if !session.IsClient() {
		return nil, exceptions.ErrNotMatchRoleType(fmt.Errorf("user %s is not a client", session.UserID))
	}

	count, err := uc.ConsultationRepository.CountUnreadByClient(ctx, session.UserID)
	if err != nil {
		uc.Log.Error("consultationUsecase.UnreadCount error calling ConsultationRepository.CountUnreadByClient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return &responses.UnreadCount{Count: count}, nil
}

func (uc *consultationUsecase) MarkRead(ctx context.Context, sessionData string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	session, err := uc.parseSession(ctx, sessionData)
	if err != nil {
		return err
	}
	if !session.IsClient() {
		return exceptions.ErrNotMatchRoleType(fmt.Errorf("user %s is not a client", session.UserID))
	}

	err = uc.ConsultationRepository.MarkAllReadForClient(ctx, session.UserID)
	if err != nil {
		uc.Log.Error("consultationUsecase.MarkRead error calling ConsultationRepository.MarkAllReadForClient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (uc *consultationUsecase) CompleteDueConsultations(ctx context.Context) (int64, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	swept, err := uc.ConsultationRepository.CompleteDue(ctx, time.Now().UTC())
	if err != nil {
		uc.Log.Error("consultationUsecase.CompleteDueConsultations error calling ConsultationRepository.CompleteDue",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return 0, err
	}
	if swept > 0 {
		uc.Log.Info("consultationUsecase.CompleteDueConsultations flipped overdue consultations",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingSweptCountKey, swept),
		)
	}
	return swept, nil
}

func buildRescheduleEntries(entries []models.RescheduleRequest) []responses.RescheduleEntry {
	result := make([]responses.RescheduleEntry, 0, len(entries))
	for _, entry := range entries {
		result = append(result, responses.RescheduleEntry{
			Date:        entry.Date,
			Time:        entry.Time,
			Message:     entry.Message,
			RequestedBy: entry.RequestedBy.Hex(),
			RequestedAt: entry.RequestedAt,
		})
	}
	return result
}
