package consultations

import (
	"context"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/app/contracts"
	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/app/models"
	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/pkg/constvars"
	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/pkg/dto/requests"
	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/pkg/exceptions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type fakeConsultationRepository struct {
	byID map[string]*models.Consultation
}

func newFakeConsultationRepository() *fakeConsultationRepository {
	return &fakeConsultationRepository{byID: make(map[string]*models.Consultation)}
}

func (r *fakeConsultationRepository) put(consultation *models.Consultation) string {
	if consultation.ID.IsZero() {
		consultation.ID = primitive.NewObjectID()
	}
	r.byID[consultation.ID.Hex()] = consultation
	return consultation.ID.Hex()
}

func (r *fakeConsultationRepository) Create(ctx context.Context, consultation *models.Consultation) (string, error) {
	clone := *consultation
	return r.put(&clone), nil
}

func (r *fakeConsultationRepository) FindByID(ctx context.Context, consultationID string) (*models.Consultation, error) {
	consultation, ok := r.byID[consultationID]
	if !ok {
		return nil, nil
	}
	clone := *consultation
	return &clone, nil
}

func (r *fakeConsultationRepository) FindByLawyerID(ctx context.Context, lawyerID string) ([]models.Consultation, error) {
	result := make([]models.Consultation, 0)
	for _, consultation := range r.byID {
		if consultation.LawyerID.Hex() == lawyerID {
			result = append(result, *consultation)
		}
	}
	return result, nil
}

func (r *fakeConsultationRepository) FindByClientID(ctx context.Context, clientID string) ([]models.Consultation, error) {
	result := make([]models.Consultation, 0)
	for _, consultation := range r.byID {
		if consultation.ClientID.Hex() == clientID {
			result = append(result, *consultation)
		}
	}
	return result, nil
}

func statusMatches(status models.ConsultationStatus, expected []models.ConsultationStatus) bool {
	for _, candidate := range expected {
		if status == candidate {
			return true
		}
	}
	return false
}

func (r *fakeConsultationRepository) UpdateStatusIf(ctx context.Context, consultationID string, expected []models.ConsultationStatus, target models.ConsultationStatus, fields contracts.StatusUpdateFields) (bool, error) {
	consultation, ok := r.byID[consultationID]
	if !ok || !statusMatches(consultation.Status, expected) {
		return false, nil
	}
	consultation.Status = target
	if fields.UnreadByClient != nil {
		consultation.UnreadByClient = *fields.UnreadByClient
	}
	if fields.Message != nil {
		consultation.Message = *fields.Message
	}
	consultation.UpdatedAt = time.Now().UTC()
	return true, nil
}

func (r *fakeConsultationRepository) AppendRescheduleIf(ctx context.Context, consultationID string, expected []models.ConsultationStatus, entry models.RescheduleRequest, newInstant time.Time, newStatus models.ConsultationStatus, message string, unreadByClient bool) (bool, error) {
	consultation, ok := r.byID[consultationID]
	if !ok || !statusMatches(consultation.Status, expected) || !consultation.Paid || len(consultation.RescheduleRequests) > 0 {
		return false, nil
	}
	consultation.RescheduleRequests = append(consultation.RescheduleRequests, entry)
	consultation.ScheduledDateTime = newInstant
	consultation.Date = entry.Date
	consultation.Time = entry.Time
	consultation.Status = newStatus
	consultation.Message = message
	consultation.UnreadByClient = unreadByClient
	consultation.UpdatedAt = time.Now().UTC()
	return true, nil
}

func (r *fakeConsultationRepository) SetPaymentOrderIf(ctx context.Context, consultationID string, details *models.PaymentDetails) (bool, error) {
	consultation, ok := r.byID[consultationID]
	if !ok || consultation.Status != models.ConsultationAccepted || consultation.Paid {
		return false, nil
	}
	consultation.PaymentDetails = details
	return true, nil
}

func (r *fakeConsultationRepository) MarkPaymentSucceededIf(ctx context.Context, consultationID string, details *models.PaymentDetails) (bool, error) {
	consultation, ok := r.byID[consultationID]
	if !ok || consultation.Paid {
		return false, nil
	}
	consultation.Paid = true
	consultation.PaymentDetails = details
	return true, nil
}

func (r *fakeConsultationRepository) MarkPaymentFailed(ctx context.Context, consultationID, orderID, paymentID string) error {
	consultation, ok := r.byID[consultationID]
	if !ok {
		return nil
	}
	if consultation.PaymentDetails == nil {
		consultation.PaymentDetails = &models.PaymentDetails{}
	}
	consultation.PaymentDetails.Status = models.PaymentFailed
	consultation.PaymentDetails.OrderID = orderID
	consultation.PaymentDetails.PaymentID = paymentID
	return nil
}

func (r *fakeConsultationRepository) Delete(ctx context.Context, consultationID string) error {
	delete(r.byID, consultationID)
	return nil
}

func (r *fakeConsultationRepository) CompleteDue(ctx context.Context, now time.Time) (int64, error) {
	var flipped int64
	for _, consultation := range r.byID {
		if consultation.Status.Display() == models.ConsultationAccepted && !consultation.ScheduledDateTime.After(now) {
			consultation.Status = models.ConsultationCompleted
			flipped++
		}
	}
	return flipped, nil
}

func (r *fakeConsultationRepository) CountUnreadByClient(ctx context.Context, clientID string) (int64, error) {
	var count int64
	for _, consultation := range r.byID {
		if consultation.ClientID.Hex() == clientID && consultation.UnreadByClient {
			count++
		}
	}
	return count, nil
}

func (r *fakeConsultationRepository) MarkAllReadForClient(ctx context.Context, clientID string) error {
	for _, consultation := range r.byID {
		if consultation.ClientID.Hex() == clientID {
			consultation.UnreadByClient = false
		}
	}
	return nil
}

type fakeLawyerRepository struct {
	byID map[string]*models.Lawyer
}

func (r *fakeLawyerRepository) FindByID(ctx context.Context, lawyerID string) (*models.Lawyer, error) {
	return r.byID[lawyerID], nil
}

func (r *fakeLawyerRepository) FindAll(ctx context.Context) ([]models.Lawyer, error) {
	result := make([]models.Lawyer, 0, len(r.byID))
	for _, lawyer := range r.byID {
		result = append(result, *lawyer)
	}
	return result, nil
}

type fakeUserRepository struct {
	byID map[string]*models.User
}

func (r *fakeUserRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	return r.byID[userID], nil
}

func (r *fakeUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, user := range r.byID {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

type fakeSessionService struct{}

func (s *fakeSessionService) CreateSession(ctx context.Context, user *models.User) (string, error) {
	return "", nil
}

func (s *fakeSessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	return "", nil
}

func (s *fakeSessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	var session models.Session
	if err := json.Unmarshal([]byte(sessionData), &session); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return &session, nil
}

func (s *fakeSessionService) DeleteSession(ctx context.Context, sessionID string) error {
	return nil
}

type fakeNotifier struct {
	published []models.Consultation
}

func (n *fakeNotifier) PublishStatusChanged(ctx context.Context, consultation *models.Consultation) error {
	n.published = append(n.published, *consultation)
	return nil
}

type usecaseFixture struct {
	usecase      contracts.ConsultationUsecase
	consultation *fakeConsultationRepository
	lawyers      *fakeLawyerRepository
	users        *fakeUserRepository
	notifier     *fakeNotifier

	lawyerID primitive.ObjectID
	clientID primitive.ObjectID
}

func newUsecaseFixture() *usecaseFixture {
	lawyerID := primitive.NewObjectID()
	clientID := primitive.NewObjectID()

	consultationRepo := newFakeConsultationRepository()
	lawyerRepo := &fakeLawyerRepository{byID: map[string]*models.Lawyer{
		lawyerID.Hex(): {
			ID:              lawyerID,
			Name:            "Adv. Meera Nair",
			Email:           "meera@example.com",
			ConsultationFee: 1500,
			Currency:        constvars.CurrencyIndianRupee,
			Verified:        true,
		},
	}}
	userRepo := &fakeUserRepository{byID: map[string]*models.User{
		clientID.Hex(): {
			ID:    clientID,
			Name:  "Arjun Shetty",
			Email: "arjun@example.com",
			Role:  models.RoleClient,
		},
	}}
	notifier := &fakeNotifier{}

	usecase := &consultationUsecase{
		ConsultationRepository: consultationRepo,
		LawyerRepository:       lawyerRepo,
		UserRepository:         userRepo,
		SessionService:         &fakeSessionService{},
		Notifier:               notifier,
		Log:                    zap.NewNop(),
	}

	return &usecaseFixture{
		usecase:      usecase,
		consultation: consultationRepo,
		lawyers:      lawyerRepo,
		users:        userRepo,
		notifier:     notifier,
		lawyerID:     lawyerID,
		clientID:     clientID,
	}
}

func sessionFor(t *testing.T, userID primitive.ObjectID, role models.UserRole) string {
	t.Helper()
	data, err := json.Marshal(models.Session{
		SessionID: "test-session",
		UserID:    userID.Hex(),
		Role:      role,
		ExpiresAt: time.Now().Add(time.Hour),
	})
	require.NoError(t, err)
	return string(data)
}

func (f *usecaseFixture) seed(status models.ConsultationStatus, paid bool, scheduledAt time.Time) string {
	return f.consultation.put(&models.Consultation{
		LawyerID:           f.lawyerID,
		ClientID:           f.clientID,
		ScheduledDateTime:  scheduledAt,
		Date:               scheduledAt.Format("2006-01-02"),
		Time:               scheduledAt.Format("15:04"),
		Type:               models.ConsultationVideo,
		Status:             status,
		Paid:               paid,
		RescheduleRequests: []models.RescheduleRequest{},
	})
}

func assertStatusCode(t *testing.T, err error, wantCode int) {
	t.Helper()
	require.Error(t, err)
	customErr, ok := err.(*exceptions.CustomError)
	require.True(t, ok, "expected *exceptions.CustomError, got %T", err)
	assert.Equal(t, wantCode, customErr.StatusCode)
}

func TestSchedule(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a pending unpaid consultation", func(t *testing.T) {
		f := newUsecaseFixture()
		clientSession := sessionFor(t, f.clientID, models.RoleClient)

		future := time.Now().UTC().Add(48 * time.Hour)
		response, err := f.usecase.Schedule(ctx, clientSession, &requests.CreateConsultationRequest{
			LawyerID:              f.lawyerID.Hex(),
			Date:                  future.Format("2006-01-02"),
			Time:                  "10:00",
			Type:                  "video",
			TimezoneOffsetMinutes: 330,
		})
		require.NoError(t, err)
		assert.Equal(t, string(models.ConsultationPending), response.Status)

		stored := f.consultation.byID[response.ID]
		require.NotNil(t, stored)
		assert.Equal(t, models.ConsultationPending, stored.Status)
		assert.False(t, stored.Paid)
		assert.False(t, stored.UnreadByClient)
		// 10:00 at UTC+5:30 is 04:30 UTC.
		assert.Equal(t, 4, stored.ScheduledDateTime.Hour())
		assert.Equal(t, 30, stored.ScheduledDateTime.Minute())
	})

	t.Run("rejects an instant in the past", func(t *testing.T) {
		f := newUsecaseFixture()
		clientSession := sessionFor(t, f.clientID, models.RoleClient)

		_, err := f.usecase.Schedule(ctx, clientSession, &requests.CreateConsultationRequest{
			LawyerID:              f.lawyerID.Hex(),
			Date:                  "2020-01-01",
			Time:                  "10:00",
			Type:                  "video",
			TimezoneOffsetMinutes: 0,
		})
		assertStatusCode(t, err, constvars.StatusBadRequest)
	})

	t.Run("rejects a lawyer session", func(t *testing.T) {
		f := newUsecaseFixture()
		lawyerSession := sessionFor(t, f.lawyerID, models.RoleLawyer)

		future := time.Now().UTC().Add(48 * time.Hour)
		_, err := f.usecase.Schedule(ctx, lawyerSession, &requests.CreateConsultationRequest{
			LawyerID:              f.lawyerID.Hex(),
			Date:                  future.Format("2006-01-02"),
			Time:                  "10:00",
			Type:                  "video",
			TimezoneOffsetMinutes: 0,
		})
		assertStatusCode(t, err, constvars.StatusForbidden)
	})

	t.Run("rejects an unknown lawyer", func(t *testing.T) {
		f := newUsecaseFixture()
		clientSession := sessionFor(t, f.clientID, models.RoleClient)

		future := time.Now().UTC().Add(48 * time.Hour)
		_, err := f.usecase.Schedule(ctx, clientSession, &requests.CreateConsultationRequest{
			LawyerID:              primitive.NewObjectID().Hex(),
			Date:                  future.Format("2006-01-02"),
			Time:                  "10:00",
			Type:                  "video",
			TimezoneOffsetMinutes: 0,
		})
		assertStatusCode(t, err, constvars.StatusNotFound)
	})
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()
	future := time.Now().UTC().Add(48 * time.Hour)

	t.Run("lawyer accepts a pending consultation", func(t *testing.T) {
		f := newUsecaseFixture()
		id := f.seed(models.ConsultationPending, false, future)
		lawyerSession := sessionFor(t, f.lawyerID, models.RoleLawyer)

		response, err := f.usecase.UpdateStatus(ctx, lawyerSession, id, &requests.UpdateConsultationStatusRequest{Status: "accepted"})
		require.NoError(t, err)
		assert.Equal(t, "accepted", response.Status)

		stored := f.consultation.byID[id]
		assert.Equal(t, models.ConsultationAccepted, stored.Status)
		assert.True(t, stored.UnreadByClient)
		require.Len(t, f.notifier.published, 1)
		assert.Equal(t, models.ConsultationAccepted, f.notifier.published[0].Status)
	})

	t.Run("lawyer rejects a pending consultation", func(t *testing.T) {
		f := newUsecaseFixture()
		id := f.seed(models.ConsultationPending, false, future)
		lawyerSession := sessionFor(t, f.lawyerID, models.RoleLawyer)

		response, err := f.usecase.UpdateStatus(ctx, lawyerSession, id, &requests.UpdateConsultationStatusRequest{Status: "rejected"})
		require.NoError(t, err)
		assert.Equal(t, "rejected", response.Status)
		assert.False(t, f.consultation.byID[id].UnreadByClient)
	})

	t.Run("accepted can only move to completed", func(t *testing.T) {
		f := newUsecaseFixture()
		id := f.seed(models.ConsultationAccepted, true, future)
		lawyerSession := sessionFor(t, f.lawyerID, models.RoleLawyer)

		_, err := f.usecase.UpdateStatus(ctx, lawyerSession, id, &requests.UpdateConsultationStatusRequest{Status: "rejected"})
		assertStatusCode(t, err, constvars.StatusUnprocessableEntity)

		response, err := f.usecase.UpdateStatus(ctx, lawyerSession, id, &requests.UpdateConsultationStatusRequest{Status: "completed"})
		require.NoError(t, err)
		assert.Equal(t, "completed", response.Status)
	})

	t.Run("terminal states are final", func(t *testing.T) {
		f := newUsecaseFixture()
		lawyerSession := sessionFor(t, f.lawyerID, models.RoleLawyer)

		for _, status := range []models.ConsultationStatus{models.ConsultationRejected, models.ConsultationCompleted, models.ConsultationCancelled} {
			id := f.seed(status, false, future)
			_, err := f.usecase.UpdateStatus(ctx, lawyerSession, id, &requests.UpdateConsultationStatusRequest{Status: "accepted"})
			assertStatusCode(t, err, constvars.StatusUnprocessableEntity)
		}
	})

	t.Run("legacy rescheduled behaves as accepted", func(t *testing.T) {
		f := newUsecaseFixture()
		id := f.seed(models.ConsultationRescheduled, true, future)
		lawyerSession := sessionFor(t, f.lawyerID, models.RoleLawyer)

		response, err := f.usecase.UpdateStatus(ctx, lawyerSession, id, &requests.UpdateConsultationStatusRequest{Status: "completed"})
		require.NoError(t, err)
		assert.Equal(t, "completed", response.Status)
	})

	t.Run("client cannot change the status", func(t *testing.T) {
		f := newUsecaseFixture()
		id := f.seed(models.ConsultationPending, false, future)
		clientSession := sessionFor(t, f.clientID, models.RoleClient)

		_, err := f.usecase.UpdateStatus(ctx, clientSession, id, &requests.UpdateConsultationStatusRequest{Status: "accepted"})
		assertStatusCode(t, err, constvars.StatusForbidden)
	})

	t.Run("missing consultation is not found", func(t *testing.T) {
		f := newUsecaseFixture()
		lawyerSession := sessionFor(t, f.lawyerID, models.RoleLawyer)

		_, err := f.usecase.UpdateStatus(ctx, lawyerSession, primitive.NewObjectID().Hex(), &requests.UpdateConsultationStatusRequest{Status: "accepted"})
		assertStatusCode(t, err, constvars.StatusNotFound)
	})
}

func TestCancel(t *testing.T) {
	ctx := context.Background()
	future := time.Now().UTC().Add(48 * time.Hour)

	t.Run("client cancelling an unpaid consultation deletes the record", func(t *testing.T) {
		f := newUsecaseFixture()
		id := f.seed(models.ConsultationPending, false, future)
		clientSession := sessionFor(t, f.clientID, models.RoleClient)

		response, err := f.usecase.Cancel(ctx, clientSession, id)
		require.NoError(t, err)
		assert.True(t, response.Deleted)
		assert.Nil(t, f.consultation.byID[id])
	})

	t.Run("lawyer cancelling an unpaid consultation keeps a cancelled record", func(t *testing.T) {
		f := newUsecaseFixture()
		id := f.seed(models.ConsultationPending, false, future)
		lawyerSession := sessionFor(t, f.lawyerID, models.RoleLawyer)

		response, err := f.usecase.Cancel(ctx, lawyerSession, id)
		require.NoError(t, err)
		assert.False(t, response.Deleted)

		stored := f.consultation.byID[id]
		require.NotNil(t, stored)
		assert.Equal(t, models.ConsultationCancelled, stored.Status)
		assert.True(t, stored.UnreadByClient)
	})

	t.Run("client cancelling a paid consultation keeps its record", func(t *testing.T) {
		f := newUsecaseFixture()
		id := f.seed(models.ConsultationAccepted, true, future)
		clientSession := sessionFor(t, f.clientID, models.RoleClient)

		response, err := f.usecase.Cancel(ctx, clientSession, id)
		require.NoError(t, err)
		assert.False(t, response.Deleted)
		assert.Equal(t, string(models.ConsultationCancelled), response.Status)

		stored := f.consultation.byID[id]
		require.NotNil(t, stored)
		assert.Equal(t, models.ConsultationCancelled, stored.Status)
		assert.True(t, stored.Paid)
		assert.False(t, stored.UnreadByClient)
		require.Len(t, f.notifier.published, 1)
	})

	t.Run("lawyer cancellation flags the client as unread", func(t *testing.T) {
		f := newUsecaseFixture()
		id := f.seed(models.ConsultationAccepted, true, future)
		lawyerSession := sessionFor(t, f.lawyerID, models.RoleLawyer)

		_, err := f.usecase.Cancel(ctx, lawyerSession, id)
		require.NoError(t, err)
		assert.True(t, f.consultation.byID[id].UnreadByClient)
	})

	t.Run("terminal consultation cannot be cancelled", func(t *testing.T) {
		f := newUsecaseFixture()
		id := f.seed(models.ConsultationCompleted, true, future)
		clientSession := sessionFor(t, f.clientID, models.RoleClient)

		_, err := f.usecase.Cancel(ctx, clientSession, id)
		assertStatusCode(t, err, constvars.StatusUnprocessableEntity)
	})

	t.Run("strangers are rejected", func(t *testing.T) {
		f := newUsecaseFixture()
		id := f.seed(models.ConsultationPending, false, future)
		strangerSession := sessionFor(t, primitive.NewObjectID(), models.RoleClient)

		_, err := f.usecase.Cancel(ctx, strangerSession, id)
		assertStatusCode(t, err, constvars.StatusForbidden)
	})
}

func TestReschedule(t *testing.T) {
	ctx := context.Background()
	future := time.Now().UTC().Add(48 * time.Hour)
	newDate := time.Now().UTC().Add(96 * time.Hour)

	newRequest := func() *requests.RescheduleConsultationRequest {
		return &requests.RescheduleConsultationRequest{
			Date:                  newDate.Format("2006-01-02"),
			Time:                  "15:00",
			Message:               "court date moved",
			TimezoneOffsetMinutes: 0,
		}
	}

	t.Run("client reschedule sends the consultation back to pending", func(t *testing.T) {
		f := newUsecaseFixture()
		id := f.seed(models.ConsultationAccepted, true, future)
		clientSession := sessionFor(t, f.clientID, models.RoleClient)

		response, err := f.usecase.Reschedule(ctx, clientSession, id, newRequest())
		require.NoError(t, err)
		assert.Equal(t, string(models.ConsultationPending), response.Status)
		assert.Equal(t, newDate.Format("2006-01-02"), response.Date)

		stored := f.consultation.byID[id]
		require.Len(t, stored.RescheduleRequests, 1)
		assert.Equal(t, f.clientID, stored.RescheduleRequests[0].RequestedBy)
		assert.Equal(t, "court date moved", stored.Message)
		assert.Equal(t, models.ConsultationPending, stored.Status)
		assert.False(t, stored.UnreadByClient)
	})

	t.Run("second reschedule is rejected", func(t *testing.T) {
		f := newUsecaseFixture()
		id := f.seed(models.ConsultationAccepted, true, future)
		clientSession := sessionFor(t, f.clientID, models.RoleClient)

		_, err := f.usecase.Reschedule(ctx, clientSession, id, newRequest())
		require.NoError(t, err)

		_, err = f.usecase.Reschedule(ctx, clientSession, id, newRequest())
		assertStatusCode(t, err, constvars.StatusUnprocessableEntity)
	})

	t.Run("unpaid consultation cannot be rescheduled", func(t *testing.T) {
		f := newUsecaseFixture()
		id := f.seed(models.ConsultationAccepted, false, future)
		clientSession := sessionFor(t, f.clientID, models.RoleClient)

		_, err := f.usecase.Reschedule(ctx, clientSession, id, newRequest())
		assertStatusCode(t, err, constvars.StatusUnprocessableEntity)
	})

	t.Run("paid pending consultation can be rescheduled", func(t *testing.T) {
		f := newUsecaseFixture()
		id := f.seed(models.ConsultationPending, true, future)
		lawyerSession := sessionFor(t, f.lawyerID, models.RoleLawyer)

		response, err := f.usecase.Reschedule(ctx, lawyerSession, id, newRequest())
		require.NoError(t, err)
		assert.Equal(t, string(models.ConsultationAccepted), response.Status)
	})

	t.Run("lawyer reschedule keeps accepted and flags the client as unread", func(t *testing.T) {
		f := newUsecaseFixture()
		id := f.seed(models.ConsultationAccepted, true, future)
		lawyerSession := sessionFor(t, f.lawyerID, models.RoleLawyer)

		_, err := f.usecase.Reschedule(ctx, lawyerSession, id, newRequest())
		require.NoError(t, err)
		stored := f.consultation.byID[id]
		assert.Equal(t, models.ConsultationAccepted, stored.Status)
		assert.True(t, stored.UnreadByClient)
	})

	t.Run("defaults the message when none is supplied", func(t *testing.T) {
		f := newUsecaseFixture()
		id := f.seed(models.ConsultationAccepted, true, future)
		clientSession := sessionFor(t, f.clientID, models.RoleClient)

		request := newRequest()
		request.Message = ""
		response, err := f.usecase.Reschedule(ctx, clientSession, id, request)
		require.NoError(t, err)
		assert.Equal(t, "Reschedule requested by client.", response.Message)
		assert.Equal(t, "Reschedule requested by client.", f.consultation.byID[id].Message)
	})

	t.Run("new instant must be in the future", func(t *testing.T) {
		f := newUsecaseFixture()
		id := f.seed(models.ConsultationAccepted, true, future)
		clientSession := sessionFor(t, f.clientID, models.RoleClient)

		request := newRequest()
		request.Date = "2020-01-01"
		_, err := f.usecase.Reschedule(ctx, clientSession, id, request)
		assertStatusCode(t, err, constvars.StatusBadRequest)
	})
}

func TestCompleteDueConsultations(t *testing.T) {
	ctx := context.Background()

	t.Run("flips overdue accepted consultations and is idempotent", func(t *testing.T) {
		f := newUsecaseFixture()
		past := time.Now().UTC().Add(-time.Hour)
		future := time.Now().UTC().Add(48 * time.Hour)

		overdueID := f.seed(models.ConsultationAccepted, true, past)
		upcomingID := f.seed(models.ConsultationAccepted, true, future)
		pendingID := f.seed(models.ConsultationPending, false, past)

		swept, err := f.usecase.CompleteDueConsultations(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), swept)

		assert.Equal(t, models.ConsultationCompleted, f.consultation.byID[overdueID].Status)
		assert.Equal(t, models.ConsultationAccepted, f.consultation.byID[upcomingID].Status)
		assert.Equal(t, models.ConsultationPending, f.consultation.byID[pendingID].Status)

		swept, err = f.usecase.CompleteDueConsultations(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(0), swept)
	})

	t.Run("sweeps an overdue legacy rescheduled record", func(t *testing.T) {
		f := newUsecaseFixture()
		past := time.Now().UTC().Add(-time.Hour)
		legacyID := f.seed(models.ConsultationRescheduled, true, past)

		swept, err := f.usecase.CompleteDueConsultations(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), swept)
		assert.Equal(t, models.ConsultationCompleted, f.consultation.byID[legacyID].Status)
	})
}

func TestLists(t *testing.T) {
	ctx := context.Background()

	t.Run("lawyer list sweeps first and joins client identity", func(t *testing.T) {
		f := newUsecaseFixture()
		past := time.Now().UTC().Add(-time.Hour)
		f.seed(models.ConsultationAccepted, true, past)
		lawyerSession := sessionFor(t, f.lawyerID, models.RoleLawyer)

		list, err := f.usecase.ListForLawyer(ctx, lawyerSession)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, string(models.ConsultationCompleted), list[0].Status)
		assert.Equal(t, "Arjun Shetty", list[0].Client.Name)
	})

	t.Run("client list maps the legacy status for display", func(t *testing.T) {
		f := newUsecaseFixture()
		future := time.Now().UTC().Add(48 * time.Hour)
		f.seed(models.ConsultationRescheduled, true, future)
		clientSession := sessionFor(t, f.clientID, models.RoleClient)

		list, err := f.usecase.ListForClient(ctx, clientSession)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, string(models.ConsultationAccepted), list[0].Status)
		assert.Equal(t, "Adv. Meera Nair", list[0].Lawyer.Name)
		assert.Equal(t, int64(1500), list[0].Lawyer.ConsultationFee)
	})

	t.Run("role mismatch is rejected", func(t *testing.T) {
		f := newUsecaseFixture()
		clientSession := sessionFor(t, f.clientID, models.RoleClient)
		lawyerSession := sessionFor(t, f.lawyerID, models.RoleLawyer)

		_, err := f.usecase.ListForLawyer(ctx, clientSession)
		assertStatusCode(t, err, constvars.StatusForbidden)

		_, err = f.usecase.ListForClient(ctx, lawyerSession)
		assertStatusCode(t, err, constvars.StatusForbidden)
	})
}

func TestUnread(t *testing.T) {
	ctx := context.Background()
	future := time.Now().UTC().Add(48 * time.Hour)

	t.Run("counts and clears unread consultations", func(t *testing.T) {
		f := newUsecaseFixture()
		id := f.seed(models.ConsultationAccepted, true, future)
		f.consultation.byID[id].UnreadByClient = true
		clientSession := sessionFor(t, f.clientID, models.RoleClient)

		count, err := f.usecase.UnreadCount(ctx, clientSession)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count.Count)

		require.NoError(t, f.usecase.MarkRead(ctx, clientSession))

		count, err = f.usecase.UnreadCount(ctx, clientSession)
		require.NoError(t, err)
		assert.Equal(t, int64(0), count.Count)
	})
}
