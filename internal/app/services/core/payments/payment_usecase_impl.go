package payments

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
	"go.uber.org/zap"
)

var (
	paymentUsecaseInstance contracts.PaymentUsecase
	oncePaymentUsecase     sync.Once
)

type paymentUsecase struct {
	ConsultationRepository contracts.ConsultationRepository
	LawyerRepository       contracts.LawyerRepository
	SessionService         contracts.SessionService
	PaymentGateway         contracts.PaymentGatewayService
	Notifier               contracts.ConsultationNotifier
	Log                    *zap.Logger
}

func NewPaymentUsecase(
	consultationRepository contracts.ConsultationRepository,
	lawyerRepository contracts.LawyerRepository,
	sessionService contracts.SessionService,
	paymentGateway contracts.PaymentGatewayService,
	notifier contracts.ConsultationNotifier,
	logger *zap.Logger,
) contracts.PaymentUsecase {
	oncePaymentUsecase.Do(func() {
		instance := &paymentUsecase{
			ConsultationRepository: consultationRepository,
			LawyerRepository:       lawyerRepository,
			SessionService:         sessionService,
			PaymentGateway:         paymentGateway,
			Notifier:               notifier,
			Log:                    logger,
		}
		paymentUsecaseInstance = instance
	})
	return paymentUsecaseInstance
}

func (uc *paymentUsecase) loadForClient(ctx context.Context, sessionData, consultationID string) (*models.Session, *models.Consultation, error) {
	if sessionData == "" {
		return nil, nil, exceptions.ErrMissingSessionData(fmt.Errorf("empty session data in context"))
	}
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, nil, err
	}

	consultation, err := uc.ConsultationRepository.FindByID(ctx, consultationID)
	if err != nil {
		return nil, nil, err
	}
	if consultation == nil {
		return nil, nil, exceptions.ErrConsultationNotFound(fmt.Errorf("consultation %s not found", consultationID))
	}
	if !consultation.IsClient(session.UserID) {
		return nil, nil, exceptions.ErrNotConsultationParty(fmt.Errorf("user %s is not the client of consultation %s", session.UserID, consultationID))
	}
	return session, consultation, nil
}

func (uc *paymentUsecase) CreateOrder(ctx context.Context, sessionData, consultationID string) (*responses.CreatePaymentOrder, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("paymentUsecase.CreateOrder called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConsultationIDKey, consultationID),
	)

	_, consultation, err := uc.loadForClient(ctx, sessionData, consultationID)
	if err != nil {
		return nil, err
	}

	// Payment opens only once the lawyer has accepted.
	if consultation.Status.Display() != models.ConsultationAccepted {
		return nil, exceptions.ErrPaymentNotAllowed(fmt.Errorf("consultation %s is %s", consultationID, consultation.Status.Display()))
	}
	if consultation.Paid {
		return nil, exceptions.ErrPaymentAlreadyDone(fmt.Errorf("consultation %s is already paid", consultationID))
	}

	lawyer, err := uc.LawyerRepository.FindByID(ctx, consultation.LawyerID.Hex())
	if err != nil {
		return nil, err
	}
	if lawyer == nil {
		return nil, exceptions.ErrLawyerNotFound(fmt.Errorf("lawyer %s not found", consultation.LawyerID.Hex()))
	}
	if lawyer.ConsultationFee <= 0 {
		return nil, exceptions.ErrLawyerFeeNotConfigured(fmt.Errorf("lawyer %s has no consultation fee", lawyer.ID.Hex()))
	}

	currency := lawyer.Currency
	if currency == "" {
		currency = constvars.CurrencyIndianRupee
	}
	amountMinorUnits := lawyer.ConsultationFee * constvars.MinorUnitsPerRupee

	orderID, err := uc.PaymentGateway.CreateOrder(ctx, amountMinorUnits, currency, utils.GenerateReceiptID(consultationID))
	if err != nil {
		uc.Log.Error("paymentUsecase.CreateOrder error calling PaymentGateway.CreateOrder",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	details := &models.PaymentDetails{
		OrderID:  orderID,
		Amount:   amountMinorUnits,
		Currency: currency,
		Status:   models.PaymentPending,
	}
	matched, err := uc.ConsultationRepository.SetPaymentOrderIf(ctx, consultationID, details)
	if err != nil {
		uc.Log.Error("paymentUsecase.CreateOrder error calling ConsultationRepository.SetPaymentOrderIf",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if !matched {
		return nil, exceptions.ErrConsultationConflict(fmt.Errorf("consultation %s changed concurrently", consultationID))
	}

	uc.Log.Info("paymentUsecase.CreateOrder succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConsultationIDKey, consultationID),
		zap.String(constvars.LoggingOrderIDKey, orderID),
	)
	return &responses.CreatePaymentOrder{
		ConsultationID: consultationID,
		OrderID:        orderID,
		Amount:         amountMinorUnits,
		Currency:       currency,
	}, nil
}

func (uc *paymentUsecase) Verify(ctx context.Context, sessionData, consultationID string, request *requests.VerifyPaymentRequest) (*responses.VerifyPayment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("paymentUsecase.Verify called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConsultationIDKey, consultationID),
		zap.String(constvars.LoggingOrderIDKey, request.OrderID),
	)

	_, consultation, err := uc.loadForClient(ctx, sessionData, consultationID)
	if err != nil {
		return nil, err
	}

	if consultation.Paid {
		return nil, exceptions.ErrPaymentAlreadyDone(fmt.Errorf("consultation %s is already paid", consultationID))
	}
	if consultation.Status.Display() != models.ConsultationAccepted {
		return nil, exceptions.ErrPaymentNotAllowed(fmt.Errorf("consultation %s is %s", consultationID, consultation.Status.Display()))
	}
	if consultation.PaymentDetails == nil || consultation.PaymentDetails.OrderID != request.OrderID {
		return nil, exceptions.ErrPaymentNotAllowed(fmt.Errorf("no open order %s on consultation %s", request.OrderID, consultationID))
	}

	if !uc.PaymentGateway.VerifySignature(request.OrderID, request.PaymentID, request.Signature) {
		// The failed attempt is recorded unconditionally so the audit trail
		// survives the rejected request.
		if markErr := uc.ConsultationRepository.MarkPaymentFailed(ctx, consultationID, request.OrderID, request.PaymentID); markErr != nil {
			uc.Log.Error("paymentUsecase.Verify error calling ConsultationRepository.MarkPaymentFailed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(markErr),
			)
		}
		uc.Log.Warn("paymentUsecase.Verify signature mismatch",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingConsultationIDKey, consultationID),
			zap.String(constvars.LoggingPaymentIDKey, request.PaymentID),
		)
		return nil, exceptions.ErrPaymentVerificationFailed(fmt.Errorf("signature mismatch for order %s", request.OrderID))
	}

	paidAt := time.Now().UTC()
	details := &models.PaymentDetails{
		OrderID:   request.OrderID,
		PaymentID: request.PaymentID,
		Signature: request.Signature,
		Amount:    consultation.PaymentDetails.Amount,
		Currency:  consultation.PaymentDetails.Currency,
		Status:    models.PaymentSuccess,
		PaidAt:    &paidAt,
	}
	matched, err := uc.ConsultationRepository.MarkPaymentSucceededIf(ctx, consultationID, details)
	if err != nil {
		uc.Log.Error("paymentUsecase.Verify error calling ConsultationRepository.MarkPaymentSucceededIf",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if !matched {
		return nil, exceptions.ErrConsultationConflict(fmt.Errorf("consultation %s changed concurrently", consultationID))
	}

	consultation.Paid = true
	consultation.PaymentDetails = details
	if err := uc.Notifier.PublishStatusChanged(ctx, consultation); err != nil {
		uc.Log.Warn("paymentUsecase.Verify failed to publish status change event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingConsultationIDKey, consultationID),
			zap.Error(err),
		)
	}

	uc.Log.Info("paymentUsecase.Verify succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConsultationIDKey, consultationID),
		zap.String(constvars.LoggingPaymentIDKey, request.PaymentID),
	)
	return &responses.VerifyPayment{
		ConsultationID: consultationID,
		Paid:           true,
		Status:         string(models.PaymentSuccess),
		PaidAt:         &paidAt,
	}, nil
}

func (uc *paymentUsecase) Details(ctx context.Context, sessionData, consultationID string) (*responses.PaymentDetails, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("paymentUsecase.Details called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConsultationIDKey, consultationID),
	)

	if sessionData == "" {
		return nil, exceptions.ErrMissingSessionData(fmt.Errorf("empty session data in context"))
	}
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
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

	response := &responses.PaymentDetails{
		ConsultationID: consultationID,
		Paid:           consultation.Paid,
	}
	if consultation.PaymentDetails != nil {
		response.OrderID = consultation.PaymentDetails.OrderID
		response.PaymentID = consultation.PaymentDetails.PaymentID
		response.Amount = consultation.PaymentDetails.Amount
		response.Currency = consultation.PaymentDetails.Currency
		response.Status = string(consultation.PaymentDetails.Status)
		response.PaidAt = consultation.PaymentDetails.PaidAt
	}
	return response, nil
}
