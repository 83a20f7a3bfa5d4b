package controllers

import (
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/app/contracts"
	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/pkg/constvars"
	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/pkg/dto/requests"
	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/pkg/exceptions"
	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/pkg/utils"
	"go.uber.org/zap"
)

var (
	paymentControllerInstance *PaymentController
	oncePaymentController     sync.Once
)

type PaymentController struct {
	PaymentUsecase contracts.PaymentUsecase
	Log            *zap.Logger
}

func NewPaymentController(paymentUsecase contracts.PaymentUsecase, logger *zap.Logger) *PaymentController {
	oncePaymentController.Do(func() {
		paymentControllerInstance = &PaymentController{
			PaymentUsecase: paymentUsecase,
			Log:            logger,
		}
	})
	return paymentControllerInstance
}

func (c *PaymentController) CreatePaymentOrder(w http.ResponseWriter, r *http.Request) {
	consultationID := chi.URLParam(r, constvars.URLParamConsultationID)

	response, err := c.PaymentUsecase.CreateOrder(r.Context(), sessionDataFromContext(r), consultationID)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreatePaymentOrderSuccessMessage, response)
}

func (c *PaymentController) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	consultationID := chi.URLParam(r, constvars.URLParamConsultationID)

	var request requests.VerifyPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	response, err := c.PaymentUsecase.Verify(r.Context(), sessionDataFromContext(r), consultationID, &request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.VerifyPaymentSuccessMessage, response)
}

func (c *PaymentController) GetPaymentDetails(w http.ResponseWriter, r *http.Request) {
	consultationID := chi.URLParam(r, constvars.URLParamConsultationID)

	response, err := c.PaymentUsecase.Details(r.Context(), sessionDataFromContext(r), consultationID)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPaymentDetailsSuccessMessage, response)
}
