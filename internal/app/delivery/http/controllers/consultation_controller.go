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
	consultationControllerInstance *ConsultationController
	onceConsultationController     sync.Once
)

type ConsultationController struct {
	ConsultationUsecase contracts.ConsultationUsecase
	Log                 *zap.Logger
}

func NewConsultationController(consultationUsecase contracts.ConsultationUsecase, logger *zap.Logger) *ConsultationController {
	onceConsultationController.Do(func() {
		consultationControllerInstance = &ConsultationController{
			ConsultationUsecase: consultationUsecase,
			Log:                 logger,
		}
	})
	return consultationControllerInstance
}

func sessionDataFromContext(r *http.Request) string {
	sessionData, _ := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	return sessionData
}

func (c *ConsultationController) CreateConsultation(w http.ResponseWriter, r *http.Request) {
	var request requests.CreateConsultationRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	response, err := c.ConsultationUsecase.Schedule(r.Context(), sessionDataFromContext(r), &request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateConsultationSuccessMessage, response)
}

func (c *ConsultationController) GetLawyerConsultations(w http.ResponseWriter, r *http.Request) {
	response, err := c.ConsultationUsecase.ListForLawyer(r.Context(), sessionDataFromContext(r))
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetConsultationSuccessMessage, response)
}

func (c *ConsultationController) GetClientConsultations(w http.ResponseWriter, r *http.Request) {
	response, err := c.ConsultationUsecase.ListForClient(r.Context(), sessionDataFromContext(r))
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetConsultationSuccessMessage, response)
}

func (c *ConsultationController) UpdateConsultationStatus(w http.ResponseWriter, r *http.Request) {
	consultationID := chi.URLParam(r, constvars.URLParamConsultationID)

	var request requests.UpdateConsultationStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	response, err := c.ConsultationUsecase.UpdateStatus(r.Context(), sessionDataFromContext(r), consultationID, &request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateStatusSuccessMessage, response)
}

func (c *ConsultationController) CancelConsultation(w http.ResponseWriter, r *http.Request) {
	consultationID := chi.URLParam(r, constvars.URLParamConsultationID)

	response, err := c.ConsultationUsecase.Cancel(r.Context(), sessionDataFromContext(r), consultationID)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CancelConsultationSuccessMessage, response)
}

func (c *ConsultationController) RescheduleConsultation(w http.ResponseWriter, r *http.Request) {
	consultationID := chi.URLParam(r, constvars.URLParamConsultationID)

	var request requests.RescheduleConsultationRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	response, err := c.ConsultationUsecase.Reschedule(r.Context(), sessionDataFromContext(r), consultationID, &request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RescheduleSuccessMessage, response)
}

func (c *ConsultationController) GetUnreadCount(w http.ResponseWriter, r *http.Request) {
	response, err := c.ConsultationUsecase.UnreadCount(r.Context(), sessionDataFromContext(r))
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetUnreadCountSuccessMessage, response)
}

func (c *ConsultationController) MarkConsultationsRead(w http.ResponseWriter, r *http.Request) {
	err := c.ConsultationUsecase.MarkRead(r.Context(), sessionDataFromContext(r))
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.MarkReadSuccessMessage, nil)
}
