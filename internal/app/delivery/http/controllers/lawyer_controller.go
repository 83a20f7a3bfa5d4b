package controllers

import (
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/app/contracts"
	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/pkg/constvars"
	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/pkg/utils"
	"go.uber.org/zap"
)

var (
	lawyerControllerInstance *LawyerController
	onceLawyerController     sync.Once
)

type LawyerController struct {
	LawyerUsecase contracts.LawyerUsecase
	Log           *zap.Logger
}

func NewLawyerController(lawyerUsecase contracts.LawyerUsecase, logger *zap.Logger) *LawyerController {
	onceLawyerController.Do(func() {
		lawyerControllerInstance = &LawyerController{
			LawyerUsecase: lawyerUsecase,
			Log:           logger,
		}
	})
	return lawyerControllerInstance
}

func (c *LawyerController) GetAllLawyers(w http.ResponseWriter, r *http.Request) {
	response, err := c.LawyerUsecase.FindAll(r.Context())
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetLawyerSuccessMessage, response)
}

func (c *LawyerController) GetLawyerByID(w http.ResponseWriter, r *http.Request) {
	lawyerID := chi.URLParam(r, constvars.URLParamLawyerID)

	response, err := c.LawyerUsecase.FindByID(r.Context(), lawyerID)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetLawyerSuccessMessage, response)
}
