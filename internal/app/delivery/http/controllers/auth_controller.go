package controllers

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/goccy/go-json"
	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/app/contracts"
	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/pkg/constvars"
	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/pkg/dto/requests"
	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/pkg/exceptions"
	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/pkg/utils"
	"go.uber.org/zap"
)

var (
	authControllerInstance *AuthController
	onceAuthController     sync.Once
)

type AuthController struct {
	AuthUsecase contracts.AuthUsecase
	Log         *zap.Logger
}

func NewAuthController(authUsecase contracts.AuthUsecase, logger *zap.Logger) *AuthController {
	onceAuthController.Do(func() {
		authControllerInstance = &AuthController{
			AuthUsecase: authUsecase,
			Log:         logger,
		}
	})
	return authControllerInstance
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var request requests.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	response, err := c.AuthUsecase.Login(r.Context(), &request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LoginSuccessMessage, response)
}

func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := r.Context().Value(constvars.CONTEXT_SESSION_ID_KEY).(string)
	if sessionID == "" {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrMissingSessionData(fmt.Errorf("no session id in context")))
		return
	}

	if err := c.AuthUsecase.Logout(r.Context(), sessionID); err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LogoutSuccessMessage, nil)
}
