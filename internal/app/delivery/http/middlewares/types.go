package middlewares

import (
	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/app/config"
	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/app/contracts"
	"go.uber.org/zap"
)

type Middleware struct {
	Log            *zap.Logger
	SessionService contracts.SessionService
	InternalConfig *config.InternalConfig
}

func NewMiddleware(logger *zap.Logger, sessionService contracts.SessionService, internalConfig *config.InternalConfig) *Middleware {
	return &Middleware{
		Log:            logger,
		SessionService: sessionService,
		InternalConfig: internalConfig,
	}
}
