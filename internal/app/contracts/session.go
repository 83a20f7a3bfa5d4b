package contracts

import (
	"context"

	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/app/models"
	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/pkg/dto/requests"
	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/pkg/dto/responses"
)

type SessionService interface {
	CreateSession(ctx context.Context, user *models.User) (sessionID string, err error)
	GetSessionData(ctx context.Context, sessionID string) (string, error)
	ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

type AuthUsecase interface {
	Login(ctx context.Context, request *requests.LoginRequest) (*responses.Login, error)
	Logout(ctx context.Context, sessionID string) error
}
