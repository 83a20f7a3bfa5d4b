package contracts

import (
	"context"

	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/app/models"
	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/pkg/dto/responses"
)

// LawyerRepository supplies the lawyer directory; the lifecycle manager only
// reads from it.
type LawyerRepository interface {
	FindByID(ctx context.Context, lawyerID string) (*models.Lawyer, error)
	FindAll(ctx context.Context) ([]models.Lawyer, error)
}

type LawyerUsecase interface {
	FindAll(ctx context.Context) ([]responses.Lawyer, error)
	FindByID(ctx context.Context, lawyerID string) (*responses.Lawyer, error)
}

type UserRepository interface {
	FindByID(ctx context.Context, userID string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}
