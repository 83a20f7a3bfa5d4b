package lawyers

import (
	"context"
	"fmt"
	"sync"

	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/app/contracts"
	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/app/models"
	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/pkg/constvars"
	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/pkg/dto/responses"
	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/pkg/exceptions"
	"go.uber.org/zap"
)

var (
	lawyerUsecaseInstance contracts.LawyerUsecase
	onceLawyerUsecase     sync.Once
)

type lawyerUsecase struct {
	LawyerRepository contracts.LawyerRepository
	Log              *zap.Logger
}

func NewLawyerUsecase(lawyerRepository contracts.LawyerRepository, logger *zap.Logger) contracts.LawyerUsecase {
	onceLawyerUsecase.Do(func() {
		instance := &lawyerUsecase{
			LawyerRepository: lawyerRepository,
			Log:              logger,
		}
		lawyerUsecaseInstance = instance
	})
	return lawyerUsecaseInstance
}

func buildLawyerResponse(lawyer *models.Lawyer) responses.Lawyer {
	return responses.Lawyer{
		ID:              lawyer.ID.Hex(),
		Name:            lawyer.Name,
		Email:           lawyer.Email,
		ProfileImage:    lawyer.ProfileImage,
		Specialization:  lawyer.Specialization,
		ConsultationFee: lawyer.ConsultationFee,
		Currency:        lawyer.Currency,
		Verified:        lawyer.Verified,
	}
}

func (uc *lawyerUsecase) FindAll(ctx context.Context) ([]responses.Lawyer, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("lawyerUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	lawyers, err := uc.LawyerRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("lawyerUsecase.FindAll error calling LawyerRepository.FindAll",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := make([]responses.Lawyer, 0, len(lawyers))
	for i := range lawyers {
		response = append(response, buildLawyerResponse(&lawyers[i]))
	}

	uc.Log.Info("lawyerUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(response)),
	)
	return response, nil
}

func (uc *lawyerUsecase) FindByID(ctx context.Context, lawyerID string) (*responses.Lawyer, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("lawyerUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingLawyerIDKey, lawyerID),
	)

	lawyer, err := uc.LawyerRepository.FindByID(ctx, lawyerID)
	if err != nil {
		uc.Log.Error("lawyerUsecase.FindByID error calling LawyerRepository.FindByID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if lawyer == nil {
		return nil, exceptions.ErrLawyerNotFound(fmt.Errorf("lawyer %s not found", lawyerID))
	}

	response := buildLawyerResponse(lawyer)
	return &response, nil
}
