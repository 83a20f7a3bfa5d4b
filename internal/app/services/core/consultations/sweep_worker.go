package consultations

import (
	"context"
	"time"

	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/app/config"
	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/app/contracts"
	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/pkg/constvars"
	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/pkg/utils"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// SweepWorker periodically flips overdue accepted consultations to completed.
// A redis leader lock keeps the sweep single-flight across replicas; the
// in-request sweep before list reads stays the consistency backstop.
type SweepWorker struct {
	cron                *cron.Cron
	consultationUsecase contracts.ConsultationUsecase
	locker              contracts.LockerService
	log                 *zap.Logger
	internalConfig      *config.InternalConfig
}

func NewSweepWorker(
	consultationUsecase contracts.ConsultationUsecase,
	locker contracts.LockerService,
	logger *zap.Logger,
	internalConfig *config.InternalConfig,
) *SweepWorker {
	return &SweepWorker{
		cron:                cron.New(),
		consultationUsecase: consultationUsecase,
		locker:              locker,
		log:                 logger,
		internalConfig:      internalConfig,
	}
}

func (w *SweepWorker) Start() error {
	_, err := w.cron.AddFunc(w.internalConfig.App.SweepCronSpec, w.runSweep)
	if err != nil {
		return err
	}
	w.cron.Start()
	w.log.Info("SweepWorker started",
		zap.String("cron_spec", w.internalConfig.App.SweepCronSpec),
	)
	return nil
}

func (w *SweepWorker) Stop() {
	stopCtx := w.cron.Stop()
	<-stopCtx.Done()
	w.log.Info("SweepWorker stopped")
}

func (w *SweepWorker) runSweep() {
	requestID := utils.GenerateRequestID()
	ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, requestID)

	lockTTL := time.Duration(w.internalConfig.App.SweepLockTTLInSeconds) * time.Second
	acquired, lockValue, err := w.locker.TryLock(ctx, constvars.SweepLeaderLockKey, lockTTL)
	if err != nil {
		w.log.Error("SweepWorker.runSweep error acquiring leader lock",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return
	}
	if !acquired {
		w.log.Info("SweepWorker.runSweep another replica holds the leader lock",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return
	}

	stopRefresher := make(chan struct{})
	go w.refreshLock(ctx, requestID, lockValue, lockTTL, stopRefresher)
	defer func() {
		close(stopRefresher)
		if err := w.locker.Unlock(ctx, constvars.SweepLeaderLockKey, lockValue); err != nil {
			w.log.Warn("SweepWorker.runSweep error releasing leader lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	}()

	swept, err := w.consultationUsecase.CompleteDueConsultations(ctx)
	if err != nil {
		w.log.Error("SweepWorker.runSweep error completing due consultations",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return
	}

	w.log.Info("SweepWorker.runSweep finished",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingSweptCountKey, swept),
	)
}

// refreshLock extends the leader lock TTL while the sweep is still running so
// a slow sweep does not lose leadership mid-write.
func (w *SweepWorker) refreshLock(ctx context.Context, requestID, lockValue string, lockTTL time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(lockTTL / 2)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if err := w.locker.Refresh(ctx, constvars.SweepLeaderLockKey, lockValue, lockTTL); err != nil {
				w.log.Warn("SweepWorker.refreshLock error extending leader lock",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.Error(err),
				)
			}
		}
	}
}
