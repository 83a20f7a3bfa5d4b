package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/app/config"
	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/app/delivery/http/controllers"
	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/app/delivery/http/middlewares"
	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/app/delivery/http/routers"
	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/app/drivers/database"
	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/app/drivers/logger"
	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/app/drivers/messaging"
	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/app/services/core/auth"
	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/app/services/core/consultations"
	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/app/services/core/lawyers"
	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/app/services/core/payments"
	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/app/services/core/session"
	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/app/services/core/users"
	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/app/services/shared/locker"
	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/app/services/shared/notifier"
	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/app/services/shared/payment_gateway"
	sharedredis "github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/app/services/shared/redis"
	"github.com/sirupsen/logrus"
)

func main() {
	bootstrap := bootstrapingTheApp()

	server := &http.Server{
		Addr:    bootstrap.InternalConfig.App.Port,
		Handler: bootstrap.Router,
	}

	sweepWorker := buildSweepWorker(bootstrap)
	if err := sweepWorker.Start(); err != nil {
		logrus.Fatalf("Failed to start sweep worker: %s", err.Error())
	}

	go func() {
		logrus.Printf("Server listening on %s", bootstrap.InternalConfig.App.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server failed to listen: %s", err.Error())
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Println("Shutting down server...")

	sweepWorker.Stop()

	shutdownTimeout := time.Duration(bootstrap.InternalConfig.App.ShutdownTimeout) * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logrus.Fatalf("Server forced to shutdown: %s", err.Error())
	}
	if err := bootstrap.MongoDB.Disconnect(ctx); err != nil {
		logrus.Errorf("Failed to disconnect mongo client: %s", err.Error())
	}
	if err := bootstrap.Redis.Close(); err != nil {
		logrus.Errorf("Failed to close redis client: %s", err.Error())
	}
	if err := bootstrap.RabbitMQ.Close(); err != nil {
		logrus.Errorf("Failed to close rabbitmq connection: %s", err.Error())
	}
	logrus.Println("Server exited gracefully")
}

func bootstrapingTheApp() *config.Bootstrap {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	mongoClient := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQConn := messaging.NewRabbitMQ(driverConfig)

	db := mongoClient.Database(driverConfig.MongoDB.DbName)

	redisRepository := sharedredis.NewRedisRepository(redisClient)
	sessionService := session.NewSessionService(redisRepository, zapLogger, internalConfig)
	paymentGateway := payment_gateway.NewRazorpayService(internalConfig, zapLogger)
	eventNotifier := notifier.NewRabbitMQNotifier(rabbitMQConn, zapLogger)

	userRepository := users.NewUserMongoRepository(db)
	lawyerRepository := lawyers.NewLawyerMongoRepository(db)
	consultationRepository := consultations.NewConsultationMongoRepository(db)

	authUsecase := auth.NewAuthUsecase(userRepository, sessionService, zapLogger, internalConfig)
	lawyerUsecase := lawyers.NewLawyerUsecase(lawyerRepository, zapLogger)
	consultationUsecase := consultations.NewConsultationUsecase(consultationRepository, lawyerRepository, userRepository, sessionService, eventNotifier, zapLogger)
	paymentUsecase := payments.NewPaymentUsecase(consultationRepository, lawyerRepository, sessionService, paymentGateway, eventNotifier, zapLogger)

	router := chi.NewRouter()
	routers.Setup(router, internalConfig, &routers.RouterConfig{
		Middleware:             middlewares.NewMiddleware(zapLogger, sessionService, internalConfig),
		AuthController:         controllers.NewAuthController(authUsecase, zapLogger),
		LawyerController:       controllers.NewLawyerController(lawyerUsecase, zapLogger),
		ConsultationController: controllers.NewConsultationController(consultationUsecase, zapLogger),
		PaymentController:      controllers.NewPaymentController(paymentUsecase, zapLogger),
	})

	return &config.Bootstrap{
		Router:         router,
		MongoDB:        mongoClient,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQConn,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
}

func buildSweepWorker(bootstrap *config.Bootstrap) *consultations.SweepWorker {
	redisRepository := sharedredis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, bootstrap.Logger)

	db := bootstrap.MongoDB.Database(bootstrap.DriverConfig.MongoDB.DbName)
	consultationRepository := consultations.NewConsultationMongoRepository(db)
	userRepository := users.NewUserMongoRepository(db)
	lawyerRepository := lawyers.NewLawyerMongoRepository(db)
	sessionService := session.NewSessionService(redisRepository, bootstrap.Logger, bootstrap.InternalConfig)
	eventNotifier := notifier.NewRabbitMQNotifier(bootstrap.RabbitMQ, bootstrap.Logger)
	consultationUsecase := consultations.NewConsultationUsecase(consultationRepository, lawyerRepository, userRepository, sessionService, eventNotifier, bootstrap.Logger)

	return consultations.NewSweepWorker(consultationUsecase, lockerService, bootstrap.Logger, bootstrap.InternalConfig)
}
