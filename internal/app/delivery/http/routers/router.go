package routers

import (
	"fmt"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/app/config"
	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/app/delivery/http/controllers"
	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/app/delivery/http/middlewares"
	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/pkg/constvars"
)

type RouterConfig struct {
	Middleware             *middlewares.Middleware
	AuthController         *controllers.AuthController
	LawyerController       *controllers.LawyerController
	ConsultationController *controllers.ConsultationController
	PaymentController      *controllers.PaymentController
}

func Setup(router *chi.Mux, internalConfig *config.InternalConfig, rc *RouterConfig) {
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{constvars.MethodGet, constvars.MethodPost, constvars.MethodPut, constvars.MethodPatch, constvars.MethodDelete, constvars.MethodOptions},
		AllowedHeaders:   []string{constvars.HeaderContentType, constvars.HeaderAuthorization, constvars.HeaderXRequestID},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, 1*time.Minute))
	router.Use(rc.Middleware.RequestID)
	router.Use(rc.Middleware.Logging)
	router.Use(rc.Middleware.Recoverer)
	router.Use(rc.Middleware.Timeout)

	prefix := fmt.Sprintf("/%s/%s", internalConfig.App.EndpointPrefix, internalConfig.App.Version)
	router.Route(prefix, func(r chi.Router) {
		attachAuthRoutes(r, rc)
		attachLawyerRoutes(r, rc)
		attachConsultationRoutes(r, rc)
		attachPaymentRoutes(r, rc)
	})
}
