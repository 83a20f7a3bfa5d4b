package routers

import (
	"fmt"

	"github.com/go-chi/chi/v5"
	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/pkg/constvars"
)

func attachPaymentRoutes(r chi.Router, rc *RouterConfig) {
	r.Route("/payments", func(payments chi.Router) {
		payments.Use(rc.Middleware.Authenticate)

		payments.Post(fmt.Sprintf("/{%s}/order", constvars.URLParamConsultationID), rc.PaymentController.CreatePaymentOrder)
		payments.Post(fmt.Sprintf("/{%s}/verify", constvars.URLParamConsultationID), rc.PaymentController.VerifyPayment)
		payments.Get(fmt.Sprintf("/{%s}", constvars.URLParamConsultationID), rc.PaymentController.GetPaymentDetails)
	})
}
