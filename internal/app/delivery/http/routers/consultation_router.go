package routers

import (
	"fmt"

	"github.com/go-chi/chi/v5"
	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/pkg/constvars"
)

func attachConsultationRoutes(r chi.Router, rc *RouterConfig) {
	r.Route("/consultations", func(consultations chi.Router) {
		consultations.Use(rc.Middleware.Authenticate)

		consultations.Post("/", rc.ConsultationController.CreateConsultation)
		consultations.Get("/lawyer", rc.ConsultationController.GetLawyerConsultations)
		consultations.Get("/client", rc.ConsultationController.GetClientConsultations)
		consultations.Get("/client/unread-count", rc.ConsultationController.GetUnreadCount)
		consultations.Post("/client/mark-read", rc.ConsultationController.MarkConsultationsRead)

		consultations.Patch(fmt.Sprintf("/{%s}/status", constvars.URLParamConsultationID), rc.ConsultationController.UpdateConsultationStatus)
		consultations.Delete(fmt.Sprintf("/{%s}", constvars.URLParamConsultationID), rc.ConsultationController.CancelConsultation)
		consultations.Put(fmt.Sprintf("/{%s}/reschedule", constvars.URLParamConsultationID), rc.ConsultationController.RescheduleConsultation)
	})
}
