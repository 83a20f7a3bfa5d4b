package routers

import (
	"fmt"

	"github.com/go-chi/chi/v5"
	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/pkg/constvars"
)

func attachLawyerRoutes(r chi.Router, rc *RouterConfig) {
	r.Route("/lawyers", func(lawyers chi.Router) {
		lawyers.Get("/", rc.LawyerController.GetAllLawyers)
		lawyers.Get(fmt.Sprintf("/{%s}", constvars.URLParamLawyerID), rc.LawyerController.GetLawyerByID)
	})
}
