package routers

import "github.com/go-chi/chi/v5"

func attachAuthRoutes(r chi.Router, rc *RouterConfig) {
	r.Route("/auth", func(auth chi.Router) {
		auth.Post("/login", rc.AuthController.Login)

		auth.Group(func(protected chi.Router) {
			protected.Use(rc.Middleware.Authenticate)
			protected.Post("/logout", rc.AuthController.Logout)
		})
	})
}
