package apiapp

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/laksanil/vivaahready/internal/config"
	authsvc "github.com/laksanil/vivaahready/internal/services/auth"
	candsvc "github.com/laksanil/vivaahready/internal/services/candidates"
	interestsvc "github.com/laksanil/vivaahready/internal/services/interests"
	notifysvc "github.com/laksanil/vivaahready/internal/services/notify"
	profilesvc "github.com/laksanil/vivaahready/internal/services/profiles"
	"github.com/laksanil/vivaahready/internal/transport/http/handlers"
)

type Dependencies struct {
	JWTManager       *authsvc.JWTManager
	ProfileService   *profilesvc.Service
	CandidateService *candsvc.Service
	InterestService  *interestsvc.Service
	NotifyService    *notifysvc.Service
	Logger           *zap.Logger
	Config           config.Config
}

func RegisterRoutes(r chi.Router, deps Dependencies) {
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(deps.JWTManager)
	meHandler := handlers.NewMeHandler(deps.ProfileService)
	adminHandler := handlers.NewAdminHandler(deps.ProfileService)
	candidateHandler := handlers.NewCandidateHandler(deps.CandidateService)
	interestHandler := handlers.NewInterestHandler(deps.InterestService, deps.Config.Matching.ListLimit)
	notificationHandler := handlers.NewNotificationHandler(deps.NotifyService, deps.Config.Matching.ListLimit)
	authMW := AuthMiddleware(deps.JWTManager, deps.Logger)

	r.Get("/healthz", healthHandler.Get)

	if deps.Config.Auth.DevTokens {
		r.Post("/auth/dev-token", authHandler.DevToken)
	}

	r.Route("/v1", func(r chi.Router) {
		r.Use(authMW)

		r.Get("/me", meHandler.Get)
		r.Put("/me/profile", meHandler.UpdateProfile)
		r.Put("/me/preferences", meHandler.UpdatePreferences)

		r.Get("/candidates", candidateHandler.List)

		r.Post("/interests", interestHandler.Express)
		r.Get("/interests/incoming", interestHandler.Incoming)
		r.Get("/interests/outgoing", interestHandler.Outgoing)
		r.Post("/interests/{id}/respond", interestHandler.Respond)

		r.Get("/notifications", notificationHandler.List)
		r.Post("/notifications/{id}/read", notificationHandler.MarkRead)

		r.With(RequireAdmin()).Post("/admin/profiles/{id}/moderation", adminHandler.SetModerationStatus)
	})
}
