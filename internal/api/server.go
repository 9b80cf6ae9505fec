package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jadebook/jadebook/internal/service"
)

type Server struct {
	mx             *chi.Mux
	userService    service.UserServiceI
	entriesService service.EntriesServiceI
	goalsService   service.GoalsServiceI
	streakTracker  service.StreakTrackerI
	exportService  service.ExportServiceI
	jwtService     JWTServiceI
}

type ServicesList struct {
	UserService    service.UserServiceI
	EntriesService service.EntriesServiceI
	GoalsService   service.GoalsServiceI
	StreakTracker  service.StreakTrackerI
	ExportService  service.ExportServiceI
	JwtService     JWTServiceI
}

func New(servicesOptions *ServicesList) *Server {
	return &Server{
		mx:             chi.NewMux(),
		userService:    servicesOptions.UserService,
		entriesService: servicesOptions.EntriesService,
		goalsService:   servicesOptions.GoalsService,
		streakTracker:  servicesOptions.StreakTracker,
		exportService:  servicesOptions.ExportService,
		jwtService:     servicesOptions.JwtService,
	}
}

func (s *Server) Routes() *chi.Mux {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
			r.Delete("/auth/account", s.DeleteAccount)

			r.Get("/entries", s.GetEntries)
			r.Post("/entries", s.CreateEntry)
			r.Get("/entries/search", s.SearchEntries)
			r.Get("/entries/{id}", s.GetEntry)
			r.Put("/entries/{id}", s.UpdateEntry)
			r.Delete("/entries/{id}", s.DeleteEntry)
			r.Patch("/entries/{id}/pin", s.PinEntry)

			r.Get("/goals", s.GetGoals)
			r.Post("/goals", s.CreateGoal)
			r.Get("/goals/{id}", s.GetGoal)
			r.Put("/goals/{id}", s.UpdateGoal)
			r.Delete("/goals/{id}", s.DeleteGoal)
			r.Patch("/goals/{id}/status", s.SetGoalStatus)
			r.Get("/goals/{id}/logs", s.GetGoalLogs)
			r.Post("/goals/{id}/logs", s.AddGoalLog)
			r.Delete("/goals/{id}/logs/{logID}", s.DeleteGoalLog)

			r.Get("/streak", s.GetStreak)
			r.Get("/export", s.Export)
			r.Post("/import", s.Import)
		})
	})
	return s.mx
}

func (s *Server) Run(address string) error {
	return http.ListenAndServe(address, s.Routes())
}
