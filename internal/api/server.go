package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/serenity/internal/service"
)

type Server struct {
	mx        *chi.Mux
	journal   service.JournalServiceI
	analytics service.AnalyticsServiceI
	export    service.ExportServiceI
}

type ServicesList struct {
	JournalService   service.JournalServiceI
	AnalyticsService service.AnalyticsServiceI
	ExportService    service.ExportServiceI
}

func New(servicesOptions *ServicesList) *Server {
	return &Server{
		mx:        chi.NewMux(),
		journal:   servicesOptions.JournalService,
		analytics: servicesOptions.AnalyticsService,
		export:    servicesOptions.ExportService,
	}
}

func (s *Server) routes() {
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/mood", s.LogMood)
		r.Post("/sleep", s.LogSleep)
		r.Post("/activities", s.LogActivity)
		r.Post("/journal", s.AddJournalEntry)
		r.Post("/goals", s.AddGoal)
		r.Post("/tags", s.AddTag)
		r.Get("/dashboard", s.Dashboard)
		r.Get("/insights", s.Insights)
		r.Get("/report/weekly", s.WeeklyReport)
		r.Post("/export", s.Export)
		r.Get("/meditation", s.GetMeditation)
		r.Post("/meditation", s.SetMeditation)
	})
}

func (s *Server) Run(address string) error {
	s.routes()
	return http.ListenAndServe(address, s.mx)
}
