package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	errorvalues "github.com/limbo/serenity/internal/error_values"
	"github.com/limbo/serenity/internal/service"
	"github.com/limbo/serenity/pkg/httputil"
)

type LogMoodRequest struct {
	Mood  string `json:"mood"`
	Notes string `json:"notes"`
}

type LogSleepRequest struct {
	Hours   float64 `json:"hours"`
	Quality string  `json:"quality"`
}

type LogActivityRequest struct {
	Activity string `json:"activity"`
	Duration int    `json:"duration"`
}

type JournalEntryRequest struct {
	Date    string `json:"date"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type GoalRequest struct {
	Type     string  `json:"type"`
	Target   float64 `json:"target"`
	Deadline string  `json:"deadline"`
}

type TagRequest struct {
	Name string `json:"name"`
}

type ExportRequest struct {
	Format string `json:"format"`
}

type MeditationRequest struct {
	Active bool `json:"active"`
}

func (s *Server) LogMood(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LogMoodRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("log mood error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	entry, err := s.journal.LogMood(ctx, &service.LogMoodRequest{
		Mood:  req.Mood,
		Notes: req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUnknownMood), errors.Is(err, errorvalues.ErrValidation):
			logger.Error("log mood error: invalid request")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid mood entry", err)
		default:
			logger.Error("log mood error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while logging mood", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, entry)
	logger.Info("mood logged")
}

func (s *Server) LogSleep(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LogSleepRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("log sleep error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	entry, err := s.journal.LogSleep(ctx, &service.LogSleepRequest{
		Hours:   req.Hours,
		Quality: req.Quality,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrValidation) {
			logger.Error("log sleep error: invalid request")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid sleep entry", err)
			return
		}
		logger.Error("log sleep error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while logging sleep", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, entry)
	logger.Info("sleep logged")
}

func (s *Server) LogActivity(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LogActivityRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("log activity error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	entry, err := s.journal.LogActivity(ctx, &service.LogActivityRequest{
		Activity: req.Activity,
		Duration: req.Duration,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrValidation) {
			logger.Error("log activity error: invalid request")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid activity entry", err)
			return
		}
		logger.Error("log activity error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while logging activity", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, entry)
	logger.Info("activity logged")
}

func (s *Server) AddJournalEntry(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req JournalEntryRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("add journal entry error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	entry, err := s.journal.AddJournalEntry(ctx, &service.AddJournalEntryRequest{
		Date:    req.Date,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrValidation) {
			logger.Error("add journal entry error: invalid request")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid journal entry", err)
			return
		}
		logger.Error("add journal entry error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while adding journal entry", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, entry)
	logger.Info("journal entry added")
}

func (s *Server) AddGoal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req GoalRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("add goal error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	goal, err := s.journal.AddGoal(ctx, &service.AddGoalRequest{
		Type:     req.Type,
		Target:   req.Target,
		Deadline: req.Deadline,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrValidation) {
			logger.Error("add goal error: invalid request")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid goal", err)
			return
		}
		logger.Error("add goal error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while adding goal", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, goal)
	logger.Info("goal added")
}

func (s *Server) AddTag(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req TagRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("add tag error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.journal.AddTag(ctx, req.Name)
	if err != nil {
		if errors.Is(err, errorvalues.ErrEmptyTag) {
			logger.Error("add tag error: empty name")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "tag name is required", nil)
			return
		}
		logger.Error("add tag error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while adding tag", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{"name": req.Name})
	logger.Info("tag added")
}

func (s *Server) Dashboard(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	days, err := strconv.Atoi(r.URL.Query().Get("days"))
	if err != nil || days < 1 || days > 365 {
		days = 7
	}
	summary := s.analytics.DashboardSummary(days, time.Time{})
	httputil.WriteJSONResponse(w, http.StatusOK, summary)
	logger.Info("dashboard summary provided")
}

func (s *Server) Insights(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	insights := s.analytics.Insights(time.Time{})
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"insights": insights})
	logger.Info("insights provided")
}

func (s *Server) WeeklyReport(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	report := s.analytics.WeeklyMoodReport()
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"weeks": report})
	logger.Info("weekly report provided")
}

func (s *Server) Export(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req ExportRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("export error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	defer cancel()
	files, err := s.export.Export(ctx, req.Format)
	if err != nil {
		if errors.Is(err, errorvalues.ErrInvalidFormat) {
			logger.Error("export error: unsupported format")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "unsupported export format", nil)
			return
		}
		logger.Error("export error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during export", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"files": files})
	logger.Info("export finished")
}

func (s *Server) GetMeditation(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"active": s.journal.MeditationActive(r.Context()),
	})
}

func (s *Server) SetMeditation(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req MeditationRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("set meditation error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.journal.SetMeditationActive(ctx, req.Active)
	if err != nil {
		logger.Error("set meditation error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while updating meditation flag", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"active": req.Active})
	logger.Info("meditation flag updated")
}
