package api_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/limbo/serenity/internal/api"
	errorvalues "github.com/limbo/serenity/internal/error_values"
	"github.com/limbo/serenity/internal/service"
	"github.com/limbo/serenity/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockState int

const (
	stateSuccess mockState = iota
	stateValidationError
	stateInternalError
)

type JournalServiceMock struct {
	state      mockState
	meditation bool
}

func (jmock *JournalServiceMock) LogMood(ctx context.Context, req *service.LogMoodRequest) (*entity.MoodEntry, error) {
	switch jmock.state {
	case stateValidationError:
		return nil, errorvalues.ErrUnknownMood
	case stateInternalError:
		return nil, assert.AnError
	default:
		return &entity.MoodEntry{Date: "2026-08-14 21:15", Mood: req.Mood, MoodValue: 4, Notes: req.Notes}, nil
	}
}

func (jmock *JournalServiceMock) LogSleep(ctx context.Context, req *service.LogSleepRequest) (*entity.SleepEntry, error) {
	switch jmock.state {
	case stateValidationError:
		return nil, errorvalues.ErrValidation
	case stateInternalError:
		return nil, assert.AnError
	default:
		return &entity.SleepEntry{Date: "2026-08-14", Hours: req.Hours, Quality: req.Quality}, nil
	}
}

func (jmock *JournalServiceMock) LogActivity(ctx context.Context, req *service.LogActivityRequest) (*entity.ActivityEntry, error) {
	switch jmock.state {
	case stateValidationError:
		return nil, errorvalues.ErrValidation
	case stateInternalError:
		return nil, assert.AnError
	default:
		return &entity.ActivityEntry{Date: "2026-08-14 21:15", Activity: req.Activity, Duration: req.Duration}, nil
	}
}

func (jmock *JournalServiceMock) AddJournalEntry(ctx context.Context, req *service.AddJournalEntryRequest) (*entity.JournalEntry, error) {
	switch jmock.state {
	case stateValidationError:
		return nil, errorvalues.ErrValidation
	case stateInternalError:
		return nil, assert.AnError
	default:
		return &entity.JournalEntry{Date: req.Date, Title: req.Title, Content: req.Content}, nil
	}
}

func (jmock *JournalServiceMock) AddGoal(ctx context.Context, req *service.AddGoalRequest) (*entity.Goal, error) {
	switch jmock.state {
	case stateValidationError:
		return nil, errorvalues.ErrValidation
	case stateInternalError:
		return nil, assert.AnError
	default:
		return &entity.Goal{Type: req.Type, Target: req.Target, Deadline: req.Deadline, CreatedDate: "2026-08-14"}, nil
	}
}

func (jmock *JournalServiceMock) AddTag(ctx context.Context, name string) error {
	switch jmock.state {
	case stateValidationError:
		return errorvalues.ErrEmptyTag
	case stateInternalError:
		return assert.AnError
	default:
		return nil
	}
}

func (jmock *JournalServiceMock) MeditationActive(ctx context.Context) bool {
	return jmock.meditation
}

func (jmock *JournalServiceMock) SetMeditationActive(ctx context.Context, active bool) error {
	if jmock.state == stateInternalError {
		return assert.AnError
	}
	jmock.meditation = active
	return nil
}

type AnalyticsServiceMock struct{}

func (amock *AnalyticsServiceMock) MoodStats(windowDays int, ref time.Time) (entity.WindowStats, error) {
	return entity.WindowStats{Mean: 4, Min: 3, Max: 5, Count: 3}, nil
}

func (amock *AnalyticsServiceMock) SleepStats(windowDays int, ref time.Time) (entity.WindowStats, error) {
	return entity.WindowStats{}, errorvalues.ErrNoData
}

func (amock *AnalyticsServiceMock) Correlate() []entity.DayCorrelation {
	return []entity.DayCorrelation{}
}

func (amock *AnalyticsServiceMock) DashboardSummary(windowDays int, ref time.Time) *entity.DashboardSummary {
	return &entity.DashboardSummary{WindowDays: windowDays, ActivityCount: 2}
}

func (amock *AnalyticsServiceMock) Insights(ref time.Time) []string {
	return []string{"Start logging more data to receive personalized insights!"}
}

func (amock *AnalyticsServiceMock) WeeklyMoodReport() []entity.WeeklyMood {
	return []entity.WeeklyMood{{WeekStart: "2026-08-10", MeanMood: 4, Entries: 2}}
}

type ExportServiceMock struct {
	state mockState
}

func (emock *ExportServiceMock) Export(ctx context.Context, format string) ([]string, error) {
	switch emock.state {
	case stateValidationError:
		return nil, errorvalues.ErrInvalidFormat
	case stateInternalError:
		return nil, assert.AnError
	default:
		return []string{"exports/mood_data.csv", "exports/activities.csv", "exports/sleep_data.csv"}, nil
	}
}

func newTestServer(journal *JournalServiceMock, export *ExportServiceMock) *api.Server {
	return api.New(&api.ServicesList{
		JournalService:   journal,
		AnalyticsService: &AnalyticsServiceMock{},
		ExportService:    export,
	})
}

func postJSON(t *testing.T, handler http.HandlerFunc, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := sonic.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(raw))
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func TestLogMoodHandler(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		s := newTestServer(&JournalServiceMock{}, &ExportServiceMock{})
		w := postJSON(t, s.LogMood, "/api/v1/mood", api.LogMoodRequest{Mood: "Good", Notes: "ok"})
		assert.Equal(t, http.StatusCreated, w.Code)
		var entry entity.MoodEntry
		require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &entry))
		assert.Equal(t, 4, entry.MoodValue)
	})
	t.Run("invalid label", func(t *testing.T) {
		s := newTestServer(&JournalServiceMock{state: stateValidationError}, &ExportServiceMock{})
		w := postJSON(t, s.LogMood, "/api/v1/mood", api.LogMoodRequest{Mood: "Meh"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
	t.Run("service failure", func(t *testing.T) {
		s := newTestServer(&JournalServiceMock{state: stateInternalError}, &ExportServiceMock{})
		w := postJSON(t, s.LogMood, "/api/v1/mood", api.LogMoodRequest{Mood: "Good"})
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
	t.Run("broken body", func(t *testing.T) {
		s := newTestServer(&JournalServiceMock{}, &ExportServiceMock{})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/mood", bytes.NewReader([]byte("{broken")))
		w := httptest.NewRecorder()
		s.LogMood(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLogActivityHandler(t *testing.T) {
	t.Run("validation error maps to 400", func(t *testing.T) {
		s := newTestServer(&JournalServiceMock{state: stateValidationError}, &ExportServiceMock{})
		w := postJSON(t, s.LogActivity, "/api/v1/activities", api.LogActivityRequest{Activity: "Reading", Duration: 47})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
	t.Run("created", func(t *testing.T) {
		s := newTestServer(&JournalServiceMock{}, &ExportServiceMock{})
		w := postJSON(t, s.LogActivity, "/api/v1/activities", api.LogActivityRequest{Activity: "Reading", Duration: 45})
		assert.Equal(t, http.StatusCreated, w.Code)
	})
}

func TestDashboardHandler(t *testing.T) {
	s := newTestServer(&JournalServiceMock{}, &ExportServiceMock{})
	t.Run("default window", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
		w := httptest.NewRecorder()
		s.Dashboard(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		var summary entity.DashboardSummary
		require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &summary))
		assert.Equal(t, 7, summary.WindowDays)
	})
	t.Run("explicit window", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard?days=30", nil)
		w := httptest.NewRecorder()
		s.Dashboard(w, req)
		var summary entity.DashboardSummary
		require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &summary))
		assert.Equal(t, 30, summary.WindowDays)
	})
	t.Run("bogus window falls back to 7", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard?days=-3", nil)
		w := httptest.NewRecorder()
		s.Dashboard(w, req)
		var summary entity.DashboardSummary
		require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &summary))
		assert.Equal(t, 7, summary.WindowDays)
	})
}

func TestInsightsHandler(t *testing.T) {
	s := newTestServer(&JournalServiceMock{}, &ExportServiceMock{})
	req := httptest.NewRequest(http.MethodGet, "/api/v1/insights", nil)
	w := httptest.NewRecorder()
	s.Insights(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Start logging more data")
}

func TestExportHandler(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		s := newTestServer(&JournalServiceMock{}, &ExportServiceMock{})
		w := postJSON(t, s.Export, "/api/v1/export", api.ExportRequest{Format: "csv"})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "mood_data.csv")
	})
	t.Run("unsupported format", func(t *testing.T) {
		s := newTestServer(&JournalServiceMock{}, &ExportServiceMock{state: stateValidationError})
		w := postJSON(t, s.Export, "/api/v1/export", api.ExportRequest{Format: "pdf"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestMeditationHandlers(t *testing.T) {
	journal := &JournalServiceMock{}
	s := newTestServer(journal, &ExportServiceMock{})
	w := postJSON(t, s.SetMeditation, "/api/v1/meditation", api.MeditationRequest{Active: true})
	assert.Equal(t, http.StatusOK, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/meditation", nil)
	get := httptest.NewRecorder()
	s.GetMeditation(get, req)
	assert.Equal(t, http.StatusOK, get.Code)
	assert.Contains(t, get.Body.String(), "true")
}
