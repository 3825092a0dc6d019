package service

import (
	"context"
	"time"

	"github.com/limbo/serenity/pkg/entity"
)

type LogMoodRequest struct {
	Mood  string `validate:"required"`
	Notes string
}

type LogSleepRequest struct {
	Hours   float64 `validate:"min=0,max=24"`
	Quality string  `validate:"required,oneof=Poor Fair Good Excellent"`
}

type LogActivityRequest struct {
	Activity string `validate:"required"`
	Duration int    `validate:"required,min=5,max=150,step5"`
}

type AddJournalEntryRequest struct {
	Date    string `validate:"required,datetime=2006-01-02"`
	Title   string `validate:"required"`
	Content string
}

type AddGoalRequest struct {
	Type     string  `validate:"required,oneof=Mood Sleep Exercise Meditation"`
	Target   float64 `validate:"min=0"`
	Deadline string  `validate:"required,datetime=2006-01-02"`
}

type JournalServiceI interface {
	// Validates the request, stamps the entry with the current time and appends it.
	// Every successful append is flushed to the persisted snapshot
	LogMood(ctx context.Context, req *LogMoodRequest) (*entity.MoodEntry, error)
	LogSleep(ctx context.Context, req *LogSleepRequest) (*entity.SleepEntry, error)
	LogActivity(ctx context.Context, req *LogActivityRequest) (*entity.ActivityEntry, error)
	AddJournalEntry(ctx context.Context, req *AddJournalEntryRequest) (*entity.JournalEntry, error)
	AddGoal(ctx context.Context, req *AddGoalRequest) (*entity.Goal, error)
	// Appends a tag name. Duplicates are permitted
	AddTag(ctx context.Context, name string) error
	// Persisted UI flag, carried for snapshot compatibility
	MeditationActive(ctx context.Context) bool
	SetMeditationActive(ctx context.Context, active bool) error
}

type AnalyticsServiceI interface {
	// Rolling stats over a trailing day-window. A zero ref means "now";
	// windowDays <= 0 covers the whole series. ErrNoData when the window is empty
	MoodStats(windowDays int, ref time.Time) (entity.WindowStats, error)
	SleepStats(windowDays int, ref time.Time) (entity.WindowStats, error)
	// Day-level inner join of mood and activity records
	Correlate() []entity.DayCorrelation
	// Metric block for the dashboard over the given window
	DashboardSummary(windowDays int, ref time.Time) *entity.DashboardSummary
	// Fixed-order rule table over current aggregated state
	Insights(ref time.Time) []string
	// Mean mood per ISO week, chronological
	WeeklyMoodReport() []entity.WeeklyMood
}

type ExportServiceI interface {
	// Serializes the mood, activity and sleep collections to one file each in
	// the requested format. Returns the written paths
	Export(ctx context.Context, format string) ([]string, error)
}
