package entity

// Date layouts used across the persisted collections. Mood and activity
// entries carry a time-of-day component, the rest are calendar dates.
const (
	TimestampLayout = "2006-01-02 15:04"
	DateLayout      = "2006-01-02"
)

type MoodEntry struct {
	Date      string `json:"date"`
	Mood      string `json:"mood"`
	MoodValue int    `json:"mood_value"`
	Notes     string `json:"notes"`
}

type ActivityEntry struct {
	Date     string `json:"date"`
	Activity string `json:"activity"`
	Duration int    `json:"duration"`
}

type SleepEntry struct {
	Date    string  `json:"date"`
	Hours   float64 `json:"hours"`
	Quality string  `json:"quality"`
}

type JournalEntry struct {
	Date    string `json:"date"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type Goal struct {
	Type        string  `json:"type"`
	Target      float64 `json:"target"`
	Deadline    string  `json:"deadline"`
	CreatedDate string  `json:"created_date"`
}

// WindowStats is the aggregate over a trailing day-window of a numeric series.
type WindowStats struct {
	Mean  float64 `json:"mean"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Count int     `json:"count"`
}

// DayCorrelation joins one calendar day's mood with the activities logged
// that day. Derived on demand, never persisted.
type DayCorrelation struct {
	Date       string   `json:"date"`
	MoodValue  int      `json:"mood_value"`
	Activities []string `json:"activities"`
}

// WeeklyMood is one bucket of the weekly mood report.
type WeeklyMood struct {
	WeekStart string  `json:"week_start"`
	MeanMood  float64 `json:"mean_mood"`
	Entries   int     `json:"entries"`
}

type DashboardSummary struct {
	WindowDays       int             `json:"window_days"`
	Mood             *WindowStats    `json:"mood,omitempty"`
	Sleep            *WindowStats    `json:"sleep,omitempty"`
	ActivityCount    int             `json:"activity_count"`
	RecentActivities []ActivityEntry `json:"recent_activities"`
	RecentJournal    []JournalEntry  `json:"recent_journal"`
}
