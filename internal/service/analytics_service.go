package service

import (
	"log"
	"math"
	"sort"
	"time"

	errorvalues "github.com/limbo/serenity/internal/error_values"
	"github.com/limbo/serenity/internal/repository"
	"github.com/limbo/serenity/pkg/entity"
)

type AnalyticsService struct {
	store repository.RecordStoreI
}

func NewAnalyticsService(store repository.RecordStoreI) *AnalyticsService {
	if store == nil {
		log.Fatal("provided nil record store")
	}
	return &AnalyticsService{
		store: store,
	}
}

// sample is one dated numeric observation extracted from a collection.
type sample struct {
	at    time.Time
	value float64
}

// parseRecordDate accepts both stored layouts: timestamped entries and
// date-only entries.
func parseRecordDate(s string) (time.Time, error) {
	if t, err := time.Parse(entity.TimestampLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(entity.DateLayout, s); err == nil {
		return t, nil
	}
	return time.Time{}, errorvalues.ErrMalformedRecord
}

// windowStats aggregates samples falling strictly after ref minus windowDays.
// The lower bound is exclusive; there is no upper bound, everything logged up
// to the reference instant counts. windowDays <= 0 disables the bound and
// covers the whole series. An empty windowed subset is ErrNoData, never a
// silent zero.
func windowStats(samples []sample, windowDays int, ref time.Time) (entity.WindowStats, error) {
	cutoff := ref.AddDate(0, 0, -windowDays)
	var (
		sum   float64
		min   = math.Inf(1)
		max   = math.Inf(-1)
		count int
	)
	for _, sm := range samples {
		if windowDays > 0 && !sm.at.After(cutoff) {
			continue
		}
		sum += sm.value
		min = math.Min(min, sm.value)
		max = math.Max(max, sm.value)
		count++
	}
	if count == 0 {
		return entity.WindowStats{}, errorvalues.ErrNoData
	}
	return entity.WindowStats{
		Mean:  sum / float64(count),
		Min:   min,
		Max:   max,
		Count: count,
	}, nil
}

// moodSamples extracts dated mood values. Records whose date does not parse
// are skipped rather than failing the whole series.
func moodSamples(moods []entity.MoodEntry) []sample {
	samples := make([]sample, 0, len(moods))
	for _, m := range moods {
		at, err := parseRecordDate(m.Date)
		if err != nil {
			continue
		}
		samples = append(samples, sample{at: at, value: float64(m.MoodValue)})
	}
	return samples
}

func sleepSamples(entries []entity.SleepEntry) []sample {
	samples := make([]sample, 0, len(entries))
	for _, e := range entries {
		at, err := parseRecordDate(e.Date)
		if err != nil {
			continue
		}
		samples = append(samples, sample{at: at, value: e.Hours})
	}
	return samples
}

func (as *AnalyticsService) MoodStats(windowDays int, ref time.Time) (entity.WindowStats, error) {
	if ref.IsZero() {
		ref = time.Now()
	}
	return windowStats(moodSamples(as.store.Moods()), windowDays, ref)
}

func (as *AnalyticsService) SleepStats(windowDays int, ref time.Time) (entity.WindowStats, error) {
	if ref.IsZero() {
		ref = time.Now()
	}
	return windowStats(sleepSamples(as.store.Sleep()), windowDays, ref)
}

func (as *AnalyticsService) activityCount(windowDays int, ref time.Time) int {
	cutoff := ref.AddDate(0, 0, -windowDays)
	count := 0
	for _, a := range as.store.Activities() {
		at, err := parseRecordDate(a.Date)
		if err != nil {
			continue
		}
		if windowDays > 0 && !at.After(cutoff) {
			continue
		}
		count++
	}
	return count
}

// Correlate inner-joins mood and activity records by calendar day: only days
// with at least one record on both sides appear. When several mood entries
// share a day, the last-logged one wins (collections are append-only, so
// collection order is logging order). Days come back ascending; activity
// names keep first-seen order within a day.
func (as *AnalyticsService) Correlate() []entity.DayCorrelation {
	moods := as.store.Moods()
	activities := as.store.Activities()
	combined := make([]entity.DayCorrelation, 0)
	if len(moods) == 0 || len(activities) == 0 {
		return combined
	}
	moodByDay := make(map[string]int)
	for _, m := range moods {
		at, err := parseRecordDate(m.Date)
		if err != nil {
			continue
		}
		moodByDay[at.Format(entity.DateLayout)] = m.MoodValue
	}
	activitiesByDay := make(map[string][]string)
	for _, a := range activities {
		at, err := parseRecordDate(a.Date)
		if err != nil {
			continue
		}
		day := at.Format(entity.DateLayout)
		activitiesByDay[day] = append(activitiesByDay[day], a.Activity)
	}
	days := make([]string, 0, len(moodByDay))
	for day := range moodByDay {
		if _, ok := activitiesByDay[day]; ok {
			days = append(days, day)
		}
	}
	sort.Strings(days)
	for _, day := range days {
		combined = append(combined, entity.DayCorrelation{
			Date:       day,
			MoodValue:  moodByDay[day],
			Activities: activitiesByDay[day],
		})
	}
	return combined
}

// DashboardSummary builds the metric block shown on the dashboard: windowed
// mood and sleep stats (nil when there is no data), the windowed activity
// count, and the five most recent activities and journal entries.
func (as *AnalyticsService) DashboardSummary(windowDays int, ref time.Time) *entity.DashboardSummary {
	if windowDays < 1 {
		windowDays = 7
	}
	if ref.IsZero() {
		ref = time.Now()
	}
	summary := entity.DashboardSummary{
		WindowDays:    windowDays,
		ActivityCount: as.activityCount(windowDays, ref),
	}
	if mood, err := as.MoodStats(windowDays, ref); err == nil {
		summary.Mood = &mood
	}
	if sleep, err := as.SleepStats(windowDays, ref); err == nil {
		summary.Sleep = &sleep
	}
	activities := as.store.Activities()
	sortByDateDesc(activities, func(a entity.ActivityEntry) string { return a.Date })
	summary.RecentActivities = head(activities, 5)
	journal := as.store.JournalEntries()
	sortByDateDesc(journal, func(e entity.JournalEntry) string { return e.Date })
	summary.RecentJournal = head(journal, 5)
	return &summary
}

// WeeklyMoodReport buckets mood entries by the Monday of their week and
// averages each bucket, oldest week first.
func (as *AnalyticsService) WeeklyMoodReport() []entity.WeeklyMood {
	type bucket struct {
		sum float64
		n   int
	}
	buckets := make(map[string]*bucket)
	for _, m := range as.store.Moods() {
		at, err := parseRecordDate(m.Date)
		if err != nil {
			continue
		}
		weekday := (int(at.Weekday()) + 6) % 7
		monday := at.AddDate(0, 0, -weekday).Format(entity.DateLayout)
		b := buckets[monday]
		if b == nil {
			b = &bucket{}
			buckets[monday] = b
		}
		b.sum += float64(m.MoodValue)
		b.n++
	}
	weeks := make([]string, 0, len(buckets))
	for week := range buckets {
		weeks = append(weeks, week)
	}
	sort.Strings(weeks)
	report := make([]entity.WeeklyMood, 0, len(weeks))
	for _, week := range weeks {
		b := buckets[week]
		report = append(report, entity.WeeklyMood{
			WeekStart: week,
			MeanMood:  b.sum / float64(b.n),
			Entries:   b.n,
		})
	}
	return report
}

func sortByDateDesc[T any](items []T, date func(T) string) {
	sort.SliceStable(items, func(i, j int) bool {
		ti, erri := parseRecordDate(date(items[i]))
		tj, errj := parseRecordDate(date(items[j]))
		if erri != nil || errj != nil {
			return errj != nil && erri == nil
		}
		return ti.After(tj)
	})
}

func head[T any](items []T, n int) []T {
	if len(items) > n {
		items = items[:n]
	}
	return items
}
