package service

import "time"

// Advisory texts in rule order.
const (
	insightLowMood      = "Your mood has been lower than average. Consider scheduling activities that bring you joy or speaking with a mental health professional."
	insightPositiveMood = "Great job! Your mood has been consistently positive."
	insightLowSleep     = "You're getting less than the recommended 7-9 hours of sleep. Try to maintain a consistent sleep schedule."
	insightOversleep    = "You're getting more than average sleep. If you feel tired despite this, consider checking your sleep quality."
	insightDiversify    = "Consider diversifying your activities to maintain better mental health."
	insightExercise     = "Great job maintaining regular exercise! This is excellent for mental health."
	insightLogMore      = "Start logging more data to receive personalized insights!"
)

// Insights evaluates the fixed rule table: mood and sleep rules over a 7-day
// trailing window, activity rules over the full collection. Every applicable
// rule fires, in table order; the two mood rules are disjoint by their
// thresholds (< 3.0 vs >= 4.0), so a mean of exactly 3.0 fires neither. When
// nothing fires, the single fallback advisory is returned. Pure read over
// store state, no side effects.
func (as *AnalyticsService) Insights(ref time.Time) []string {
	if ref.IsZero() {
		ref = time.Now()
	}
	insights := make([]string, 0, 4)
	if mood, err := as.MoodStats(7, ref); err == nil {
		if mood.Mean < 3.0 {
			insights = append(insights, insightLowMood)
		} else if mood.Mean >= 4.0 {
			insights = append(insights, insightPositiveMood)
		}
	}
	if sleep, err := as.SleepStats(7, ref); err == nil {
		if sleep.Mean < 7.0 {
			insights = append(insights, insightLowSleep)
		}
		if sleep.Mean > 9.0 {
			insights = append(insights, insightOversleep)
		}
	}
	activities := as.store.Activities()
	if len(activities) > 0 {
		counts := make(map[string]int)
		for _, a := range activities {
			counts[a.Activity]++
		}
		if len(counts) < 3 {
			insights = append(insights, insightDiversify)
		}
		if counts["Exercise"] > 3 {
			insights = append(insights, insightExercise)
		}
	}
	if len(insights) == 0 {
		insights = append(insights, insightLogMore)
	}
	return insights
}
