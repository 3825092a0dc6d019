package repository

import "github.com/limbo/serenity/pkg/entity"

type RecordStoreI interface {
	// Reads the snapshot from disk. Missing file means fresh empty state
	Load() error
	// Rewrites the full snapshot atomically
	Persist() error
	// Append operations. Insertion order is preserved, nothing is deduplicated
	AppendMood(e entity.MoodEntry)
	AppendActivity(e entity.ActivityEntry)
	AppendSleep(e entity.SleepEntry)
	AppendJournal(e entity.JournalEntry)
	AppendGoal(g entity.Goal)
	AppendTag(name string)
	// Read accessors return copies of the collections
	Moods() []entity.MoodEntry
	Activities() []entity.ActivityEntry
	Sleep() []entity.SleepEntry
	JournalEntries() []entity.JournalEntry
	Goals() []entity.Goal
	Tags() []string
	// Persisted UI flag kept for snapshot compatibility
	MeditationActive() bool
	SetMeditationActive(active bool)
}
