package repository

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bytedance/sonic"
	"github.com/limbo/serenity/pkg/entity"
)

// snapshot is the persisted document. Every collection lives under exactly
// one key in both directions; goals in particular are written and read back
// through the same "goals" key.
type snapshot struct {
	MoodData         []entity.MoodEntry     `json:"mood_data"`
	Activities       []entity.ActivityEntry `json:"activities"`
	SleepData        []entity.SleepEntry    `json:"sleep_data"`
	Goals            []entity.Goal          `json:"goals"`
	JournalEntries   []entity.JournalEntry  `json:"journal_entries"`
	CustomTags       []string               `json:"custom_tags"`
	MeditationActive bool                   `json:"meditation_active"`
}

// Store owns the canonical in-memory collections and their JSON snapshot on
// disk. Records are append-only; nothing in here edits or removes them.
type Store struct {
	path string
	data snapshot
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the snapshot if one exists. A missing file is the expected
// first-run state and leaves every collection empty. Keys absent from the
// document stay at their zero values.
func (s *Store) Load() error {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.data = snapshot{}
			return nil
		}
		return errors.New("reading journal snapshot error: " + err.Error())
	}
	var doc snapshot
	if err := sonic.Unmarshal(raw, &doc); err != nil {
		return errors.New("decoding journal snapshot error: " + err.Error())
	}
	s.data = doc
	return nil
}

// Persist rewrites the whole snapshot. The document is written to a temp
// file next to the target and renamed over it, so a crash mid-write leaves
// the previous snapshot intact.
func (s *Store) Persist() error {
	raw, err := sonic.Marshal(s.data)
	if err != nil {
		return errors.New("encoding journal snapshot error: " + err.Error())
	}
	tmp := s.path + ".tmp"
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.New("creating snapshot directory error: " + err.Error())
		}
	}
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return errors.New("writing journal snapshot error: " + err.Error())
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return errors.New("replacing journal snapshot error: " + err.Error())
	}
	return nil
}

func (s *Store) AppendMood(e entity.MoodEntry) {
	s.data.MoodData = append(s.data.MoodData, e)
}

func (s *Store) AppendActivity(e entity.ActivityEntry) {
	s.data.Activities = append(s.data.Activities, e)
}

func (s *Store) AppendSleep(e entity.SleepEntry) {
	s.data.SleepData = append(s.data.SleepData, e)
}

func (s *Store) AppendJournal(e entity.JournalEntry) {
	s.data.JournalEntries = append(s.data.JournalEntries, e)
}

func (s *Store) AppendGoal(g entity.Goal) {
	s.data.Goals = append(s.data.Goals, g)
}

// AppendTag does not deduplicate; duplicate tag names are permitted.
func (s *Store) AppendTag(name string) {
	s.data.CustomTags = append(s.data.CustomTags, name)
}

// Accessors hand out copies so callers cannot mutate the backing collections.

func (s *Store) Moods() []entity.MoodEntry {
	out := make([]entity.MoodEntry, len(s.data.MoodData))
	copy(out, s.data.MoodData)
	return out
}

func (s *Store) Activities() []entity.ActivityEntry {
	out := make([]entity.ActivityEntry, len(s.data.Activities))
	copy(out, s.data.Activities)
	return out
}

func (s *Store) Sleep() []entity.SleepEntry {
	out := make([]entity.SleepEntry, len(s.data.SleepData))
	copy(out, s.data.SleepData)
	return out
}

func (s *Store) JournalEntries() []entity.JournalEntry {
	out := make([]entity.JournalEntry, len(s.data.JournalEntries))
	copy(out, s.data.JournalEntries)
	return out
}

func (s *Store) Goals() []entity.Goal {
	out := make([]entity.Goal, len(s.data.Goals))
	copy(out, s.data.Goals)
	return out
}

func (s *Store) Tags() []string {
	out := make([]string, len(s.data.CustomTags))
	copy(out, s.data.CustomTags)
	return out
}

func (s *Store) MeditationActive() bool {
	return s.data.MeditationActive
}

func (s *Store) SetMeditationActive(active bool) {
	s.data.MeditationActive = active
}
