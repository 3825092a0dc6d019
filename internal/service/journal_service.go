package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	errorvalues "github.com/limbo/serenity/internal/error_values"
	"github.com/limbo/serenity/internal/repository"
	"github.com/limbo/serenity/pkg/entity"
)

// moodScale is the fixed mapping from mood label to its value on the 1-5 scale.
var moodScale = map[string]int{
	"Excellent": 5,
	"Good":      4,
	"Neutral":   3,
	"Low":       2,
	"Very Low":  1,
}

type JournalService struct {
	store repository.RecordStoreI
	now   func() time.Time
}

func NewJournalService(store repository.RecordStoreI) *JournalService {
	if store == nil {
		log.Fatal("provided nil record store")
	}
	return &JournalService{
		store: store,
		now:   time.Now,
	}
}

// NewJournalServiceWithClock fixes the timestamp source. Needed for deterministic tests.
func NewJournalServiceWithClock(store repository.RecordStoreI, clock func() time.Time) *JournalService {
	js := NewJournalService(store)
	js.now = clock
	return js
}

func (js *JournalService) LogMood(ctx context.Context, req *LogMoodRequest) (*entity.MoodEntry, error) {
	if err := validateStruct(*req); err != nil {
		return nil, err
	}
	value, ok := moodScale[req.Mood]
	if !ok {
		return nil, errorvalues.ErrUnknownMood
	}
	e := entity.MoodEntry{
		Date:      js.now().Format(entity.TimestampLayout),
		Mood:      req.Mood,
		MoodValue: value,
		Notes:     req.Notes,
	}
	js.store.AppendMood(e)
	if err := js.store.Persist(); err != nil {
		return nil, errors.New("record store error: " + err.Error())
	}
	return &e, nil
}

func (js *JournalService) LogSleep(ctx context.Context, req *LogSleepRequest) (*entity.SleepEntry, error) {
	if err := validateStruct(*req); err != nil {
		return nil, err
	}
	e := entity.SleepEntry{
		Date:    js.now().Format(entity.DateLayout),
		Hours:   req.Hours,
		Quality: req.Quality,
	}
	js.store.AppendSleep(e)
	if err := js.store.Persist(); err != nil {
		return nil, errors.New("record store error: " + err.Error())
	}
	return &e, nil
}

func (js *JournalService) LogActivity(ctx context.Context, req *LogActivityRequest) (*entity.ActivityEntry, error) {
	if err := validateStruct(*req); err != nil {
		return nil, err
	}
	e := entity.ActivityEntry{
		Date:     js.now().Format(entity.TimestampLayout),
		Activity: req.Activity,
		Duration: req.Duration,
	}
	js.store.AppendActivity(e)
	if err := js.store.Persist(); err != nil {
		return nil, errors.New("record store error: " + err.Error())
	}
	return &e, nil
}

func (js *JournalService) AddJournalEntry(ctx context.Context, req *AddJournalEntryRequest) (*entity.JournalEntry, error) {
	if err := validateStruct(*req); err != nil {
		return nil, err
	}
	e := entity.JournalEntry{
		Date:    req.Date,
		Title:   req.Title,
		Content: req.Content,
	}
	js.store.AppendJournal(e)
	if err := js.store.Persist(); err != nil {
		return nil, errors.New("record store error: " + err.Error())
	}
	return &e, nil
}

func (js *JournalService) AddGoal(ctx context.Context, req *AddGoalRequest) (*entity.Goal, error) {
	if err := validateStruct(*req); err != nil {
		return nil, err
	}
	g := entity.Goal{
		Type:        req.Type,
		Target:      req.Target,
		Deadline:    req.Deadline,
		CreatedDate: js.now().Format(entity.DateLayout),
	}
	js.store.AppendGoal(g)
	if err := js.store.Persist(); err != nil {
		return nil, errors.New("record store error: " + err.Error())
	}
	return &g, nil
}

func (js *JournalService) AddTag(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errorvalues.ErrEmptyTag
	}
	js.store.AppendTag(name)
	if err := js.store.Persist(); err != nil {
		return errors.New("record store error: " + err.Error())
	}
	return nil
}

func (js *JournalService) MeditationActive(ctx context.Context) bool {
	return js.store.MeditationActive()
}

func (js *JournalService) SetMeditationActive(ctx context.Context, active bool) error {
	js.store.SetMeditationActive(active)
	if err := js.store.Persist(); err != nil {
		return errors.New("record store error: " + err.Error())
	}
	return nil
}
