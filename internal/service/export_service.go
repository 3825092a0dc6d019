package service

import (
	"context"
	"encoding/csv"
	"errors"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/xuri/excelize/v2"

	errorvalues "github.com/limbo/serenity/internal/error_values"
	"github.com/limbo/serenity/internal/repository"
)

type ExportService struct {
	store repository.RecordStoreI
	dir   string
}

func NewExportService(store repository.RecordStoreI, dir string) *ExportService {
	if store == nil {
		log.Fatal("provided nil record store")
	}
	if dir == "" {
		dir = "."
	}
	return &ExportService{
		store: store,
		dir:   dir,
	}
}

// exportCollection is one export target: artifact name, header row, the data
// as string rows (csv/xlsx) and as records (json).
type exportCollection struct {
	name    string
	headers []string
	rows    [][]string
	records any
}

func (es *ExportService) collections() []exportCollection {
	moods := es.store.Moods()
	moodRows := make([][]string, 0, len(moods))
	for _, m := range moods {
		moodRows = append(moodRows, []string{m.Date, m.Mood, strconv.Itoa(m.MoodValue), m.Notes})
	}
	activities := es.store.Activities()
	activityRows := make([][]string, 0, len(activities))
	for _, a := range activities {
		activityRows = append(activityRows, []string{a.Date, a.Activity, strconv.Itoa(a.Duration)})
	}
	sleep := es.store.Sleep()
	sleepRows := make([][]string, 0, len(sleep))
	for _, e := range sleep {
		sleepRows = append(sleepRows, []string{e.Date, strconv.FormatFloat(e.Hours, 'f', -1, 64), e.Quality})
	}
	return []exportCollection{
		{name: "mood_data", headers: []string{"date", "mood", "mood_value", "notes"}, rows: moodRows, records: moods},
		{name: "activities", headers: []string{"date", "activity", "duration"}, rows: activityRows, records: activities},
		{name: "sleep_data", headers: []string{"date", "hours", "quality"}, rows: sleepRows, records: sleep},
	}
}

// Export writes one artifact per primary collection in the requested format
// and returns the written paths. The format is validated once, before
// anything touches disk; an unrecognized format writes zero files. The
// per-collection writes are not transactional as a group: if a later write
// fails, artifacts already written stay on disk. Empty collections still
// produce well-formed header-only output.
func (es *ExportService) Export(ctx context.Context, format string) ([]string, error) {
	var ext string
	switch strings.ToUpper(strings.TrimSpace(format)) {
	case "CSV":
		ext = ".csv"
	case "JSON":
		ext = ".json"
	case "EXCEL":
		ext = ".xlsx"
	default:
		return nil, errorvalues.ErrInvalidFormat
	}
	if err := os.MkdirAll(es.dir, 0o755); err != nil {
		return nil, errors.New("creating export directory error: " + err.Error())
	}
	written := make([]string, 0, 3)
	for _, col := range es.collections() {
		path := filepath.Join(es.dir, col.name+ext)
		var err error
		switch ext {
		case ".csv":
			err = writeCSV(path, col)
		case ".json":
			err = writeJSON(path, col)
		case ".xlsx":
			err = writeXLSX(path, col)
		}
		if err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}

func writeCSV(path string, col exportCollection) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.New("creating csv export error: " + err.Error())
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err := w.Write(col.headers); err != nil {
		return errors.New("writing csv header error: " + err.Error())
	}
	for _, row := range col.rows {
		if err := w.Write(row); err != nil {
			return errors.New("writing csv row error: " + err.Error())
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return errors.New("flushing csv export error: " + err.Error())
	}
	return nil
}

// writeJSON emits a record-oriented array of objects.
func writeJSON(path string, col exportCollection) error {
	raw, err := sonic.Marshal(col.records)
	if err != nil {
		return errors.New("encoding json export error: " + err.Error())
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return errors.New("writing json export error: " + err.Error())
	}
	return nil
}

func writeXLSX(path string, col exportCollection) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	header := make([]any, len(col.headers))
	for i, h := range col.headers {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return errors.New("writing excel header error: " + err.Error())
	}
	for i, row := range col.rows {
		cells := make([]any, len(row))
		for j, v := range row {
			cells[j] = v
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return errors.New("addressing excel row error: " + err.Error())
		}
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return errors.New("writing excel row error: " + err.Error())
		}
	}
	if err := f.SaveAs(path); err != nil {
		return errors.New("writing excel export error: " + err.Error())
	}
	return nil
}
