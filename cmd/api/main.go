// @title Serenity wellness journal API
// @description Aggregation, insight and export engine for a personal wellness journal
// @BasePath /api/v1
// @schemes http
package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/limbo/serenity/internal/api"
	"github.com/limbo/serenity/internal/repository"
	"github.com/limbo/serenity/internal/service"
	"github.com/limbo/serenity/pkg/cleanup"
	"github.com/limbo/serenity/pkg/config"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	store := repository.NewStore(cfg.GetStringOr("JOURNAL_DATA_PATH", "mental_health_data.json"))
	if err := store.Load(); err != nil {
		log.Fatal("loading journal snapshot error: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "flushing journal snapshot",
		F:    store.Persist,
	})
	journalService := service.NewJournalService(store)
	analyticsService := service.NewAnalyticsService(store)
	exportService := service.NewExportService(store, cfg.GetStringOr("EXPORT_DIR", "exports"))
	serv := api.New(&api.ServicesList{
		JournalService:   journalService,
		AnalyticsService: analyticsService,
		ExportService:    exportService,
	})
	go func() {
		err := serv.Run(cfg.GetStringOr("API_ADDRESS", ":8080"))
		if err != nil {
			log.Println("Server error: " + err.Error())
		}
	}()
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	cleanup.CleanUp()
}
