package main

import (
	"fmt"

	"github.com/kolpakovda/go-journal-client/internal/adapter"
	"github.com/kolpakovda/go-journal-client/internal/client"
	"github.com/kolpakovda/go-journal-client/internal/config"
	"github.com/kolpakovda/go-journal-client/internal/logger"
	"github.com/kolpakovda/go-journal-client/internal/service"
	"github.com/kolpakovda/go-journal-client/internal/store"
	"github.com/kolpakovda/go-journal-client/internal/tui"
	"github.com/kolpakovda/go-journal-client/internal/utils"
	"github.com/kolpakovda/go-journal-client/internal/workers"
	"github.com/kolpakovda/go-journal-client/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("journal-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = orNA(buildVersion)
	}

	serverAdapter := adapter.NewHTTPServerAdapter(adapter.HTTPClientConfig{
		BaseURL: cfg.Backend.BaseURL,
		Timeout: cfg.Backend.RequestTimeout,
	})

	localStorage, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services, err := service.NewClientServices(cfg.App, localStorage, serverAdapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create client services")
	}

	badge := workers.NewBadgeJob(services.FriendService, log)
	resolver := utils.NewMediaURLResolver(cfg.Backend.BaseURL, cfg.Backend.MediaPathPrefix)

	ui, err := tui.New(services, badge, resolver, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, badge, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	fmt.Printf("Build version: %s\n", orNA(info.BuildVersion()))
	fmt.Printf("Build date: %s\n", orNA(info.BuildDate()))
	fmt.Printf("Build commit: %s\n", orNA(info.BuildCommit()))
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
