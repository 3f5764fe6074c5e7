package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"botscope/internal/catalog"
	"botscope/internal/config"
	"botscope/internal/db"
	"botscope/internal/listing"
	"botscope/internal/notifications"
	"botscope/internal/reviews"
	"botscope/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// stdout belongs to the terminal UI
	var logOut io.Writer = io.Discard
	if cfg.TUILogPath != "" {
		f, err := os.OpenFile(cfg.TUILogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		logOut = f
	}
	logger := slog.New(slog.NewJSONHandler(logOut, &slog.HandlerOptions{Level: cfg.LogLevel}))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var source catalog.Source = catalog.NewStaticSource(catalog.BuiltIn())
	if cfg.CatalogSource == config.CatalogMongo {
		client, cols, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			log.Fatalf("mongo connection failed: %v", err)
		}
		defer client.Disconnect(context.Background())
		source = catalog.NewRepository(cols.Bots)
	}

	catalogService := catalog.NewService(source)
	entries, version, err := catalogService.Entries(ctx)
	if err != nil {
		log.Fatalf("catalog load failed: %v", err)
	}
	facets, err := catalogService.Facets(ctx)
	if err != nil {
		log.Fatalf("catalog facets failed: %v", err)
	}
	languages := make([]string, 0, len(facets.Languages))
	for _, l := range facets.Languages {
		languages = append(languages, l.Name)
	}
	logger.Info("tui catalog: loaded", slog.Int("entries", len(entries)), slog.String("version", version))

	var submitter reviews.Submitter = reviews.NoopSubmitter{}
	if mailer := notifications.NewBrevoClient(cfg.BrevoAPIKey, cfg.BrevoSenderEmail, cfg.BrevoSenderName, cfg.ReviewsInbox, cfg.BrevoSandbox); mailer != nil {
		submitter = mailer
	}

	vm := listing.New(entries, version)
	model := tui.New(vm, languages, reviews.NewService(submitter, cfg.Timezone), logger)
	defer model.Close()

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "botscope: %v\n", err)
		os.Exit(1)
	}
}
