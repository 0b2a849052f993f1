// Package main implements the TomeRater command line application: an
// in-memory catalog of books, users and ratings with derived analytics.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/fdarre/tome-rater/internal/config"
	"github.com/fdarre/tome-rater/internal/domain"
	"github.com/fdarre/tome-rater/internal/events"
	"github.com/fdarre/tome-rater/internal/platform/logger"
	"github.com/fdarre/tome-rater/internal/report"
	"github.com/fdarre/tome-rater/internal/service"
	"github.com/fdarre/tome-rater/internal/store/memstore"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("tomerater: %v", err)
	}
}

// run loads configuration, wires the application components, seeds the
// demo catalog when enabled, and renders the reports to stdout.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logg := logger.Setup(cfg.App)
	logg.Debug("configuration loaded",
		"log_level", cfg.App.LogLevel,
		"report_format", cfg.Report.Format,
		"report_top_n", cfg.Report.TopN)

	format, err := report.ParseFormat(cfg.Report.Format)
	if err != nil {
		return err
	}

	emitter := events.NewInMemoryEventEmitter(logg)
	emitter.RegisterHandler(events.NewLoggingHandler(logg))

	catalog := service.NewCatalogService(
		memstore.NewUserStore(),
		memstore.NewBookStore(),
		emitter,
		logg,
	)

	ctx := context.Background()
	if cfg.App.DemoSeed {
		if err := seed(ctx, catalog); err != nil {
			return fmt.Errorf("failed to seed demo catalog: %w", err)
		}
	}

	return render(ctx, catalog, report.NewRenderer(os.Stdout, format), cfg.Report.TopN)
}

// seed populates the catalog with a small sample library so the
// reports have something to show.
func seed(ctx context.Context, catalog *service.CatalogService) error {
	society, err := catalog.CreateBook(ctx, "Society of Mind", 1101, 24.95)
	if err != nil {
		return err
	}
	dune, err := catalog.CreateFiction(ctx, "Dune", "Frank Herbert", 1001, 20)
	if err != nil {
		return err
	}
	learning, err := catalog.CreateNonFiction(ctx, "Learning Python", "Python", "beginner", 1201, 39.50)
	if err != nil {
		return err
	}

	if _, err := catalog.AddUser(ctx, "Alice", "alice@example.com", nil); err != nil {
		return err
	}
	if _, err := catalog.AddUser(ctx, "Bob", "bob@example.com", nil); err != nil {
		return err
	}
	if _, err := catalog.AddUser(ctx, "Carol", "carol@example.com", nil); err != nil {
		return err
	}

	if err := catalog.AddBookToUser(ctx, dune, "alice@example.com", domain.NewRating(4)); err != nil {
		return err
	}
	if err := catalog.AddBookToUser(ctx, dune, "bob@example.com", domain.NewRating(3)); err != nil {
		return err
	}
	if err := catalog.AddBookToUser(ctx, society, "alice@example.com", domain.NewRating(2)); err != nil {
		return err
	}
	if err := catalog.AddBookToUser(ctx, learning, "carol@example.com", nil); err != nil {
		return err
	}
	if err := catalog.AddBookToUser(ctx, learning, "alice@example.com", domain.NewRating(4)); err != nil {
		return err
	}

	return nil
}

// render writes the catalog and user listings plus the three top-N
// rankings to the renderer.
func render(ctx context.Context, catalog *service.CatalogService, r *report.Renderer, topN int) error {
	entries, err := catalog.Books(ctx)
	if err != nil {
		return err
	}
	if err := r.Catalog(entries); err != nil {
		return err
	}

	users, err := catalog.Users(ctx)
	if err != nil {
		return err
	}
	if err := r.Users(users); err != nil {
		return err
	}

	mostRead, err := catalog.NMostReadBooks(ctx, topN)
	if err != nil {
		return err
	}
	if err := r.MostRead(mostRead); err != nil {
		return err
	}

	expensive, err := catalog.NMostExpensiveBooks(ctx, topN)
	if err != nil {
		return err
	}
	if err := r.MostExpensive(expensive); err != nil {
		return err
	}

	readers, err := catalog.NMostProlificReaders(ctx, topN)
	if err != nil {
		return err
	}
	return r.ProlificReaders(readers)
}
