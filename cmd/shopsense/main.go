// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/poiesic/shopsense"
	"github.com/poiesic/shopsense/catalog/badger"
	"github.com/poiesic/shopsense/core"
	"github.com/poiesic/shopsense/reindex"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:   "shopsense",
		Usage:  "Product search and recommendation engine for storefront catalogs",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "search",
				Usage:  "Search the catalog with a free-text query",
				Action: searchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "session",
						Usage: "Session key identifying the shopper",
						Value: "cli",
					},
					&cli.IntFlag{
						Name:  "max-hits",
						Usage: "Maximum number of results to return",
						Value: 10,
					},
				},
			},
			{
				Name:   "recommend",
				Usage:  "Recommend products for a shopper session",
				Action: recommendCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "session",
						Usage: "Session key identifying the shopper",
						Value: "cli",
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of recommendations",
						Value: 10,
					},
				},
			},
			{
				Name:   "track",
				Usage:  "Record a product view against a shopper session",
				Action: trackCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "session",
						Usage: "Session key identifying the shopper",
						Value: "cli",
					},
				},
			},
			{
				Name:   "seed",
				Usage:  "Load products from a JSON file into the catalog",
				Action: seedCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "src",
						Usage:    "JSON file containing an array of products",
						Required: true,
					},
				},
			},
			{
				Name:   "reindex",
				Usage:  "Rebuild the search index over the stored catalog",
				Action: reindexCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of products to process in each batch",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N products",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum retry attempts for failed operations",
						Value: 3,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for exponential backoff",
						Value: 1 * time.Second,
					},
				},
			},
			{
				Name:   "stats",
				Usage:  "Show catalog and index statistics",
				Action: statsCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func searchCommand(c *cli.Context) error {
	ctx := context.Background()

	queryText := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if queryText == "" {
		return fmt.Errorf("query text is required, e.g. shopsense search --db ./catalog_db blue jacket")
	}

	engine, err := shopsense.NewEngine(c.String("db"), shopsense.WithMaxHits(c.Int("max-hits")))
	if err != nil {
		return fmt.Errorf("failed to open engine: %w", err)
	}
	defer engine.Close()

	result, err := engine.Search(ctx, c.String("session"), queryText)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	fmt.Printf("%s\n\n", result.Response)
	fmt.Printf("Intent: %s (%.2f)\n", result.Intent.Label, result.Intent.Confidence)
	if !result.Entities.IsEmpty() {
		printEntities(result)
	}
	for i, hit := range result.Products {
		fmt.Printf("%2d. %-40s $%-8.2f score=%.3f\n", i+1, hit.Product.Name, hit.Product.Price, hit.Score)
	}

	return nil
}

func printEntities(result *shopsense.SearchResult) {
	entities := result.Entities
	if len(entities.Categories) > 0 {
		fmt.Printf("Categories: %s\n", strings.Join(entities.Categories, ", "))
	}
	if len(entities.Colors) > 0 {
		fmt.Printf("Colors: %s\n", strings.Join(entities.Colors, ", "))
	}
	if len(entities.Materials) > 0 {
		fmt.Printf("Materials: %s\n", strings.Join(entities.Materials, ", "))
	}
	if entities.PriceRange != nil {
		switch {
		case entities.PriceRange.Min != nil && entities.PriceRange.Max != nil:
			fmt.Printf("Price: $%.2f to $%.2f\n", *entities.PriceRange.Min, *entities.PriceRange.Max)
		case entities.PriceRange.Max != nil:
			fmt.Printf("Price: up to $%.2f\n", *entities.PriceRange.Max)
		case entities.PriceRange.Min != nil:
			fmt.Printf("Price: from $%.2f\n", *entities.PriceRange.Min)
		}
	}
	fmt.Println()
}

func recommendCommand(c *cli.Context) error {
	ctx := context.Background()

	engine, err := shopsense.NewEngine(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open engine: %w", err)
	}
	defer engine.Close()

	recs, err := engine.Recommend(ctx, c.String("session"), c.Int("limit"))
	if err != nil {
		return fmt.Errorf("recommendation failed: %w", err)
	}

	if len(recs) == 0 {
		fmt.Println("No recommendations available; the catalog may be empty.")
		return nil
	}

	for i, hit := range recs {
		fmt.Printf("%2d. %-40s $%-8.2f score=%.3f\n", i+1, hit.Product.Name, hit.Product.Price, hit.Score)
	}

	return nil
}

func trackCommand(c *cli.Context) error {
	ctx := context.Background()

	if c.NArg() != 1 {
		return fmt.Errorf("exactly one product ID argument is required")
	}
	rawID, err := strconv.ParseUint(c.Args().First(), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid product ID %q: %w", c.Args().First(), err)
	}

	engine, err := shopsense.NewEngine(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open engine: %w", err)
	}
	defer engine.Close()

	if err := engine.TrackView(ctx, c.String("session"), core.ID(rawID)); err != nil {
		return fmt.Errorf("failed to track view: %w", err)
	}

	fmt.Printf("Recorded view of product %d for session %q\n", rawID, c.String("session"))
	return nil
}

func seedCommand(c *cli.Context) error {
	ctx := context.Background()

	data, err := os.ReadFile(c.String("src"))
	if err != nil {
		return fmt.Errorf("failed to read seed file: %w", err)
	}
	var products []*core.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return fmt.Errorf("failed to parse seed file: %w", err)
	}

	engine, err := shopsense.NewEngine(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open engine: %w", err)
	}
	defer engine.Close()

	added, err := engine.AddProducts(ctx, products...)
	if err != nil {
		return fmt.Errorf("failed to add products: %w", err)
	}

	fmt.Printf("Added %d of %d products\n", len(added), len(products))
	return nil
}

func reindexCommand(c *cli.Context) error {
	ctx := context.Background()

	dbPath := c.String("db")
	backend, err := badger.OpenBackend(dbPath, false)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer backend.Close()

	productRepo := badger.NewProductRepository(backend)
	defer productRepo.Close()
	stateRepo := badger.NewStateRepository(backend)

	config := &reindex.Config{
		BatchSize:      c.Int("batch-size"),
		ReportInterval: c.Int("report-interval"),
		MaxRetries:     c.Int("max-retries"),
		RetryDelay:     c.Duration("retry-delay"),
	}

	if config.BatchSize <= 0 {
		return fmt.Errorf("batch-size must be greater than 0")
	}
	if config.ReportInterval <= 0 {
		return fmt.Errorf("report-interval must be greater than 0")
	}
	if config.MaxRetries <= 0 {
		return fmt.Errorf("max-retries must be greater than 0")
	}

	rebuilder := reindex.NewRebuilder(productRepo, stateRepo, config, os.Stderr)

	fmt.Fprintf(os.Stderr, "Database: %s\n\n", dbPath)

	if _, err := rebuilder.Run(ctx); err != nil {
		return fmt.Errorf("reindex failed: %w", err)
	}

	return nil
}

func statsCommand(c *cli.Context) error {
	ctx := context.Background()

	backend, err := badger.OpenBackend(c.String("db"), false)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer backend.Close()

	productRepo := badger.NewProductRepository(backend)
	defer productRepo.Close()
	stateRepo := badger.NewStateRepository(backend)

	count, err := productRepo.CountProducts(ctx)
	if err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}
	fmt.Printf("Products: %d\n", count)

	state, err := stateRepo.LoadIndexState(ctx)
	if err != nil {
		return fmt.Errorf("failed to load index state: %w", err)
	}
	if state == nil {
		fmt.Println("Index: never built")
		return nil
	}

	fmt.Printf("Index: %d products, %d terms, built %s\n",
		state.ProductCount, state.TermCount, state.BuiltAt.Format(time.RFC3339))

	return nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
