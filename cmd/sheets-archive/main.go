// sheets-archive compiles point-in-time snapshots of a Google spreadsheet
// into a single archival spreadsheet.
//
// For every weeknight (Mon-Fri) between June 1 and August 30 of the
// configured year it resolves the source document's revision nearest to 10pm
// US Eastern, captures the configured range from that revision and writes
// the collected snapshots to the destination spreadsheet.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"

	"github.com/jcharlesworth/sheets-archive/extract"
)

type config struct {
	Year        int           `env:"EXTRACT_YEAR, default=2024"`
	Credentials string        `env:"EXTRACT_CREDENTIALS, default=credentials.json"`
	Key         string        `env:"GOOGLE_CREDENTIALS"`
	Source      string        `env:"SOURCE_SPREADSHEET_ID, required"`
	SourceRange string        `env:"SOURCE_RANGE, default=Edit!A:L"`
	Destination string        `env:"DEST_SPREADSHEET_ID, required"`
	DestSheet   string        `env:"DEST_SHEET, default=Sheet1"`
	Mode        string        `env:"SNAPSHOT_MODE, default=revision"`
	Interval    time.Duration `env:"EXTRACT_INTERVAL, default=500ms"`
	Retries     uint64        `env:"EXTRACT_RETRIES, default=0"`
	Debug       bool          `env:"EXTRACT_DEBUG, default=false"`
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	var cfg config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		log.Fatalf("ERROR: %v", err)
	}

	cmd := extract.Extract{
		Year:        cfg.Year,
		Credentials: cfg.Credentials,
		Key:         []byte(cfg.Key),
		Source:      cfg.Source,
		SourceRange: cfg.SourceRange,
		Destination: cfg.Destination,
		DestSheet:   cfg.DestSheet,
		Mode:        cfg.Mode,
		Interval:    cfg.Interval,
		Retries:     cfg.Retries,
		Debug:       cfg.Debug,
	}

	if err := cmd.Execute(ctx); err != nil {
		log.Fatalf("ERROR: %v", err)
	}
}
