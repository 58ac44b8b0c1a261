package extract

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/jcharlesworth/sheets-archive/history"
)

// Extract is a historical extraction run: for every weeknight target instant
// in the configured year it resolves the source spreadsheet's revision
// nearest the instant, captures the configured range as a grid of strings,
// and compiles the collected snapshots into the destination spreadsheet.
type Extract struct {
	Year        int
	Credentials string
	Key         []byte
	Source      string
	SourceRange string
	Destination string
	DestSheet   string
	Mode        string
	Interval    time.Duration
	Retries     uint64
	Debug       bool
}

func (cmd *Extract) Execute(ctx context.Context) error {
	// ... check parameters
	if err := cmd.validate(); err != nil {
		return err
	}

	// ... authorise
	client, err := authorize(ctx, cmd.Credentials, cmd.Key, SHEETS, DRIVE)
	if err != nil {
		return fmt.Errorf("Authentication/authorization error (%v)", err)
	}

	google, err := sheets.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return fmt.Errorf("Unable to create new Sheets client (%v)", err)
	}

	gdrive, err := drive.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return fmt.Errorf("Unable to create new Drive client (%v)", err)
	}

	if cmd.Debug {
		debugf("Source - ID:%s  range:%s", cmd.Source, cmd.SourceRange)
		debugf("Destination - ID:%s  sheet:%s", cmd.Destination, cmd.DestSheet)
	}

	// ... build the pipeline
	policy := Policy{
		Retries: cmd.Retries,
	}

	if cmd.Interval > 0 {
		policy.Limiter = rate.NewLimiter(rate.Every(cmd.Interval), 1)
	}

	resolver := Resolver{
		gdrive: gdrive,
		file:   cmd.Source,
		policy: policy,
		debug:  cmd.Debug,
	}

	reader := Reader{
		google:      google,
		gdrive:      gdrive,
		client:      client,
		spreadsheet: cmd.Source,
		area:        cmd.SourceRange,
		mode:        cmd.Mode,
		policy:      policy,
		debug:       cmd.Debug,
	}

	switch cmd.Mode {
	case REVISION:
		gid, err := worksheetId(ctx, google, cmd.Source, cmd.SourceRange)
		if err != nil {
			return err
		}

		reader.gid = gid

	case LIVE:
		warnf("Snapshot mode 'live' reads the current worksheet content, not the state at the resolved revision")

	case COPY:
		warnf("Snapshot mode 'copy' freezes the current worksheet content, not the state at the resolved revision")
	}

	writer := Writer{
		google:      google,
		spreadsheet: cmd.Destination,
		sheet:       cmd.DestSheet,
		policy:      policy,
		debug:       cmd.Debug,
	}

	// ... collect snapshots
	dates := history.Weeknights(cmd.Year)

	infof("Processing %v weeknight dates from %v", len(dates), cmd.Year)

	snapshots, err := cmd.collect(ctx, dates, &resolver, &reader)
	if err != nil {
		return err
	}

	// ... write the archive
	infof("Writing historical data to destination sheet")

	if err := writer.Write(ctx, snapshots.Render(time.Now())); err != nil {
		return err
	}

	infof("Historical extraction complete")

	return nil
}

// collect runs the sequential resolve/read loop. Every generated date gets
// exactly one accumulator entry: a failed resolve or read degrades that date
// to an explicit empty grid, never a missing one. Only a cancelled context
// aborts the loop - and with it the run, since a partial archive is never
// written.
func (cmd *Extract) collect(ctx context.Context, dates []time.Time, resolver *Resolver, reader *Reader) (history.Snapshots, error) {
	snapshots := history.Snapshots{}

	for i, date := range dates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		infof("[%v/%v] Processing %v 10pm ET", i+1, len(dates), date.Format("2006-01-02"))

		revision, ok := resolver.Resolve(ctx, date)
		if !ok {
			warnf("No revision available for %v", date.Format("2006-01-02"))
			snapshots.Add(date, nil)
			continue
		}

		rows, err := reader.Read(ctx, date, revision)
		if err != nil {
			warnf("Error reading snapshot for %v (%v)", date.Format("2006-01-02"), err)
			snapshots.Add(date, nil)
			continue
		}

		if len(rows) > 0 {
			infof("Retrieved %v rows of data", len(rows))
		} else {
			infof("No data found")
		}

		snapshots.Add(date, rows)
	}

	return snapshots, nil
}

func (cmd *Extract) validate() error {
	if strings.TrimSpace(cmd.Source) == "" {
		return fmt.Errorf("SOURCE_SPREADSHEET_ID is required")
	}

	if strings.TrimSpace(cmd.Destination) == "" {
		return fmt.Errorf("DEST_SPREADSHEET_ID is required")
	}

	if strings.TrimSpace(cmd.DestSheet) == "" {
		return fmt.Errorf("DEST_SHEET is required")
	}

	if match := regexp.MustCompile(`(.+?)!([a-zA-Z]+)[0-9]*:([a-zA-Z]+)[0-9]*$`).FindStringSubmatch(strings.TrimSpace(cmd.SourceRange)); len(match) < 4 {
		return fmt.Errorf("Invalid range '%s' - expected something like 'Edit!A:L'", cmd.SourceRange)
	}

	switch cmd.Mode {
	case REVISION, LIVE, COPY:
	default:
		return fmt.Errorf("Invalid snapshot mode '%s' - expected one of 'revision', 'live' or 'copy'", cmd.Mode)
	}

	return nil
}
