package extract

import (
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/sheets/v4"

	"github.com/jcharlesworth/sheets-archive/history"
)

// Snapshot reading strategies.
const (
	REVISION = "revision" // point-in-time CSV export of the resolved revision
	LIVE     = "live"     // current content of the range, regardless of the resolved revision
	COPY     = "copy"     // frozen temporary copy of the current document
)

// Reader captures the configured source range as a grid of strings, using
// one of three strategies. REVISION downloads the CSV export of the resolved
// revision and is the only strategy that returns genuinely historical
// content. LIVE reads the current worksheet and COPY reads from a temporary
// copy of the current document which is deleted afterwards - both capture
// head state, not the state at the resolved revision.
type Reader struct {
	google      *sheets.Service
	gdrive      *drive.Service
	client      *http.Client
	spreadsheet string
	area        string
	mode        string
	gid         int64
	policy      Policy
	debug       bool
}

// Read returns the captured grid for a date. An empty range yields an empty
// grid, not an error.
func (r *Reader) Read(ctx context.Context, date time.Time, revision history.Revision) ([][]string, error) {
	switch r.mode {
	case LIVE:
		return r.live(ctx)

	case COPY:
		return r.clone(ctx, date)

	default:
		return r.export(ctx, revision)
	}
}

func (r *Reader) live(ctx context.Context) ([][]string, error) {
	var response *sheets.ValueRange

	if err := r.policy.do(ctx, func() error {
		var err error
		response, err = r.google.Spreadsheets.Values.Get(r.spreadsheet, r.area).Context(ctx).Do()
		return err
	}); err != nil {
		return nil, fmt.Errorf("Unable to retrieve data from sheet (%v)", err)
	}

	return grid(response.Values), nil
}

func (r *Reader) export(ctx context.Context, revision history.Revision) ([][]string, error) {
	var rev *drive.Revision

	if err := r.policy.do(ctx, func() error {
		var err error
		rev, err = drive.NewRevisionsService(r.gdrive).Get(r.spreadsheet, revision.ID).
			Fields("exportLinks").
			Context(ctx).
			Do()
		return err
	}); err != nil {
		return nil, fmt.Errorf("Unable to retrieve export links for revision %v (%v)", revision.ID, err)
	}

	link, ok := rev.ExportLinks["text/csv"]
	if !ok {
		return nil, fmt.Errorf("Revision %v has no CSV export", revision.ID)
	}

	left, right, err := columns(r.area)
	if err != nil {
		return nil, err
	}

	records, err := r.download(ctx, fmt.Sprintf("%s&gid=%v", link, r.gid))
	if err != nil {
		return nil, err
	}

	// ... clip to the columns covered by the configured range
	rows := [][]string{}
	for _, record := range records {
		row := []string{}
		for i := left - 1; i < right && i < len(record); i++ {
			row = append(row, record[i])
		}

		rows = append(rows, row)
	}

	return rows, nil
}

func (r *Reader) clone(ctx context.Context, date time.Time) ([][]string, error) {
	name := fmt.Sprintf("Temp_Historical_%s_%s", date.Format("2006-01-02"), uuid.New())

	var copied *drive.File
	if err := r.policy.do(ctx, func() error {
		var err error
		copied, err = drive.NewFilesService(r.gdrive).Copy(r.spreadsheet, &drive.File{Name: name}).
			Fields("id,name").
			Context(ctx).
			Do()
		return err
	}); err != nil {
		return nil, fmt.Errorf("Error creating temporary copy (%w)", err)
	}

	defer r.delete(ctx, copied.Id)

	infof("Created temporary copy %v", copied.Name)

	var response *sheets.ValueRange
	if err := r.policy.do(ctx, func() error {
		var err error
		response, err = r.google.Spreadsheets.Values.Get(copied.Id, r.area).Context(ctx).Do()
		return err
	}); err != nil {
		return nil, fmt.Errorf("Unable to retrieve data from temporary copy (%v)", err)
	}

	return grid(response.Values), nil
}

// download fetches a revision export with the authorised HTTP client and
// parses it as CSV. Rate-limit and server error responses are reported as
// API errors so that the retry policy classifies them the same way as Sheets
// and Drive calls.
func (r *Reader) download(ctx context.Context, url string) ([][]string, error) {
	if r.debug {
		debugf("Downloading revision export from %v", url)
	}

	rq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	var response *http.Response
	if err := r.policy.do(ctx, func() error {
		rsp, err := r.client.Do(rq)
		if err != nil {
			return err
		}

		if rsp.StatusCode == http.StatusTooManyRequests || rsp.StatusCode >= http.StatusInternalServerError {
			rsp.Body.Close()
			return &googleapi.Error{Code: rsp.StatusCode, Message: rsp.Status}
		}

		response = rsp
		return nil
	}); err != nil {
		return nil, fmt.Errorf("Error downloading revision export (%w)", err)
	}

	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Error downloading revision export (%v)", response.Status)
	}

	reader := csv.NewReader(response.Body)
	reader.FieldsPerRecord = -1

	return reader.ReadAll()
}

// delete is best-effort: an undeleted temporary copy is an operator
// annoyance, not a failed snapshot.
func (r *Reader) delete(ctx context.Context, id string) {
	if err := drive.NewFilesService(r.gdrive).Delete(id).Context(ctx).Do(); err != nil {
		warnf("Error deleting temporary file %v (%v)", id, err)
		return
	}

	if r.debug {
		debugf("Deleted temporary file %v", id)
	}
}

func grid(values [][]interface{}) [][]string {
	rows := [][]string{}

	for _, row := range values {
		record := make([]string, len(row))
		for i, v := range row {
			record[i] = fmt.Sprintf("%v", v)
		}

		rows = append(rows, record)
	}

	return rows
}
