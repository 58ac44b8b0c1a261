package extract

import (
	"context"
	"fmt"

	"google.golang.org/api/sheets/v4"
)

// Writer replaces the destination worksheet's content with the rendered
// archive. Each run fully regenerates the destination - there is no append.
type Writer struct {
	google      *sheets.Service
	spreadsheet string
	sheet       string
	policy      Policy
	debug       bool
}

// Write clears the destination range and writes the archive rows in a
// single bulk update anchored at A1.
func (w *Writer) Write(ctx context.Context, rows [][]string) error {
	w.clear(ctx)

	var values = sheets.ValueRange{
		Values: [][]interface{}{},
	}

	for _, row := range rows {
		record := make([]interface{}, len(row))
		for i, v := range row {
			record[i] = v
		}

		values.Values = append(values.Values, record)
	}

	var response *sheets.UpdateValuesResponse
	if err := w.policy.do(ctx, func() error {
		var err error
		response, err = w.google.Spreadsheets.Values.Update(w.spreadsheet, fmt.Sprintf("%s!A1", w.sheet), &values).
			ValueInputOption("USER_ENTERED").
			Context(ctx).
			Do()
		return err
	}); err != nil {
		return fmt.Errorf("Error writing archive to destination sheet (%w)", err)
	}

	infof("Wrote %v rows to destination sheet", response.UpdatedRows)

	return nil
}

// clear is best-effort: a failure is logged and never propagated, so stale
// content below the new archive is possible but a run is never aborted for
// it.
func (w *Writer) clear(ctx context.Context) {
	area := fmt.Sprintf("%s!A:L", w.sheet)

	if err := w.policy.do(ctx, func() error {
		_, err := w.google.Spreadsheets.Values.Clear(w.spreadsheet, area, &sheets.ClearValuesRequest{}).Context(ctx).Do()
		return err
	}); err != nil {
		warnf("Unable to clear destination range %v (%v)", area, err)
		return
	}

	infof("Cleared destination sheet")
}
