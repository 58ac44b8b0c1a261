package extract

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"google.golang.org/api/sheets/v4"
)

// OAuth2 scopes required for an extraction run. SHEETS covers reading the
// source range and writing the archive, DRIVE covers revision listing,
// revision exports and the temporary file copy/delete of the 'copy' snapshot
// mode.
const (
	SHEETS = "https://www.googleapis.com/auth/spreadsheets"
	DRIVE  = "https://www.googleapis.com/auth/drive"
)

func worksheet(area string) (string, error) {
	match := regexp.MustCompile(`(.+?)!.*`).FindStringSubmatch(strings.TrimSpace(area))
	if len(match) < 2 {
		return "", fmt.Errorf("Invalid range '%s' - expected something like 'Edit!A:L'", area)
	}

	return match[1], nil
}

// worksheetId resolves the numeric 'gid' of the worksheet named by a range,
// for use in revision export URLs.
func worksheetId(ctx context.Context, google *sheets.Service, id string, area string) (int64, error) {
	name, err := worksheet(area)
	if err != nil {
		return 0, err
	}

	spreadsheet, err := google.Spreadsheets.Get(id).Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("Failed to fetch spreadsheet (%v)", err)
	}

	for _, sheet := range spreadsheet.Sheets {
		if strings.ToLower(strings.TrimSpace(sheet.Properties.Title)) == strings.ToLower(strings.TrimSpace(name)) {
			return sheet.Properties.SheetId, nil
		}
	}

	return 0, fmt.Errorf("Unable to identify worksheet for '%s'", area)
}

// columns returns the 1-based left and right column numbers covered by a
// range expression, ignoring any row numbers e.g. 'Edit!A:L' covers columns
// 1 to 12.
func columns(area string) (int, int, error) {
	match := regexp.MustCompile(`.+?!([a-zA-Z]+)[0-9]*:([a-zA-Z]+)[0-9]*$`).FindStringSubmatch(strings.TrimSpace(area))
	if len(match) < 3 {
		return 0, 0, fmt.Errorf("Invalid range '%s' - expected something like 'Edit!A:L'", area)
	}

	return column(match[1]), column(match[2]), nil
}

// column converts a spreadsheet column reference to a 1-based column number
// i.e. A is 1, Z is 26, AA is 27.
func column(letters string) int {
	n := 0
	for _, r := range strings.ToUpper(letters) {
		n = n*26 + int(r-'A') + 1
	}

	return n
}
