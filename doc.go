// Copyright 2025 jcharlesworth. All rights reserved.
// Use of this source code is governed by an MIT-style license
// that can be found in the LICENSE file.

/*
Package sheets-archive extracts point-in-time snapshots of a Google spreadsheet and compiles
them into a single archival spreadsheet.

sheets-archive is intended to be run as a one-off batch job. For every weeknight (Mon-Fri)
between June 1 and August 30 of the configured year it resolves the source document's Drive
revision nearest to 10pm US Eastern, captures the configured worksheet range from that
revision and appends a dated section to the archive. Dates for which no revision or data
could be retrieved are included as explicitly empty sections.

The job is configured entirely from the environment (or a .env file):

  - EXTRACT_YEAR, the year to extract (default 2024)
  - EXTRACT_CREDENTIALS, the service account key file (default credentials.json)
  - GOOGLE_CREDENTIALS, the service account key JSON, used if the key file does not exist
  - SOURCE_SPREADSHEET_ID, the document to extract from
  - SOURCE_RANGE, the worksheet range to capture (default Edit!A:L)
  - DEST_SPREADSHEET_ID, the document to write the archive to
  - DEST_SHEET, the worksheet to write the archive to (default Sheet1)
  - SNAPSHOT_MODE, one of revision, live or copy (default revision)
  - EXTRACT_INTERVAL, the minimum interval between API calls (default 500ms)
  - EXTRACT_RETRIES, additional attempts for rate limited and failed API calls (default 0)
  - EXTRACT_DEBUG, enables debug logging (default false)
*/
package archive
