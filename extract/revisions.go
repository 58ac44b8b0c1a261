package extract

import (
	"context"
	"time"

	"google.golang.org/api/drive/v3"

	"github.com/jcharlesworth/sheets-archive/history"
)

// Resolver maps a target instant to the revision of a Drive file that best
// represents the file's state at that instant. Every call re-fetches the
// complete revision history - there is no caching, which is acceptable for a
// low-frequency batch job but would not be for a service.
type Resolver struct {
	gdrive *drive.Service
	file   string
	policy Policy
	debug  bool
}

// Resolve returns the best-matching revision for the target instant, or
// false if the file has no revisions. API errors degrade to 'no revision'
// for the affected date - logged, never propagated - so a failed listing
// cannot abort the run.
func (r *Resolver) Resolve(ctx context.Context, target time.Time) (history.Revision, bool) {
	revisions, err := r.revisions(ctx)
	if err != nil {
		warnf("Error retrieving revisions for %v (%v)", r.file, err)
		return history.Revision{}, false
	}

	revision, ok := history.Select(revisions, target)
	if ok {
		infof("Found revision from %v", revision.Modified.Format("2006-01-02 15:04:05 MST"))
	}

	return revision, ok
}

func (r *Resolver) revisions(ctx context.Context) ([]history.Revision, error) {
	revisions := []history.Revision{}
	page := ""

	for {
		call := drive.NewRevisionsService(r.gdrive).List(r.file).
			Fields("nextPageToken,revisions(id,modifiedTime)").
			PageSize(1000)

		if page != "" {
			call.PageToken(page)
		}

		var response *drive.RevisionList
		if err := r.policy.do(ctx, func() error {
			var err error
			response, err = call.Context(ctx).Do()
			return err
		}); err != nil {
			return nil, err
		}

		for _, revision := range response.Revisions {
			modified, err := time.Parse("2006-01-02T15:04:05.999Z", revision.ModifiedTime)
			if err != nil {
				return nil, err
			}

			revisions = append(revisions, history.Revision{
				ID:       revision.Id,
				Modified: modified,
			})
		}

		if page = response.NextPageToken; page == "" {
			break
		}
	}

	if r.debug {
		debugf("Retrieved %v revisions for %v", len(revisions), r.file)
	}

	return revisions, nil
}
