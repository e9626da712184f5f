package jobs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/yuin/goldmark"

	"github.com/jobwatch/jobwatch-backend/db"
	"github.com/jobwatch/jobwatch-backend/models"
)

// Notifier detects postings we haven't told subscribers about yet. It only
// prepares digest content; delivery is someone else's job.
type Notifier struct {
	Jobs db.Store
	Seen db.Store
}

// DetectNew returns postings whose IDs are not in the seen store, sorted by
// company then title. Malformed stored postings are skipped.
func (n Notifier) DetectNew() ([]models.Job, error) {
	ids, err := n.Jobs.List()
	if err != nil {
		return nil, err
	}
	newJobs := []models.Job{}
	for _, id := range ids {
		_, seen, err := n.Seen.Get(id)
		if err != nil {
			return nil, err
		}
		if seen {
			continue
		}
		value, ok, err := n.Jobs.Get(id)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		var job models.Job
		if err := json.Unmarshal([]byte(value), &job); err != nil {
			continue
		}
		newJobs = append(newJobs, job)
	}
	sort.Slice(newJobs, func(i, j int) bool {
		if newJobs[i].Company != newJobs[j].Company {
			return newJobs[i].Company < newJobs[j].Company
		}
		return newJobs[i].Title < newJobs[j].Title
	})
	return newJobs, nil
}

// MarkSeen records that the given postings have been included in a digest.
func (n Notifier) MarkSeen(jobs []models.Job) error {
	for _, job := range jobs {
		if err := n.Seen.Put(job.ID, time.Now().UTC().Format(time.RFC3339)); err != nil {
			return err
		}
	}
	return nil
}

// Digest renders the new postings as a markdown notification body.
func Digest(jobs []models.Job) string {
	if len(jobs) == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# %d new job postings\n\n", len(jobs))
	for _, job := range jobs {
		location := job.City
		if location == "" {
			location = job.Location
		}
		fmt.Fprintf(&b, "- [%s](%s) at %s (%s)\n", job.Title, job.URL, job.Company, location)
	}
	return b.String()
}

// DigestHTML renders the markdown digest to HTML for mail clients.
func DigestHTML(jobs []models.Job) (string, error) {
	digest := Digest(jobs)
	if digest == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(digest), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
