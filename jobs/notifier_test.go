package jobs

import (
	"strings"
	"testing"

	"github.com/jobwatch/jobwatch-backend/db"
	"github.com/jobwatch/jobwatch-backend/models"
)

func TestNotifierDetectsNewOnce(t *testing.T) {
	archive := Archive{Jobs: db.InitMemStore(), Archived: db.InitMemStore()}
	notifier := Notifier{Jobs: archive.Jobs, Seen: db.InitMemStore()}

	if _, _, err := archive.Update([]models.Job{
		testJob("1", "ML Engineer"),
		testJob("2", "Data Scientist"),
	}); err != nil {
		t.Fatal(err)
	}

	newJobs, err := notifier.DetectNew()
	if err != nil {
		t.Fatalf("DetectNew failed: %v", err)
	}
	if len(newJobs) != 2 {
		t.Fatalf("Expected 2 new jobs, got %d", len(newJobs))
	}
	if err := notifier.MarkSeen(newJobs); err != nil {
		t.Fatal(err)
	}

	// Next scrape adds one posting; only it should be reported.
	if _, _, err := archive.Update([]models.Job{
		testJob("1", "ML Engineer"),
		testJob("2", "Data Scientist"),
		testJob("3", "Applied Scientist"),
	}); err != nil {
		t.Fatal(err)
	}
	newJobs, err = notifier.DetectNew()
	if err != nil {
		t.Fatal(err)
	}
	if len(newJobs) != 1 || newJobs[0].ID != "3" {
		t.Errorf("Expected only job 3, got %v", newJobs)
	}
}

func TestDigest(t *testing.T) {
	if Digest(nil) != "" {
		t.Errorf("Empty job list should render an empty digest")
	}

	jobs := []models.Job{testJob("1", "ML Engineer"), testJob("2", "Data Scientist")}
	digest := Digest(jobs)
	if !strings.Contains(digest, "2 new job postings") {
		t.Errorf("Digest should count postings, got %q", digest)
	}
	if !strings.Contains(digest, "[ML Engineer](https://example.com/1)") {
		t.Errorf("Digest should link each posting, got %q", digest)
	}

	html, err := DigestHTML(jobs)
	if err != nil {
		t.Fatalf("DigestHTML failed: %v", err)
	}
	if !strings.Contains(html, `<a href="https://example.com/1">ML Engineer</a>`) {
		t.Errorf("HTML digest should contain anchors, got %q", html)
	}
}
