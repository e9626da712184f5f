package jobs

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/jobwatch/jobwatch-backend/db"
	"github.com/jobwatch/jobwatch-backend/models"
)

func testJob(id, title string) models.Job {
	return models.Job{
		ID:        id,
		Title:     title,
		Company:   "Example",
		URL:       "https://example.com/" + id,
		Location:  "Berlin, Germany",
		Country:   "Germany",
		Source:    "greenhouse",
		ScrapedAt: time.Now().UTC(),
	}
}

func TestArchiveUpdate(t *testing.T) {
	archive := Archive{Jobs: db.InitMemStore(), Archived: db.InitMemStore()}

	newCount, archivedCount, err := archive.Update([]models.Job{
		testJob("1", "ML Engineer"),
		testJob("2", "Data Scientist"),
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if newCount != 2 || archivedCount != 0 {
		t.Errorf("First scrape: new=%d archived=%d", newCount, archivedCount)
	}

	// Second scrape: job 2 disappeared from its board, job 3 showed up.
	newCount, archivedCount, err = archive.Update([]models.Job{
		testJob("1", "ML Engineer"),
		testJob("3", "Applied Scientist"),
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if newCount != 1 || archivedCount != 1 {
		t.Errorf("Second scrape: new=%d archived=%d", newCount, archivedCount)
	}

	keys, _ := archive.Jobs.List()
	if len(keys) != 2 {
		t.Errorf("Current store should hold jobs 1 and 3, got %v", keys)
	}
	value, ok, _ := archive.Archived.Get("2")
	if !ok {
		t.Fatalf("Job 2 should be archived")
	}
	var stale struct {
		models.Job
		ArchivedAt time.Time `json:"archived_at"`
	}
	if err := json.Unmarshal([]byte(value), &stale); err != nil {
		t.Fatalf("Archived record should parse: %v", err)
	}
	if stale.Title != "Data Scientist" || stale.ArchivedAt.IsZero() {
		t.Errorf("Archived record incomplete: %+v", stale)
	}
}

func TestArchivePreservesFirstSeen(t *testing.T) {
	archive := Archive{Jobs: db.InitMemStore(), Archived: db.InitMemStore()}

	first := testJob("1", "ML Engineer")
	first.ScrapedAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	if _, _, err := archive.Update([]models.Job{first}); err != nil {
		t.Fatal(err)
	}

	rescrape := testJob("1", "ML Engineer")
	if _, _, err := archive.Update([]models.Job{rescrape}); err != nil {
		t.Fatal(err)
	}

	value, _, _ := archive.Jobs.Get("1")
	var stored models.Job
	if err := json.Unmarshal([]byte(value), &stored); err != nil {
		t.Fatal(err)
	}
	if !stored.ScrapedAt.Equal(first.ScrapedAt) {
		t.Errorf("Known jobs keep their first-seen stamp, got %v", stored.ScrapedAt)
	}
}
