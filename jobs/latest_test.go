package jobs

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jobwatch/jobwatch-backend/db"
	"github.com/jobwatch/jobwatch-backend/models"
)

func TestLatestByCompany(t *testing.T) {
	archive := Archive{Jobs: db.InitMemStore(), Archived: db.InitMemStore()}

	older := testJob("1", "ML Engineer")
	older.PostedDate = "2026-01-01T00:00:00Z"
	newer := testJob("2", "Data Scientist")
	newer.PostedDate = "2026-02-01T00:00:00Z"
	other := testJob("3", "Applied Scientist")
	other.Company = "Other"
	other.PostedDate = "January 15, 2026"

	if _, _, err := archive.Update([]models.Job{older, newer, other}); err != nil {
		t.Fatal(err)
	}

	byCompany, err := LatestByCompany(archive.Jobs)
	if err != nil {
		t.Fatalf("LatestByCompany failed: %v", err)
	}
	if len(byCompany) != 2 {
		t.Fatalf("Expected 2 companies, got %v", byCompany)
	}
	example := byCompany["Example"]
	if len(example) != 2 || example[0].ID != "2" {
		t.Errorf("Expected newest-first ordering, got %v", example)
	}

	var out bytes.Buffer
	if err := PrintLatest(&out, archive.Jobs); err != nil {
		t.Fatal(err)
	}
	text := out.String()
	if !strings.Contains(text, "Example (2 total jobs)") ||
		!strings.Contains(text, "Total: 3 jobs across 2 companies") {
		t.Errorf("Unexpected listing output:\n%s", text)
	}
}
