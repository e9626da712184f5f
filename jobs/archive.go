package jobs

import (
	"encoding/json"
	"time"

	"github.com/jobwatch/jobwatch-backend/db"
	"github.com/jobwatch/jobwatch-backend/models"
)

// Archive keeps the current postings store in sync with scrape results and
// moves postings that dropped off their boards into the archive store.
type Archive struct {
	Jobs     db.Store
	Archived db.Store
}

type archivedJob struct {
	models.Job
	ArchivedAt time.Time `json:"archived_at"`
}

// Update upserts the latest scrape into the jobs store, preserving the
// first-seen scraped_at for postings we already knew, then archives postings
// absent from this scrape. Returns how many postings were new and how many
// were archived.
func (a Archive) Update(scraped []models.Job) (int, int, error) {
	existingKeys, err := a.Jobs.List()
	if err != nil {
		return 0, 0, err
	}
	current := make(map[string]bool, len(scraped))
	newCount := 0
	for _, job := range scraped {
		if job.ID == "" {
			continue
		}
		current[job.ID] = true
		value, ok, err := a.Jobs.Get(job.ID)
		if err != nil {
			return newCount, 0, err
		}
		if ok {
			var known models.Job
			if err := json.Unmarshal([]byte(value), &known); err == nil && !known.ScrapedAt.IsZero() {
				job.ScrapedAt = known.ScrapedAt
			}
		} else {
			newCount++
		}
		encoded, err := json.Marshal(job)
		if err != nil {
			return newCount, 0, err
		}
		if err := a.Jobs.Put(job.ID, string(encoded)); err != nil {
			return newCount, 0, err
		}
	}
	archivedCount := 0
	for _, id := range existingKeys {
		if current[id] {
			continue
		}
		if err := a.archive(id); err != nil {
			return newCount, archivedCount, err
		}
		archivedCount++
	}
	return newCount, archivedCount, nil
}

// archive moves one stale posting out of the jobs store. Archiving is
// at-most-once per ID: a posting already in the archive keeps its original
// archived_at stamp.
func (a Archive) archive(id string) error {
	value, ok, err := a.Jobs.Get(id)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	_, alreadyArchived, err := a.Archived.Get(id)
	if err != nil {
		return err
	}
	if !alreadyArchived {
		var job models.Job
		if err := json.Unmarshal([]byte(value), &job); err == nil {
			encoded, err := json.Marshal(archivedJob{Job: job, ArchivedAt: time.Now().UTC()})
			if err != nil {
				return err
			}
			if err := a.Archived.Put(id, string(encoded)); err != nil {
				return err
			}
		}
	}
	return a.Jobs.Delete(id)
}
