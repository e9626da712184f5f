package jobs

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/jobwatch/jobwatch-backend/db"
	"github.com/jobwatch/jobwatch-backend/models"
)

// LatestByCompany groups the current postings by company, each group sorted
// newest first by posting date.
func LatestByCompany(store db.Store) (map[string][]models.Job, error) {
	ids, err := store.List()
	if err != nil {
		return nil, err
	}
	byCompany := make(map[string][]models.Job)
	for _, id := range ids {
		value, ok, err := store.Get(id)
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
		byCompany[job.Company] = append(byCompany[job.Company], job)
	}
	for company := range byCompany {
		jobs := byCompany[company]
		sort.Slice(jobs, func(i, j int) bool {
			return jobs[i].PostedTime().After(jobs[j].PostedTime())
		})
	}
	return byCompany, nil
}

// PrintLatest writes the five most recent postings per company.
func PrintLatest(w io.Writer, store db.Store) error {
	byCompany, err := LatestByCompany(store)
	if err != nil {
		return err
	}
	companies := make([]string, 0, len(byCompany))
	total := 0
	for company, jobs := range byCompany {
		companies = append(companies, company)
		total += len(jobs)
	}
	sort.Strings(companies)
	for _, company := range companies {
		jobs := byCompany[company]
		fmt.Fprintf(w, "%s (%d total jobs)\n", company, len(jobs))
		limit := len(jobs)
		if limit > 5 {
			limit = 5
		}
		for i := 0; i < limit; i++ {
			job := jobs[i]
			posted := job.PostedDate
			if posted == "" {
				posted = job.UpdatedTime
			}
			if posted == "" {
				posted = "N/A"
			}
			fmt.Fprintf(w, "  %d. %s\n     Location: %s\n     Posted:   %s\n     URL:      %s\n",
				i+1, job.Title, job.Location, posted, job.URL)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "Total: %d jobs across %d companies\n", total, len(companies))
	return nil
}
