package jobs

import (
	"log"

	"github.com/jobwatch/jobwatch-backend/models"
)

// ScrapeSummary reports the outcome of one scrape run.
type ScrapeSummary struct {
	Scraped  int
	New      int
	Archived int
	NewJobs  []models.Job
}

// RunScrape runs every scraper, syncs the job and archive stores, and marks
// the resulting new postings as seen. A failing board is logged and skipped;
// the run continues with the other boards.
func RunScrape(scrapers []Scraper, archive Archive, notifier Notifier, query string) (ScrapeSummary, error) {
	all := []models.Job{}
	for _, scraper := range scrapers {
		jobs, err := scraper.FetchJobs(query)
		if err != nil {
			log.Printf("[%s] scrape failed: %v", scraper.CompanyName(), err)
			continue
		}
		log.Printf("[%s] found %d jobs", scraper.CompanyName(), len(jobs))
		all = append(all, jobs...)
	}
	newCount, archivedCount, err := archive.Update(all)
	if err != nil {
		return ScrapeSummary{}, err
	}
	newJobs, err := notifier.DetectNew()
	if err != nil {
		return ScrapeSummary{}, err
	}
	if err := notifier.MarkSeen(newJobs); err != nil {
		return ScrapeSummary{}, err
	}
	return ScrapeSummary{
		Scraped:  len(all),
		New:      newCount,
		Archived: archivedCount,
		NewJobs:  newJobs,
	}, nil
}
