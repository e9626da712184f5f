package main

import (
	"log"
	"os"
	"time"

	"github.com/jobwatch/jobwatch-backend/db"
	"github.com/jobwatch/jobwatch-backend/jobs"
)

func runTask(name string, sqldb *db.SQLDatabase) {
	switch name {
	case "scrape":
		scrapeOnce(sqldb)
	case "latest":
		if err := jobs.PrintLatest(os.Stdout, sqldb.Jobs()); err != nil {
			log.Fatal(err)
		}
	default:
		log.Fatalf("Unknown task %q", name)
	}
}

func scrapeOnce(sqldb *db.SQLDatabase) {
	archive := jobs.Archive{Jobs: sqldb.Jobs(), Archived: sqldb.ArchivedJobs()}
	notifier := jobs.Notifier{Jobs: sqldb.Jobs(), Seen: sqldb.SeenJobs()}
	summary, err := jobs.RunScrape(jobs.DefaultScrapers(), archive, notifier, "machine learning")
	if err != nil {
		log.Printf("Scrape failed: %v", err)
		return
	}
	log.Printf("Scrape completed: %d jobs, %d new, %d archived",
		summary.Scraped, summary.New, summary.Archived)
	if digest := jobs.Digest(summary.NewJobs); digest != "" {
		os.Stdout.WriteString(digest)
	}
}

func scrapeLoop(period time.Duration, sqldb *db.SQLDatabase) {
	log.Printf("Scraping every %s", period)
	ticker := time.NewTicker(period)
	for range ticker.C {
		scrapeOnce(sqldb)
	}
}
