package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/jobwatch/jobwatch-backend/db"
	"github.com/jobwatch/jobwatch-backend/jobs"
)

// Runs the full scraper roster against the configured database and prints a
// digest of the postings that weren't seen before.
func main() {
	godotenv.Load()
	query := flag.String("query", "machine learning", "search query passed to boards that support one")
	html := flag.Bool("html", false, "print the digest as HTML instead of markdown")
	flag.Parse()

	cfg, err := db.LoadEnvironmentVariables()
	if err != nil {
		log.Fatal(err)
	}
	sqldb, err := db.InitSQLDatabase(cfg)
	if err != nil {
		log.Fatal(err)
	}

	archive := jobs.Archive{Jobs: sqldb.Jobs(), Archived: sqldb.ArchivedJobs()}
	notifier := jobs.Notifier{Jobs: sqldb.Jobs(), Seen: sqldb.SeenJobs()}
	summary, err := jobs.RunScrape(jobs.DefaultScrapers(), archive, notifier, *query)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Scrape completed: %d jobs, %d new, %d archived",
		summary.Scraped, summary.New, summary.Archived)

	if len(summary.NewJobs) == 0 {
		fmt.Println("No new jobs.")
		return
	}
	if *html {
		digest, err := jobs.DigestHTML(summary.NewJobs)
		if err != nil {
			log.Fatal(err)
		}
		os.Stdout.WriteString(digest)
		return
	}
	os.Stdout.WriteString(jobs.Digest(summary.NewJobs))
}
