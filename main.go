package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/jobwatch/jobwatch-backend/api"
	"github.com/jobwatch/jobwatch-backend/db"
)

func main() {
	godotenv.Load()
	task := flag.String("task", "", "run a one-shot task (scrape, latest) instead of serving")
	flag.Parse()

	cfg, err := db.LoadEnvironmentVariables()
	if err != nil {
		log.Fatal(err)
	}
	sqldb, err := db.InitSQLDatabase(cfg)
	if err != nil {
		log.Fatal(err)
	}

	if *task != "" {
		runTask(*task, sqldb)
		return
	}

	if interval := os.Getenv("SCRAPE_INTERVAL"); interval != "" {
		period, err := time.ParseDuration(interval)
		if err != nil {
			log.Fatalf("Invalid SCRAPE_INTERVAL %q: %v", interval, err)
		}
		go scrapeLoop(period, sqldb)
	}

	a := api.API{
		Subscribers: sqldb.Subscribers(),
		AdminKey:    os.Getenv("ADMIN_KEY"),
	}
	a.ParseTemplates("views")
	mux := http.NewServeMux()
	log.Printf("Listening on port %s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, a.RegisterHandlers(mux)))
}
