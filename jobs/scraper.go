// Package jobs watches company career boards for new ML/DS postings in
// Germany, keeps the current and archived postings in key-value stores, and
// prepares notification digests for the subscriber list.
package jobs

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/jobwatch/jobwatch-backend/models"
)

// Scraper fetches postings from one company's job board.
type Scraper interface {
	CompanyName() string
	FetchJobs(query string) ([]models.Job, error)
}

// Company identifies a board to scrape: display name, board slug, and the
// company's web domain.
type Company struct {
	Name   string
	Slug   string
	Domain string
}

const defaultTimeout = 20 * time.Second

var defaultClient = &http.Client{Timeout: defaultTimeout}

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

func fetchJSON(client *http.Client, url string, out interface{}) error {
	if client == nil {
		client = defaultClient
	}
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json, text/html, */*")
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s returned status %d", url, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Keywords marking a posting as ML/DS related. Matched against the lowercased
// title and department.
var mlKeywords = []string{
	"machine learning", "data scien", "data engineer", "data analyst",
	"ml ", " ml", "ai ", " ai", "deep learning", "nlp",
	"computer vision", "analytics", "neural", "llm",
	"research scientist", "applied scientist",
}

func matchesKeywords(title string, department string) bool {
	searchable := strings.ToLower(title) + " " + strings.ToLower(department)
	for _, keyword := range mlKeywords {
		if strings.Contains(searchable, keyword) {
			return true
		}
	}
	return false
}

// Location terms counting as Germany or EU-remote eligible on boards that
// only expose a free-form location string.
var germanyTerms = []string{
	"germany", "berlin", "munich", "hamburg", "frankfurt",
	"emea", "europe", "remote",
}

func germanyLocation(location string) bool {
	lower := strings.ToLower(location)
	for _, term := range germanyTerms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

// Germany cities used by boards that expose structured locations.
var germanyCities = map[string]bool{
	"Berlin":    true,
	"Munich":    true,
	"Hamburg":   true,
	"Frankfurt": true,
	"Cologne":   true,
	"Stuttgart": true,
}
