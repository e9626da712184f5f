package models

import "time"

// Job represents a job posting from any company board.
type Job struct {
	ID       string `json:"id"` // Unique ID from the company's system
	Title    string `json:"title"`
	Company  string `json:"company"`
	URL      string `json:"url"` // Direct link to the posting
	Location string `json:"location"`
	City     string `json:"city,omitempty"`
	Country  string `json:"country"`

	PostedDate  string `json:"posted_date,omitempty"`  // When the job was posted
	UpdatedTime string `json:"updated_time,omitempty"` // Last update on the board

	Source    string    `json:"source"` // Scraper that found this job
	ScrapedAt time.Time `json:"scraped_at"`

	Description string `json:"description,omitempty"`
	Salary      string `json:"salary,omitempty"`
	JobType     string `json:"job_type,omitempty"`
	Department  string `json:"department,omitempty"`
}

// Boards disagree on date formats; try each known one.
var postedFormats = []string{
	"January 2, 2006",
	time.RFC3339,
	"2006-01-02T15:04:05.000Z0700",
}

// PostedTime parses the posting date for sorting, falling back to the
// board's updated stamp. Returns the zero time if neither parses.
func (j Job) PostedTime() time.Time {
	for _, candidate := range []string{j.PostedDate, j.UpdatedTime} {
		if candidate == "" {
			continue
		}
		for _, format := range postedFormats {
			if t, err := time.Parse(format, candidate); err == nil {
				return t
			}
		}
	}
	return time.Time{}
}
