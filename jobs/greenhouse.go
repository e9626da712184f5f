package jobs

import (
	"fmt"
	"net/http"
	"time"

	"github.com/jobwatch/jobwatch-backend/models"
)

// GreenhouseScraper works with any company hosting its board on Greenhouse.
type GreenhouseScraper struct {
	Company Company
	// BaseURL overrides the boards-api endpoint. For tests.
	BaseURL string
	Client  *http.Client
}

type greenhouseJob struct {
	ID             int64  `json:"id"`
	Title          string `json:"title"`
	AbsoluteURL    string `json:"absolute_url"`
	UpdatedAt      string `json:"updated_at"`
	FirstPublished string `json:"first_published"`
	Location       struct {
		Name string `json:"name"`
	} `json:"location"`
	Departments []struct {
		Name string `json:"name"`
	} `json:"departments"`
}

type greenhouseResponse struct {
	Jobs []greenhouseJob `json:"jobs"`
}

func (s GreenhouseScraper) CompanyName() string { return s.Company.Name }

func (s GreenhouseScraper) boardURL() string {
	if s.BaseURL != "" {
		return s.BaseURL
	}
	return fmt.Sprintf("https://boards-api.greenhouse.io/v1/boards/%s/jobs", s.Company.Slug)
}

// FetchJobs pulls the whole board in one request and filters for ML/DS
// postings in Germany. The query parameter is unused by Greenhouse; filtering
// happens client-side.
func (s GreenhouseScraper) FetchJobs(query string) ([]models.Job, error) {
	var board greenhouseResponse
	if err := fetchJSON(s.Client, s.boardURL(), &board); err != nil {
		return nil, err
	}
	jobs := []models.Job{}
	for _, posting := range board.Jobs {
		department := ""
		if len(posting.Departments) > 0 {
			department = posting.Departments[0].Name
		}
		if !matchesKeywords(posting.Title, department) {
			continue
		}
		if !germanyLocation(posting.Location.Name) {
			continue
		}
		jobs = append(jobs, models.Job{
			ID:          fmt.Sprintf("%d", posting.ID),
			Title:       posting.Title,
			Company:     s.Company.Name,
			URL:         posting.AbsoluteURL,
			Location:    posting.Location.Name,
			Country:     "Germany",
			PostedDate:  posting.FirstPublished,
			UpdatedTime: posting.UpdatedAt,
			Source:      "greenhouse",
			Department:  department,
			ScrapedAt:   time.Now().UTC(),
		})
	}
	return jobs, nil
}
