package jobs

import (
	"fmt"
	"net/http"
	"time"

	"github.com/jobwatch/jobwatch-backend/models"
)

// SmartRecruitersScraper works with any company hosting its board on
// SmartRecruiters. The postings API is offset-paginated.
type SmartRecruitersScraper struct {
	Company Company
	// BaseURL overrides the postings endpoint. For tests.
	BaseURL string
	Client  *http.Client
}

const smartRecruitersPageSize = 100

type smartRecruitersPosting struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ReleasedDate string `json:"releasedDate"`
	Location     struct {
		City    string `json:"city"`
		Country string `json:"country"`
	} `json:"location"`
	Department struct {
		Label string `json:"label"`
	} `json:"department"`
}

type smartRecruitersPage struct {
	TotalFound int                      `json:"totalFound"`
	Content    []smartRecruitersPosting `json:"content"`
}

func (s SmartRecruitersScraper) CompanyName() string { return s.Company.Name }

func (s SmartRecruitersScraper) postingsURL() string {
	if s.BaseURL != "" {
		return s.BaseURL
	}
	return fmt.Sprintf("https://api.smartrecruiters.com/v1/companies/%s/postings", s.Company.Slug)
}

func (s SmartRecruitersScraper) germanyPosting(posting smartRecruitersPosting) bool {
	return posting.Location.Country == "Germany" || germanyCities[posting.Location.City]
}

// FetchJobs walks every page of the postings API and filters for ML/DS
// postings in Germany.
func (s SmartRecruitersScraper) FetchJobs(query string) ([]models.Job, error) {
	jobs := []models.Job{}
	offset := 0
	for {
		var page smartRecruitersPage
		url := fmt.Sprintf("%s?offset=%d&limit=%d", s.postingsURL(), offset, smartRecruitersPageSize)
		if err := fetchJSON(s.Client, url, &page); err != nil {
			return jobs, err
		}
		for _, posting := range page.Content {
			if !matchesKeywords(posting.Name, posting.Department.Label) {
				continue
			}
			if !s.germanyPosting(posting) {
				continue
			}
			jobs = append(jobs, models.Job{
				ID:         posting.ID,
				Title:      posting.Name,
				Company:    s.Company.Name,
				URL:        fmt.Sprintf("https://jobs.smartrecruiters.com/%s/%s", s.Company.Slug, posting.ID),
				Location:   fmt.Sprintf("%s, %s", posting.Location.City, posting.Location.Country),
				City:       posting.Location.City,
				Country:    posting.Location.Country,
				PostedDate: posting.ReleasedDate,
				Source:     "smartrecruiters",
				Department: posting.Department.Label,
				ScrapedAt:  time.Now().UTC(),
			})
		}
		offset += len(page.Content)
		if len(page.Content) == 0 || offset >= page.TotalFound {
			return jobs, nil
		}
	}
}
