package services

import (
	"sort"
	"strings"

	"github.com/medimatch/medimatch-backend/internal/models"
)

// Relevance weights per field. A field can score in more than one band at
// once: an exact title match also contains the query as a substring, so it
// earns both weights.
const (
	exactTitleWeight    = 100
	exactCompanyWeight  = 80
	exactLocationWeight = 60

	partialTitleWeight    = 50
	partialCompanyWeight  = 40
	partialLocationWeight = 30

	wordTitleWeight    = 25
	wordCompanyWeight  = 20
	wordLocationWeight = 15
)

// relevanceScore rates how well a job matches the search query. Higher is
// better; a job with no overlap scores zero.
func relevanceScore(job models.Job, query string) int {
	q := strings.ToLower(query)
	title := strings.ToLower(job.Title)
	company := strings.ToLower(job.Company)
	location := strings.ToLower(job.Location)

	score := 0

	if title == q {
		score += exactTitleWeight
	}
	if company == q {
		score += exactCompanyWeight
	}
	if location == q {
		score += exactLocationWeight
	}

	if strings.Contains(title, q) {
		score += partialTitleWeight
	}
	if strings.Contains(company, q) {
		score += partialCompanyWeight
	}
	if strings.Contains(location, q) {
		score += partialLocationWeight
	}

	titleWords := strings.Fields(title)
	companyWords := strings.Fields(company)
	locationWords := strings.Fields(location)
	for _, word := range strings.Fields(q) {
		if containsWord(titleWords, word) {
			score += wordTitleWeight
		}
		if containsWord(companyWords, word) {
			score += wordCompanyWeight
		}
		if containsWord(locationWords, word) {
			score += wordLocationWeight
		}
	}
	return score
}

func containsWord(words []string, word string) bool {
	for _, w := range words {
		if w == word {
			return true
		}
	}
	return false
}

// rankByRelevance orders jobs by descending score. The sort is stable so jobs
// with equal scores keep the store's creation-time ordering.
func rankByRelevance(jobs []models.Job, query string) []models.Job {
	type scoredJob struct {
		job   models.Job
		score int
	}
	scored := make([]scoredJob, len(jobs))
	for i, job := range jobs {
		scored[i] = scoredJob{job: job, score: relevanceScore(job, query)}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	ranked := make([]models.Job, len(scored))
	for i, s := range scored {
		ranked[i] = s.job
	}
	return ranked
}
