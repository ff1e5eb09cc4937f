package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/medimatch/medimatch-backend/internal/models"
)

func TestRelevanceScoreExactTitle(t *testing.T) {
	job := models.Job{Title: "Nurse", Company: "St Mary's", Location: "Leeds"}
	// Exact title equality also counts as a substring and a word match.
	assert.Equal(t, 175, relevanceScore(job, "Nurse"))
}

func TestRelevanceScoreCaseInsensitive(t *testing.T) {
	job := models.Job{Title: "NURSE", Company: "St Mary's", Location: "Leeds"}
	assert.Equal(t, relevanceScore(job, "nurse"), relevanceScore(job, "NuRsE"))
}

func TestRelevanceScoreAccumulatesAcrossFields(t *testing.T) {
	job := models.Job{Title: "London Nurse", Company: "London Care", Location: "London"}
	// Location is an exact match (60+30+15); title and company each contain
	// the query as a substring and a word (50+25 and 40+20).
	assert.Equal(t, 240, relevanceScore(job, "london"))
}

func TestRelevanceScoreNoOverlap(t *testing.T) {
	job := models.Job{Title: "Surgeon", Company: "Royal Infirmary", Location: "Glasgow"}
	assert.Zero(t, relevanceScore(job, "pediatric dentist"))
}

func TestRankByRelevanceExactAbovePartial(t *testing.T) {
	partial := models.Job{ID: "partial", Title: "Senior Nurse Practitioner"}
	exact := models.Job{ID: "exact", Title: "Nurse"}

	ranked := rankByRelevance([]models.Job{partial, exact}, "Nurse")

	assert.Equal(t, "exact", ranked[0].ID)
	assert.Equal(t, "partial", ranked[1].ID)
}

func TestRankByRelevanceMultiWordQuery(t *testing.T) {
	jobs := []models.Job{
		{ID: "practitioner", Title: "London Nurse Practitioner", Company: "NHS", Location: "London"},
		{ID: "manchester", Title: "Nurse in Manchester", Company: "NHS", Location: "Manchester"},
		{ID: "admin", Title: "London Admin", Company: "NHS", Location: "London"},
	}

	ranked := rankByRelevance(jobs, "London Nurse")

	assert.Equal(t, "practitioner", ranked[0].ID)
	assert.Equal(t, "admin", ranked[1].ID)
	assert.Equal(t, "manchester", ranked[2].ID)
}

func TestRankByRelevanceStableOnTies(t *testing.T) {
	jobs := []models.Job{
		{ID: "first", Title: "Nurse One"},
		{ID: "second", Title: "Nurse Two"},
		{ID: "third", Title: "Nurse Three"},
	}

	ranked := rankByRelevance(jobs, "nurse")

	assert.Equal(t, "first", ranked[0].ID)
	assert.Equal(t, "second", ranked[1].ID)
	assert.Equal(t, "third", ranked[2].ID)
}

func TestRankByRelevanceDoesNotMutateInput(t *testing.T) {
	jobs := []models.Job{
		{ID: "low", Title: "Cleaner"},
		{ID: "high", Title: "Nurse"},
	}

	_ = rankByRelevance(jobs, "nurse")

	assert.Equal(t, "low", jobs[0].ID)
	assert.Equal(t, "high", jobs[1].ID)
}
