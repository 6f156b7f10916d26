package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeBlanksPlaceholderValues(t *testing.T) {
	criteria := JobSearchCriteria{
		Search:          "engineer",
		Location:        "Location",
		Skills:          "Skills",
		ExperienceLevel: "Experience Level",
		Company:         "Acme",
	}

	got := criteria.Normalize()

	assert.Equal(t, "engineer", got.Search)
	assert.Empty(t, got.Location)
	assert.Empty(t, got.Skills)
	assert.Empty(t, got.ExperienceLevel)
	assert.Equal(t, "Acme", got.Company)
}

func TestNormalizeKeepsRealValues(t *testing.T) {
	criteria := JobSearchCriteria{
		Location:        "Berlin",
		Skills:          "Go",
		ExperienceLevel: "Mid Level",
	}

	got := criteria.Normalize()

	assert.Equal(t, criteria, got)
}

func TestNormalizeIsCaseSensitive(t *testing.T) {
	// "location" is a real search term, only the exact dropdown label is
	// treated as empty.
	got := JobSearchCriteria{Location: "location"}.Normalize()
	assert.Equal(t, "location", got.Location)
}
