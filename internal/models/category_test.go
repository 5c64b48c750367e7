package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidCategory(t *testing.T) {
	for _, category := range AllCategories() {
		assert.True(t, IsValidCategory(category), category)
	}

	assert.False(t, IsValidCategory(""))
	assert.False(t, IsValidCategory("crypto"))
	assert.False(t, IsValidCategory("Food"))
}

func TestCategoryRank(t *testing.T) {
	// Declaration order is the deterministic tiebreak for breakdowns
	assert.Equal(t, 0, CategoryRank(CategoryFood))
	assert.Equal(t, 1, CategoryRank(CategoryTransport))
	assert.Equal(t, 5, CategoryRank(CategoryOther))
	assert.Equal(t, len(AllCategories()), CategoryRank("unknown"))
}
