package utils

import (
	"testing"

	"crimedge/models"

	"github.com/stretchr/testify/assert"
)

func TestCanEnroll(t *testing.T) {
	t.Run("free tier below limit", func(t *testing.T) {
		assert.True(t, CanEnroll(models.TierFree, 0))
		assert.True(t, CanEnroll(models.TierFree, models.FreeCourseLimit-1))
	})

	t.Run("free tier at limit", func(t *testing.T) {
		assert.False(t, CanEnroll(models.TierFree, models.FreeCourseLimit))
	})

	t.Run("free tier over limit after downgrade", func(t *testing.T) {
		assert.False(t, CanEnroll(models.TierFree, models.FreeCourseLimit+3))
	})

	t.Run("paid tiers are never capped", func(t *testing.T) {
		assert.True(t, CanEnroll(models.TierBasic, 50))
		assert.True(t, CanEnroll(models.TierPremium, 50))
	})
}
