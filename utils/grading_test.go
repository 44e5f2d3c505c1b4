package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAnswerLetter(t *testing.T) {
	assert.Equal(t, "A", NormalizeAnswerLetter("a"))
	assert.Equal(t, "C", NormalizeAnswerLetter("  c "))
	assert.Equal(t, "D", NormalizeAnswerLetter("D"))

	assert.Equal(t, "", NormalizeAnswerLetter("E"))
	assert.Equal(t, "", NormalizeAnswerLetter("AB"))
	assert.Equal(t, "", NormalizeAnswerLetter(""))
	assert.Equal(t, "", NormalizeAnswerLetter("1"))
}

func TestGradeAnswers(t *testing.T) {
	correct := []string{"A", "B", "C", "D", "A", "B", "C", "D", "A", "B"}

	t.Run("seven of ten", func(t *testing.T) {
		submitted := []string{"A", "B", "C", "D", "A", "B", "C", "A", "B", "C"}
		score := GradeAnswers(correct, submitted)
		assert.Equal(t, 7, score)
		assert.Equal(t, 70.0, ScorePercentage(score, len(correct)))
	})

	t.Run("all correct", func(t *testing.T) {
		assert.Equal(t, 10, GradeAnswers(correct, correct))
	})

	t.Run("case insensitive", func(t *testing.T) {
		submitted := []string{"a", "b", "c", "d", "a", "b", "c", "d", "a", "b"}
		assert.Equal(t, 10, GradeAnswers(correct, submitted))
	})

	t.Run("short submission scores only answered positions", func(t *testing.T) {
		assert.Equal(t, 3, GradeAnswers(correct, []string{"A", "B", "C"}))
	})

	t.Run("extra answers are ignored", func(t *testing.T) {
		submitted := append(append([]string{}, correct...), "A", "B")
		assert.Equal(t, 10, GradeAnswers(submitted[:10], submitted))
	})

	t.Run("invalid letters never match", func(t *testing.T) {
		submitted := []string{"E", "x", "", "??", "A", "B", "C", "D", "A", "B"}
		assert.Equal(t, 6, GradeAnswers(correct, submitted))
	})
}

func TestScorePercentage(t *testing.T) {
	assert.Equal(t, 0.0, ScorePercentage(5, 0))
	assert.Equal(t, 0.0, ScorePercentage(0, 10))
	assert.Equal(t, 100.0, ScorePercentage(10, 10))
	assert.Equal(t, 50.0, ScorePercentage(1, 2))
	assert.InDelta(t, 33.333, ScorePercentage(1, 3), 0.001)
}
