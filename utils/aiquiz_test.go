package utils

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validGeneratedQuiz(n int) *GeneratedQuiz {
	gq := &GeneratedQuiz{Title: "Criminal Law Review", Topic: "Criminal Law"}
	for i := 0; i < n; i++ {
		gq.Questions = append(gq.Questions, GeneratedQuestion{
			Question:      fmt.Sprintf("Question %d?", i+1),
			Options:       []string{"Alpha", "Bravo", "Charlie", "Delta"},
			CorrectAnswer: "Charlie",
		})
	}
	return gq
}

func TestExtractJSONObject(t *testing.T) {
	t.Run("plain object", func(t *testing.T) {
		block, err := ExtractJSONObject(`{"title":"x"}`)
		require.NoError(t, err)
		assert.Equal(t, `{"title":"x"}`, block)
	})

	t.Run("prose and fences stripped", func(t *testing.T) {
		raw := "Sure, here is your quiz:\n```json\n{\"title\":\"x\"}\n```\nEnjoy!"
		block, err := ExtractJSONObject(raw)
		require.NoError(t, err)
		assert.Equal(t, `{"title":"x"}`, block)
	})

	t.Run("no object", func(t *testing.T) {
		_, err := ExtractJSONObject("no json here")
		assert.Error(t, err)
	})
}

func TestValidateGeneratedQuiz(t *testing.T) {
	t.Run("valid quiz passes", func(t *testing.T) {
		assert.NoError(t, ValidateGeneratedQuiz(validGeneratedQuiz(10)))
	})

	t.Run("empty title", func(t *testing.T) {
		gq := validGeneratedQuiz(3)
		gq.Title = "   "
		assert.Error(t, ValidateGeneratedQuiz(gq))
	})

	t.Run("empty topic", func(t *testing.T) {
		gq := validGeneratedQuiz(3)
		gq.Topic = ""
		assert.Error(t, ValidateGeneratedQuiz(gq))
	})

	t.Run("no questions", func(t *testing.T) {
		gq := validGeneratedQuiz(0)
		assert.Error(t, ValidateGeneratedQuiz(gq))
	})

	t.Run("wrong option count reports one-based index", func(t *testing.T) {
		gq := validGeneratedQuiz(5)
		gq.Questions[2].Options = []string{"Alpha", "Bravo", "Charlie"}
		err := ValidateGeneratedQuiz(gq)
		require.Error(t, err)
		assert.True(t, strings.HasPrefix(err.Error(), "question 3:"), err.Error())
	})

	t.Run("correct answer not among options", func(t *testing.T) {
		gq := validGeneratedQuiz(5)
		gq.Questions[4].CorrectAnswer = "Echo"
		err := ValidateGeneratedQuiz(gq)
		require.Error(t, err)
		assert.True(t, strings.HasPrefix(err.Error(), "question 5:"), err.Error())
	})
}

func TestParseGeneratedQuiz(t *testing.T) {
	t.Run("valid response", func(t *testing.T) {
		raw := `Here you go:
{"title":"Drill","topic":"Evidence","questions":[
 {"question":"Q1?","options":["a","b","c","d"],"correctAnswer":"b"}
]}`
		gq, err := ParseGeneratedQuiz(raw)
		require.NoError(t, err)
		assert.Equal(t, "Drill", gq.Title)
		assert.Len(t, gq.Questions, 1)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := ParseGeneratedQuiz(`{"title": "broken",`)
		assert.Error(t, err)
	})

	t.Run("structurally invalid", func(t *testing.T) {
		raw := `{"title":"Drill","topic":"Evidence","questions":[
 {"question":"Q1?","options":["a","b"],"correctAnswer":"a"}
]}`
		_, err := ParseGeneratedQuiz(raw)
		assert.Error(t, err)
	})
}

func TestBuildQuestions(t *testing.T) {
	gq := validGeneratedQuiz(2)
	gq.Questions[1].CorrectAnswer = "Alpha"

	questions := BuildQuestions(gq)
	require.Len(t, questions, 2)

	assert.Equal(t, "C", questions[0].CorrectLetter)
	assert.Equal(t, "Charlie", questions[0].CorrectText)
	assert.Equal(t, "A", questions[1].CorrectLetter)
	assert.Equal(t, "Alpha", questions[1].CorrectText)

	assert.Equal(t, 0, questions[0].OrderIndex)
	assert.Equal(t, 1, questions[1].OrderIndex)
	assert.Equal(t, "Alpha", questions[0].OptionA)
	assert.Equal(t, "Delta", questions[0].OptionD)
}
