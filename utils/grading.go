package utils

import "strings"

// NormalizeAnswerLetter trims and uppercases a submitted answer letter.
// Anything that is not a single A-D letter comes back empty, which never
// matches a stored correct letter (treated as incorrect, not an error).
func NormalizeAnswerLetter(raw string) string {
	letter := strings.ToUpper(strings.TrimSpace(raw))
	switch letter {
	case "A", "B", "C", "D":
		return letter
	}
	return ""
}

// GradeAnswers counts the positions where the submitted letter equals the
// stored correct letter. Comparison is strictly positional: answers beyond
// the question count are ignored, missing answers never match.
func GradeAnswers(correct, submitted []string) int {
	score := 0
	for i, want := range correct {
		if i >= len(submitted) {
			break
		}
		got := NormalizeAnswerLetter(submitted[i])
		if got != "" && got == want {
			score++
		}
	}
	return score
}

// ScorePercentage converts a score into a percentage of total questions.
// Rounding is left to the display layer.
func ScorePercentage(score, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(score) / float64(total) * 100
}
