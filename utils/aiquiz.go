package utils

import (
	"crimedge/config"
	quizModels "crimedge/models/quiz"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/go-resty/resty/v2"
)

// GeneratedQuestionCount is the number of questions requested per quiz
const GeneratedQuestionCount = 10

var answerLetters = []string{"A", "B", "C", "D"}

// GeneratedQuestion is one question as returned by the text-generation service
type GeneratedQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}

// GeneratedQuiz is the strict JSON shape demanded from the service
type GeneratedQuiz struct {
	Title     string              `json:"title"`
	Topic     string              `json:"topic"`
	Questions []GeneratedQuestion `json:"questions"`
}

func quizPrompt(topic string) string {
	return fmt.Sprintf(`Create a multiple-choice quiz with exactly %d questions about "%s" for criminology board-exam review.
Respond with strict JSON only, in this exact shape:
{"title": "...", "topic": "...", "questions": [{"question": "...", "options": ["...", "...", "...", "..."], "correctAnswer": "..."}]}
Each question must have exactly 4 options and correctAnswer must exactly match one of the options. No explanations, no markdown.`, GeneratedQuestionCount, topic)
}

// ExtractJSONObject pulls the first {...} block out of a raw model response,
// tolerating surrounding prose or markdown fences.
func ExtractJSONObject(raw string) (string, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end <= start {
		return "", errors.New("no JSON object found in response")
	}
	return raw[start : end+1], nil
}

// ValidateGeneratedQuiz checks the structural rules for a generated quiz.
// Any violation rejects the whole batch; question errors carry the 1-based
// index of the offending question.
func ValidateGeneratedQuiz(gq *GeneratedQuiz) error {
	if strings.TrimSpace(gq.Title) == "" {
		return errors.New("quiz title is empty")
	}
	if strings.TrimSpace(gq.Topic) == "" {
		return errors.New("quiz topic is empty")
	}
	if len(gq.Questions) == 0 {
		return errors.New("quiz has no questions")
	}

	for i, q := range gq.Questions {
		if strings.TrimSpace(q.Question) == "" {
			return fmt.Errorf("question %d: text is empty", i+1)
		}
		if len(q.Options) != quizModels.QuestionOptionCount {
			return fmt.Errorf("question %d: expected %d options, got %d", i+1, quizModels.QuestionOptionCount, len(q.Options))
		}
		matched := false
		for _, opt := range q.Options {
			if opt == q.CorrectAnswer {
				matched = true
				break
			}
		}
		if !matched {
			return fmt.Errorf("question %d: correctAnswer does not match any option", i+1)
		}
	}
	return nil
}

// ParseGeneratedQuiz extracts, decodes and validates the quiz JSON embedded
// in a raw model response.
func ParseGeneratedQuiz(raw string) (*GeneratedQuiz, error) {
	block, err := ExtractJSONObject(raw)
	if err != nil {
		return nil, err
	}

	var gq GeneratedQuiz
	if err := json.Unmarshal([]byte(block), &gq); err != nil {
		return nil, fmt.Errorf("malformed quiz JSON: %w", err)
	}

	if err := ValidateGeneratedQuiz(&gq); err != nil {
		return nil, err
	}
	return &gq, nil
}

// BuildQuestions converts validated generated questions into persistable
// rows, locating each full-text correct answer among the options to derive
// its letter code. Both the letter and the original text are retained.
func BuildQuestions(gq *GeneratedQuiz) []quizModels.Question {
	questions := make([]quizModels.Question, 0, len(gq.Questions))
	for i, q := range gq.Questions {
		letter := ""
		for idx, opt := range q.Options {
			if opt == q.CorrectAnswer {
				letter = answerLetters[idx]
				break
			}
		}

		questions = append(questions, quizModels.Question{
			Text:          q.Question,
			OptionA:       q.Options[0],
			OptionB:       q.Options[1],
			OptionC:       q.Options[2],
			OptionD:       q.Options[3],
			CorrectLetter: letter,
			CorrectText:   q.CorrectAnswer,
			OrderIndex:    i,
		})
	}
	return questions
}

// GenerateQuiz requests a quiz on the given topic from the configured
// text-generation endpoint and returns the validated result. All failure
// modes (network, malformed JSON, structural mismatch) come back as one
// retryable error; nothing is persisted here.
func GenerateQuiz(topic string) (*GeneratedQuiz, error) {
	client := resty.New()

	body := map[string]interface{}{
		"model": config.AppConfig.TextGenModel,
		"messages": []map[string]string{
			{"role": "user", "content": quizPrompt(topic)},
		},
	}

	resp, err := client.R().
		SetHeader("Authorization", "Bearer "+config.AppConfig.TextGenApiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(config.AppConfig.TextGenApiURL)
	if err != nil {
		log.Printf("[QUIZ-GEN] request failed: %v", err)
		return nil, err
	}
	if resp.StatusCode() != 200 {
		log.Printf("[QUIZ-GEN] endpoint returned %d: %s", resp.StatusCode(), resp.String())
		return nil, fmt.Errorf("text-generation endpoint returned status %d", resp.StatusCode())
	}

	var completion struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(resp.Body(), &completion); err != nil {
		log.Printf("[QUIZ-GEN] invalid completion response: %v", err)
		return nil, fmt.Errorf("invalid completion response: %w", err)
	}
	if len(completion.Choices) == 0 {
		return nil, errors.New("completion response has no choices")
	}

	return ParseGeneratedQuiz(completion.Choices[0].Message.Content)
}
