// Package quiz содержит вопросы викторины по безопасности движения и правила подсчета очков.
package quiz

import (
	"errors"
	"fmt"
)

const (
	// QuestionTimeLimit - секунд на один вопрос
	QuestionTimeLimit = 30
	// MinCorrectPoints - минимум очков за верный ответ, даже если время почти вышло
	MinCorrectPoints = 10
	// NoAnswer - выбор, которым клиент отмечает истекшее время
	NoAnswer = -1
)

var ErrInvalidAnswers = errors.New("invalid quiz answers")

type Question struct {
	Text    string
	Options []string
	Correct int
}

var Questions = []Question{
	{
		Text:    "What should you do when you see a yellow traffic light?",
		Options: []string{"Speed up", "Prepare to stop", "Stop immediately", "Honk"},
		Correct: 1,
	},
	{
		Text:    "Safe following distance in normal conditions?",
		Options: []string{"1 second", "2 seconds", "3 seconds", "5 seconds"},
		Correct: 2,
	},
	{
		Text:    "When should you use high beams?",
		Options: []string{"In fog", "Open rural roads", "In traffic", "Always"},
		Correct: 1,
	},
	{
		Text:    "What does a red octagon sign mean?",
		Options: []string{"Yield", "Stop", "Speed limit", "Warning"},
		Correct: 1,
	},
	{
		Text:    "Ideal tire pressure check frequency?",
		Options: []string{"Daily", "Weekly", "Monthly", "Yearly"},
		Correct: 2,
	},
}

// Answer - ответ на вопрос Question; TimeLeft - сколько секунд оставалось на таймере
type Answer struct {
	Question int
	Choice   int
	TimeLeft int
}

// Points возвращает очки за один ответ: быстрый верный ответ стоит больше
func Points(correct bool, timeLeft int) int {
	if !correct {
		return 0
	}
	return max(MinCorrectPoints, timeLeft*2)
}

// Score проверяет, что на каждый вопрос дан ровно один ответ, и считает итог игры
func Score(answers []Answer) (score, correct int, err error) {
	if len(answers) != len(Questions) {
		return 0, 0, fmt.Errorf("%w: expected %d answers, got %d", ErrInvalidAnswers, len(Questions), len(answers))
	}

	seen := make([]bool, len(Questions))
	for _, a := range answers {
		if a.Question < 0 || a.Question >= len(Questions) {
			return 0, 0, fmt.Errorf("%w: unknown question %d", ErrInvalidAnswers, a.Question)
		}
		if seen[a.Question] {
			return 0, 0, fmt.Errorf("%w: question %d answered twice", ErrInvalidAnswers, a.Question)
		}
		seen[a.Question] = true

		q := Questions[a.Question]
		if a.Choice < NoAnswer || a.Choice >= len(q.Options) {
			return 0, 0, fmt.Errorf("%w: choice %d out of range for question %d", ErrInvalidAnswers, a.Choice, a.Question)
		}
		if a.TimeLeft < 0 || a.TimeLeft > QuestionTimeLimit {
			return 0, 0, fmt.Errorf("%w: time left %d out of range", ErrInvalidAnswers, a.TimeLeft)
		}

		ok := a.Choice == q.Correct
		if ok {
			correct++
		}
		score += Points(ok, a.TimeLeft)
	}
	return score, correct, nil
}
