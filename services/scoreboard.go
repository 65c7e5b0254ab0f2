package services

import (
	"math"
	"time"

	"careerprep/models"
)

// Each question is worth 10 points; the attempts API reports total_questions
// as raw_total_questions * pointsPerQuestion and percentages are computed
// against that scaled total.
const pointsPerQuestion = 10

// FormattedAttempt is the API-layer view of a stored attempt: quiz label
// resolved, total scaled to points, percentage pre-computed.
type FormattedAttempt struct {
	ID             uint                   `json:"id"`
	QuizID         string                 `json:"quiz_id"`
	QuizTitle      string                 `json:"quiz_title"`
	StudentName    string                 `json:"student_name"`
	StudentEmail   string                 `json:"student_email"`
	Score          int                    `json:"score"`
	TotalQuestions int                    `json:"total_questions"`
	Percentage     int                    `json:"percentage"`
	Answers        []models.AttemptAnswer `json:"answers"`
	TimeTaken      int                    `json:"time_taken"`
	AttemptedAt    time.Time              `json:"attempted_at"`
}

// QuizSummary is one scoreboard group. Score statistics are over per-attempt
// percentages.
type QuizSummary struct {
	QuizID        string             `json:"quiz_id"`
	QuizTitle     string             `json:"quiz_title"`
	TotalAttempts int                `json:"total_attempts"`
	AverageScore  float64            `json:"average_score"`
	HighestScore  int                `json:"highest_score"`
	LowestScore   int                `json:"lowest_score"`
	Attempts      []FormattedAttempt `json:"attempts"`
}

func percentage(score, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(total) * 100))
}

// Summarize groups attempts by quiz and reduces each group to its statistics.
// Percentages are computed from each attempt's score and stored total, so the
// input must already carry API-layer totals. It is a pure function over the
// input slice: group order follows the first occurrence of each quiz, and
// calling it twice on the same input yields identical output.
func Summarize(attempts []FormattedAttempt) []QuizSummary {
	groups := make(map[string]int)
	summaries := []QuizSummary{}

	for _, attempt := range attempts {
		idx, ok := groups[attempt.QuizID]
		if !ok {
			idx = len(summaries)
			groups[attempt.QuizID] = idx
			summaries = append(summaries, QuizSummary{
				QuizID:    attempt.QuizID,
				QuizTitle: attempt.QuizTitle,
			})
		}
		summaries[idx].Attempts = append(summaries[idx].Attempts, attempt)
	}

	for i := range summaries {
		group := &summaries[i]
		group.TotalAttempts = len(group.Attempts)

		sum := 0
		high := 0
		low := 0
		for j, attempt := range group.Attempts {
			pct := percentage(attempt.Score, attempt.TotalQuestions)
			sum += pct
			if j == 0 || pct > high {
				high = pct
			}
			if j == 0 || pct < low {
				low = pct
			}
		}

		group.AverageScore = float64(sum) / float64(group.TotalAttempts)
		group.HighestScore = high
		group.LowestScore = low
	}

	return summaries
}
