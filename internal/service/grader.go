package service

import (
	"github.com/securinets-fst/securiquiz/internal/dto"
	"github.com/securinets-fst/securiquiz/internal/model"
)

// PassThreshold is the earned/total ratio at or above which a submission
// passes. The 0.5 boundary itself passes.
const PassThreshold = 0.5

// GradeOutcome is the full result of grading one submission, including the
// pass/fail verdict that the submit response withholds.
type GradeOutcome struct {
	Earned        float64
	TotalPossible float64
	Passed        bool
	Detail        []dto.QuestionResultDTO
}

// Grade scores a submission against a quiz. It is pure: no clock, no
// storage, deterministic for identical inputs.
//
// Every question of the quiz counts toward TotalPossible, answered or not.
// A submitted answer earns the question's points when its answerID belongs
// to the question's correct set; a question with several correct answers is
// satisfied by any single one of them (inherited policy — the submission
// shape carries one selection per question, so true multi-select cannot be
// expressed). Repeated entries for the same question collapse to the last
// one, so Earned can never exceed TotalPossible. Unanswered questions earn
// nothing and produce no detail row.
func Grade(questions []model.Question, submitted []dto.SubmittedAnswerDTO) GradeOutcome {
	correctSets := make(map[uint]map[uint]bool, len(questions))
	points := make(map[uint]float64, len(questions))

	var total float64
	for _, q := range questions {
		total += q.PointValue()
		points[q.ID] = q.PointValue()
		set := make(map[uint]bool, len(q.Answers))
		for _, a := range q.Answers {
			if a.IsCorrect {
				set[a.ID] = true
			}
		}
		correctSets[q.ID] = set
	}

	// Collapse duplicate entries to one selection per question, last
	// occurrence wins, matching the answer store's upsert semantics. A
	// question can never earn its points more than once no matter how the
	// payload repeats it.
	order := make([]uint, 0, len(submitted))
	selected := make(map[uint]*uint, len(submitted))
	for _, ans := range submitted {
		if _, seen := selected[ans.QuestionID]; !seen {
			order = append(order, ans.QuestionID)
		}
		selected[ans.QuestionID] = ans.AnswerID
	}

	outcome := GradeOutcome{TotalPossible: total}
	allCorrect := true
	for _, questionID := range order {
		answerID := selected[questionID]
		set, known := correctSets[questionID]
		if !known {
			// answer for a question outside this quiz: worth nothing
			allCorrect = false
			outcome.Detail = append(outcome.Detail, dto.QuestionResultDTO{
				QuestionID:       questionID,
				SelectedAnswerID: answerID,
			})
			continue
		}
		correct := answerID != nil && set[*answerID]
		if correct {
			outcome.Earned += points[questionID]
		} else {
			allCorrect = false
		}
		outcome.Detail = append(outcome.Detail, dto.QuestionResultDTO{
			QuestionID:       questionID,
			SelectedAnswerID: answerID,
			Correct:          correct,
			Points:           points[questionID],
		})
	}

	if outcome.TotalPossible > 0 {
		outcome.Passed = outcome.Earned/outcome.TotalPossible >= PassThreshold
	} else {
		// degenerate zero-point quiz: pass only a flawless submission
		outcome.Passed = allCorrect
	}
	return outcome
}
