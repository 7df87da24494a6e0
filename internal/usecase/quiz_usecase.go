package usecase

import (
	"context"

	"winestudy/internal/domain/progress"
	"winestudy/internal/domain/study"
)

const defaultQuestionLimit = 10

type QuizResult struct {
	Correct       bool   `json:"correct"`
	CorrectAnswer int    `json:"correct_answer"`
	ExplanationPT string `json:"explanation_pt"`
	ExplanationEN string `json:"explanation_en"`
}

type QuizUsecase interface {
	Questions(ctx context.Context, trackID string, limit int) ([]study.QuizQuestion, error)
	Submit(ctx context.Context, userID, questionID string, selectedAnswer int) (QuizResult, error)
}

type Quiz struct {
	repo     study.Repository
	progress progress.Repository
}

func NewQuizUsecase(repo study.Repository, prog progress.Repository) *Quiz {
	return &Quiz{repo: repo, progress: prog}
}

func (q *Quiz) Questions(ctx context.Context, trackID string, limit int) ([]study.QuizQuestion, error) {
	if limit <= 0 {
		limit = defaultQuestionLimit
	}
	return q.repo.ListQuestionsByTrack(ctx, trackID, limit)
}

// Submit grades one answer; a correct answer bumps the per-track score. The
// explanation is returned either way so the client can teach on a miss.
func (q *Quiz) Submit(ctx context.Context, userID, questionID string, selectedAnswer int) (QuizResult, error) {
	question, err := q.repo.GetQuestion(ctx, questionID)
	if err != nil {
		return QuizResult{}, err
	}

	correct := selectedAnswer == question.CorrectAnswer
	if correct {
		if err := q.progress.IncQuizScore(ctx, userID, question.TrackID); err != nil {
			return QuizResult{}, err
		}
	}

	return QuizResult{
		Correct:       correct,
		CorrectAnswer: question.CorrectAnswer,
		ExplanationPT: question.ExplanationPT,
		ExplanationEN: question.ExplanationEN,
	}, nil
}
