package service

import (
	"errors"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/securinets-fst/securiquiz/internal/apperror"
	"github.com/securinets-fst/securiquiz/internal/dto"
	"github.com/securinets-fst/securiquiz/internal/model"
	"github.com/securinets-fst/securiquiz/internal/repository"
)

// QuizService is the read surface for takers: quiz catalogue, sanitized quiz
// details and the caller's own results.
type QuizService interface {
	GetAllQuizzes() ([]dto.QuizSummaryDTO, error)
	GetQuizDetails(quizID uint) (*dto.QuizDetailDTO, error)
	GetMyResults(userID uint) ([]dto.ResultDTO, error)
}

type quizService struct {
	quizRepo   repository.QuizRepository
	resultRepo repository.ResultRepository
}

func NewQuizService(quizRepo repository.QuizRepository, resultRepo repository.ResultRepository) QuizService {
	return &quizService{quizRepo: quizRepo, resultRepo: resultRepo}
}

func (s *quizService) GetAllQuizzes() ([]dto.QuizSummaryDTO, error) {
	quizzesWithCount, err := s.quizRepo.FindAllWithQuestionCount()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list quizzes")
		return nil, apperror.Transient("could not list quizzes", err)
	}

	dtos := make([]dto.QuizSummaryDTO, 0, len(quizzesWithCount))
	for _, qwc := range quizzesWithCount {
		dtos = append(dtos, dto.QuizSummaryDTO{
			QuizID:           qwc.Quiz.ID,
			Title:            qwc.Quiz.Title,
			Description:      qwc.Quiz.Description,
			TimeLimitMinutes: qwc.Quiz.TimeLimitMinutes,
			QuestionCount:    qwc.QuestionCount,
			CreatedAt:        qwc.Quiz.CreatedAt,
		})
	}
	return dtos, nil
}

func (s *quizService) GetQuizDetails(quizID uint) (*dto.QuizDetailDTO, error) {
	quiz, err := s.quizRepo.FindByIDWithQuestions(quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("quiz not found")
		}
		log.Error().Err(err).Uint("quizID", quizID).Msg("Failed to load quiz details")
		return nil, apperror.Transient("could not load quiz", err)
	}
	detail := toQuizDetailDTO(quiz)
	return &detail, nil
}

func (s *quizService) GetMyResults(userID uint) ([]dto.ResultDTO, error) {
	results, err := s.resultRepo.FindAllByUser(userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("Failed to list user results")
		return nil, apperror.Transient("could not list results", err)
	}
	return toResultDTOs(results), nil
}

// toQuizDetailDTO strips grading internals: answer options go out without
// their correctness flags.
func toQuizDetailDTO(quiz *model.Quiz) dto.QuizDetailDTO {
	detail := dto.QuizDetailDTO{
		QuizID:           quiz.ID,
		Title:            quiz.Title,
		Description:      quiz.Description,
		TimeLimitMinutes: quiz.TimeLimitMinutes,
		Questions:        make([]dto.QuestionDTO, 0, len(quiz.Questions)),
	}
	for _, q := range quiz.Questions {
		qd := dto.QuestionDTO{
			QuestionID:  q.ID,
			Title:       q.Title,
			Description: q.Description,
			Points:      q.PointValue(),
			OrderInQuiz: q.OrderInQuiz,
			Answers:     make([]dto.AnswerOptionDTO, 0, len(q.Answers)),
		}
		for _, a := range q.Answers {
			qd.Answers = append(qd.Answers, dto.AnswerOptionDTO{AnswerID: a.ID, Text: a.Text})
		}
		detail.Questions = append(detail.Questions, qd)
	}
	return detail
}

func toResultDTOs(results []model.QuizResult) []dto.ResultDTO {
	dtos := make([]dto.ResultDTO, 0, len(results))
	for _, r := range results {
		dtos = append(dtos, dto.ResultDTO{
			UserID:  r.UserID,
			QuizID:  r.QuizID,
			Score:   r.Score,
			Passed:  r.Passed,
			TakenAt: r.TakenAt,
		})
	}
	return dtos
}
