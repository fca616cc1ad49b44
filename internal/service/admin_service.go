package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/securinets-fst/securiquiz/internal/apperror"
	"github.com/securinets-fst/securiquiz/internal/dto"
	"github.com/securinets-fst/securiquiz/internal/model"
	"github.com/securinets-fst/securiquiz/internal/repository"
)

// AdminService manages quizzes and users on behalf of admins. Every mutation
// leaves an audit row.
type AdminService interface {
	CreateQuiz(adminID uint, req dto.QuizCreateDTO) (*dto.QuizCreatedDTO, error)
	DeleteQuiz(adminID, quizID uint) error
	ListUsers() ([]dto.UserDTO, error)
	BanUser(adminID, userID uint) error
	UnbanUser(adminID, userID uint) error
	ListResults() ([]dto.ResultDTO, error)
	RecentLog(limit int) ([]dto.AdminLogDTO, error)
}

type adminService struct {
	quizRepo   repository.QuizRepository
	userRepo   repository.UserRepository
	resultRepo repository.ResultRepository
	logRepo    repository.AdminLogRepository
}

func NewAdminService(
	quizRepo repository.QuizRepository,
	userRepo repository.UserRepository,
	resultRepo repository.ResultRepository,
	logRepo repository.AdminLogRepository,
) AdminService {
	return &adminService{quizRepo: quizRepo, userRepo: userRepo, resultRepo: resultRepo, logRepo: logRepo}
}

func (s *adminService) CreateQuiz(adminID uint, req dto.QuizCreateDTO) (*dto.QuizCreatedDTO, error) {
	if len(req.Questions) == 0 {
		return nil, apperror.InvalidInput("a quiz needs at least one question")
	}
	if req.TimeLimitMinutes != nil && *req.TimeLimitMinutes <= 0 {
		return nil, apperror.InvalidInput("time limit must be positive when set")
	}

	quiz := model.Quiz{
		Title:            req.Title,
		Description:      req.Description,
		TimeLimitMinutes: req.TimeLimitMinutes,
	}
	for i, qDto := range req.Questions {
		if len(qDto.Answers) < 2 {
			return nil, apperror.InvalidInput(fmt.Sprintf("question %d needs at least two answer options", i+1))
		}
		if qDto.Points != nil && *qDto.Points < 0 {
			return nil, apperror.InvalidInput(fmt.Sprintf("question %d has negative points", i+1))
		}
		hasCorrect := false
		question := model.Question{
			Title:       qDto.Title,
			Description: qDto.Description,
			Points:      qDto.Points,
			OrderInQuiz: qDto.OrderInQuiz,
		}
		if question.OrderInQuiz == 0 {
			question.OrderInQuiz = i + 1
		}
		for _, aDto := range qDto.Answers {
			if aDto.IsCorrect {
				hasCorrect = true
			}
			question.Answers = append(question.Answers, model.Answer{Text: aDto.Text, IsCorrect: aDto.IsCorrect})
		}
		if !hasCorrect {
			return nil, apperror.InvalidInput(fmt.Sprintf("question %d has no correct answer", i+1))
		}
		quiz.Questions = append(quiz.Questions, question)
	}

	if err := s.quizRepo.Create(&quiz); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.Conflict("a quiz with this title already exists")
		}
		log.Error().Err(err).Str("title", req.Title).Msg("CreateQuiz: database error")
		return nil, apperror.Transient("could not create quiz", err)
	}

	s.audit(adminID, "create_quiz", "quiz", quiz.ID, quiz.Title)
	return &dto.QuizCreatedDTO{Ok: true, QuizID: quiz.ID, Title: quiz.Title}, nil
}

func (s *adminService) DeleteQuiz(adminID, quizID uint) error {
	quiz, err := s.quizRepo.FindByID(quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("quiz not found")
		}
		log.Error().Err(err).Uint("quizID", quizID).Msg("DeleteQuiz: lookup failed")
		return apperror.Transient("could not delete quiz", err)
	}
	if err := s.quizRepo.Delete(quizID); err != nil {
		log.Error().Err(err).Uint("quizID", quizID).Msg("DeleteQuiz: database error")
		return apperror.Transient("could not delete quiz", err)
	}
	s.audit(adminID, "delete_quiz", "quiz", quizID, quiz.Title)
	return nil
}

func (s *adminService) ListUsers() ([]dto.UserDTO, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("ListUsers: database error")
		return nil, apperror.Transient("could not list users", err)
	}
	var dtos []dto.UserDTO
	if err := copier.Copy(&dtos, &users); err != nil {
		log.Error().Err(err).Msg("ListUsers: failed to copy users to DTOs")
		return nil, apperror.Transient("could not prepare response", err)
	}
	return dtos, nil
}

func (s *adminService) BanUser(adminID, userID uint) error {
	return s.setRole(adminID, userID, model.RoleBanned, "ban_user")
}

func (s *adminService) UnbanUser(adminID, userID uint) error {
	return s.setRole(adminID, userID, model.RoleMember, "unban_user")
}

func (s *adminService) setRole(adminID, userID uint, role, action string) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("user not found")
		}
		log.Error().Err(err).Uint("userID", userID).Msg("setRole: lookup failed")
		return apperror.Transient("could not update user", err)
	}
	if user.Role == model.RoleAdmin {
		return apperror.Unauthorized("admins cannot be banned")
	}
	if user.Role == role {
		return apperror.Conflict("user already has this role")
	}
	if err := s.userRepo.UpdateRole(userID, role); err != nil {
		log.Error().Err(err).Uint("userID", userID).Str("role", role).Msg("setRole: database error")
		return apperror.Transient("could not update user", err)
	}
	s.audit(adminID, action, "user", userID, user.Email)
	return nil
}

func (s *adminService) ListResults() ([]dto.ResultDTO, error) {
	results, err := s.resultRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("ListResults: database error")
		return nil, apperror.Transient("could not list results", err)
	}
	return toResultDTOs(results), nil
}

func (s *adminService) RecentLog(limit int) ([]dto.AdminLogDTO, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	entries, err := s.logRepo.FindRecent(limit)
	if err != nil {
		log.Error().Err(err).Msg("RecentLog: database error")
		return nil, apperror.Transient("could not load admin log", err)
	}
	var dtos []dto.AdminLogDTO
	if err := copier.Copy(&dtos, &entries); err != nil {
		log.Error().Err(err).Msg("RecentLog: failed to copy entries to DTOs")
		return nil, apperror.Transient("could not prepare response", err)
	}
	return dtos, nil
}

// audit is best-effort: a failed log write is reported in the logs but never
// fails the admin operation it describes.
func (s *adminService) audit(adminID uint, action, targetType string, targetID uint, detail string) {
	entry := &model.AdminLog{
		AdminID:    adminID,
		Action:     action,
		TargetType: targetType,
		TargetID:   targetID,
		Detail:     detail,
	}
	if err := s.logRepo.Create(entry); err != nil {
		log.Error().Err(err).Str("action", action).Uint("targetID", targetID).Msg("Admin audit write failed")
	}
}
