package user

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/securinets-fst/securiquiz/internal/dto"
	"github.com/securinets-fst/securiquiz/internal/middleware"
	"github.com/securinets-fst/securiquiz/internal/service"
)

type QuizController struct {
	quizService    service.QuizService
	sessionService service.SessionService
}

func NewQuizController(quizService service.QuizService, sessionService service.SessionService) *QuizController {
	return &QuizController{quizService: quizService, sessionService: sessionService}
}

func quizIDParam(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("quiz_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid quiz ID"})
		return 0, false
	}
	return uint(id), true
}

// GetAllQuizzes godoc
// @Summary List available quizzes
// @Tags Quizzes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.QuizSummaryDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /quizzes [get]
func (c *QuizController) GetAllQuizzes(ctx *gin.Context) {
	quizzes, err := c.quizService.GetAllQuizzes()
	if err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, quizzes)
}

// GetQuizDetails godoc
// @Summary Get one quiz with its questions
// @Description Questions come back in quiz order; answer options carry no correctness information.
// @Tags Quizzes
// @Produce json
// @Security BearerAuth
// @Param quiz_id path int true "Quiz ID"
// @Success 200 {object} dto.QuizDetailDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /quizzes/{quiz_id} [get]
func (c *QuizController) GetQuizDetails(ctx *gin.Context) {
	quizID, ok := quizIDParam(ctx)
	if !ok {
		return
	}
	detail, err := c.quizService.GetQuizDetails(quizID)
	if err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, detail)
}

// StartSession godoc
// @Summary Start or resume a timed quiz session
// @Description Without force, an unexpired active session is returned unchanged (same session_id, same expiry). With force, any running session is expired and a fresh one starts. The response carries start/expiry/server-now epoch milliseconds so clients can compensate for clock skew.
// @Tags Sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param quiz_id path int true "Quiz ID"
// @Param start body dto.StartSessionRequest false "Options"
// @Success 200 {object} dto.SessionStartDTO
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Failure 409 {object} dto.ErrorResponse "Quiz already completed"
// @Router /quizzes/{quiz_id}/start [post]
func (c *QuizController) StartSession(ctx *gin.Context) {
	quizID, ok := quizIDParam(ctx)
	if !ok {
		return
	}
	var req dto.StartSessionRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid request body", Details: []string{err.Error()}})
			return
		}
	}

	userID := middleware.CurrentUserID(ctx)
	resp, err := c.sessionService.Start(userID, quizID, req.Force)
	if err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// SaveAnswer godoc
// @Summary Save one answer into the running session
// @Description Idempotent upsert keyed by (session, question). A null answerID clears the selection.
// @Tags Sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param quiz_id path int true "Quiz ID"
// @Param answer body dto.SaveAnswerRequest true "Selection"
// @Success 200 {object} dto.OkResponse
// @Failure 403 {object} dto.ErrorResponse "Session belongs to someone else"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 409 {object} dto.ErrorResponse "Session not active"
// @Failure 410 {object} dto.ErrorResponse "Session expired"
// @Router /quizzes/{quiz_id}/answer [post]
func (c *QuizController) SaveAnswer(ctx *gin.Context) {
	quizID, ok := quizIDParam(ctx)
	if !ok {
		return
	}
	var req dto.SaveAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid request body", Details: []string{err.Error()}})
		return
	}

	userID := middleware.CurrentUserID(ctx)
	if err := c.sessionService.SaveAnswer(userID, quizID, req); err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.OkResponse{Ok: true})
}

// Submit godoc
// @Summary Submit the session for grading
// @Description Grades the submission, stores the single authoritative result and finishes the session. Score and per-question detail come back; pass/fail is only visible through result queries.
// @Tags Sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param quiz_id path int true "Quiz ID"
// @Param submission body dto.SubmitRequest true "Session and answers"
// @Success 200 {object} dto.SubmitResultDTO
// @Failure 400 {object} dto.ErrorResponse "Empty submission"
// @Failure 409 {object} dto.ErrorResponse "Already submitted"
// @Failure 410 {object} dto.ErrorResponse "Session expired"
// @Router /quizzes/{quiz_id}/submit [post]
func (c *QuizController) Submit(ctx *gin.Context) {
	quizID, ok := quizIDParam(ctx)
	if !ok {
		return
	}
	var req dto.SubmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid request body", Details: []string{err.Error()}})
		return
	}

	userID := middleware.CurrentUserID(ctx)
	log.Info().Uint("userID", userID).Uint("quizID", quizID).Int("answerCount", len(req.Answers)).Msg("Quiz submission received")

	resp, err := c.sessionService.Submit(userID, quizID, req)
	if err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetMyResults godoc
// @Summary List the caller's finished quizzes
// @Tags Quizzes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.ResultDTO
// @Router /my-results [get]
func (c *QuizController) GetMyResults(ctx *gin.Context) {
	userID := middleware.CurrentUserID(ctx)
	results, err := c.quizService.GetMyResults(userID)
	if err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, results)
}
