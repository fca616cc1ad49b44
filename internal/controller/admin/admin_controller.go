package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/securinets-fst/securiquiz/internal/apperror"
	"github.com/securinets-fst/securiquiz/internal/dto"
	"github.com/securinets-fst/securiquiz/internal/middleware"
	"github.com/securinets-fst/securiquiz/internal/service"
)

type AdminController struct {
	adminService service.AdminService
}

func NewAdminController(adminService service.AdminService) *AdminController {
	return &AdminController{adminService: adminService}
}

func fail(ctx *gin.Context, err error) {
	ctx.JSON(apperror.HTTPStatus(err), dto.ErrorResponse{Message: apperror.Message(err)})
}

func idParam(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid " + name})
		return 0, false
	}
	return uint(id), true
}

// CreateQuiz godoc
// @Summary Create a quiz with its questions and answer options
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param quiz body dto.QuizCreateDTO true "Quiz definition"
// @Success 201 {object} dto.QuizCreatedDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Title already taken"
// @Router /admin/quizzes [post]
func (c *AdminController) CreateQuiz(ctx *gin.Context) {
	var req dto.QuizCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid request body", Details: []string{err.Error()}})
		return
	}

	created, err := c.adminService.CreateQuiz(middleware.CurrentUserID(ctx), req)
	if err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// DeleteQuiz godoc
// @Summary Delete a quiz
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param quiz_id path int true "Quiz ID"
// @Success 200 {object} dto.OkResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/quizzes/{quiz_id} [delete]
func (c *AdminController) DeleteQuiz(ctx *gin.Context) {
	quizID, ok := idParam(ctx, "quiz_id")
	if !ok {
		return
	}
	if err := c.adminService.DeleteQuiz(middleware.CurrentUserID(ctx), quizID); err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.OkResponse{Ok: true})
}

// ListUsers godoc
// @Summary List all registered users
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.UserDTO
// @Router /admin/users [get]
func (c *AdminController) ListUsers(ctx *gin.Context) {
	users, err := c.adminService.ListUsers()
	if err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, users)
}

// BanUser godoc
// @Summary Ban a member
// @Description Banned users keep their account but every authenticated call is refused. Admins cannot be banned.
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param user_id path int true "User ID"
// @Success 200 {object} dto.OkResponse
// @Failure 403 {object} dto.ErrorResponse "Target is an admin"
// @Failure 409 {object} dto.ErrorResponse "Already banned"
// @Router /admin/users/{user_id}/ban [post]
func (c *AdminController) BanUser(ctx *gin.Context) {
	userID, ok := idParam(ctx, "user_id")
	if !ok {
		return
	}
	if err := c.adminService.BanUser(middleware.CurrentUserID(ctx), userID); err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.OkResponse{Ok: true})
}

// UnbanUser godoc
// @Summary Lift a ban
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param user_id path int true "User ID"
// @Success 200 {object} dto.OkResponse
// @Failure 409 {object} dto.ErrorResponse "User is not banned"
// @Router /admin/users/{user_id}/unban [post]
func (c *AdminController) UnbanUser(ctx *gin.Context) {
	userID, ok := idParam(ctx, "user_id")
	if !ok {
		return
	}
	if err := c.adminService.UnbanUser(middleware.CurrentUserID(ctx), userID); err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.OkResponse{Ok: true})
}

// ListResults godoc
// @Summary List every stored quiz result
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.ResultDTO
// @Router /admin/results [get]
func (c *AdminController) ListResults(ctx *gin.Context) {
	results, err := c.adminService.ListResults()
	if err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, results)
}

// RecentLog godoc
// @Summary Read the most recent admin audit entries
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max entries (default 100, capped at 500)"
// @Success 200 {array} dto.AdminLogDTO
// @Router /admin/log [get]
func (c *AdminController) RecentLog(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "100"))
	entries, err := c.adminService.RecentLog(limit)
	if err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, entries)
}
