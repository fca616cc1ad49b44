package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/securinets-fst/securiquiz/internal/apperror"
	"github.com/securinets-fst/securiquiz/internal/dto"
	"github.com/securinets-fst/securiquiz/internal/service"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

func fail(ctx *gin.Context, err error) {
	ctx.JSON(apperror.HTTPStatus(err), dto.ErrorResponse{Message: apperror.Message(err)})
}

// Signup godoc
// @Summary Request account creation
// @Description Starts a signup: a 5-digit verification code is mailed to the address. Nothing persistent is created until the code is verified.
// @Tags Auth
// @Accept json
// @Produce json
// @Param signup body dto.SignupRequest true "Signup data"
// @Success 200 {object} dto.OkResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Router /signup [post]
func (c *AuthController) Signup(ctx *gin.Context) {
	var req dto.SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid request body", Details: []string{err.Error()}})
		return
	}
	if err := c.authService.Signup(req); err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.OkResponse{Ok: true, Message: "verification code sent"})
}

// Verify godoc
// @Summary Verify a signup code
// @Description Completes registration: checks the mailed code, creates the user and returns a bearer token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param verify body dto.VerifyRequest true "Email and code"
// @Success 200 {object} dto.AuthResponse
// @Failure 401 {object} dto.ErrorResponse "Wrong code"
// @Failure 404 {object} dto.ErrorResponse "No pending signup or code expired"
// @Failure 409 {object} dto.ErrorResponse "Locked after too many attempts"
// @Router /verify [post]
func (c *AuthController) Verify(ctx *gin.Context) {
	var req dto.VerifyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid request body", Details: []string{err.Error()}})
		return
	}
	resp, err := c.authService.Verify(req)
	if err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Login godoc
// @Summary Sign in
// @Tags Auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.AuthResponse
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 403 {object} dto.ErrorResponse "Account banned"
// @Router /login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid request body", Details: []string{err.Error()}})
		return
	}
	resp, err := c.authService.Login(req)
	if err != nil {
		log.Warn().Err(err).Msg("Login rejected")
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
