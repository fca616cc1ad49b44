package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/securinets-fst/securiquiz/internal/dto"
	"github.com/securinets-fst/securiquiz/internal/model"
	"github.com/securinets-fst/securiquiz/internal/repository"
	"github.com/securinets-fst/securiquiz/internal/service"
)

const (
	ctxUserID = "userID"
	ctxRole   = "role"
)

// RequireAuth validates the bearer token and stores the (user_id, role) pair
// in the request context. The role is re-read from the user table rather
// than trusted from the claims, so a ban or role change takes effect on the
// next request, not at the next token issuance.
func RequireAuth(tokens service.TokenService, users repository.UserRepository) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "missing or malformed Authorization header"})
			return
		}
		claims, err := tokens.Parse(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "invalid or expired token"})
			return
		}
		user, err := users.FindByID(claims.UserID)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "invalid or expired token"})
			return
		}
		if user.Role == model.RoleBanned {
			ctx.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Message: "account is banned"})
			return
		}
		ctx.Set(ctxUserID, user.ID)
		ctx.Set(ctxRole, user.Role)
		ctx.Next()
	}
}

// RequireAdmin runs after RequireAuth and rejects non-admin roles.
func RequireAdmin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if CurrentRole(ctx) != model.RoleAdmin {
			ctx.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Message: "admin access required"})
			return
		}
		ctx.Next()
	}
}

func CurrentUserID(ctx *gin.Context) uint {
	if v, ok := ctx.Get(ctxUserID); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

func CurrentRole(ctx *gin.Context) string {
	if v, ok := ctx.Get(ctxRole); ok {
		if role, ok := v.(string); ok {
			return role
		}
	}
	return ""
}
