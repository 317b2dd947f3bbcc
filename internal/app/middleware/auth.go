package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"printshop/internal/app/config"
	"printshop/internal/app/ds"
	"printshop/internal/app/role"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/sirupsen/logrus"
)

// Blacklist holds tokens revoked by logout.
type Blacklist interface {
	WriteJWTToBlacklist(ctx context.Context, jwtStr string, ttl time.Duration) error
	IsJWTBlacklisted(ctx context.Context, jwtStr string) (bool, error)
}

type AuthMiddleware struct {
	Blacklist Blacklist
	Config    *config.Config
}

func NewAuthMiddleware(blacklist Blacklist, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{
		Blacklist: blacklist,
		Config:    cfg,
	}
}

// BearerToken strips the "Bearer " prefix from the Authorization header.
func BearerToken(c *gin.Context) string {
	return strings.TrimSpace(strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer "))
}

// WithAuthCheck lets through staff whose token is valid, not revoked and,
// when roles are given, carries one of them.
func (am *AuthMiddleware) WithAuthCheck(assignedRoles ...role.Role) gin.HandlerFunc {
	return func(gCtx *gin.Context) {
		jwtStr := BearerToken(gCtx)
		if jwtStr == "" {
			gCtx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		revoked, err := am.Blacklist.IsJWTBlacklisted(gCtx.Request.Context(), jwtStr)
		if err != nil {
			logrus.WithError(err).Error("blacklist lookup failed")
			gCtx.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		if revoked {
			gCtx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		claims, err := am.ParseToken(jwtStr)
		if err != nil {
			gCtx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		if len(assignedRoles) > 0 && !hasRequiredRole(claims.Role, assignedRoles) {
			gCtx.AbortWithStatus(http.StatusForbidden)
			return
		}

		setStaff(gCtx, claims)

		gCtx.Next()
	}
}

// ParseToken validates the signature and expiry of a staff token.
func (am *AuthMiddleware) ParseToken(tokenString string) (*ds.JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &ds.JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != am.Config.JWT.SigningMethod.Alg() {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(am.Config.JWT.Token), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*ds.JWTClaims)
	if !ok || !token.Valid {
		return nil, jwt.ErrSignatureInvalid
	}
	return claims, nil
}

func hasRequiredRole(userRole role.Role, requiredRoles []role.Role) bool {
	for _, requiredRole := range requiredRoles {
		if userRole == requiredRole {
			return true
		}
	}
	return false
}
