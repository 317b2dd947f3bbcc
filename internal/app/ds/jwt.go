package ds

import (
	"printshop/internal/app/role"

	"github.com/golang-jwt/jwt"
)

type JWTClaims struct {
	jwt.StandardClaims
	StaffID uint      `json:"staff_id"`
	Role    role.Role `json:"role"`
}
