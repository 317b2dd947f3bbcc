package middleware

import (
	"printshop/internal/app/ds"
	"printshop/internal/app/role"

	"github.com/gin-gonic/gin"
)

const (
	ctxStaffID   = "staffID"
	ctxStaffRole = "staffRole"
	ctxToken     = "staffToken"
)

func setStaff(c *gin.Context, claims *ds.JWTClaims) {
	c.Set(ctxStaffID, claims.StaffID)
	c.Set(ctxStaffRole, claims.Role)
	c.Set(ctxToken, claims)
}

// StaffFromContext returns the authenticated staff member set by WithAuthCheck.
func StaffFromContext(c *gin.Context) (uint, role.Role, bool) {
	id, ok := c.Get(ctxStaffID)
	if !ok {
		return 0, role.Staff, false
	}
	r, _ := c.Get(ctxStaffRole)
	staffID, ok := id.(uint)
	staffRole, _ := r.(role.Role)
	return staffID, staffRole, ok
}

// ClaimsFromContext returns the parsed token of the current request.
func ClaimsFromContext(c *gin.Context) (*ds.JWTClaims, bool) {
	v, ok := c.Get(ctxToken)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*ds.JWTClaims)
	return claims, ok
}
