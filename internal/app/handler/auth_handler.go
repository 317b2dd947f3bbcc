package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"printshop/internal/app/config"
	"printshop/internal/app/ds"
	"printshop/internal/app/dto"
	"printshop/internal/app/middleware"
	"printshop/internal/app/repository"
	"printshop/internal/app/role"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"golang.org/x/crypto/bcrypt"
)

const tokenIssuer = "printshop"

// StaffStore is the part of the repository staff authentication uses.
type StaffStore interface {
	GetStaffByID(ctx context.Context, id uint) (*ds.Staff, error)
	GetStaffByLogin(ctx context.Context, login string) (*ds.Staff, error)
	CreateStaff(ctx context.Context, login, passwordHash, fullName string, r role.Role) (*ds.Staff, error)
}

type AuthHandler struct {
	Staff     StaffStore
	Blacklist middleware.Blacklist
	Config    *config.Config
}

func NewAuthHandler(staff StaffStore, blacklist middleware.Blacklist, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		Staff:     staff,
		Blacklist: blacklist,
		Config:    cfg,
	}
}

// HashPassword hashes a staff password for storage.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func toStaffResponse(s *ds.Staff) dto.StaffResponse {
	return dto.StaffResponse{
		ID:       s.ID,
		Login:    s.Login,
		FullName: s.FullName,
		Role:     role.Role(s.Role).String(),
	}
}

func (h *AuthHandler) issueToken(s *ds.Staff) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(h.Config.JWT.SigningMethod, ds.JWTClaims{
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: now.Add(h.Config.JWT.ExpiresIn).Unix(),
			IssuedAt:  now.Unix(),
			Issuer:    tokenIssuer,
		},
		StaffID: s.ID,
		Role:    role.Role(s.Role),
	})
	return token.SignedString([]byte(h.Config.JWT.Token))
}

// LoginStaff authenticates a staff member
// @Summary Staff login
// @Description Returns a bearer token for the staff order views
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/auth/login [post]
func (h *AuthHandler) LoginStaff(ctx *gin.Context) {
	var request dto.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		validationResponse(ctx, bindingMessages(err))
		return
	}

	staff, err := h.Staff.GetStaffByLogin(ctx.Request.Context(), request.Login)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		middleware.Logger(ctx).WithError(err).Error("staff lookup failed")
		errorResponse(ctx, http.StatusInternalServerError, "Login failed")
		return
	}
	if staff == nil || bcrypt.CompareHashAndPassword([]byte(staff.Password), []byte(request.Password)) != nil {
		errorResponse(ctx, http.StatusUnauthorized, "Invalid login or password")
		return
	}

	accessToken, err := h.issueToken(staff)
	if err != nil {
		middleware.Logger(ctx).WithError(err).Error("sign token failed")
		errorResponse(ctx, http.StatusInternalServerError, "Login failed")
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Token:     accessToken,
		TokenType: "Bearer",
		ExpiresIn: int(h.Config.JWT.ExpiresIn.Seconds()),
		Staff:     toStaffResponse(staff),
	})
}

// LogoutStaff revokes the current token
// @Summary Staff logout
// @Description Adds the token to the blacklist until it expires
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/auth/logout [post]
func (h *AuthHandler) LogoutStaff(ctx *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(ctx)
	if !ok {
		errorResponse(ctx, http.StatusUnauthorized, "Not authenticated")
		return
	}

	ttl := time.Until(time.Unix(claims.ExpiresAt, 0))
	if ttl > 0 {
		err := h.Blacklist.WriteJWTToBlacklist(ctx.Request.Context(), middleware.BearerToken(ctx), ttl)
		if err != nil {
			middleware.Logger(ctx).WithError(err).Error("blacklist write failed")
			errorResponse(ctx, http.StatusInternalServerError, "Logout failed")
			return
		}
	}

	successResponse(ctx, http.StatusOK, "Logged out", nil)
}

// GetStaffProfile returns the current staff member
// @Summary Staff profile
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.StaffResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/auth/profile [get]
func (h *AuthHandler) GetStaffProfile(ctx *gin.Context) {
	staffID, _, ok := middleware.StaffFromContext(ctx)
	if !ok {
		errorResponse(ctx, http.StatusUnauthorized, "Not authenticated")
		return
	}

	staff, err := h.Staff.GetStaffByID(ctx.Request.Context(), staffID)
	if err != nil {
		errorResponse(ctx, http.StatusNotFound, "Staff member not found")
		return
	}

	ctx.JSON(http.StatusOK, toStaffResponse(staff))
}

// CreateStaff adds a staff account
// @Summary Create a staff account
// @Tags Authentication
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateStaffRequest true "Account"
// @Success 201 {object} dto.StaffResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/auth/staff [post]
func (h *AuthHandler) CreateStaff(ctx *gin.Context) {
	var request dto.CreateStaffRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		validationResponse(ctx, bindingMessages(err))
		return
	}

	hash, err := HashPassword(request.Password)
	if err != nil {
		errorResponse(ctx, http.StatusInternalServerError, "Error creating staff account")
		return
	}

	r := role.Staff
	if request.Admin {
		r = role.Admin
	}

	staff, err := h.Staff.CreateStaff(ctx.Request.Context(), request.Login, hash, request.FullName, r)
	if errors.Is(err, repository.ErrAlreadyExists) {
		errorResponse(ctx, http.StatusConflict, "A staff member with this login already exists")
		return
	}
	if err != nil {
		middleware.Logger(ctx).WithError(err).Error("create staff failed")
		errorResponse(ctx, http.StatusInternalServerError, "Error creating staff account")
		return
	}

	ctx.JSON(http.StatusCreated, toStaffResponse(staff))
}
