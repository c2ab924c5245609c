package v1

import (
	"net/http"

	"go-skillstack-backend/internal/delivery/http/response"
	"go-skillstack-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

func NewAuthHandler(public *gin.RouterGroup, authUC domain.AuthUsecase, loginLimiter gin.HandlerFunc) {
	handler := &AuthHandler{authUC: authUC}

	auth := public.Group("/auth")
	{
		auth.POST("/register", handler.Register)
		auth.POST("/login", loginLimiter, handler.Login)
	}
}

type RegisterRequest struct {
	Email           string              `json:"email" binding:"required,email"`
	Password        string              `json:"password" binding:"required,min=8"`
	ConfirmPassword string              `json:"confirmPassword" binding:"required"`
	FirstName       string              `json:"firstName" binding:"required,notblank"`
	LastName        string              `json:"lastName" binding:"required,notblank"`
	JobTitle        string              `json:"jobTitle"`
	ProfileImage    string              `json:"profileImage" binding:"omitempty,url"`
	UserBio         string              `json:"userBio"`
	SocialLinks     *domain.SocialLinks `json:"socialLinks"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register godoc
// @Summary      Register a new account
// @Description  Create a user account with email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        register  body      RegisterRequest  true  "Registration details"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	user := &domain.User{
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		JobTitle:     toPtr(req.JobTitle),
		ProfileImage: toPtr(req.ProfileImage),
		UserBio:      toPtr(req.UserBio),
		SocialLinks:  req.SocialLinks,
	}

	created, err := h.authUC.Register(c, user, req.Password, req.ConfirmPassword)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "User registered", created)
}

// Login godoc
// @Summary      Log in
// @Description  Exchange email and password for a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        login  body      LoginRequest  true  "Credentials"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	result, err := h.authUC.Login(c, req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Login successful", result)
}
