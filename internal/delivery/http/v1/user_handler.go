package v1

import (
	"net/http"

	"go-skillstack-backend/internal/delivery/http/response"
	"go-skillstack-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUC domain.UserUsecase
}

func NewUserHandler(protected *gin.RouterGroup, userUC domain.UserUsecase) {
	handler := &UserHandler{userUC: userUC}

	users := protected.Group("/users")
	{
		users.GET("/me", handler.Me)
		users.PATCH("/me", handler.UpdateProfile)
		users.PATCH("/me/password", handler.UpdatePassword)
		users.PATCH("/me/email", handler.UpdateEmail)
		users.DELETE("/me", handler.DeleteAccount)
	}
}

type UpdateProfileRequest struct {
	FirstName    *string             `json:"firstName" binding:"omitempty,notblank"`
	LastName     *string             `json:"lastName" binding:"omitempty,notblank"`
	JobTitle     *string             `json:"jobTitle"`
	ProfileImage *string             `json:"profileImage" binding:"omitempty,url"`
	UserBio      *string             `json:"userBio"`
	SocialLinks  *domain.SocialLinks `json:"socialLinks"`
}

type UpdatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
}

type UpdateEmailRequest struct {
	NewEmail string `json:"newEmail" binding:"required,email"`
}

// Me godoc
// @Summary      Current user profile
// @Description  Return the authenticated account plus per-resource counts
// @Tags         users
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /users/me [get]
// @Security     BearerAuth
func (h *UserHandler) Me(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	profile, err := h.userUC.GetProfile(c, userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile retrieved", profile)
}

// UpdateProfile godoc
// @Summary      Update profile
// @Description  Partial profile update; omitted fields are left unchanged
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        profile  body      UpdateProfileRequest  true  "Fields to change"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /users/me [patch]
// @Security     BearerAuth
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	user, err := h.userUC.UpdateProfile(c, userID, &domain.UpdateUserInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		JobTitle:     req.JobTitle,
		ProfileImage: req.ProfileImage,
		UserBio:      req.UserBio,
		SocialLinks:  req.SocialLinks,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated", user)
}

// UpdatePassword godoc
// @Summary      Change password
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        password  body      UpdatePasswordRequest  true  "Current and new password"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /users/me/password [patch]
// @Security     BearerAuth
func (h *UserHandler) UpdatePassword(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	var req UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	if err := h.userUC.UpdatePassword(c, userID, req.CurrentPassword, req.NewPassword); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Password updated", nil)
}

// UpdateEmail godoc
// @Summary      Change login email
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        email  body      UpdateEmailRequest  true  "New email"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /users/me/email [patch]
// @Security     BearerAuth
func (h *UserHandler) UpdateEmail(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	var req UpdateEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	if err := h.userUC.UpdateEmail(c, userID, req.NewEmail); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Email updated", nil)
}

// DeleteAccount godoc
// @Summary      Delete account
// @Description  Remove the account and everything it owns
// @Tags         users
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /users/me [delete]
// @Security     BearerAuth
func (h *UserHandler) DeleteAccount(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	if err := h.userUC.DeleteAccount(c, userID); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Account deleted", nil)
}
