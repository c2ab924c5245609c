package v1

import (
	"net/http"

	"go-skillstack-backend/internal/delivery/http/response"
	"go-skillstack-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type SkillHandler struct {
	skillUC domain.SkillUsecase
}

func NewSkillHandler(protected *gin.RouterGroup, skillUC domain.SkillUsecase) {
	handler := &SkillHandler{skillUC: skillUC}

	skills := protected.Group("/skills")
	{
		skills.GET("", handler.List)
		skills.GET("/:id", handler.Get)
		skills.POST("", handler.Create)
		skills.PATCH("/:id", handler.Update)
		skills.DELETE("/:id", handler.Delete)
	}
}

type CreateSkillRequest struct {
	SkillName         string  `json:"skillName" binding:"required,notblank"`
	ProficiencyLevel  string  `json:"proficiencyLevel" binding:"required,oneof=Beginner Novice Intermediate Advanced Expert"`
	SkillCategory     string  `json:"skillCategory" binding:"required,notblank"`
	SkillDescription  string  `json:"skillDescription"`
	YearsOfExperience *int    `json:"yearsOfExperience" binding:"omitempty,gte=0"`
	ProjectIDs        []int64 `json:"projectIds"`
}

type UpdateSkillRequest struct {
	SkillName         *string `json:"skillName" binding:"omitempty,notblank"`
	ProficiencyLevel  *string `json:"proficiencyLevel" binding:"omitempty,oneof=Beginner Novice Intermediate Advanced Expert"`
	SkillCategory     *string `json:"skillCategory" binding:"omitempty,notblank"`
	SkillDescription  *string `json:"skillDescription"`
	YearsOfExperience *int    `json:"yearsOfExperience" binding:"omitempty,gte=0"`
	ProjectIDs        []int64 `json:"projectIds"`
}

// Create godoc
// @Summary      Create a skill
// @Description  Add a skill, optionally linked to existing projects
// @Tags         skills
// @Accept       json
// @Produce      json
// @Param        skill  body      CreateSkillRequest  true  "Skill JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /skills [post]
// @Security     BearerAuth
func (h *SkillHandler) Create(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	var req CreateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	skill := &domain.Skill{
		SkillName:         req.SkillName,
		ProficiencyLevel:  domain.ProficiencyLevel(req.ProficiencyLevel),
		SkillCategory:     req.SkillCategory,
		SkillDescription:  toPtr(req.SkillDescription),
		YearsOfExperience: req.YearsOfExperience,
	}

	created, err := h.skillUC.Create(c, userID, skill, req.ProjectIDs)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Skill created", created)
}

// List godoc
// @Summary      List skills
// @Description  All skills owned by the caller, with linked projects
// @Tags         skills
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /skills [get]
// @Security     BearerAuth
func (h *SkillHandler) List(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	skills, err := h.skillUC.List(c, userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Skill list", skills)
}

// Get godoc
// @Summary      Get a skill
// @Tags         skills
// @Produce      json
// @Param        id   path      int  true  "Skill ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /skills/{id} [get]
// @Security     BearerAuth
func (h *SkillHandler) Get(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	skill, err := h.skillUC.Get(c, id, userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Skill retrieved", skill)
}

// Update godoc
// @Summary      Update a skill
// @Description  Partial update; a projectIds array replaces the whole link set
// @Tags         skills
// @Accept       json
// @Produce      json
// @Param        id     path      int                 true  "Skill ID"
// @Param        skill  body      UpdateSkillRequest  true  "Fields to change"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /skills/{id} [patch]
// @Security     BearerAuth
func (h *SkillHandler) Update(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req UpdateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	in := &domain.UpdateSkillInput{
		SkillName:         req.SkillName,
		SkillCategory:     req.SkillCategory,
		SkillDescription:  req.SkillDescription,
		YearsOfExperience: req.YearsOfExperience,
		ProjectIDs:        req.ProjectIDs,
	}
	if req.ProficiencyLevel != nil {
		level := domain.ProficiencyLevel(*req.ProficiencyLevel)
		in.ProficiencyLevel = &level
	}

	skill, err := h.skillUC.Update(c, id, userID, in)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Skill updated", skill)
}

// Delete godoc
// @Summary      Delete a skill
// @Tags         skills
// @Produce      json
// @Param        id   path      int  true  "Skill ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /skills/{id} [delete]
// @Security     BearerAuth
func (h *SkillHandler) Delete(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.skillUC.Delete(c, id, userID); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Skill deleted", gin.H{"id": id})
}
