package v1

import (
	"net/http"
	"time"

	"go-skillstack-backend/internal/delivery/http/response"
	"go-skillstack-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

type ProjectHandler struct {
	projectUC domain.ProjectUsecase
}

func NewProjectHandler(protected *gin.RouterGroup, projectUC domain.ProjectUsecase) {
	handler := &ProjectHandler{projectUC: projectUC}

	projects := protected.Group("/projects")
	{
		projects.GET("", handler.List)
		projects.GET("/:id", handler.Get)
		projects.POST("", handler.Create)
		projects.PATCH("/:id", handler.Update)
		projects.DELETE("/:id", handler.Delete)
	}
}

type CreateProjectRequest struct {
	ProjectTitle        string  `json:"projectTitle" binding:"required,notblank"`
	ProjectDescription  string  `json:"projectDescription"`
	Thumbnail           string  `json:"thumbnail" binding:"omitempty,url"`
	ProjectGithubURL    string  `json:"projectGithubURL" binding:"omitempty,url"`
	ProjectLiveURL      string  `json:"projectLiveURL" binding:"omitempty,url"`
	ProjectStatus       string  `json:"projectStatus" binding:"required,oneof='Not Started' 'In Progress' Completed"`
	ProjectStartedDate  string  `json:"projectStartedDate" binding:"omitempty,datetime=2006-01-02"`
	ProjectFinishedDate string  `json:"projectFinishedDate" binding:"omitempty,datetime=2006-01-02"`
	SkillIDs            []int64 `json:"skillIds"`
}

type UpdateProjectRequest struct {
	ProjectTitle        *string `json:"projectTitle" binding:"omitempty,notblank"`
	ProjectDescription  *string `json:"projectDescription"`
	Thumbnail           *string `json:"thumbnail" binding:"omitempty,url"`
	ProjectGithubURL    *string `json:"projectGithubURL" binding:"omitempty,url"`
	ProjectLiveURL      *string `json:"projectLiveURL" binding:"omitempty,url"`
	ProjectStatus       *string `json:"projectStatus" binding:"omitempty,oneof='Not Started' 'In Progress' Completed"`
	ProjectStartedDate  *string `json:"projectStartedDate" binding:"omitempty,datetime=2006-01-02"`
	ProjectFinishedDate *string `json:"projectFinishedDate" binding:"omitempty,datetime=2006-01-02"`
	SkillIDs            []int64 `json:"skillIds"`
}

// parseDate converts an already-validated yyyy-mm-dd string; empty means nil.
func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil
	}
	return &t
}

// Create godoc
// @Summary      Create a project
// @Description  Add a project, optionally linked to existing skills
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        project  body      CreateProjectRequest  true  "Project JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /projects [post]
// @Security     BearerAuth
func (h *ProjectHandler) Create(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	project := &domain.Project{
		ProjectTitle:        req.ProjectTitle,
		ProjectDescription:  toPtr(req.ProjectDescription),
		Thumbnail:           toPtr(req.Thumbnail),
		ProjectGithubURL:    toPtr(req.ProjectGithubURL),
		ProjectLiveURL:      toPtr(req.ProjectLiveURL),
		ProjectStatus:       domain.Status(req.ProjectStatus),
		ProjectStartedDate:  parseDate(req.ProjectStartedDate),
		ProjectFinishedDate: parseDate(req.ProjectFinishedDate),
	}

	created, err := h.projectUC.Create(c, userID, project, req.SkillIDs)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Project created", created)
}

// List godoc
// @Summary      List projects
// @Description  All projects owned by the caller, with linked skills
// @Tags         projects
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /projects [get]
// @Security     BearerAuth
func (h *ProjectHandler) List(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	projects, err := h.projectUC.List(c, userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Project list", projects)
}

// Get godoc
// @Summary      Get a project
// @Tags         projects
// @Produce      json
// @Param        id   path      int  true  "Project ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /projects/{id} [get]
// @Security     BearerAuth
func (h *ProjectHandler) Get(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	project, err := h.projectUC.Get(c, id, userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Project retrieved", project)
}

// Update godoc
// @Summary      Update a project
// @Description  Partial update; a skillIds array replaces the whole link set
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        id       path      int                   true  "Project ID"
// @Param        project  body      UpdateProjectRequest  true  "Fields to change"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /projects/{id} [patch]
// @Security     BearerAuth
func (h *ProjectHandler) Update(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	in := &domain.UpdateProjectInput{
		ProjectTitle:       req.ProjectTitle,
		ProjectDescription: req.ProjectDescription,
		Thumbnail:          req.Thumbnail,
		ProjectGithubURL:   req.ProjectGithubURL,
		ProjectLiveURL:     req.ProjectLiveURL,
		SkillIDs:           req.SkillIDs,
	}
	if req.ProjectStatus != nil {
		status := domain.Status(*req.ProjectStatus)
		in.ProjectStatus = &status
	}
	if req.ProjectStartedDate != nil {
		in.ProjectStartedDate = parseDate(*req.ProjectStartedDate)
	}
	if req.ProjectFinishedDate != nil {
		in.ProjectFinishedDate = parseDate(*req.ProjectFinishedDate)
	}

	project, err := h.projectUC.Update(c, id, userID, in)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Project updated", project)
}

// Delete godoc
// @Summary      Delete a project
// @Tags         projects
// @Produce      json
// @Param        id   path      int  true  "Project ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /projects/{id} [delete]
// @Security     BearerAuth
func (h *ProjectHandler) Delete(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.projectUC.Delete(c, id, userID); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Project deleted", gin.H{"id": id})
}
