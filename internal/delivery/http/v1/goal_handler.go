package v1

import (
	"net/http"
	"time"

	"go-skillstack-backend/internal/delivery/http/response"
	"go-skillstack-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type GoalHandler struct {
	goalUC domain.GoalUsecase
}

func NewGoalHandler(protected *gin.RouterGroup, goalUC domain.GoalUsecase) {
	handler := &GoalHandler{goalUC: goalUC}

	goals := protected.Group("/goals")
	{
		goals.GET("", handler.List)
		goals.GET("/:id", handler.Get)
		goals.POST("", handler.Create)
		goals.PATCH("/:id", handler.Update)
		goals.DELETE("/:id", handler.Delete)
	}
}

type CreateGoalRequest struct {
	GoalTitle       string  `json:"goalTitle" binding:"required,notblank"`
	GoalDescription string  `json:"goalDescription"`
	GoalStatus      string  `json:"goalStatus" binding:"required,oneof='Not Started' 'In Progress' Completed"`
	GoalPriority    string  `json:"goalPriority" binding:"required,oneof=Low Medium High"`
	GoalTimeLine    string  `json:"goalTimeLine" binding:"required,oneof=Short-Term Med-Term Long-Term"`
	StartDate       string  `json:"startDate" binding:"required,datetime=2006-01-02"`
	DueDate         string  `json:"dueDate" binding:"required,datetime=2006-01-02"`
	Category        string  `json:"category" binding:"required,notblank"`
	Progress        *int    `json:"progress" binding:"omitempty,gte=0,lte=100"`
	GoalNote        string  `json:"goalNote"`
	SkillIDs        []int64 `json:"skillIds"`
}

type UpdateGoalRequest struct {
	GoalTitle       *string `json:"goalTitle" binding:"omitempty,notblank"`
	GoalDescription *string `json:"goalDescription"`
	GoalStatus      *string `json:"goalStatus" binding:"omitempty,oneof='Not Started' 'In Progress' Completed"`
	GoalPriority    *string `json:"goalPriority" binding:"omitempty,oneof=Low Medium High"`
	GoalTimeLine    *string `json:"goalTimeLine" binding:"omitempty,oneof=Short-Term Med-Term Long-Term"`
	StartDate       *string `json:"startDate" binding:"omitempty,datetime=2006-01-02"`
	DueDate         *string `json:"dueDate" binding:"omitempty,datetime=2006-01-02"`
	Category        *string `json:"category" binding:"omitempty,notblank"`
	Progress        *int    `json:"progress" binding:"omitempty,gte=0,lte=100"`
	GoalNote        *string `json:"goalNote"`
	SkillIDs        []int64 `json:"skillIds"`
}

// Create godoc
// @Summary      Create a goal
// @Description  Add a goal, optionally linked to existing skills
// @Tags         goals
// @Accept       json
// @Produce      json
// @Param        goal  body      CreateGoalRequest  true  "Goal JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /goals [post]
// @Security     BearerAuth
func (h *GoalHandler) Create(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	var req CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	startDate, _ := time.Parse(dateLayout, req.StartDate)
	dueDate, _ := time.Parse(dateLayout, req.DueDate)

	goal := &domain.Goal{
		GoalTitle:       req.GoalTitle,
		GoalDescription: toPtr(req.GoalDescription),
		GoalStatus:      domain.Status(req.GoalStatus),
		GoalPriority:    domain.Priority(req.GoalPriority),
		GoalTimeLine:    domain.TimeLine(req.GoalTimeLine),
		StartDate:       startDate,
		DueDate:         dueDate,
		Category:        req.Category,
		GoalNote:        toPtr(req.GoalNote),
	}
	if req.Progress != nil {
		goal.Progress = *req.Progress
	}

	created, err := h.goalUC.Create(c, userID, goal, req.SkillIDs)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Goal created", created)
}

// List godoc
// @Summary      List goals
// @Description  All goals owned by the caller, with linked skills
// @Tags         goals
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /goals [get]
// @Security     BearerAuth
func (h *GoalHandler) List(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	goals, err := h.goalUC.List(c, userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Goal list", goals)
}

// Get godoc
// @Summary      Get a goal
// @Tags         goals
// @Produce      json
// @Param        id   path      int  true  "Goal ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /goals/{id} [get]
// @Security     BearerAuth
func (h *GoalHandler) Get(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	goal, err := h.goalUC.Get(c, id, userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Goal retrieved", goal)
}

// Update godoc
// @Summary      Update a goal
// @Description  Partial update; a skillIds array replaces the whole link set
// @Tags         goals
// @Accept       json
// @Produce      json
// @Param        id    path      int                true  "Goal ID"
// @Param        goal  body      UpdateGoalRequest  true  "Fields to change"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /goals/{id} [patch]
// @Security     BearerAuth
func (h *GoalHandler) Update(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	in := &domain.UpdateGoalInput{
		GoalTitle:       req.GoalTitle,
		GoalDescription: req.GoalDescription,
		Category:        req.Category,
		Progress:        req.Progress,
		GoalNote:        req.GoalNote,
		SkillIDs:        req.SkillIDs,
	}
	if req.GoalStatus != nil {
		status := domain.Status(*req.GoalStatus)
		in.GoalStatus = &status
	}
	if req.GoalPriority != nil {
		priority := domain.Priority(*req.GoalPriority)
		in.GoalPriority = &priority
	}
	if req.GoalTimeLine != nil {
		timeline := domain.TimeLine(*req.GoalTimeLine)
		in.GoalTimeLine = &timeline
	}
	if req.StartDate != nil {
		in.StartDate = parseDate(*req.StartDate)
	}
	if req.DueDate != nil {
		in.DueDate = parseDate(*req.DueDate)
	}

	goal, err := h.goalUC.Update(c, id, userID, in)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Goal updated", goal)
}

// Delete godoc
// @Summary      Delete a goal
// @Tags         goals
// @Produce      json
// @Param        id   path      int  true  "Goal ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /goals/{id} [delete]
// @Security     BearerAuth
func (h *GoalHandler) Delete(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.goalUC.Delete(c, id, userID); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Goal deleted", gin.H{"id": id})
}
