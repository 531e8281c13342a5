package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Alden-Crist/Planzee/internal/domain"
	"github.com/Alden-Crist/Planzee/internal/service"
	"github.com/Alden-Crist/Planzee/internal/taskquery"

	"github.com/gin-gonic/gin"
)

type createTaskRequest struct {
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Priority    string               `json:"priority"`
	Completed   domain.CompletedFlag `json:"completed"`
	DueDate     *time.Time           `json:"due_date"`
}

type updateTaskRequest struct {
	Title       *string               `json:"title"`
	Description *string               `json:"description"`
	Priority    *string               `json:"priority"`
	Completed   *domain.CompletedFlag `json:"completed"`
	DueDate     *time.Time            `json:"due_date"`
}

// ListTasks returns the caller's tasks, optionally filtered and sorted via
// query params, plus summary stats computed over the full owned set.
func (h *Handler) ListTasks(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	filter, ok := taskquery.ParseFilter(c.Query("filter"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown filter"})
		return
	}
	sortBy, ok := taskquery.ParseSort(c.Query("sort"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown sort"})
		return
	}

	tasks, err := h.Tasks.List(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	stats := taskquery.Compute(tasks)
	out := taskquery.SortTasks(taskquery.FilterTasks(tasks, filter, time.Now()), sortBy)

	c.JSON(http.StatusOK, gin.H{"tasks": out, "stats": stats})
}

func (h *Handler) CreateTask(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	var req createTaskRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	task, err := h.Tasks.Create(c.Request.Context(), userID, service.TaskInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Completed:   bool(req.Completed),
		DueDate:     req.DueDate,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"task": task})
}

func (h *Handler) GetTask(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	taskID, ok := taskParam(c)
	if !ok {
		return
	}

	task, err := h.Tasks.GetByID(c.Request.Context(), userID, taskID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"task": task})
}

func (h *Handler) UpdateTask(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	taskID, ok := taskParam(c)
	if !ok {
		return
	}

	var req updateTaskRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	upd := service.TaskUpdate{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
	}
	if req.Completed != nil {
		completed := bool(*req.Completed)
		upd.Completed = &completed
	}

	task, err := h.Tasks.Update(c.Request.Context(), userID, taskID, upd)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"task": task})
}

func (h *Handler) DeleteTask(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	taskID, ok := taskParam(c)
	if !ok {
		return
	}

	if err := h.Tasks.Delete(c.Request.Context(), userID, taskID); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func taskParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		// An unparseable id cannot belong to the caller; report it the same
		// way as any other unknown task.
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return 0, false
	}
	return id, true
}
