package api

import (
	"net/http"

	"github.com/phrazzld/taskq-api/internal/api/middleware"
	"github.com/phrazzld/taskq-api/internal/api/shared"
	"github.com/phrazzld/taskq-api/internal/service"
)

// Response messages of the task endpoints.
const (
	TaskQueuedMessage    = "Task added to queue"
	AccessGrantedMessage = "Access granted"
)

// TaskHandler serves the authenticated task endpoints. It must be mounted
// behind middleware.AuthMiddleware.
type TaskHandler struct {
	taskService service.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// Enqueue handles POST /enqueue. The 200 response is written only after the
// task has been appended to the caller's queue.
func (h *TaskHandler) Enqueue(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
		return
	}

	var req EnqueueRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}
	if len(req.Task) == 0 {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Task is required")
		return
	}

	if err := h.taskService.Enqueue(r.Context(), userID, req.Task); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.MessageResponse{Message: TaskQueuedMessage})
}

// Protected handles GET /protected-route, which only confirms a valid token.
func (h *TaskHandler) Protected(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetUserID(r); !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, shared.MessageResponse{Message: AccessGrantedMessage})
}
