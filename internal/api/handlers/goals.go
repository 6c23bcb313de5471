package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/api/request"
	"github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/api/response"
	"github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/apperrors"
	"github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/model"
	"github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/service"
	"github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/validation"
)

// GoalHandler handles HTTP requests for savings goal endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the goalService.
type GoalHandler struct {
	goalService *service.GoalService
}

// NewGoalHandler creates a new GoalHandler with the provided service dependency.
func NewGoalHandler(goalService *service.GoalService) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
	}
}

// GoalResponse augments a stored goal with derived progress figures so the
// frontend does not reimplement the date arithmetic.
type GoalResponse struct {
	model.Goal
	ProgressPercent float64 `json:"progressPercent"`
	DaysRemaining   int     `json:"daysRemaining"`
	MonthlyRequired float64 `json:"monthlyRequired"`
}

func newGoalResponse(goal model.Goal, now time.Time) GoalResponse {
	return GoalResponse{
		Goal:            goal,
		ProgressPercent: goal.ProgressPercent(),
		DaysRemaining:   goal.DaysRemaining(now),
		MonthlyRequired: goal.MonthlyRequired(now),
	}
}

// Goals handles GET requests to retrieve all goals with derived progress.
//
// Endpoint: GET /api/goal
// Response: 200 OK with array of GoalResponse
// Error: 500 Internal Server Error if retrieval fails
func (h *GoalHandler) Goals(w http.ResponseWriter, _ *http.Request) {
	goals, err := h.goalService.GetAllGoals()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveGoals.Error(), err.Error())
		return
	}

	now := time.Now()
	resp := make([]GoalResponse, len(goals))
	for i, goal := range goals {
		resp[i] = newGoalResponse(goal, now)
	}

	response.RespondJSON(w, http.StatusOK, resp)
}

// GetGoal handles GET requests to retrieve a single goal by ID.
//
// Endpoint: GET /api/goal/{uuid}
// Response: 200 OK with GoalResponse
// Error: 400 Bad Request if goal ID is invalid (validated by middleware)
// Error: 404 Not Found if goal not found
// Error: 500 Internal Server Error if retrieval fails
func (h *GoalHandler) GetGoal(w http.ResponseWriter, r *http.Request) {
	goalID := chi.URLParam(r, "uuid")

	goal, err := h.goalService.GetGoal(goalID)
	if err != nil {
		if errors.Is(err, apperrors.ErrGoalNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrGoalNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveGoals.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, newGoalResponse(goal, time.Now()))
}

// CreateGoal handles POST requests to create a new goal.
//
// Endpoint: POST /api/goal
// Request Body: CreateGoalRequest (name, category, targetAmount, targetDate, priority)
// Response: 201 Created with GoalResponse
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *GoalHandler) CreateGoal(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateGoalRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateGoal(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	goal, err := h.goalService.CreateGoal(req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create goal", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, newGoalResponse(*goal, time.Now()))
}

// UpdateGoal handles PUT requests to update an existing goal.
//
// Endpoint: PUT /api/goal/{uuid}
// Request Body: UpdateGoalRequest (all fields optional)
// Response: 200 OK with updated GoalResponse
// Error: 400 Bad Request if goal ID is invalid (validated by middleware) or validation fails
// Error: 404 Not Found if goal not found
// Error: 500 Internal Server Error if update fails
func (h *GoalHandler) UpdateGoal(w http.ResponseWriter, r *http.Request) {
	goalID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateGoalRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateGoal(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	goal, err := h.goalService.UpdateGoal(goalID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrGoalNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrGoalNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to update goal", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, newGoalResponse(goal, time.Now()))
}

// DeleteGoal handles DELETE requests to remove a goal.
//
// Endpoint: DELETE /api/goal/{uuid}
// Response: 204 No Content
// Error: 400 Bad Request if goal ID is invalid (validated by middleware)
// Error: 404 Not Found if goal not found
// Error: 500 Internal Server Error if deletion fails
func (h *GoalHandler) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	goalID := chi.URLParam(r, "uuid")

	if err := h.goalService.DeleteGoal(goalID); err != nil {
		if errors.Is(err, apperrors.ErrGoalNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrGoalNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete goal", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
