package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/api/request"
	"github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/api/response"
	"github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/apperrors"
	"github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/model"
	"github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/service"
	"github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/validation"
)

// AdvisorHandler handles HTTP requests for the analytics and recommendation
// endpoints. It serves as the HTTP layer adapter, delegating all computation
// to the advisorService.
type AdvisorHandler struct {
	advisorService *service.AdvisorService
}

// NewAdvisorHandler creates a new AdvisorHandler with the provided service dependency.
func NewAdvisorHandler(advisorService *service.AdvisorService) *AdvisorHandler {
	return &AdvisorHandler{
		advisorService: advisorService,
	}
}

// respondAdvisorError maps advisor service errors to HTTP responses.
// A missing profile is a client-state problem (onboarding not done), not a
// server fault, so it maps to 404 rather than 500.
func respondAdvisorError(w http.ResponseWriter, err error, fallback error) {
	if errors.Is(err, apperrors.ErrProfileNotFound) {
		response.RespondError(w, http.StatusNotFound, apperrors.ErrProfileNotFound.Error(), "complete onboarding before requesting advice")
		return
	}
	response.RespondError(w, http.StatusInternalServerError, fallback.Error(), err.Error())
}

// Analysis handles GET requests for the portfolio analysis dashboard.
// Returns summary totals, per-type allocation with drift against the profile
// target, top and worst performers, and risk metrics.
//
// Endpoint: GET /api/advisor/analysis
// Response: 200 OK with PortfolioAnalysis
// Error: 404 Not Found if no profile exists yet
// Error: 500 Internal Server Error if the computation fails
func (h *AdvisorHandler) Analysis(w http.ResponseWriter, _ *http.Request) {
	analysis, err := h.advisorService.GetPortfolioAnalysis()
	if err != nil {
		respondAdvisorError(w, err, apperrors.ErrFailedToGetAnalysis)
		return
	}

	response.RespondJSON(w, http.StatusOK, analysis)
}

// Health handles GET requests for the financial health score.
// Returns the weighted composite score with its four component breakdowns.
//
// Endpoint: GET /api/advisor/health
// Response: 200 OK with FinancialHealthBreakdown
// Error: 404 Not Found if no profile exists yet
// Error: 500 Internal Server Error if the computation fails
func (h *AdvisorHandler) Health(w http.ResponseWriter, _ *http.Request) {
	health, err := h.advisorService.GetFinancialHealth()
	if err != nil {
		respondAdvisorError(w, err, apperrors.ErrFailedToGetAnalysis)
		return
	}

	response.RespondJSON(w, http.StatusOK, health)
}

// Allocation handles GET requests for the recommended stock/bond split.
//
// Endpoint: GET /api/advisor/allocation
// Response: 200 OK with TargetAllocation
// Error: 404 Not Found if no profile exists yet
// Error: 500 Internal Server Error if the computation fails
func (h *AdvisorHandler) Allocation(w http.ResponseWriter, _ *http.Request) {
	allocation, err := h.advisorService.GetTargetAllocation()
	if err != nil {
		respondAdvisorError(w, err, apperrors.ErrFailedToGetAnalysis)
		return
	}

	response.RespondJSON(w, http.StatusOK, allocation)
}

// Recommendations handles GET requests for the stored recommendation list.
// Recommendations are ordered by priority weight, newest first within each
// priority.
//
// Endpoint: GET /api/advisor/recommendations
// Response: 200 OK with array of Recommendation
// Error: 500 Internal Server Error if retrieval fails
func (h *AdvisorHandler) Recommendations(w http.ResponseWriter, _ *http.Request) {
	recommendations, err := h.advisorService.GetRecommendations()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveRecommendations.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, recommendations)
}

// RefreshRecommendations handles POST requests to regenerate recommendations
// from the current profile, holdings, and goals. Pending recommendations are
// replaced; ones the user already acted on keep their rows.
//
// Endpoint: POST /api/advisor/recommendations/refresh
// Response: 200 OK with the refreshed array of Recommendation
// Error: 404 Not Found if no profile exists yet
// Error: 500 Internal Server Error if generation or storage fails
func (h *AdvisorHandler) RefreshRecommendations(w http.ResponseWriter, _ *http.Request) {
	recommendations, err := h.advisorService.RefreshRecommendations()
	if err != nil {
		respondAdvisorError(w, err, apperrors.ErrFailedToGenerateRecommendations)
		return
	}

	response.RespondJSON(w, http.StatusOK, recommendations)
}

// UpdateRecommendationStatus handles PUT requests to change the status of a
// stored recommendation (e.g. mark it completed or dismissed).
//
// Endpoint: PUT /api/advisor/recommendations/{uuid}/status
// Request Body: UpdateRecommendationStatusRequest (status)
// Response: 204 No Content
// Error: 400 Bad Request if the ID is invalid (validated by middleware) or validation fails
// Error: 404 Not Found if recommendation not found
// Error: 500 Internal Server Error if the update fails
func (h *AdvisorHandler) UpdateRecommendationStatus(w http.ResponseWriter, r *http.Request) {
	recommendationID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateRecommendationStatusRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateRecommendationStatus(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	err = h.advisorService.UpdateRecommendationStatus(recommendationID, model.RecommendationStatus(req.Status))
	if err != nil {
		if errors.Is(err, apperrors.ErrRecommendationNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrRecommendationNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to update recommendation status", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
