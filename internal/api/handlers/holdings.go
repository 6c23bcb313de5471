package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/api/request"
	"github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/api/response"
	"github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/apperrors"
	"github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/service"
	"github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/validation"
)

// HoldingHandler handles HTTP requests for holding endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the holdingService.
type HoldingHandler struct {
	holdingService *service.HoldingService
}

// NewHoldingHandler creates a new HoldingHandler with the provided service dependency.
func NewHoldingHandler(holdingService *service.HoldingService) *HoldingHandler {
	return &HoldingHandler{
		holdingService: holdingService,
	}
}

// Holdings handles GET requests to retrieve all holdings.
//
// Endpoint: GET /api/holding
// Response: 200 OK with array of Holding
// Error: 500 Internal Server Error if retrieval fails
func (h *HoldingHandler) Holdings(w http.ResponseWriter, _ *http.Request) {
	holdings, err := h.holdingService.GetAllHoldings()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveHoldings.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, holdings)
}

// GetHolding handles GET requests to retrieve a single holding by ID.
//
// Endpoint: GET /api/holding/{uuid}
// Response: 200 OK with Holding
// Error: 400 Bad Request if holding ID is invalid (validated by middleware)
// Error: 404 Not Found if holding not found
// Error: 500 Internal Server Error if retrieval fails
func (h *HoldingHandler) GetHolding(w http.ResponseWriter, r *http.Request) {
	holdingID := chi.URLParam(r, "uuid")

	holding, err := h.holdingService.GetHolding(holdingID)
	if err != nil {
		if errors.Is(err, apperrors.ErrHoldingNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrHoldingNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveHoldings.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, holding)
}

// CreateHolding handles POST requests to create a new holding.
// Validates the request body and creates a holding record in the database.
//
// Endpoint: POST /api/holding
// Request Body: CreateHoldingRequest (symbol, securityType, quantity, purchasePrice, purchaseDate)
// Response: 201 Created with Holding
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *HoldingHandler) CreateHolding(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateHoldingRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateHolding(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	holding, err := h.holdingService.CreateHolding(req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create holding", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, holding)
}

// UpdateHolding handles PUT requests to update an existing holding.
// Validates the request body and updates the specified holding fields.
//
// Endpoint: PUT /api/holding/{uuid}
// Request Body: UpdateHoldingRequest (all fields optional)
// Response: 200 OK with updated Holding
// Error: 400 Bad Request if holding ID is invalid (validated by middleware) or validation fails
// Error: 404 Not Found if holding not found
// Error: 500 Internal Server Error if update fails
func (h *HoldingHandler) UpdateHolding(w http.ResponseWriter, r *http.Request) {
	holdingID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateHoldingRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateHolding(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	holding, err := h.holdingService.UpdateHolding(holdingID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrHoldingNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrHoldingNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to update holding", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, holding)
}

// DeleteHolding handles DELETE requests to remove a holding.
//
// Endpoint: DELETE /api/holding/{uuid}
// Response: 204 No Content
// Error: 400 Bad Request if holding ID is invalid (validated by middleware)
// Error: 404 Not Found if holding not found
// Error: 500 Internal Server Error if deletion fails
func (h *HoldingHandler) DeleteHolding(w http.ResponseWriter, r *http.Request) {
	holdingID := chi.URLParam(r, "uuid")

	if err := h.holdingService.DeleteHolding(holdingID); err != nil {
		if errors.Is(err, apperrors.ErrHoldingNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrHoldingNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete holding", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}

// DeleteHoldingsResponse reports how many holdings a bulk delete removed.
type DeleteHoldingsResponse struct {
	Deleted int64 `json:"deleted"`
}

// DeleteHoldings handles POST requests to remove multiple holdings at once.
// IDs that do not exist are skipped; the response reports the number removed.
//
// Endpoint: POST /api/holding/bulk-delete
// Request Body: DeleteHoldingsRequest (ids)
// Response: 200 OK with DeleteHoldingsResponse
// Error: 400 Bad Request if the ID list is empty or contains an invalid UUID
// Error: 500 Internal Server Error if deletion fails
func (h *HoldingHandler) DeleteHoldings(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.DeleteHoldingsRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUUIDs(req.IDs); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	deleted, err := h.holdingService.DeleteHoldings(req.IDs)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to delete holdings", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, DeleteHoldingsResponse{Deleted: deleted})
}
