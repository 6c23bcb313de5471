package handlers

import (
	"errors"
	"net/http"

	"github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/api/request"
	"github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/api/response"
	"github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/apperrors"
	"github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/service"
	"github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/validation"
)

// ProfileHandler handles HTTP requests for user profile endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the profileService.
type ProfileHandler struct {
	profileService *service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler with the provided service dependency.
func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

// GetProfile handles GET requests to retrieve the user profile.
//
// Endpoint: GET /api/profile
// Response: 200 OK with UserProfile
// Error: 404 Not Found if onboarding has not completed yet
// Error: 500 Internal Server Error if retrieval fails
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, _ *http.Request) {
	profile, err := h.profileService.GetProfile()
	if err != nil {
		if errors.Is(err, apperrors.ErrProfileNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrProfileNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveProfile.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, profile)
}

// SaveProfile handles PUT requests to create or replace the user profile.
// Validates the request body and stores the profile encrypted at rest.
//
// Endpoint: PUT /api/profile
// Request Body: SaveProfileRequest
// Response: 200 OK with the stored UserProfile
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if the save fails
func (h *ProfileHandler) SaveProfile(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.SaveProfileRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateSaveProfile(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	profile, err := h.profileService.SaveProfile(req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to save profile", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, profile)
}
