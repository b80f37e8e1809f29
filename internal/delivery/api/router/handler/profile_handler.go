package handler

import (
	"net/http"

	"fabquote/internal/delivery/api/response"
	"fabquote/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ProfileHandler serves the caller's own profile.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(profileUC usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{profileUC: profileUC}
}

// GetProfile handles GET /api/v1/profile
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	profile, err := h.profileUC.GetProfile(c.Request().Context(), caller)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, profile)
}

// UpdateProfile handles PUT /api/v1/profile
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	var req usecase.UpdateProfileInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	profile, err := h.profileUC.UpdateProfile(c.Request().Context(), caller, &req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, profile)
}
