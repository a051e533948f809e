package handler

import (
	"github.com/labstack/echo/v4"

	"rotrade/internal/usecase"
	"rotrade/pkg/response"
)

type UserHandler struct {
	authUseCase *usecase.AuthUseCase
}

func NewUserHandler(authUseCase *usecase.AuthUseCase) *UserHandler {
	return &UserHandler{
		authUseCase: authUseCase,
	}
}

type updateProfileRequest struct {
	AvatarURL string `json:"avatar_url" validate:"omitempty,url"`
}

type reportRequest struct {
	Reason string `json:"reason" validate:"required"`
}

func (h *UserHandler) Me(c echo.Context) error {
	username := c.Get("username").(string)

	user, err := h.authUseCase.GetProfile(c.Request().Context(), username)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, toUserResponse(user))
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	username := c.Get("username").(string)

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.authUseCase.UpdateProfile(c.Request().Context(), username, req.AvatarURL)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, toUserResponse(user))
}

func (h *UserHandler) Report(c echo.Context) error {
	reporter := c.Get("username").(string)
	target := c.Param("username")

	var req reportRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.authUseCase.Report(c.Request().Context(), reporter, target, req.Reason)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"reports":    user.Reports,
		"is_blocked": user.IsBlocked,
	})
}
