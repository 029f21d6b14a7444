package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/studyshare/campus-portal/internal/core/ports"
)

// ProfileHandler handles the caller's own profile.
type ProfileHandler struct {
	authService ports.AuthService
}

func NewProfileHandler(authService ports.AuthService) *ProfileHandler {
	return &ProfileHandler{authService: authService}
}

type updateProfileRequest struct {
	FirstName       string   `json:"first_name" validate:"required"`
	LastName        string   `json:"last_name"  validate:"required"`
	StudentID       string   `json:"student_id"`
	ProfilePhoto    string   `json:"profile_photo"`
	AcademicProgram string   `json:"academic_program"`
	Department      string   `json:"department"`
	YearLevel       string   `json:"year_level"`
	ContactInfo     string   `json:"contact_info"`
	EnrolledCourses []string `json:"enrolled_courses"`
}

// Me handles GET /v1/me.
//
// @Summary      Get the caller's profile
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.User
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/me [get]
func (h *ProfileHandler) Me(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	user, err := h.authService.CurrentUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Update handles PUT /v1/me — a whole-record profile replacement.
//
// @Summary      Update the caller's profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Full profile"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/me [put]
func (h *ProfileHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	user, err := h.authService.UpdateProfile(c.Request().Context(), userID, ports.ProfileInput{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		StudentID:       req.StudentID,
		ProfilePhoto:    req.ProfilePhoto,
		AcademicProgram: req.AcademicProgram,
		Department:      req.Department,
		YearLevel:       req.YearLevel,
		ContactInfo:     req.ContactInfo,
		EnrolledCourses: req.EnrolledCourses,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}
