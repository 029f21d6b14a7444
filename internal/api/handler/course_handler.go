package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/studyshare/campus-portal/internal/core/domain"
	"github.com/studyshare/campus-portal/internal/core/ports"
)

// CourseHandler handles the course catalog.
type CourseHandler struct {
	service ports.CourseService
}

func NewCourseHandler(service ports.CourseService) *CourseHandler {
	return &CourseHandler{service: service}
}

type courseListResponse struct {
	Data  []*domain.Course `json:"data"`
	Total int              `json:"total"`
}

// List handles GET /v1/courses.
//
// @Summary      List all courses
// @Tags         courses
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  courseListResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/courses [get]
func (h *CourseHandler) List(c echo.Context) error {
	courses, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, courseListResponse{Data: courses, Total: len(courses)})
}

// Get handles GET /v1/courses/:code.
//
// @Summary      Get a course by code
// @Tags         courses
// @Produce      json
// @Security     BearerAuth
// @Param        code  path      string  true  "Course code (e.g. CS101)"
// @Success      200   {object}  domain.Course
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/courses/{code} [get]
func (h *CourseHandler) Get(c echo.Context) error {
	course, err := h.service.Get(c.Request().Context(), c.Param("code"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, course)
}
