package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smartlms/elearning-system/internal/core/ports"
)

// CourseHandler handles HTTP requests for the course catalog and teacher
// course management.
type CourseHandler struct {
	service ports.CourseService
}

func NewCourseHandler(service ports.CourseService) *CourseHandler {
	return &CourseHandler{service: service}
}

// List handles GET /v1/courses — the open catalog.
//
// @Summary      List all courses
// @Tags         courses
// @Produce      json
// @Success      200  {object}  listCoursesResponse
// @Failure      500  {object}  errorResponse
// @Router       /v1/courses [get]
func (h *CourseHandler) List(c echo.Context) error {
	courses, err := h.service.ListCourses(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListCoursesResponse(courses))
}

// Get handles GET /v1/courses/:id — the catalog detail view.
//
// @Summary      Get a course by id
// @Tags         courses
// @Produce      json
// @Param        id   path      string  true  "Course id"
// @Success      200  {object}  courseResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/courses/{id} [get]
func (h *CourseHandler) Get(c echo.Context) error {
	course, err := h.service.GetCourse(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCourseResponse(course))
}

// Rate handles POST /v1/courses/:id/rating. The submitted value overwrites
// the stored rating; the response carries the updated course.
//
// @Summary      Rate a course
// @Tags         courses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Course id"
// @Param        body  body      rateCourseRequest  true  "Star rating (1-5)"
// @Success      200   {object}  courseResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/courses/{id}/rating [post]
func (h *CourseHandler) Rate(c echo.Context) error {
	var req rateCourseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	userID, name, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	course, err := h.service.RateCourse(c.Request().Context(), ports.RateCourseInput{
		CourseID:  c.Param("id"),
		Rating:    req.Rating,
		ActorID:   userID,
		ActorName: name,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCourseResponse(course))
}

// Create handles POST /v1/courses (teacher only).
//
// @Summary      Create a course
// @Tags         courses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCourseRequest  true  "Course details"
// @Success      201   {object}  courseResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/courses [post]
func (h *CourseHandler) Create(c echo.Context) error {
	var req createCourseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	teacherID, _, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	course, err := h.service.CreateCourse(c.Request().Context(), ports.CreateCourseInput{
		Title:       req.Title,
		Description: req.Description,
		VideoLink:   req.VideoLink,
		Thumbnail:   req.Thumbnail,
		TeacherID:   teacherID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toCourseResponse(course))
}

// Mine handles GET /v1/teacher/courses — courses created by the acting teacher.
//
// @Summary      List my courses
// @Tags         courses
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listCoursesResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/teacher/courses [get]
func (h *CourseHandler) Mine(c echo.Context) error {
	teacherID, _, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	courses, err := h.service.MyCourses(c.Request().Context(), teacherID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListCoursesResponse(courses))
}

// Update handles PUT /v1/courses/:id (creator only).
//
// @Summary      Update a course
// @Tags         courses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Course id"
// @Param        body  body      updateCourseRequest  true  "All three editable fields"
// @Success      200   {object}  courseResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/courses/{id} [put]
func (h *CourseHandler) Update(c echo.Context) error {
	var req updateCourseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	teacherID, _, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	course, err := h.service.UpdateCourse(c.Request().Context(), ports.UpdateCourseInput{
		CourseID:    c.Param("id"),
		Title:       req.Title,
		Description: req.Description,
		VideoLink:   req.VideoLink,
		TeacherID:   teacherID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCourseResponse(course))
}

// Delete handles DELETE /v1/courses/:id (creator only).
//
// @Summary      Delete a course
// @Tags         courses
// @Security     BearerAuth
// @Param        id  path  string  true  "Course id"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/courses/{id} [delete]
func (h *CourseHandler) Delete(c echo.Context) error {
	teacherID, _, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteCourse(c.Request().Context(), c.Param("id"), teacherID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
