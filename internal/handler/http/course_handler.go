package http

import (
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"

	"coursehub/internal/domain/entity"
	"coursehub/internal/handler/http/dto"
	usecasecontract "coursehub/internal/usecase/contract"
)

// CourseHandler serves the course catalog routes.
type CourseHandler struct {
	courseUsecase usecasecontract.ICourseUseCase
}

func NewCourseHandler(courseUsecase usecasecontract.ICourseUseCase) *CourseHandler {
	return &CourseHandler{courseUsecase: courseUsecase}
}

// CreateCourse handles POST /course/create.
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	userID, ok := CurrentUserID(c)
	if !ok {
		return
	}
	var req dto.CreateCourseRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	course, err := h.courseUsecase.CreateCourse(c.Request.Context(), req.CourseTitle, req.Category, userID)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.CourseEnvelope{
		Success: true,
		Message: "Course created.",
		Course:  course,
	})
}

// GetCreatorCourses handles GET /course/courses.
func (h *CourseHandler) GetCreatorCourses(c *gin.Context) {
	userID, ok := CurrentUserID(c)
	if !ok {
		return
	}
	courses, err := h.courseUsecase.GetCreatorCourses(c.Request.Context(), userID)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.CoursesEnvelope{Success: true, Courses: courses})
}

// GetCourseByID handles GET /course/:courseId.
func (h *CourseHandler) GetCourseByID(c *gin.Context) {
	course, err := h.courseUsecase.GetCourseByID(c.Request.Context(), c.Param("courseId"))
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.CourseEnvelope{Success: true, Course: course})
}

// EditCourse handles PUT /course/:courseId (multipart).
func (h *CourseHandler) EditCourse(c *gin.Context) {
	update := &usecasecontract.CourseUpdate{}
	if v, ok := c.GetPostForm("courseTitle"); ok {
		update.CourseTitle = &v
	}
	if v, ok := c.GetPostForm("subTitle"); ok {
		update.SubTitle = &v
	}
	if v, ok := c.GetPostForm("description"); ok {
		update.Description = &v
	}
	if v, ok := c.GetPostForm("category"); ok {
		update.Category = &v
	}
	if v, ok := c.GetPostForm("courseLevel"); ok {
		level := entity.CourseLevel(v)
		update.CourseLevel = &level
	}
	if v, ok := c.GetPostForm("coursePrice"); ok {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			ErrorHandler(c, http.StatusBadRequest, "coursePrice must be a number")
			return
		}
		update.CoursePrice = &price
	}

	thumbnailPath := ""
	if file, err := c.FormFile("courseThumbnail"); err == nil {
		thumbnailPath = filepath.Join(os.TempDir(), filepath.Base(file.Filename))
		if err := c.SaveUploadedFile(file, thumbnailPath); err != nil {
			ErrorHandler(c, http.StatusInternalServerError, "failed to store uploaded file")
			return
		}
		defer os.Remove(thumbnailPath)
	}

	course, err := h.courseUsecase.EditCourse(c.Request.Context(), c.Param("courseId"), update, thumbnailPath)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.CourseEnvelope{
		Success: true,
		Message: "Course updated.",
		Course:  course,
	})
}

// GetPublishedCourses handles GET /course/published-courses. An empty
// catalog answers 200 with an empty list.
func (h *CourseHandler) GetPublishedCourses(c *gin.Context) {
	courses, err := h.courseUsecase.GetPublishedCourses(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.CoursesEnvelope{Success: true, Courses: courses})
}

// SearchCourses handles GET /course/search.
func (h *CourseHandler) SearchCourses(c *gin.Context) {
	query := c.Query("query")
	categories := c.QueryArray("categories")
	sortByPrice := c.Query("sortByPrice")

	courses, err := h.courseUsecase.SearchCourses(c.Request.Context(), query, categories, sortByPrice)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.CoursesEnvelope{Success: true, Courses: courses})
}

// TogglePublish handles PATCH /course/:courseId?publish=true|false.
func (h *CourseHandler) TogglePublish(c *gin.Context) {
	publish, err := strconv.ParseBool(c.DefaultQuery("publish", "false"))
	if err != nil {
		ErrorHandler(c, http.StatusBadRequest, "publish must be true or false")
		return
	}
	message, err := h.courseUsecase.TogglePublish(c.Request.Context(), c.Param("courseId"), publish)
	if err != nil {
		RespondError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, message)
}
