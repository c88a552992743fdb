package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"coursehub/internal/handler/http/dto"
	usecasecontract "coursehub/internal/usecase/contract"
)

// LectureHandler serves the lecture routes.
type LectureHandler struct {
	lectureUsecase usecasecontract.ILectureUseCase
}

func NewLectureHandler(lectureUsecase usecasecontract.ILectureUseCase) *LectureHandler {
	return &LectureHandler{lectureUsecase: lectureUsecase}
}

// CreateLecture handles POST /course/:courseId/lecture.
func (h *LectureHandler) CreateLecture(c *gin.Context) {
	var req dto.CreateLectureRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	lecture, err := h.lectureUsecase.CreateLecture(c.Request.Context(), c.Param("courseId"), req.LectureTitle)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.LectureEnvelope{
		Success: true,
		Message: "Lecture created.",
		Lecture: lecture,
	})
}

// GetCourseLectures handles GET /course/:courseId/lecture.
func (h *LectureHandler) GetCourseLectures(c *gin.Context) {
	lectures, err := h.lectureUsecase.GetCourseLectures(c.Request.Context(), c.Param("courseId"))
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.LecturesEnvelope{Success: true, Lectures: lectures})
}

// EditLecture handles PUT /course/:courseId/lecture/:lectureId.
func (h *LectureHandler) EditLecture(c *gin.Context) {
	var req dto.EditLectureRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	update := &usecasecontract.LectureUpdate{
		LectureTitle:  req.LectureTitle,
		IsPreviewFree: req.IsPreviewFree,
	}
	if req.VideoInfo != nil {
		update.VideoURL = &req.VideoInfo.VideoURL
		update.PublicID = &req.VideoInfo.PublicID
	}

	err := h.lectureUsecase.EditLecture(c.Request.Context(), c.Param("courseId"), c.Param("lectureId"), update)
	if err != nil {
		RespondError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Lecture updated.")
}

// RemoveLecture handles DELETE /course/lecture/:lectureId.
func (h *LectureHandler) RemoveLecture(c *gin.Context) {
	if err := h.lectureUsecase.RemoveLecture(c.Request.Context(), c.Param("lectureId")); err != nil {
		RespondError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Lecture removed.")
}

// GetLectureByID handles GET /course/lecture/:lectureId.
func (h *LectureHandler) GetLectureByID(c *gin.Context) {
	lecture, err := h.lectureUsecase.GetLectureByID(c.Request.Context(), c.Param("lectureId"))
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.LectureEnvelope{Success: true, Lecture: lecture})
}
