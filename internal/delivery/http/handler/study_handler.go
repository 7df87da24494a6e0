package handler

import (
	"errors"

	"winestudy/internal/delivery/http/middleware"
	"winestudy/internal/domain/study"
	"winestudy/internal/pkg/response"
	"winestudy/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type StudyHandler struct {
	uc usecase.StudyUsecase
}

func NewStudyHandler(uc usecase.StudyUsecase) *StudyHandler {
	return &StudyHandler{uc: uc}
}

func (h *StudyHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/tracks", h.ListTracks)
	r.Get("/tracks/:track_id", h.GetTrack)
	r.Get("/tracks/:track_id/lessons", h.ListLessons)
	r.Get("/lessons/:lesson_id", h.GetLesson)
}

func (h *StudyHandler) RegisterProtectedRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/lessons/:lesson_id/complete", h.CompleteLesson)
}

func (h *StudyHandler) ListTracks(c fiber.Ctx) error {
	tracks, err := h.uc.ListTracks(c.Context())
	if err != nil {
		return mapStudyUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, tracks)
}

func (h *StudyHandler) GetTrack(c fiber.Ctx) error {
	track, err := h.uc.GetTrack(c.Context(), c.Params("track_id"))
	if err != nil {
		return mapStudyUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, track)
}

func (h *StudyHandler) ListLessons(c fiber.Ctx) error {
	lessons, err := h.uc.ListLessons(c.Context(), c.Params("track_id"))
	if err != nil {
		return mapStudyUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, lessons)
}

func (h *StudyHandler) GetLesson(c fiber.Ctx) error {
	lesson, err := h.uc.GetLesson(c.Context(), c.Params("lesson_id"))
	if err != nil {
		return mapStudyUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, lesson)
}

func (h *StudyHandler) CompleteLesson(c fiber.Ctx) error {
	usr, ok := middleware.UserFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.DetailUnauthorized, nil)
	}

	lessonID := c.Params("lesson_id")
	if err := h.uc.CompleteLesson(c.Context(), usr.UserID, lessonID); err != nil {
		return mapStudyUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, map[string]any{
		"message":   "Lesson completed",
		"lesson_id": lessonID,
	})
}

func mapStudyUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, study.ErrTrackNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Track not found", err)
	case errors.Is(err, study.ErrLessonNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Lesson not found", err)
	case errors.Is(err, study.ErrQuestionNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Question not found", err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.DetailInternalServerError, err)
	}
}
