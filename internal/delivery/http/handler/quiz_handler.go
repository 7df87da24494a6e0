package handler

import (
	"strconv"

	"winestudy/internal/delivery/http/middleware"
	"winestudy/internal/pkg/response"
	"winestudy/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type QuizHandler struct {
	uc usecase.QuizUsecase
}

type quizSubmitRequest struct {
	QuestionID     string `json:"question_id"`
	SelectedAnswer int    `json:"selected_answer"`
}

func NewQuizHandler(uc usecase.QuizUsecase) *QuizHandler {
	return &QuizHandler{uc: uc}
}

func (h *QuizHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/tracks/:track_id/questions", h.Questions)
}

func (h *QuizHandler) RegisterProtectedRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/submit", h.Submit)
}

func (h *QuizHandler) Questions(c fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit"))

	questions, err := h.uc.Questions(c.Context(), c.Params("track_id"), limit)
	if err != nil {
		return mapStudyUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, questions)
}

func (h *QuizHandler) Submit(c fiber.Ctx) error {
	usr, ok := middleware.UserFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.DetailUnauthorized, nil)
	}

	var req quizSubmitRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.DetailBadRequest, err)
	}

	result, err := h.uc.Submit(c.Context(), usr.UserID, req.QuestionID, req.SelectedAnswer)
	if err != nil {
		return mapStudyUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, result)
}
