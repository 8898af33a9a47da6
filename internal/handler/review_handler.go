package handler

import (
	"strconv"

	"levelcert/internal/domain"
	"levelcert/internal/dto"
	"levelcert/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ReviewHandler handles the wrong-question bank and user notes.
type ReviewHandler struct {
	reviewService service.ReviewService
}

func NewReviewHandler(reviewService service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// ListWrongQuestions lists the caller's wrong-question bank, optionally
// filtered by subject.
func (h *ReviewHandler) ListWrongQuestions(c *fiber.Ctx) error {
	id, _ := strconv.ParseInt(c.Query("userId"), 10, 64)
	employeeID := c.Query("employeeId")
	subject := c.Query("subject")

	items, err := h.reviewService.ListWrongQuestions(c.Context(), id, employeeID, subject)
	if err != nil {
		return err
	}
	return c.JSON(dto.WrongQuestionListResponse{Success: true, Items: items})
}

// UpsertWrongQuestion inserts or refreshes one wrong question.
func (h *ReviewHandler) UpsertWrongQuestion(c *fiber.Ctx) error {
	var req dto.UpsertWrongQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError(domain.MsgMissingParams)
	}

	if err := h.reviewService.UpsertWrongQuestion(c.Context(), &req); err != nil {
		return err
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

// DeleteWrongQuestion removes one wrong question owned by the caller.
func (h *ReviewHandler) DeleteWrongQuestion(c *fiber.Ctx) error {
	var req dto.DeleteWrongQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError(domain.MsgMissingParams)
	}

	if err := h.reviewService.DeleteWrongQuestion(c.Context(), &req); err != nil {
		return err
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

// ListNotes lists the caller's notes, newest-updated first.
func (h *ReviewHandler) ListNotes(c *fiber.Ctx) error {
	id, _ := strconv.ParseInt(c.Query("userId"), 10, 64)
	employeeID := c.Query("employeeId")

	items, err := h.reviewService.ListNotes(c.Context(), id, employeeID)
	if err != nil {
		return err
	}
	return c.JSON(dto.NoteListResponse{Success: true, Items: items})
}

// UpsertNote creates a note or updates one the caller owns.
func (h *ReviewHandler) UpsertNote(c *fiber.Ctx) error {
	var req dto.UpsertNoteRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError(domain.MsgMissingParams)
	}

	noteID, err := h.reviewService.UpsertNote(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(dto.UpsertNoteResponse{Success: true, NoteID: noteID})
}

// DeleteNote removes one note owned by the caller. Deleting a missing note
// succeeds.
func (h *ReviewHandler) DeleteNote(c *fiber.Ctx) error {
	var req dto.DeleteNoteRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError(domain.MsgMissingParams)
	}

	if err := h.reviewService.DeleteNote(c.Context(), &req); err != nil {
		return err
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}
