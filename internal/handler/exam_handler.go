package handler

import (
	"strconv"

	"levelcert/internal/domain"
	"levelcert/internal/dto"
	"levelcert/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ExamHandler handles exam submission and history queries.
type ExamHandler struct {
	examService service.ExamService
}

func NewExamHandler(examService service.ExamService) *ExamHandler {
	return &ExamHandler{examService: examService}
}

// SaveExam persists one exam result with its wrong-answer detail.
func (h *ExamHandler) SaveExam(c *fiber.Ctx) error {
	var req dto.SaveExamRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError(domain.MsgMissingParams)
	}

	resp, err := h.examService.SaveExam(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ListUserExams returns the caller's most recent exam records.
func (h *ExamHandler) ListUserExams(c *fiber.Ctx) error {
	userID := c.Query("userId")
	employeeID := c.Query("employeeId")
	if userID == "" || employeeID == "" {
		return domain.NewInvalidInputError(domain.MsgMissingParams)
	}

	// A non-numeric id resolves to no user downstream, not to a 400.
	id, _ := strconv.ParseInt(userID, 10, 64)

	records, err := h.examService.ListUserExams(c.Context(), id, employeeID)
	if err != nil {
		return err
	}
	return c.JSON(dto.UserExamsResponse{Success: true, Records: records})
}

// GetExamHistory returns one exam record with its wrong-answer list.
func (h *ExamHandler) GetExamHistory(c *fiber.Ctx) error {
	examRecordID := c.Query("examRecordId")
	if examRecordID == "" {
		return domain.NewInvalidInputError(domain.MsgMissingExamRecordID)
	}

	id, _ := strconv.ParseInt(examRecordID, 10, 64)

	exam, err := h.examService.GetExamHistory(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.ExamHistoryResponse{Success: true, Exam: *exam})
}
