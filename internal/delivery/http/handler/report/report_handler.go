package report

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	reportuc "github.com/FaisalHDT/kasir-app/internal/usecase/report"
)

type Handler struct {
	uc *reportuc.Usecase
}

func New(uc *reportuc.Usecase) *Handler {
	return &Handler{uc: uc}
}

// EmployeeReport serves the date-windowed per-employee report plus the
// grand-total summary for the same window.
func (h *Handler) EmployeeReport(c *fiber.Ctx) error {
	startDate := c.Query("startDate")
	endDate := c.Query("endDate")

	out, err := h.uc.EmployeeReport(c.Context(), startDate, endDate)
	if err != nil {
		if errors.Is(err, reportuc.ErrInvalidDateRange) {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return fiber.NewError(fiber.StatusInternalServerError, "internal error")
	}
	return c.JSON(out)
}

// Dashboard serves the all-time summary for chart rendering.
func (h *Handler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.DashboardSummary(c.Context())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "internal error")
	}
	return c.JSON(out)
}
