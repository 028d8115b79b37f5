package export

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	exportuc "github.com/FaisalHDT/kasir-app/internal/usecase/export"
	reportuc "github.com/FaisalHDT/kasir-app/internal/usecase/report"
)

type Handler struct {
	uc *exportuc.Usecase
}

func New(uc *exportuc.Usecase) *Handler {
	return &Handler{uc: uc}
}

// Project returns the flat export rows for one employee over a date window.
// An empty window is a 200 with empty rows, so the client can tell "no data"
// apart from a failure and show a message instead of writing an empty file.
func (h *Handler) Project(c *fiber.Ctx) error {
	actor := exportuc.Actor{}
	actor.EmployeeID, _ = c.Locals("employee_id").(string)
	actor.Role, _ = c.Locals("employee_role").(string)

	out, err := h.uc.Project(
		c.Context(),
		actor,
		c.Params("employeeId"),
		c.Query("startDate"),
		c.Query("endDate"),
	)
	if err != nil {
		return mapErr(err)
	}

	return c.JSON(fiber.Map{
		"empty":  len(out.Rows) == 0,
		"export": out,
	})
}

func mapErr(err error) error {
	switch {
	case errors.Is(err, exportuc.ErrAccessDenied):
		return fiber.NewError(fiber.StatusForbidden, err.Error())
	case errors.Is(err, exportuc.ErrInvalidInput),
		errors.Is(err, reportuc.ErrInvalidDateRange):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, exportuc.ErrEmployeeMissing):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "internal error")
	}
}
