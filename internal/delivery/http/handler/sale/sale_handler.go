package sale

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	saleuc "github.com/FaisalHDT/kasir-app/internal/usecase/sale"
)

type Handler struct {
	uc *saleuc.Usecase
}

func New(uc *saleuc.Usecase) *Handler {
	return &Handler{uc: uc}
}

// Create records one finalized sale for the authenticated employee. The
// request carries product ids and quantities only; prices are resolved
// server-side at commit. There is no idempotency key, so a client retry
// after a timeout must first confirm the sale was not committed.
func (h *Handler) Create(c *fiber.Ctx) error {
	var in saleuc.RecordInput
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid json")
	}
	in.EmployeeID, _ = c.Locals("employee_id").(string)

	out, err := h.uc.Record(c.Context(), in)
	if err != nil {
		return mapErr(err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// History returns the authenticated employee's sales for the current day
// plus the day's running total.
func (h *Handler) History(c *fiber.Ctx) error {
	employeeID, _ := c.Locals("employee_id").(string)

	out, err := h.uc.History(c.Context(), employeeID)
	if err != nil {
		return mapErr(err)
	}
	return c.JSON(out)
}

func mapErr(err error) error {
	switch {
	case errors.Is(err, saleuc.ErrInvalidInput):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, saleuc.ErrEmployeeMissing),
		errors.Is(err, saleuc.ErrProductMissing):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, saleuc.ErrDiscountTooLarge):
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "internal error")
	}
}
