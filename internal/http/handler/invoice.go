package handler

import (
	"github.com/gofiber/fiber/v2"

	"legalapi/internal/model"
	"legalapi/internal/service"
)

// ListInvoices godoc
// @Summary List invoices
// @Tags invoices
// @Produce json
// @Success 200 {array} model.Invoice
// @Router /invoices [get]
func ListInvoices(svc service.InvoiceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.List(c.UserContext())
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(res)
	}
}

// GetInvoice godoc
// @Summary Get an invoice by id
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} model.Invoice
// @Failure 404 {object} errorPayload
// @Router /invoices/{id} [get]
func GetInvoice(svc service.InvoiceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c, "id")
		if !ok {
			return nil
		}
		res, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(res)
	}
}

// CreateInvoice godoc
// @Summary Create an invoice for a receipt
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoice body model.InvoiceInput true "Invoice"
// @Success 201 {object} model.Invoice
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /invoices [post]
func CreateInvoice(svc service.InvoiceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.InvoiceInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "Cuerpo de la petición inválido")
		}
		res, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return serviceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(res)
	}
}

// UpdateInvoice godoc
// @Summary Update an invoice
// @Tags invoices
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param invoice body model.InvoiceUpdate true "Fields to update"
// @Success 200 {object} model.Invoice
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /invoices/{id} [put]
func UpdateInvoice(svc service.InvoiceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c, "id")
		if !ok {
			return nil
		}
		var u model.InvoiceUpdate
		if err := c.BodyParser(&u); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "Cuerpo de la petición inválido")
		}
		res, err := svc.Update(c.UserContext(), id, u)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(res)
	}
}

// DeleteInvoice godoc
// @Summary Delete an invoice
// @Tags invoices
// @Param id path string true "Invoice ID"
// @Success 204
// @Failure 404 {object} errorPayload
// @Router /invoices/{id} [delete]
func DeleteInvoice(svc service.InvoiceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c, "id")
		if !ok {
			return nil
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return serviceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
