package handler

import (
	"github.com/gofiber/fiber/v2"

	"legalapi/internal/model"
	"legalapi/internal/service"
)

// ListReceipts godoc
// @Summary List receipts with party names
// @Tags receipts
// @Produce json
// @Success 200 {array} model.ReceiptWithNames
// @Router /receipts [get]
func ListReceipts(svc service.ReceiptService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.List(c.UserContext())
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(res)
	}
}

// GetReceipt godoc
// @Summary Get a receipt by id
// @Tags receipts
// @Produce json
// @Param id path string true "Receipt ID"
// @Success 200 {object} model.ReceiptWithNames
// @Failure 404 {object} errorPayload
// @Router /receipts/{id} [get]
func GetReceipt(svc service.ReceiptService) fiber.Handler {
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

// ListReceiptsByLawyer godoc
// @Summary List a lawyer's receipts
// @Tags receipts
// @Produce json
// @Param lawyerId path string true "Lawyer ID"
// @Success 200 {array} model.ReceiptWithNames
// @Failure 404 {object} errorPayload
// @Router /receipts/lawyer/{lawyerId} [get]
func ListReceiptsByLawyer(svc service.ReceiptService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c, "lawyerId")
		if !ok {
			return nil
		}
		res, err := svc.ByLawyer(c.UserContext(), id)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(res)
	}
}

// ListReceiptsByClient godoc
// @Summary List a client's receipts
// @Tags receipts
// @Produce json
// @Param clientId path string true "Client ID"
// @Success 200 {array} model.ReceiptWithNames
// @Failure 404 {object} errorPayload
// @Router /receipts/client/{clientId} [get]
func ListReceiptsByClient(svc service.ReceiptService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c, "clientId")
		if !ok {
			return nil
		}
		res, err := svc.ByClient(c.UserContext(), id)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(res)
	}
}

// CreateReceipt godoc
// @Summary Create a receipt
// @Tags receipts
// @Accept json
// @Produce json
// @Param receipt body model.ReceiptInput true "Receipt"
// @Success 201 {object} model.Receipt
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /receipts [post]
func CreateReceipt(svc service.ReceiptService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.ReceiptInput
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

// UpdateReceipt godoc
// @Summary Update a receipt
// @Tags receipts
// @Accept json
// @Produce json
// @Param id path string true "Receipt ID"
// @Param receipt body model.ReceiptUpdate true "Fields to update"
// @Success 200 {object} model.Receipt
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /receipts/{id} [put]
func UpdateReceipt(svc service.ReceiptService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c, "id")
		if !ok {
			return nil
		}
		var u model.ReceiptUpdate
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

// DeleteReceipt godoc
// @Summary Delete a receipt
// @Tags receipts
// @Param id path string true "Receipt ID"
// @Success 204
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /receipts/{id} [delete]
func DeleteReceipt(svc service.ReceiptService) fiber.Handler {
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
