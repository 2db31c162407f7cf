package handler

import (
	"github.com/gofiber/fiber/v2"

	"legalapi/internal/model"
	"legalapi/internal/service"
)

// ListClients godoc
// @Summary List clients
// @Tags clients
// @Produce json
// @Success 200 {array} model.Client
// @Router /clients [get]
func ListClients(svc service.ClientService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.List(c.UserContext())
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(res)
	}
}

// GetClient godoc
// @Summary Get a client with its cases and receipts
// @Tags clients
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {object} model.ClientDetail
// @Failure 404 {object} errorPayload
// @Router /clients/{id} [get]
func GetClient(svc service.ClientService) fiber.Handler {
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

// CreateClient godoc
// @Summary Create a client
// @Tags clients
// @Accept json
// @Produce json
// @Param client body model.ClientInput true "Client"
// @Success 201 {object} model.Client
// @Failure 400 {object} errorPayload
// @Router /clients [post]
func CreateClient(svc service.ClientService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.ClientInput
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

// UpdateClient godoc
// @Summary Update a client
// @Tags clients
// @Accept json
// @Produce json
// @Param id path string true "Client ID"
// @Param client body model.ClientUpdate true "Fields to update"
// @Success 200 {object} model.Client
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /clients/{id} [put]
func UpdateClient(svc service.ClientService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c, "id")
		if !ok {
			return nil
		}
		var u model.ClientUpdate
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

// DeleteClient godoc
// @Summary Delete a client
// @Tags clients
// @Param id path string true "Client ID"
// @Success 204
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /clients/{id} [delete]
func DeleteClient(svc service.ClientService) fiber.Handler {
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
