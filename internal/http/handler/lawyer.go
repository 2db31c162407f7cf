package handler

import (
	"github.com/gofiber/fiber/v2"

	"legalapi/internal/model"
	"legalapi/internal/service"
)

// ListLawyers godoc
// @Summary List lawyers
// @Tags lawyers
// @Produce json
// @Success 200 {array} model.Lawyer
// @Router /lawyers [get]
func ListLawyers(svc service.LawyerService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.List(c.UserContext())
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(res)
	}
}

// GetLawyer godoc
// @Summary Get a lawyer by id
// @Tags lawyers
// @Produce json
// @Param id path string true "Lawyer ID"
// @Success 200 {object} model.Lawyer
// @Failure 404 {object} errorPayload
// @Router /lawyers/{id} [get]
func GetLawyer(svc service.LawyerService) fiber.Handler {
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

// CreateLawyer godoc
// @Summary Create a lawyer
// @Tags lawyers
// @Accept json
// @Produce json
// @Param lawyer body model.LawyerInput true "Lawyer"
// @Success 201 {object} model.Lawyer
// @Failure 400 {object} errorPayload
// @Router /lawyers [post]
func CreateLawyer(svc service.LawyerService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.LawyerInput
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

// UpdateLawyer godoc
// @Summary Update a lawyer
// @Tags lawyers
// @Accept json
// @Produce json
// @Param id path string true "Lawyer ID"
// @Param lawyer body model.LawyerUpdate true "Fields to update"
// @Success 200 {object} model.Lawyer
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /lawyers/{id} [put]
func UpdateLawyer(svc service.LawyerService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c, "id")
		if !ok {
			return nil
		}
		var u model.LawyerUpdate
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

// DeleteLawyer godoc
// @Summary Delete a lawyer
// @Tags lawyers
// @Param id path string true "Lawyer ID"
// @Success 204
// @Failure 404 {object} errorPayload
// @Router /lawyers/{id} [delete]
func DeleteLawyer(svc service.LawyerService) fiber.Handler {
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
