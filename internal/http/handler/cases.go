package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"legalapi/internal/model"
	"legalapi/internal/service"
)

// ListCases godoc
// @Summary List cases with optional filters
// @Tags cases
// @Produce json
// @Param case_status query string false "Filter by status (Open, In-Progress, Closed)"
// @Param lawyer_id query string false "Filter by lawyer"
// @Param client_id query string false "Filter by client"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 10)"
// @Success 200 {array} model.CaseSummary
// @Router /cases [get]
func ListCases(svc service.CaseService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var f model.CaseFilter
		if v := c.Query("case_status"); v != "" {
			f.Status = &v
		}
		if v := c.Query("lawyer_id"); v != "" {
			f.LawyerID = &v
		}
		if v := c.Query("client_id"); v != "" {
			f.ClientID = &v
		}
		if v := c.Query("page"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 1 {
				return writeError(c, fiber.StatusBadRequest, "INVALID_PAGE", "El parámetro page no es válido")
			}
			f.Page = n
		}
		if v := c.Query("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 1 {
				return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "El parámetro limit no es válido")
			}
			f.Limit = n
		}

		res, err := svc.List(c.UserContext(), f)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(res)
	}
}

// GetCase godoc
// @Summary Get a case with party names and receipts
// @Tags cases
// @Produce json
// @Param caseId path string true "Case ID"
// @Success 200 {object} model.CaseDetail
// @Failure 404 {object} errorPayload
// @Router /cases/{caseId} [get]
func GetCase(svc service.CaseService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c, "caseId")
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

// CreateCase godoc
// @Summary Create a case
// @Tags cases
// @Accept json
// @Produce json
// @Param case body model.CaseInput true "Case"
// @Success 201 {object} model.Case
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /cases [post]
func CreateCase(svc service.CaseService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.CaseInput
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

// UpdateCase godoc
// @Summary Update a case
// @Tags cases
// @Accept json
// @Produce json
// @Param caseId path string true "Case ID"
// @Param case body model.CaseUpdate true "Fields to update"
// @Success 200 {object} model.Case
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /cases/{caseId} [put]
func UpdateCase(svc service.CaseService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c, "caseId")
		if !ok {
			return nil
		}
		var u model.CaseUpdate
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

// DeleteCase godoc
// @Summary Delete a case
// @Tags cases
// @Param caseId path string true "Case ID"
// @Success 204
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /cases/{caseId} [delete]
func DeleteCase(svc service.CaseService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c, "caseId")
		if !ok {
			return nil
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return serviceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// SearchCases godoc
// @Summary Full-text search over cases
// @Tags cases
// @Produce json
// @Param query query string true "Search text"
// @Success 200 {array} model.Case
// @Failure 400 {object} errorPayload
// @Router /search [get]
func SearchCases(svc service.SearchService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.Cases(c.UserContext(), c.Query("query"))
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(res)
	}
}
