package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"legalapi/internal/service"
)

const presignExpiry = 15 * time.Minute

// UploadCaseDocument godoc
// @Summary Upload a document to a case
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Param caseId path string true "Case ID"
// @Param file formData file true "Document content"
// @Success 201 {object} model.CaseDocument
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /cases/{caseId}/documents [post]
func UploadCaseDocument(svc service.CaseDocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		caseID, ok := pathID(c, "caseId")
		if !ok {
			return nil
		}
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "Se requiere el archivo")
		}
		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "No se pudo leer el archivo")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		doc, err := svc.Upload(c.UserContext(), caseID, f, fh.Filename, ct, fh.Size)
		if err != nil {
			return serviceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(doc)
	}
}

// ListCaseDocuments godoc
// @Summary List a case's documents
// @Tags documents
// @Produce json
// @Param caseId path string true "Case ID"
// @Success 200 {array} model.CaseDocument
// @Failure 404 {object} errorPayload
// @Router /cases/{caseId}/documents [get]
func ListCaseDocuments(svc service.CaseDocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		caseID, ok := pathID(c, "caseId")
		if !ok {
			return nil
		}
		docs, err := svc.ListByCase(c.UserContext(), caseID)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(docs)
	}
}

// DownloadCaseDocument godoc
// @Summary Download a document's content
// @Tags documents
// @Produce octet-stream
// @Param id path string true "Document ID"
// @Success 200 {file} binary
// @Failure 404 {object} errorPayload
// @Router /documents/{id}/download [get]
func DownloadCaseDocument(svc service.CaseDocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c, "id")
		if !ok {
			return nil
		}
		rc, doc, err := svc.Download(c.UserContext(), id)
		if err != nil {
			return serviceError(c, err)
		}
		c.Set(fiber.HeaderContentType, doc.ContentType)
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+doc.Filename+`"`)
		return c.SendStream(rc, int(doc.Size))
	}
}

// PresignCaseDocument godoc
// @Summary Get a time-limited download URL for a document
// @Tags documents
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errorPayload
// @Router /documents/{id}/url [get]
func PresignCaseDocument(svc service.CaseDocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c, "id")
		if !ok {
			return nil
		}
		u, err := svc.PresignURL(c.UserContext(), id, presignExpiry)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(fiber.Map{"url": u, "expires_in": int(presignExpiry.Seconds())})
	}
}

// DeleteCaseDocument godoc
// @Summary Delete a document
// @Tags documents
// @Param id path string true "Document ID"
// @Success 204
// @Failure 404 {object} errorPayload
// @Router /documents/{id} [delete]
func DeleteCaseDocument(svc service.CaseDocumentService) fiber.Handler {
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
