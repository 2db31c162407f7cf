package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"legalapi/internal/apperr"
	"legalapi/internal/http/middleware"
	"legalapi/internal/model"
	serviceMocks "legalapi/internal/service/mocks"
)

func TestHealthCheck(t *testing.T) {
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	app := fiber.New()
	app.Get("/health", HealthCheck(db))

	t.Run("healthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(nil)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "healthy", body["status"])
	})

	t.Run("unhealthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(errors.New("db error"))

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "SERVICE_UNAVAILABLE", body.Error.Code)
	})
}

func TestLiveness(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", Liveness())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestListClients(t *testing.T) {
	mockSvc := new(serviceMocks.MockClientService)
	app := fiber.New()
	app.Get("/clients", ListClients(mockSvc))

	t.Run("success", func(t *testing.T) {
		mockSvc.On("List", mock.Anything).
			Return([]model.Client{{ID: uuid.New().String(), FirstName: "Ana"}}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/clients", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result []model.Client
		json.NewDecoder(resp.Body).Decode(&result)
		require.Len(t, result, 1)
		assert.Equal(t, "Ana", result[0].FirstName)
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc.On("List", mock.Anything).Return(nil, errors.New("db fail")).Once()

		req := httptest.NewRequest(http.MethodGet, "/clients", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
		assert.Equal(t, "internal server error", body.Error.Message)
	})
}

func TestGetClient(t *testing.T) {
	mockSvc := new(serviceMocks.MockClientService)
	app := fiber.New()
	app.Get("/clients/:id", GetClient(mockSvc))

	t.Run("success", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Get", mock.Anything, id).Return(&model.ClientDetail{
			Client: model.Client{ID: id, FirstName: "Ana"},
			Cases:  []model.ClientCase{},
		}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/clients/"+id, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result model.ClientDetail
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, "Ana", result.FirstName)
	})

	t.Run("malformed id never reaches the service", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/clients/not-a-uuid", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "INVALID_ID", body.Error.Code)
		assert.Equal(t, "El identificador no es válido", body.Error.Message)
		mockSvc.AssertNotCalled(t, "Get", mock.Anything, "not-a-uuid")
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Get", mock.Anything, id).
			Return(nil, &apperr.NotFoundError{Kind: apperr.KindClient, ID: id}).Once()

		req := httptest.NewRequest(http.MethodGet, "/clients/"+id, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "NOT_FOUND", body.Error.Code)
		assert.Equal(t, "Cliente no encontrado", body.Error.Message)
	})
}

func TestCreateClient(t *testing.T) {
	mockSvc := new(serviceMocks.MockClientService)
	app := fiber.New()
	app.Post("/clients", CreateClient(mockSvc))

	t.Run("created", func(t *testing.T) {
		in := model.ClientInput{FirstName: "Ana", LastName: "Ruiz", Email: "ana@x.com"}
		mockSvc.On("Create", mock.Anything, in).
			Return(&model.Client{ID: uuid.New().String(), Email: in.Email}, nil).Once()

		b, _ := json.Marshal(in)
		req := httptest.NewRequest(http.MethodPost, "/clients", bytes.NewReader(b))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/clients", strings.NewReader("{not json"))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "INVALID_BODY", body.Error.Code)
	})

	t.Run("missing fields", func(t *testing.T) {
		in := model.ClientInput{Email: "ana@x.com"}
		mockSvc.On("Create", mock.Anything, in).
			Return(nil, apperr.RequiredFields("first_name", "last_name", "email")).Once()

		b, _ := json.Marshal(in)
		req := httptest.NewRequest(http.MethodPost, "/clients", bytes.NewReader(b))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "MISSING_FIELDS", body.Error.Code)
		assert.Equal(t, "Se requieren first_name, last_name y email", body.Error.Message)
	})

	t.Run("duplicate email", func(t *testing.T) {
		in := model.ClientInput{FirstName: "Ana", LastName: "Ruiz", Email: "dup@x.com"}
		mockSvc.On("Create", mock.Anything, in).
			Return(nil, &apperr.ConflictError{Kind: apperr.KindClient, Field: "email"}).Once()

		b, _ := json.Marshal(in)
		req := httptest.NewRequest(http.MethodPost, "/clients", bytes.NewReader(b))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "DUPLICATE_EMAIL", body.Error.Code)
		assert.Equal(t, "Ya existe un cliente con ese email", body.Error.Message)
	})
}

func TestUpdateClient(t *testing.T) {
	mockSvc := new(serviceMocks.MockClientService)
	app := fiber.New()
	app.Put("/clients/:id", UpdateClient(mockSvc))

	t.Run("updated", func(t *testing.T) {
		id := uuid.New().String()
		phone := "555-0200"
		u := model.ClientUpdate{Phone: &phone}
		mockSvc.On("Update", mock.Anything, id, u).
			Return(&model.Client{ID: id, Phone: &phone}, nil).Once()

		b, _ := json.Marshal(u)
		req := httptest.NewRequest(http.MethodPut, "/clients/"+id, bytes.NewReader(b))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("empty update", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Update", mock.Anything, id, model.ClientUpdate{}).
			Return(nil, apperr.ErrNoFields).Once()

		req := httptest.NewRequest(http.MethodPut, "/clients/"+id, strings.NewReader("{}"))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "NO_UPDATE_FIELDS", body.Error.Code)
		assert.Equal(t, "No se proporcionaron campos para actualizar", body.Error.Message)
	})
}

func TestDeleteClient(t *testing.T) {
	mockSvc := new(serviceMocks.MockClientService)
	app := fiber.New()
	app.Use(middleware.RequestID())
	app.Delete("/clients/:id", DeleteClient(mockSvc))

	t.Run("deleted", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Delete", mock.Anything, id).Return(nil).Once()

		req := httptest.NewRequest(http.MethodDelete, "/clients/"+id, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		b, _ := io.ReadAll(resp.Body)
		assert.Empty(t, b)
	})

	t.Run("blocked by dependents echoes the request id and blockers", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Delete", mock.Anything, id).Return(&apperr.DependencyError{
			Kind:      apperr.KindClient,
			ID:        id,
			Dependent: apperr.KindCase,
			IDs:       []string{"k1", "k2"},
		}).Once()

		req := httptest.NewRequest(http.MethodDelete, "/clients/"+id, nil)
		req.Header.Set(middleware.RequestIDHeader, "req-123")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "req-123", body.RequestID)
		assert.Equal(t, "DEPENDENT_ROWS", body.Error.Code)
		assert.Equal(t, "No se puede eliminar el cliente porque tiene casos asociados", body.Error.Message)
		require.Contains(t, body.Error.Details, "cases")
		assert.ElementsMatch(t, []any{"k1", "k2"}, body.Error.Details["cases"])
	})
}

func TestListCases(t *testing.T) {
	mockSvc := new(serviceMocks.MockCaseService)
	app := fiber.New()
	app.Get("/cases", ListCases(mockSvc))

	t.Run("filters and pagination forwarded", func(t *testing.T) {
		mockSvc.On("List", mock.Anything, mock.MatchedBy(func(f model.CaseFilter) bool {
			return f.Status != nil && *f.Status == "Open" &&
				f.LawyerID != nil && *f.LawyerID == "l1" &&
				f.ClientID == nil && f.Page == 2 && f.Limit == 5
		})).Return([]model.CaseSummary{}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/cases?case_status=Open&lawyer_id=l1&page=2&limit=5", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid page", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/cases?page=0", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "INVALID_PAGE", body.Error.Code)
	})

	t.Run("invalid limit", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/cases?limit=abc", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "INVALID_LIMIT", body.Error.Code)
	})
}

func TestUpdateCase(t *testing.T) {
	mockSvc := new(serviceMocks.MockCaseService)
	app := fiber.New()
	app.Put("/cases/:caseId", UpdateCase(mockSvc))

	t.Run("invalid status", func(t *testing.T) {
		id := uuid.New().String()
		bad := "Archived"
		mockSvc.On("Update", mock.Anything, id, model.CaseUpdate{Status: &bad}).
			Return(nil, &apperr.ValidationError{Message: "case_status debe ser Open, In-Progress o Closed"}).Once()

		req := httptest.NewRequest(http.MethodPut, "/cases/"+id, strings.NewReader(`{"case_status":"Archived"}`))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "MISSING_FIELDS", body.Error.Code)
		assert.Equal(t, "case_status debe ser Open, In-Progress o Closed", body.Error.Message)
	})
}

func TestSearchCases(t *testing.T) {
	mockSvc := new(serviceMocks.MockSearchService)
	app := fiber.New()
	app.Get("/search", SearchCases(mockSvc))

	t.Run("success", func(t *testing.T) {
		mockSvc.On("Cases", mock.Anything, "divorcio").
			Return([]model.Case{{ID: uuid.New().String(), Title: "Divorcio express"}}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/search?query=divorcio", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result []model.Case
		json.NewDecoder(resp.Body).Decode(&result)
		require.Len(t, result, 1)
		assert.Equal(t, "Divorcio express", result[0].Title)
	})

	t.Run("missing query", func(t *testing.T) {
		mockSvc.On("Cases", mock.Anything, "").Return(nil, apperr.ErrInvalidQuery).Once()

		req := httptest.NewRequest(http.MethodGet, "/search", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "QUERY_REQUIRED", body.Error.Code)
		assert.Equal(t, "Se requiere el parámetro query", body.Error.Message)
	})
}

func TestReceiptSubRoutes(t *testing.T) {
	mockSvc := new(serviceMocks.MockReceiptService)
	app := fiber.New()
	// Registered in the same order as RegisterRoutes so the static
	// segments win over /receipts/:id.
	app.Get("/receipts/lawyer/:lawyerId", ListReceiptsByLawyer(mockSvc))
	app.Get("/receipts/client/:clientId", ListReceiptsByClient(mockSvc))
	app.Get("/receipts/:id", GetReceipt(mockSvc))

	t.Run("by lawyer", func(t *testing.T) {
		lawyerID := uuid.New().String()
		mockSvc.On("ByLawyer", mock.Anything, lawyerID).
			Return([]model.ReceiptWithNames{{Receipt: model.Receipt{ID: "r1"}, ClientName: "Ana Ruiz"}}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/receipts/lawyer/"+lawyerID, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})

	t.Run("by client", func(t *testing.T) {
		clientID := uuid.New().String()
		mockSvc.On("ByClient", mock.Anything, clientID).
			Return([]model.ReceiptWithNames{}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/receipts/client/"+clientID, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("by id", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Get", mock.Anything, id).
			Return(&model.ReceiptWithNames{Receipt: model.Receipt{ID: id}}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/receipts/"+id, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestCreateInvoice(t *testing.T) {
	mockSvc := new(serviceMocks.MockInvoiceService)
	app := fiber.New()
	app.Post("/invoices", CreateInvoice(mockSvc))

	total := 181.5
	in := model.InvoiceInput{ReceiptID: uuid.New().String(), InvoiceNumber: "F-2026-001", TotalAmount: &total}
	mockSvc.On("Create", mock.Anything, in).
		Return(&model.Invoice{ID: uuid.New().String(), Status: "Pending"}, nil).Once()

	b, _ := json.Marshal(in)
	req := httptest.NewRequest(http.MethodPost, "/invoices", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var result model.Invoice
	json.NewDecoder(resp.Body).Decode(&result)
	assert.Equal(t, "Pending", result.Status)
	mockSvc.AssertExpectations(t)
}

func TestUploadCaseDocument(t *testing.T) {
	mockSvc := new(serviceMocks.MockCaseDocumentService)
	app := fiber.New()
	app.Post("/cases/:caseId/documents", UploadCaseDocument(mockSvc))

	t.Run("created", func(t *testing.T) {
		caseID := uuid.New().String()

		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)
		fw, _ := w.CreateFormFile("file", "demanda.pdf")
		fw.Write([]byte("hello"))
		w.Close()

		mockSvc.On("Upload", mock.Anything, caseID, mock.Anything, "demanda.pdf", "application/octet-stream", int64(5)).
			Return(&model.CaseDocument{ID: uuid.New().String(), Filename: "demanda.pdf"}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/cases/"+caseID+"/documents", &buf)
		req.Header.Set("Content-Type", w.FormDataContentType())
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("missing file", func(t *testing.T) {
		caseID := uuid.New().String()

		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)
		w.Close()

		req := httptest.NewRequest(http.MethodPost, "/cases/"+caseID+"/documents", &buf)
		req.Header.Set("Content-Type", w.FormDataContentType())
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "FILE_REQUIRED", body.Error.Code)
		assert.Equal(t, "Se requiere el archivo", body.Error.Message)
	})

	t.Run("malformed case id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/cases/nope/documents", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "INVALID_ID", body.Error.Code)
	})
}

func TestDownloadCaseDocument(t *testing.T) {
	mockSvc := new(serviceMocks.MockCaseDocumentService)
	app := fiber.New()
	app.Get("/documents/:id/download", DownloadCaseDocument(mockSvc))

	id := uuid.New().String()
	doc := &model.CaseDocument{
		ID:          id,
		Filename:    "demanda.pdf",
		ContentType: "application/pdf",
		Size:        7,
	}
	mockSvc.On("Download", mock.Anything, id).
		Return(io.NopCloser(strings.NewReader("content")), doc, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/documents/"+id+"/download", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	assert.Equal(t, `attachment; filename="demanda.pdf"`, resp.Header.Get(fiber.HeaderContentDisposition))

	b, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "content", string(b))
}

func TestPresignCaseDocument(t *testing.T) {
	mockSvc := new(serviceMocks.MockCaseDocumentService)
	app := fiber.New()
	app.Get("/documents/:id/url", PresignCaseDocument(mockSvc))

	t.Run("success", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("PresignURL", mock.Anything, id, presignExpiry).
			Return("https://minio.local/signed", nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/documents/"+id+"/url", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]any
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "https://minio.local/signed", body["url"])
		assert.Equal(t, float64(900), body["expires_in"])
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("PresignURL", mock.Anything, id, presignExpiry).
			Return("", &apperr.NotFoundError{Kind: apperr.KindDocument, ID: id}).Once()

		req := httptest.NewRequest(http.MethodGet, "/documents/"+id+"/url", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "Documento no encontrado", body.Error.Message)
	})
}

func TestDeleteCaseDocument(t *testing.T) {
	mockSvc := new(serviceMocks.MockCaseDocumentService)
	app := fiber.New()
	app.Delete("/documents/:id", DeleteCaseDocument(mockSvc))

	id := uuid.New().String()
	mockSvc.On("Delete", mock.Anything, id).Return(nil).Once()

	req := httptest.NewRequest(http.MethodDelete, "/documents/"+id, nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	mockSvc.AssertExpectations(t)
}

func TestGetLawyer(t *testing.T) {
	mockSvc := new(serviceMocks.MockLawyerService)
	app := fiber.New()
	app.Get("/lawyers/:id", GetLawyer(mockSvc))

	t.Run("success", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Get", mock.Anything, id).
			Return(&model.Lawyer{ID: id, FirstName: "Luis"}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/lawyers/"+id, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Get", mock.Anything, id).
			Return(nil, &apperr.NotFoundError{Kind: apperr.KindLawyer, ID: id}).Once()

		req := httptest.NewRequest(http.MethodGet, "/lawyers/"+id, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "Abogado no encontrado", body.Error.Message)
	})
}
