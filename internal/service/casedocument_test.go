package service

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"legalapi/internal/apperr"
	intMocks "legalapi/internal/integrity/mocks"
	"legalapi/internal/model"
	repoMocks "legalapi/internal/repository/mocks"
	"legalapi/internal/storage"
	storeMocks "legalapi/internal/storage/mocks"
)

func TestCaseDocumentService_Upload(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name             string
		caseID           string
		originalFilename string
		contentType      string
		size             int64
		setupMocks       func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockCaseDocumentRepository, mCheck *intMocks.MockChecker) io.Reader
		wantErr          error
		wantErrMsg       string
	}{
		{
			name:             "happy path",
			caseID:           "k1",
			originalFilename: "demanda.pdf",
			contentType:      "application/pdf",
			size:             11,
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockCaseDocumentRepository, mCheck *intMocks.MockChecker) io.Reader {
				r := strings.NewReader("hello world")
				mCheck.On("Exists", ctx, apperr.KindCase, "k1").Return(nil)
				mStore.On("Put", ctx, mock.MatchedBy(func(key string) bool {
					return strings.HasPrefix(key, "cases/") && strings.HasSuffix(key, ".pdf")
				}), r, storage.PutObjectOptions{
					Size:        11,
					ContentType: "application/pdf",
					Metadata: map[string]string{
						"original-filename": "demanda.pdf",
						"case-id":           "k1",
					},
				}).Return(storage.ObjectInfo{
					Key:         "cases/uuid.pdf",
					Size:        11,
					ContentType: "application/pdf",
				}, nil)

				mRepo.On("Create", ctx, mock.MatchedBy(func(d *model.CaseDocument) bool {
					return d.ID != "" && d.CaseID == "k1" &&
						d.Filename == "demanda.pdf" && d.StoragePath == "cases/uuid.pdf" &&
						d.Size == 11
				})).Return(&model.CaseDocument{ID: "gen-id"}, nil)

				return r
			},
		},
		{
			name:             "validation error - nil reader",
			caseID:           "k1",
			originalFilename: "demanda.pdf",
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockCaseDocumentRepository, mCheck *intMocks.MockChecker) io.Reader {
				return nil
			},
			wantErr: ErrReaderNil,
		},
		{
			name:             "unknown case stops before the upload",
			caseID:           "missing",
			originalFilename: "demanda.pdf",
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockCaseDocumentRepository, mCheck *intMocks.MockChecker) io.Reader {
				mCheck.On("Exists", ctx, apperr.KindCase, "missing").
					Return(&apperr.NotFoundError{Kind: apperr.KindCase, ID: "missing"})
				return strings.NewReader("hello")
			},
			wantErrMsg: "Caso no encontrado",
		},
		{
			name:             "storage error",
			caseID:           "k1",
			originalFilename: "demanda.pdf",
			size:             5,
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockCaseDocumentRepository, mCheck *intMocks.MockChecker) io.Reader {
				r := strings.NewReader("hello")
				mCheck.On("Exists", ctx, apperr.KindCase, "k1").Return(nil)
				mStore.On("Put", ctx, mock.Anything, r, mock.Anything).
					Return(storage.ObjectInfo{}, errors.New("storage fail"))
				return r
			},
			wantErrMsg: "upload to storage: storage fail",
		},
		{
			name:             "repository error with successful rollback",
			caseID:           "k1",
			originalFilename: "demanda.pdf",
			size:             5,
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockCaseDocumentRepository, mCheck *intMocks.MockChecker) io.Reader {
				r := strings.NewReader("hello")
				mCheck.On("Exists", ctx, apperr.KindCase, "k1").Return(nil)
				mStore.On("Put", ctx, mock.Anything, r, mock.Anything).
					Return(func(ctx context.Context, key string, r io.Reader, opt storage.PutObjectOptions) storage.ObjectInfo {
						return storage.ObjectInfo{Key: key}
					}, nil)
				mRepo.On("Create", ctx, mock.Anything).
					Return(nil, errors.New("db fail"))
				mStore.On("Delete", ctx, mock.Anything).Return(nil)
				return r
			},
			wantErrMsg: "db save failed: db fail",
		},
		{
			name:             "repository error with failed rollback",
			caseID:           "k1",
			originalFilename: "demanda.pdf",
			size:             5,
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockCaseDocumentRepository, mCheck *intMocks.MockChecker) io.Reader {
				r := strings.NewReader("hello")
				mCheck.On("Exists", ctx, apperr.KindCase, "k1").Return(nil)
				mStore.On("Put", ctx, mock.Anything, r, mock.Anything).
					Return(func(ctx context.Context, key string, r io.Reader, opt storage.PutObjectOptions) storage.ObjectInfo {
						return storage.ObjectInfo{Key: key}
					}, nil)
				mRepo.On("Create", ctx, mock.Anything).
					Return(nil, errors.New("db fail"))
				mStore.On("Delete", ctx, mock.Anything).Return(errors.New("delete fail"))
				return r
			},
			wantErrMsg: "rollback delete failed: delete fail",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mStore := new(storeMocks.MockStorage)
			mRepo := new(repoMocks.MockCaseDocumentRepository)
			mCheck := new(intMocks.MockChecker)
			svc := NewCaseDocumentService(mStore, mRepo, mCheck)

			r := tt.setupMocks(mStore, mRepo, mCheck)

			doc, err := svc.Upload(ctx, tt.caseID, r, tt.originalFilename, tt.contentType, tt.size)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else if tt.wantErrMsg != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrMsg)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, doc)
			}

			mStore.AssertExpectations(t)
			mRepo.AssertExpectations(t)
			mCheck.AssertExpectations(t)
		})
	}
}

func TestCaseDocumentService_ListByCase(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path", func(t *testing.T) {
		mRepo := new(repoMocks.MockCaseDocumentRepository)
		mCheck := new(intMocks.MockChecker)
		svc := NewCaseDocumentService(nil, mRepo, mCheck)

		mCheck.On("Exists", ctx, apperr.KindCase, "k1").Return(nil)
		mRepo.On("ByCase", ctx, "k1").Return([]model.CaseDocument{{ID: "d1"}}, nil)

		got, err := svc.ListByCase(ctx, "k1")

		assert.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("unknown case", func(t *testing.T) {
		mRepo := new(repoMocks.MockCaseDocumentRepository)
		mCheck := new(intMocks.MockChecker)
		svc := NewCaseDocumentService(nil, mRepo, mCheck)

		mCheck.On("Exists", ctx, apperr.KindCase, "missing").
			Return(&apperr.NotFoundError{Kind: apperr.KindCase, ID: "missing"})

		_, err := svc.ListByCase(ctx, "missing")

		var nf *apperr.NotFoundError
		assert.ErrorAs(t, err, &nf)
		mRepo.AssertNotCalled(t, "ByCase", mock.Anything, mock.Anything)
	})
}

func TestCaseDocumentService_Download(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		mRepo := new(repoMocks.MockCaseDocumentRepository)
		svc := NewCaseDocumentService(mStore, mRepo, nil)

		doc := &model.CaseDocument{ID: "d1", StoragePath: "cases/uuid.pdf", Filename: "demanda.pdf"}
		mRepo.On("FindByID", ctx, "d1").Return(doc, nil)
		mStore.On("Get", ctx, "cases/uuid.pdf").
			Return(io.NopCloser(strings.NewReader("content")), storage.ObjectInfo{Key: "cases/uuid.pdf"}, nil)

		rc, got, err := svc.Download(ctx, "d1")

		require.NoError(t, err)
		defer rc.Close()
		assert.Equal(t, "demanda.pdf", got.Filename)
		data, _ := io.ReadAll(rc)
		assert.Equal(t, "content", string(data))
	})

	t.Run("metadata row missing maps to not found", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		mRepo := new(repoMocks.MockCaseDocumentRepository)
		svc := NewCaseDocumentService(mStore, mRepo, nil)

		mRepo.On("FindByID", ctx, "missing").Return(nil, sql.ErrNoRows)

		_, _, err := svc.Download(ctx, "missing")

		var nf *apperr.NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, apperr.KindDocument, nf.Kind)
		mStore.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})
}

func TestCaseDocumentService_PresignURL(t *testing.T) {
	ctx := context.Background()

	mStore := new(storeMocks.MockStorage)
	mRepo := new(repoMocks.MockCaseDocumentRepository)
	svc := NewCaseDocumentService(mStore, mRepo, nil)

	doc := &model.CaseDocument{ID: "d1", StoragePath: "cases/uuid.pdf"}
	mRepo.On("FindByID", ctx, "d1").Return(doc, nil)
	mStore.On("PresignGet", ctx, "cases/uuid.pdf", 15*time.Minute).
		Return("https://minio.local/signed", nil)

	url, err := svc.PresignURL(ctx, "d1", 15*time.Minute)

	assert.NoError(t, err)
	assert.Equal(t, "https://minio.local/signed", url)
	mStore.AssertExpectations(t)
}

func TestCaseDocumentService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("storage first then the metadata row", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		mRepo := new(repoMocks.MockCaseDocumentRepository)
		svc := NewCaseDocumentService(mStore, mRepo, nil)

		doc := &model.CaseDocument{ID: "d1", StoragePath: "cases/uuid.pdf"}
		mRepo.On("FindByID", ctx, "d1").Return(doc, nil)
		mStore.On("Delete", ctx, "cases/uuid.pdf").Return(nil)
		mRepo.On("Delete", ctx, "d1").Return(nil)

		assert.NoError(t, svc.Delete(ctx, "d1"))
		mStore.AssertExpectations(t)
		mRepo.AssertExpectations(t)
	})

	t.Run("storage failure keeps the row", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		mRepo := new(repoMocks.MockCaseDocumentRepository)
		svc := NewCaseDocumentService(mStore, mRepo, nil)

		doc := &model.CaseDocument{ID: "d1", StoragePath: "cases/uuid.pdf"}
		mRepo.On("FindByID", ctx, "d1").Return(doc, nil)
		mStore.On("Delete", ctx, "cases/uuid.pdf").Return(errors.New("storage fail"))

		err := svc.Delete(ctx, "d1")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "delete storage: storage fail")
		mRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
