package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"legalapi/internal/apperr"
	"legalapi/internal/model"
)

var clientCols = []string{"id", "first_name", "last_name", "email", "phone", "address", "created_at"}

func TestClientPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewClientPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	phone := "555-0100"
	in := &model.Client{
		ID:        "client-uuid",
		FirstName: "Ana",
		LastName:  "Ruiz",
		Email:     "ana@x.com",
		Phone:     &phone,
	}

	rows := sqlmock.NewRows(clientCols).
		AddRow(in.ID, in.FirstName, in.LastName, in.Email, in.Phone, nil, now)

	mock.ExpectQuery("INSERT INTO clients").
		WithArgs(in.ID, in.FirstName, in.LastName, in.Email, in.Phone, in.Address).
		WillReturnRows(rows)

	got, err := repo.Create(ctx, in)

	assert.NoError(t, err)
	assert.Equal(t, "client-uuid", got.ID)
	assert.Equal(t, "ana@x.com", got.Email)
	assert.Nil(t, got.Address)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewClientPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows(clientCols).
			AddRow("c1", "Ana", "Ruiz", "ana@x.com", nil, nil, time.Now())

		mock.ExpectQuery("SELECT (.+) FROM clients WHERE id = ?").
			WithArgs("c1").
			WillReturnRows(rows)

		got, err := repo.FindByID(ctx, "c1")

		assert.NoError(t, err)
		assert.Equal(t, "Ana", got.FirstName)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM clients WHERE id = ?").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		got, err := repo.FindByID(ctx, "missing")

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, got)
	})
}

func TestClientPostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewClientPostgres(db)
	ctx := context.Background()

	rows := sqlmock.NewRows(clientCols).
		AddRow("c1", "Ana", "Ruiz", "ana@x.com", nil, nil, time.Now()).
		AddRow("c2", "Luis", "Vega", "luis@x.com", nil, nil, time.Now())

	mock.ExpectQuery("SELECT (.+) FROM clients ORDER BY last_name, first_name").
		WillReturnRows(rows)

	got, err := repo.List(ctx)

	assert.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, "Luis", got[1].FirstName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientPostgres_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewClientPostgres(db)
	ctx := context.Background()

	t.Run("partial update numbers placeholders by present fields", func(t *testing.T) {
		email := "nueva@x.com"
		phone := "555-0200"

		rows := sqlmock.NewRows(clientCols).
			AddRow("c1", "Ana", "Ruiz", email, phone, nil, time.Now())

		// Only email and phone present: SET email = $1, phone = $2 WHERE id = $3
		mock.ExpectQuery(`UPDATE clients SET email = \$1, phone = \$2 WHERE id = \$3 RETURNING`).
			WithArgs(email, phone, "c1").
			WillReturnRows(rows)

		got, err := repo.Update(ctx, "c1", model.ClientUpdate{Email: &email, Phone: &phone})

		assert.NoError(t, err)
		assert.Equal(t, email, got.Email)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no fields returns ErrNoFields without touching the db", func(t *testing.T) {
		got, err := repo.Update(ctx, "c1", model.ClientUpdate{})

		assert.ErrorIs(t, err, apperr.ErrNoFields)
		assert.Nil(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestClientPostgres_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewClientPostgres(db)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM clients WHERE id = ?").
			WithArgs("c1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, "c1"))
	})

	t.Run("db error", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM clients WHERE id = ?").
			WithArgs("c1").
			WillReturnError(errors.New("boom"))

		assert.Error(t, repo.Delete(ctx, "c1"))
	})
}
