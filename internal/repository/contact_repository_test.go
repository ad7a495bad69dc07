package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/leanttro/feiras-de-rua/internal/models"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestContactRepository_CreateCommits(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewContactRepository(mock, zap.NewNop())
	email := "ana@example.com"
	var none *string

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO contato").
		WithArgs("Feira X", none, "Rua Y, 10", none, none, none, &email, none, none).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	err = repo.Create(context.Background(), &models.Submission{
		NomeFeira:    "Feira X",
		Endereco:     "Rua Y, 10",
		EmailContato: &email,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactRepository_CreateRollsBack(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewContactRepository(mock, zap.NewNop())
	var none *string

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO contato").
		WithArgs("Feira X", none, "Rua Y", none, none, none, none, none, none).
		WillReturnError(&pgconn.PgError{Code: "42P01", Message: `relation "contato" does not exist`})
	mock.ExpectRollback()

	err = repo.Create(context.Background(), &models.Submission{NomeFeira: "Feira X", Endereco: "Rua Y"})

	var schemaErr *SchemaError
	require.True(t, errors.As(err, &schemaErr))
	assert.Equal(t, "contato", schemaErr.Object)
	assert.NoError(t, mock.ExpectationsWereMet())
}
