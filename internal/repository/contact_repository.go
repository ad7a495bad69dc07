package repository

import (
	"context"

	"github.com/leanttro/feiras-de-rua/internal/models"

	"github.com/Masterminds/squirrel"
	"go.uber.org/zap"
)

const contactTable = "contato"

type ContactRepository struct {
	db     DB
	logger *zap.Logger
}

func NewContactRepository(db DB, logger *zap.Logger) *ContactRepository {
	return &ContactRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts one submission inside its own transaction: committed on
// success, rolled back on any failure.
func (r *ContactRepository) Create(ctx context.Context, s *models.Submission) error {
	query := squirrel.Insert(contactTable).
		Columns("nome_feira", "regiao", "endereco", "dias_funcionamento", "categoria",
			"nome_responsavel", "email_contato", "whatsapp", "descricao").
		Values(s.NomeFeira, s.Regiao, s.Endereco, s.DiasFuncionamento, s.Categoria,
			s.NomeResponsavel, s.EmailContato, s.Whatsapp, s.Descricao).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return classify(err, contactTable)
	}

	if _, err := tx.Exec(ctx, sql, args...); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			r.logger.Error("Failed to roll back contact insert", zap.Error(rbErr))
		}
		return classify(err, contactTable)
	}

	if err := tx.Commit(ctx); err != nil {
		return classify(err, contactTable)
	}
	return nil
}
