package service

import (
	"context"
	"sort"
	"strings"

	"github.com/leanttro/feiras-de-rua/internal/models"
	"github.com/leanttro/feiras-de-rua/internal/repository"

	"github.com/xeipuuv/gojsonschema"
	"go.uber.org/zap"
)

// submissionField pairs a form field with the name the first version of the
// form used for it.
type submissionField struct {
	name  string
	alias string
}

var submissionFields = []submissionField{
	{"nomeFeira", "fairName"},
	{"regiao", "region"},
	{"enderecoCompleto", "address"},
	{"diasFuncionamento", "days"},
	{"categoria", "category"},
	{"nomeResponsavel", "responsibleName"},
	{"emailContato", "contactEmail"},
	{"whatsapp", ""},
	{"descricao", "description"},
}

var submissionSchema = gojsonschema.NewStringLoader(`{
	"type": "object",
	"required": ["nomeFeira", "enderecoCompleto"],
	"properties": {
		"nomeFeira": {"type": "string", "minLength": 1},
		"enderecoCompleto": {"type": "string", "minLength": 1}
	}
}`)

type SubmissionService struct {
	repo   *repository.ContactRepository
	schema *gojsonschema.Schema
	logger *zap.Logger
}

func NewSubmissionService(repo *repository.ContactRepository, logger *zap.Logger) (*SubmissionService, error) {
	schema, err := gojsonschema.NewSchema(submissionSchema)
	if err != nil {
		return nil, err
	}
	return &SubmissionService{
		repo:   repo,
		schema: schema,
		logger: logger,
	}, nil
}

// Submit validates the raw form fields and stores one contact row. Nothing
// is written when validation fails.
func (s *SubmissionService) Submit(ctx context.Context, fields map[string]string) error {
	values := make(map[string]string, len(submissionFields))
	for _, f := range submissionFields {
		v := fields[f.name]
		if strings.TrimSpace(v) == "" && f.alias != "" {
			v = fields[f.alias]
		}
		values[f.name] = sanitizeUTF8(v)
	}

	if err := s.validate(values); err != nil {
		return err
	}

	sub := &models.Submission{
		NomeFeira:         values["nomeFeira"],
		Regiao:            optional(values["regiao"]),
		Endereco:          values["enderecoCompleto"],
		DiasFuncionamento: optional(values["diasFuncionamento"]),
		Categoria:         optional(values["categoria"]),
		NomeResponsavel:   optional(values["nomeResponsavel"]),
		EmailContato:      optional(values["emailContato"]),
		Whatsapp:          optional(values["whatsapp"]),
		Descricao:         optional(values["descricao"]),
	}

	if err := s.repo.Create(ctx, sub); err != nil {
		return err
	}

	s.logger.Info("Market submission stored", zap.String("nome_feira", sub.NomeFeira))
	return nil
}

func (s *SubmissionService) validate(values map[string]string) error {
	doc := make(map[string]any, len(values))
	for k, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			doc[k] = trimmed
		}
	}

	result, err := s.schema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return err
	}
	if result.Valid() {
		return nil
	}

	var invalid []string
	for _, e := range result.Errors() {
		field := e.Field()
		if e.Type() == "required" {
			if p, ok := e.Details()["property"].(string); ok {
				field = p
			}
		}
		invalid = append(invalid, field)
	}
	sort.Strings(invalid)
	return &ValidationError{Fields: invalid}
}

func optional(v string) *string {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	return &v
}
