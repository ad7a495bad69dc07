package handlers

import (
	"github.com/leanttro/feiras-de-rua/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SubmissionRequest is the contact form, as JSON or url-encoded/multipart.
// The second group holds the names used by the first version of the form.
type SubmissionRequest struct {
	NomeFeira         string `json:"nomeFeira" form:"nomeFeira"`
	Regiao            string `json:"regiao" form:"regiao"`
	EnderecoCompleto  string `json:"enderecoCompleto" form:"enderecoCompleto"`
	DiasFuncionamento string `json:"diasFuncionamento" form:"diasFuncionamento"`
	Categoria         string `json:"categoria" form:"categoria"`
	NomeResponsavel   string `json:"nomeResponsavel" form:"nomeResponsavel"`
	EmailContato      string `json:"emailContato" form:"emailContato"`
	Whatsapp          string `json:"whatsapp" form:"whatsapp"`
	Descricao         string `json:"descricao" form:"descricao"`

	FairName        string `json:"fairName" form:"fairName"`
	Region          string `json:"region" form:"region"`
	Address         string `json:"address" form:"address"`
	Days            string `json:"days" form:"days"`
	Category        string `json:"category" form:"category"`
	ResponsibleName string `json:"responsibleName" form:"responsibleName"`
	ContactEmail    string `json:"contactEmail" form:"contactEmail"`
	Description     string `json:"description" form:"description"`
}

// Fields flattens the request into the field names the service resolves.
func (r *SubmissionRequest) Fields() map[string]string {
	return map[string]string{
		"nomeFeira":         r.NomeFeira,
		"regiao":            r.Regiao,
		"enderecoCompleto":  r.EnderecoCompleto,
		"diasFuncionamento": r.DiasFuncionamento,
		"categoria":         r.Categoria,
		"nomeResponsavel":   r.NomeResponsavel,
		"emailContato":      r.EmailContato,
		"whatsapp":          r.Whatsapp,
		"descricao":         r.Descricao,
		"fairName":          r.FairName,
		"region":            r.Region,
		"address":           r.Address,
		"days":              r.Days,
		"category":          r.Category,
		"responsibleName":   r.ResponsibleName,
		"contactEmail":      r.ContactEmail,
		"description":       r.Description,
	}
}

type SubmissionHandler struct {
	submissionService *service.SubmissionService
	logger            *zap.Logger
}

func NewSubmissionHandler(submissionService *service.SubmissionService, logger *zap.Logger) *SubmissionHandler {
	return &SubmissionHandler{
		submissionService: submissionService,
		logger:            logger,
	}
}

// Submit godoc
// @Summary Propose a new market
// @Description Accepts a JSON or form contact submission
// @Tags contato
// @Accept json
// @Accept x-www-form-urlencoded
// @Param request body SubmissionRequest true "Market proposal"
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]string
// @Router /submit-fair [post]
func (h *SubmissionHandler) Submit(c *fiber.Ctx) error {
	var req SubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Corpo da requisição inválido",
		})
	}

	if err := h.submissionService.Submit(c.Context(), req.Fields()); err != nil {
		return writeError(c, h.logger, "submit fair", err)
	}

	return c.JSON(fiber.Map{
		"message": "Dados recebidos com sucesso!",
	})
}
