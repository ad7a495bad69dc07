package models

// Submission is a contact form entry proposing a new market. Optional
// fields are nil when the submitter left them blank.
type Submission struct {
	NomeFeira         string  `db:"nome_feira"`
	Regiao            *string `db:"regiao"`
	Endereco          string  `db:"endereco"`
	DiasFuncionamento *string `db:"dias_funcionamento"`
	Categoria         *string `db:"categoria"`
	NomeResponsavel   *string `db:"nome_responsavel"`
	EmailContato      *string `db:"email_contato"`
	Whatsapp          *string `db:"whatsapp"`
	Descricao         *string `db:"descricao"`
}
