package models

// Listing describes a JSON listing endpoint: the table it reads, the
// projection, the fixed ordering and where each row's detail page lives.
type Listing struct {
	Name      string
	Table     string
	Columns   []string // nil selects every column
	OrderBy   []string
	Category  string // implicit tipo filter when the request carries none
	URLPrefix string

	DefaultLimit uint64
	MaxLimit     uint64
}

// DetailPage describes an HTML page rendered from one row looked up by slug.
type DetailPage struct {
	Table     string
	URLPrefix string
	Template  string
	DateField string // column used as sitemap lastmod, empty for none
}

var (
	ListingFeiras = Listing{
		Name:         "feiras",
		Table:        "feiras",
		OrderBy:      []string{"id"},
		URLPrefix:    "/feiras/",
		DefaultLimit: 1000,
		MaxLimit:     5000,
	}

	ListingFeirasLivres = Listing{
		Name:  "feiras_livres",
		Table: "feiras_livres",
		Columns: []string{
			"id", "nome", "dias_funcionamento", "horario_inicio", "horario_fim",
			"endereco", "bairro", "latitude", "longitude", "slug",
		},
		OrderBy:      []string{"nome"},
		URLPrefix:    "/feiras-livres/",
		DefaultLimit: 1000,
		MaxLimit:     5000,
	}

	// Category aliases of the generic listing.
	ListingGastronomicas = categoryAlias("gastronomicas", "gastronomica")
	ListingArtesanais    = categoryAlias("artesanais", "artesanal")
	ListingOutrasFeiras  = categoryAlias("outrasfeiras", "outra")

	ListingBlog = Listing{
		Name:  "blog",
		Table: "blog",
		Columns: []string{
			"id", "titulo", "subtitulo", "imagem_url", "data_publicacao", "slug",
		},
		OrderBy:      []string{"data_publicacao DESC", "id DESC"},
		URLPrefix:    "/blog/",
		DefaultLimit: 3,
		MaxLimit:     20,
	}
)

func categoryAlias(name, category string) Listing {
	l := ListingFeiras
	l.Name = name
	l.Category = category
	return l
}

var (
	PageFeira        = DetailPage{Table: "feiras", URLPrefix: "/feiras/", Template: "feira"}
	PageFeiraLivre   = DetailPage{Table: "feiras_livres", URLPrefix: "/feiras-livres/", Template: "feira"}
	PageGastronomica = DetailPage{Table: "gastronomicas", URLPrefix: "/gastronomicas/", Template: "feira"}
	PageArtesanal    = DetailPage{Table: "artesanais", URLPrefix: "/artesanais/", Template: "feira"}
	PageOutraFeira   = DetailPage{Table: "outrasfeiras", URLPrefix: "/outrasfeiras/", Template: "feira"}
	PageBlogPost     = DetailPage{Table: "blog", URLPrefix: "/blog/", Template: "blog_post", DateField: "data_publicacao"}
)

// DetailPages lists every detail page in sitemap order.
var DetailPages = []DetailPage{
	PageFeira,
	PageFeiraLivre,
	PageGastronomica,
	PageArtesanal,
	PageOutraFeira,
	PageBlogPost,
}
