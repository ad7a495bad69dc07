package repository

import (
	"testing"

	"github.com/leanttro/feiras-de-rua/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildListQuery(t *testing.T) {
	tests := []struct {
		name    string
		listing models.Listing
		filter  ListFilter
		sql     string
		args    []any
	}{
		{
			name:    "no filters uses default limit",
			listing: models.ListingFeiras,
			sql:     "SELECT * FROM feiras ORDER BY id LIMIT $1",
			args:    []any{uint64(1000)},
		},
		{
			name:    "tipo and bairro are bound",
			listing: models.ListingFeiras,
			filter:  ListFilter{Tipo: "gastronomica", Bairro: "LAPA", Limit: 10},
			sql:     "SELECT * FROM feiras WHERE tipo ILIKE $1 AND bairro = $2 ORDER BY id LIMIT $3",
			args:    []any{"%gastronomica%", "LAPA", uint64(10)},
		},
		{
			name:    "like wildcards in tipo are escaped",
			listing: models.ListingFeiras,
			filter:  ListFilter{Tipo: "50%_off"},
			sql:     "SELECT * FROM feiras WHERE tipo ILIKE $1 ORDER BY id LIMIT $2",
			args:    []any{`%50\%\_off%`, uint64(1000)},
		},
		{
			name:    "category alias applies its tipo",
			listing: models.ListingArtesanais,
			sql:     "SELECT * FROM feiras WHERE tipo ILIKE $1 ORDER BY id LIMIT $2",
			args:    []any{"%artesanal%", uint64(1000)},
		},
		{
			name:    "limit is clamped",
			listing: models.ListingBlog,
			filter:  ListFilter{Limit: 500},
			sql:     "SELECT id, titulo, subtitulo, imagem_url, data_publicacao, slug FROM blog ORDER BY data_publicacao DESC, id DESC LIMIT $1",
			args:    []any{uint64(20)},
		},
		{
			name:    "fixed projection ordered by name",
			listing: models.ListingFeirasLivres,
			filter:  ListFilter{Bairro: "  SE "},
			sql:     "SELECT id, nome, dias_funcionamento, horario_inicio, horario_fim, endereco, bairro, latitude, longitude, slug FROM feiras_livres WHERE bairro = $1 ORDER BY nome LIMIT $2",
			args:    []any{"SE", uint64(1000)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args, err := BuildListQuery(tt.listing, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.sql, sql)
			assert.Equal(t, tt.args, args)
		})
	}
}

func TestBuildDistinctQuery(t *testing.T) {
	sql, args, err := BuildDistinctQuery("feiras", "bairro")
	require.NoError(t, err)
	assert.Equal(t, "SELECT DISTINCT bairro FROM feiras WHERE bairro IS NOT NULL AND bairro <> $1 ORDER BY bairro", sql)
	assert.Equal(t, []any{""}, args)
}

func TestBuildDetailQueries(t *testing.T) {
	sql, args, err := BuildDetailQuery("blog", "primeira-feira")
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM blog WHERE slug = $1 LIMIT 1", sql)
	assert.Equal(t, []any{"primeira-feira"}, args)

	sql, args, err = BuildDetailByIDQuery("feiras", 12)
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM feiras WHERE id = $1 LIMIT 1", sql)
	assert.Equal(t, []any{int64(12)}, args)
}

func TestBuildSlugQuery(t *testing.T) {
	sql, _, err := BuildSlugQuery("feiras", "")
	require.NoError(t, err)
	assert.Equal(t, "SELECT slug FROM feiras WHERE slug IS NOT NULL AND slug <> $1 ORDER BY slug", sql)

	sql, _, err = BuildSlugQuery("blog", "data_publicacao")
	require.NoError(t, err)
	assert.Equal(t, "SELECT slug, data_publicacao FROM blog WHERE slug IS NOT NULL AND slug <> $1 ORDER BY slug", sql)
}

func TestBuildSnapshotQuery(t *testing.T) {
	sql, args, err := BuildSnapshotQuery("feiras", 2000)
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM feiras ORDER BY id LIMIT $1", sql)
	assert.Equal(t, []any{uint64(2000)}, args)
}
