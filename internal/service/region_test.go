package service

import (
	"testing"

	"github.com/leanttro/feiras-de-rua/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestClassifyRegion(t *testing.T) {
	assert.Equal(t, models.RegionEast, ClassifyRegion("ITAQUERA"))
	assert.Equal(t, models.RegionEast, ClassifyRegion("  itaquera "))
	assert.Equal(t, models.RegionWest, ClassifyRegion("Pinheiros"))
	assert.Equal(t, models.RegionCenter, ClassifyRegion("SE"))
	assert.Equal(t, models.RegionNorth, ClassifyRegion("JAÇANA"))
	assert.Equal(t, models.RegionOther, ClassifyRegion("ATIBAIA"))
	assert.Equal(t, models.RegionOther, ClassifyRegion(""))
}

func TestClassifyRegionCoversMap(t *testing.T) {
	for bairro, region := range bairroRegion {
		assert.Equal(t, region, ClassifyRegion(bairro), bairro)
	}
}

func TestGroupByRegion(t *testing.T) {
	groups := GroupByRegion([]string{"ITAQUERA", "ATIBAIA", " ", "MOOCA"})

	assert.Equal(t, map[models.Region][]string{
		models.RegionEast:  {"ITAQUERA", "MOOCA"},
		models.RegionOther: {"ATIBAIA"},
	}, groups)
}
