package service

import (
	"strings"

	"github.com/leanttro/feiras-de-rua/internal/models"
)

var bairroRegion = map[string]models.Region{
	"VL FORMOSA": models.RegionEast, "CIDADE AE CARVALHO": models.RegionEast, "ITAQUERA": models.RegionEast,
	"SAO MIGUEL PAULISTA": models.RegionEast, "VILA PRUDENTE": models.RegionEast, "MOOCA": models.RegionEast,
	"SAPOPEMBA": models.RegionEast, "GUAIANASES": models.RegionEast, "VILA MATILDE": models.RegionEast,
	"PENHA": models.RegionEast, "VILA CARRAO": models.RegionEast, "TATUAPE": models.RegionEast,
	"SAO MATEUS": models.RegionEast, "AGUA RASA": models.RegionEast, "ERMELINO MATARAZZO": models.RegionEast,
	"ARTUR ALVIM": models.RegionEast, "ITAIM PAULISTA": models.RegionEast,

	"CAPAO REDONDO": models.RegionSouth, "CAMPO LIMPO": models.RegionSouth, "SACOMA": models.RegionSouth,
	"IPIRANGA": models.RegionSouth, "SAUDE": models.RegionSouth, "JABAQUARA": models.RegionSouth,
	"VILA MARIANA": models.RegionSouth, "CIDADE ADEMAR": models.RegionSouth, "CURSINO": models.RegionSouth,
	"SOCORRO": models.RegionSouth, "CAMPO BELO": models.RegionSouth, "SANTO AMARO": models.RegionSouth,
	"M BOI MIRIM": models.RegionSouth, "GRAJAU": models.RegionSouth,

	"PIRITUBA": models.RegionNorth, "FREGUESIA DO O": models.RegionNorth, "CASA VERDE": models.RegionNorth,
	"LIMAO": models.RegionNorth, "BRASILANDIA": models.RegionNorth, "VILA MARIA": models.RegionNorth,
	"TUCURUVI": models.RegionNorth, "SANTANA": models.RegionNorth, "VILA GUILHERME": models.RegionNorth,
	"TREMEMBE": models.RegionNorth, "JAÇANA": models.RegionNorth,

	"LAPA": models.RegionWest, "BUTANTA": models.RegionWest, "PINHEIROS": models.RegionWest,
	"PERDIZES": models.RegionWest, "RAPOSO TAVARES": models.RegionWest, "JAGUARA": models.RegionWest,
	"BARRA FUNDA": models.RegionWest, "VILA LEOPOLDINA": models.RegionWest,

	"SE": models.RegionCenter, "BOM RETIRO": models.RegionCenter, "REPUBLICA": models.RegionCenter,
	"CONSOLACAO": models.RegionCenter, "LIBERDADE": models.RegionCenter, "BELA VISTA": models.RegionCenter,
	"CAMBUCI": models.RegionCenter, "ACLIMACAO": models.RegionCenter,
}

// ClassifyRegion maps a neighborhood to its region, RegionOther when the
// neighborhood is unknown.
func ClassifyRegion(bairro string) models.Region {
	if region, ok := bairroRegion[strings.ToUpper(strings.TrimSpace(bairro))]; ok {
		return region
	}
	return models.RegionOther
}

// GroupByRegion groups neighborhoods by region, keeping input order within
// each group and skipping blank names.
func GroupByRegion(bairros []string) map[models.Region][]string {
	groups := make(map[models.Region][]string)
	for _, bairro := range bairros {
		if strings.TrimSpace(bairro) == "" {
			continue
		}
		region := ClassifyRegion(bairro)
		groups[region] = append(groups[region], bairro)
	}
	return groups
}
