package models

// Region is one of the fixed geographic labels derived from a neighborhood.
type Region string

const (
	RegionEast   Region = "Zona Leste"
	RegionSouth  Region = "Zona Sul"
	RegionNorth  Region = "Zona Norte"
	RegionWest   Region = "Zona Oeste"
	RegionCenter Region = "Centro"
	RegionOther  Region = "Outras"
)
