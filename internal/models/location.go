package models

// Location represents a single addressable point, containing its decomposed Japanese address components and its precise geographic coordinates.
type Location struct {
	ID           int     `json:"id"`
	Prefecture   string  `json:"prefecture"`
	Municipality string  `json:"municipality"`
	Address1     string  `json:"address1"`
	Address2     string  `json:"address2"`
	BlockLot     string  `json:"block_lot"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
}

// Address precision levels, from coarsest to finest.
const (
	LevelPrefecture   = 1
	LevelMunicipality = 3
	LevelAddress1     = 5
	LevelAddress2     = 6
	LevelBlockLot     = 7
)

// FullName joins the address components in Japanese order.
func (l Location) FullName() string {
	return l.Prefecture + l.Municipality + l.Address1 + l.Address2 + l.BlockLot
}

// Level reports the finest address component present on the location.
func (l Location) Level() int {
	switch {
	case l.BlockLot != "":
		return LevelBlockLot
	case l.Address2 != "":
		return LevelAddress2
	case l.Address1 != "":
		return LevelAddress1
	case l.Municipality != "":
		return LevelMunicipality
	default:
		return LevelPrefecture
	}
}
