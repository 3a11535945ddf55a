package grid

// Tile is a single map cell. Discovered is sticky: once a tile has been
// seen it stays discovered even when it falls back out of sight. Visible
// is recomputed from scratch on every visibility pass.
type Tile struct {
	Terrain    Terrain `json:"terrain"`
	Light      Light   `json:"light"`
	Discovered bool    `json:"discovered"`
	Visible    bool    `json:"visible"`
}
