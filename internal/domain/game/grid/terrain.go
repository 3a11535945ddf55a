package grid

// Terrain classifies a tile for movement and sight.
type Terrain string

const (
	TerrainNormal    Terrain = "normal"
	TerrainDifficult Terrain = "difficult"
	TerrainWater     Terrain = "water"
	TerrainRubble    Terrain = "rubble"
	TerrainWall      Terrain = "wall"
	TerrainPit       Terrain = "pit"
)

// Cover is the four-tier cover classification: none, half,
// three-quarters, total.
type Cover int

const (
	CoverNone Cover = iota
	CoverHalf
	CoverThreeQuarters
	CoverTotal
)

// String returns the display name of the cover tier
func (c Cover) String() string {
	switch c {
	case CoverHalf:
		return "half"
	case CoverThreeQuarters:
		return "three-quarters"
	case CoverTotal:
		return "total"
	default:
		return "none"
	}
}

// Worst returns the more protective of the two cover tiers
func (c Cover) Worst(other Cover) Cover {
	if other > c {
		return other
	}
	return c
}

// Light is a tile's lighting attribute.
type Light string

const (
	LightBright   Light = "bright"
	LightDim      Light = "dim"
	LightDarkness Light = "darkness"
)

type terrainProperties struct {
	moveCost    int
	passable    bool
	blocksSight bool
	cover       Cover
}

// Movement costs are in squares: normal terrain costs 1 unit to enter,
// difficult terrain 2. Impassable terrain has no cost; it is simply
// unreachable.
var terrainTable = map[Terrain]terrainProperties{
	TerrainNormal:    {moveCost: 1, passable: true},
	TerrainDifficult: {moveCost: 2, passable: true},
	TerrainWater:     {moveCost: 2, passable: true},
	TerrainRubble:    {moveCost: 2, passable: true, cover: CoverHalf},
	TerrainWall:      {passable: false, blocksSight: true, cover: CoverTotal},
	TerrainPit:       {passable: false},
}

func (t Terrain) properties() terrainProperties {
	if props, ok := terrainTable[t]; ok {
		return props
	}
	// Unknown terrain behaves as open ground
	return terrainTable[TerrainNormal]
}

// MoveCost returns the cost in movement units to enter a tile of this
// terrain. Impassable terrain returns 0; check Passable first.
func (t Terrain) MoveCost() int {
	return t.properties().moveCost
}

// Passable reports whether entities can occupy this terrain
func (t Terrain) Passable() bool {
	return t.properties().passable
}

// BlocksSight reports whether this terrain interrupts a sight line
func (t Terrain) BlocksSight() bool {
	return t.properties().blocksSight
}

// Cover returns the cover granted by a tile of this terrain when it lies
// between an attacker and a target.
func (t Terrain) Cover() Cover {
	return t.properties().cover
}
