package grid

// EntityType classifies a map entity.
type EntityType string

const (
	EntityTypeCharacter EntityType = "character"
	EntityTypeMonster   EntityType = "monster"
	EntityTypeObject    EntityType = "object"
	// EntityTypeMarker is a non-blocking annotation, e.g. an area effect
	// origin. Markers never occupy a tile.
	EntityTypeMarker EntityType = "marker"
)

// MapEntity is something placed on the map. Speed and MovementUsed are
// in movement units (squares): normal terrain costs 1 unit to enter,
// difficult terrain 2. MovementUsed accumulates within a turn and never
// exceeds Speed; ResetMovement clears it at the turn boundary.
type MapEntity struct {
	ID           string     `json:"id"`
	Type         EntityType `json:"type"`
	Position     Position   `json:"position"`
	Speed        int        `json:"speed"`
	MovementUsed int        `json:"movement_used"`
}

// Blocking reports whether the entity occupies its tile exclusively
func (e *MapEntity) Blocking() bool {
	return e.Type != EntityTypeMarker
}

// RemainingMovement returns the movement budget left this turn, in
// movement units.
func (e *MapEntity) RemainingMovement() int {
	remaining := e.Speed - e.MovementUsed
	if remaining < 0 {
		return 0
	}
	return remaining
}
