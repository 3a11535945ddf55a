// Package snapshot encodes and decodes engine state for the
// orchestration layer. The orchestrator persists these blobs however it
// likes; the envelope makes them self-describing so a stored snapshot is
// never an untyped blob: every payload carries its kind and schema
// version, and decoding dispatches on the version so future schema
// changes get an explicit migration step instead of a silent break.
package snapshot

import (
	"encoding/json"

	"github.com/KirkDiggler/rpg-rules-engine/internal/domain/game/combat"
	"github.com/KirkDiggler/rpg-rules-engine/internal/domain/game/grid"
	engerr "github.com/KirkDiggler/rpg-rules-engine/internal/errors"
)

// Snapshot kinds.
const (
	KindCombat  = "combat"
	KindGameMap = "game_map"
)

// CurrentVersion is the schema version written by this build. Bump it
// together with a migration case in decode.
const CurrentVersion = 1

type envelope struct {
	Version int             `json:"version"`
	Kind    string          `json:"kind"`
	Data    json.RawMessage `json:"data"`
}

// EncodeCombat serializes a combat into a versioned snapshot
func EncodeCombat(c *combat.Combat) ([]byte, error) {
	if c == nil {
		return nil, engerr.InvalidArgument("combat cannot be nil")
	}
	return encode(KindCombat, c)
}

// DecodeCombat restores a combat from a versioned snapshot
func DecodeCombat(data []byte) (*combat.Combat, error) {
	c := &combat.Combat{}
	if err := decode(data, KindCombat, c); err != nil {
		return nil, err
	}
	if c.Combatants == nil {
		c.Combatants = make(map[string]*combat.Combatant)
	}
	return c, nil
}

// EncodeMap serializes a game map into a versioned snapshot
func EncodeMap(m *grid.GameMap) ([]byte, error) {
	if m == nil {
		return nil, engerr.InvalidArgument("map cannot be nil")
	}
	return encode(KindGameMap, m)
}

// DecodeMap restores a game map from a versioned snapshot
func DecodeMap(data []byte) (*grid.GameMap, error) {
	m := &grid.GameMap{}
	if err := decode(data, KindGameMap, m); err != nil {
		return nil, err
	}
	if m.Entities == nil {
		m.Entities = make(map[string]*grid.MapEntity)
	}
	return m, nil
}

func encode(kind string, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, engerr.Wrap(err, "failed to marshal snapshot payload")
	}
	return json.Marshal(envelope{
		Version: CurrentVersion,
		Kind:    kind,
		Data:    data,
	})
}

func decode(data []byte, kind string, payload any) error {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return engerr.Validationf("snapshot is not valid JSON: %v", err)
	}
	if env.Kind != kind {
		return engerr.Validationf("snapshot kind %q, expected %q", env.Kind, kind)
	}

	switch env.Version {
	case 1:
		if err := json.Unmarshal(env.Data, payload); err != nil {
			return engerr.Validationf("malformed v%d %s snapshot: %v", env.Version, kind, err)
		}
		return nil
	default:
		// Older engines refuse newer snapshots; newer engines add a
		// migration case per retired version.
		return engerr.Validationf("unsupported snapshot version %d", env.Version)
	}
}
