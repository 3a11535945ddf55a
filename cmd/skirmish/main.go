// Command skirmish runs a seeded demo combat end to end: it builds a
// map, starts a fight between a small party and a goblin band, and
// drives movement, attacks and visibility until one side is defeated.
// It exists to exercise the engines the way an orchestrator would; run
// it with SKIRMISH_SEED to replay a fight exactly.
package main

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/rpg-rules-engine/internal/config"
	"github.com/KirkDiggler/rpg-rules-engine/internal/dice"
	"github.com/KirkDiggler/rpg-rules-engine/internal/domain/game/combat"
	"github.com/KirkDiggler/rpg-rules-engine/internal/domain/game/grid"
	combatsvc "github.com/KirkDiggler/rpg-rules-engine/internal/services/combat"
	"github.com/KirkDiggler/rpg-rules-engine/internal/services/spatial"
	"github.com/KirkDiggler/rpg-rules-engine/internal/snapshot"
	"github.com/KirkDiggler/rpg-rules-engine/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err == nil {
		fmt.Println("Loaded .env file")
	}
	logger.Init()

	cfg, err := config.Load()
	if err != nil {
		logger.Log.Fatalf("Failed to load config: %v", err)
	}

	if err := run(cfg); err != nil {
		logger.Log.Fatalf("Skirmish failed: %v", err)
	}
}

func run(cfg *config.Config) error {
	roller := dice.NewSeededRoller(cfg.Skirmish.Seed)
	engine := combatsvc.NewService(&combatsvc.ServiceConfig{Roller: roller})

	log := logger.Log.WithFields(logrus.Fields{
		"component": "skirmish",
		"seed":      cfg.Skirmish.Seed,
	})

	m, err := spatial.NewMap(cfg.Skirmish.MapWidth, cfg.Skirmish.MapHeight, "skirmish field",
		grid.TerrainNormal, grid.TerrainWall)
	if err != nil {
		return err
	}

	// A strip of rubble through the middle gives the fight some cover
	// and difficult ground.
	midX := cfg.Skirmish.MapWidth / 2
	for y := 2; y < cfg.Skirmish.MapHeight-2; y += 2 {
		m.TileAt(grid.Position{X: midX, Y: y}).Terrain = grid.TerrainRubble
	}

	players := []*combatsvc.PlayerInput{
		{ID: "pc-brynn", Name: "Brynn", MaxHP: 14, ArmorClass: 16, DexModifier: 1, Speed: 30},
		{ID: "pc-tassa", Name: "Tassa", MaxHP: 10, ArmorClass: 14, DexModifier: 3, Speed: 30},
	}
	goblins := &combatsvc.EnemyGroup{
		StatBlock: &combatsvc.MonsterStatBlock{
			Name: "Goblin", MaxHP: 7, ArmorClass: 13, DexModifier: 2, Speed: 30, XP: 50, CR: 0.25,
		},
		Count: cfg.Skirmish.GoblinCount,
	}

	fight, err := engine.StartCombat(&combatsvc.StartCombatInput{
		Players:     players,
		EnemyGroups: []*combatsvc.EnemyGroup{goblins},
	})
	if err != nil {
		return err
	}

	placeCombatants(m, fight)
	log.WithField("combatants", len(fight.TurnOrder)).Info("Combat started")
	for _, id := range fight.TurnOrder {
		c := fight.Combatant(id)
		log.Infof("  %s (%s) initiative %d", c.Name, c.Type, c.Initiative)
	}

	for fight.Active && fight.Round <= cfg.Skirmish.MaxRounds {
		if err := takeTurn(engine, roller, fight, m, log); err != nil {
			return err
		}

		if end := engine.CheckCombatEnd(fight); end.ShouldEnd {
			result, err := engine.EndCombat(fight, end.Outcome)
			if err != nil {
				return err
			}
			log.WithFields(logrus.Fields{
				"outcome": end.Outcome,
				"rounds":  fight.Round,
				"xp":      result.XPAwarded,
			}).Info("Combat over")
			break
		}

		round := fight.Round
		if err := engine.NextTurn(fight); err != nil {
			return err
		}
		if fight.Round > round {
			spatial.ResetMovement(m)
			log.Infof("--- Round %d ---", fight.Round)
		}
	}

	if fight.Active {
		if _, err := engine.EndCombat(fight, combat.OutcomeFled); err != nil {
			return err
		}
		log.Info("Both sides withdraw exhausted")
	}

	blob, err := snapshot.EncodeCombat(fight)
	if err != nil {
		return err
	}
	log.WithField("bytes", len(blob)).Info("Final combat snapshot encoded")

	return nil
}

// placeCombatants lines players up on the west edge and enemies on the
// east edge, one tile in from the walls.
func placeCombatants(m *grid.GameMap, fight *combat.Combat) {
	py, ey := 1, 1
	for _, id := range fight.TurnOrder {
		c := fight.Combatant(id)
		var pos grid.Position
		var entityType grid.EntityType
		if c.Type == combat.CombatantTypePlayer {
			pos = grid.Position{X: 1, Y: py}
			entityType = grid.EntityTypeCharacter
			py += 2
		} else {
			pos = grid.Position{X: m.Width - 2, Y: ey}
			entityType = grid.EntityTypeMonster
			ey += 2
		}
		// Combat speed is in feet; map entities move in squares.
		spatial.PlaceEntity(m, spatial.EntityDescriptor{ID: c.ID, Type: entityType, Speed: c.Speed / spatial.FeetPerSquare}, pos)
	}
}

// takeTurn moves the acting combatant toward its nearest foe and attacks
// when adjacent.
func takeTurn(engine combatsvc.Service, roller dice.Roller, fight *combat.Combat, m *grid.GameMap, log *logrus.Entry) error {
	actor := fight.CurrentCombatant()
	if actor == nil || !actor.CanAct() {
		return nil
	}

	target := nearestFoe(fight, m, actor)
	if target == nil {
		return nil
	}

	actorEntity := m.Entity(actor.ID)
	targetEntity := m.Entity(target.ID)
	if actorEntity == nil || targetEntity == nil {
		return nil
	}

	if actorEntity.Position.Chebyshev(targetEntity.Position) > 1 {
		budget := actorEntity.RemainingMovement()
		dest := adjacentTile(m, actorEntity, targetEntity.Position)
		path := spatial.FindPath(m, actorEntity, actorEntity.Position, dest, budget)
		if len(path) > 0 {
			moved, err := spatial.ExecuteMovement(m, actorEntity.ID, path)
			if err != nil {
				return err
			}
			log.Debugf("%s moves to (%d,%d)", actor.Name, moved.FinalPosition.X, moved.FinalPosition.Y)
		}
	}

	if actorEntity.Position.Chebyshev(targetEntity.Position) == 1 {
		sight := spatial.LineOfSight(m, actorEntity.Position, targetEntity.Position)
		if !sight.HasLoS {
			return nil
		}

		attack, err := roller.Roll("1d20+4", "attack")
		if err != nil {
			return err
		}
		if attack.Total >= target.ArmorClass || attack.IsCrit {
			dmg, err := roller.Roll("1d6+2", "damage")
			if err != nil {
				return err
			}
			if err := engine.ApplyDamage(fight, target.ID, dmg.Total); err != nil {
				return err
			}
			log.Infof("%s hits %s for %d (%d/%d HP)", actor.Name, target.Name, dmg.Total, target.CurrentHP, target.MaxHP)
			if target.IsDefeated() {
				// Corpses stop blocking tiles.
				spatial.RemoveEntity(m, target.ID)
			}
		} else {
			log.Infof("%s misses %s", actor.Name, target.Name)
		}
	}

	// Fog of war follows the players.
	observers := []grid.Position{}
	for _, pc := range fight.CombatantsByType(combat.CombatantTypePlayer) {
		if e := m.Entity(pc.ID); e != nil && !pc.IsDefeated() {
			observers = append(observers, e.Position)
		}
	}
	spatial.UpdateVisibility(m, observers)

	return nil
}

func nearestFoe(fight *combat.Combat, m *grid.GameMap, actor *combat.Combatant) *combat.Combatant {
	foeType := combat.CombatantTypeEnemy
	if actor.Type == combat.CombatantTypeEnemy {
		foeType = combat.CombatantTypePlayer
	}

	actorEntity := m.Entity(actor.ID)
	if actorEntity == nil {
		return nil
	}

	var nearest *combat.Combatant
	best := -1
	for _, foe := range fight.CombatantsByType(foeType) {
		if foe.IsDefeated() {
			continue
		}
		foeEntity := m.Entity(foe.ID)
		if foeEntity == nil {
			continue
		}
		d := actorEntity.Position.Chebyshev(foeEntity.Position)
		if best < 0 || d < best {
			best = d
			nearest = foe
		}
	}
	return nearest
}

// adjacentTile picks the reachable tile next to target closest to the
// mover, falling back to the target tile itself when everything around
// it is blocked.
func adjacentTile(m *grid.GameMap, mover *grid.MapEntity, target grid.Position) grid.Position {
	bestDist := -1
	best := target
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			pos := target.Shift(dx, dy)
			if !m.InBounds(pos) || m.BlockedAt(pos, mover.ID) {
				continue
			}
			d := mover.Position.Chebyshev(pos)
			if bestDist < 0 || d < bestDist {
				bestDist = d
				best = pos
			}
		}
	}
	return best
}
