package spatial

import (
	"container/heap"

	"github.com/KirkDiggler/rpg-rules-engine/internal/domain/game/grid"
	engerr "github.com/KirkDiggler/rpg-rules-engine/internal/errors"
	"github.com/KirkDiggler/rpg-rules-engine/pkg/logger"
	"github.com/sirupsen/logrus"
)

// Movement is 8-connected. Diagonal rule: a diagonal step costs the same
// as an orthogonal one (the simple tabletop diagonal convention), and
// entering a tile always costs that tile's terrain multiplier.
var neighborSteps = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

type pathNode struct {
	pos   grid.Position
	cost  int
	index int
}

type nodeQueue []*pathNode

func (q nodeQueue) Len() int { return len(q) }

func (q nodeQueue) Less(i, j int) bool { return q[i].cost < q[j].cost }

func (q nodeQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *nodeQueue) Push(x any) {
	node := x.(*pathNode)
	node.index = len(*q)
	*q = append(*q, node)
}

func (q *nodeQueue) Pop() any {
	old := *q
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return node
}

// FindPath runs a uniform-cost search from from to to and returns the
// cheapest path whose total cost fits within budget. The start tile is
// excluded from the returned path; the destination is its last element.
//
// A nil path means no path exists within budget, the destination is
// blocked or occupied, or from equals to. The entity, when non-nil, is
// ignored as an obstacle so it can path out of its own tile.
func FindPath(m *grid.GameMap, entity *grid.MapEntity, from, to grid.Position, budget int) grid.Path {
	if m == nil || from == to || budget <= 0 {
		return nil
	}
	if !m.InBounds(from) || !m.InBounds(to) {
		return nil
	}

	ignoreID := ""
	if entity != nil {
		ignoreID = entity.ID
	}
	if m.BlockedAt(to, ignoreID) {
		return nil
	}

	dist := map[grid.Position]int{from: 0}
	parent := map[grid.Position]grid.Position{}
	visited := map[grid.Position]bool{}

	queue := &nodeQueue{}
	heap.Init(queue)
	heap.Push(queue, &pathNode{pos: from, cost: 0})

	for queue.Len() > 0 {
		node := heap.Pop(queue).(*pathNode)
		if visited[node.pos] {
			continue
		}
		visited[node.pos] = true

		if node.pos == to {
			break
		}

		for _, step := range neighborSteps {
			next := node.pos.Shift(step[0], step[1])
			if !m.InBounds(next) || visited[next] {
				continue
			}
			if m.BlockedAt(next, ignoreID) {
				continue
			}

			cost := node.cost + m.TileAt(next).Terrain.MoveCost()
			if cost > budget {
				continue
			}
			if best, seen := dist[next]; seen && cost >= best {
				continue
			}

			dist[next] = cost
			parent[next] = node.pos
			heap.Push(queue, &pathNode{pos: next, cost: cost})
		}
	}

	if !visited[to] {
		return nil
	}

	path := grid.Path{}
	for pos := to; pos != from; pos = parent[pos] {
		path = append(path, pos)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "spatial_engine",
		"function":  "FindPath",
		"steps":     len(path),
		"cost":      dist[to],
	}).Debug("path found")

	return path
}

// MovementResult is the outcome of walking a path. Success is true only
// when the entire requested path was traversed; a truncated walk still
// reports the tiles actually covered and the movement spent.
type MovementResult struct {
	Success       bool          `json:"success"`
	Path          grid.Path     `json:"path"`
	FinalPosition grid.Position `json:"final_position"`
	MovementUsed  int           `json:"movement_used"`
}

// ExecuteMovement walks the entity along the path tile by tile,
// accumulating terrain cost against the entity's remaining budget. The
// walk stops early when the next step would exceed the budget, or when
// an obstacle has appeared mid-path. The map is mutated in place: the
// entity's position and movement used are updated to wherever the walk
// ended.
func ExecuteMovement(m *grid.GameMap, entityID string, path grid.Path) (*MovementResult, error) {
	if m == nil {
		return nil, engerr.InvalidArgument("map cannot be nil")
	}

	entity := m.Entity(entityID)
	if entity == nil {
		return nil, engerr.NotFoundf("entity '%s' not found", entityID)
	}

	result := &MovementResult{
		Path:          grid.Path{},
		FinalPosition: entity.Position,
	}

	current := entity.Position
	remaining := entity.RemainingMovement()
	spent := 0

	for _, step := range path {
		if current.Chebyshev(step) != 1 {
			return nil, engerr.Validationf("path step (%d,%d) is not adjacent to (%d,%d)",
				step.X, step.Y, current.X, current.Y)
		}
		if m.BlockedAt(step, entity.ID) {
			break
		}

		cost := m.TileAt(step).Terrain.MoveCost()
		if spent+cost > remaining {
			break
		}

		spent += cost
		current = step
		result.Path = append(result.Path, step)
	}

	entity.Position = current
	entity.MovementUsed += spent

	result.FinalPosition = current
	result.MovementUsed = spent
	result.Success = len(result.Path) == len(path)

	return result, nil
}
