package systems

import (
	"errors"
	"log/slog"
	"math/rand/v2"

	"github.com/lixenwraith/vi-snake/components"
	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/grid"
)

// ErrFieldSaturated is returned when no free cell is left for a mouse
var ErrFieldSaturated = errors.New("field saturated")

// SpawnSystem places mice on free cells and decides their value
// Placement samples randomly, then falls back to a full scan so a crowded field never loops forever
type SpawnSystem struct {
	rng    *rand.Rand
	logger *slog.Logger

	maxAttempts    int
	maxPoints      int
	goldenAfter    int
	avoidPredicted bool

	nextID uint64
}

// NewSpawnSystem creates a spawner drawing positions from rng
func NewSpawnSystem(cfg config.Gameplay, rng *rand.Rand, logger *slog.Logger) *SpawnSystem {
	return &SpawnSystem{
		rng:            rng,
		logger:         logger,
		maxAttempts:    cfg.SpawnMaxAttempts,
		maxPoints:      cfg.MaxPointValue,
		goldenAfter:    cfg.GoldenAfterEaten,
		avoidPredicted: cfg.AvoidPredictedPath,
	}
}

// SetAvoidPredicted toggles the predicted-path exclusion policy
func (s *SpawnSystem) SetAvoidPredicted(on bool) {
	s.avoidPredicted = on
}

// Reset restarts mouse IDs for a new run
func (s *SpawnSystem) Reset() {
	s.nextID = 0
}

// PredictHead returns the next one or two head cells the snake cannot avoid
// Queued directions are resolved the way Steer will apply them, the current direction repeats when the queue is short
func PredictHead(snake *components.Snake) []grid.Cell {
	dir := snake.Direction
	cell := snake.Head()
	out := make([]grid.Cell, 0, 2)
	for i := 0; i < 2; i++ {
		if next, ok := snake.Queue.Peek(i); ok && !dir.IsInverse(next) {
			dir = next
		}
		cell = cell.Add(dir)
		out = append(out, cell)
	}
	return out
}

// Spawn creates a mouse on a free cell without adding it to mice
// score supplies the point value and golden counter, a golden spawn resets the counter
func (s *SpawnSystem) Spawn(field grid.Field, snake *components.Snake, mice *components.MouseSet, predicted []grid.Cell, score *components.Score, life int) (components.Mouse, error) {
	avoid := predicted
	if !s.avoidPredicted {
		avoid = nil
	}

	pos, ok := s.sample(field, snake, mice, avoid)
	if !ok {
		pos, ok = s.scan(field, snake, mice, avoid)
	}
	if !ok && len(avoid) > 0 {
		pos, ok = s.scan(field, snake, mice, nil)
	}
	if !ok {
		return components.Mouse{}, ErrFieldSaturated
	}

	golden := score.EatenSinceGolden >= s.goldenAfter
	if golden {
		score.EatenSinceGolden = 0
	}

	s.nextID++
	return components.Mouse{
		ID:     s.nextID,
		Pos:    pos,
		Life:   life,
		Points: min(score.NextPoints, s.maxPoints),
		Golden: golden,
	}, nil
}

// Fill spawns mice until target are live or the field is saturated, returns how many were added
func (s *SpawnSystem) Fill(field grid.Field, snake *components.Snake, mice *components.MouseSet, score *components.Score, life, target int) int {
	predicted := PredictHead(snake)
	added := 0
	for mice.Len() < target {
		m, err := s.Spawn(field, snake, mice, predicted, score, life)
		if err != nil {
			s.logger.Debug("mouse spawn skipped", "err", err, "live", mice.Len(), "target", target)
			break
		}
		mice.Add(m)
		added++
	}
	return added
}

func (s *SpawnSystem) free(c grid.Cell, snake *components.Snake, mice *components.MouseSet, avoid []grid.Cell) bool {
	return !grid.OccupiedBySnake(c, snake.Body) && !mice.Occupied(c) && !grid.OccupiedBySnake(c, avoid)
}

// sample tries random cells up to the attempt budget
func (s *SpawnSystem) sample(field grid.Field, snake *components.Snake, mice *components.MouseSet, avoid []grid.Cell) (grid.Cell, bool) {
	cols, rows := field.Columns(), field.Rows()
	if cols <= 0 || rows <= 0 {
		return grid.Cell{}, false
	}
	for i := 0; i < s.maxAttempts; i++ {
		c := grid.Cell{X: s.rng.IntN(cols) * field.Unit, Y: s.rng.IntN(rows) * field.Unit}
		if s.free(c, snake, mice, avoid) {
			return c, true
		}
	}
	return grid.Cell{}, false
}

// scan collects every free cell and picks one uniformly
func (s *SpawnSystem) scan(field grid.Field, snake *components.Snake, mice *components.MouseSet, avoid []grid.Cell) (grid.Cell, bool) {
	var candidates []grid.Cell
	field.Each(func(c grid.Cell) {
		if s.free(c, snake, mice, avoid) {
			candidates = append(candidates, c)
		}
	})
	if len(candidates) == 0 {
		return grid.Cell{}, false
	}
	return candidates[s.rng.IntN(len(candidates))], true
}
