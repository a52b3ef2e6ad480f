package leveldata

import (
	"errors"
	"strconv"

	"github.com/aetherial/gardens/internal/model"
)

// LevelRegistry holds the built-in level definitions.
type LevelRegistry struct {
	levels []model.Level
	byRows map[int]*model.Level
}

// NewLevelRegistry creates a registry from loaded level definitions.
func NewLevelRegistry(levels []model.Level) *LevelRegistry {
	registry := &LevelRegistry{
		levels: levels,
		byRows: make(map[int]*model.Level),
	}
	for i := range levels {
		registry.byRows[levels[i].Rows] = &levels[i]
	}
	return registry
}

// LoadLevelRegistry loads and creates a registry from the embedded levels.json.
func LoadLevelRegistry() (*LevelRegistry, error) {
	levels, err := Load[[]model.Level]("levels.json")
	if err != nil {
		return nil, err
	}
	if len(levels) == 0 {
		return nil, errors.New("no levels loaded from levels.json")
	}
	return NewLevelRegistry(levels), nil
}

// MustLoadLevelRegistry loads a registry, panicking on error.
func MustLoadLevelRegistry() *LevelRegistry {
	registry, err := LoadLevelRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByRows returns the level with the given board size, or nil if not found.
func (r *LevelRegistry) GetByRows(rows int) *model.Level {
	return r.byRows[rows]
}

// All returns all level definitions.
func (r *LevelRegistry) All() []model.Level {
	return r.levels
}

// Count returns the number of built-in levels.
func (r *LevelRegistry) Count() int {
	return len(r.levels)
}

// =============================================================================
// StarThresholds
// =============================================================================

// StarThresholds maps board size to the move counts required for a three and
// two star rating. Anything above the second value earns one star.
type StarThresholds map[int][2]int

// LoadStarThresholds loads the rating thresholds from the embedded stars.json.
func LoadStarThresholds() (StarThresholds, error) {
	raw, err := Load[map[string][]int]("stars.json")
	if err != nil {
		return nil, err
	}

	thresholds := make(StarThresholds, len(raw))
	for key, pair := range raw {
		rows, err := strconv.Atoi(key)
		if err != nil {
			return nil, errors.New("invalid board size key in stars.json: " + key)
		}
		if len(pair) != 2 {
			return nil, errors.New("threshold for size " + key + " must have exactly two values")
		}
		thresholds[rows] = [2]int{pair[0], pair[1]}
	}
	return thresholds, nil
}

// MustLoadStarThresholds loads the thresholds, panicking on error.
func MustLoadStarThresholds() StarThresholds {
	thresholds, err := LoadStarThresholds()
	if err != nil {
		panic(err)
	}
	return thresholds
}

// Rate returns the 1-3 star rating for completing a board of the given size
// in the given number of moves. Completion always earns at least one star;
// unknown sizes rate one star.
func (t StarThresholds) Rate(rows, moves int) int {
	pair, ok := t[rows]
	if !ok {
		return 1
	}
	if moves <= pair[0] {
		return 3
	}
	if moves <= pair[1] {
		return 2
	}
	return 1
}
