package board

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// ErrInvalidConfig is wrapped by every error New returns for a malformed Config.
var ErrInvalidConfig = errors.New("board: invalid config")

func configError(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...)
}

// HardDrop as Config.DropSteps makes SoftDrop descend until blocked and freeze.
const HardDrop = 0

// Config describes one game variant.
type Config struct {
	Columns int
	Rows    int

	// Palette lists the colours new pieces are drawn from, uniformly.
	Palette []Color

	// Clearing is the rule run after each freeze.
	Clearing Clearer

	// PlacementBonus is added to the score for every frozen piece.
	PlacementBonus int

	// FailRow is the row whose occupation ends the game.
	FailRow int

	// DropSteps is how many rows one SoftDrop descends. HardDrop (0) drops to the floor.
	DropSteps int

	// Rand supplies shape, offset and colour choices. A nil Rand gets a random seed.
	Rand *rand.Rand
}

// Validate checks the config without building an engine.
func (c Config) Validate() error {
	if c.Columns <= 0 {
		return configError("columns must be positive, got %d", c.Columns)
	}
	if c.Rows <= 0 {
		return configError("rows must be positive, got %d", c.Rows)
	}
	if len(c.Palette) == 0 {
		return configError("palette is empty")
	}
	for _, color := range c.Palette {
		if !color.Valid() {
			return configError("palette holds unknown colour %d", color)
		}
	}
	if c.Clearing == nil {
		return configError("no clearing rule")
	}
	if err := c.Clearing.validate(); err != nil {
		return err
	}
	if c.PlacementBonus < 0 {
		return configError("placement bonus must not be negative, got %d", c.PlacementBonus)
	}
	if c.FailRow < 0 || c.FailRow >= c.Rows {
		return configError("fail row %d outside 0..%d", c.FailRow, c.Rows-1)
	}
	if c.DropSteps < 0 {
		return configError("drop steps must not be negative, got %d", c.DropSteps)
	}
	return nil
}

const (
	defaultColumns = 20
	defaultRows    = 30
)

// Classic is the single-colour row-clearing game: hard drop, 100 points a row,
// game over once row 0 fills.
func Classic() Config {
	return Config{
		Columns:   defaultColumns,
		Rows:      defaultRows,
		Palette:   []Color{Red},
		Clearing:  RowClear{PointsPerRow: 100},
		DropSteps: HardDrop,
	}
}

// ColourMatch clears same-coloured regions that span the full width and lets the
// columns settle afterwards. SoftDrop descends three rows.
func ColourMatch() Config {
	return Config{
		Columns:   defaultColumns,
		Rows:      defaultRows,
		Palette:   []Color{Purple, Cyan, White},
		Clearing:  SpanClear{},
		DropSteps: 3,
	}
}

// HorizontalMatch clears the first same-coloured region bridging the left and right
// edges, scores 10 a piece and 50 a removed cell, and fails at a fifth of the height.
func HorizontalMatch() Config {
	return Config{
		Columns:        defaultColumns,
		Rows:           defaultRows,
		Palette:        []Color{Red, Green, Blue},
		Clearing:       BridgeClear{PointsPerCell: 50},
		PlacementBonus: 10,
		FailRow:        defaultRows / 5,
		DropSteps:      3,
	}
}

// Variant returns the preset with the given name: "classic", "colour" or "horizontal".
func Variant(name string) (Config, error) {
	switch name {
	case "classic":
		return Classic(), nil
	case "colour", "color":
		return ColourMatch(), nil
	case "horizontal":
		return HorizontalMatch(), nil
	}
	return Config{}, fmt.Errorf("board: unknown variant %q", name)
}

// Resize returns a copy of c for a different board size. The fail row keeps its
// relative height.
func (c Config) Resize(columns, rows int) Config {
	if c.Rows > 0 && c.FailRow > 0 {
		c.FailRow = c.FailRow * rows / c.Rows
	}
	c.Columns = columns
	c.Rows = rows
	return c
}
