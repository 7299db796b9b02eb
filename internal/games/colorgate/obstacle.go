package colorgate

import (
	"math/rand"

	"github.com/vovakirdan/colorgate/internal/config"
	"github.com/vovakirdan/colorgate/internal/core"
)

// Player is the disc the user steers along a fixed row near the canvas bottom.
type Player struct {
	X, Y   float64 // Center position; Y never changes after a restart
	Radius float64
	Speed  float64 // Horizontal canvas units per frame
	Color  core.Color
}

// Top returns the upper extent of the disc.
func (p Player) Top() float64 {
	return p.Y - p.Radius
}

// Bottom returns the lower extent of the disc.
func (p Player) Bottom() float64 {
	return p.Y + p.Radius
}

// Obstacle is a full-width barrier band with a single gap.
// The solid parts on either side of the gap are painted in the gate color.
type Obstacle struct {
	Y           float64 // Top edge
	Width       float64
	Height      float64
	GapPosition float64 // Left edge of the gap
	GapWidth    float64
	Color       core.Color
	Passed      bool // Set once the band has scrolled below the player
}

// Bottom returns the y-coordinate of the lower edge.
func (o Obstacle) Bottom() float64 {
	return o.Y + o.Height
}

// OverlapsBand reports whether [Y, Bottom) intersects [top, bottom).
func (o Obstacle) OverlapsBand(top, bottom float64) bool {
	return o.Y < bottom && o.Bottom() > top
}

// InGap reports whether x lies inside [GapPosition, GapPosition+GapWidth).
func (o Obstacle) InGap(x float64) bool {
	return x >= o.GapPosition && x < o.GapPosition+o.GapWidth
}

// Fatal reports whether the player is striking a solid segment of a
// different color. A matching color passes through the solid part.
func (o Obstacle) Fatal(p Player) bool {
	if !o.OverlapsBand(p.Top(), p.Bottom()) {
		return false
	}
	if o.InGap(p.X) {
		return false
	}
	return p.Color != o.Color
}

// Generator builds new obstacles just above the visible canvas.
type Generator struct {
	rng      *rand.Rand
	palette  Palette
	canvasW  float64
	height   float64
	gapWidth float64
	margin   float64
	spawnY   float64
}

// NewGenerator creates a generator sharing the session RNG.
func NewGenerator(rng *rand.Rand, palette Palette, cfg config.ColorGateConfig) *Generator {
	return &Generator{
		rng:      rng,
		palette:  palette,
		canvasW:  cfg.Canvas.Width,
		height:   cfg.Obstacles.Height,
		gapWidth: cfg.Obstacles.GapWidth,
		margin:   cfg.Obstacles.GapMargin,
		spawnY:   cfg.Obstacles.SpawnY,
	}
}

// Next returns a fresh obstacle with its gap drawn uniformly from
// [margin, canvasW-margin) and a gate color drawn from the whole palette.
// The gap is not clamped to the canvas, so with a gap wider than the margin
// it can extend past the right edge.
func (g *Generator) Next() Obstacle {
	gapPosition := g.margin + g.rng.Float64()*(g.canvasW-2*g.margin)
	return Obstacle{
		Y:           g.spawnY,
		Width:       g.canvasW,
		Height:      g.height,
		GapPosition: gapPosition,
		GapWidth:    g.gapWidth,
		Color:       g.palette.Random(g.rng),
	}
}
