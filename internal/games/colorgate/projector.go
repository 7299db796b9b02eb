package colorgate

import "github.com/vovakirdan/colorgate/internal/core"

// ShapeKind distinguishes drawable primitives.
type ShapeKind int

const (
	ShapeCircle ShapeKind = iota
	ShapeRect
)

// Drawable is a filled primitive in canvas coordinates.
// Circles use X, Y as the center and R as the radius; rects use X, Y as
// the top-left corner and W, H as the size.
type Drawable struct {
	Kind ShapeKind
	X, Y float64
	W, H float64
	R    float64
	Fill core.Color
}

// Project converts the player and obstacles to drawables: the player disc
// first, then two solid segments per obstacle.
func Project(p Player, obstacles []Obstacle, canvasW float64) []Drawable {
	out := make([]Drawable, 0, 1+2*len(obstacles))
	out = append(out, Drawable{
		Kind: ShapeCircle,
		X:    p.X,
		Y:    p.Y,
		R:    p.Radius,
		Fill: p.Color,
	})

	for _, o := range obstacles {
		gapRight := o.GapPosition + o.GapWidth
		out = append(out,
			Drawable{
				Kind: ShapeRect,
				X:    0,
				Y:    o.Y,
				W:    max(0, o.GapPosition),
				H:    o.Height,
				Fill: o.Color,
			},
			Drawable{
				Kind: ShapeRect,
				X:    gapRight,
				Y:    o.Y,
				W:    max(0, canvasW-gapRight),
				H:    o.Height,
				Fill: o.Color,
			},
		)
	}
	return out
}
