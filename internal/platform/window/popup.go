package window

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Popup is the credit card shown before the first session. It stays nearly
// opaque for most of its lifetime and fades out at the end.
type Popup struct {
	Text  string
	tween *gween.Tween
	alpha float32
	done  bool
}

// NewPopup creates a popup that disappears after seconds.
func NewPopup(text string, seconds float64) *Popup {
	return &Popup{
		Text:  text,
		tween: gween.New(1, 0, float32(seconds), ease.InExpo),
		alpha: 1,
	}
}

// Update advances the fade by dt seconds.
func (p *Popup) Update(dt float32) {
	if p.done {
		return
	}
	p.alpha, p.done = p.tween.Update(dt)
}

// Alpha returns the current opacity in [0, 1].
func (p *Popup) Alpha() float32 {
	return p.alpha
}

// Done reports whether the popup has faded out.
func (p *Popup) Done() bool {
	return p.done
}
