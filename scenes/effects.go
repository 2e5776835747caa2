package scenes

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	shakeAmplitude = 2.4 // px
	shakeSeconds   = 0.08
	flashStart     = 0.85
	flashSeconds   = 0.18
)

// effects holds the camera shake and screen flash tweens.
type effects struct {
	shakeTween *gween.Tween
	flashTween *gween.Tween

	shakeValue float32
	flashValue float32
	frame      int
}

func (e *effects) shake() {
	e.shakeTween = gween.New(shakeAmplitude, 0, shakeSeconds, ease.OutQuad)
}

func (e *effects) flash() {
	e.flashTween = gween.New(flashStart, 0, flashSeconds, ease.Linear)
}

func (e *effects) update(dt float32) {
	e.frame++

	if e.shakeTween != nil {
		v, done := e.shakeTween.Update(dt)
		e.shakeValue = v
		if done {
			e.shakeTween = nil
			e.shakeValue = 0
		}
	}

	if e.flashTween != nil {
		v, done := e.flashTween.Update(dt)
		e.flashValue = v
		if done {
			e.flashTween = nil
			e.flashValue = 0
		}
	}
}

// shakeOffset alternates sides every frame.
func (e *effects) shakeOffset() float64 {
	if e.frame%2 == 0 {
		return float64(e.shakeValue)
	}
	return -float64(e.shakeValue)
}

func (e *effects) flashAlpha() float64 {
	return float64(e.flashValue)
}
