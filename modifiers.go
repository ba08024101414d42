package wheelie

import "github.com/hajimehoshi/ebiten/v2"

// ModifierReader reports the live keyboard and mouse button state.
// Callers take one Modifiers snapshot per gesture and never re-read it while
// the gesture is being dispatched.
type ModifierReader interface {
	Modifiers() KeyModifiers
	ButtonPressed(b MouseButton) bool
}

// EbitenInput reads modifier and button state from ebiten.
type EbitenInput struct{}

// Modifiers reads the current keyboard modifier state.
func (EbitenInput) Modifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) || ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight) {
		mods |= ModMeta
	}
	return mods
}

// ButtonPressed reports whether the mouse button is physically held.
func (EbitenInput) ButtonPressed(b MouseButton) bool {
	switch b {
	case MouseButtonLeft:
		return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	case MouseButtonRight:
		return ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	case MouseButtonMiddle:
		return ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	}
	return false
}
