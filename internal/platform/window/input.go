package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/colorbang/internal/core"
)

// inputSource is the slice of ebiten's input state the frame mapper reads.
type inputSource interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
	MousePressed(b ebiten.MouseButton) bool
	MouseJustPressed(b ebiten.MouseButton) bool
	Cursor() (x, y int)
}

type ebitenInput struct{}

func (ebitenInput) Pressed(k ebiten.Key) bool { return ebiten.IsKeyPressed(k) }
func (ebitenInput) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }
func (ebitenInput) MousePressed(b ebiten.MouseButton) bool { return ebiten.IsMouseButtonPressed(b) }
func (ebitenInput) MouseJustPressed(b ebiten.MouseButton) bool { return inpututil.IsMouseButtonJustPressed(b) }
func (ebitenInput) Cursor() (x, y int) { return ebiten.CursorPosition() }

// held maps keys that act while they are down.
var held = []struct {
	keys   []ebiten.Key
	action core.Action
}{
	{[]ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}, core.ActionRotateLeft},
	{[]ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}, core.ActionRotateRight},
	{[]ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}, core.ActionThrust},
	{[]ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}, core.ActionReverse},
	{[]ebiten.Key{ebiten.KeyC, ebiten.KeyShift}, core.ActionCharge},
}

// pressed maps keys that act once per press.
var pressed = []struct {
	keys   []ebiten.Key
	action core.Action
}{
	{[]ebiten.Key{ebiten.KeySpace}, core.ActionFire},
	{[]ebiten.Key{ebiten.KeyP, ebiten.KeyEscape}, core.ActionPause},
	{[]ebiten.Key{ebiten.KeyR}, core.ActionRestart},
	{[]ebiten.Key{ebiten.KeyQ}, core.ActionQuit},
}

// readFrame builds an input frame from the current device state. The
// cursor is in layout coordinates, which are field coordinates offset by
// the field origin.
func readFrame(in inputSource, field core.Bounds) core.InputFrame {
	frame := core.NewInputFrame()

	for _, m := range held {
		for _, k := range m.keys {
			if in.Pressed(k) {
				frame.Set(m.action)
			}
		}
	}
	for _, m := range pressed {
		for _, k := range m.keys {
			if in.JustPressed(k) {
				frame.Set(m.action)
			}
		}
	}

	if in.MousePressed(ebiten.MouseButtonRight) {
		frame.Set(core.ActionCharge)
	}
	if in.MouseJustPressed(ebiten.MouseButtonLeft) {
		x, y := in.Cursor()
		frame.Set(core.ActionFire)
		frame.SetAim(core.V(field.MinX+float32(x), field.MinY+float32(y)))
	}
	return frame
}
