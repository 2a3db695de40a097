package window

import (
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/colorbang/internal/core"
)

type fakeInput struct {
	down      map[ebiten.Key]bool
	just      map[ebiten.Key]bool
	mouse     map[ebiten.MouseButton]bool
	mouseJust map[ebiten.MouseButton]bool
	x, y      int
}

func (f fakeInput) Pressed(k ebiten.Key) bool { return f.down[k] }
func (f fakeInput) JustPressed(k ebiten.Key) bool { return f.just[k] }
func (f fakeInput) MousePressed(b ebiten.MouseButton) bool { return f.mouse[b] }
func (f fakeInput) MouseJustPressed(b ebiten.MouseButton) bool { return f.mouseJust[b] }
func (f fakeInput) Cursor() (x, y int) { return f.x, f.y }

func TestReadFrameHeldKeys(t *testing.T) {
	in := fakeInput{down: map[ebiten.Key]bool{ebiten.KeyArrowLeft: true, ebiten.KeyW: true, ebiten.KeyC: true}}
	f := readFrame(in, core.NewBounds(100, 100))

	for _, a := range []core.Action{core.ActionRotateLeft, core.ActionThrust, core.ActionCharge} {
		if !f.Has(a) {
			t.Errorf("expected %v to be set", a)
		}
	}
	if f.Has(core.ActionFire) || f.HasAim {
		t.Error("no fire expected without a press")
	}
}

func TestReadFrameOneShots(t *testing.T) {
	in := fakeInput{
		down: map[ebiten.Key]bool{ebiten.KeyR: true},
		just: map[ebiten.Key]bool{ebiten.KeySpace: true, ebiten.KeyEscape: true},
	}
	f := readFrame(in, core.NewBounds(100, 100))

	if !f.Has(core.ActionFire) || !f.Has(core.ActionPause) {
		t.Error("just-pressed keys should be set")
	}
	if f.Has(core.ActionRestart) {
		t.Error("a held restart key should not repeat")
	}
}

func TestReadFrameMouseAim(t *testing.T) {
	in := fakeInput{
		mouse:     map[ebiten.MouseButton]bool{ebiten.MouseButtonRight: true},
		mouseJust: map[ebiten.MouseButton]bool{ebiten.MouseButtonLeft: true},
		x:         40,
		y:         25,
	}
	field := core.Bounds{MinX: -50, MinY: -50, MaxX: 50, MaxY: 50}
	f := readFrame(in, field)

	if !f.Has(core.ActionFire) || !f.HasAim {
		t.Fatal("left click should fire with aim")
	}
	if f.Aim != core.V(-10, -25) {
		t.Errorf("aim = %v, want (-10, -25)", f.Aim)
	}
	if !f.Has(core.ActionCharge) {
		t.Error("right button should charge")
	}
}

func TestToNRGBA(t *testing.T) {
	got := toNRGBA(core.RGBA(1, 0, 0.5, 0.5))
	want := color.NRGBA{R: 255, G: 0, B: 128, A: 128}
	if got != want {
		t.Errorf("toNRGBA = %+v, want %+v", got, want)
	}
}

func TestImageSurfaceOffset(t *testing.T) {
	s := imageSurface{field: core.Bounds{MinX: -50, MinY: -20, MaxX: 50, MaxY: 20}}
	x, y := s.toImage(core.V(0, 0))
	if x != 50 || y != 20 {
		t.Errorf("toImage(0,0) = (%v, %v), want (50, 20)", x, y)
	}
}
