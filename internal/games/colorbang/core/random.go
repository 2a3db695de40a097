package core

import (
	"math"

	platformcore "github.com/vovakirdan/colorbang/internal/core"
)

// Rand yields uniform floats in [0, 1). *math/rand.Rand satisfies it.
type Rand interface {
	Float32() float32
}

// randomAngle returns an angle in [0, 2π).
func randomAngle(rng Rand) float32 {
	return rng.Float32() * 2 * math.Pi
}

// randomRange returns a value in [lo, lo+span).
func randomRange(rng Rand, lo, span float32) float32 {
	return rng.Float32()*span + lo
}

// randomColor returns an opaque color with independently random channels.
func randomColor(rng Rand) platformcore.Color {
	return platformcore.RGB(rng.Float32(), rng.Float32(), rng.Float32())
}
