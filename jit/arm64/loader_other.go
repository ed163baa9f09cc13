//go:build !arm64

package arm64

import "errors"

// ErrUnsupportedPlatform is returned by Load on any GOARCH other than
// arm64; the JIT backend has no code generation strategy for other
// architectures (spec's VM backend is the portable fallback).
var ErrUnsupportedPlatform = errors.New("jit/arm64: JIT backend requires GOARCH=arm64")

// MatchFn mirrors the arm64 build's type so callers can reference it
// without a build-tagged type alias.
type MatchFn func(input string) bool

// Load always fails on non-arm64 builds.
func Load(code []byte) (MatchFn, error) {
	return nil, ErrUnsupportedPlatform
}
