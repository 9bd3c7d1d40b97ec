//go:build lpcdebug

package lpc

import "fmt"

// startupGrace exempts the first advances of a stream: state seeded out of
// band only settles into the residual identity once the window fills.
const startupGrace = 3

// checkResidual verifies that the caller advances with a consistent
// reconstructed pair, residual == value - prediction. Compiled only under
// the lpcdebug build tag; a violation means stream wiring is broken, so it
// fails hard rather than letting the two sides drift apart silently.
func (p *predictor) checkResidual(value int16, residual int32) {
	if p.t < startupGrace {
		return
	}
	if want := int32(value) - int32(p.prediction()); residual != want {
		panic(fmt.Sprintf("lpc: inconsistent advance at t=%d: residual %d, want %d", p.t, residual, want))
	}
}
