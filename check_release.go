//go:build !lpcdebug

package lpc

// checkResidual is compiled out of release builds. The lpcdebug build tag
// swaps in a variant that verifies every advance against the current
// prediction.
func (p *predictor) checkResidual(value int16, residual int32) {}
