package toeplitz

import "math"

// Estimator fits linear-predictor coefficients to successive sample blocks
// by solving the autocorrelation normal equations with a fixed-point
// Levinson-Durbin recursion. Everything is integer arithmetic, so refits
// and predictions are bit-exact across platforms.
type Estimator struct {
	order     int
	blockSize int
	coefs     []int32 // Q14, zero until the first completed block
	corr      []int64 // smoothed autocorrelation, lags 0..order
	work      []int64 // normalized lags handed to the recursion
	a         []int64 // Q20 recursion coefficients
}

// New creates an estimator for the given block geometry. Coefficients
// start at zero: predictions before the first completed block are zero and
// that block's residuals are the raw samples.
func New(order, blockSize int) *Estimator {
	return &Estimator{
		order:     order,
		blockSize: blockSize,
		coefs:     make([]int32, order),
		corr:      make([]int64, order+1),
		work:      make([]int64, order+1),
		a:         make([]int64, order),
	}
}

// Order returns the number of past samples per prediction.
func (e *Estimator) Order() int {
	return e.order
}

// BlockSize returns the number of samples between refits.
func (e *Estimator) BlockSize() int {
	return e.blockSize
}

// Coefficients returns the current Q14 coefficient vector, lag 1 first.
// The slice is owned by the estimator and valid until the next AcceptBlock.
func (e *Estimator) Coefficients() []int32 {
	return e.coefs
}

// Predict evaluates the predictor over window, whose last element is the
// most recent sample, and saturates the result to the int16 sample range.
func (e *Estimator) Predict(window []int16, coefs []int32) int16 {
	last := len(window) - 1
	var sum int64
	for i, c := range coefs {
		sum += int64(c) * int64(window[last-i])
	}
	return sat16((sum + 1<<(qCoef-1)) >> qCoef)
}

// AcceptBlock refits the coefficients from a completed block. samples is
// the block preceded by order left-context samples; residuals is the
// block's residual sequence. Residual energy steers the adaptation rate:
// once it reaches half the window energy the prediction is failing, and
// the correlation history restarts from this block alone instead of
// decaying into it.
func (e *Estimator) AcceptBlock(samples []int16, residuals []int32) {
	autocorr(samples, e.work)

	var resEnergy int64
	for _, r := range residuals {
		resEnergy += int64(r) * int64(r)
		if resEnergy >= energyCap {
			resEnergy = energyCap
			break
		}
	}

	if resEnergy >= e.work[0]>>1 {
		copy(e.corr, e.work)
	} else {
		for i := range e.corr {
			e.corr[i] += e.work[i] - e.corr[i]>>decayShift
		}
	}
	e.refit()
}

// autocorr fills out with the windowed autocorrelation of x for lags
// 0..len(out)-1.
func autocorr(x []int16, out []int64) {
	for k := range out {
		var sum int64
		for i := k; i < len(x); i++ {
			sum += int64(x[i]) * int64(x[i-k])
		}
		out[k] = sum
	}
}

func sat16(v int64) int16 {
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	if v < math.MinInt16 {
		return math.MinInt16
	}
	return int16(v)
}
