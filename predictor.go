package lpc

// Estimator fits and applies the linear predictor. Implementations must be
// deterministic: encoder and decoder replay the identical call sequence
// and have to arrive at identical coefficients for the streams to agree.
type Estimator interface {
	// Order returns the number of past samples per prediction.
	Order() int

	// BlockSize returns the number of samples between refits.
	BlockSize() int

	// Coefficients returns the current coefficient vector. The slice
	// stays valid until the next AcceptBlock.
	Coefficients() []int32

	// Predict evaluates the predictor over window, whose last element is
	// the most recent reconstructed sample, saturating to the int16
	// sample range.
	Predict(window []int16, coefs []int32) int16

	// AcceptBlock refits the coefficients after a completed block.
	// samples is the block preceded by Order() reconstructed left-context
	// samples; residuals is the block's residual sequence. Both slices
	// are reused by the caller and must not be retained.
	AcceptBlock(samples []int16, residuals []int32)
}

// predictor is the state shared by both stream directions: the rolling
// reconstructed-sample buffer with its left-context slots, the residual
// buffer of the block in progress, and the running sample index. Both
// directions feed it only reconstructed values, so encode-side state
// tracks what a decoder will see even on lossy streams.
type predictor struct {
	est       Estimator
	order     int
	blockSize int
	t         int     // samples advanced so far
	samples   []int16 // order left-context slots, then blockSize sample slots
	residuals []int32 // residuals of the block in progress
}

func newPredictor(est Estimator) *predictor {
	order, blockSize := est.Order(), est.BlockSize()
	return &predictor{
		est:       est,
		order:     order,
		blockSize: blockSize,
		samples:   make([]int16, order+blockSize),
		residuals: make([]int32, blockSize),
	}
}

// prediction computes the prediction for the sample about to be stored,
// from the order reconstructed samples preceding it.
func (p *predictor) prediction() int16 {
	pos := p.order + p.t%p.blockSize
	return p.est.Predict(p.samples[pos-p.order:pos], p.est.Coefficients())
}

// advance commits one reconstructed sample and its residual. On the first
// advance past a block boundary the finished block's trailing samples
// become the next block's left context and the estimator refits, before
// slot 0 is overwritten with the new sample.
func (p *predictor) advance(value int16, residual int32) {
	p.checkResidual(value, residual)
	pos := p.t % p.blockSize
	if pos == 0 && p.t != 0 {
		copy(p.samples[:p.order], p.samples[p.blockSize:])
		p.est.AcceptBlock(p.samples, p.residuals)
	}
	p.samples[p.order+pos] = value
	p.residuals[pos] = residual
	p.t++
}
