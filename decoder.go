package lpc

import (
	"io"
	"math"

	"github.com/llehouerou/go-lpc/internal/rice"
	"github.com/llehouerou/go-lpc/internal/toeplitz"
)

// QuantizingDecoder yields the residual sequence coded in a bounded byte
// buffer. Symbols are self-delimiting, so exhausting the buffer is the end
// of the stream; no sample count is carried out of band.
type QuantizingDecoder interface {
	// Read returns the next residual, or ok=false once the buffer cannot
	// yield another complete one.
	Read() (residual int32, ok bool)
}

// Decoder reconstructs the sample stream from code bytes. It replays the
// encoder's prediction loop: residual in, prediction added, reconstructed
// value committed. With the configuration the code was produced with, its
// buffer trajectory is identical to the encoder's at every step.
type Decoder struct {
	pred  *predictor
	coder QuantizingDecoder
	err   error // sticky; io.EOF after normal exhaustion
}

// NewDecoder creates a Decoder over code with the default collaborators.
// cfg must equal the encoding configuration exactly: there is no header to
// detect a mismatch, a wrong geometry surfaces as garbage samples or
// ErrSampleOverflow. An empty code is a valid empty stream.
func NewDecoder(cfg Config, code []byte) (*Decoder, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Decoder{
		pred:  newPredictor(toeplitz.New(cfg.Order, cfg.BlockSize)),
		coder: rice.NewDecoder(code, cfg.LossBits),
	}, nil
}

// NewDecoderWith creates a Decoder around a custom estimator and residual
// decoder. The estimator's geometry is validated like a Config.
func NewDecoderWith(est Estimator, coder QuantizingDecoder) (*Decoder, error) {
	if est == nil {
		return nil, ErrNilEstimator
	}
	if coder == nil {
		return nil, ErrNilCoder
	}
	if est.Order() < 1 || est.Order() > MaxOrder {
		return nil, ErrInvalidOrder
	}
	if est.BlockSize() < 1 || est.BlockSize() > MaxBlockSize {
		return nil, ErrInvalidBlockSize
	}
	return &Decoder{pred: newPredictor(est), coder: coder}, nil
}

// Read reconstructs the next sample. It returns io.EOF at the end of the
// stream and ErrSampleOverflow when code and configuration disagree on a
// sample. Both outcomes are sticky; after ErrSampleOverflow the decoder
// state is exactly as it was before the failing call.
func (d *Decoder) Read() (int16, error) {
	if d.err != nil {
		return 0, d.err
	}
	residual, ok := d.coder.Read()
	if !ok {
		d.err = io.EOF
		return 0, d.err
	}
	prediction := d.pred.prediction()
	next := int64(prediction) + int64(residual)
	if next > math.MaxInt16 || next < math.MinInt16 {
		d.err = ErrSampleOverflow
		return 0, d.err
	}
	value := int16(next)
	d.pred.advance(value, residual)
	return value, nil
}
