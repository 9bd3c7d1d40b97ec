package lpc

import (
	"github.com/llehouerou/go-lpc/internal/rice"
	"github.com/llehouerou/go-lpc/internal/toeplitz"
)

// QuantizingEncoder turns residuals into code bytes. It may rewrite a
// residual, but only to one whose reconstruction fits the int16 sample
// range, and it must report exactly what the matching decoder will see.
type QuantizingEncoder interface {
	// WriteLimited codes residual against the current prediction. It
	// returns the value the matching decoder will reconstruct and the
	// residual as the decoder will see it; the two satisfy
	// value == prediction + coded.
	WriteLimited(residual int32, prediction int16) (value int16, coded int32)

	// Flush byte-aligns the code. Flushing twice emits nothing new.
	Flush()

	// Code returns the code bytes emitted so far.
	Code() []byte
}

// Encoder compresses a sample stream. Its predictor advances on
// reconstructed values, never the originals, so encode-side state tracks
// the matching decoder even when precision bounding rewrites residuals.
//
// Encoding cannot fail: every sample is representable, at worst
// imprecisely. Divergence is reported through Stats and the optional
// diagnostic callback instead.
type Encoder struct {
	pred   *predictor
	coder  QuantizingEncoder
	stats  Stats
	onDiag DiagnosticFunc
}

// NewEncoder creates an Encoder with the default collaborators: the
// Toeplitz coefficient estimator and the adaptive Rice residual coder.
func NewEncoder(cfg Config) (*Encoder, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Encoder{
		pred:  newPredictor(toeplitz.New(cfg.Order, cfg.BlockSize)),
		coder: rice.NewEncoder(cfg.LossBits),
	}, nil
}

// NewEncoderWith creates an Encoder around a custom estimator and residual
// coder. The estimator's geometry is validated like a Config.
func NewEncoderWith(est Estimator, coder QuantizingEncoder) (*Encoder, error) {
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
	return &Encoder{pred: newPredictor(est), coder: coder}, nil
}

// Write compresses one sample and returns the value the decoder will
// reconstruct for it, which differs from value only on lossy streams.
func (e *Encoder) Write(value int16) int16 {
	prediction := e.pred.prediction()
	residual := int32(value) - int32(prediction)
	decoded, coded := e.coder.WriteLimited(residual, prediction)
	e.pred.advance(decoded, coded)

	e.stats.Samples++
	if decoded != value {
		e.stats.Divergent++
		d := int32(value) - int32(decoded)
		if d < 0 {
			d = -d
		}
		if d > e.stats.MaxError {
			e.stats.MaxError = d
		}
		e.stats.SquaredError += int64(d) * int64(d)
		if e.onDiag != nil {
			e.onDiag(Diagnostic{
				Offset:   e.stats.Samples - 1,
				Value:    value,
				Decoded:  decoded,
				Residual: residual,
				Coded:    coded,
			})
		}
	}
	return decoded
}

// Flush byte-aligns the code so Code covers every written sample. Safe to
// call repeatedly.
func (e *Encoder) Flush() {
	e.coder.Flush()
}

// Code returns the code bytes emitted so far. Call Flush first to include
// samples still sitting in the coder's bit cache.
func (e *Encoder) Code() []byte {
	return e.coder.Code()
}

// Stats returns the accumulated divergence statistics.
func (e *Encoder) Stats() Stats {
	return e.stats
}

// SetDiagnosticFunc registers f to receive a Diagnostic for every sample
// whose reconstruction diverges from the input. A nil f unregisters.
func (e *Encoder) SetDiagnosticFunc(f DiagnosticFunc) {
	e.onDiag = f
}
