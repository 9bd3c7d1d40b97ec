package lpc

import "errors"

// Configuration errors returned by the stream constructors.
var (
	ErrInvalidOrder     = errors.New("lpc: order must be between 1 and 32")
	ErrInvalidBlockSize = errors.New("lpc: block size must be between 1 and 65536")
	ErrInvalidLossBits  = errors.New("lpc: loss bits must be between 0 and 15")
	ErrNilEstimator     = errors.New("lpc: estimator is nil")
	ErrNilCoder         = errors.New("lpc: residual coder is nil")
)

// ErrSampleOverflow reports that decoding reconstructed a sample outside
// the 16-bit range, which means the code bytes do not match the supplied
// configuration or have been corrupted. A decoder that returned it keeps
// returning it; its state is unusable.
var ErrSampleOverflow = errors.New("lpc: reconstructed sample overflows 16-bit range")
