package lpc

import "io"

// Geometry limits accepted by Config.
const (
	MaxOrder     = 32
	MaxBlockSize = 1 << 16
	maxLossBits  = 15
)

// Config fixes the stream geometry. Encoder and decoder must be given
// identical configurations out of band: the code bytes carry no header.
type Config struct {
	// Order is the number of past reconstructed samples each prediction
	// is computed from.
	Order int

	// BlockSize is the number of samples between coefficient refits.
	BlockSize int

	// LossBits bounds residual precision: the coder drops this many
	// low-order bits from every residual. 0 is lossless.
	LossBits int
}

// DefaultConfig returns a lossless mid-range configuration.
func DefaultConfig() Config {
	return Config{Order: 8, BlockSize: 32}
}

func (c Config) validate() error {
	if c.Order < 1 || c.Order > MaxOrder {
		return ErrInvalidOrder
	}
	if c.BlockSize < 1 || c.BlockSize > MaxBlockSize {
		return ErrInvalidBlockSize
	}
	if c.LossBits < 0 || c.LossBits > maxLossBits {
		return ErrInvalidLossBits
	}
	return nil
}

// Stats accumulates encode-side divergence between requested and
// reconstructed samples. Every field except Samples stays zero on a
// lossless stream.
type Stats struct {
	Samples      int64 // samples written
	Divergent    int64 // samples reconstructed differently from the input
	SquaredError int64 // accumulated squared reconstruction error
	MaxError     int32 // largest absolute reconstruction error
}

// Diagnostic describes one divergent sample.
type Diagnostic struct {
	Offset   int64 // sample index within the stream
	Value    int16 // sample passed to Write
	Decoded  int16 // value the decoder will reconstruct
	Residual int32 // raw prediction residual
	Coded    int32 // residual after precision bounding
}

// DiagnosticFunc receives a Diagnostic for every divergent sample.
type DiagnosticFunc func(Diagnostic)

// Encode compresses samples in one call and returns the code bytes.
// The same cfg decodes them.
func Encode(cfg Config, samples []int16) ([]byte, error) {
	enc, err := NewEncoder(cfg)
	if err != nil {
		return nil, err
	}
	for _, s := range samples {
		enc.Write(s)
	}
	enc.Flush()
	return enc.Code(), nil
}

// Decode reconstructs every sample coded in code. cfg must equal the
// configuration the code was produced with.
func Decode(cfg Config, code []byte) ([]int16, error) {
	dec, err := NewDecoder(cfg, code)
	if err != nil {
		return nil, err
	}
	var out []int16
	for {
		v, err := dec.Read()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
}
