package rice

import (
	"math"

	"github.com/llehouerou/go-lpc/internal/bits"
)

// Encoder codes residuals with precision bounding: every coded residual is
// a multiple of 1<<lossBits chosen so the reconstructed sample lands inside
// the int16 range. lossBits zero is fully lossless.
type Encoder struct {
	w        *bits.Writer
	ks       kState
	lossBits uint
}

// NewEncoder creates an Encoder. lossBits must be in [0, 15]; callers
// validate before construction.
func NewEncoder(lossBits int) *Encoder {
	return &Encoder{
		w:        bits.NewWriter(),
		ks:       newKState(),
		lossBits: uint(lossBits),
	}
}

// WriteLimited codes residual against the given prediction. It returns the
// sample value the matching decoder will reconstruct and the residual as
// the decoder will see it; the two always satisfy
// value == prediction + coded, with value inside the int16 range.
func (e *Encoder) WriteLimited(residual int32, prediction int16) (int16, int32) {
	q := int64(residual)
	if e.lossBits > 0 {
		q = (q + 1<<(e.lossBits-1)) >> e.lossBits
	}

	// Bound q so prediction + q<<lossBits stays a valid sample. Both
	// bounds are exact: hi floors toward the positive limit, lo ceils
	// toward the negative one.
	hi := (math.MaxInt16 - int64(prediction)) >> e.lossBits
	lo := -((int64(prediction) - math.MinInt16) >> e.lossBits)
	if q > hi {
		q = hi
	}
	if q < lo {
		q = lo
	}

	e.writeSymbol(int32(q))
	return int16(int64(prediction) + q<<e.lossBits), int32(q << e.lossBits)
}

func (e *Encoder) writeSymbol(q int32) {
	u := fold(q)
	if quot := u >> e.ks.k; quot >= escapeQuotient {
		e.w.WriteBits(0, escapeQuotient)
		e.w.WriteBits(u, escapeBits)
	} else {
		e.w.WriteBits(1, uint(quot)+1) // quot zeros, then the terminator
		e.w.WriteBits(u, e.ks.k)
	}
	e.ks.update(u)
}

// Flush byte-aligns the code with zero padding. Padding can never form a
// complete codeword, so the decoder still stops after exactly the symbols
// written. Flushing an aligned encoder emits nothing.
func (e *Encoder) Flush() {
	e.w.Flush()
}

// Code returns the code bytes emitted so far. Bits short of a whole byte
// stay in the cache until Flush.
func (e *Encoder) Code() []byte {
	return e.w.Bytes()
}
