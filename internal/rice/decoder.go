package rice

import "github.com/llehouerou/go-lpc/internal/bits"

// Decoder yields the residual sequence coded by an Encoder constructed
// with the same lossBits. The byte buffer bounds the stream: symbols are
// self-delimiting, so exhaustion of the buffer is the end of the stream.
type Decoder struct {
	r        *bits.Reader
	ks       kState
	lossBits uint
}

// NewDecoder creates a Decoder over code. An empty buffer is a valid
// empty stream.
func NewDecoder(code []byte, lossBits int) *Decoder {
	return &Decoder{
		r:        bits.NewReader(code),
		ks:       newKState(),
		lossBits: uint(lossBits),
	}
}

// Read returns the next residual. ok is false once the buffer cannot yield
// a complete symbol: flush padding and truncation both surface here, never
// as a spurious value.
func (d *Decoder) Read() (residual int32, ok bool) {
	quot := uint32(0)
	for quot < escapeQuotient {
		b := d.r.Get1Bit()
		if d.r.Error() {
			return 0, false
		}
		if b == 1 {
			break
		}
		quot++
	}

	var u uint32
	if quot == escapeQuotient {
		u = d.r.GetBits(escapeBits)
	} else {
		u = quot<<d.ks.k | d.r.GetBits(d.ks.k)
	}
	if d.r.Error() {
		return 0, false
	}
	// A well-formed stream never folds past maxFold; a corrupt remainder
	// under a large k can. Treat it as end of stream rather than shifting
	// garbage into the residual domain.
	if u > maxFold {
		return 0, false
	}

	d.ks.update(u)
	return unfold(u) << d.lossBits, true
}
