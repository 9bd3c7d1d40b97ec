package bits

// Writer assembles a bit stream MSB-first into a growing byte slice.
//
// Bits accumulate in a cache and are appended to the buffer a byte at a
// time, so Bytes only ever returns whole bytes; call Flush to pad the
// pending partial byte with zeros.
type Writer struct {
	buffer []byte
	cache  uint64 // pending bits not yet emitted (low nbits valid)
	nbits  uint   // valid bit count in cache, < 8 between calls
}

// NewWriter creates an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteBits appends the low n bits of v, most significant first.
// n must be 0-32.
func (w *Writer) WriteBits(v uint32, n uint) {
	if n == 0 {
		return
	}
	w.cache = w.cache<<n | uint64(v)&(1<<n-1)
	w.nbits += n
	for w.nbits >= 8 {
		w.nbits -= 8
		w.buffer = append(w.buffer, byte(w.cache>>w.nbits))
	}
}

// Write1Bit appends a single bit.
func (w *Writer) Write1Bit(b uint8) {
	w.WriteBits(uint32(b&1), 1)
}

// Flush pads the pending partial byte with zero bits. Flushing an
// already-aligned writer does nothing, so Flush is idempotent.
func (w *Writer) Flush() {
	if w.nbits > 0 {
		w.buffer = append(w.buffer, byte(w.cache<<(8-w.nbits)))
		w.nbits = 0
		w.cache = 0
	}
}

// Bytes returns the bytes emitted so far. Bits short of a whole byte are
// not included until Flush.
func (w *Writer) Bytes() []byte {
	return w.buffer
}

// Len returns the number of whole bytes emitted so far.
func (w *Writer) Len() int {
	return len(w.buffer)
}
