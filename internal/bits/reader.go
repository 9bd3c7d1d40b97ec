package bits

// Reader consumes bits MSB-first from a byte buffer.
//
// The buffer bounds are fixed at construction. Any read that would run past
// the end sets a sticky error flag and yields zero bits, so callers can
// check Error once after a group of reads instead of after every call.
type Reader struct {
	buffer []byte
	pos    int    // next byte to load
	cache  uint64 // loaded, unconsumed bits (low nbits valid)
	nbits  uint   // valid bit count in cache
	err    bool   // sticky overrun flag
}

// NewReader creates a Reader over data. An empty buffer is valid; the first
// read overruns it and sets the error flag.
func NewReader(data []byte) *Reader {
	return &Reader{buffer: data}
}

// Error reports whether a read has run past the end of the buffer.
func (r *Reader) Error() bool {
	return r.err
}

// Remaining returns the number of unread bits.
func (r *Reader) Remaining() int {
	return (len(r.buffer)-r.pos)*8 + int(r.nbits)
}

// GetBits reads and returns the next n bits, MSB-first. n must be 0-32.
// On overrun it returns 0 and sets the error flag.
func (r *Reader) GetBits(n uint) uint32 {
	if n == 0 || r.err {
		return 0
	}
	for r.nbits < n {
		if r.pos == len(r.buffer) {
			r.err = true
			r.cache = 0
			r.nbits = 0
			return 0
		}
		r.cache = r.cache<<8 | uint64(r.buffer[r.pos])
		r.pos++
		r.nbits += 8
	}
	r.nbits -= n
	return uint32(r.cache >> r.nbits & (1<<n - 1))
}

// Get1Bit reads and returns a single bit from the stream.
// Optimized path for single-bit reads.
func (r *Reader) Get1Bit() uint8 {
	if r.nbits > 0 {
		r.nbits--
		return uint8(r.cache>>r.nbits) & 1
	}
	return uint8(r.GetBits(1))
}
