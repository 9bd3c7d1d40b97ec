package rice

// Adaptive Golomb-Rice coding of prediction residuals.
//
// Each residual is folded into the unsigned domain and written as a unary
// quotient, a terminator bit and a k-bit remainder. Unary prefixes are
// capped: a quotient reaching escapeQuotient switches the codeword to a
// raw escapeBits payload, which bounds the worst case and keeps single-bit
// corruption from stalling a decoder. The parameter k tracks a decaying
// mean of the folded magnitudes; encoder and decoder both update it from
// the coded value after every symbol, so the two trajectories agree
// without any side information.

const (
	meanShift      = 4  // parameter adaptation window: 16 symbols
	maxK           = 16 // folded residuals fit escapeBits after bounding
	escapeQuotient = 20 // unary prefixes this long escape to raw payload
	escapeBits     = 17
	maxFold        = 1<<escapeBits - 1
)

// fold maps a signed residual onto the unsigned code domain,
// interleaving signs: 0, -1, 1, -2, 2 become 0, 1, 2, 3, 4.
func fold(v int32) uint32 {
	return uint32(v)<<1 ^ uint32(v>>31)
}

// unfold inverts fold.
func unfold(u uint32) int32 {
	return int32(u>>1) ^ -int32(u&1)
}

// kState is the adaptive Rice parameter, kept identically on both ends.
type kState struct {
	sum uint32 // decaying sum of folded magnitudes
	k   uint
}

// newKState starts mid-range so cold-start residuals, which are raw sample
// magnitudes until the first coefficient fit, do not explode into long
// unary prefixes.
func newKState() kState {
	return kState{sum: 8 << meanShift, k: 4}
}

// update folds u into the decaying mean and rederives k as its bit length.
func (s *kState) update(u uint32) {
	s.sum += u - s.sum>>meanShift
	k := uint(0)
	for m := s.sum >> meanShift; m != 0; m >>= 1 {
		k++
	}
	if k > maxK {
		k = maxK
	}
	s.k = k
}
