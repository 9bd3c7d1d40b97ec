package toeplitz

// Fixed-point formats and guard rails for the recursion. The
// autocorrelation is normalized to 30 bits of magnitude, reflection and
// direct-form coefficients live in Q20 during the recursion and are
// exported in Q14, and coefficient magnitudes are capped so every product
// below stays inside int64 up to MaxOrder.
const (
	qCoef      = 14      // exported coefficient format
	qRec       = 20      // recursion coefficient format
	corrBits   = 30      // normalized zero-lag magnitude
	aLimit     = 1 << 24 // recursion coefficient cap (16.0 in Q20)
	decayShift = 2       // correlation smoothing: keep 3/4 per block
	energyCap  = 1 << 62
)

// refit recomputes the Q14 coefficient vector from the smoothed
// autocorrelation in corr. The recursion stops early when a reflection
// coefficient leaves the unit interval or the prediction error collapses,
// keeping the last stable stage; stages never reached leave zeros, which
// is a valid lower-order predictor.
func (e *Estimator) refit() {
	shift := uint(0)
	for e.corr[0]>>shift >= 1<<corrBits {
		shift++
	}
	if e.corr[0]>>shift == 0 {
		for i := range e.coefs {
			e.coefs[i] = 0
		}
		return
	}
	for i, c := range e.corr {
		e.work[i] = c >> shift
	}

	err := e.work[0]
	for i := range e.a {
		e.a[i] = 0
	}
	for i := 0; i < e.order; i++ {
		acc := e.work[i+1] << qRec
		for j := 0; j < i; j++ {
			acc -= e.a[j] * e.work[i-j]
		}
		k := acc / err
		if k >= 1<<qRec || k <= -(1<<qRec) {
			break
		}
		for j := 0; j < (i+1)>>1; j++ {
			tmp1 := e.a[j]
			tmp2 := e.a[i-1-j]
			e.a[j] = clampA(tmp1 - (k*tmp2)>>qRec)
			e.a[i-1-j] = clampA(tmp2 - (k*tmp1)>>qRec)
		}
		e.a[i] = k
		err -= ((k * k >> qRec) * err) >> qRec
		if err <= e.work[0]>>10 {
			break
		}
	}

	for i, v := range e.a {
		e.coefs[i] = int32(v >> (qRec - qCoef))
	}
}

func clampA(v int64) int64 {
	if v > aLimit {
		return aLimit
	}
	if v < -aLimit {
		return -aLimit
	}
	return v
}
