package rice

import "testing"

func TestFold_Unfold(t *testing.T) {
	tests := []struct {
		v int32
		u uint32
	}{
		{0, 0},
		{-1, 1},
		{1, 2},
		{-2, 3},
		{2, 4},
		{32767, 65534},
		{-32768, 65535},
		{65535, 131070},
		{-65536, 131071},
	}

	for _, tc := range tests {
		if got := fold(tc.v); got != tc.u {
			t.Errorf("fold(%d) = %d, want %d", tc.v, got, tc.u)
		}
		if got := unfold(tc.u); got != tc.v {
			t.Errorf("unfold(%d) = %d, want %d", tc.u, got, tc.v)
		}
	}
}

func TestEncoder_WriteLimited_Lossless(t *testing.T) {
	tests := []struct {
		residual   int32
		prediction int16
	}{
		{0, 0},
		{1, 0},
		{-1, 0},
		{100, -50},
		{-200, 150},
		{32767, 0},
		{-32768, 0},
		{767, 32000},
		{-768, -32000},
	}

	for _, tc := range tests {
		e := NewEncoder(0)
		value, coded := e.WriteLimited(tc.residual, tc.prediction)
		if coded != tc.residual {
			t.Errorf("WriteLimited(%d, %d) coded = %d, want %d",
				tc.residual, tc.prediction, coded, tc.residual)
		}
		if want := int16(int32(tc.prediction) + tc.residual); value != want {
			t.Errorf("WriteLimited(%d, %d) value = %d, want %d",
				tc.residual, tc.prediction, value, want)
		}
	}
}

func TestEncoder_WriteLimited_ClampsToSampleRange(t *testing.T) {
	tests := []struct {
		name       string
		residual   int32
		prediction int16
		wantValue  int16
		wantCoded  int32
	}{
		{"positive overshoot", 1000, 32000, 32767, 767},
		{"negative overshoot", -1000, -32000, -32768, -768},
		{"huge positive", 1 << 30, 0, 32767, 32767},
		{"huge negative", -(1 << 30), 0, -32768, -32768},
		{"overshoot from negative prediction", 70000, -32768, 32767, 65535},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := NewEncoder(0)
			value, coded := e.WriteLimited(tc.residual, tc.prediction)
			if value != tc.wantValue || coded != tc.wantCoded {
				t.Errorf("WriteLimited(%d, %d) = (%d, %d), want (%d, %d)",
					tc.residual, tc.prediction, value, coded, tc.wantValue, tc.wantCoded)
			}
		})
	}
}

func TestEncoder_WriteLimited_LossyRounding(t *testing.T) {
	// lossBits 2: residuals snap to the nearest multiple of 4,
	// ties rounding up.
	tests := []struct {
		residual  int32
		wantCoded int32
	}{
		{0, 0},
		{1, 0},
		{2, 4},
		{3, 4},
		{5, 4},
		{6, 8},
		{-1, 0},
		{-2, 0},
		{-3, -4},
		{-5, -4},
		{-6, -4},
		{-7, -8},
	}

	for _, tc := range tests {
		e := NewEncoder(2)
		value, coded := e.WriteLimited(tc.residual, 0)
		if coded != tc.wantCoded {
			t.Errorf("WriteLimited(%d, 0) coded = %d, want %d", tc.residual, coded, tc.wantCoded)
		}
		if int32(value) != tc.wantCoded {
			t.Errorf("WriteLimited(%d, 0) value = %d, want %d", tc.residual, value, tc.wantCoded)
		}
	}
}

func TestEncoder_WriteLimited_LossyStaysInRange(t *testing.T) {
	// Rounding up must not push the reconstruction past the sample limit:
	// 14 rounds to 16 under lossBits 4, but only a step of 0 keeps the
	// value at or below 32767.
	e := NewEncoder(4)
	value, coded := e.WriteLimited(14, 32760)
	if value != 32760 || coded != 0 {
		t.Errorf("WriteLimited(14, 32760) = (%d, %d), want (32760, 0)", value, coded)
	}
}

func TestEncoder_KnownCode(t *testing.T) {
	// Three zero residuals with the initial parameter trajectory
	// (k=4, then 3, then 3) produce 1 0000, 1 000, 1 000:
	// 10000100 01000000 = 0x84 0x40.
	e := NewEncoder(0)
	for i := 0; i < 3; i++ {
		e.WriteLimited(0, 0)
	}
	e.Flush()

	got := e.Code()
	if len(got) != 2 || got[0] != 0x84 || got[1] != 0x40 {
		t.Errorf("Code = % X, want 84 40", got)
	}
}

func TestEncoder_Code_PendingBitsHeldUntilFlush(t *testing.T) {
	e := NewEncoder(0)
	e.WriteLimited(0, 0) // 5 bits
	if got := e.Code(); len(got) != 0 {
		t.Errorf("Code before Flush = % X, want empty", got)
	}

	e.Flush()
	if got := e.Code(); len(got) != 1 {
		t.Errorf("Code after Flush = % X, want 1 byte", got)
	}
}

func TestEncoder_Flush_Idempotent(t *testing.T) {
	e := NewEncoder(0)
	for _, r := range []int32{7, -7, 300, -300} {
		e.WriteLimited(r, 0)
	}
	e.Flush()
	first := append([]byte(nil), e.Code()...)

	e.Flush()
	e.Flush()
	second := e.Code()
	if len(second) != len(first) {
		t.Fatalf("repeated Flush changed length: %d, want %d", len(second), len(first))
	}
	for i := range first {
		if second[i] != first[i] {
			t.Errorf("byte %d changed across Flush: 0x%02X, want 0x%02X", i, second[i], first[i])
		}
	}
}
