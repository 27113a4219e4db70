package heightfield

import (
	"testing"
)

func TestThresholdsClassify(t *testing.T) {
	th := DefaultThresholds()

	tests := []struct {
		ratio float32
		want  Bucket
	}{
		{0, BucketLow},
		{0.4, BucketLow},
		{0.41, BucketMid},
		{0.45, BucketMid},
		{0.6, BucketMid},
		{0.61, BucketHigh},
		{0.8, BucketHigh},
		{0.81, BucketPeak},
		{1.2, BucketPeak},
	}

	for _, tt := range tests {
		if got := th.Classify(tt.ratio); got != tt.want {
			t.Errorf("Classify(%v) = %v, want %v", tt.ratio, got, tt.want)
		}
	}
}

func TestBucketString(t *testing.T) {
	names := map[Bucket]string{
		BucketLow:  "LOW",
		BucketMid:  "MID",
		BucketHigh: "HIGH",
		BucketPeak: "PEAK",
		Bucket(9):  "Bucket(9)",
	}
	for b, want := range names {
		if got := b.String(); got != want {
			t.Errorf("Bucket(%d).String() = %q, want %q", int(b), got, want)
		}
	}
}

func TestNoiseBounded(t *testing.T) {
	opts := DefaultOptions()
	for x := 0; x < 50; x++ {
		for z := 0; z < 50; z++ {
			n := opts.Noise(x, z)
			if n < -1 || n > 1 {
				t.Fatalf("Noise(%d, %d) = %v, outside [-1, 1]", x, z, n)
			}
		}
	}
	if got := opts.Noise(0, 0); got != 0.5 {
		t.Errorf("Noise(0, 0) = %v, want 0.5", got)
	}
}
