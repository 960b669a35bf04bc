package stretch_test

import (
	"testing"

	"github.com/hasbyte1/go-stretch/stretch"
)

// Note: stretching is intentionally slow at production round counts.  The
// 5000-round benchmarks reflect real-world cost; the 100-round ones measure
// per-round overhead of the Digest adapter.

func benchParams(b *testing.B, name stretch.AlgorithmName, rounds int) stretch.Params {
	b.Helper()
	return stretch.Params{
		Password: []byte("bench-password"),
		Salt:     []byte("bench-salt"),
		Digest:   newDigest(b, name),
		Rounds:   rounds,
		Format:   stretch.FormatBase64,
	}
}

func BenchmarkStretch_SHA256_5000(b *testing.B) {
	p := benchParams(b, stretch.AlgorithmSHA256, 5000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = stretch.Stretch(p)
	}
}

func BenchmarkStretch_SHA256_100(b *testing.B) {
	p := benchParams(b, stretch.AlgorithmSHA256, 100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = stretch.Stretch(p)
	}
}

func BenchmarkStretch_SHA3_256_5000(b *testing.B) {
	p := benchParams(b, stretch.AlgorithmSHA3256, 5000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = stretch.Stretch(p)
	}
}

func BenchmarkStretch_BLAKE2b256_5000(b *testing.B) {
	p := benchParams(b, stretch.AlgorithmBLAKE2b256, 5000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = stretch.Stretch(p)
	}
}

func BenchmarkVerify_SHA256_5000(b *testing.B) {
	p := benchParams(b, stretch.AlgorithmSHA256, 5000)
	reference, _ := stretch.Stretch(p)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = stretch.Verify(p, reference)
	}
}

func BenchmarkRegistry_Stretch_Default(b *testing.B) {
	r := stretch.NewDefaultRegistry()
	p := stretch.Params{
		Password: []byte("bench-password"),
		Salt:     []byte("bench-salt"),
		Rounds:   100,
		Format:   stretch.FormatBase64,
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = r.Stretch(p)
	}
}
