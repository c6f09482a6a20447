package logging

import (
	"io"
	"testing"
)

// newInitializedBenchService runs the full Initialize path with discard
// outputs, banner included.
func newInitializedBenchService(b *testing.B, level string) *Service {
	b.Helper()

	s := NewLogger()
	s.Config = Config{
		Level:            level,
		ProductName:      "bench",
		ProductVersion:   "0.0.0",
		InfoOutput:       io.Discard,
		DiagnosticOutput: io.Discard,
	}
	if err := s.Initialize(); err != nil {
		b.Fatal(err)
	}
	return s
}

func BenchmarkInitialize(b *testing.B) {
	s := NewLogger()
	s.Config = Config{
		Level:            "info",
		ProductName:      "bench",
		ProductVersion:   "0.0.0",
		InfoOutput:       io.Discard,
		DiagnosticOutput: io.Discard,
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := s.Initialize(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkInfoRemote(b *testing.B) {
	s := newInitializedBenchService(b, "info")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.InfoRemote("request handled", "10.0.0.1", "alice")
	}
}

func BenchmarkDump(b *testing.B) {
	s := newInitializedBenchService(b, "debug")
	type payload struct {
		Name  string
		Count int
		Tags  []string
	}
	p := payload{Name: "bench", Count: 42, Tags: []string{"a", "b"}}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Dump(p)
	}
}

func BenchmarkHighConcurrency(b *testing.B) {
	s := newInitializedBenchService(b, "info")

	b.ResetTimer()
	b.SetParallelism(100)
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			s.Info("high concurrency test")
		}
	})
}
