package worker

import "testing"

func TestWithConcurrency(t *testing.T) {
	w := NewWorker(nil, "queue-url", nil)
	if w.concurrency != defaultConcurrency {
		t.Fatalf("expected default concurrency %d, got %d", defaultConcurrency, w.concurrency)
	}

	if got := w.WithConcurrency(25).concurrency; got != 25 {
		t.Fatalf("expected concurrency 25, got %d", got)
	}

	// Non-positive values keep the current setting.
	if got := w.WithConcurrency(0).concurrency; got != 25 {
		t.Fatalf("expected concurrency to stay 25, got %d", got)
	}
	if got := w.WithConcurrency(-3).concurrency; got != 25 {
		t.Fatalf("expected concurrency to stay 25, got %d", got)
	}
}
