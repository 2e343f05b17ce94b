package advice

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"saldo/internal/core"
)

type fakeGenerator struct {
	mu      sync.Mutex
	text    string
	err     error
	inCall  bool
	overlap bool
	delay   time.Duration
}

func (f *fakeGenerator) Generate(_ context.Context, _ string) (string, error) {
	f.mu.Lock()
	if f.inCall {
		f.overlap = true
	}
	f.inCall = true
	f.mu.Unlock()

	if f.delay > 0 {
		time.Sleep(f.delay)
	}

	f.mu.Lock()
	f.inCall = false
	f.mu.Unlock()
	return f.text, f.err
}

func TestAdviseSuccess(t *testing.T) {
	gen := &fakeGenerator{text: "wow, nice savings! 🎉"}
	a := NewAdvisor(gen, time.Second, nil)

	got := a.Advise(context.Background(), nil, nil, "2024-03")
	if got != "wow, nice savings! 🎉" {
		t.Fatalf("Advise = %q", got)
	}
}

func TestAdviseEmptyFallsBack(t *testing.T) {
	a := NewAdvisor(&fakeGenerator{text: ""}, time.Second, nil)
	if got := a.Advise(context.Background(), nil, nil, "2024-03"); got != FallbackEmpty {
		t.Fatalf("Advise = %q, want empty fallback", got)
	}
}

func TestAdviseErrorFallsBack(t *testing.T) {
	a := NewAdvisor(&fakeGenerator{err: errors.New("quota exceeded")}, time.Second, nil)
	if got := a.Advise(context.Background(), nil, nil, "2024-03"); got != FallbackError {
		t.Fatalf("Advise = %q, want error fallback", got)
	}
}

func TestAdviseSerializesRequests(t *testing.T) {
	gen := &fakeGenerator{text: "ok", delay: 20 * time.Millisecond}
	a := NewAdvisor(gen, time.Second, nil)

	accounts := []core.Account{{ID: "x", Name: "X"}}
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			a.Advise(context.Background(), accounts, nil, "2024-03")
		}()
	}
	wg.Wait()

	if gen.overlap {
		t.Fatal("generator saw overlapping requests")
	}
}
