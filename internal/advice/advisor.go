package advice

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"saldo/internal/core"
)

// Fixed fallback lines. Advice is decorative: any failure degrades to one
// of these, never to an error the caller has to handle.
const (
	FallbackEmpty = "Your money buddy is still crunching the numbers, hang in there! ✨"
	FallbackError = "Your money buddy dozed off for a moment. Let's keep saving together! 🍵"
)

const defaultTimeout = 30 * time.Second

// Generator produces advice text from a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Advisor shapes ledger data into a prompt and asks the generator for
// advice. One request in flight at a time; overlapping callers queue on
// the mutex rather than racing the external service.
type Advisor struct {
	mu      sync.Mutex
	gen     Generator
	timeout time.Duration
	logger  *slog.Logger
}

func NewAdvisor(gen Generator, timeout time.Duration, logger *slog.Logger) *Advisor {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Advisor{gen: gen, timeout: timeout, logger: logger}
}

// Advise returns advice text for the given month. It never fails: empty
// model output and generation errors both map to fixed fallback strings.
func (a *Advisor) Advise(ctx context.Context, accounts []core.Account, txs []core.Transaction, month string) string {
	summary := BuildSummary(accounts, txs, month)

	a.mu.Lock()
	defer a.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	text, err := a.gen.Generate(ctx, summary.Prompt())
	if err != nil {
		a.logger.Error("advice generation failed", "month", month, "error", err)
		return FallbackError
	}
	if text == "" {
		a.logger.Warn("advice generation returned empty text", "month", month)
		return FallbackEmpty
	}
	return text
}
