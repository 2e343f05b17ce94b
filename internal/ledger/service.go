package ledger

import (
	"context"
	"log/slog"
	"time"

	"saldo/internal/amqp"
	"saldo/internal/core"
)

// MirrorPublisher publishes ledger mutations for the mirror worker.
type MirrorPublisher interface {
	PublishTransactionMirror(ctx context.Context, msg *amqp.TransactionMirrorMessage) error
}

// Service orchestrates ledger mutations and derived read models. Mutations
// go to the store first; mirror publishing is best effort and never fails
// the request, the local snapshot is the source of truth.
type Service struct {
	store     *Store
	publisher MirrorPublisher
	logger    *slog.Logger
}

func NewService(store *Store, publisher MirrorPublisher, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, publisher: publisher, logger: logger}
}

func (s *Service) Accounts() []core.Account {
	return s.store.Accounts()
}

func (s *Service) Transactions() []core.Transaction {
	return s.store.Transactions()
}

func (s *Service) CreateAccount(ctx context.Context, a core.Account) (core.Account, error) {
	return s.store.CreateAccount(ctx, a)
}

func (s *Service) DeleteAccount(ctx context.Context, id string) error {
	return s.store.DeleteAccount(ctx, id)
}

func (s *Service) CreateTransaction(ctx context.Context, tx core.Transaction) (core.Transaction, error) {
	created, err := s.store.CreateTransaction(ctx, tx)
	if err != nil {
		return core.Transaction{}, err
	}
	s.publish(ctx, amqp.NewTransactionCreated(created))
	return created, nil
}

func (s *Service) DeleteTransaction(ctx context.Context, id string) error {
	removed, err := s.store.DeleteTransaction(ctx, id)
	if err != nil {
		return err
	}
	s.publish(ctx, amqp.NewTransactionDeleted(removed))
	return nil
}

func (s *Service) publish(ctx context.Context, msg *amqp.TransactionMirrorMessage) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishTransactionMirror(ctx, msg); err != nil {
		s.logger.Error("failed to publish mirror message",
			"op", msg.Op,
			"transaction_id", msg.Transaction.ID,
			"error", err)
	}
}

// Balances returns per-account balances plus the net total.
func (s *Service) Balances() (map[string]float64, float64) {
	balances := core.AccountBalances(s.store.Accounts(), s.store.Transactions())
	return balances, core.NetAssets(balances)
}

// Monthly returns the chronological month-by-month series.
func (s *Service) Monthly() []core.MonthPoint {
	return core.MonthlySeries(s.store.Accounts(), s.store.Transactions())
}

// Trend returns the daily balance series for one account over a relative
// window ending now.
func (s *Service) Trend(accountID string, rng core.TrendRange, now time.Time) []core.TrendPoint {
	return core.RangeTrend(accountID, rng, now, s.store.Accounts(), s.store.Transactions())
}

// Records filters transactions by inclusive day range; with no bounds it
// returns only today's records.
func (s *Service) Records(from, to string, now time.Time) []core.Transaction {
	if from == "" && to == "" {
		return core.TodayRecords(s.store.Transactions(), core.Day(now))
	}
	return core.FilterRecords(s.store.Transactions(), from, to)
}
