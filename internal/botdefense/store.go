package botdefense

import (
	"context"
	"fmt"
	"time"

	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// why an IP was trapped
type TrapReason string

const (
	ReasonHoneypot   TrapReason = "honeypot"
	ReasonProbe      TrapReason = "probe"
	ReasonBotPattern TrapReason = "bot_pattern"
)

// remembers trapped IPs and per-IP request counts
type Store struct {
	store limiter.Store
	trap  limiter.Rate
	rate  *limiter.Limiter
}

// creates an in-process store. a trap is a zero-limit rate whose
// period is the trap TTL, so a single hit marks the IP until it expires.
func NewStore(config *Config) (*Store, error) {
	rate, err := limiter.NewRateFromFormatted(config.RateLimit)
	if err != nil {
		return nil, fmt.Errorf("invalid bot defense rate %q: %w", config.RateLimit, err)
	}

	store := memory.NewStoreWithOptions(limiter.StoreOptions{
		Prefix:          "botdefense",
		CleanUpInterval: limiter.DefaultCleanUpInterval,
	})

	return &Store{
		store: store,
		trap:  limiter.Rate{Period: config.TrapTTL, Limit: 0},
		rate:  limiter.New(store, rate),
	}, nil
}

func trapKey(ip string) string {
	return "trap:" + ip
}

func (s *Store) TrapIP(ctx context.Context, ip string) error {
	if _, err := s.store.Get(ctx, trapKey(ip), s.trap); err != nil {
		return fmt.Errorf("failed to trap %s: %w", ip, err)
	}

	return nil
}

func (s *Store) IsTrapped(ctx context.Context, ip string) (bool, error) {
	state, err := s.store.Peek(ctx, trapKey(ip), s.trap)
	if err != nil {
		return false, fmt.Errorf("failed to check trap for %s: %w", ip, err)
	}

	return state.Reached, nil
}

// counts one request for ip and reports whether the limit was exceeded
func (s *Store) IncrementRate(ctx context.Context, ip string) (reached bool, reset time.Time, err error) {
	state, err := s.rate.Get(ctx, "rate:"+ip)
	if err != nil {
		return false, time.Time{}, fmt.Errorf("failed to count request for %s: %w", ip, err)
	}

	return state.Reached, time.Unix(state.Reset, 0), nil
}
