package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// Names is the payload of a content source: `{"artists": [...], "tracks": [...]}`.
type Names struct {
	Artists []string `json:"artists" yaml:"artists"`
	Tracks  []string `json:"tracks" yaml:"tracks"`
}

// Empty reports whether neither list has entries.
func (n Names) Empty() bool {
	return len(normalize(n.Artists)) == 0 && len(normalize(n.Tracks)) == 0
}

// DecodeNames parses the JSON payload of a content source.
func DecodeNames(data []byte) (Names, error) {
	var n Names
	if err := json.Unmarshal(data, &n); err != nil {
		return Names{}, fmt.Errorf("content: decode names: %w", err)
	}
	return n, nil
}

// Source supplies real artist and track names.
type Source interface {
	// Name identifies the source in logs and the CLI.
	Name() string
	// Fetch returns the current real names.
	Fetch(ctx context.Context) (Names, error)
}

// Refresher applies a Source to a Pool. Failures are logged and the
// pool keeps its previous lists.
type Refresher struct {
	Pool     *Pool
	Source   Source
	Logger   *log.Logger
	Interval time.Duration

	mu   sync.Mutex
	last time.Time
}

// Refresh fetches once and replaces the pool's real lists on success.
func (r *Refresher) Refresh(ctx context.Context) error {
	names, err := r.Source.Fetch(ctx)
	if err == nil && names.Empty() {
		err = ErrNoContent
	}
	if err != nil {
		r.logger().Warn("content refresh failed, keeping current lists", "source", r.Source.Name(), "err", err)
		return fmt.Errorf("content: refresh from %s: %w", r.Source.Name(), err)
	}

	r.Pool.ReplaceReal(names.Artists, names.Tracks)

	r.mu.Lock()
	r.last = time.Now()
	r.mu.Unlock()

	r.logger().Info("content refreshed", "source", r.Source.Name(), "artists", len(names.Artists), "tracks", len(names.Tracks))
	return nil
}

// LastRefresh returns when the pool was last refreshed successfully.
func (r *Refresher) LastRefresh() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last
}

// Run refreshes once immediately and then every Interval until ctx is
// cancelled. With a zero Interval it refreshes once and returns.
func (r *Refresher) Run(ctx context.Context) error {
	_ = r.Refresh(ctx)
	if r.Interval <= 0 {
		return nil
	}

	ticker := time.NewTicker(r.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return ctx.Err()
		case <-ticker.C:
			_ = r.Refresh(ctx)
		}
	}
}

func (r *Refresher) logger() *log.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return log.Default()
}
