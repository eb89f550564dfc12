// Package content holds the name lists targets are labelled with and the
// sources that refresh the real lists.
package content

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"strings"
	"sync"
)

// ErrNoContent is returned when a source yields no usable names.
var ErrNoContent = errors.New("content: no names available")

// Variant selects which set of four lists is active.
type Variant int

const (
	Standard Variant = iota
	Themed
)

func (v Variant) String() string {
	switch v {
	case Standard:
		return "standard"
	case Themed:
		return "themed"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// ParseVariant converts a config value to a Variant.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "standard", "":
		return Standard, nil
	case "themed":
		return Themed, nil
	default:
		return Standard, fmt.Errorf("content: unknown theme variant %q", s)
	}
}

// Category identifies one of the four lists.
type Category int

const (
	FakeArtist Category = iota
	FakeTrack
	RealArtist
	RealTrack
	numCategories
)

// IsFake reports whether names in this category are fakes.
func (c Category) IsFake() bool {
	return c == FakeArtist || c == FakeTrack
}

// Content is the label of a target. Immutable once picked.
type Content struct {
	Name   string
	IsFake bool
}

// Lists is one variant's four name lists.
type Lists struct {
	FakeArtists []string
	FakeTracks  []string
	RealArtists []string
	RealTracks  []string
}

func (l *Lists) list(c Category) []string {
	switch c {
	case FakeArtist:
		return l.FakeArtists
	case FakeTrack:
		return l.FakeTracks
	case RealArtist:
		return l.RealArtists
	default:
		return l.RealTracks
	}
}

// Len returns the total number of names across all four lists.
func (l Lists) Len() int {
	return len(l.FakeArtists) + len(l.FakeTracks) + len(l.RealArtists) + len(l.RealTracks)
}

// Pool is the process-wide content pool. It is shared between sessions,
// so all access goes through an RWMutex.
type Pool struct {
	mu       sync.RWMutex
	variant  Variant
	variants [2]*Lists
}

// NewPool creates a pool from the given standard and themed lists.
// The lists are copied.
func NewPool(standard, themed Lists) *Pool {
	p := &Pool{}
	p.variants[Standard] = cloneLists(standard)
	p.variants[Themed] = cloneLists(themed)
	return p
}

// NewDefaultPool creates a pool populated with the built-in lists.
func NewDefaultPool() *Pool {
	return NewPool(BuiltinStandard(), BuiltinThemed())
}

// Pick draws one name: each of the four lists has a 1/4 chance, then a
// uniform index. An empty list re-rolls uniformly among non-empty lists.
// Returns false when every list is empty.
func (p *Pool) Pick(rng *rand.Rand) (Content, bool) {
	p.mu.RLock()
	lists := p.variants[p.variant]
	p.mu.RUnlock()

	cat := Category(rng.Float64() * float64(numCategories))
	if cat >= numCategories {
		cat = numCategories - 1
	}

	names := lists.list(cat)
	if len(names) == 0 {
		var nonEmpty []Category
		for c := FakeArtist; c < numCategories; c++ {
			if len(lists.list(c)) > 0 {
				nonEmpty = append(nonEmpty, c)
			}
		}
		if len(nonEmpty) == 0 {
			return Content{}, false
		}
		cat = nonEmpty[rng.Intn(len(nonEmpty))]
		names = lists.list(cat)
	}

	return Content{Name: names[rng.Intn(len(names))], IsFake: cat.IsFake()}, true
}

// SetThemeVariant switches the active variant. All four lists change together.
func (p *Pool) SetThemeVariant(v Variant) {
	if v != Standard && v != Themed {
		return
	}
	p.mu.Lock()
	p.variant = v
	p.mu.Unlock()
}

// ThemeVariant returns the active variant.
func (p *Pool) ThemeVariant() Variant {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.variant
}

// ReplaceReal replaces the standard variant's real lists. The themed
// variant is never touched. An empty argument keeps the current list.
func (p *Pool) ReplaceReal(artists, tracks []string) {
	artists, tracks = normalize(artists), normalize(tracks)

	p.mu.Lock()
	defer p.mu.Unlock()

	// Copy-on-write: a Pick in flight keeps reading the old *Lists.
	next := *p.variants[Standard]
	if len(artists) > 0 {
		next.RealArtists = artists
	}
	if len(tracks) > 0 {
		next.RealTracks = tracks
	}
	p.variants[Standard] = &next
}

// Snapshot returns a copy of the given variant's lists.
func (p *Pool) Snapshot(v Variant) Lists {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if v != Standard && v != Themed {
		return Lists{}
	}
	return *cloneLists(*p.variants[v])
}

func cloneLists(l Lists) *Lists {
	return &Lists{
		FakeArtists: clone(l.FakeArtists),
		FakeTracks:  clone(l.FakeTracks),
		RealArtists: clone(l.RealArtists),
		RealTracks:  clone(l.RealTracks),
	}
}

func clone(s []string) []string {
	return slices.Clone(s)
}

// normalize trims names, drops blanks and removes duplicates while keeping order.
func normalize(names []string) []string {
	out := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
