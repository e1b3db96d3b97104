// Package matching provides position filtering.
package matching

import (
	"fmt"
	"strings"

	"github.com/lgbarn/fenboard/internal/chess"
)

// PositionMatcher is the interface for all position matching implementations.
type PositionMatcher interface {
	// Match returns true if the position matches the matcher's criteria.
	Match(pos chess.Position) bool

	// Name returns a descriptive name for this matcher.
	Name() string
}

// MatchMode specifies how multiple matchers are combined.
type MatchMode int

const (
	// MatchAll requires all matchers to match (AND logic).
	MatchAll MatchMode = iota

	// MatchAny requires at least one matcher to match (OR logic).
	MatchAny
)

// CompositeMatcher combines multiple PositionMatchers with AND or OR logic.
type CompositeMatcher struct {
	matchers []PositionMatcher
	mode     MatchMode
}

// NewCompositeMatcher creates a new CompositeMatcher with the given mode and matchers.
func NewCompositeMatcher(mode MatchMode, matchers ...PositionMatcher) *CompositeMatcher {
	return &CompositeMatcher{
		matchers: matchers,
		mode:     mode,
	}
}

// Match implements PositionMatcher.
func (c *CompositeMatcher) Match(pos chess.Position) bool {
	if len(c.matchers) == 0 {
		// Empty composite: AND mode is vacuously true, OR mode has no conditions
		return c.mode == MatchAll
	}

	switch c.mode {
	case MatchAll:
		for _, m := range c.matchers {
			if !m.Match(pos) {
				return false
			}
		}
		return true
	case MatchAny:
		for _, m := range c.matchers {
			if m.Match(pos) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// Name implements PositionMatcher.
func (c *CompositeMatcher) Name() string {
	if len(c.matchers) == 0 {
		return "CompositeMatcher(empty)"
	}

	names := make([]string, len(c.matchers))
	for i, m := range c.matchers {
		names[i] = m.Name()
	}

	modeStr := "AND"
	if c.mode == MatchAny {
		modeStr = "OR"
	}

	return fmt.Sprintf("CompositeMatcher(%s: %s)", modeStr, strings.Join(names, ", "))
}

// Add adds a matcher to the composite.
func (c *CompositeMatcher) Add(m PositionMatcher) {
	c.matchers = append(c.matchers, m)
}

// Len returns the number of matchers in this composite.
func (c *CompositeMatcher) Len() int {
	return len(c.matchers)
}

// SideToMoveMatcher matches positions where the given colour is to move.
type SideToMoveMatcher struct {
	Colour chess.Colour
}

// Match implements PositionMatcher.
func (m SideToMoveMatcher) Match(pos chess.Position) bool {
	return pos.ActiveColour == m.Colour
}

// Name implements PositionMatcher.
func (m SideToMoveMatcher) Name() string {
	return m.Colour.String() + "ToMove"
}
