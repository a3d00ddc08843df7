// internal/targeting/targeting.go
package targeting

import (
	"fmt"
	"strings"

	"go-road-defense/internal/component"
	"go-road-defense/pkg/utils"
)

// Strategy is a tower target selection policy. Strategies carry no state and
// may be shared by any number of towers.
type Strategy uint8

const (
	First     Strategy = iota // первый в порядке обхода
	Last                      // дальше всех по пути
	Strongest                 // больше всего здоровья
	Weakest                   // меньше всего здоровья
	strategyCount
)

var strategyNames = [strategyCount]string{
	First:     "first",
	Last:      "last",
	Strongest: "strongest",
	Weakest:   "weakest",
}

func (s Strategy) String() string {
	if s < strategyCount {
		return strategyNames[s]
	}
	return fmt.Sprintf("strategy(%d)", uint8(s))
}

// Strategies lists all strategies in cycling order.
func Strategies() []Strategy {
	return []Strategy{First, Last, Strongest, Weakest}
}

// Next returns the strategy after s, wrapping around.
func (s Strategy) Next() Strategy {
	return (s + 1) % strategyCount
}

// ParseStrategy maps a tower definition value to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range strategyNames {
		if n == name {
			return Strategy(i), nil
		}
	}
	return First, fmt.Errorf("unknown targeting strategy %q", name)
}

// better reports whether candidate c beats the current pick. Strict, so the
// first found wins ties.
type better func(c, cur component.EnemyView) bool

var selectors = [strategyCount]better{
	First:     func(c, cur component.EnemyView) bool { return false },
	Last:      func(c, cur component.EnemyView) bool { return c.PathIndex > cur.PathIndex },
	Strongest: func(c, cur component.EnemyView) bool { return c.Health > cur.Health },
	Weakest:   func(c, cur component.EnemyView) bool { return c.Health < cur.Health },
}

func eligible(c component.EnemyView) bool {
	return c.Alive && c.Targetable
}

// Select picks a target from candidates. It returns false when no candidate
// is alive and targetable. Pure: candidates are not modified.
func Select(s Strategy, candidates []component.EnemyView) (component.EnemyView, bool) {
	if s >= strategyCount {
		s = First
	}
	beats := selectors[s]

	var pick component.EnemyView
	found := false
	for _, c := range candidates {
		if !eligible(c) {
			continue
		}
		if !found {
			pick, found = c, true
			if s == First {
				break
			}
			continue
		}
		if beats(c, pick) {
			pick = c
		}
	}
	return pick, found
}

// InRange returns the enemies within radius of (x, y), keeping snapshot order.
func InRange(snapshot []component.EnemyView, x, y, radius float64) []component.EnemyView {
	var out []component.EnemyView
	for _, e := range snapshot {
		if utils.Dist(x, y, e.X, e.Y) <= radius {
			out = append(out, e)
		}
	}
	return out
}
