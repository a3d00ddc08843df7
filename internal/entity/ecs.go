// internal/entity/ecs.go
package entity

import "go-road-defense/internal/component"

// Store is the live enemy collection: a dense slice with stable order and a
// tombstone flag. Removed slots stay in place until Compact, so indices taken
// during a scan remain valid for the whole tick.
type Store struct {
	NextID  uint64
	enemies []component.Enemy
	index   map[uint64]int
	removed int
}

func NewStore() *Store {
	return &Store{
		NextID: 1,
		index:  make(map[uint64]int),
	}
}

// NewEntity hands out the next monotonic id.
func (s *Store) NewEntity() uint64 {
	id := s.NextID
	s.NextID++
	return id
}

// Add appends an enemy. Pointers returned by Get or At are invalidated.
func (s *Store) Add(e component.Enemy) {
	s.index[e.ID] = len(s.enemies)
	s.enemies = append(s.enemies, e)
}

// Get returns the enemy with the given id unless it was removed.
func (s *Store) Get(id uint64) (*component.Enemy, bool) {
	i, ok := s.index[id]
	if !ok || s.enemies[i].Removed {
		return nil, false
	}
	return &s.enemies[i], true
}

// Slots returns the number of slots including tombstones.
func (s *Store) Slots() int {
	return len(s.enemies)
}

// At returns the slot i.
func (s *Store) At(i int) *component.Enemy {
	return &s.enemies[i]
}

// Len returns the number of enemies not yet removed.
func (s *Store) Len() int {
	return len(s.enemies) - s.removed
}

// Remove tombstones the enemy; Compact drops it.
func (s *Store) Remove(id uint64) {
	if e, ok := s.Get(id); ok {
		e.Removed = true
		s.removed++
	}
}

// Compact drops tombstoned slots keeping insertion order.
func (s *Store) Compact() {
	if s.removed == 0 {
		return
	}
	kept := s.enemies[:0]
	for _, e := range s.enemies {
		if !e.Removed {
			kept = append(kept, e)
		}
	}
	clear(s.enemies[len(kept):])
	s.enemies = kept
	clear(s.index)
	for i, e := range s.enemies {
		s.index[e.ID] = i
	}
	s.removed = 0
}

// Snapshot copies the visible state of every enemy in insertion order.
func (s *Store) Snapshot(now float64) []component.EnemyView {
	out := make([]component.EnemyView, 0, s.Len())
	for i := range s.enemies {
		if s.enemies[i].Removed {
			continue
		}
		out = append(out, s.enemies[i].View(now))
	}
	return out
}

// Reset drops every enemy. Ids keep growing so stale references never match.
func (s *Store) Reset() {
	s.enemies = s.enemies[:0]
	clear(s.index)
	s.removed = 0
}
