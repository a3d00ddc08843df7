package targeting

import (
	"testing"

	"go-road-defense/internal/component"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func enemy(id uint64, health, pathIndex int) component.EnemyView {
	return component.EnemyView{ID: id, Health: health, PathIndex: pathIndex, Alive: true, Targetable: true}
}

func TestSelectTieBreaks(t *testing.T) {
	candidates := []component.EnemyView{enemy(1, 50, 2), enemy(2, 50, 4), enemy(3, 30, 4)}

	tests := []struct {
		strategy Strategy
		want     uint64
	}{
		{First, 1},
		{Last, 2},
		{Strongest, 1},
		{Weakest, 3},
	}
	for _, tt := range tests {
		t.Run(tt.strategy.String(), func(t *testing.T) {
			got, ok := Select(tt.strategy, candidates)
			require.True(t, ok)
			assert.Equal(t, tt.want, got.ID)
		})
	}
}

func TestSelectSkipsUntargetable(t *testing.T) {
	hidden := enemy(1, 100, 9)
	hidden.Targetable = false
	dead := enemy(2, 200, 9)
	dead.Alive = false
	candidates := []component.EnemyView{hidden, dead, enemy(3, 10, 1)}

	for _, s := range Strategies() {
		got, ok := Select(s, candidates)
		require.True(t, ok, s.String())
		assert.Equal(t, uint64(3), got.ID, s.String())
	}
}

func TestSelectNone(t *testing.T) {
	for _, s := range Strategies() {
		_, ok := Select(s, nil)
		assert.False(t, ok)

		dead := enemy(1, 10, 0)
		dead.Alive = false
		_, ok = Select(s, []component.EnemyView{dead})
		assert.False(t, ok)
	}
}

func TestSelectDoesNotModifyCandidates(t *testing.T) {
	candidates := []component.EnemyView{enemy(1, 5, 0), enemy(2, 9, 3)}
	before := append([]component.EnemyView(nil), candidates...)
	Select(Strongest, candidates)
	Select(Last, candidates)
	assert.Equal(t, before, candidates)
}

func TestParseStrategy(t *testing.T) {
	for _, s := range Strategies() {
		got, err := ParseStrategy(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	got, err := ParseStrategy(" Strongest ")
	require.NoError(t, err)
	assert.Equal(t, Strongest, got)

	_, err = ParseStrategy("closest")
	assert.Error(t, err)

	assert.Equal(t, First, Weakest.Next())
}

func TestInRangeKeepsOrder(t *testing.T) {
	snapshot := []component.EnemyView{
		{ID: 1, X: 0, Y: 0},
		{ID: 2, X: 100, Y: 0},
		{ID: 3, X: 3, Y: 4},
	}
	got := InRange(snapshot, 0, 0, 5)
	require.Len(t, got, 2)
	assert.Equal(t, uint64(1), got[0].ID)
	assert.Equal(t, uint64(3), got[1].ID)
}
