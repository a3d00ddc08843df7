// internal/event/types.go
package event

import "go-road-defense/internal/defs"

const (
	EnemyKilled        EventType = "EnemyKilled"        // враг уничтожен
	EnemyReachedEnd    EventType = "EnemyReachedEnd"    // враг дошёл до выхода
	CollectibleDropped EventType = "CollectibleDropped" // выпал предмет
	WaveStarted        EventType = "WaveStarted"
	WaveCompleted      EventType = "WaveCompleted" // все враги волны мертвы или дошли
	AllWavesCompleted  EventType = "AllWavesCompleted"
)

// EnemyKilledData is the payload of EnemyKilled.
type EnemyKilledData struct {
	EnemyID uint64
	Type    defs.EnemyType
	Gold    int
	X, Y    float64
}

// EnemyReachedEndData is the payload of EnemyReachedEnd.
type EnemyReachedEndData struct {
	EnemyID  uint64
	Type     defs.EnemyType
	LifeCost int
}

// CollectibleDroppedData is the payload of CollectibleDropped.
type CollectibleDroppedData struct {
	Kind defs.CollectibleKind
	X, Y float64
}

// WaveData is the payload of WaveStarted and WaveCompleted. Wave is 1-based.
type WaveData struct {
	Wave       int
	TotalWaves int
}
