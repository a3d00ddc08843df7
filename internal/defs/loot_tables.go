// internal/defs/loot_tables.go
package defs

// CollectibleKind is what a killed enemy may leave behind.
type CollectibleKind string

const (
	CollectibleCoin  CollectibleKind = "coin"
	CollectibleGem   CollectibleKind = "gem"
	CollectibleHeart CollectibleKind = "heart"
)

// DropEntry представляет одну запись в таблице выпадения.
// Weight - ее "вес" или относительный шанс выпадения.
type DropEntry struct {
	Kind   CollectibleKind `yaml:"kind"`
	Weight int             `yaml:"weight"`
}

// DefaultDropTable is used when no drop table is configured.
func DefaultDropTable() []DropEntry {
	return []DropEntry{
		{Kind: CollectibleCoin, Weight: 70},
		{Kind: CollectibleGem, Weight: 20},
		{Kind: CollectibleHeart, Weight: 10},
	}
}
