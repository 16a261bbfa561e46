package labelindex

import (
	"math"

	"github.com/royalcat/rlabel/tilecover"
)

// PruneOrNoop keeps at most maxLabeledTiles keys in the group of addedKey by pruning the keys
// whose tiles are farthest from the added one. The group of a key is its suffix after
// "x:y:z:". Keys that are not tile keys are left alone. The entries of pruned keys are
// returned.
func (idx *Index) PruneOrNoop(addedKey string) []*IndexedLabel {
	if idx.maxLabeledTiles <= 0 {
		return nil
	}
	added, group, err := tilecover.ParseTile(addedKey)
	if err != nil {
		idx.log.Debug("key is not a tile key, skipping prune", "key", addedKey)
		return nil
	}

	type candidate struct {
		key  string
		dist float64
	}
	var same []candidate
	idx.keys.Ascend(func(key string) bool {
		tile, g, err := tilecover.ParseTile(key)
		if err != nil || g != group {
			return true
		}
		dx := float64(tile.X - added.X)
		dy := float64(tile.Y - added.Y)
		same = append(same, candidate{key: key, dist: math.Sqrt(dx*dx + dy*dy)})
		return true
	})

	var evicted []*IndexedLabel
	for len(same) > idx.maxLabeledTiles {
		far := -1
		for i := range same {
			if same[i].key == addedKey {
				continue
			}
			if far < 0 || same[i].dist > same[far].dist {
				far = i
			}
		}
		if far < 0 {
			break
		}
		evicted = append(evicted, idx.PruneKey(same[far].key)...)
		same = append(same[:far], same[far+1:]...)
	}
	return evicted
}
