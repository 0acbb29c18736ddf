// SPDX-License-Identifier: GPL-2.0-only

package lzo1x1

import "sync"

// matchDict is the flat hash -> input-offset table used by the match
// finder, keyed by a 13-bit hash of a 4-byte prefix. Offsets are stored
// relative to the current block's start, which is why uint16 suffices
// (blocks are at most maxBlockLen bytes). No chaining: a collision simply
// means the candidate at that slot gets overwritten and the old one is
// forgotten, which is fine — a miss just costs a skipped match.
type matchDict [dictSize]uint16

var dictPool = sync.Pool{
	New: func() any {
		return new(matchDict)
	},
}

// acquireDict returns a zeroed dictionary from the pool, ready for one
// block's worth of match finding.
func acquireDict() *matchDict {
	d := dictPool.Get().(*matchDict)
	clear(d[:])
	return d
}

// releaseDict returns a dictionary to the pool.
func releaseDict(d *matchDict) {
	dictPool.Put(d)
}
