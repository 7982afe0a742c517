package app

import (
	"hash/fnv"
	"sync"
)

const lockStripes = 64

// addressLocks serializes mutating requests per address. Striping keeps the
// lock table bounded; two addresses sharing a stripe merely contend, they
// never observe each other's partial state.
type addressLocks [lockStripes]sync.Mutex

func (l *addressLocks) forAddress(address string) *sync.Mutex {
	h := fnv.New32a()
	h.Write([]byte(address))
	return &l[h.Sum32()%lockStripes]
}
