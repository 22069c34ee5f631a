package usecase

import (
	"sync"
	"time"

	"github.com/kbop543/BrokenKayak/internal/kayak/cache"
	"github.com/kbop543/BrokenKayak/internal/kayak/directory"
	"github.com/kbop543/BrokenKayak/internal/kayak/network"
)

type Dependency struct {
	Network   *network.Network
	Directory *directory.Directory
	Cache     *cache.Cache[*ItinerariesOutput]
	CacheTTL  time.Duration
}

// Usecase owns the flight network and the client directory. The network
// follows a copy-on-write model: searches read the published network
// under the read lock, ingestion builds a clone and swaps it in under
// the write lock. Readers are never blocked by an in-progress parse.
type Usecase struct {
	mu         sync.RWMutex
	network    *network.Network
	generation uint64
	directory  *directory.Directory
	cache      *cache.Cache[*ItinerariesOutput]
	cacheTTL   time.Duration
}

func New(dep Dependency) *Usecase {
	n := dep.Network
	if n == nil {
		n = network.New()
	}
	return &Usecase{
		network:   n,
		directory: dep.Directory,
		cache:     dep.Cache,
		cacheTTL:  dep.CacheTTL,
	}
}
