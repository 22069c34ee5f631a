package directory

import (
	"sync"

	"github.com/kbop543/BrokenKayak/internal/kayak/entity"
)

// Directory holds client records keyed by email. It is safe for
// concurrent use.
type Directory struct {
	mu      sync.RWMutex
	clients map[string]entity.Client
}

func New() *Directory {
	return &Directory{clients: make(map[string]entity.Client)}
}

// Put stores the client under its email. A duplicate email overwrites
// the previous record; Put reports whether one was replaced so the
// caller can log it.
func (d *Directory) Put(c entity.Client) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, replaced := d.clients[c.Email]
	d.clients[c.Email] = c
	return replaced
}

// Get looks up a client by email.
func (d *Directory) Get(email string) (entity.Client, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	c, ok := d.clients[email]
	return c, ok
}

// Len is the number of stored clients.
func (d *Directory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.clients)
}
