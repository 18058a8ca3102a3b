// SPDX-License-Identifier: EPL-2.0

package subtype

import "sync"

// Cache maps a requested bit depth to its resolved Info. It is safe for
// concurrent use; updates are atomic per key and last-writer-wins. Entries
// never expire on their own.
type Cache struct {
	mtx     sync.Mutex
	entries map[int]Info
}

func NewCache() *Cache {
	return &Cache{entries: make(map[int]Info)}
}

func (c *Cache) Get(bits int) (Info, bool) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	info, ok := c.entries[bits]
	return info, ok
}

func (c *Cache) Put(bits int, info Info) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	c.entries[bits] = info
}

// Clear drops every entry. It blocks until in-flight reads and writes have
// finished, so no caller observes a half-cleared view.
func (c *Cache) Clear() {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	clear(c.entries)
}

func (c *Cache) Len() int {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	return len(c.entries)
}
