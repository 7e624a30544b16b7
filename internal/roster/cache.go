package roster

import (
	"sync"

	"campusconnect/internal/model"
)

// UserCache holds the merged login candidate list. It never updates itself:
// rebuilding happens only through Service.Refresh, so stale reads are
// possible until the next explicit refresh.
type UserCache struct {
	mu   sync.RWMutex
	list []model.User
}

func (c *UserCache) users() []model.User {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.list == nil {
		return nil
	}
	out := make([]model.User, len(c.list))
	copy(out, c.list)
	return out
}

func (c *UserCache) replace(users []model.User) {
	c.mu.Lock()
	c.list = users
	c.mu.Unlock()
}
