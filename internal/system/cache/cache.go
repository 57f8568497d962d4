/*
 * Copyright (c) 2025, HireWise, Inc. (https://hirewise.io).
 *
 * HireWise, Inc. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package cache provides a small in-memory TTL cache for computed snapshots.
package cache

import (
	"sync"
	"time"

	"github.com/hirewise/recruiting-data-service/internal/system/log"
)

type entry struct {
	value     interface{}
	expiresAt time.Time
}

// Cache holds values for a fixed duration after each Set. Expired entries
// are evicted lazily on the next lookup of their key.
type Cache struct {
	mu      sync.Mutex
	entries map[string]entry
	ttl     time.Duration
}

// NewCache creates a cache whose entries live for ttl after being set.
func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		entries: make(map[string]entry),
		ttl:     ttl,
	}
}

// Set stores a value under key, resetting its expiry.
func (c *Cache) Set(key string, value interface{}) {

	log.GetLogger().Debug("Caching value", log.String("key", key))

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{
		value:     value,
		expiresAt: time.Now().Add(c.ttl),
	}
}

// Get returns the live value for key, or false when the key is absent
// or its entry has expired.
func (c *Cache) Get(key string) (interface{}, bool) {

	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		log.GetLogger().Debug("Evicting expired cache entry", log.String("key", key))
		delete(c.entries, key)
		return nil, false
	}
	return e.value, true
}

// Delete removes key from the cache.
func (c *Cache) Delete(key string) {

	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Len reports the number of entries currently held, including any that
// have expired but not yet been evicted.
func (c *Cache) Len() int {

	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
