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

package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheSetAndGet(t *testing.T) {
	c := NewCache(1 * time.Minute)

	c.Set("dashboard:3600", 42)

	value, found := c.Get("dashboard:3600")
	require.True(t, found)
	assert.Equal(t, 42, value)
}

func TestCacheMissingKey(t *testing.T) {
	c := NewCache(1 * time.Minute)

	_, found := c.Get("absent")
	assert.False(t, found)
}

func TestCacheExpires(t *testing.T) {
	c := NewCache(10 * time.Millisecond)

	c.Set("short-lived", "value")
	time.Sleep(25 * time.Millisecond)

	_, found := c.Get("short-lived")
	assert.False(t, found)
}

func TestCacheEvictsExpiredEntryOnLookup(t *testing.T) {
	c := NewCache(10 * time.Millisecond)

	c.Set("stale", "value")
	require.Equal(t, 1, c.Len())
	time.Sleep(25 * time.Millisecond)

	_, found := c.Get("stale")
	assert.False(t, found)
	assert.Equal(t, 0, c.Len())
}

func TestCacheDelete(t *testing.T) {
	c := NewCache(1 * time.Minute)

	c.Set("key", "value")
	c.Delete("key")

	_, found := c.Get("key")
	assert.False(t, found)
}
