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

// Package gesture implements the swipe-to-reveal math used by mobile
// clients for action rows: a leftward horizontal drag translates the row up
// to a configured maximum, reveals the actions past half the threshold, and
// snaps open or shut on release.
package gesture

// Default geometry in CSS pixels.
const (
	DefaultThreshold      = 80.0
	DefaultMaxTranslation = 160.0
)

// Config holds the swipe geometry.
type Config struct {
	// Threshold is the leftward drag distance past which a release snaps
	// the row open. Half of it reveals the action buttons mid-drag.
	Threshold float64
	// MaxTranslation is the furthest the row may translate leftward.
	MaxTranslation float64
}

// DefaultConfig returns the geometry used when the client sends none.
func DefaultConfig() Config {
	return Config{
		Threshold:      DefaultThreshold,
		MaxTranslation: DefaultMaxTranslation,
	}
}

// Tracker follows one horizontal drag gesture. Translation is always in
// [-MaxTranslation, 0]; rightward drags never move the row past zero.
type Tracker struct {
	config   Config
	active   bool
	startX   float64
	deltaX   float64
	position float64
}

// NewTracker creates a tracker with the given geometry. Non-positive config
// values fall back to the defaults.
func NewTracker(config Config) *Tracker {
	if config.Threshold <= 0 {
		config.Threshold = DefaultThreshold
	}
	if config.MaxTranslation <= 0 {
		config.MaxTranslation = DefaultMaxTranslation
	}
	return &Tracker{config: config}
}

// Begin starts a drag at the given pointer position.
func (t *Tracker) Begin(x float64) {
	t.active = true
	t.startX = x
	t.deltaX = 0
}

// Move updates the drag with the current pointer position and returns the
// resulting translation.
func (t *Tracker) Move(x float64) float64 {
	if !t.active {
		return t.position
	}

	t.deltaX = x - t.startX
	translation := t.deltaX
	if translation > 0 {
		translation = 0
	}
	if translation < -t.config.MaxTranslation {
		translation = -t.config.MaxTranslation
	}
	t.position = translation
	return t.position
}

// Revealed reports whether the action row is visible, which happens once the
// leftward drag exceeds half the threshold.
func (t *Tracker) Revealed() bool {
	return -t.position > t.config.Threshold/2
}

// Release ends the drag and snaps the row: fully open when the leftward drag
// exceeded the threshold, shut otherwise. Returns the settled translation.
func (t *Tracker) Release() float64 {
	if !t.active {
		return t.position
	}
	t.active = false

	if -t.deltaX > t.config.Threshold {
		t.position = -t.config.MaxTranslation
	} else {
		t.position = 0
	}
	t.deltaX = 0
	return t.position
}

// Translation returns the current row translation.
func (t *Tracker) Translation() float64 {
	return t.position
}

// Reset snaps the row shut and forgets any in-flight drag.
func (t *Tracker) Reset() {
	t.active = false
	t.deltaX = 0
	t.position = 0
}
