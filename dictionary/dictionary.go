// SPDX-License-Identifier: MIT

// Package dictionary is an insertion-ordered list of string keys with int
// values. Lookups are linear and the first matching key wins; duplicate keys
// are allowed.
package dictionary

import (
	"fmt"
	"io"
	"slices"
	"strings"
)

const (
	// MaxKeyLen is the longest key, in bytes, that Push and Add accept.
	MaxKeyLen = 32

	// NotFound is returned by Find when no key matches.
	NotFound = -1
)

// Dictionary holds parallel key and value slices. The zero value is an empty
// dictionary with no reserved capacity.
type Dictionary struct {
	keys   []string
	values []int
}

// New returns an empty dictionary with room for capacity entries.
func New(capacity int) *Dictionary {
	if capacity < 0 {
		capacity = 0
	}

	return &Dictionary{
		keys:   make([]string, 0, capacity),
		values: make([]int, 0, capacity),
	}
}

// Len returns the number of entries.
func (d *Dictionary) Len() int { return len(d.keys) }

// Cap returns the number of entries that fit before the next growth.
func (d *Dictionary) Cap() int { return cap(d.keys) }

// grow doubles the reserved capacity when the dictionary is full. Capacity
// is set exactly, so Cap reports 1, 2, 4, ... times the initial size.
func (d *Dictionary) grow() {
	if len(d.keys) < cap(d.keys) {
		return
	}
	n := 2 * cap(d.keys)
	if n == 0 {
		n = 1
	}
	keys := make([]string, len(d.keys), n)
	copy(keys, d.keys)
	values := make([]int, len(d.values), n)
	copy(values, d.values)
	d.keys, d.values = keys, values
}

// Push appends key with value. Keys longer than MaxKeyLen are rejected and
// Push reports false.
func (d *Dictionary) Push(key string, value int) bool {
	if len(key) > MaxKeyLen {
		return false
	}
	d.grow()
	d.keys = append(d.keys, key)
	d.values = append(d.values, value)

	return true
}

// Add inserts key with value before the entry at index, shifting later
// entries up by one. index must address an existing entry.
func (d *Dictionary) Add(index int, key string, value int) bool {
	if index < 0 || index >= len(d.keys) || len(key) > MaxKeyLen {
		return false
	}
	d.grow()
	d.keys = slices.Insert(d.keys, index, key)
	d.values = slices.Insert(d.values, index, value)

	return true
}

// Find returns the index of the first entry whose key equals key, or NotFound.
func (d *Dictionary) Find(key string) int {
	return slices.Index(d.keys, key)
}

// Value returns the value of the first entry whose key equals key, or 0.
func (d *Dictionary) Value(key string) int {
	if i := d.Find(key); i != NotFound {
		return d.values[i]
	}

	return 0
}

// RemoveIndex deletes the entry at index, shifting later entries down.
func (d *Dictionary) RemoveIndex(index int) bool {
	if index < 0 || index >= len(d.keys) {
		return false
	}
	d.keys = slices.Delete(d.keys, index, index+1)
	d.values = slices.Delete(d.values, index, index+1)

	return true
}

// Destroy drops all entries and the reserved storage.
func (d *Dictionary) Destroy() {
	d.keys, d.values = nil, nil
}

// String renders the entries in order, one "'key': value" line each.
func (d *Dictionary) String() string {
	var sb strings.Builder
	sb.WriteString("{\n")
	for i, k := range d.keys {
		fmt.Fprintf(&sb, "  '%s': %d\n", k, d.values[i])
	}
	sb.WriteString("}\n")

	return sb.String()
}

// Print writes String() to w.
func (d *Dictionary) Print(w io.Writer) error {
	_, err := io.WriteString(w, d.String())

	return err
}
