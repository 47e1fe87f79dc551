// Copyright 2022 Seisio. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package segy

import (
	"fmt"
	"sort"
)

// Catalog is an immutable mapping from integer keys to integer values.
// Implementations trade generality for footprint: when keys or values
// follow arithmetic progressions the whole mapping collapses to a few
// integers. Catalogs are built with a CatalogBuilder, which picks the
// most compact faithful variant. All implementations are safe for
// concurrent reads.
type Catalog interface {
	// Get returns the value for key, or ErrKeyNotFound.
	Get(key int) (int, error)

	// Contains reports whether key is present.
	Contains(key int) bool

	// Len returns the number of keys.
	Len() int

	// EachKey calls fn for every key in deterministic order until fn
	// returns false.
	EachKey(fn func(key int) bool)
}

// Catalog2D is an immutable mapping from (i, j) keys to integer values.
type Catalog2D interface {
	// Get returns the value for (i, j), or ErrKeyNotFound.
	Get(i, j int) (int, error)

	// Contains reports whether (i, j) is present.
	Contains(i, j int) bool

	// Len returns the number of keys.
	Len() int

	// EachKey calls fn for every key in deterministic order until fn
	// returns false.
	EachKey(fn func(i, j int) bool)
}

// Entry is a single (key, value) item fed to a CatalogBuilder.
type Entry struct {
	Key   int
	Value int
}

// Entry2D is a single ((i, j), value) item fed to a CatalogBuilder2D.
type Entry2D struct {
	I     int
	J     int
	Value int
}

// CatalogKeys returns all keys of a catalog in its deterministic order.
func CatalogKeys(c Catalog) []int {
	keys := make([]int, 0, c.Len())
	c.EachKey(func(k int) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}

// CatalogKeys2D returns all keys of a 2D catalog in its deterministic
// order.
func CatalogKeys2D(c Catalog2D) [][2]int {
	keys := make([][2]int, 0, c.Len())
	c.EachKey(func(i, j int) bool {
		keys = append(keys, [2]int{i, j})
		return true
	})
	return keys
}

// DictionaryCatalog is an immutable, ordered dictionary mapping. Keys
// iterate in insertion order.
type DictionaryCatalog struct {
	keys   []int
	values map[int]int
}

// NewDictionaryCatalog creates a DictionaryCatalog from entries. A
// repeated key updates the value but keeps the original position.
func NewDictionaryCatalog(entries []Entry) *DictionaryCatalog {
	c := &DictionaryCatalog{
		keys:   make([]int, 0, len(entries)),
		values: make(map[int]int, len(entries)),
	}
	for _, e := range entries {
		if _, seen := c.values[e.Key]; !seen {
			c.keys = append(c.keys, e.Key)
		}
		c.values[e.Key] = e.Value
	}
	return c
}

func (c *DictionaryCatalog) Get(key int) (int, error) {
	v, ok := c.values[key]
	if !ok {
		return 0, keyError("DictionaryCatalog", key)
	}
	return v, nil
}

func (c *DictionaryCatalog) Contains(key int) bool {
	_, ok := c.values[key]
	return ok
}

func (c *DictionaryCatalog) Len() int {
	return len(c.keys)
}

func (c *DictionaryCatalog) EachKey(fn func(key int) bool) {
	for _, k := range c.keys {
		if !fn(k) {
			return
		}
	}
}

func (c *DictionaryCatalog) String() string {
	return fmt.Sprintf("DictionaryCatalog(len=%d)", len(c.keys))
}

// RegularConstantCatalog maps keys spaced regularly along the number
// line to a single constant value. The whole mapping is four integers.
type RegularConstantCatalog struct {
	keyMin    int
	keyMax    int
	keyStride int
	value     int
}

// NewRegularConstantCatalog creates a catalog for the keys
// {keyMin, keyMin+keyStride, ..., keyMax}, all mapping to value.
func NewRegularConstantCatalog(keyMin, keyMax, keyStride, value int) (*RegularConstantCatalog, error) {
	if keyStride <= 0 {
		return nil, inconsistency("RegularConstantCatalog stride %d is not positive", keyStride)
	}
	if (keyMax-keyMin)%keyStride != 0 {
		return nil, inconsistency("RegularConstantCatalog key range %d is not a multiple of stride %d",
			keyMax-keyMin, keyStride)
	}
	return &RegularConstantCatalog{keyMin: keyMin, keyMax: keyMax, keyStride: keyStride, value: value}, nil
}

func (c *RegularConstantCatalog) Get(key int) (int, error) {
	if !c.Contains(key) {
		return 0, keyError(c.String(), key)
	}
	return c.value, nil
}

func (c *RegularConstantCatalog) Contains(key int) bool {
	return key >= c.keyMin && key <= c.keyMax && (key-c.keyMin)%c.keyStride == 0
}

func (c *RegularConstantCatalog) Len() int {
	return 1 + (c.keyMax-c.keyMin)/c.keyStride
}

func (c *RegularConstantCatalog) EachKey(fn func(key int) bool) {
	for k := c.keyMin; k <= c.keyMax; k += c.keyStride {
		if !fn(k) {
			return
		}
	}
}

// KeyRange returns the minimum key, maximum key and stride.
func (c *RegularConstantCatalog) KeyRange() (keyMin, keyMax, keyStride int) {
	return c.keyMin, c.keyMax, c.keyStride
}

func (c *RegularConstantCatalog) String() string {
	return fmt.Sprintf("RegularConstantCatalog(keyMin=%d, keyMax=%d, keyStride=%d, value=%d)",
		c.keyMin, c.keyMax, c.keyStride, c.value)
}

// ConstantCatalog maps an arbitrary set of keys to a single constant
// value. Keys are held as a sorted set.
type ConstantCatalog struct {
	keys  []int
	value int
}

// NewConstantCatalog creates a catalog mapping each of keys to value.
// Duplicate keys are collapsed.
func NewConstantCatalog(keys []int, value int) *ConstantCatalog {
	sorted := append([]int(nil), keys...)
	sort.Ints(sorted)
	out := sorted[:0]
	for i, k := range sorted {
		if i == 0 || k != sorted[i-1] {
			out = append(out, k)
		}
	}
	return &ConstantCatalog{keys: out, value: value}
}

func (c *ConstantCatalog) Get(key int) (int, error) {
	if !c.Contains(key) {
		return 0, keyError("ConstantCatalog", key)
	}
	return c.value, nil
}

func (c *ConstantCatalog) Contains(key int) bool {
	i := sort.SearchInts(c.keys, key)
	return i < len(c.keys) && c.keys[i] == key
}

func (c *ConstantCatalog) Len() int {
	return len(c.keys)
}

func (c *ConstantCatalog) EachKey(fn func(key int) bool) {
	for _, k := range c.keys {
		if !fn(k) {
			return
		}
	}
}

func (c *ConstantCatalog) String() string {
	return fmt.Sprintf("ConstantCatalog(len=%d, value=%d)", len(c.keys), c.value)
}

// RegularCatalog maps keys spaced regularly along the number line to an
// arbitrary sequence of values indexed positionally.
type RegularCatalog struct {
	keyMin    int
	keyMax    int
	keyStride int
	values    []int
}

// NewRegularCatalog creates a catalog for the keys
// {keyMin, keyMin+keyStride, ..., keyMax} with positionally
// corresponding values.
func NewRegularCatalog(keyMin, keyMax, keyStride int, values []int) (*RegularCatalog, error) {
	if keyStride <= 0 {
		return nil, inconsistency("RegularCatalog stride %d is not positive", keyStride)
	}
	keyRange := keyMax - keyMin
	if keyRange%keyStride != 0 {
		return nil, inconsistency("RegularCatalog key range %d is not a multiple of stride %d",
			keyRange, keyStride)
	}
	numKeys := 1 + keyRange/keyStride
	if numKeys != len(values) {
		return nil, inconsistency("RegularCatalog has %d keys but %d values", numKeys, len(values))
	}
	return &RegularCatalog{
		keyMin:    keyMin,
		keyMax:    keyMax,
		keyStride: keyStride,
		values:    append([]int(nil), values...),
	}, nil
}

func (c *RegularCatalog) Get(key int) (int, error) {
	if !c.Contains(key) {
		return 0, keyError(c.String(), key)
	}
	return c.values[(key-c.keyMin)/c.keyStride], nil
}

func (c *RegularCatalog) Contains(key int) bool {
	return key >= c.keyMin && key <= c.keyMax && (key-c.keyMin)%c.keyStride == 0
}

func (c *RegularCatalog) Len() int {
	return len(c.values)
}

func (c *RegularCatalog) EachKey(fn func(key int) bool) {
	for k := c.keyMin; k <= c.keyMax; k += c.keyStride {
		if !fn(k) {
			return
		}
	}
}

func (c *RegularCatalog) String() string {
	return fmt.Sprintf("RegularCatalog(keyMin=%d, keyMax=%d, keyStride=%d)",
		c.keyMin, c.keyMax, c.keyStride)
}

// LinearRegularCatalog maps regularly spaced keys to regularly spaced
// values, predicting the value as
//
//	v = (valueStop - valueStart) / (keyMax - keyMin) * (key - keyMin) + valueStart
//
// The slope is held as an exact integer ratio; lookups for keys on the
// stride are guaranteed integral.
type LinearRegularCatalog struct {
	keyMin      int
	keyMax      int
	keyStride   int
	valueStart  int
	valueStop   int
	valueStride int
	num         int64
	den         int64
}

// NewLinearRegularCatalog creates a catalog for the keys
// {keyMin, keyMin+keyStride, ..., keyMax} with values running from
// valueStart to valueStop in steps of valueStride.
func NewLinearRegularCatalog(keyMin, keyMax, keyStride, valueStart, valueStop, valueStride int) (*LinearRegularCatalog, error) {
	if keyStride <= 0 {
		return nil, inconsistency("LinearRegularCatalog key stride %d is not positive", keyStride)
	}
	keyRange := keyMax - keyMin
	if keyRange%keyStride != 0 {
		return nil, inconsistency("LinearRegularCatalog key range %d is not a multiple of key stride %d",
			keyRange, keyStride)
	}
	if valueStride == 0 {
		return nil, inconsistency("LinearRegularCatalog value stride is zero")
	}
	valueRange := valueStop - valueStart
	if valueRange%valueStride != 0 {
		return nil, inconsistency("LinearRegularCatalog value range %d is not a multiple of value stride %d",
			valueRange, valueStride)
	}
	numKeys := 1 + keyRange/keyStride
	numValues := 1 + valueRange/valueStride
	if numKeys != numValues {
		return nil, inconsistency("LinearRegularCatalog has %d keys but %d values", numKeys, numValues)
	}
	return &LinearRegularCatalog{
		keyMin:      keyMin,
		keyMax:      keyMax,
		keyStride:   keyStride,
		valueStart:  valueStart,
		valueStop:   valueStop,
		valueStride: valueStride,
		num:         int64(valueRange),
		den:         int64(keyRange),
	}, nil
}

func (c *LinearRegularCatalog) Get(key int) (int, error) {
	if !c.Contains(key) {
		return 0, keyError(c.String(), key)
	}
	product := c.num * int64(key-c.keyMin)
	if product%c.den != 0 {
		return 0, inconsistency("%s produced a non-integral value for key %d", c, key)
	}
	return c.valueStart + int(product/c.den), nil
}

func (c *LinearRegularCatalog) Contains(key int) bool {
	return key >= c.keyMin && key <= c.keyMax && (key-c.keyMin)%c.keyStride == 0
}

func (c *LinearRegularCatalog) Len() int {
	return 1 + (c.keyMax-c.keyMin)/c.keyStride
}

func (c *LinearRegularCatalog) EachKey(fn func(key int) bool) {
	for k := c.keyMin; k <= c.keyMax; k += c.keyStride {
		if !fn(k) {
			return
		}
	}
}

func (c *LinearRegularCatalog) String() string {
	return fmt.Sprintf("LinearRegularCatalog(keyMin=%d, keyMax=%d, keyStride=%d, valueStart=%d, valueStop=%d, valueStride=%d)",
		c.keyMin, c.keyMax, c.keyStride, c.valueStart, c.valueStop, c.valueStride)
}

// DictionaryCatalog2D is an immutable, ordered dictionary mapping for
// (i, j) keys. Keys iterate in insertion order.
type DictionaryCatalog2D struct {
	keys   [][2]int
	values map[[2]int]int
}

// NewDictionaryCatalog2D creates a DictionaryCatalog2D from entries. A
// repeated key updates the value but keeps the original position.
func NewDictionaryCatalog2D(entries []Entry2D) *DictionaryCatalog2D {
	c := &DictionaryCatalog2D{
		keys:   make([][2]int, 0, len(entries)),
		values: make(map[[2]int]int, len(entries)),
	}
	for _, e := range entries {
		k := [2]int{e.I, e.J}
		if _, seen := c.values[k]; !seen {
			c.keys = append(c.keys, k)
		}
		c.values[k] = e.Value
	}
	return c
}

func (c *DictionaryCatalog2D) Get(i, j int) (int, error) {
	v, ok := c.values[[2]int{i, j}]
	if !ok {
		return 0, keyError("DictionaryCatalog2D", [2]int{i, j})
	}
	return v, nil
}

func (c *DictionaryCatalog2D) Contains(i, j int) bool {
	_, ok := c.values[[2]int{i, j}]
	return ok
}

func (c *DictionaryCatalog2D) Len() int {
	return len(c.keys)
}

func (c *DictionaryCatalog2D) EachKey(fn func(i, j int) bool) {
	for _, k := range c.keys {
		if !fn(k[0], k[1]) {
			return
		}
	}
}

func (c *DictionaryCatalog2D) String() string {
	return fmt.Sprintf("DictionaryCatalog2D(len=%d)", len(c.keys))
}

// RowMajorCatalog predicts values from (i, j) keys assuming the items of
// an (iMin..iMax, jMin..jMax) matrix were numbered in row-major order,
// offset by a constant:
//
//	v = (i - iMin) * (jMax - jMin + 1) + (j - jMin) + c
//
// Every (i, j) inside the bounds is a member.
type RowMajorCatalog struct {
	iMin   int
	iMax   int
	jMin   int
	jMax   int
	offset int
}

// NewRowMajorCatalog creates a RowMajorCatalog over the inclusive bounds
// with constant offset c.
func NewRowMajorCatalog(iMin, iMax, jMin, jMax, c int) (*RowMajorCatalog, error) {
	if iMax < iMin || jMax < jMin {
		return nil, inconsistency("RowMajorCatalog bounds (%d..%d, %d..%d) are empty",
			iMin, iMax, jMin, jMax)
	}
	return &RowMajorCatalog{iMin: iMin, iMax: iMax, jMin: jMin, jMax: jMax, offset: c}, nil
}

func (c *RowMajorCatalog) Get(i, j int) (int, error) {
	if !c.Contains(i, j) {
		return 0, keyError(c.String(), [2]int{i, j})
	}
	return (i-c.iMin)*(c.jMax-c.jMin+1) + (j - c.jMin) + c.offset, nil
}

func (c *RowMajorCatalog) Contains(i, j int) bool {
	return i >= c.iMin && i <= c.iMax && j >= c.jMin && j <= c.jMax
}

func (c *RowMajorCatalog) Len() int {
	return (c.iMax - c.iMin + 1) * (c.jMax - c.jMin + 1)
}

func (c *RowMajorCatalog) EachKey(fn func(i, j int) bool) {
	for i := c.iMin; i <= c.iMax; i++ {
		for j := c.jMin; j <= c.jMax; j++ {
			if !fn(i, j) {
				return
			}
		}
	}
}

// Bounds returns the inclusive i and j bounds.
func (c *RowMajorCatalog) Bounds() (iMin, iMax, jMin, jMax int) {
	return c.iMin, c.iMax, c.jMin, c.jMax
}

func (c *RowMajorCatalog) String() string {
	return fmt.Sprintf("RowMajorCatalog(iMin=%d, iMax=%d, jMin=%d, jMax=%d, c=%d)",
		c.iMin, c.iMax, c.jMin, c.jMax, c.offset)
}
