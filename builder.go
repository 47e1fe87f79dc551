// Copyright 2022 Seisio. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package segy

import (
	"sort"
)

// CatalogBuilder accumulates (key, value) items and, on Create, analyzes
// them to produce the most compact Catalog variant that faithfully
// represents the mapping. In the worst case that is an immutable
// dictionary; in the best case the space savings are vast.
type CatalogBuilder struct {
	entries []Entry
}

// NewCatalogBuilder creates an empty CatalogBuilder.
func NewCatalogBuilder() *CatalogBuilder {
	return &CatalogBuilder{}
}

// Add appends an item. Keys must be unique for Create to succeed,
// although duplicates are accepted here without complaint.
func (b *CatalogBuilder) Add(key, value int) {
	b.entries = append(b.entries, Entry{Key: key, Value: value})
}

// Create analyzes the accumulated items and returns an optimized
// catalog, or nil when duplicate keys make a unique mapping impossible.
func (b *CatalogBuilder) Create() Catalog {
	if len(b.entries) < 2 {
		return NewDictionaryCatalog(b.entries)
	}

	sort.SliceStable(b.entries, func(i, j int) bool {
		return b.entries[i].Key < b.entries[j].Key
	})

	keys := make([]int, len(b.entries))
	values := make([]int, len(b.entries))
	for i, e := range b.entries {
		if i > 0 && e.Key == keys[i-1] {
			return nil
		}
		keys[i] = e.Key
		values[i] = e.Value
	}

	keyStride, keyRegular := measureStride(keys)
	valueStride, valueRegular := measureStride(values)

	switch {
	case !keyRegular && valueRegular && valueStride == 0:
		return NewConstantCatalog(keys, values[0])
	case !keyRegular:
		return NewDictionaryCatalog(b.entries)
	case valueRegular && valueStride == 0:
		if c, err := NewRegularConstantCatalog(keys[0], keys[len(keys)-1], keyStride, values[0]); err == nil {
			return c
		}
	case !valueRegular:
		if c, err := NewRegularCatalog(keys[0], keys[len(keys)-1], keyStride, values); err == nil {
			return c
		}
	default:
		if c, err := NewLinearRegularCatalog(keys[0], keys[len(keys)-1], keyStride,
			values[0], values[len(values)-1], valueStride); err == nil {
			return c
		}
	}
	return NewDictionaryCatalog(b.entries)
}

// CatalogBuilder2D accumulates ((i, j), value) items and, on Create,
// returns a RowMajorCatalog when row-major numbering predicts every
// value, or an ordered dictionary otherwise.
type CatalogBuilder2D struct {
	entries []Entry2D
}

// NewCatalogBuilder2D creates an empty CatalogBuilder2D.
func NewCatalogBuilder2D() *CatalogBuilder2D {
	return &CatalogBuilder2D{}
}

// Add appends an item. Keys must be unique for Create to succeed,
// although duplicates are accepted here without complaint.
func (b *CatalogBuilder2D) Add(i, j, value int) {
	b.entries = append(b.entries, Entry2D{I: i, J: j, Value: value})
}

// Create analyzes the accumulated items and returns an optimized 2D
// catalog, or nil when duplicate keys make a unique mapping impossible.
func (b *CatalogBuilder2D) Create() Catalog2D {
	if len(b.entries) < 2 {
		return NewDictionaryCatalog2D(b.entries)
	}

	sort.SliceStable(b.entries, func(x, y int) bool {
		a, c := b.entries[x], b.entries[y]
		if a.I != c.I {
			return a.I < c.I
		}
		return a.J < c.J
	})

	iMin, iMax := b.entries[0].I, b.entries[0].I
	jMin, jMax := b.entries[0].J, b.entries[0].J
	for k, e := range b.entries {
		if k > 0 && e.I == b.entries[k-1].I && e.J == b.entries[k-1].J {
			return nil
		}
		if e.I < iMin {
			iMin = e.I
		}
		if e.I > iMax {
			iMax = e.I
		}
		if e.J < jMin {
			jMin = e.J
		}
		if e.J > jMax {
			jMax = e.J
		}
	}

	if diff, ok := b.isRowMajor(iMin, jMin, jMax); ok {
		if c, err := NewRowMajorCatalog(iMin, iMax, jMin, jMax, diff); err == nil {
			return c
		}
	}
	return NewDictionaryCatalog2D(b.entries)
}

// isRowMajor tests whether row-major ordering predicts values from keys.
// In row-major order the j value changes fastest, so the proposed value
// for (i, j) is (i-iMin)*(jMax-jMin+1) + (j-jMin). If the actual values
// differ from the proposed ones by a single constant, that constant is
// returned with ok true.
func (b *CatalogBuilder2D) isRowMajor(iMin, jMin, jMax int) (diff int, ok bool) {
	for k, e := range b.entries {
		proposed := (e.I-iMin)*(jMax-jMin+1) + (e.J - jMin)
		current := e.Value - proposed
		if k == 0 {
			diff = current
		} else if current != diff {
			return 0, false
		}
	}
	return diff, true
}

// measureStride reports the common difference of a sequence: 0 when all
// elements are equal (including a single element), d when successive
// differences are all equal to a non-zero d, and regular false when the
// sequence is irregular.
func measureStride(seq []int) (stride int, regular bool) {
	if len(seq) < 2 {
		return 0, true
	}
	d := seq[1] - seq[0]
	for i := 2; i < len(seq); i++ {
		if seq[i]-seq[i-1] != d {
			return 0, false
		}
	}
	return d, true
}
