// Copyright 2022 Seisio. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package segy

import (
	"github.com/cockroachdb/errors"
)

// Array2D is the minimal dense container the extractor produces: a
// row-major value grid with an optional mask. When the mask is present,
// a true cell means no data was available at that position.
type Array2D struct {
	Rows   int
	Cols   int
	Values []float64
	Mask   []bool
}

// NewArray2D creates a dense rows × cols array with every cell set to
// fill.
func NewArray2D(rows, cols int, fill float64) *Array2D {
	a := &Array2D{
		Rows:   rows,
		Cols:   cols,
		Values: make([]float64, rows*cols),
	}
	if fill != 0 {
		for i := range a.Values {
			a.Values[i] = fill
		}
	}
	return a
}

// NewMaskedArray2D creates a rows × cols array with every cell masked.
func NewMaskedArray2D(rows, cols int) *Array2D {
	a := &Array2D{
		Rows:   rows,
		Cols:   cols,
		Values: make([]float64, rows*cols),
		Mask:   make([]bool, rows*cols),
	}
	for i := range a.Mask {
		a.Mask[i] = true
	}
	return a
}

// At returns the value at (row, col).
func (a *Array2D) At(row, col int) float64 {
	return a.Values[row*a.Cols+col]
}

// Masked reports whether the cell at (row, col) carries no data. Dense
// arrays are never masked.
func (a *Array2D) Masked(row, col int) bool {
	return a.Mask != nil && a.Mask[row*a.Cols+col]
}

// Set stores a value at (row, col), clearing its mask.
func (a *Array2D) Set(row, col int, v float64) {
	i := row*a.Cols + col
	a.Values[i] = v
	if a.Mask != nil {
		a.Mask[i] = false
	}
}

func makeArray(rows, cols int, null *float64) *Array2D {
	if null == nil {
		return NewMaskedArray2D(rows, cols)
	}
	return NewArray2D(rows, cols, *null)
}

// A Selector chooses elements from an ordered domain of numbers. A nil
// Selector selects the whole domain.
type Selector interface {
	normalize(domain []int) []int
}

// Numbers selects the listed values. Duplicates are ignored and the
// selection follows the domain's order, so values come out ascending for
// the ascending domains the reader exposes.
type Numbers []int

func (s Numbers) normalize(domain []int) []int {
	wanted := make(map[int]struct{}, len(s))
	for _, n := range s {
		wanted[n] = struct{}{}
	}
	out := make([]int, 0, len(wanted))
	for _, n := range domain {
		if _, ok := wanted[n]; ok {
			out = append(out, n)
		}
	}
	return out
}

// IndexSlice selects positionally from the domain: elements
// domain[Start], domain[Start+Step], ... up to but excluding
// domain[Stop]. A negative Start counts back from the end; a Stop of
// zero or below counts back from the end, so the zero value selects the
// whole domain and IndexSlice{Start: 100, Stop: -100} trims one hundred
// elements from both ends. A Step below one is treated as one.
type IndexSlice struct {
	Start int
	Stop  int
	Step  int
}

func (s IndexSlice) normalize(domain []int) []int {
	n := len(domain)

	start := s.Start
	if start < 0 {
		start += n
	}
	start = clamp(start, 0, n)

	stop := s.Stop
	if stop <= 0 {
		stop += n
	}
	stop = clamp(stop, 0, n)

	step := s.Step
	if step < 1 {
		step = 1
	}

	out := []int{}
	for i := start; i < stop; i += step {
		out = append(out, domain[i])
	}
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ensureSuperset normalizes a selector over a domain: the full domain
// for nil, a positional slice for IndexSlice, and the ordered
// deduplicated intersection for Numbers.
func ensureSuperset(domain []int, sel Selector) []int {
	if sel == nil {
		return append([]int(nil), domain...)
	}
	return sel.normalize(domain)
}

func rangeInts(start, stop int) []int {
	if stop < start {
		stop = start
	}
	out := make([]int, stop-start)
	for i := range out {
		out[i] = start + i
	}
	return out
}

// ExtractTrace extracts samples of a single trace as a one-dimensional
// array. sampleNumbers selects samples within [0, MaxNumTraceSamples):
// nil for all, Numbers for listed sample numbers (ascending, duplicates
// ignored), or an IndexSlice applied positionally. Selecting a sample
// number at or past the trace's own length is an underflow error, since
// a flat array has no mask to carry the hole.
func ExtractTrace(sgy *File, traceIndex int, sampleNumbers Selector) ([]float64, error) {
	numSamples, err := sgy.NumTraceSamples(traceIndex)
	if err != nil {
		return nil, err
	}

	selected := ensureSuperset(rangeInts(0, sgy.MaxNumTraceSamples()), sampleNumbers)
	if len(selected) == 0 {
		return nil, nil
	}

	start := selected[0]
	stop := minInt(selected[len(selected)-1]+1, numSamples)
	if start >= stop {
		return nil, underflowSample(traceIndex, numSamples, start)
	}
	samples, err := sgy.TraceSamples(traceIndex, start, stop)
	if err != nil {
		return nil, err
	}

	out := make([]float64, 0, len(selected))
	for _, n := range selected {
		if n >= stop {
			return nil, underflowSample(traceIndex, numSamples, n)
		}
		out = append(out, samples[n-start])
	}
	return out, nil
}

func underflowSample(traceIndex, numSamples, sampleNumber int) error {
	return errors.Wrapf(ErrUnderflow, "trace %d has %d samples, sample number %d requested",
		traceIndex, numSamples, sampleNumber)
}

// ExtractInline3D extracts one inline as a two-dimensional array. The
// first (slowest) index runs over the selected crossline numbers, the
// second over the selected sample numbers. When null is nil a masked
// array is returned and positions without a trace, or beyond a short
// trace, stay masked; otherwise a dense array filled with *null is
// returned and those positions keep the null value.
func ExtractInline3D(sgy *File, inlineNumber int, xlineNumbers, sampleNumbers Selector, null *float64) (*Array2D, error) {
	if sgy.lines == nil {
		return nil, opNotSupported("File", "no (inline, crossline) catalog available")
	}
	if !containsInt(sgy.InlineNumbers(), inlineNumber) {
		return nil, keyError("File inline numbers", inlineNumber)
	}

	xlines := ensureSuperset(sgy.XlineNumbers(), xlineNumbers)
	samples := ensureSuperset(rangeInts(0, sgy.MaxNumTraceSamples()), sampleNumbers)
	array := makeArray(len(xlines), len(samples), null)

	err := populateTraceRows(sgy, array, len(xlines), samples, func(row int) (int, bool) {
		if !sgy.HasTraceIndex(inlineNumber, xlines[row]) {
			return 0, false
		}
		idx, err := sgy.TraceIndex(inlineNumber, xlines[row])
		if err != nil {
			return 0, false
		}
		return idx, true
	})
	if err != nil {
		return nil, err
	}
	return array, nil
}

// ExtractXline3D extracts one crossline as a two-dimensional array, with
// rows running over the selected inline numbers. Semantics match
// ExtractInline3D.
func ExtractXline3D(sgy *File, xlineNumber int, inlineNumbers, sampleNumbers Selector, null *float64) (*Array2D, error) {
	if sgy.lines == nil {
		return nil, opNotSupported("File", "no (inline, crossline) catalog available")
	}
	if !containsInt(sgy.XlineNumbers(), xlineNumber) {
		return nil, keyError("File crossline numbers", xlineNumber)
	}

	inlines := ensureSuperset(sgy.InlineNumbers(), inlineNumbers)
	samples := ensureSuperset(rangeInts(0, sgy.MaxNumTraceSamples()), sampleNumbers)
	array := makeArray(len(inlines), len(samples), null)

	err := populateTraceRows(sgy, array, len(inlines), samples, func(row int) (int, bool) {
		if !sgy.HasTraceIndex(inlines[row], xlineNumber) {
			return 0, false
		}
		idx, err := sgy.TraceIndex(inlines[row], xlineNumber)
		if err != nil {
			return 0, false
		}
		return idx, true
	})
	if err != nil {
		return nil, err
	}
	return array, nil
}

// populateTraceRows fills one array row per trace. When the selected
// sample numbers form a contiguous or strided range the minimal byte
// range per trace is read once and strided through; otherwise the span
// from the first to the last wanted sample is read and indexed
// per-sample.
func populateTraceRows(sgy *File, array *Array2D, rows int, samples []int, traceAt func(row int) (int, bool)) error {
	if len(samples) == 0 {
		return nil
	}

	stride, regular := measureStride(samples)
	if regular && stride < 1 {
		stride = 1
	}

	for row := 0; row < rows; row++ {
		traceIndex, ok := traceAt(row)
		if !ok {
			continue
		}
		numSamples, err := sgy.NumTraceSamples(traceIndex)
		if err != nil {
			return err
		}
		start := samples[0]
		stop := minInt(samples[len(samples)-1]+1, numSamples)
		if start >= stop {
			continue
		}
		traceSamples, err := sgy.TraceSamples(traceIndex, start, stop)
		if err != nil {
			return err
		}

		if regular {
			for col, n := 0, start; n < stop; col, n = col+1, n+stride {
				array.Set(row, col, traceSamples[n-start])
			}
			continue
		}
		for col, n := range samples {
			if n < stop {
				array.Set(row, col, traceSamples[n-start])
			}
		}
	}
	return nil
}

// ExtractTraceHeaderField3D fills an inlines × xlines grid with one
// trace header field value per (inline, crossline) position present in
// the line catalog. When null is nil the grid is masked; otherwise it is
// dense and filled with *null at absent positions.
func ExtractTraceHeaderField3D(sgy *File, field TraceHeaderField, null *float64) (*Array2D, error) {
	if sgy.lines == nil {
		return nil, opNotSupported("File", "no (inline, crossline) catalog available")
	}
	if field.value == nil {
		f, err := TraceHeaderFieldByName(field.Name)
		if err != nil {
			return nil, err
		}
		field = f
	}

	array := makeArray(sgy.NumInlines(), sgy.NumXlines(), null)
	rowOf := indexOf(sgy.InlineNumbers())
	colOf := indexOf(sgy.XlineNumbers())

	var err error
	sgy.lines.EachKey(func(inline, xline int) bool {
		var traceIndex int
		traceIndex, err = sgy.TraceIndex(inline, xline)
		if err != nil {
			return false
		}
		var th *TraceHeader
		th, err = sgy.TraceHeaderAt(traceIndex)
		if err != nil {
			return false
		}
		array.Set(rowOf[inline], colOf[xline], float64(field.Value(th)))
		return true
	})
	if err != nil {
		return nil, err
	}
	return array, nil
}

func indexOf(numbers []int) map[int]int {
	m := make(map[int]int, len(numbers))
	for i, n := range numbers {
		m[n] = i
	}
	return m
}

func containsInt(sorted []int, v int) bool {
	for _, n := range sorted {
		if n == v {
			return true
		}
	}
	return false
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
