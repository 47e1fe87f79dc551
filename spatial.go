// Copyright 2022 Seisio. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package segy

import (
	"github.com/dhconnelly/rtreego"
)

// Bounds represents a rectangle in the survey's world coordinate system,
// in the units the trace headers were recorded in.
type Bounds struct {
	MinX float64
	MaxX float64
	MinY float64
	MaxY float64
}

// Contains returns true if the point (x, y) is within the bounds.
func (b Bounds) Contains(x, y float64) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

// Intersects returns true if the given bounds intersects with this
// bounds.
func (b Bounds) Intersects(other Bounds) bool {
	return !(other.MaxX < b.MinX ||
		other.MinX > b.MaxX ||
		other.MaxY < b.MinY ||
		other.MinY > b.MaxY)
}

// TracePoint is one trace's position in world coordinates.
type TracePoint struct {
	TraceIndex int
	X          float64
	Y          float64
}

// pointExtent is the degenerate rectangle size used to index point
// locations; rtreego requires positive side lengths.
const pointExtent = 1e-7

// Bounds implements rtreego.Spatial.
func (p *TracePoint) Bounds() rtreego.Rect {
	rect, _ := rtreego.NewRect(rtreego.Point{p.X, p.Y}, []float64{pointExtent, pointExtent})
	return rect
}

// SpatialIndex is an R-tree over trace positions, supporting rectangle
// and nearest-neighbor queries.
type SpatialIndex struct {
	tree *rtreego.Rtree
}

// BuildSpatialIndex indexes every trace's ensemble (CDP) position. The
// coordinate scalar from each trace header is applied. Traces whose CDP
// coordinates are unset fall back to the source position; when no trace
// carries any position the index cannot be built.
func (sgy *File) BuildSpatialIndex() (*SpatialIndex, error) {
	if sgy.offsets == nil {
		return nil, opNotSupported("File", "traces are not indexed")
	}

	tree := rtreego.NewTree(2, 25, 50)
	indexed := 0
	var err error
	sgy.offsets.EachKey(func(traceIndex int) bool {
		var th *TraceHeader
		th, err = sgy.TraceHeaderAt(traceIndex)
		if err != nil {
			return false
		}
		x, y := th.CDPX, th.CDPY
		if x == 0 && y == 0 {
			x, y = th.SourceX, th.SourceY
		}
		if x == 0 && y == 0 {
			return true
		}
		scalar := th.SourceGroupScalar
		tree.Insert(&TracePoint{
			TraceIndex: traceIndex,
			X:          applyCoordinateScalar(x, scalar),
			Y:          applyCoordinateScalar(y, scalar),
		})
		indexed++
		return true
	})
	if err != nil {
		return nil, err
	}
	if indexed == 0 {
		return nil, opNotSupported("File", "no trace carries world coordinates")
	}
	return &SpatialIndex{tree: tree}, nil
}

// applyCoordinateScalar applies the SEG-Y coordinate scalar: positive
// values multiply, negative values divide.
func applyCoordinateScalar(v int32, scalar int16) float64 {
	switch {
	case scalar > 0:
		return float64(v) * float64(scalar)
	case scalar < 0:
		return float64(v) / float64(-scalar)
	}
	return float64(v)
}

// Len returns the number of indexed trace positions.
func (s *SpatialIndex) Len() int {
	return s.tree.Size()
}

// SearchWithin returns the traces whose position falls inside bounds.
func (s *SpatialIndex) SearchWithin(b Bounds) []TracePoint {
	rect, err := rtreego.NewRect(rtreego.Point{b.MinX, b.MinY},
		[]float64{b.MaxX - b.MinX, b.MaxY - b.MinY})
	if err != nil {
		return nil
	}
	var out []TracePoint
	for _, spatial := range s.tree.SearchIntersect(rect) {
		p := spatial.(*TracePoint)
		if b.Contains(p.X, p.Y) {
			out = append(out, *p)
		}
	}
	return out
}

// NearestTrace returns the indexed trace closest to (x, y), or nil when
// the index is empty.
func (s *SpatialIndex) NearestTrace(x, y float64) *TracePoint {
	nearest := s.tree.NearestNeighbor(rtreego.Point{x, y})
	if nearest == nil {
		return nil
	}
	p := nearest.(*TracePoint)
	out := *p
	return &out
}
