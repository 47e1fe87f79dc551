// Copyright 2022 Seisio. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package segy

// Trace header offsets the scanner reads directly, so indexing does not
// pay for a full header parse per trace.
const (
	nsFieldPos        = 114
	cdpFieldPos       = 20
	inlineFieldPos    = 188
	crosslineFieldPos = 192
)

// scanProportion is the share of progress assigned to the file scan; the
// remainder is split equally among the four catalog finalizations.
const scanProportion = 0.75

// catalogTraces performs a single forward pass over the trace records,
// populating four catalogs: trace index → file offset, trace index →
// sample count, CDP number → trace index, and (inline, crossline) →
// trace index. The last two come out nil when their keys are not unique.
//
// A record whose 240 header bytes are not fully present is a clean end
// of file. A record whose advertised samples extend past the end of the
// file is not indexed either; indexing stops at the last complete trace.
func (sgy *File) catalogTraces(progress ProgressFunc) error {
	if progress == nil {
		progress = func(float64) {}
	}

	offsetBuilder := NewCatalogBuilder()
	lengthBuilder := NewCatalogBuilder()
	cdpBuilder := NewCatalogBuilder()
	lineBuilder := NewCatalogBuilder2D()

	bps := int64(sgy.BytesPerSample)
	pos := int64(TraceDataStart)
	for traceNumber := 0; ; traceNumber++ {
		progress(scanProportion * float64(pos) / float64(sgy.size))

		if pos+TraceHeaderSize > sgy.size {
			break
		}
		ns, err := sgy.ReadUint16(pos + nsFieldPos)
		if err != nil {
			return err
		}
		end := pos + TraceHeaderSize + int64(ns)*bps
		if end > sgy.size {
			break
		}

		cdp, err := sgy.ReadInt32(pos + cdpFieldPos)
		if err != nil {
			return err
		}
		inline, err := sgy.ReadInt32(pos + inlineFieldPos)
		if err != nil {
			return err
		}
		xline, err := sgy.ReadInt32(pos + crosslineFieldPos)
		if err != nil {
			return err
		}

		offsetBuilder.Add(traceNumber, int(pos))
		lengthBuilder.Add(traceNumber, int(ns))
		cdpBuilder.Add(int(cdp), traceNumber)
		lineBuilder.Add(int(inline), int(xline), traceNumber)

		pos = end
	}

	progress(scanProportion)
	sgy.offsets = offsetBuilder.Create()
	progress(scanProportion + (1-scanProportion)/4)
	sgy.lengths = lengthBuilder.Create()
	progress(scanProportion + (1-scanProportion)/2)
	sgy.cdps = cdpBuilder.Create()
	progress(scanProportion + (1-scanProportion)*3/4)
	sgy.lines = lineBuilder.Create()
	progress(1)

	// Trace numbers are unique by construction, so only the CDP and
	// line catalogs may come out nil.
	if sgy.offsets == nil || sgy.lengths == nil {
		return inconsistency("trace number catalogs could not be built")
	}
	return nil
}
