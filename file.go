// Copyright 2022 Seisio. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package segy

import (
	"encoding/binary"
	"os"
	"sort"

	mmap "github.com/edsrzf/mmap-go"
	"github.com/seisio/segy/log"
)

// ProgressFunc receives monotonically increasing values in [0, 1] while
// the file is being indexed. The callback runs synchronously on the
// caller's goroutine and must be fast.
type ProgressFunc func(p float64)

// A File represents an open SEG-Y file.
type File struct {
	TextualHeader []string     `json:"textual_header,omitempty"`
	BinaryHeader  BinaryHeader `json:"binary_header"`

	// Revision is the canonical format revision from the binary header.
	Revision Revision `json:"revision"`

	// BytesPerSample is derived from the data sample format and revision.
	BytesPerSample int `json:"bytes_per_sample"`

	offsets Catalog
	lengths Catalog
	cdps    Catalog
	lines   Catalog2D

	inlineNumbers []int
	xlineNumbers  []int
	maxSamples    int

	data      mmap.MMap
	size      int64
	f         *os.File
	opts      *Options
	logger    *log.Helper
	byteOrder binary.ByteOrder
}

// Options for parsing.
type Options struct {

	// Treat the file as little-endian. SEG-Y data is big-endian by the
	// standard; some vendor files are not.
	LittleEndian bool

	// Parse only the textual and binary headers and do not index traces,
	// by default (false).
	HeadersOnly bool

	// Progress callback invoked while indexing.
	Progress ProgressFunc

	// Path of a sidecar index cache. When set, Parse loads the catalogs
	// from the cache if it validates against the file and falls back to
	// a full scan otherwise.
	IndexCachePath string

	// Compression codec used by WriteIndexCache, by default zstd.
	CacheCompression CompressionType

	// A custom logger.
	Logger log.Logger
}

// New instantiates a file instance with options given a file name. The
// file handle is owned by the returned File and released by Close.
func New(name string, opts *Options) (*File, error) {

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}

	// Memory map the file instead of using read/write.
	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, err
	}

	file := File{}
	file.init(opts)
	file.data = data
	file.size = int64(len(file.data))
	file.f = f
	return &file, nil
}

// NewBytes instantiates a file instance with options given a memory
// buffer.
func NewBytes(data []byte, opts *Options) (*File, error) {

	file := File{}
	file.init(opts)
	file.data = data
	file.size = int64(len(file.data))
	return &file, nil
}

func (sgy *File) init(opts *Options) {
	if opts != nil {
		sgy.opts = opts
	} else {
		sgy.opts = &Options{}
	}

	if sgy.opts.Logger == nil {
		logger := log.NewStdLogger(os.Stdout)
		sgy.logger = log.NewHelper(log.NewFilter(logger,
			log.FilterLevel(log.LevelError)))
	} else {
		sgy.logger = log.NewHelper(sgy.opts.Logger)
	}

	if sgy.opts.LittleEndian {
		sgy.byteOrder = binary.LittleEndian
	} else {
		sgy.byteOrder = binary.BigEndian
	}
}

// Close closes the File.
func (sgy *File) Close() error {
	if sgy.f != nil {
		_ = sgy.data.Unmap()
	}
	sgy.data = nil

	if sgy.f != nil {
		f := sgy.f
		sgy.f = nil
		return f.Close()
	}
	return nil
}

// Parse reads the textual and binary headers and builds the trace
// catalogs that make random access by trace index, CDP number and
// (inline, crossline) possible.
func (sgy *File) Parse() error {

	if sgy.size < TraceDataStart {
		return ErrInvalidFileSize
	}

	lines, err := decodeTextualHeader(sgy.data[:TextualHeaderSize])
	if err != nil {
		sgy.logger.Warnf("textual header decoding failed: %v", err)
	} else {
		sgy.TextualHeader = lines
	}

	err = sgy.ParseBinaryHeader()
	if err != nil {
		return err
	}

	// In headers-only mode, do not index traces.
	if sgy.opts.HeadersOnly {
		return nil
	}

	if sgy.opts.IndexCachePath != "" {
		err = sgy.loadIndexCache(sgy.opts.IndexCachePath)
		if err == nil {
			return sgy.finalizeIndex()
		}
		sgy.logger.Warnf("index cache %s rejected, rescanning: %v",
			sgy.opts.IndexCachePath, err)
	}

	err = sgy.catalogTraces(sgy.opts.Progress)
	if err != nil {
		return err
	}
	return sgy.finalizeIndex()
}

// finalizeIndex derives the facts the extractor asks for repeatedly:
// the distinct inline and crossline numbers in ascending order and the
// maximum trace length.
func (sgy *File) finalizeIndex() error {
	sgy.maxSamples = 0
	sgy.offsets.EachKey(func(idx int) bool {
		n, err := sgy.lengths.Get(idx)
		if err == nil && n > sgy.maxSamples {
			sgy.maxSamples = n
		}
		return true
	})

	sgy.inlineNumbers = nil
	sgy.xlineNumbers = nil
	if sgy.lines == nil {
		return nil
	}

	inlines := make(map[int]struct{})
	xlines := make(map[int]struct{})
	sgy.lines.EachKey(func(i, j int) bool {
		inlines[i] = struct{}{}
		xlines[j] = struct{}{}
		return true
	})
	sgy.inlineNumbers = sortedKeys(inlines)
	sgy.xlineNumbers = sortedKeys(xlines)
	return nil
}

func sortedKeys(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}

// NumTraces returns the number of traces indexed.
func (sgy *File) NumTraces() int {
	if sgy.offsets == nil {
		return 0
	}
	return sgy.offsets.Len()
}

// NumInlines returns the number of distinct inline numbers.
func (sgy *File) NumInlines() int {
	return len(sgy.inlineNumbers)
}

// NumXlines returns the number of distinct crossline numbers.
func (sgy *File) NumXlines() int {
	return len(sgy.xlineNumbers)
}

// InlineNumbers returns the distinct inline numbers in ascending order.
// The slice is shared and must not be modified.
func (sgy *File) InlineNumbers() []int {
	return sgy.inlineNumbers
}

// XlineNumbers returns the distinct crossline numbers in ascending
// order. The slice is shared and must not be modified.
func (sgy *File) XlineNumbers() []int {
	return sgy.xlineNumbers
}

// EachInlineXline calls fn for every (inline, crossline) pair present in
// the line catalog, in the catalog's deterministic order, until fn
// returns false.
func (sgy *File) EachInlineXline(fn func(inline, xline int) bool) error {
	if sgy.lines == nil {
		return opNotSupported("File", "no (inline, crossline) catalog available")
	}
	sgy.lines.EachKey(fn)
	return nil
}

// HasTraceIndex reports whether a trace exists at (inline, xline).
func (sgy *File) HasTraceIndex(inline, xline int) bool {
	return sgy.lines != nil && sgy.lines.Contains(inline, xline)
}

// TraceIndex returns the trace index recorded at (inline, xline).
func (sgy *File) TraceIndex(inline, xline int) (int, error) {
	if sgy.lines == nil {
		return 0, opNotSupported("File", "no (inline, crossline) catalog available")
	}
	return sgy.lines.Get(inline, xline)
}

// TraceIndexByCDP returns the trace index recorded for a CDP number.
func (sgy *File) TraceIndexByCDP(cdp int) (int, error) {
	if sgy.cdps == nil {
		return 0, opNotSupported("File", "no unique CDP catalog available")
	}
	return sgy.cdps.Get(cdp)
}

// TraceOffset returns the file offset of the trace header for a trace
// index.
func (sgy *File) TraceOffset(index int) (int64, error) {
	if sgy.offsets == nil {
		return 0, opNotSupported("File", "traces are not indexed")
	}
	pos, err := sgy.offsets.Get(index)
	if err != nil {
		return 0, err
	}
	return int64(pos), nil
}

// TraceHeaderAt parses the trace header of the trace at index.
func (sgy *File) TraceHeaderAt(index int) (*TraceHeader, error) {
	pos, err := sgy.TraceOffset(index)
	if err != nil {
		return nil, err
	}
	data, err := sgy.ReadBytesAtOffset(pos, TraceHeaderSize)
	if err != nil {
		return nil, err
	}
	return ParseTraceHeader(data, sgy.byteOrder)
}

// NumTraceSamples returns the number of samples in the trace at index.
func (sgy *File) NumTraceSamples(index int) (int, error) {
	if sgy.lengths == nil {
		return 0, opNotSupported("File", "traces are not indexed")
	}
	return sgy.lengths.Get(index)
}

// MaxNumTraceSamples returns the largest sample count over all traces.
func (sgy *File) MaxNumTraceSamples() int {
	return sgy.maxSamples
}

// DataSampleFormat returns the sample format from the binary header.
func (sgy *File) DataSampleFormat() SampleFormat {
	return sgy.BinaryHeader.DataSampleFormat
}

// TraceSamples decodes samples [start, stop) of the trace at index.
func (sgy *File) TraceSamples(index, start, stop int) ([]float64, error) {
	ns, err := sgy.NumTraceSamples(index)
	if err != nil {
		return nil, err
	}
	if start < 0 || stop < start || stop > ns {
		return nil, inconsistency("sample range [%d, %d) outside trace %d with %d samples",
			start, stop, index, ns)
	}
	pos, err := sgy.TraceOffset(index)
	if err != nil {
		return nil, err
	}
	ctype, err := sgy.DataSampleFormat().CType()
	if err != nil {
		return nil, err
	}
	offset := pos + TraceHeaderSize + int64(start)*int64(sgy.BytesPerSample)
	return sgy.readBinaryValues(offset, ctype, stop-start)
}

// OffsetCatalog returns the trace index → file offset catalog.
func (sgy *File) OffsetCatalog() Catalog { return sgy.offsets }

// LengthCatalog returns the trace index → sample count catalog.
func (sgy *File) LengthCatalog() Catalog { return sgy.lengths }

// CDPCatalog returns the CDP number → trace index catalog, or nil when
// CDP numbers were not unique.
func (sgy *File) CDPCatalog() Catalog { return sgy.cdps }

// LineCatalog returns the (inline, crossline) → trace index catalog, or
// nil when the pairs were not unique.
func (sgy *File) LineCatalog() Catalog2D { return sgy.lines }
