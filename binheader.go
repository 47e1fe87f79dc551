// Copyright 2022 Seisio. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package segy

// BinaryHeader represents the 400 byte binary (reel) header stored at
// bytes 3200..3600 of a SEG-Y file. The layout is fixed; reserved ranges
// are kept as padding so the struct tiles the header exactly.
type BinaryHeader struct {
	// Job identification number.
	JobID int32 `json:"job_id"`

	// Line number. For 3D poststack data this will typically contain the
	// in-line number.
	LineNumber int32 `json:"line_number"`

	// Reel number.
	ReelNumber int32 `json:"reel_number"`

	// Number of data traces per ensemble.
	DataTracesPerEnsemble int16 `json:"data_traces_per_ensemble"`

	// Number of auxiliary traces per ensemble.
	AuxTracesPerEnsemble int16 `json:"aux_traces_per_ensemble"`

	// Sample interval in microseconds.
	SampleInterval int16 `json:"sample_interval"`

	// Sample interval of the original field recording.
	SampleIntervalOriginal int16 `json:"sample_interval_original"`

	// Number of samples per data trace. Indicative only; the number of
	// samples for a specific trace comes from its trace header.
	NumSamples int16 `json:"num_samples"`

	// Number of samples per data trace of the original field recording.
	NumSamplesOriginal int16 `json:"num_samples_original"`

	// Data sample format code.
	DataSampleFormat SampleFormat `json:"data_sample_format"`

	// The expected number of data traces per trace ensemble.
	EnsembleFold int16 `json:"ensemble_fold"`

	// Trace sorting code.
	TraceSorting int16 `json:"trace_sorting"`

	// Vertical sum code.
	VerticalSumCode int16 `json:"vertical_sum_code"`

	// Sweep frequency at start (Hz).
	SweepFrequencyStart int16 `json:"sweep_frequency_start"`

	// Sweep frequency at end (Hz).
	SweepFrequencyEnd int16 `json:"sweep_frequency_end"`

	// Sweep length (ms).
	SweepLength int16 `json:"sweep_length"`

	// Sweep type code.
	SweepType int16 `json:"sweep_type"`

	// Trace number of sweep channel.
	SweepChannel int16 `json:"sweep_channel"`

	// Sweep trace taper length in milliseconds at start.
	SweepTaperLengthStart int16 `json:"sweep_taper_length_start"`

	// Sweep trace taper length in milliseconds at end.
	SweepTaperLengthEnd int16 `json:"sweep_taper_length_end"`

	// Taper type code.
	TaperType int16 `json:"taper_type"`

	// Correlated data traces flag.
	CorrelatedTraces int16 `json:"correlated_traces"`

	// Binary gain recovered flag.
	BinaryGainRecovered int16 `json:"binary_gain_recovered"`

	// Amplitude recovery method code.
	AmplitudeRecoveryMethod int16 `json:"amplitude_recovery_method"`

	// Measurement system: 1 meters, 2 feet.
	MeasurementSystem int16 `json:"measurement_system"`

	// Impulse signal polarity code.
	ImpulseSignalPolarity int16 `json:"impulse_signal_polarity"`

	// Vibratory polarity code.
	VibratoryPolarityCode int16 `json:"vibratory_polarity_code"`

	// Unassigned.
	_ [240]byte

	// SEG-Y format revision number: 0x0000 for revision 0, 0x0100 for
	// revision 1.
	SEGYFormatRevisionNumber uint16 `json:"segy_format_revision_number"`

	// Fixed length trace flag: 1 if all traces have the same length.
	FixedLengthTraceFlag int16 `json:"fixed_length_trace_flag"`

	// Number of 3200 byte extended textual headers following the binary
	// header.
	NumExtendedTextualHeaders int16 `json:"num_extended_textual_headers"`

	// Unassigned.
	_ [94]byte
}

// HeaderField describes one named field of a fixed layout header: its
// byte offset and primitive type code.
type HeaderField struct {
	Name string
	Pos  int
	Type CType
}

// BinaryHeaderFields is the declarative schema of the binary header.
// Positions are absolute file offsets, matching the on-disk layout of
// BinaryHeader starting at byte 3200.
var BinaryHeaderFields = []HeaderField{
	{"JobID", 3200, CTypeInt32},
	{"LineNumber", 3204, CTypeInt32},
	{"ReelNumber", 3208, CTypeInt32},
	{"DataTracesPerEnsemble", 3212, CTypeInt16},
	{"AuxTracesPerEnsemble", 3214, CTypeInt16},
	{"SampleInterval", 3216, CTypeInt16},
	{"SampleIntervalOriginal", 3218, CTypeInt16},
	{"NumSamples", 3220, CTypeInt16},
	{"NumSamplesOriginal", 3222, CTypeInt16},
	{"DataSampleFormat", 3224, CTypeInt16},
	{"EnsembleFold", 3226, CTypeInt16},
	{"TraceSorting", 3228, CTypeInt16},
	{"VerticalSumCode", 3230, CTypeInt16},
	{"SweepFrequencyStart", 3232, CTypeInt16},
	{"SweepFrequencyEnd", 3234, CTypeInt16},
	{"SweepLength", 3236, CTypeInt16},
	{"SweepType", 3238, CTypeInt16},
	{"SweepChannel", 3240, CTypeInt16},
	{"SweepTaperLengthStart", 3242, CTypeInt16},
	{"SweepTaperLengthEnd", 3244, CTypeInt16},
	{"TaperType", 3246, CTypeInt16},
	{"CorrelatedTraces", 3248, CTypeInt16},
	{"BinaryGainRecovered", 3250, CTypeInt16},
	{"AmplitudeRecoveryMethod", 3252, CTypeInt16},
	{"MeasurementSystem", 3254, CTypeInt16},
	{"ImpulseSignalPolarity", 3256, CTypeInt16},
	{"VibratoryPolarityCode", 3258, CTypeInt16},
	{"SEGYFormatRevisionNumber", 3500, CTypeUint16},
	{"FixedLengthTraceFlag", 3502, CTypeInt16},
	{"NumExtendedTextualHeaders", 3504, CTypeInt16},
}

// ParseBinaryHeader parses the binary header at bytes 3200..3600 and
// derives the facts later decoding depends on: the canonical revision
// and the bytes-per-sample width.
func (sgy *File) ParseBinaryHeader() error {
	err := sgy.structUnpack(&sgy.BinaryHeader, TextualHeaderSize, BinaryHeaderSize)
	if err != nil {
		return err
	}

	revision, err := CanonicalizeRevision(sgy.BinaryHeader.SEGYFormatRevisionNumber)
	if err != nil {
		return err
	}
	sgy.Revision = revision

	bps, err := BytesPerSample(sgy.BinaryHeader.DataSampleFormat, revision)
	if err != nil {
		return err
	}
	sgy.BytesPerSample = bps
	return nil
}
