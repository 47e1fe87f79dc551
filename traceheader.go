// Copyright 2022 Seisio. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package segy

import (
	"bytes"
	"encoding/binary"
)

// TraceHeader represents the 240 byte header preceding each trace's
// sample data. The revision 1 standard assigns every byte, so the struct
// tiles the record exactly.
type TraceHeader struct {
	// Trace sequence number within line.
	TraceSequenceLine int32 `json:"trace_sequence_line"`

	// Trace sequence number within file.
	TraceSequenceFile int32 `json:"trace_sequence_file"`

	// Original field record number.
	FieldRecord int32 `json:"field_record"`

	// Trace number within the original field record.
	TraceNumber int32 `json:"trace_number"`

	// Energy source point number.
	EnergySourcePoint int32 `json:"energy_source_point"`

	// Ensemble number (CDP, CMP, CRP).
	CDP int32 `json:"cdp"`

	// Trace number within the ensemble.
	CDPTrace int32 `json:"cdp_trace"`

	// Trace identification code.
	TraceIdentificationCode int16 `json:"trace_identification_code"`

	// Number of vertically summed traces yielding this trace.
	NumVerticallySummedTraces int16 `json:"num_vertically_summed_traces"`

	// Number of horizontally stacked traces yielding this trace.
	NumHorizontallyStackedTraces int16 `json:"num_horizontally_stacked_traces"`

	// Data use: 1 production, 2 test.
	DataUse int16 `json:"data_use"`

	// Distance from center of source point to center of receiver group.
	SourceReceiverOffset int32 `json:"source_receiver_offset"`

	// Receiver group elevation.
	ReceiverGroupElevation int32 `json:"receiver_group_elevation"`

	// Surface elevation at source.
	SourceSurfaceElevation int32 `json:"source_surface_elevation"`

	// Source depth below surface.
	SourceDepth int32 `json:"source_depth"`

	// Datum elevation at receiver group.
	ReceiverDatumElevation int32 `json:"receiver_datum_elevation"`

	// Datum elevation at source.
	SourceDatumElevation int32 `json:"source_datum_elevation"`

	// Water depth at source.
	SourceWaterDepth int32 `json:"source_water_depth"`

	// Water depth at group.
	GroupWaterDepth int32 `json:"group_water_depth"`

	// Scalar applied to the elevation and depth fields.
	ElevationScalar int16 `json:"elevation_scalar"`

	// Scalar applied to the coordinate fields.
	SourceGroupScalar int16 `json:"source_group_scalar"`

	// Source coordinate X.
	SourceX int32 `json:"source_x"`

	// Source coordinate Y.
	SourceY int32 `json:"source_y"`

	// Group coordinate X.
	GroupX int32 `json:"group_x"`

	// Group coordinate Y.
	GroupY int32 `json:"group_y"`

	// Coordinate units: 1 length, 2 arc seconds, 3 decimal degrees.
	CoordinateUnits int16 `json:"coordinate_units"`

	// Weathering velocity.
	WeatheringVelocity int16 `json:"weathering_velocity"`

	// Subweathering velocity.
	SubWeatheringVelocity int16 `json:"sub_weathering_velocity"`

	// Uphole time at source (ms).
	SourceUpholeTime int16 `json:"source_uphole_time"`

	// Uphole time at group (ms).
	GroupUpholeTime int16 `json:"group_uphole_time"`

	// Source static correction (ms).
	SourceStaticCorrection int16 `json:"source_static_correction"`

	// Group static correction (ms).
	GroupStaticCorrection int16 `json:"group_static_correction"`

	// Total static applied (ms).
	TotalStaticApplied int16 `json:"total_static_applied"`

	// Lag time A (ms).
	LagTimeA int16 `json:"lag_time_a"`

	// Lag time B (ms).
	LagTimeB int16 `json:"lag_time_b"`

	// Delay recording time (ms).
	DelayRecordingTime int16 `json:"delay_recording_time"`

	// Mute time start (ms).
	MuteTimeStart int16 `json:"mute_time_start"`

	// Mute time end (ms).
	MuteTimeEnd int16 `json:"mute_time_end"`

	// Number of samples in this trace.
	NumSamples uint16 `json:"num_samples"`

	// Sample interval for this trace (microseconds).
	SampleInterval uint16 `json:"sample_interval"`

	// Gain type of field instruments.
	GainType int16 `json:"gain_type"`

	// Instrument gain constant (dB).
	InstrumentGainConstant int16 `json:"instrument_gain_constant"`

	// Instrument early or initial gain (dB).
	InstrumentInitialGain int16 `json:"instrument_initial_gain"`

	// Correlated flag.
	Correlated int16 `json:"correlated"`

	// Sweep frequency at start (Hz).
	SweepFrequencyStart int16 `json:"sweep_frequency_start"`

	// Sweep frequency at end (Hz).
	SweepFrequencyEnd int16 `json:"sweep_frequency_end"`

	// Sweep length (ms).
	SweepLength int16 `json:"sweep_length"`

	// Sweep type code.
	SweepType int16 `json:"sweep_type"`

	// Sweep trace taper length at start (ms).
	SweepTaperLengthStart int16 `json:"sweep_taper_length_start"`

	// Sweep trace taper length at end (ms).
	SweepTaperLengthEnd int16 `json:"sweep_taper_length_end"`

	// Taper type code.
	TaperType int16 `json:"taper_type"`

	// Alias filter frequency (Hz).
	AliasFilterFrequency int16 `json:"alias_filter_frequency"`

	// Alias filter slope (dB/octave).
	AliasFilterSlope int16 `json:"alias_filter_slope"`

	// Notch filter frequency (Hz).
	NotchFilterFrequency int16 `json:"notch_filter_frequency"`

	// Notch filter slope (dB/octave).
	NotchFilterSlope int16 `json:"notch_filter_slope"`

	// Low-cut frequency (Hz).
	LowCutFrequency int16 `json:"low_cut_frequency"`

	// High-cut frequency (Hz).
	HighCutFrequency int16 `json:"high_cut_frequency"`

	// Low-cut slope (dB/octave).
	LowCutSlope int16 `json:"low_cut_slope"`

	// High-cut slope (dB/octave).
	HighCutSlope int16 `json:"high_cut_slope"`

	// Year data recorded.
	YearDataRecorded int16 `json:"year_data_recorded"`

	// Day of year.
	DayOfYear int16 `json:"day_of_year"`

	// Hour of day.
	HourOfDay int16 `json:"hour_of_day"`

	// Minute of hour.
	MinuteOfHour int16 `json:"minute_of_hour"`

	// Second of minute.
	SecondOfMinute int16 `json:"second_of_minute"`

	// Time basis code.
	TimeBaseCode int16 `json:"time_base_code"`

	// Trace weighting factor.
	TraceWeightingFactor int16 `json:"trace_weighting_factor"`

	// Geophone group number of roll switch position one.
	GeophoneGroupNumberRoll int16 `json:"geophone_group_number_roll"`

	// Geophone group number of trace number one within original field record.
	GeophoneGroupNumberFirstTrace int16 `json:"geophone_group_number_first_trace"`

	// Geophone group number of last trace within original field record.
	GeophoneGroupNumberLastTrace int16 `json:"geophone_group_number_last_trace"`

	// Gap size (total number of groups dropped).
	GapSize int16 `json:"gap_size"`

	// Overtravel associated with taper.
	OverTravel int16 `json:"over_travel"`

	// X coordinate of ensemble (CDP) position.
	CDPX int32 `json:"cdp_x"`

	// Y coordinate of ensemble (CDP) position.
	CDPY int32 `json:"cdp_y"`

	// In-line number for 3D poststack data.
	Inline3D int32 `json:"inline_3d"`

	// Cross-line number for 3D poststack data.
	Crossline3D int32 `json:"crossline_3d"`

	// Shotpoint number.
	ShotPoint int32 `json:"shot_point"`

	// Scalar applied to the shotpoint number.
	ShotPointScalar int16 `json:"shot_point_scalar"`

	// Trace value measurement unit.
	TraceValueMeasurementUnit int16 `json:"trace_value_measurement_unit"`

	// Transduction constant mantissa.
	TransductionConstantMantissa int32 `json:"transduction_constant_mantissa"`

	// Transduction constant power of ten.
	TransductionConstantPower int16 `json:"transduction_constant_power"`

	// Transduction units.
	TransductionUnit int16 `json:"transduction_unit"`

	// Device/trace identifier.
	TraceIdentifier int16 `json:"trace_identifier"`

	// Scalar applied to times in this header.
	TimeScalar int16 `json:"time_scalar"`

	// Source type/orientation.
	SourceType int16 `json:"source_type"`

	// Source energy direction mantissa.
	SourceEnergyDirectionMantissa int32 `json:"source_energy_direction_mantissa"`

	// Source energy direction exponent.
	SourceEnergyDirectionExponent int16 `json:"source_energy_direction_exponent"`

	// Source measurement mantissa.
	SourceMeasurementMantissa int32 `json:"source_measurement_mantissa"`

	// Source measurement exponent.
	SourceMeasurementExponent int16 `json:"source_measurement_exponent"`

	// Source measurement unit.
	SourceMeasurementUnit int16 `json:"source_measurement_unit"`

	// Unassigned.
	Unassigned1 int32 `json:"unassigned_1"`

	// Unassigned.
	Unassigned2 int32 `json:"unassigned_2"`
}

// TraceHeaderField describes one named trace header field: its byte
// offset within the 240 byte record, its primitive type code, and an
// accessor returning the field from a parsed header.
type TraceHeaderField struct {
	Name  string
	Pos   int
	Type  CType
	value func(*TraceHeader) int64
}

// Value returns the field's value from a parsed trace header.
func (f TraceHeaderField) Value(th *TraceHeader) int64 {
	return f.value(th)
}

// TraceHeaderFields is the declarative schema of the trace header. The
// entries tile the 240 byte record exactly; the layout test asserts the
// cumulative byte count.
var TraceHeaderFields = []TraceHeaderField{
	{"TraceSequenceLine", 0, CTypeInt32, func(h *TraceHeader) int64 { return int64(h.TraceSequenceLine) }},
	{"TraceSequenceFile", 4, CTypeInt32, func(h *TraceHeader) int64 { return int64(h.TraceSequenceFile) }},
	{"FieldRecord", 8, CTypeInt32, func(h *TraceHeader) int64 { return int64(h.FieldRecord) }},
	{"TraceNumber", 12, CTypeInt32, func(h *TraceHeader) int64 { return int64(h.TraceNumber) }},
	{"EnergySourcePoint", 16, CTypeInt32, func(h *TraceHeader) int64 { return int64(h.EnergySourcePoint) }},
	{"CDP", 20, CTypeInt32, func(h *TraceHeader) int64 { return int64(h.CDP) }},
	{"CDPTrace", 24, CTypeInt32, func(h *TraceHeader) int64 { return int64(h.CDPTrace) }},
	{"TraceIdentificationCode", 28, CTypeInt16, func(h *TraceHeader) int64 { return int64(h.TraceIdentificationCode) }},
	{"NumVerticallySummedTraces", 30, CTypeInt16, func(h *TraceHeader) int64 { return int64(h.NumVerticallySummedTraces) }},
	{"NumHorizontallyStackedTraces", 32, CTypeInt16, func(h *TraceHeader) int64 { return int64(h.NumHorizontallyStackedTraces) }},
	{"DataUse", 34, CTypeInt16, func(h *TraceHeader) int64 { return int64(h.DataUse) }},
	{"SourceReceiverOffset", 36, CTypeInt32, func(h *TraceHeader) int64 { return int64(h.SourceReceiverOffset) }},
	{"ReceiverGroupElevation", 40, CTypeInt32, func(h *TraceHeader) int64 { return int64(h.ReceiverGroupElevation) }},
	{"SourceSurfaceElevation", 44, CTypeInt32, func(h *TraceHeader) int64 { return int64(h.SourceSurfaceElevation) }},
	{"SourceDepth", 48, CTypeInt32, func(h *TraceHeader) int64 { return int64(h.SourceDepth) }},
	{"ReceiverDatumElevation", 52, CTypeInt32, func(h *TraceHeader) int64 { return int64(h.ReceiverDatumElevation) }},
	{"SourceDatumElevation", 56, CTypeInt32, func(h *TraceHeader) int64 { return int64(h.SourceDatumElevation) }},
	{"SourceWaterDepth", 60, CTypeInt32, func(h *TraceHeader) int64 { return int64(h.SourceWaterDepth) }},
	{"GroupWaterDepth", 64, CTypeInt32, func(h *TraceHeader) int64 { return int64(h.GroupWaterDepth) }},
	{"ElevationScalar", 68, CTypeInt16, func(h *TraceHeader) int64 { return int64(h.ElevationScalar) }},
	{"SourceGroupScalar", 70, CTypeInt16, func(h *TraceHeader) int64 { return int64(h.SourceGroupScalar) }},
	{"SourceX", 72, CTypeInt32, func(h *TraceHeader) int64 { return int64(h.SourceX) }},
	{"SourceY", 76, CTypeInt32, func(h *TraceHeader) int64 { return int64(h.SourceY) }},
	{"GroupX", 80, CTypeInt32, func(h *TraceHeader) int64 { return int64(h.GroupX) }},
	{"GroupY", 84, CTypeInt32, func(h *TraceHeader) int64 { return int64(h.GroupY) }},
	{"CoordinateUnits", 88, CTypeInt16, func(h *TraceHeader) int64 { return int64(h.CoordinateUnits) }},
	{"WeatheringVelocity", 90, CTypeInt16, func(h *TraceHeader) int64 { return int64(h.WeatheringVelocity) }},
	{"SubWeatheringVelocity", 92, CTypeInt16, func(h *TraceHeader) int64 { return int64(h.SubWeatheringVelocity) }},
	{"SourceUpholeTime", 94, CTypeInt16, func(h *TraceHeader) int64 { return int64(h.SourceUpholeTime) }},
	{"GroupUpholeTime", 96, CTypeInt16, func(h *TraceHeader) int64 { return int64(h.GroupUpholeTime) }},
	{"SourceStaticCorrection", 98, CTypeInt16, func(h *TraceHeader) int64 { return int64(h.SourceStaticCorrection) }},
	{"GroupStaticCorrection", 100, CTypeInt16, func(h *TraceHeader) int64 { return int64(h.GroupStaticCorrection) }},
	{"TotalStaticApplied", 102, CTypeInt16, func(h *TraceHeader) int64 { return int64(h.TotalStaticApplied) }},
	{"LagTimeA", 104, CTypeInt16, func(h *TraceHeader) int64 { return int64(h.LagTimeA) }},
	{"LagTimeB", 106, CTypeInt16, func(h *TraceHeader) int64 { return int64(h.LagTimeB) }},
	{"DelayRecordingTime", 108, CTypeInt16, func(h *TraceHeader) int64 { return int64(h.DelayRecordingTime) }},
	{"MuteTimeStart", 110, CTypeInt16, func(h *TraceHeader) int64 { return int64(h.MuteTimeStart) }},
	{"MuteTimeEnd", 112, CTypeInt16, func(h *TraceHeader) int64 { return int64(h.MuteTimeEnd) }},
	{"NumSamples", 114, CTypeUint16, func(h *TraceHeader) int64 { return int64(h.NumSamples) }},
	{"SampleInterval", 116, CTypeUint16, func(h *TraceHeader) int64 { return int64(h.SampleInterval) }},
	{"GainType", 118, CTypeInt16, func(h *TraceHeader) int64 { return int64(h.GainType) }},
	{"InstrumentGainConstant", 120, CTypeInt16, func(h *TraceHeader) int64 { return int64(h.InstrumentGainConstant) }},
	{"InstrumentInitialGain", 122, CTypeInt16, func(h *TraceHeader) int64 { return int64(h.InstrumentInitialGain) }},
	{"Correlated", 124, CTypeInt16, func(h *TraceHeader) int64 { return int64(h.Correlated) }},
	{"SweepFrequencyStart", 126, CTypeInt16, func(h *TraceHeader) int64 { return int64(h.SweepFrequencyStart) }},
	{"SweepFrequencyEnd", 128, CTypeInt16, func(h *TraceHeader) int64 { return int64(h.SweepFrequencyEnd) }},
	{"SweepLength", 130, CTypeInt16, func(h *TraceHeader) int64 { return int64(h.SweepLength) }},
	{"SweepType", 132, CTypeInt16, func(h *TraceHeader) int64 { return int64(h.SweepType) }},
	{"SweepTaperLengthStart", 134, CTypeInt16, func(h *TraceHeader) int64 { return int64(h.SweepTaperLengthStart) }},
	{"SweepTaperLengthEnd", 136, CTypeInt16, func(h *TraceHeader) int64 { return int64(h.SweepTaperLengthEnd) }},
	{"TaperType", 138, CTypeInt16, func(h *TraceHeader) int64 { return int64(h.TaperType) }},
	{"AliasFilterFrequency", 140, CTypeInt16, func(h *TraceHeader) int64 { return int64(h.AliasFilterFrequency) }},
	{"AliasFilterSlope", 142, CTypeInt16, func(h *TraceHeader) int64 { return int64(h.AliasFilterSlope) }},
	{"NotchFilterFrequency", 144, CTypeInt16, func(h *TraceHeader) int64 { return int64(h.NotchFilterFrequency) }},
	{"NotchFilterSlope", 146, CTypeInt16, func(h *TraceHeader) int64 { return int64(h.NotchFilterSlope) }},
	{"LowCutFrequency", 148, CTypeInt16, func(h *TraceHeader) int64 { return int64(h.LowCutFrequency) }},
	{"HighCutFrequency", 150, CTypeInt16, func(h *TraceHeader) int64 { return int64(h.HighCutFrequency) }},
	{"LowCutSlope", 152, CTypeInt16, func(h *TraceHeader) int64 { return int64(h.LowCutSlope) }},
	{"HighCutSlope", 154, CTypeInt16, func(h *TraceHeader) int64 { return int64(h.HighCutSlope) }},
	{"YearDataRecorded", 156, CTypeInt16, func(h *TraceHeader) int64 { return int64(h.YearDataRecorded) }},
	{"DayOfYear", 158, CTypeInt16, func(h *TraceHeader) int64 { return int64(h.DayOfYear) }},
	{"HourOfDay", 160, CTypeInt16, func(h *TraceHeader) int64 { return int64(h.HourOfDay) }},
	{"MinuteOfHour", 162, CTypeInt16, func(h *TraceHeader) int64 { return int64(h.MinuteOfHour) }},
	{"SecondOfMinute", 164, CTypeInt16, func(h *TraceHeader) int64 { return int64(h.SecondOfMinute) }},
	{"TimeBaseCode", 166, CTypeInt16, func(h *TraceHeader) int64 { return int64(h.TimeBaseCode) }},
	{"TraceWeightingFactor", 168, CTypeInt16, func(h *TraceHeader) int64 { return int64(h.TraceWeightingFactor) }},
	{"GeophoneGroupNumberRoll", 170, CTypeInt16, func(h *TraceHeader) int64 { return int64(h.GeophoneGroupNumberRoll) }},
	{"GeophoneGroupNumberFirstTrace", 172, CTypeInt16, func(h *TraceHeader) int64 { return int64(h.GeophoneGroupNumberFirstTrace) }},
	{"GeophoneGroupNumberLastTrace", 174, CTypeInt16, func(h *TraceHeader) int64 { return int64(h.GeophoneGroupNumberLastTrace) }},
	{"GapSize", 176, CTypeInt16, func(h *TraceHeader) int64 { return int64(h.GapSize) }},
	{"OverTravel", 178, CTypeInt16, func(h *TraceHeader) int64 { return int64(h.OverTravel) }},
	{"CDPX", 180, CTypeInt32, func(h *TraceHeader) int64 { return int64(h.CDPX) }},
	{"CDPY", 184, CTypeInt32, func(h *TraceHeader) int64 { return int64(h.CDPY) }},
	{"Inline3D", 188, CTypeInt32, func(h *TraceHeader) int64 { return int64(h.Inline3D) }},
	{"Crossline3D", 192, CTypeInt32, func(h *TraceHeader) int64 { return int64(h.Crossline3D) }},
	{"ShotPoint", 196, CTypeInt32, func(h *TraceHeader) int64 { return int64(h.ShotPoint) }},
	{"ShotPointScalar", 200, CTypeInt16, func(h *TraceHeader) int64 { return int64(h.ShotPointScalar) }},
	{"TraceValueMeasurementUnit", 202, CTypeInt16, func(h *TraceHeader) int64 { return int64(h.TraceValueMeasurementUnit) }},
	{"TransductionConstantMantissa", 204, CTypeInt32, func(h *TraceHeader) int64 { return int64(h.TransductionConstantMantissa) }},
	{"TransductionConstantPower", 208, CTypeInt16, func(h *TraceHeader) int64 { return int64(h.TransductionConstantPower) }},
	{"TransductionUnit", 210, CTypeInt16, func(h *TraceHeader) int64 { return int64(h.TransductionUnit) }},
	{"TraceIdentifier", 212, CTypeInt16, func(h *TraceHeader) int64 { return int64(h.TraceIdentifier) }},
	{"TimeScalar", 214, CTypeInt16, func(h *TraceHeader) int64 { return int64(h.TimeScalar) }},
	{"SourceType", 216, CTypeInt16, func(h *TraceHeader) int64 { return int64(h.SourceType) }},
	{"SourceEnergyDirectionMantissa", 218, CTypeInt32, func(h *TraceHeader) int64 { return int64(h.SourceEnergyDirectionMantissa) }},
	{"SourceEnergyDirectionExponent", 222, CTypeInt16, func(h *TraceHeader) int64 { return int64(h.SourceEnergyDirectionExponent) }},
	{"SourceMeasurementMantissa", 224, CTypeInt32, func(h *TraceHeader) int64 { return int64(h.SourceMeasurementMantissa) }},
	{"SourceMeasurementExponent", 228, CTypeInt16, func(h *TraceHeader) int64 { return int64(h.SourceMeasurementExponent) }},
	{"SourceMeasurementUnit", 230, CTypeInt16, func(h *TraceHeader) int64 { return int64(h.SourceMeasurementUnit) }},
	{"Unassigned1", 232, CTypeInt32, func(h *TraceHeader) int64 { return int64(h.Unassigned1) }},
	{"Unassigned2", 236, CTypeInt32, func(h *TraceHeader) int64 { return int64(h.Unassigned2) }},
}

// TraceHeaderFieldByName looks up a schema entry by field name.
func TraceHeaderFieldByName(name string) (TraceHeaderField, error) {
	for _, f := range TraceHeaderFields {
		if f.Name == name {
			return f, nil
		}
	}
	return TraceHeaderField{}, keyError("TraceHeaderFields", name)
}

// ParseTraceHeader parses a 240 byte trace header.
func ParseTraceHeader(data []byte, bo binary.ByteOrder) (*TraceHeader, error) {
	if len(data) < TraceHeaderSize {
		return nil, underflow("trace header", TraceHeaderSize, len(data))
	}
	th := &TraceHeader{}
	err := binary.Read(bytes.NewReader(data[:TraceHeaderSize]), bo, th)
	if err != nil {
		return nil, err
	}
	return th, nil
}

// AppendBinary appends the 240 byte encoding of the header to b.
func (th *TraceHeader) AppendBinary(b []byte, bo binary.ByteOrder) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(TraceHeaderSize)
	if err := binary.Write(&buf, bo, th); err != nil {
		return nil, err
	}
	return append(b, buf.Bytes()...), nil
}
