package cambia

import (
	"encoding/json"
	"testing"
)

func TestNewTestAndCopy(t *testing.T) {
	cases := []struct {
		test, copy string
		want       Integrity
	}{
		{"DEADBEEF", "DEADBEEF", IntegrityMatch},
		{"deadbeef", "DEADBEEF", IntegrityMatch},
		{"DEADBEEF", "CAFEBABE", IntegrityMismatch},
		{"", "CAFEBABE", IntegrityUnknown},
		{"DEADBEEF", "", IntegrityUnknown},
		{"", "", IntegrityUnknown},
	}

	for _, c := range cases {
		got := NewTestAndCopy(c.test, c.copy)
		if got.Integrity != c.want {
			t.Errorf("NewTestAndCopy(%q, %q).Integrity = %v, want %v", c.test, c.copy, got.Integrity, c.want)
		}
	}
}

func TestDeriveStatus(t *testing.T) {
	three := 3
	offset := 667

	cases := []struct {
		name string
		unit AccurateRipUnit
		want AccurateRipStatus
	}{
		{
			name: "empty signature is disabled",
			unit: AccurateRipUnit{},
			want: ARStatusDisabled,
		},
		{
			name: "no confidence is not found",
			unit: AccurateRipUnit{Signature: "AAAAAAAA"},
			want: ARStatusNotFound,
		},
		{
			name: "different offset is offsetted",
			unit: AccurateRipUnit{
				Signature: "AAAAAAAA",
				Confidence: &AccurateRipConfidence{
					Matching: &three,
					Offset:   AccurateRipOffset{Same: false, Different: &offset},
				},
			},
			want: ARStatusOffsetted,
		},
		{
			name: "same offset with matching sign is match",
			unit: AccurateRipUnit{
				Signature:           "AAAAAAAA",
				OffsetCorrectedSign: "AAAAAAAA",
				Confidence: &AccurateRipConfidence{
					Matching: &three,
					Offset:   AccurateRipOffset{Same: true},
				},
			},
			want: ARStatusMatch,
		},
		{
			name: "same offset with differing corrected sign is mismatch",
			unit: AccurateRipUnit{
				Signature:           "AAAAAAAA",
				OffsetCorrectedSign: "BBBBBBBB",
				Confidence: &AccurateRipConfidence{
					Matching: &three,
					Offset:   AccurateRipOffset{Same: true},
				},
			},
			want: ARStatusMismatch,
		},
	}

	for _, c := range cases {
		unit := c.unit
		unit.DeriveStatus()
		if unit.Status != c.want {
			t.Errorf("%s: Status = %v, want %v", c.name, unit.Status, c.want)
		}
	}
}

func TestEnumsMarshalAsVariantNames(t *testing.T) {
	cases := []struct {
		value any
		want  string
	}{
		{QuartetTrue, `"True"`},
		{QuartetUnknown, `"Unknown"`},
		{RipperXLD, `"XLD"`},
		{MediaPressed, `"Pressed"`},
		{MediaCDR, `"CD-R"`},
		{ReadModeSecure, `"Secure"`},
		{GapAppendNoHtoa, `"AppendNoHtoa"`},
		{IntegrityMatch, `"Match"`},
		{ARStatusOffsetted, `"Offsetted"`},
	}

	for _, c := range cases {
		got, err := json.Marshal(c.value)
		if err != nil {
			t.Fatalf("Marshal(%v): %v", c.value, err)
		}
		if string(got) != c.want {
			t.Errorf("Marshal(%v) = %s, want %s", c.value, got, c.want)
		}
	}
}

func TestNewDisabledAccurateRipUnit(t *testing.T) {
	unit := NewDisabledAccurateRipUnit()
	if unit.Status != ARStatusDisabled {
		t.Errorf("Status = %v, want Disabled", unit.Status)
	}
	if unit.Signature != "" {
		t.Errorf("Signature = %q, want empty", unit.Signature)
	}
}
