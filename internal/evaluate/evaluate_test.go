package evaluate

import (
	"testing"

	"github.com/cambia-project/cambia-go/pkg/cambia"
)

func TestExprEvaluatorFlagsSignatureMismatch(t *testing.T) {
	ev, err := NewExprEvaluator(nil)
	if err != nil {
		t.Fatalf("NewExprEvaluator: %v", err)
	}

	parsed := &cambia.ParsedLogCombined{
		ParsedLogs: []cambia.ParsedLog{
			{Checksum: cambia.Checksum{Integrity: cambia.IntegrityMismatch}},
		},
	}

	result, err := ev.Evaluate(parsed)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	found := false
	for _, f := range result.Flags {
		if f.Rule == "signature_mismatch" && f.Log == 0 {
			found = true
		}
	}
	if !found {
		t.Errorf("expected signature_mismatch flag, got %+v", result.Flags)
	}
}

func TestExprEvaluatorFlagsTrackLevelRules(t *testing.T) {
	ev, err := NewExprEvaluator(nil)
	if err != nil {
		t.Fatalf("NewExprEvaluator: %v", err)
	}

	parsed := &cambia.ParsedLogCombined{
		ParsedLogs: []cambia.ParsedLog{
			{
				Checksum: cambia.Checksum{Integrity: cambia.IntegrityMatch},
				Tracks: []cambia.TrackEntry{
					{
						Num:         1,
						TestAndCopy: cambia.TestAndCopy{Integrity: cambia.IntegrityMismatch},
					},
				},
			},
		},
	}

	result, err := ev.Evaluate(parsed)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	found := false
	for _, f := range result.Flags {
		if f.Rule == "test_copy_mismatch" && f.Track == 1 {
			found = true
		}
	}
	if !found {
		t.Errorf("expected test_copy_mismatch flag for track 1, got %+v", result.Flags)
	}
}

func TestExprEvaluatorNoFlagsForCleanLog(t *testing.T) {
	ev, err := NewExprEvaluator(nil)
	if err != nil {
		t.Fatalf("NewExprEvaluator: %v", err)
	}

	parsed := &cambia.ParsedLogCombined{
		ParsedLogs: []cambia.ParsedLog{
			{
				Checksum: cambia.Checksum{Integrity: cambia.IntegrityMatch},
				ReadMode: cambia.ReadModeSecure,
				Tracks: []cambia.TrackEntry{
					{Num: 1, TestAndCopy: cambia.TestAndCopy{Integrity: cambia.IntegrityMatch}},
				},
			},
		},
	}

	result, err := ev.Evaluate(parsed)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if len(result.Flags) != 0 {
		t.Errorf("expected no flags, got %+v", result.Flags)
	}
}
