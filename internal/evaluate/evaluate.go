// Package evaluate provides a default, replaceable implementation of the
// downstream scoring stage: given a parsed log, produce the
// CambiaResponse.Evaluation field. It is deliberately thin, a small ordered
// rule list rather than a real scoring engine, so callers see a working
// example of the seam.
package evaluate

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/cambia-project/cambia-go/pkg/cambia"
)

// Evaluator produces an evaluation result for a parsed log. parse.Parse
// attaches the result verbatim to CambiaResponse.Evaluation; a nil
// Evaluator leaves that field absent from the JSON output.
type Evaluator interface {
	Evaluate(*cambia.ParsedLogCombined) (Result, error)
}

// Flag is one rule that matched a particular sub-log and, optionally, track.
type Flag struct {
	Rule  string `json:"rule"`
	Log   int    `json:"log"`
	Track int    `json:"track,omitempty"`
}

// Result is the evaluator's output: every flag raised across every sub-log
// and track in the input. Flags are grouped by sub-log; within one, the
// log-level flags come first, then each track's flags in track order, each
// group in rule order.
type Result struct {
	Flags []Flag `json:"flags"`
}

// Rule is one named, compiled expr-lang boolean expression. A LogOnly rule is
// evaluated once per sub-log (against logEnv); any other rule is evaluated
// once per track within that sub-log (against a merged logEnv+trackEnv) and
// not at the sub-log level.
type Rule struct {
	Name    string
	Expr    string
	LogOnly bool
}

// DefaultRules is a small set of example rules exercising the fields most
// worth flagging: a failed authenticity check, an AccurateRip mismatch, and
// any extraction error count above zero.
var DefaultRules = []Rule{
	{Name: "signature_mismatch", Expr: `checksum_integrity == "Mismatch"`, LogOnly: true},
	{Name: "burst_mode_used", Expr: `read_mode == "Burst"`, LogOnly: true},
	{Name: "accuraterip_mismatch", Expr: `ar_status == "Mismatch"`},
	{Name: "test_copy_mismatch", Expr: `test_copy_integrity == "Mismatch"`},
	{Name: "has_read_errors", Expr: `read_errors > 0 || damaged_sectors > 0`},
}

// ExprEvaluator evaluates DefaultRules (or a caller-supplied rule set)
// against a flattened map[string]any view of each log/track using
// github.com/expr-lang/expr, compiling every rule once at construction.
type ExprEvaluator struct {
	rules    []Rule
	programs []*vm.Program
}

// NewExprEvaluator compiles rules once; subsequent Evaluate calls only run
// the pre-compiled programs.
func NewExprEvaluator(rules []Rule) (*ExprEvaluator, error) {
	if rules == nil {
		rules = DefaultRules
	}

	programs := make([]*vm.Program, len(rules))
	for i, r := range rules {
		env := logEnvShape()
		if !r.LogOnly {
			for k, v := range trackEnvShape() {
				env[k] = v
			}
		}

		program, err := expr.Compile(r.Expr, expr.Env(env), expr.AsBool())
		if err != nil {
			return nil, fmt.Errorf("evaluate: compiling rule %q: %w", r.Name, err)
		}
		programs[i] = program
	}

	return &ExprEvaluator{rules: rules, programs: programs}, nil
}

// Evaluate runs each LogOnly rule once per sub-log and each other rule once
// per track of that sub-log, collecting a Flag for each match.
func (e *ExprEvaluator) Evaluate(parsed *cambia.ParsedLogCombined) (Result, error) {
	var result Result

	for logIdx, log := range parsed.ParsedLogs {
		env := logEnv(log)

		for i, r := range e.rules {
			if !r.LogOnly {
				continue
			}
			matched, err := runRule(e.programs[i], env)
			if err != nil {
				return result, fmt.Errorf("evaluate: rule %q on log %d: %w", r.Name, logIdx, err)
			}
			if matched {
				result.Flags = append(result.Flags, Flag{Rule: r.Name, Log: logIdx})
			}
		}

		for trackIdx, track := range log.Tracks {
			merged := make(map[string]any, len(env)+4)
			for k, v := range env {
				merged[k] = v
			}
			for k, v := range trackEnv(track) {
				merged[k] = v
			}

			for i, r := range e.rules {
				if r.LogOnly {
					continue
				}
				matched, err := runRule(e.programs[i], merged)
				if err != nil {
					return result, fmt.Errorf("evaluate: rule %q on log %d track %d: %w", r.Name, logIdx, trackIdx, err)
				}
				if matched {
					result.Flags = append(result.Flags, Flag{Rule: r.Name, Log: logIdx, Track: track.Num})
				}
			}
		}
	}

	return result, nil
}

func runRule(program *vm.Program, env map[string]any) (bool, error) {
	out, err := expr.Run(program, env)
	if err != nil {
		return false, err
	}
	b, ok := out.(bool)
	return ok && b, nil
}

func logEnvShape() map[string]any {
	return map[string]any{
		"checksum_integrity": "",
		"read_mode":          "",
		"ripper":             "",
	}
}

func trackEnvShape() map[string]any {
	return map[string]any{
		"ar_status":           "",
		"test_copy_integrity": "",
		"read_errors":         0,
		"damaged_sectors":     0,
	}
}

func logEnv(log cambia.ParsedLog) map[string]any {
	return map[string]any{
		"checksum_integrity": log.Checksum.Integrity.String(),
		"read_mode":          log.ReadMode.String(),
		"ripper":             log.Ripper.String(),
	}
}

func trackEnv(track cambia.TrackEntry) map[string]any {
	status := "Disabled"
	if len(track.ARInfo) > 0 {
		status = track.ARInfo[0].Status.String()
		for _, unit := range track.ARInfo {
			if unit.Status.String() == "Mismatch" {
				status = "Mismatch"
				break
			}
		}
	}

	return map[string]any{
		"ar_status":           status,
		"test_copy_integrity": track.TestAndCopy.Integrity.String(),
		"read_errors":         track.Errors.Read.Count,
		"damaged_sectors":     track.Errors.DamagedSectors.Count,
	}
}
