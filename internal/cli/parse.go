package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cambia-project/cambia-go/internal/archive"
	"github.com/cambia-project/cambia-go/internal/evaluate"
	"github.com/cambia-project/cambia-go/internal/localize"
	"github.com/cambia-project/cambia-go/internal/parse"
	"github.com/cambia-project/cambia-go/pkg/cambia"
)

var (
	saveLogsDir     string
	compressArchive bool
	humanOutput     bool
	noEvaluate      bool
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>...",
	Short: "Parse one or more ripper log files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().StringVar(&saveLogsDir, "save-logs", "", "archive raw input under this directory, keyed by content hash")
	parseCmd.Flags().BoolVar(&compressArchive, "compress-archive", false, "store archived logs xz-compressed (requires --save-logs)")
	parseCmd.Flags().BoolVar(&humanOutput, "human", false, "print a human-readable summary instead of JSON")
	parseCmd.Flags().BoolVar(&noEvaluate, "no-evaluate", false, "skip the default rule evaluator")
}

// runParse reads each path, archives it if requested, and prints the parsed
// result. Exit is non-zero only on I/O failure: a parse that yields
// Checksum.Integrity = Mismatch, or even ErrCouldNotParse, is still
// reported and the command still exits 0.
func runParse(cmd *cobra.Command, args []string) error {
	var store *archive.Store
	if saveLogsDir != "" {
		s, err := archive.New(saveLogsDir, archive.WithCompression(compressArchive))
		if err != nil {
			return err
		}
		store = s
	}

	var evaluator evaluate.Evaluator
	if !noEvaluate {
		ev, err := evaluate.NewExprEvaluator(nil)
		if err != nil {
			return fmt.Errorf("cli: building default evaluator: %w", err)
		}
		evaluator = ev
	}

	for _, path := range args {
		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("cli: reading %q: %w", path, err)
		}

		if store != nil {
			id := cambia.ResponseID(raw)
			if _, err := store.Save(id, raw); err != nil {
				return fmt.Errorf("cli: archiving %q: %w", path, err)
			}
		}

		resp, parseErr := parse.Parse(raw, evaluator)
		if parseErr != nil {
			printParseError(path, parseErr)
			continue
		}

		if humanOutput {
			printHuman(path, resp)
		} else {
			printJSON(resp)
		}
	}

	return nil
}

func printParseError(path string, err error) {
	line := struct {
		Path  string `json:"path"`
		Error string `json:"error"`
	}{Path: path, Error: err.Error()}

	if humanOutput {
		fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
		return
	}
	out, _ := json.Marshal(line)
	fmt.Println(string(out))
}

func printJSON(resp cambia.CambiaResponse) {
	out, err := json.Marshal(resp)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cli: marshaling response: %v\n", err)
		return
	}
	fmt.Println(string(out))
}

func printHuman(path string, resp cambia.CambiaResponse) {
	p := localize.Printer()
	p.Printf("%s\n", path)
	for i, log := range resp.Parsed.ParsedLogs {
		p.Printf("  log %d: ripper=%s version=%s drive=%q media=%s mode=%s\n",
			i, log.Ripper, log.RipperVersion, log.Drive, log.MediaType, log.ReadMode)
		p.Printf("    checksum: %s\n", log.Checksum.Integrity)
		p.Printf("    tracks: %d\n", len(log.Tracks))
	}
}
