package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"github.com/cambia-project/cambia-go/internal/evaluate"
	"github.com/cambia-project/cambia-go/internal/parse"
	"github.com/cambia-project/cambia-go/pkg/cambia"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Interactively browse a parsed log",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))

	matchStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	mismatchStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	unknownStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func runInspect(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("cli: reading %q: %w", args[0], err)
	}

	evaluator, err := evaluate.NewExprEvaluator(nil)
	if err != nil {
		return fmt.Errorf("cli: building default evaluator: %w", err)
	}

	resp, parseErr := parse.Parse(raw, evaluator)
	if parseErr != nil {
		return fmt.Errorf("cli: %w", parseErr)
	}

	model := newInspectModel(args[0], resp)
	program := tea.NewProgram(model)
	_, err = program.Run()
	return err
}

// inspectModel is the bubbletea model backing `cambia inspect`: a header
// summary for the (first) sub-log plus a scrollable per-track table, colored
// via lipgloss by integrity/AccurateRip verdict.
type inspectModel struct {
	path  string
	resp  cambia.CambiaResponse
	table table.Model
}

func newInspectModel(path string, resp cambia.CambiaResponse) inspectModel {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Filename", Width: 28},
		{Title: "Test/Copy", Width: 12},
		{Title: "AccurateRip", Width: 14},
		{Title: "Errors", Width: 8},
	}

	var rows []table.Row
	if len(resp.Parsed.ParsedLogs) > 0 {
		for _, track := range resp.Parsed.ParsedLogs[0].Tracks {
			name := ""
			if len(track.Filenames) > 0 {
				name = ansi.Truncate(track.Filenames[0], 28, "…")
			}
			rows = append(rows, table.Row{
				fmt.Sprintf("%d", track.Num),
				name,
				track.TestAndCopy.Integrity.String(),
				arSummary(track.ARInfo),
				fmt.Sprintf("%d", trackErrorTotal(track)),
			})
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	return inspectModel{path: path, resp: resp, table: t}
}

func (m inspectModel) Init() tea.Cmd { return nil }

func (m inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m inspectModel) View() string {
	out := headerStyle.Render(fmt.Sprintf("cambia inspect: %s", m.path)) + "\n\n"

	if len(m.resp.Parsed.ParsedLogs) == 0 {
		return out + "no sub-logs recognized\n"
	}
	log := m.resp.Parsed.ParsedLogs[0]

	out += labelStyle.Render("ripper") + fmt.Sprintf(": %s %s\n", log.Ripper, log.RipperVersion)
	out += labelStyle.Render("drive") + fmt.Sprintf(": %s\n", log.Drive)
	out += labelStyle.Render("media") + fmt.Sprintf(": %s   ", log.MediaType)
	out += labelStyle.Render("mode") + fmt.Sprintf(": %s\n", log.ReadMode)
	out += labelStyle.Render("checksum") + ": " + integrityStyle(log.Checksum.Integrity) + "\n\n"
	out += m.table.View() + "\n\n"
	out += labelStyle.Render("q to quit, arrows/j/k to scroll") + "\n"

	return out
}

func integrityStyle(i cambia.Integrity) string {
	switch i {
	case cambia.IntegrityMatch:
		return matchStyle.Render(i.String())
	case cambia.IntegrityMismatch:
		return mismatchStyle.Render(i.String())
	default:
		return unknownStyle.Render(i.String())
	}
}

func arSummary(units []cambia.AccurateRipUnit) string {
	if len(units) == 0 {
		return cambia.ARStatusDisabled.String()
	}
	return units[0].Status.String()
}

func trackErrorTotal(t cambia.TrackEntry) int {
	e := t.Errors
	return e.Read.Count + e.Skip.Count + e.JitterGeneric.Count + e.JitterEdge.Count +
		e.JitterAtom.Count + e.Drift.Count + e.Dropped.Count + e.Duplicated.Count +
		e.DamagedSectors.Count + e.InconsistentErrSector.Count + e.MissingSamples.Count
}
