package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/standinlib/standin"
)

var (
	kindStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	stepStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	visibleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	invisibleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	mismatchedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

// scenarioFile is the YAML shape accepted by --scenario.
type scenarioFile struct {
	Initial string `yaml:"initial"`
	Mutated string `yaml:"mutated"`
}

// demoParams holds the parsed flags for the demo command.
type demoParams struct {
	scenarioPath string
	stdout       io.Writer
}

// runDemo is the extracted, testable body of the demo command. It runs the
// canonical scenario against both realizations and fails if either observed
// transcript diverges from the visibility contract.
func runDemo(p demoParams) error {
	initial := standin.DefaultPayload
	mutated := "This is the mutated string"

	if p.scenarioPath != "" {
		loaded, err := loadScenarioFile(p.scenarioPath)
		if err != nil {
			return err
		}

		if loaded.Initial != "" {
			initial = loaded.Initial
		}

		if loaded.Mutated != "" {
			mutated = loaded.Mutated
		}
	}

	for _, kind := range []string{standin.KindValue, standin.KindShared} {
		scenario := standin.Scenario{Kind: kind, Initial: initial, Mutated: mutated}

		logger.Info("running scenario", "kind", kind, "initial", initial, "mutated", mutated)

		rec, err := scenario.Run()
		if err != nil {
			return err
		}

		fmt.Fprintln(p.stdout, renderTranscript(kind, rec.Transcript()))

		diff, err := scenario.Verify()
		if err != nil {
			return err
		}

		if diff != "" {
			fmt.Fprintln(p.stdout, mismatchedStyle.Render("contract violated:"))
			fmt.Fprintln(p.stdout, diff)

			return fmt.Errorf("observed %s transcript diverges from the visibility contract", kind)
		}

		logger.Info("contract holds", "kind", kind)
	}

	return nil
}

// renderTranscript lays out one scenario's transcript with a kind header and
// a closing verdict line.
func renderTranscript(kind, transcript string) string {
	var builder strings.Builder

	builder.WriteString(kindStyle.Render(kind+" double") + "\n")

	for line := range strings.Lines(strings.TrimSuffix(transcript, "\n")) {
		builder.WriteString("  " + stepStyle.Render(strings.TrimSuffix(line, "\n")) + "\n")
	}

	verdict := visibleStyle.Render("mutation visible after capture")
	if kind == standin.KindValue {
		verdict = invisibleStyle.Render("mutation invisible after capture")
	}

	builder.WriteString("  " + verdict)

	return builder.String()
}

// loadScenarioFile reads payload overrides from a YAML file.
func loadScenarioFile(path string) (scenarioFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return scenarioFile{}, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var loaded scenarioFile
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return scenarioFile{}, fmt.Errorf("failed to parse scenario file %s: %w", path, err)
	}

	return loaded, nil
}

func newDemoCmd() *cobra.Command {
	var scenarioPath string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the capture scenario against both realizations",
		Long: `Run the construct -> capture -> mutate -> report scenario against a
value double and a shared double, print both transcripts, and verify
each against the visibility contract.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(demoParams{
				scenarioPath: scenarioPath,
				stdout:       os.Stdout,
			})
		},
	}

	cmd.Flags().StringVar(&scenarioPath, "scenario", "",
		"YAML file with 'initial' and 'mutated' payload overrides")

	return cmd
}
