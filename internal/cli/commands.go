package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/NeuroGhostOutput/Decentralized-Ethical-Protocol-Framework/internal/config"
	"github.com/NeuroGhostOutput/Decentralized-Ethical-Protocol-Framework/internal/engine"
	"github.com/NeuroGhostOutput/Decentralized-Ethical-Protocol-Framework/internal/logging"
	"github.com/NeuroGhostOutput/Decentralized-Ethical-Protocol-Framework/internal/model"
	"github.com/NeuroGhostOutput/Decentralized-Ethical-Protocol-Framework/internal/report"
	"github.com/NeuroGhostOutput/Decentralized-Ethical-Protocol-Framework/internal/rules"
	"github.com/NeuroGhostOutput/Decentralized-Ethical-Protocol-Framework/internal/tui"
)

// ErrThreshold is returned when --fail-on matched a finding.
var ErrThreshold = errors.New("fail-on threshold met")

type globalOptions struct {
	configPath string
	debug      bool
}

func AddCommands(root *cobra.Command) {
	opts := &globalOptions{}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (default: nearest "+config.FileName+")")
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")

	root.AddCommand(newAuditCmd(opts))
	root.AddCommand(newTestCmd(opts))
	root.AddCommand(newPatchCmd(opts))
	root.AddCommand(newInitCmd())
	root.AddCommand(newRulesCmd())
}

// setup loads config relative to startDir and builds the engine with a zap logger.
func (o *globalOptions) setup(startDir string) (*engine.Engine, *zap.SugaredLogger, error) {
	log, err := logging.New(o.debug)
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}
	cfg, used, err := config.Load(startDir, o.configPath)
	if err != nil {
		return nil, nil, err
	}
	if used != "" {
		log.Debugw("config loaded", "path", used)
	}
	eng, err := engine.New(cfg, engine.WithLogger(log))
	if err != nil {
		return nil, nil, err
	}
	return eng, log, nil
}

func newAuditCmd(opts *globalOptions) *cobra.Command {
	var (
		format        string
		failOn        string
		outputFile    string
		baselinePath  string
		writeBaseline string
		useTUI        bool
	)
	cmd := &cobra.Command{
		Use:   "audit [path...]",
		Short: "Audit Solidity contracts for known vulnerability signatures",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"."}
			}
			eng, log, err := opts.setup(args[0])
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			result, err := eng.Audit(ctx, model.AuditRequest{Paths: args, ConfigPath: opts.configPath, BaselinePath: baselinePath})
			if err != nil {
				return err
			}

			if useTUI {
				return tui.Run(result)
			}
			if err := render(cmd.OutOrStdout(), outputFile, format, result); err != nil {
				return err
			}
			if writeBaseline != "" {
				if err := engine.WriteBaseline(writeBaseline, result); err != nil {
					return fmt.Errorf("write baseline: %w", err)
				}
			}
			if failOn != "" {
				threshold := model.ParseSeverity(failOn)
				for _, f := range result.AllFindings() {
					if model.SeverityGTE(f.Severity, threshold) {
						return fmt.Errorf("%w: %s in %s", ErrThreshold, f.Severity, f.File)
					}
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format: table|json|sarif|markdown")
	cmd.Flags().StringVar(&failOn, "fail-on", "", "Fail if a finding of severity or higher is found (info|low|medium|high|critical)")
	cmd.Flags().StringVarP(&outputFile, "out", "o", "", "Write report to file")
	cmd.Flags().StringVar(&baselinePath, "baseline", "", "Suppress findings recorded in this baseline file")
	cmd.Flags().StringVar(&writeBaseline, "write-baseline", "", "Write a baseline file with finding fingerprints")
	cmd.Flags().BoolVar(&useTUI, "tui", false, "Render interactive TUI output")
	return cmd
}

func render(stdout io.Writer, outputFile, format string, result *model.AuditResult) error {
	var data []byte
	var err error
	switch format {
	case "json":
		data, err = report.ToJSON(result)
	case "sarif":
		data, err = report.ToSARIF(result)
	case "markdown", "md":
		data = []byte(report.ToMarkdown(result))
	case "table", "":
		if outputFile == "" {
			report.WriteTable(stdout, result)
			return nil
		}
		f, ferr := os.Create(outputFile)
		if ferr != nil {
			return ferr
		}
		defer f.Close()
		report.WriteTable(f, result)
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	if err != nil {
		return err
	}
	return emit(stdout, outputFile, data)
}

func emit(stdout io.Writer, outputFile string, data []byte) error {
	if outputFile != "" {
		return os.WriteFile(outputFile, data, 0o644)
	}
	_, err := fmt.Fprintln(stdout, string(data))
	return err
}

func newTestCmd(opts *globalOptions) *cobra.Command {
	var outputFile string
	cmd := &cobra.Command{
		Use:   "test <file>",
		Short: "Synthesize nominal and boundary test cases for a contract",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, _, err := opts.setup(args[0])
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(eng.TestCases(args[0]), "", "  ")
			if err != nil {
				return err
			}
			return emit(cmd.OutOrStdout(), outputFile, data)
		},
	}
	cmd.Flags().StringVarP(&outputFile, "out", "o", "", "Write test cases to file")
	return cmd
}

func newPatchCmd(opts *globalOptions) *cobra.Command {
	var (
		findingFile string
		line        int
		kind        string
		outputFile  string
	)
	cmd := &cobra.Command{
		Use:   "patch <file>",
		Short: "Render remediation guidance for one finding",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := findingFromFlags(findingFile, kind, line)
			if err != nil {
				return err
			}
			eng, _, err := opts.setup(args[0])
			if err != nil {
				return err
			}
			p, err := eng.Patch(args[0], f)
			if err != nil {
				return err
			}
			return emit(cmd.OutOrStdout(), outputFile, []byte(p.Text))
		},
	}
	cmd.Flags().StringVar(&findingFile, "finding", "", "JSON file holding one finding as emitted by audit --format json")
	cmd.Flags().IntVar(&line, "line", 0, "1-based line of the finding")
	cmd.Flags().StringVar(&kind, "kind", "", "Finding kind or display name")
	cmd.Flags().StringVarP(&outputFile, "out", "o", "", "Write patch to file")
	return cmd
}

func findingFromFlags(findingFile, kind string, line int) (model.Finding, error) {
	if findingFile != "" {
		data, err := os.ReadFile(findingFile)
		if err != nil {
			return model.Finding{}, err
		}
		var f model.Finding
		if err := json.Unmarshal(data, &f); err != nil {
			return model.Finding{}, fmt.Errorf("parse finding: %w", err)
		}
		return f, nil
	}
	if kind == "" {
		return model.Finding{}, errors.New("either --finding or --kind with --line is required")
	}
	k, ok := rules.ParseKind(kind)
	if !ok {
		return model.Finding{}, fmt.Errorf("unknown kind %q", kind)
	}
	r, _ := rules.Lookup(k)
	if line <= 0 {
		return model.Finding{Kind: k, Name: r.Name, Severity: r.Severity, Locations: []model.Location{}}, nil
	}
	return model.NewFinding(k, r.Name, r.Severity, 0, model.Location{LineNumber: line}), nil
}
