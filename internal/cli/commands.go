package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jordanbenzacken/checkmysmartcontract/internal/config"
	"github.com/jordanbenzacken/checkmysmartcontract/internal/engine"
	"github.com/jordanbenzacken/checkmysmartcontract/internal/model"
	"github.com/jordanbenzacken/checkmysmartcontract/internal/preprocess"
	"github.com/jordanbenzacken/checkmysmartcontract/internal/report"
	"github.com/jordanbenzacken/checkmysmartcontract/internal/server"
	"github.com/jordanbenzacken/checkmysmartcontract/internal/store"
	"github.com/jordanbenzacken/checkmysmartcontract/internal/tui"
)

func AddCommands(root *cobra.Command) {
	root.AddCommand(newScanCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newHistoryCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newRulesCmd())
}

func newScanCmd() *cobra.Command {
	var (
		format        string
		outputFile    string
		failOn        string
		useTUI        bool
		baselinePath  string
		writeBaseline string
	)
	cmd := &cobra.Command{
		Use:   "scan [file]",
		Short: "Analyze a contract source file (or stdin) for vulnerability patterns",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, dir, err := readSource(args)
			if err != nil {
				return err
			}
			cfg, _, _ := config.Load(dir)

			result := engine.New().Analyze(source)

			// The engine's sequence is final; everything below only
			// shapes what gets rendered.
			findings := result.Findings
			lines := preprocess.Lines(source)
			findings = engine.ApplyIgnores(findings, lines, cfg)
			findings = engine.FilterByRules(findings, cfg)
			findings = engine.FilterBySeverity(findings, cfg.SeverityThreshold)
			if baselinePath != "" {
				fingerprints, err := engine.LoadBaseline(baselinePath)
				if err != nil {
					return fmt.Errorf("failed to load baseline: %w", err)
				}
				findings = engine.FilterByBaseline(findings, fingerprints)
			}

			if useTUI {
				return tui.Run(findings)
			}
			switch format {
			case "json":
				data, _ := json.MarshalIndent(analyzeOutput{Results: findings, Elapsed: result.Elapsed.String()}, "", "  ")
				if outputFile != "" {
					return os.WriteFile(outputFile, data, 0o644)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
			case "sarif":
				data, err := report.ToSARIF(findings)
				if err != nil {
					return err
				}
				if outputFile != "" {
					return os.WriteFile(outputFile, data, 0o644)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
			default:
				report.WriteTable(cmd.OutOrStdout(), findings)
			}

			if writeBaseline != "" {
				if err := engine.WriteBaseline(writeBaseline, findings); err != nil {
					return err
				}
			}
			if failOn != "" {
				threshold := model.ParseSeverity(failOn)
				for _, f := range findings {
					if model.SeverityGTE(f.Severity, threshold) {
						return fmt.Errorf("fail-on threshold met: %s", f.Severity)
					}
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format: table|json|sarif")
	cmd.Flags().StringVarP(&outputFile, "out", "o", "", "Write report to file (with --format json|sarif)")
	cmd.Flags().StringVar(&failOn, "fail-on", "", "Fail if a finding of severity or higher is found (low|medium|high)")
	cmd.Flags().BoolVar(&useTUI, "tui", false, "Render interactive TUI output")
	cmd.Flags().StringVar(&baselinePath, "baseline", "", "Suppress findings listed in a baseline file")
	cmd.Flags().StringVar(&writeBaseline, "write-baseline", "", "Write a baseline file with finding fingerprints")
	return cmd
}

type analyzeOutput struct {
	Results []model.Finding `json:"results"`
	Elapsed string          `json:"elapsed"`
}

func readSource(args []string) (source, dir string, err error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("failed to read stdin: %w", err)
		}
		wd, _ := os.Getwd()
		return string(b), wd, nil
	}
	b, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	return string(b), filepath.Dir(args[0]), nil
}

func newServeCmd() *cobra.Command {
	var (
		port    string
		dbPath  string
		noStore bool
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP analysis service",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := hclog.New(&hclog.LoggerOptions{Name: "checkmysmartcontract", Level: hclog.Info})
			wd, _ := os.Getwd()
			cfg, _, _ := config.Load(wd)
			if port == "" {
				port = cfg.Server.Port
			}
			if dbPath == "" {
				dbPath = cfg.Server.DatabasePath
			}

			var st *store.Store
			if !noStore {
				var err error
				st, err = store.Open(dbPath, log)
				if err != nil {
					// History is a collaborator, not a dependency of
					// the engine; serve without it.
					log.Warn("history disabled", "error", err)
					st = nil
				} else {
					defer st.Close()
				}
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return server.New(engine.New(), st, log).Start(ctx, port)
		},
	}
	cmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on")
	cmd.Flags().StringVar(&dbPath, "db", "", "Path to the history database")
	cmd.Flags().BoolVar(&noStore, "no-persist", false, "Disable analysis history persistence")
	return cmd
}

func newHistoryCmd() *cobra.Command {
	var (
		userID string
		dbPath string
		limit  int
	)
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List persisted analyses for a user, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := store.Open(dbPath, hclog.NewNullLogger())
			if err != nil {
				return err
			}
			defer st.Close()
			records, err := st.ListHistory(userID, limit)
			if err != nil {
				return err
			}
			for _, rec := range records {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %d finding(s)\n", rec.CreatedAt.Format("2006-01-02 15:04:05"), rec.ID, len(rec.Findings))
				for _, f := range rec.Findings {
					fmt.Fprintf(cmd.OutOrStdout(), "  - %s [%s] line %d: %s\n", f.RuleID, f.Severity, f.Line, f.Message)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&userID, "user", "u", "", "User id to list history for")
	cmd.Flags().StringVar(&dbPath, "db", "", "Path to the history database")
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of records")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
