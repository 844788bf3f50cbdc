package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"github.com/jonathan/jobmatch/internal/export"
	"github.com/jonathan/jobmatch/internal/matching"
	"github.com/jonathan/jobmatch/internal/observability"
	"github.com/jonathan/jobmatch/internal/schemas"
	"github.com/jonathan/jobmatch/internal/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate [requirement.json]",
	Short: "Score a job requirement and list simulations and recommendations",
	Long:  "Scores a job requirement read from a JSON file (or the default requirement when no file is given) and prints the match, the improving single-field changes and the recommendations.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runEvaluate,
}

var (
	evaluateFormat string
	evaluateOutput string
)

var evaluateFormats = []string{"text", "table", "json", "export", "summary"}

func init() {
	evaluateCmd.Flags().StringVarP(&evaluateFormat, "format", "f", "text", "Output format: text, table, json, export or summary")
	evaluateCmd.Flags().StringVarP(&evaluateOutput, "output", "o", "", "Write to a file instead of stdout")
	rootCmd.AddCommand(evaluateCmd)
}

// loadRequirement reads a requirement document, checking it against the schema and the
// struct rules. An empty path yields the default requirement.
func loadRequirement(path string) (types.JobRequirement, error) {
	if path == "" {
		return types.DefaultRequirement(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return types.JobRequirement{}, fmt.Errorf("failed to read requirement: %w", err)
	}

	if err := schemas.ValidateRequirement(data); err != nil {
		return types.JobRequirement{}, err
	}

	var req types.JobRequirement
	if err := json.Unmarshal(data, &req); err != nil {
		return types.JobRequirement{}, fmt.Errorf("failed to parse requirement: %w", err)
	}
	if err := req.Validate(); err != nil {
		return types.JobRequirement{}, fmt.Errorf("invalid requirement: %w", err)
	}
	return req, nil
}

func runEvaluate(cmd *cobra.Command, args []string) (err error) {
	if !slices.Contains(evaluateFormats, evaluateFormat) {
		return unknownFormatError(evaluateFormat)
	}

	var path string
	if len(args) == 1 {
		path = args[0]
	}

	req, err := loadRequirement(path)
	if err != nil {
		return err
	}

	eval := matching.Evaluate(req)
	appLogger.Debug("requirement evaluated",
		zap.String("source", path),
		zap.Int("match_count", eval.Match.MatchCount),
		zap.Int("simulations", len(eval.Simulations)),
		zap.Int("recommendations", len(eval.Recommendations)),
	)

	out := cmd.OutOrStdout()
	if evaluateOutput != "" {
		f, err := os.Create(evaluateOutput)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("failed to close output file: %w", cerr)
			}
		}()
		out = f
	}

	return writeEvaluation(out, eval, evaluateFormat, time.Now())
}

// writeEvaluation renders eval in the given format. now stamps the export document.
func writeEvaluation(w io.Writer, eval matching.Evaluation, format string, now time.Time) error {
	switch format {
	case "text":
		p := observability.NewPrinter(w)
		p.PrintRequirements(eval.Requirements)
		p.PrintMatch(eval.Match, nil)
		p.PrintSimulations(eval.Simulations)
		p.PrintRecommendations(eval.Recommendations)
		return nil
	case "table":
		return writeTables(w, eval)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(eval)
	case "export":
		data, err := export.NewDocument(eval.Requirements, eval.Match, now).MarshalIndent()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "summary":
		text, err := export.Summary(eval.Requirements, eval.Match)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, text)
		return err
	default:
		return unknownFormatError(format)
	}
}

func unknownFormatError(format string) error {
	return fmt.Errorf("unknown format %q (want text, table, json, export or summary)", format)
}
