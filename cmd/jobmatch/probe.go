package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/jobmatch/internal/integrations"
	"github.com/jonathan/jobmatch/internal/server"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"go.uber.org/zap"
)

// Probe names accepted on the command line.
const (
	probeSearch    = "search"
	probeAnswer    = "answer"
	probeEmbedding = "embedding"
	probeWarehouse = "warehouse"
)

var allProbes = []string{probeSearch, probeAnswer, probeEmbedding, probeWarehouse}

var probeCmd = &cobra.Command{
	Use:       "probe [search|answer|embedding|warehouse]...",
	Short:     "Call the external integrations once and print what they return",
	Long:      "Runs the named integration calls in parallel (all of them when none are named) using the configured credentials.",
	ValidArgs: allProbes,
	Args:      cobra.OnlyValidArgs,
	RunE:      runProbe,
}

func init() {
	rootCmd.AddCommand(probeCmd)
}

func runProbe(cmd *cobra.Command, args []string) error {
	names := args
	if len(names) == 0 {
		names = allProbes
	}

	set, err := integrations.NewSet(cmd.Context(), *appConfig, appLogger)
	if err != nil {
		return fmt.Errorf("failed to configure integrations: %w", err)
	}
	defer func() {
		if err := set.Close(); err != nil {
			appLogger.Warn("failed to close integrations", zap.Error(err))
		}
	}()

	return probeAll(cmd.Context(), cmd.OutOrStdout(), server.IntegrationsFrom(set), names)
}

// probeAll runs the named probes concurrently and prints their results in the given order.
// The first failure cancels the remaining probes.
func probeAll(ctx context.Context, w io.Writer, deps server.Integrations, names []string) error {
	results := make([]string, len(names))
	done := make([]bool, len(names))

	g, gctx := errgroup.WithContext(ctx)
	for i, name := range names {
		g.Go(func() error {
			out, err := probeOne(gctx, deps, name)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			results[i], done[i] = out, true
			return nil
		})
	}
	err := g.Wait()

	for i, name := range names {
		if !done[i] {
			continue
		}
		fmt.Fprintf(w, "== %s ==\n%s\n", name, results[i])
	}
	return err
}

func probeOne(ctx context.Context, deps server.Integrations, name string) (string, error) {
	switch name {
	case probeSearch:
		if deps.Search == nil {
			return "", &integrations.ErrNotConfigured{Integration: integrations.NameSearch}
		}
		result, err := deps.Search.Search(ctx)
		if err != nil {
			return "", err
		}
		return strings.Join(result.FormattedOutput, "\n"), nil
	case probeAnswer:
		if deps.Answer == nil {
			return "", &integrations.ErrNotConfigured{Integration: integrations.NameAnswer}
		}
		return deps.Answer.Generate(ctx)
	case probeEmbedding:
		if deps.Embedding == nil {
			return "", &integrations.ErrNotConfigured{Integration: integrations.NameEmbedding}
		}
		return deps.Embedding.Generate(ctx)
	case probeWarehouse:
		if deps.Warehouse == nil {
			return "", &integrations.ErrNotConfigured{Integration: integrations.NameWarehouse}
		}
		rows, err := deps.Warehouse.Query(ctx)
		if err != nil {
			return "", err
		}
		data, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to encode rows: %w", err)
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("unknown probe %q", name)
	}
}
