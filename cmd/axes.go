// File: cmd/axes.go
package cmd

import (
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/pierrepo/principal-axes/internal/config"
	"github.com/pierrepo/principal-axes/internal/inertia"
	"github.com/pierrepo/principal-axes/internal/observability"
	"github.com/pierrepo/principal-axes/internal/pdb"
	"github.com/pierrepo/principal-axes/internal/render"
)

// newAxesCmd creates and configures the `axes` command.
func newAxesCmd() *cobra.Command {
	axesCmd := &cobra.Command{
		Use:   "axes [file.pdb...]",
		Short: "Computes the principal axes of the CA backbone of each input structure",
		Args:  cobra.MinimumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			// Bind flags to their corresponding Viper keys so command-line
			// flags correctly override values from the config file and
			// environment variables.
			if err := viper.BindPFlag("render.scale", cmd.Flags().Lookup("scale")); err != nil {
				return err
			}
			if err := viper.BindPFlag("render.line_width", cmd.Flags().Lookup("line-width")); err != nil {
				return err
			}
			if err := viper.BindPFlag("report.format", cmd.Flags().Lookup("format")); err != nil {
				return err
			}
			return viper.BindPFlag("compute.jobs", cmd.Flags().Lookup("jobs"))
		},
		RunE: runAxes,
	}

	axesCmd.Flags().Float64("scale", 20, "Base axis length in render units. (Overrides config/env)")
	axesCmd.Flags().Int("line-width", 4, "Line width in the generated script. (Overrides config/env)")
	axesCmd.Flags().StringP("format", "f", "pml", "Format of the axes file ('pml' or 'json').")
	axesCmd.Flags().IntP("jobs", "j", 1, "Number of input files processed concurrently.")

	return axesCmd
}

func runAxes(cmd *cobra.Command, args []string) error {
	logger := observability.GetLogger()

	// Re-unmarshal the config. Now that flags are bound in PreRunE, Viper
	// applies the overrides with the right precedence.
	cfg := config.Get()
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("failed to re-unmarshal config with flag overrides: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Check every input up front. A missing file aborts the whole run before
	// any output is produced.
	for _, path := range args {
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("input file %s does not seem to exist", path)
		}
	}

	runID := uuid.New().String()
	logger.Info("Starting principal axes computation",
		zap.String("runID", runID),
		zap.Strings("inputs", args),
		zap.Float64("scale", cfg.Render.Scale),
		zap.String("format", cfg.Report.Format),
		zap.Int("jobs", cfg.Compute.Jobs),
	)

	// reportMu keeps per-file console reports whole when jobs > 1.
	var reportMu sync.Mutex

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(cfg.Compute.Jobs)
	for _, path := range args {
		path := path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			summary, outPath, err := processFile(path, cfg)
			if err != nil {
				logger.Error("Input failed", zap.String("input", path), zap.Error(err))
				return fmt.Errorf("%s: %w", path, err)
			}
			reportMu.Lock()
			render.Report(cmd.OutOrStdout(), summary, outPath)
			reportMu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("Run completed", zap.String("runID", runID))
	return nil
}

// processFile runs the pipeline for one structure: extract the CA
// coordinates, compute the ordered axes and write the visualization script.
// It returns the summary for console reporting along with the script path.
func processFile(path string, cfg *config.Config) (*render.Summary, string, error) {
	points, err := pdb.Extract(path)
	if err != nil {
		return nil, "", err
	}

	result, err := inertia.ComputeAxes(points)
	if err != nil {
		return nil, "", err
	}

	summary := &render.Summary{
		Input:     path,
		AtomCount: len(points),
		Scale:     cfg.Render.Scale,
		LineWidth: cfg.Render.LineWidth,
		Result:    result,
		Segments:  result.Segments(cfg.Render.Scale),
	}

	outPath := render.OutputPath(path, cfg.Report.Format)
	reporter, err := render.New(cfg.Report.Format, outPath)
	if err != nil {
		return nil, "", err
	}
	if err := reporter.Write(summary); err != nil {
		reporter.Close()
		return nil, "", err
	}
	if err := reporter.Close(); err != nil {
		return nil, "", fmt.Errorf("close %s: %w", outPath, err)
	}

	return summary, outPath, nil
}
