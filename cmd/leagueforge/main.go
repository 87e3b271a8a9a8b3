package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/derekprior/leagueforge/internal/config"
	"github.com/derekprior/leagueforge/internal/csvio"
	"github.com/derekprior/leagueforge/internal/model"
	"github.com/derekprior/leagueforge/internal/postprocessor"
	"github.com/derekprior/leagueforge/internal/preprocessor"
	"github.com/derekprior/leagueforge/internal/report"
	"github.com/derekprior/leagueforge/internal/solver"
	"github.com/derekprior/leagueforge/internal/validator"
	"github.com/derekprior/leagueforge/internal/xlsx"
)

const defaultConfigFile = "config.yaml"

func resolveConfigPath(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if _, err := os.Stat(defaultConfigFile); err == nil {
		return defaultConfigFile, nil
	}
	return "", fmt.Errorf("no config file found. Either create %s in the current directory or pass the path as an argument", defaultConfigFile)
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "leagueforge",
		Short: "Sports-league schedule generator",
	}

	var outputFile, seedSearch string
	generateCmd := &cobra.Command{
		Use:          "generate [config.yaml]",
		Short:        "Generate a schedule from a config file",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, err := resolveConfigPath(args)
			if err != nil {
				return err
			}
			return runGenerate(configPath, outputFile, seedSearch)
		},
	}
	generateCmd.Flags().StringVarP(&outputFile, "output", "o", "schedule.xlsx", "Output Excel file path")
	generateCmd.Flags().StringVar(&seedSearch, "seed-search", "", "try seeds first:last and keep the first that reaches a full assignment with the fewest post-processor failures")

	validateCmd := &cobra.Command{
		Use:          "validate [config.yaml] <schedule.xlsx>",
		Short:        "Validate a workbook against the config's blackouts and window constraints",
		Args:         cobra.RangeArgs(1, 2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 2 {
				return runValidate(args[0], args[1])
			}
			configPath, err := resolveConfigPath(nil)
			if err != nil {
				return err
			}
			return runValidate(configPath, args[0])
		},
	}

	reportCmd := &cobra.Command{
		Use:          "report <schedule.xlsx>",
		Short:        "Print schedule quality metrics for an already-generated workbook",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(args[0])
		},
	}

	var initOutputPath string
	initCmd := &cobra.Command{
		Use:          "init",
		Short:        "Create a starter config.yaml in the current directory",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(initOutputPath)
		},
	}
	initCmd.Flags().StringVarP(&initOutputPath, "output", "o", defaultConfigFile, "Output path for the config file")

	rootCmd.AddCommand(generateCmd, validateCmd, initCmd, reportCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runInit(outputPath string) error {
	if _, err := os.Stat(outputPath); err == nil {
		return fmt.Errorf("%s already exists; remove it first or use -o to write elsewhere", outputPath)
	}
	if err := os.WriteFile(outputPath, []byte(configTemplate), 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	fmt.Printf("✓ Created %s\n", outputPath)
	return nil
}

const configTemplate = `# leagueforge run configuration
# ==============================
# input_dir should contain teams.csv, matchups.csv, gameslots.csv,
# blackouts.csv, and (optionally) preassignments.csv.

seed: 1
input_dir: ./data
output_dir: ./out

# window_constraints caps a team to at most max_games selected games in any
# days-long sliding window.
window_constraints:
  - days: 7
    max_games: 3
  - days: 4
    max_games: 2

# scarce_locations names locations with too few slots to comfortably host
# every matchup whose preferred home team lives there.
scarce_locations: []

# dead_end_budget bounds Phase 2 backtracking before the solver gives up.
dead_end_budget: 10000
`

// buildWorld ingests every CSV record kind and the YAML window constraints
// into a fresh World for the given seed, without running the pipeline.
func buildWorld(cfg *config.Config, seed int64) (*model.World, []model.Preassignment, error) {
	w := model.NewWorld(seed)
	if err := csvio.IngestAll(cfg.InputDir, w); err != nil {
		return nil, nil, fmt.Errorf("ingesting CSV input: %w", err)
	}
	for _, name := range cfg.ScarceLocations {
		id, ok := w.LocationByName(name)
		if !ok {
			return nil, nil, fmt.Errorf("scarce_locations names unknown location %q", name)
		}
		w.Location(id).IsScarce = true
	}
	for _, wc := range cfg.WindowConstraints {
		w.WindowConstraints = append(w.WindowConstraints, model.WindowConstraint{
			WindowSize:       wc.Days,
			MaxGamesInWindow: wc.MaxGames,
		})
	}

	preassignments, err := csvio.IngestPreassignments(filepath.Join(cfg.InputDir, "preassignments.csv"))
	if err != nil {
		return nil, nil, fmt.Errorf("ingesting preassignments: %w", err)
	}
	return w, preassignments, nil
}

// runOnce runs the full preprocess/solve/post-process pipeline for one
// seed. ok is false iff the solver did not reach a full assignment, either
// because it hit its dead-end budget or because the search ran out of
// candidates; a non-nil error means a fatal, non-search-failure problem.
func runOnce(cfg *config.Config, seed int64) (w *model.World, ok bool, failures []postprocessor.BlockFailure, err error) {
	w, preassignments, err := buildWorld(cfg, seed)
	if err != nil {
		return nil, false, nil, err
	}
	if err := preprocessor.Run(w, preassignments); err != nil {
		return nil, false, nil, fmt.Errorf("preprocessing: %w", err)
	}

	s := solver.New(w, cfg.DeadEndBudget)
	ok, err = s.Run()
	if err != nil {
		return nil, false, nil, fmt.Errorf("solving: %w", err)
	}
	if !ok {
		return w, false, nil, nil
	}

	failures = postprocessor.Run(w)
	return w, true, failures, nil
}

func runGenerate(configPath, outputPath, seedSearch string) error {
	cfg, err := config.LoadFromFile(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	seed := cfg.Seed
	if seedSearch != "" {
		found, bestSeed, err := searchSeeds(cfg, seedSearch)
		if err != nil {
			return err
		}
		if !found {
			fmt.Println("✗ no seed in range reached a full assignment; failed to find a schedule")
			return nil
		}
		seed = bestSeed
		fmt.Printf("✓ seed %d reached a full assignment with the fewest post-processor failures\n", seed)
	}

	w, ok, failures, err := runOnce(cfg, seed)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("✗ failed to find a schedule (solver did not reach a full assignment)")
		return nil
	}

	fmt.Printf("✓ every matchup has a selected gameslot (seed %d)\n", seed)
	if len(failures) > 0 {
		fmt.Printf("⚠ %d block(s) still have a gap after post-processing:\n", len(failures))
		for _, f := range failures {
			fmt.Printf("  - %s at %s\n", csvio.FormatDate(f.Date), w.Location(f.Location).Name)
		}
	} else {
		fmt.Println("✓ no intra-block gaps remain")
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	f, err := xlsx.Generate(w)
	if err != nil {
		return fmt.Errorf("generating workbook: %w", err)
	}
	xlsxPath := outputPath
	if !filepath.IsAbs(xlsxPath) {
		xlsxPath = filepath.Join(cfg.OutputDir, filepath.Base(xlsxPath))
	}
	if err := f.SaveAs(xlsxPath); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	fmt.Printf("✓ Schedule saved to %s\n", xlsxPath)

	dumpPath := strings.TrimSuffix(xlsxPath, filepath.Ext(xlsxPath)) + ".txt"
	dumpFile, err := os.Create(dumpPath)
	if err != nil {
		return fmt.Errorf("creating pasteable dump: %w", err)
	}
	defer dumpFile.Close()
	if err := report.WritePasteableDump(dumpFile, w); err != nil {
		return fmt.Errorf("writing pasteable dump: %w", err)
	}
	fmt.Printf("✓ Pasteable dump saved to %s\n", dumpPath)

	reportPath := strings.TrimSuffix(xlsxPath, filepath.Ext(xlsxPath)) + "-report.txt"
	reportFile, err := os.Create(reportPath)
	if err != nil {
		return fmt.Errorf("creating metrics report: %w", err)
	}
	defer reportFile.Close()
	report.PrintTables(reportFile, report.Compute(w))
	fmt.Printf("✓ Metrics report saved to %s\n", reportPath)

	return nil
}

// searchSeeds implements the supplemented --seed-search flag: try every
// seed in [first, last], keep the first that reaches a full assignment,
// and prefer whichever of those has the fewest post-processor block
// failures.
func searchSeeds(cfg *config.Config, rng string) (found bool, best int64, err error) {
	parts := strings.SplitN(rng, ":", 2)
	if len(parts) != 2 {
		return false, 0, fmt.Errorf("--seed-search wants first:last, got %q", rng)
	}
	first, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return false, 0, fmt.Errorf("--seed-search: invalid first seed %q: %w", parts[0], err)
	}
	last, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return false, 0, fmt.Errorf("--seed-search: invalid last seed %q: %w", parts[1], err)
	}

	bestFailures := -1
	for seed := first; seed <= last; seed++ {
		_, ok, failures, err := runOnce(cfg, seed)
		if err != nil {
			return false, 0, err
		}
		if !ok {
			continue
		}
		if bestFailures == -1 || len(failures) < bestFailures {
			bestFailures = len(failures)
			best = seed
			found = true
		}
	}
	return found, best, nil
}

func runReport(schedulePath string) error {
	w, err := report.LoadFromWorkbook(schedulePath)
	if err != nil {
		return fmt.Errorf("loading workbook: %w", err)
	}
	report.PrintTables(os.Stdout, report.Compute(w))
	return nil
}

func runValidate(configPath, schedulePath string) error {
	cfg, err := config.LoadFromFile(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	base := model.NewWorld(cfg.Seed)
	if err := csvio.IngestAll(cfg.InputDir, base); err != nil {
		return fmt.Errorf("ingesting CSV input: %w", err)
	}
	for _, wc := range cfg.WindowConstraints {
		base.WindowConstraints = append(base.WindowConstraints, model.WindowConstraint{
			WindowSize:       wc.Days,
			MaxGamesInWindow: wc.MaxGames,
		})
	}

	violations, err := validator.Validate(base, schedulePath)
	if err != nil {
		return fmt.Errorf("validating: %w", err)
	}

	errors := 0
	for _, v := range violations {
		errors++
		fmt.Printf("✗ %s\n", v.Message)
	}
	fmt.Printf("\nValidation complete: %d violation(s)\n", errors)

	if errors > 0 {
		return fmt.Errorf("%d constraint violations found", errors)
	}
	return nil
}
