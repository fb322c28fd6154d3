package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/Facsimiler/facsimile/sim"
	"github.com/Facsimiler/facsimile/simulation"
)

// version is set at build time through -ldflags.
var version = "dev"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     "facsimile",
	Short:   "Facsimile runs and validates discrete event simulations.",
	Version: version,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		// A .env file can pre-set any FACSIMILE_* parameter. A missing
		// file is fine.
		_ = godotenv.Load()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		atexit.Exit(1)
	}
	atexit.Exit(0)
}

// configFlags declares the shared run-configuration flags on a command.
// An unset flag falls back to the matching FACSIMILE_* variable, then to
// the built-in default.
func configFlags(cmd *cobra.Command) {
	cmd.Flags().Float64("warmup", 100,
		"warm-up duration in simulated seconds")
	cmd.Flags().Float64("snap-duration", 500,
		"length of each measurement window in simulated seconds")
	cmd.Flags().Int("snap-count", 10,
		"number of measurement windows")
	cmd.Flags().Uint64("seed", 1,
		"master seed for all random streams")
}

// configFromFlags reads the shared flags back into a Config.
func configFromFlags(cmd *cobra.Command, runModel bool) simulation.Config {
	warmUp, _ := cmd.Flags().GetFloat64("warmup")
	if !cmd.Flags().Changed("warmup") {
		warmUp = envFloat("FACSIMILE_WARMUP", warmUp)
	}

	snapDuration, _ := cmd.Flags().GetFloat64("snap-duration")
	if !cmd.Flags().Changed("snap-duration") {
		snapDuration = envFloat("FACSIMILE_SNAP_DURATION", snapDuration)
	}

	snapCount, _ := cmd.Flags().GetInt("snap-count")
	if !cmd.Flags().Changed("snap-count") {
		snapCount = envInt("FACSIMILE_SNAP_COUNT", snapCount)
	}

	seed, _ := cmd.Flags().GetUint64("seed")
	if !cmd.Flags().Changed("seed") {
		seed = envUint("FACSIMILE_SEED", seed)
	}

	return simulation.Config{
		WarmUpDuration: sim.VTimeInSec(warmUp),
		SnapDuration:   sim.VTimeInSec(snapDuration),
		SnapCount:      snapCount,
		MasterSeed:     seed,
		RunModel:       runModel,
	}
}

func envFloat(name string, fallback float64) float64 {
	s, ok := os.LookupEnv(name)
	if !ok {
		return fallback
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ignoring %s=%q: %s\n", name, s, err)
		return fallback
	}
	return v
}

func envInt(name string, fallback int) int {
	s, ok := os.LookupEnv(name)
	if !ok {
		return fallback
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ignoring %s=%q: %s\n", name, s, err)
		return fallback
	}
	return v
}

func envUint(name string, fallback uint64) uint64 {
	s, ok := os.LookupEnv(name)
	if !ok {
		return fallback
	}

	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ignoring %s=%q: %s\n", name, s, err)
		return fallback
	}
	return v
}
