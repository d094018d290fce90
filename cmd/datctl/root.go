package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/geniekit/geniekit/dat"
	"github.com/geniekit/geniekit/pkg/types"
)

var (
	// Global flags
	verbose  bool
	quiet    bool
	jsonOut  bool
	game     string
	fallback bool
)

var rootCmd = &cobra.Command{
	Use:   "datctl",
	Short: "Inspect game-data (dat) archives",
	Long: `datctl decodes the versioned game-data archives that describe
civilizations, technologies, units, graphics, sounds, and effects, and
prints their contents. It is a read-only tool: archives are never modified.`,
	Version: "0.1.0",
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		StringVar(&game, "game", "", "Game the data belongs to: classic or definitive")
	rootCmd.PersistentFlags().
		BoolVar(&fallback, "version-fallback", false, "Resolve out-of-era version tags to the nearest known revision")

	_ = viper.BindPFlag("game", rootCmd.PersistentFlags().Lookup("game"))
	_ = viper.BindPFlag("version-fallback", rootCmd.PersistentFlags().Lookup("version-fallback"))
}

// initConfig loads defaults from datctl.yaml (working dir or ~/.config/datctl)
// and DATCTL_* environment variables; flags still win.
func initConfig() {
	viper.SetConfigName("datctl")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home + "/.config/datctl")
	}
	viper.SetEnvPrefix("DATCTL")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	viper.SetDefault("game", "definitive")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			printError("config: %v\n", err)
		}
	}
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newLogger builds the console logger used for decode diagnostics.
func newLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	switch {
	case quiet:
		level = zerolog.ErrorLevel
	case verbose:
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

// gameVersion maps the configured game name onto the declared era.
func gameVersion() (types.GameVersion, error) {
	switch strings.ToLower(viper.GetString("game")) {
	case "classic":
		return types.GVClassic, nil
	case "definitive", "de", "latest":
		return types.GVDefinitive, nil
	default:
		return types.GVUnknown, fmt.Errorf("unknown game %q (want classic or definitive)", viper.GetString("game"))
	}
}

// loadArchive decodes the archive at path with the configured options.
func loadArchive(path string) (*dat.Archive, error) {
	gv, err := gameVersion()
	if err != nil {
		return nil, err
	}
	printVerbose("Loading: %s (%s)\n", path, gv)
	opts := []dat.Option{dat.WithLogger(newLogger())}
	if viper.GetBool("version-fallback") {
		opts = append(opts, dat.WithVersionFallback())
	}
	a, err := dat.LoadFile(path, gv, opts...)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return a, nil
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
