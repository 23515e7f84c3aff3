package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/npillmayer/keyframes"
	"github.com/npillmayer/keyframes/dom"
	"github.com/npillmayer/keyframes/timeline"
	"github.com/npillmayer/keyframes/tween"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
)

var traceFlag string
var envFileFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kfx",
		Short: "Keyframe timeline tool",
		Long: `kfx works with keyframe timelines for elements of HTML documents.

Timelines address their target elements by element paths like
  /html[1]/body[1]/div[2]/*[local-name()='svg'][1]
and are stored as JSON or YAML files (chosen by file extension).`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if err := loadEnv(envFileFlag); err != nil {
				return err
			}
			return setTraceLevel(traceFlag)
		},
	}
	cmd.PersistentFlags().StringVar(&traceFlag, "trace", "", "trace level: error, info or debug (default $KFX_TRACE or error)")
	cmd.PersistentFlags().StringVar(&envFileFlag, "env", ".env", "file with environment settings, ignored if missing")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// loadEnv reads environment settings from file. Variables already set in
// the environment take precedence.
func loadEnv(file string) error {
	if file == "" {
		return nil
	}
	if err := godotenv.Load(file); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("cannot read environment file %s: %w", file, err)
	}
	return nil
}

func setTraceLevel(level string) error {
	if level == "" {
		level = os.Getenv("KFX_TRACE")
	}
	l := tracing.LevelError
	switch strings.ToLower(level) {
	case "", "error":
	case "info":
		l = tracing.LevelInfo
	case "debug":
		l = tracing.LevelDebug
	default:
		return fmt.Errorf("unknown trace level %q", level)
	}
	for _, key := range keyframes.TraceKeys {
		tracing.Select(key).SetTraceLevel(l)
	}
	return nil
}

// engineConfig creates the tween configuration from the environment,
// overridden by command line values where those are set.
func engineConfig(fps float64, strict bool) (tween.Config, error) {
	config := tween.DefaultConfig()
	if env := os.Getenv("KFX_FPS"); env != "" && fps <= 0 {
		f, err := strconv.ParseFloat(env, 64)
		if err != nil || f <= 0 {
			return config, fmt.Errorf("KFX_FPS must be a positive number, is %q", env)
		}
		fps = f
	}
	if fps > 0 {
		config.FrameRate = fps
	}
	config.StrictOrigins = strict
	return config, nil
}

func loadDocument(file string) (*dom.W3CNode, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	doc, err := dom.Load(f)
	if err != nil {
		return nil, fmt.Errorf("cannot parse %s: %w", file, err)
	}
	return doc, nil
}

func readTimeline(file string) (*timeline.KeyframeTimeline, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	tl, err := timeline.Decode(data, timeline.FormatForFile(file))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return tl, nil
}

// writeOutput writes data to file, or to the command's output if file is
// empty or "-".
func writeOutput(cmd *cobra.Command, file string, data []byte) error {
	if file == "" || file == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	return os.WriteFile(file, data, 0644)
}
