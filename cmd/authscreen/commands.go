package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/muurk/authscreen/internal/auth"
	"github.com/muurk/authscreen/internal/config"
	"github.com/muurk/authscreen/internal/form"
	"github.com/muurk/authscreen/internal/logging"
	"github.com/muurk/authscreen/internal/tui"
	"github.com/muurk/authscreen/internal/ui"
)

// Global flags
var (
	configPath string
	modeFlag   string
	logLevel   string
	logFile    string
)

// Screen flags
var (
	exitOnSubmit bool
	hideHelp     bool
)

// Validate flags
var (
	email           string
	password        string
	confirmPassword string
	outputFormat    string
)

// errFormInvalid is returned by validate when any field fails.
var errFormInvalid = errors.New("form validation failed")

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default is the OS config directory)")
	rootCmd.PersistentFlags().StringVar(&modeFlag, "mode", "", "Start mode: login or signup (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (default silent)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to this file instead of stderr")

	rootCmd.Flags().BoolVar(&exitOnSubmit, "exit-on-submit", false, "Exit after the first successful submit")
	rootCmd.Flags().BoolVar(&hideHelp, "no-help", false, "Hide the key help line")

	validateCmd.Flags().StringVar(&email, "email", "", "Email address")
	validateCmd.Flags().StringVar(&password, "password", "", "Password")
	validateCmd.Flags().StringVar(&confirmPassword, "confirm-password", "", "Password confirmation (signup only)")
	validateCmd.Flags().StringVar(&outputFormat, "format", "text", "Output format (text, json)")

	configInitCmd.Flags().Bool("force", false, "Overwrite an existing config file")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(configCmd)
}

// setup loads the config file, initializes logging and resolves the start mode.
func setup() (*config.File, form.Mode, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, form.ModeLogin, err
	}

	level, output := logLevel, logFile
	if level == "" {
		level = cfg.Preferences.LogLevel
	}
	if output == "" {
		output = cfg.Preferences.LogFile
	}
	if err := logging.InitializeWithOptions(logging.Options{Level: level, OutputPath: output}); err != nil {
		return nil, form.ModeLogin, err
	}

	mode, err := cfg.Preferences.Mode()
	if err != nil {
		return nil, form.ModeLogin, err
	}
	if modeFlag != "" {
		if mode, err = form.ParseMode(modeFlag); err != nil {
			return nil, form.ModeLogin, err
		}
	}

	return cfg, mode, nil
}

func loadConfig() (*config.File, error) {
	if configPath != "" {
		return config.LoadFrom(configPath)
	}
	return config.Load()
}

func resolvedConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.GetConfigPath()
}

// newController wires the form to the logging stub.
func newController(mode form.Mode, extra ...form.Submitter) *form.Controller {
	var ctrl *form.Controller
	stub := auth.LogSubmitter{Mode: func() form.Mode { return ctrl.Mode() }}
	submitters := append([]form.Submitter{stub}, extra...)

	ctrl = form.NewController(auth.Multi(submitters...),
		form.WithMode(mode),
		form.WithLogger(logging.Named("form")),
	)
	return ctrl
}

func runScreen(cmd *cobra.Command, args []string) error {
	cfg, mode, err := setup()
	if err != nil {
		return err
	}

	if !ui.IsTerminal(os.Stdin) || !ui.IsTerminal(os.Stdout) {
		return fmt.Errorf("the interactive screen needs a terminal; use 'authscreen validate' for scripted checks")
	}

	recorder := &auth.Recorder{}
	ctrl := newController(mode, recorder)

	model := tui.NewAuthModel(ctrl, tui.Options{
		ShowHelp:     cfg.Preferences.ShowHelp && !hideHelp,
		QuitOnSubmit: exitOnSubmit,
	})

	logging.Info("Screen started", zap.String("mode", mode.String()))

	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("screen error: %w", err)
	}

	if creds, ok := recorder.Last(); ok && exitOnSubmit {
		ui.NewPrinter(cmd.OutOrStdout()).PrintSuccess(tui.StatusSubmitted,
			ui.Param{Key: "Mode", Value: ctrl.Mode().String()},
			ui.Param{Key: "Email", Value: creds.Email},
		)
	}
	return nil
}

// validateCmd checks credentials without opening the screen
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate form values without the interactive screen",
	Long: `Run the same validation the screen performs on submit.

Exits with a non-zero status when any field is invalid. On success the
credentials go to the same logging stub the screen uses.`,
	Example: `  # Login check
  authscreen validate --email x@y.com --password abcdefgh

  # Sign up with confirmation, machine-readable output
  authscreen validate --mode signup --email x@y.com \
    --password abcdefgh --confirm-password abcdefgh --format json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, mode, err := setup()
		if err != nil {
			return err
		}
		return runValidate(cmd.OutOrStdout(), mode, form.Values{
			Email:           email,
			Password:        password,
			ConfirmPassword: confirmPassword,
		}, outputFormat)
	},
}

// validationReport is the JSON shape of a validate run
type validationReport struct {
	Mode   string            `json:"mode"`
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors"`
}

func runValidate(w io.Writer, mode form.Mode, values form.Values, format string) error {
	if format != "text" && format != "json" {
		return fmt.Errorf("unknown format %q (expected text or json)", format)
	}

	ctrl := newController(mode)
	for _, f := range form.AllFields {
		ctrl.SetField(f, values.Get(f))
	}
	valid := ctrl.Submit()
	errs := ctrl.Errors()

	if format == "json" {
		report := validationReport{
			Mode:   mode.String(),
			Valid:  valid,
			Errors: make(map[string]string, len(errs)),
		}
		for f, msg := range errs {
			report.Errors[f.String()] = msg
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
	} else {
		p := ui.NewPrinter(w)
		p.PrintHeader("Form Validation", "authscreen validate",
			ui.Param{Key: "Mode", Value: mode.String()},
			ui.Param{Key: "Email", Value: values.Email},
		)
		if valid {
			p.PrintSuccess(tui.StatusSubmitted, ui.Param{Key: "Email", Value: values.Email})
		} else {
			details := make([]ui.Param, 0, len(errs))
			for _, f := range errs.Keys() {
				details = append(details, ui.Param{Key: f.Label(), Value: errs[f]})
			}
			p.PrintFailure("Form is invalid", details...)
		}
	}

	if !valid {
		return errFormInvalid
	}
	return nil
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the preferences file",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolvedConfigPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective preferences",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolvedConfigPath()
		if err != nil {
			return err
		}
		force, _ := cmd.Flags().GetBool("force")
		if _, err := os.Stat(path); err == nil && !force {
			return fmt.Errorf("config file already exists at %s (use --force to overwrite)", path)
		}
		if err := config.New().SaveTo(path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}
