package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/sepgen/sepgen/internal/config"
	"github.com/sepgen/sepgen/internal/document"
	"github.com/sepgen/sepgen/internal/schema"
	"github.com/sepgen/sepgen/internal/server"
	"github.com/sepgen/sepgen/internal/tui"
)

// Command flags
var (
	outputDir   string
	answersFile string
	serveDir    string
	serveAddr   string
	serveMDNS   bool
	logLevel    string

	prefOutputDir  string
	prefListenAddr string
	prefDefaults   []string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&outputDir, "out", "", "Output directory for generated files (default: preferences, then current dir)")

	rootCmd.AddCommand(wizardCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// newForm builds a fresh phone form with the operator's saved defaults
// applied. The answers path reuses it so both entry points agree on the
// starting state.
func newForm(prefs *config.Preferences) (*schema.Form, error) {
	form, err := schema.NewPhoneForm()
	if err != nil {
		return nil, fmt.Errorf("failed to build form: %w", err)
	}
	if len(prefs.Defaults) > 0 {
		if err := form.ApplyAnswers(prefs.Defaults); err != nil {
			return nil, fmt.Errorf("invalid preferences defaults: %w", err)
		}
	}
	return form, nil
}

// resolveOutputDir picks the output directory: flag first, then preferences,
// then the current directory.
func resolveOutputDir(prefs *config.Preferences) string {
	if outputDir != "" {
		return outputDir
	}
	if prefs.OutputDir != "" {
		return prefs.OutputDir
	}
	return "."
}

// wizardCmd launches the interactive TUI wizard
var wizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Launch the interactive configuration wizard",
	Long: `Launch an interactive TUI wizard for building a phone configuration.

The wizard presents every 8945 setting as a scrolling form with inline
editing and context help. Fields that do not apply to the current
selections (e.g. the NAT address while NAT is off) disappear from the
form. Press 's' at any time to generate the SEP<MAC>.cnf.xml file; the
session stays open so several phones can be produced in a row.`,
	Example: `  # Launch the wizard
  sepgen wizard
  # Or simply (wizard is default):
  sepgen

  # Write generated files into a TFTP root
  sepgen wizard --out /srv/tftpboot`,
	RunE: runWizard,
}

func runWizard(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("the wizard needs an interactive terminal; use 'sepgen generate --answers <file>' for scripted runs")
	}

	prefs, err := config.Load()
	if err != nil {
		return err
	}
	form, err := newForm(prefs)
	if err != nil {
		return err
	}

	return tui.Run(form, resolveOutputDir(prefs))
}

// generateCmd produces a config file non-interactively from an answers file
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a config file from an answers file",
	Long: `Generate a SEP<MAC>.cnf.xml file without the wizard.

The answers file is a YAML map of field tag to value. Dropdown fields
accept either the serialized value or the display label. Tags not
present in the file keep their defaults (including any saved
preferences defaults). The 'device' tag is required and must normalize
to a 12-character MAC address.`,
	Example: `  # Minimal answers file:
  #   device: AA:BB:CC:11:22:33
  #   processNodeName1: 192.168.1.10
  #   button1.name: "1001"
  sepgen generate --answers phone.yaml

  # Write into a TFTP root
  sepgen generate --answers phone.yaml --out /srv/tftpboot`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&answersFile, "answers", "", "YAML file of field tag to value (required)")
	_ = generateCmd.MarkFlagRequired("answers")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	prefs, err := config.Load()
	if err != nil {
		return err
	}
	form, err := newForm(prefs)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(answersFile)
	if err != nil {
		return fmt.Errorf("failed to read answers file: %w", err)
	}
	answers := make(map[string]string)
	if err := yaml.Unmarshal(data, &answers); err != nil {
		return fmt.Errorf("failed to parse answers file: %w", err)
	}
	if err := form.ApplyAnswers(answers); err != nil {
		return err
	}

	dir := resolveOutputDir(prefs)
	name, err := document.Generate(form.Registry, dir)
	if err != nil {
		return err
	}

	fmt.Printf("Generated %s\n", name)
	return nil
}

// serveCmd serves generated config files over HTTP
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve generated config files over HTTP",
	Long: `Serve the output directory over HTTP for phones to fetch.

Cisco phones request SEP<MAC>.cnf.xml from their configured TFTP or
alternate HTTP source on boot. This command exposes the generated files
so a lab or small site can provision phones without a TFTP server. Only
exact provisioning file names are served.`,
	Example: `  # Serve the preferences output directory on the default port
  sepgen serve

  # Serve a TFTP root and announce via mDNS
  sepgen serve --dir /srv/tftpboot --mdns

  # Custom listen address
  sepgen serve --addr 0.0.0.0:8080`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveDir, "dir", "", "Directory to serve (default: preferences output dir, then current dir)")
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default: preferences, then :6970)")
	serveCmd.Flags().BoolVar(&serveMDNS, "mdns", false, "Announce the service via mDNS")
	serveCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}

// configCmd shows and updates the saved preferences
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or update saved preferences",
	Long: `Show or update the preferences file.

Without flags, prints the preferences file location and its current
values. With flags, updates the named settings and writes the file.
Field defaults are validated against the form schema, so a typo in a
tag or a dropdown value is rejected instead of silently saved.`,
	Example: `  # Show the current preferences
  sepgen config

  # Point generated files at a TFTP root
  sepgen config --output-dir /srv/tftpboot

  # Save site-wide field defaults
  sepgen config --default processNodeName1=192.168.1.10 --default timeZone="Central Europe Standard/Daylight Time"`,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&prefOutputDir, "output-dir", "", "Default output directory for generated files")
	configCmd.Flags().StringVar(&prefListenAddr, "listen-addr", "", "Default listen address for 'sepgen serve'")
	configCmd.Flags().StringArrayVar(&prefDefaults, "default", nil, "Field default as tag=value (repeatable)")
}

func runConfig(cmd *cobra.Command, args []string) error {
	prefs, err := config.Load()
	if err != nil {
		return err
	}
	path, err := config.GetConfigPath()
	if err != nil {
		return err
	}

	changed := false
	if cmd.Flags().Changed("output-dir") {
		prefs.OutputDir = prefOutputDir
		changed = true
	}
	if cmd.Flags().Changed("listen-addr") {
		prefs.ListenAddr = prefListenAddr
		changed = true
	}
	for _, kv := range prefDefaults {
		tag, value, ok := strings.Cut(kv, "=")
		if !ok || tag == "" {
			return fmt.Errorf("invalid --default %q: expected tag=value", kv)
		}
		prefs.Defaults[tag] = value
		changed = true
	}

	if !changed {
		fmt.Printf("Preferences file: %s\n", path)
		fmt.Printf("  output_dir:  %s\n", prefs.OutputDir)
		fmt.Printf("  listen_addr: %s\n", prefs.ListenAddr)
		for tag, value := range prefs.Defaults {
			fmt.Printf("  default %s=%s\n", tag, value)
		}
		return nil
	}

	// Reject defaults the form schema cannot accept before they reach disk.
	if _, err := newForm(prefs); err != nil {
		return err
	}
	if err := prefs.Save(); err != nil {
		return err
	}
	fmt.Printf("Saved preferences to %s\n", path)
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	prefs, err := config.Load()
	if err != nil {
		return err
	}

	dir := serveDir
	if dir == "" {
		if prefs.OutputDir != "" {
			dir = prefs.OutputDir
		} else {
			dir = "."
		}
	}
	addr := serveAddr
	if addr == "" {
		if prefs.ListenAddr != "" {
			addr = prefs.ListenAddr
		} else {
			addr = ":6970"
		}
	}

	srv, err := server.New(&server.Config{
		Addr:     addr,
		Dir:      dir,
		LogLevel: logLevel,
		MDNS:     serveMDNS,
	})
	if err != nil {
		return err
	}
	return srv.Start()
}
