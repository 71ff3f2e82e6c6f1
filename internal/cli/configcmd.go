package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"hwdoctor/internal/config"
)

func newConfigCommand() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage hwdoctor configuration",
		Long: `Manage hwdoctor configuration files and settings.

The config command provides subcommands for initializing, viewing,
validating, and locating configuration files.`,
	}

	configCmd.AddCommand(newConfigInitCommand())
	configCmd.AddCommand(newConfigShowCommand())
	configCmd.AddCommand(newConfigValidateCommand())
	configCmd.AddCommand(newConfigPathCommand())

	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var (
		outputPath string
		minimal    bool
		force      bool
	)

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new configuration file",
		Example: `  # Create full config in current directory
  hwdoctor config init

  # Create minimal config
  hwdoctor config init --minimal

  # Create config at specific path
  hwdoctor config init --path ~/.config/hwdoctor/config.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if outputPath == "" {
				outputPath = ".hwdoctor.yaml"
			}

			if !force && pathExists(outputPath) {
				return fmt.Errorf("config file already exists at %s (use --force to overwrite)", outputPath)
			}

			dir := filepath.Dir(outputPath)
			if dir != "." && dir != "/" {
				if err := os.MkdirAll(dir, 0o750); err != nil {
					return fmt.Errorf("failed to create directory %s: %w", dir, err)
				}
			}

			content := config.SampleConfig()
			if minimal {
				content = config.MinimalSampleConfig()
			}
			if err := os.WriteFile(outputPath, []byte(content), 0o600); err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}

			fmt.Printf("Configuration file created at %s\n", outputPath)
			return nil
		},
	}

	initCmd.Flags().StringVar(&outputPath, "path", "", "output path for config file (default: .hwdoctor.yaml)")
	initCmd.Flags().BoolVarP(&minimal, "minimal", "m", false, "create minimal configuration")
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite existing config file")

	return initCmd
}

func newConfigShowCommand() *cobra.Command {
	var format string

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Display the effective configuration",
		Long: `Display the merged configuration from all sources: built-in defaults,
config files in priority order, and HWDOCTOR_* environment overrides.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewLoader().LoadConfig(cfgFile)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			var out []byte
			switch format {
			case "yaml":
				out, err = yaml.Marshal(cfg)
			case "json":
				out, err = json.MarshalIndent(cfg, "", "  ")
			default:
				return fmt.Errorf("unsupported format %q (use yaml or json)", format)
			}
			if err != nil {
				return fmt.Errorf("failed to format configuration: %w", err)
			}

			fmt.Print(string(out))
			return nil
		},
	}

	showCmd.Flags().StringVar(&format, "format", "yaml", "display format (yaml, json)")

	return showCmd
}

func newConfigValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate a configuration file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := cfgFile
			if len(args) == 1 {
				path = args[0]
			}

			if _, err := config.NewLoader().LoadConfig(path); err != nil {
				return err
			}
			if path != "" {
				fmt.Printf("%s is valid\n", path)
			} else {
				fmt.Println("configuration is valid")
			}
			return nil
		},
	}
}

func newConfigPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show configuration search paths",
		Run: func(cmd *cobra.Command, args []string) {
			active, found := config.FindConfigFile()
			for _, p := range config.GetConfigPaths() {
				marker := " "
				if found && p == active {
					marker = "*"
				}
				fmt.Printf("%s %s\n", marker, p)
			}
			if !found {
				fmt.Println("(no config file found; defaults are in effect)")
			}
		},
	}
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
