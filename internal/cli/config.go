package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jobmill-project/jobmill/pkg/config"
	"github.com/jobmill-project/jobmill/pkg/errclass"
	"github.com/jobmill-project/jobmill/pkg/recovery"
)

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config <command>",
		Short: "Manage jobmill tool configuration",
		Long: `Manage the jobmill tool configuration stored in .jobmill/config.yaml.

Configuration options:
  claim_mode                - Default claim mode for restore set (NO_CLAIM, CLAIM, LEGACY)
  allow_non_restored_state  - Default for --allow-non-restored-state (true, false)
  output_format             - Default output format (text, json)
  log_level                 - Log level (debug, info, warn, error)
  log_format                - Log format (text, json)`,
		DisableFlagsInUseLine: true,
	}

	configCmd.AddCommand(newConfigShowCmd())
	configCmd.AddCommand(newConfigSetCmd())
	return configCmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current tool configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadToolConfig()

			if jsonOutput {
				return outputJSON(cfg)
			}

			fmt.Println("# jobmill configuration")
			fmt.Printf("claim_mode: %s\n", cfg.ClaimMode())
			fmt.Printf("allow_non_restored_state: %t\n", cfg.AllowNonRestoredState())
			fmt.Printf("output_format: %s\n", cfg.OutputFormat)
			fmt.Printf("log_level: %s\n", cfg.Logging.Level)
			fmt.Printf("log_format: %s\n", cfg.Logging.Format)
			return nil
		},
	}
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a tool configuration value",
		Long: `Set a configuration value in .jobmill/config.yaml.

Examples:
  jobmill config set claim_mode CLAIM
  jobmill config set allow_non_restored_state true
  jobmill config set output_format json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}
			cfg, err := config.Load(cwd)
			if err != nil {
				return err
			}

			key, value := args[0], args[1]
			switch key {
			case "claim_mode":
				mode, err := recovery.ParseClaimMode(value)
				if err != nil {
					return err
				}
				cfg.RestoreDefaults.ClaimMode = mode.String()
			case "allow_non_restored_state":
				allow, err := strconv.ParseBool(value)
				if err != nil {
					return errclass.ErrInvalidArgument.WithMessagef("allow_non_restored_state must be a boolean, got %q", value)
				}
				cfg.RestoreDefaults.AllowNonRestoredState = &allow
			case "output_format":
				if value != "text" && value != "json" {
					return errclass.ErrInvalidArgument.WithMessagef("output_format must be text or json, got %q", value)
				}
				cfg.OutputFormat = value
			case "log_level":
				cfg.Logging.Level = value
			case "log_format":
				if value != "text" && value != "json" {
					return errclass.ErrInvalidArgument.WithMessagef("log_format must be text or json, got %q", value)
				}
				cfg.Logging.Format = value
			default:
				return errclass.ErrInvalidArgument.WithMessagef("unknown configuration key %q", key)
			}

			if err := config.Save(cwd, cfg); err != nil {
				return err
			}
			if !jsonOutput {
				fmt.Printf("Set %s = %s\n", key, value)
			}
			return nil
		},
	}
}
