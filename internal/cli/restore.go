package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jobmill-project/jobmill/pkg/color"
	"github.com/jobmill-project/jobmill/pkg/configstore"
	"github.com/jobmill-project/jobmill/pkg/logging"
	"github.com/jobmill-project/jobmill/pkg/pathutil"
	"github.com/jobmill-project/jobmill/pkg/recovery"
)

// restoreJSON is the --json rendering of restore settings.
type restoreJSON struct {
	RestoreRequested      bool   `json:"restore_requested"`
	RestorePath           string `json:"restore_path,omitempty"`
	AllowNonRestoredState bool   `json:"allow_non_restored_state"`
	ClaimMode             string `json:"claim_mode"`
}

func settingsToJSON(s recovery.Settings) restoreJSON {
	path, _ := s.RestorePath()
	return restoreJSON{
		RestoreRequested:      s.RestoreRequested(),
		RestorePath:           path,
		AllowNonRestoredState: s.AllowNonRestoredState(),
		ClaimMode:             s.ClaimMode().String(),
	}
}

func newRestoreCmd() *cobra.Command {
	restoreCmd := &cobra.Command{
		Use:   "restore <command>",
		Short: "Manage savepoint restore settings of a job configuration",
		Long: `Manage the savepoint restore settings stored in a job configuration file.

The settings travel under three option keys:
  ` + recovery.SavepointPathOption.Name() + `
  ` + recovery.IgnoreUnclaimedStateOption.Name() + `
  ` + recovery.ClaimModeOption.Name() + `

Presence of the path key is what requests a restore; the other two keys
carry the restore policy and have declared defaults.`,
		DisableFlagsInUseLine: true,
	}

	restoreCmd.AddCommand(newRestoreSetCmd())
	restoreCmd.AddCommand(newRestoreShowCmd())
	restoreCmd.AddCommand(newRestoreClearCmd())
	return restoreCmd
}

func newRestoreSetCmd() *cobra.Command {
	var (
		savepointPath string
		allowFlag     bool
		claimModeFlag string
	)

	cmd := &cobra.Command{
		Use:   "set <job-config.yaml>",
		Short: "Request a savepoint restore in a job configuration",
		Long: `Write savepoint restore settings into a job configuration file.

The file is created if it does not exist; unrelated options in it are
preserved. Defaults for --allow-non-restored-state and --claim-mode can
be configured in .jobmill/config.yaml under restore_defaults.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := pathutil.NormalizeSavepointPath(savepointPath)
			if err != nil {
				return err
			}

			mode, err := recovery.ParseClaimMode(claimModeFlag)
			if err != nil {
				return err
			}

			settings, err := recovery.ForPathWithClaimMode(path, allowFlag, mode)
			if err != nil {
				return err
			}

			file := args[0]
			store, err := configstore.LoadFile(file)
			if err != nil {
				return err
			}

			recovery.ToConfiguration(settings, store)
			if err := store.SaveFile(file); err != nil {
				return err
			}

			logging.Info("restore settings written", map[string]any{
				"file":       file,
				"path":       path,
				"claim_mode": mode.String(),
			})

			if jsonOutput {
				return outputJSON(settingsToJSON(settings))
			}
			fmt.Printf("Job will restore from %s (%s)\n",
				color.SavepointPath(path), color.ClaimMode(mode.String()))
			return nil
		},
	}

	defaults := loadToolConfig()
	cmd.Flags().StringVarP(&savepointPath, "savepoint-path", "s", "", "savepoint location to restore from (required)")
	cmd.Flags().BoolVarP(&allowFlag, "allow-non-restored-state", "n", defaults.AllowNonRestoredState(), "drop savepoint state that no longer maps to the job")
	cmd.Flags().StringVar(&claimModeFlag, "claim-mode", defaults.ClaimMode().String(), "claim mode: NO_CLAIM, CLAIM or LEGACY")
	cmd.MarkFlagRequired("savepoint-path")
	return cmd
}

func newRestoreShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <job-config.yaml>",
		Short: "Show the savepoint restore settings of a job configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := configstore.LoadFile(args[0])
			if err != nil {
				return err
			}

			settings := recovery.FromConfiguration(store)

			if jsonOutput {
				return outputJSON(settingsToJSON(settings))
			}

			if !settings.RestoreRequested() {
				fmt.Println("No savepoint restore requested")
				return nil
			}

			path, _ := settings.RestorePath()
			fmt.Printf("Restore from:             %s\n", color.SavepointPath(path))
			fmt.Printf("Allow non-restored state: %t\n", settings.AllowNonRestoredState())
			fmt.Printf("Claim mode:               %s\n", color.ClaimMode(settings.ClaimMode().String()))
			return nil
		},
	}
}

func newRestoreClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear <job-config.yaml>",
		Short: "Drop the restore request from a job configuration",
		Long: `Remove the savepoint path key from a job configuration file.

Only the path key is removed: its absence alone is what turns the restore
off, so the policy keys may stay behind without effect.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file := args[0]
			store, err := configstore.LoadFile(file)
			if err != nil {
				return err
			}

			store.Unset(recovery.SavepointPathOption.Name())
			if err := store.SaveFile(file); err != nil {
				return err
			}

			logging.Info("restore request cleared", map[string]any{"file": file})

			if jsonOutput {
				return outputJSON(settingsToJSON(recovery.None()))
			}
			fmt.Println("Savepoint restore cleared")
			return nil
		},
	}
}
