package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/peterkaminski/obsidian-settings-manager/pkg/commands/backups"
	"github.com/peterkaminski/obsidian-settings-manager/pkg/commands/compare"
	"github.com/peterkaminski/obsidian-settings-manager/pkg/commands/execute"
	"github.com/peterkaminski/obsidian-settings-manager/pkg/commands/genconfig"
	"github.com/peterkaminski/obsidian-settings-manager/pkg/commands/list"
	"github.com/peterkaminski/obsidian-settings-manager/pkg/commands/showfiles"
	"github.com/peterkaminski/obsidian-settings-manager/pkg/commands/sync"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the vaults Obsidian is tracking",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		vaults, err := list.List(list.Options{
			ConfigPath:  configPath,
			ObsidianDir: obsidianDir,
		})
		if err != nil {
			return err
		}
		renderer().VaultList(vaults)
		return nil
	},
}

var showSelectedCmd = &cobra.Command{
	Use:   "show-selected SOURCE",
	Short: "Print the settings items that would be copied from SOURCE",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := showfiles.ShowFiles(showfiles.Options{
			Source:      args[0],
			ConfigPath:  configPath,
			ObsidianDir: obsidianDir,
		})
		if err != nil {
			return remediate(err)
		}
		renderer().ItemSet(result.Source, result.Items)
		return nil
	},
}

var updateCmd = &cobra.Command{
	Use:   "update SOURCE",
	Short: "Copy settings from SOURCE to every other vault, backing up overwritten items",
	Args:  cobra.ExactArgs(1),
	RunE:  runSync(false),
}

var exactCopyCmd = &cobra.Command{
	Use:   "exact-copy SOURCE",
	Short: "Wipe every other vault's settings and recreate them as an exact copy of SOURCE",
	Long: `Wipe every other vault's settings directory and recreate it as an exact
copy of SOURCE. No backups are made in this mode; use update for the
backup-before-overwrite behavior.`,
	Args: cobra.ExactArgs(1),
	RunE: runSync(true),
}

func runSync(destructive bool) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		result, err := sync.Sync(sync.Options{
			Source:      args[0],
			Destructive: destructive,
			DryRun:      dryRun,
			ConfigPath:  configPath,
			ObsidianDir: obsidianDir,
		})
		if err != nil {
			return remediate(err)
		}
		renderer().PlanReport(result.Plan, result.Actions, dryRun)
		if result.Failed() {
			return fmt.Errorf("some actions failed; see the report above")
		}
		return nil
	}
}

var diffCmd = &cobra.Command{
	Use:   "diff SOURCE",
	Short: "Show settings differences between SOURCE and every other vault",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := compare.Compare(compare.Options{
			Source:      args[0],
			ConfigPath:  configPath,
			ObsidianDir: obsidianDir,
		})
		if err != nil {
			return remediate(err)
		}
		renderer().Diff(result.Source, result.Diffs)
		return nil
	},
}

var backupsCmd = &cobra.Command{
	Use:   "backups",
	Short: "Manage the timestamped backups left by update",
}

var backupsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List backup artifacts across all vaults",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		artifacts, err := backups.List(backups.Options{
			ConfigPath:  configPath,
			ObsidianDir: obsidianDir,
		})
		if err != nil {
			return err
		}
		renderer().Backups(artifacts)
		return nil
	},
}

var backupsRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove backup artifacts across all vaults",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		results, err := backups.Remove(backups.Options{
			DryRun:      dryRun,
			ConfigPath:  configPath,
			ObsidianDir: obsidianDir,
		})
		if err != nil {
			return err
		}
		renderer().RemoveReport(results, dryRun)
		return nil
	},
}

var execCmd = &cobra.Command{
	Use:   "exec -- COMMAND [ARGS...]",
	Short: "Run COMMAND in every vault root (use caution)",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		results, err := execute.Execute(execute.Options{
			Command:     args[0],
			Args:        args[1:],
			DryRun:      dryRun,
			ConfigPath:  configPath,
			ObsidianDir: obsidianDir,
		})
		if err != nil {
			return err
		}
		renderer().RunResults(results)
		return nil
	},
}

var genConfigCmd = &cobra.Command{
	Use:   "genconfig",
	Short: "Print the default configuration for customization",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		effective, _ := cmd.Flags().GetBool("effective")
		content, err := genconfig.GenConfig(genconfig.Options{
			Effective:  effective,
			ConfigPath: configPath,
		})
		if err != nil {
			return err
		}
		fmt.Print(content)
		return nil
	},
}

func init() {
	backupsCmd.AddCommand(backupsListCmd)
	backupsCmd.AddCommand(backupsRemoveCmd)
	genConfigCmd.Flags().Bool("effective", false, "Print the resolved configuration instead of the built-in default")
}
