package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/peterkaminski/obsidian-settings-manager/pkg/errors"
	"github.com/peterkaminski/obsidian-settings-manager/pkg/logging"
	"github.com/peterkaminski/obsidian-settings-manager/pkg/output"
)

var (
	verbosity   int
	dryRun      bool
	configPath  string
	obsidianDir string
	formatFlag  string

	rootCmd = &cobra.Command{
		Use:   "osm",
		Short: "Manage Obsidian settings across multiple vaults",
		Long: `osm synchronizes Obsidian vault settings (configuration, plugins,
snippets, themes) from one vault to all the others, with timestamped
backups before anything is overwritten, a dry-run preview, and a
structural diff mode.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().BoolVarP(&dryRun, "dry-run", "n", false, "Preview changes without executing them")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "osm config file (default: $OSM_CONFIG, then XDG locations)")
	rootCmd.PersistentFlags().StringVar(&obsidianDir, "obsidian-dir", "", "Directory containing Obsidian's obsidian.json (default: $OBSIDIAN_CONFIG_DIR, then platform locations)")
	rootCmd.PersistentFlags().StringVar(&formatFlag, "format", "auto", "Output format: auto, term, text")

	initTemplateFormatting()

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showSelectedCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(exactCopyCmd)
	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(backupsCmd)
	rootCmd.AddCommand(execCmd)
	rootCmd.AddCommand(genConfigCmd)
}

// outputFormat resolves the --format flag against the terminal.
func outputFormat() output.Format {
	format, err := output.ParseFormat(formatFlag)
	if err != nil {
		log.Warn().Str("format", formatFlag).Msg("Unknown format, using auto")
	}
	return format.Resolve(os.Stdout)
}

// renderer builds a stdout renderer in the resolved format.
func renderer() *output.Renderer {
	return output.NewRenderer(os.Stdout, outputFormat())
}

// remediate appends known-vault hints to vault lookup failures so the
// message is actionable on its own.
func remediate(err error) error {
	if !errors.IsErrorCode(err, errors.ErrVaultNotFound) {
		return err
	}
	details := errors.GetErrorDetails(err)
	known, ok := details["known_vaults"].([]string)
	if !ok || len(known) == 0 {
		return err
	}
	msg := err.Error() + "\nKnown vaults:"
	for _, vault := range known {
		msg += "\n  " + vault
	}
	return fmt.Errorf("%s", msg)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("osm version %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", date)
	},
}
