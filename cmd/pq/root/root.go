package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pixelquest/internal/ui"
)

const Version = "0.1.0"

type globalFlags struct {
	configPath string
	store      string
	path       string
	verbose    bool
}

var flags globalFlags

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "pq",
		Short:         "Pixel Quest — gamified quest tracker",
		Long:          "Pixel Quest is a local-first quest tracker: complete quests, earn XP, level up every 100 XP.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.Version = Version
	cmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "Config file (default ~/.pixelquest/config.yaml)")
	pf.StringVar(&flags.store, "store", "", "Storage backend (sqlite|file|memory)")
	pf.StringVar(&flags.path, "path", "", "Storage location (db file or json file)")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(
		newListCmd(),
		newStatusCmd(),
		newAddCmd(),
		newToggleCmd(),
		newDoCmd(),
		newRestoreCmd(),
		newShowCmd(),
		newBoardCmd(),
		newResetCmd(),
	)
	return cmd
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
