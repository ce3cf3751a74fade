package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ableditor/ableditor/internal/cli"
)

// Version is set during build with -ldflags
var version = "dev"

var (
	configPath string
	useGUI     bool
	noLog      bool
	noColor    bool
	quiet      bool
)

var rootCmd = &cobra.Command{
	Use:   "ableditor [file]",
	Short: "A minimal text editor with drag-and-drop file opening",
	Long: `AblEditor is a minimal plain text editor. Start it with an optional file to
edit, or open files from the File menu or by dropping them onto the window.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cli.SetGlobalFlags(quiet, noColor)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		}
		return runEditor(path)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of AblEditor",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "AblEditor version %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "settings file (default is <config dir>/ableditor/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress informational output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable symbols in command output")
	rootCmd.Flags().BoolVar(&useGUI, "gui", false, "open the desktop window instead of the terminal editor")
	rootCmd.Flags().BoolVar(&noLog, "no-log", false, "disable the log file")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(recentCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errShown) {
			cli.PrintError("%v", err)
		}
		os.Exit(1)
	}
}
