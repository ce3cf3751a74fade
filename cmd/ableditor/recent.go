package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/ableditor/ableditor/internal/cli"
	"github.com/ableditor/ableditor/pkg/files"
	"github.com/ableditor/ableditor/pkg/models"
)

var (
	recentOutput string
	recentClear  bool
)

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List recently opened files",
	Long:  `List the files offered for quick selection in the Open dialog, most recent first.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := cli.ValidateOutputFormat(recentOutput)
		if err != nil {
			return err
		}

		path, err := files.DefaultRecentPath()
		if err != nil {
			return err
		}
		return runRecent(cmd.OutOrStdout(), afero.NewOsFs(), path, format, recentClear)
	},
}

func init() {
	recentCmd.Flags().StringVarP(&recentOutput, "output", "o", "text", "output format: text, json or yaml")
	recentCmd.Flags().BoolVar(&recentClear, "clear", false, "forget all recent files")
}

func runRecent(w io.Writer, fs afero.Fs, path string, format cli.OutputFormat, clear bool) error {
	recent, err := files.ReadRecentFiles(fs, path)
	if err != nil && !clear {
		return err
	}

	if clear {
		if err == nil && len(recent.Files) == 0 {
			cli.PrintInfo("No recent files to clear")
			return nil
		}
		if err := files.WriteRecentFiles(fs, path, &models.RecentFiles{}); err != nil {
			return err
		}
		cli.PrintSuccess("Recent files cleared")
		return nil
	}

	if format != cli.FormatText {
		return cli.OutputResults(w, format, recent)
	}

	if len(recent.Files) == 0 {
		fmt.Fprintln(w, "No recent files")
		return nil
	}

	table := cli.NewTableFormatter(w)
	table.Header("#", "NAME", "LAST USED", "PATH")
	for i, rf := range recent.Files {
		table.Row(strconv.Itoa(i+1), cli.TruncateString(rf.Name, 30), humanize.Time(rf.LastUsed), rf.Path)
	}
	table.Flush()
	return nil
}
