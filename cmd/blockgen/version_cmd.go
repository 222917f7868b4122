package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE:  versionHandler,
	}
}

func versionHandler(cmd *cobra.Command, args []string) error {
	format, err := getOutputFormat(viper.GetString("output"))
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	if format == "json" {
		output, err := getOutputJSON(map[string]string{
			"version": version,
			"commit":  commit,
			"date":    date,
		}, true)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(output))
		return nil
	}
	fmt.Fprintf(w, "%s %s (commit %s, built %s)\n", bold("blockgen"), version, commit, date)
	return nil
}
