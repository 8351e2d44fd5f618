package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "geosbridge",
	Short: "Normalize vector geometries into GEOS and store them as WKB",
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(repackCmd)
}
