package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gostructural/frame2d/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of frame2d",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("frame2d v%s\n", version.Version)
		fmt.Println("2D structural analysis for beam and truss systems")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
