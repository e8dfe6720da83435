package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gostructural/frame2d/internal/version"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "frame2d",
	Short: "2D beam and truss analysis",
	Long: `frame2d - 2D structural analysis for beam and truss systems

Given a parametrically defined structure (nodes, members, supports,
point and distributed loads), frame2d computes:
  - Support reactions and nodal displacements
  - Shear force, bending moment and deflection diagrams per member
  - The lightest adequate steel profile per member (IPE, HEA, HEB)

Models are described in a YAML or JSON file; see 'frame2d analyze --help'.

Note that this is not a validated software package. Use it for
indicative calculations only.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Printf("  frame2d v%s - 2D beam and truss analysis\n", version.Version)
		fmt.Println()
		fmt.Println("  Commands:")
		fmt.Println("    analyze   - solve a structure and print diagrams")
		fmt.Println("    optimize  - find the lightest adequate profiles")
		fmt.Println("    profiles  - browse the section library")
		fmt.Println()
		fmt.Println("  Use 'frame2d --help' to see available commands.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.frame2d.yaml)")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// initConfig seeds command defaults from an optional config file so
// recurring choices (steel class, resolution, iteration cap) need not be
// repeated on every invocation.
func initConfig() {
	viper.SetDefault("samples", 101)
	viper.SetDefault("steel", "S235")
	viper.SetDefault("family", "IPE")
	viper.SetDefault("max_iterations", 20)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".frame2d")
		viper.SetConfigType("yaml")
	}
	viper.SetEnvPrefix("FRAME2D")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			fmt.Fprintf(os.Stderr, "warning: cannot read config %s: %v\n", cfgFile, err)
		}
	}
}
