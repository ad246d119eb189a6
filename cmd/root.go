/*
Copyright © 2023 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"jarkeeper/domain/config"

	"github.com/spf13/cobra"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "jarkeeper",
	Short: "Custodial keeper for a single tip jar record",
	Long: `jarkeeper maintains one persistent tip jar record: it accepts tips,
tracks a bounded history of recent transfers, enforces owner-only control
over lifecycle and withdrawals, and broadcasts every state change.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "configuration file")
}

func initConfig() {
	config.ReadConfig(cfgFile)
}
