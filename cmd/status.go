/*
Copyright © 2023 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var toggleActive bool

// pauseCmd and resumeCmd set the status unconditionally; toggleCmd demands a
// genuine transition and fails on a redundant one.
var pauseCmd = &cobra.Command{
	Use:   "pause",
	Short: "Pauses the jar",
	Long:  `Pauses the jar: incoming tips are turned away until 'resume'. Owner only.`,
	Run: func(cmd *cobra.Command, args []string) {
		defaultDependencyInject()

		_, err := jarInteractor.Pause(context.Background(), callerId())
		if err != nil {
			fmt.Printf("❌ The jar is not paused due to error: %v\n", err.Error())
			return
		}
		fmt.Println("jar paused.")
	},
}

var resumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Resumes the jar",
	Long:  `Resumes a paused jar so it accepts tips again. Owner only.`,
	Run: func(cmd *cobra.Command, args []string) {
		defaultDependencyInject()

		_, err := jarInteractor.Resume(context.Background(), callerId())
		if err != nil {
			fmt.Printf("❌ The jar is not resumed due to error: %v\n", err.Error())
			return
		}
		fmt.Println("jar resumed.")
	},
}

var toggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Switches the jar status",
	Long: `Switches the jar to the requested status. Unlike 'pause' and 'resume'
this rejects a request that would not change anything. Owner only.`,
	Run: func(cmd *cobra.Command, args []string) {
		defaultDependencyInject()

		jar, err := jarInteractor.ToggleStatus(context.Background(), callerId(), toggleActive)
		if err != nil {
			fmt.Printf("❌ The jar status is not changed due to error: %v\n", err.Error())
			return
		}
		fmt.Printf("jar status changed [active: %v]\n", jar.IsActive)
	},
}

func init() {
	rootCmd.AddCommand(pauseCmd)
	rootCmd.AddCommand(resumeCmd)
	rootCmd.AddCommand(toggleCmd)

	toggleCmd.Flags().BoolVar(&toggleActive, "active", true, "requested status")
}
