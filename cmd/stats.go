/*
Copyright © 2023 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"

	"jarkeeper/domain/util"

	"github.com/spf13/cobra"
	"github.com/tonkeeper/tongo/tlb"
)

// statsCmd represents the stats query command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Prints and broadcasts the jar's running aggregates",
	Long:  `Prints the jar's running aggregates and broadcasts them as a stats event.`,
	Run: func(cmd *cobra.Command, args []string) {
		defaultDependencyInject()

		stats, err := jarInteractor.Stats(context.Background())
		if err != nil {
			fmt.Printf("❌ No stats are read due to error: %v\n", err.Error())
			return
		}

		fmt.Printf("------------- JAR STATS -----------------\n")
		fmt.Printf("address:        %v\n", stats.Jar)
		fmt.Printf("active:         %v\n", stats.IsActive)
		fmt.Printf("private:        %v\n", stats.IsPrivate)
		fmt.Printf("category:       %v\n", stats.Category)
		fmt.Printf("goal:           %v\n", util.GramToTonString(tlb.Grams(stats.Goal)))
		fmt.Printf("total received: %v\n", util.GramToTonString(tlb.Grams(stats.TotalReceived)))
		fmt.Printf("tips accepted:  %v\n", stats.TipsCount)
		fmt.Printf("goal reached:   %v\n", stats.GoalReached)
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
