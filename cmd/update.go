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

var (
	updateDescription string
	updateCategory    string
	updateGoal        uint64
)

// updateCmd represents the metadata update command
var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Overwrites the jar's description, category and goal",
	Long: `Overwrites the jar's description, category and goal. The same length and
positivity constraints as 'init' apply. Owner only.`,
	Run: func(cmd *cobra.Command, args []string) {
		defaultDependencyInject()

		jar, err := jarInteractor.UpdateMetadata(context.Background(), callerId(),
			updateDescription, updateCategory, tlb.Grams(updateGoal))
		if err != nil {
			fmt.Printf("❌ The jar is not updated due to error: %v\n", err.Error())
			return
		}

		fmt.Printf("jar updated [category: %v, goal: %v]\n",
			jar.Category, util.GramToTonString(jar.Goal))
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)

	updateCmd.Flags().StringVar(&updateDescription, "description", "", "what this tip jar is for")
	updateCmd.Flags().StringVar(&updateCategory, "category", "", "category tag for the tip jar")
	updateCmd.Flags().Uint64Var(&updateGoal, "goal", 0, "fundraising goal in nano tons")
}
