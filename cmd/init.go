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
	initDescription string
	initCategory    string
	initGoal        uint64
)

// initCmd represents the jar creation command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Creates the tip jar record",
	Long: `Creates the tip jar record for the keeper wallet's account. The wallet
account becomes the immutable owner; the record starts active with zeroed
aggregates and an empty history.`,
	Run: func(cmd *cobra.Command, args []string) {
		defaultDependencyInject()

		jar, err := jarInteractor.Initialize(context.Background(), callerId(),
			initDescription, initCategory, tlb.Grams(initGoal))
		if err != nil {
			fmt.Printf("❌ No jar is created due to error: %v\n", err.Error())
			return
		}

		fmt.Printf("jar created [address: %v, goal: %v]\n",
			jarInteractor.JarAddress().ToRaw(), util.GramToTonString(jar.Goal))
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringVar(&initDescription, "description", "", "what this tip jar is for")
	initCmd.Flags().StringVar(&initCategory, "category", "", "category tag for the tip jar")
	initCmd.Flags().Uint64Var(&initGoal, "goal", 0, "fundraising goal in nano tons")
}
