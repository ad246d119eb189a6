/*
Copyright © 2023 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"

	"jarkeeper/domain"
	"jarkeeper/domain/util"

	"github.com/spf13/cobra"
	"github.com/tonkeeper/tongo/tlb"
)

var (
	tipAmount    uint64
	tipMemo      string
	tipAnonymous bool
)

// tipCmd represents the tip submission command
var tipCmd = &cobra.Command{
	Use:   "tip",
	Short: "Sends a tip to the jar",
	Long: `Sends a tip to the jar from the keeper wallet's account. A paused jar
turns the tip away with a refund notification and moves no value.`,
	Run: func(cmd *cobra.Command, args []string) {
		defaultDependencyInject()

		visibility := domain.VisibilityPublic
		if tipAnonymous {
			visibility = domain.VisibilityAnonymous
		}

		jar, err := jarInteractor.SendTip(context.Background(), callerId(),
			tlb.Grams(tipAmount), visibility, tipMemo)
		if err != nil {
			fmt.Printf("❌ No tip is sent due to error: %v\n", err.Error())
			return
		}

		fmt.Printf("tip handled [received: %v, tips: %v]\n",
			util.GramToTonString(jar.TotalReceived), jar.TotalTipsCount)
	},
}

func init() {
	rootCmd.AddCommand(tipCmd)

	tipCmd.Flags().Uint64Var(&tipAmount, "amount", 0, "tip amount in nano tons")
	tipCmd.Flags().StringVar(&tipMemo, "memo", "", "optional message included with the tip")
	tipCmd.Flags().BoolVar(&tipAnonymous, "anonymous", false, "hide the sender in broadcasts")
}
