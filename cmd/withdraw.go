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

var withdrawAmount uint64

// withdrawCmd represents the owner withdrawal command
var withdrawCmd = &cobra.Command{
	Use:   "withdraw",
	Short: "Withdraws part of the jar balance to the owner",
	Long: `Withdraws part of the jar balance to the owner, bounded by the
configured per-call withdrawal limit. Owner only.`,
	Run: func(cmd *cobra.Command, args []string) {
		defaultDependencyInject()

		jar, err := jarInteractor.Withdraw(context.Background(), callerId(), tlb.Grams(withdrawAmount))
		if err != nil {
			fmt.Printf("❌ No withdrawal is made due to error: %v\n", err.Error())
			return
		}

		fmt.Printf("withdrawal sent [amount: %v, remaining: %v]\n",
			util.GramToTonString(tlb.Grams(withdrawAmount)), util.GramToTonString(jar.TotalReceived))
	},
}

func init() {
	rootCmd.AddCommand(withdrawCmd)

	withdrawCmd.Flags().Uint64Var(&withdrawAmount, "amount", 0, "withdrawal amount in nano tons")
}
