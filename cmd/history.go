/*
Copyright © 2023 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"time"

	"jarkeeper/domain"
	"jarkeeper/domain/util"

	"github.com/spf13/cobra"
)

var (
	historyPage  int
	historySize  int
	historyClear bool
)

// historyCmd represents the tip history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Pages through the recent tip history",
	Long: `Pages through the bounded tip history in storage order, which after a
wraparound is not chronological. With --clear it instead empties the buffer
(owner only); the total tip count is untouched.`,
	Run: func(cmd *cobra.Command, args []string) {
		defaultDependencyInject()

		if historyClear {
			jar, err := jarInteractor.ClearHistory(context.Background(), callerId())
			if err != nil {
				fmt.Printf("❌ The history is not cleared due to error: %v\n", err.Error())
				return
			}
			fmt.Printf("history cleared [tips ever accepted: %v]\n", jar.TotalTipsCount)
			return
		}

		tips, err := jarInteractor.TipHistory(context.Background(), historyPage, historySize)
		if err != nil {
			fmt.Printf("❌ No history is listed due to error: %v\n", err.Error())
			return
		}

		printOutTips(tips)
	},
}

func printOutTips(tips []domain.Tip) {

	fmt.Printf("------------- RECENT TIP LIST -----------------\n")
	for i, tip := range tips {
		sender := "(anonymous)"
		if tip.Visibility == domain.VisibilityPublic {
			sender = tip.Sender.ToRaw()
		}
		fmt.Printf("#%03d - %v - %v [%v] %v\n",
			historyPage*historySize+i+1,
			tip.Timestamp.Local().Format(time.RFC1123),
			sender,
			util.GramToTonString(tip.Amount),
			tip.Memo)
	}
	if len(tips) == 0 {
		fmt.Printf("(empty page)\n")
	}
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntVar(&historyPage, "page", 0, "zero-based page number")
	historyCmd.Flags().IntVar(&historySize, "size", 10, "page size")
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "empty the history buffer")
}
