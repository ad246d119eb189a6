/*
Copyright © 2023 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// closeCmd represents the terminal close command
var closeCmd = &cobra.Command{
	Use:   "close",
	Short: "Closes the jar and releases its storage",
	Long: `Closes the jar: transfers the entire remaining balance to the owner and
releases the record's storage. This is terminal; no further operations are
valid afterwards. Owner only.`,
	Run: func(cmd *cobra.Command, args []string) {
		defaultDependencyInject()

		err := jarInteractor.Close(context.Background(), callerId())
		if err != nil {
			fmt.Printf("❌ The jar is not closed due to error: %v\n", err.Error())
			return
		}

		fmt.Printf("jar closed [address: %v]\n", jarInteractor.JarAddress().ToRaw())
	},
}

func init() {
	rootCmd.AddCommand(closeCmd)
}
