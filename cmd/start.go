/*
Copyright © 2023 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jarkeeper/domain/config"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

var quit = make(chan bool)

// startCmd represents the keeper daemon command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Starts the keeper's tasks",
	Long: `Starts the keeper's tasks: the periodic stats broadcast and the
metrics endpoint. To stop it, run 'stop' command.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("start called.")

		defaultDependencyInject()

		go serveMetrics(config.GetMetricsAddress())

		statsTicker := schedule(broadcastStats, config.GetStatsInterval(), quit)

		signal.Ignore()
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
		s := <-stop
		log.Printf("Got signal '%v', stopping", s)

		statsTicker.Stop()
	},
}

func schedule(task func(), interval time.Duration, done chan bool) *time.Ticker {
	ticker := time.NewTicker(interval)
	go func() {
		for {
			select {

			case <-ticker.C:
				ticker.Stop()
				task()
				ticker.Reset(interval)

			case <-done:
				return
			}
		}
	}()
	return ticker
}

func broadcastStats() {
	stats, err := jarInteractor.Stats(context.Background())
	if err != nil {
		fmt.Printf("❌ No stats are broadcast due to error: %v\n", err.Error())
		return
	}

	fmt.Printf("stats broadcast [received: %v, tips: %v, goal reached: %v]\n",
		stats.TotalReceived, stats.TipsCount, stats.GoalReached)
}

func serveMetrics(address string) {
	http.Handle("/metrics", promhttp.Handler())
	if err := http.ListenAndServe(address, nil); err != nil {
		log.Printf("🔴 serving metrics - %v\n", err.Error())
	}
}

func init() {
	rootCmd.AddCommand(startCmd)

	// Here you will define your flags and configuration settings.

	// Cobra supports Persistent Flags which will work for this command
	// and all subcommands, e.g.:
	// startCmd.PersistentFlags().String("foo", "", "A help for foo")

	// Cobra supports local flags which will only run when this command
	// is called directly, e.g.:
	// startCmd.Flags().BoolP("toggle", "t", false, "Help message for toggle")
}
