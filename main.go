/*
Copyright © 2023 NAME HERE <EMAIL ADDRESS>
*/
package main

import "jarkeeper/cmd"

func main() {
	cmd.Execute()
}
