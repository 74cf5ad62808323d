package main

import (
	"fmt"
	"os"

	"fjacquet/budget-sync/cmd/create"
	"fjacquet/budget-sync/cmd/recompute"
	"fjacquet/budget-sync/cmd/replay"
	"fjacquet/budget-sync/cmd/root"
	"fjacquet/budget-sync/cmd/status"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(recompute.Cmd)
	root.Cmd.AddCommand(replay.Cmd)
	root.Cmd.AddCommand(create.Cmd)
	root.Cmd.AddCommand(status.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
