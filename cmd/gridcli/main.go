package main

import (
	"os"

	svrcmd "github.com/cosmos/cosmos-sdk/server/cmd"

	"github.com/grid-chain/grid/app"
	"github.com/grid-chain/grid/cmd/gridd/cmd"
)

func main() {
	rootCmd := cmd.NewRootCmd(true)

	if err := svrcmd.Execute(rootCmd, "", app.DefaultNodeHome); err != nil {
		os.Exit(1)
	}
}
