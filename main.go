package main

import (
	"fmt"
	"gitlab.com/aoterocom/AOStrategyGrader/grader"
	"gitlab.com/aoterocom/AOStrategyGrader/helpers"
	"os"
)

func main() {
	app := grader.NewApp(os.Stdout)
	if err := app.Run(os.Args); err != nil {
		helpers.Logger.Errorln(err)
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
