package main

import (
	"os"

	"github.com/leonardinius/gocalc/cmd"
)

func main() {
	app := cmd.NewCalcApp()
	os.Exit(app.Main(os.Args[1:]))
}
