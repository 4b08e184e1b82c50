package main

import (
	"os"

	"github.com/dtlpy/dtlpy-go/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
