package main

import (
	"os"

	"github.com/jordanbenzacken/checkmysmartcontract/internal/app"
)

func main() {
	if err := app.BuildRoot().Execute(); err != nil {
		os.Exit(1)
	}
}
