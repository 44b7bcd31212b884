package main

import (
	"os"

	"github.com/mcggEz/backend-gradalyze-capstone/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
