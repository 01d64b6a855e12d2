package main

import (
	"toyrobot/internal/cli"
	"toyrobot/internal/logging"
)

func main() {
	if err := cli.Execute(); err != nil {
		logging.Logger.Fatal(err)
	}
}
