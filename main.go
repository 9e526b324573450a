package main

import (
	"flag"
	"fmt"
	"os"

	"dirfav/internal/di"
	"dirfav/internal/structures"
)

func main() {
	flags := &structures.CliFlags{}
	flag.StringVar(&flags.ConfigPath, "config", "config.yaml", "path to config file")
	flag.BoolVar(&flags.DebugMode, "debug", false, "enable debug mode")
	flag.Parse()

	_, err := di.InitApp(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start: %s\n", err)
		os.Exit(1)
	}
}
