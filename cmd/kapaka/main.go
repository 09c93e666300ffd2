package main

import (
	"fmt"
	"os"

	"github.com/sandeepkv93/kapaka/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "kapaka: %v\n", err)
		os.Exit(1)
	}
}
