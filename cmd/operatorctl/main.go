package main

import (
	"fmt"
	"os"

	"github.com/ogurasousui/operator-registry/internal/cli"
)

func main() {
	if err := cli.NewRootCmd(cli.DefaultDial).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
