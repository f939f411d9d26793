package main

import (
	"context"
	"os"

	"github.com/todolite/todolite/internal/cli"
)

func main() {
	os.Exit(cli.Run(context.Background(), os.Args))
}
