package main

import (
	"context"
	"os"

	"github.com/thenoetrevino/folio/cmd"
)

func main() {
	os.Exit(cmd.Execute(context.Background()))
}
