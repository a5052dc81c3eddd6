package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ytget/yt-mp3/internal/cli"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	if err := cli.Execute(context.Background(), version, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "yt-mp3:", err)
		os.Exit(1)
	}
}
