package main

import (
	"context"
	"os"
	"strings"

	"github.com/amantham20/aqs-go/internal/infrastructure/cli"
)

func main() {
	ctx := context.Background()
	os.Exit(cli.Execute(ctx, cli.Options{Verbose: isVerbose()}))
}

func isVerbose() bool {
	return strings.EqualFold(os.Getenv("AQS_DEBUG"), "1") || strings.EqualFold(os.Getenv("AQS_DEBUG"), "true")
}
