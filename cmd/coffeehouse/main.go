package main

import (
	"context"
	"log"
	"os"

	"coffeehouse/pkg/app"
)

func main() {
	logger := log.New(os.Stderr, "[coffeehouse] ", log.LstdFlags)
	if err := app.Run(context.Background(), os.Args[1:], logger); err != nil {
		logger.Fatalf("application stopped with error: %v", err)
	}
}
