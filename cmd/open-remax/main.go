package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/aravasio/open-remax/internal"
)

func main() {
	clear := flag.Bool("clear", false, "wipe the stored listings instead of running an acquisition")
	flag.Parse()

	ctx := context.Background()

	application, err := internal.NewApp(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer application.Close()

	if *clear {
		if err := application.ClearListings(ctx); err != nil {
			application.Close()
			os.Exit(1)
		}
		return
	}

	if err := application.Run(ctx); err != nil {
		application.Close()
		os.Exit(1)
	}
}
