package main

import (
	"context"
	"log"
	"os"

	"github.com/shelfhub/shelfhub/internal/buildinfo"
	"github.com/shelfhub/shelfhub/internal/client/cli"
	"github.com/shelfhub/shelfhub/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := cli.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
