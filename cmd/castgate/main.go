package main

import (
	"context"
	"log"
	"os"

	"github.com/mpetrenko/castgate/internal/buildinfo"
	"github.com/mpetrenko/castgate/internal/cli"
	"github.com/mpetrenko/castgate/internal/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
