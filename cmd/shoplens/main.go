package main

import (
	"context"
	"log"
	"os"

	"github.com/shoplens/shoplens/internal/buildinfo"
	"github.com/shoplens/shoplens/internal/cli"
	"github.com/shoplens/shoplens/internal/config"
	"github.com/shoplens/shoplens/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg, logging.NewDefault())

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
