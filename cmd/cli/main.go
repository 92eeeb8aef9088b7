package main

import (
	"context"
	"log"
	"os"

	"github.com/vortextv/vortexcli/internal/buildinfo"
	"github.com/vortextv/vortexcli/internal/client/cli"
	"github.com/vortextv/vortexcli/internal/client/config"
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
