package main

import (
	"context"
	"log"
	"os"

	"github.com/avelichko/schoolinv/internal/buildinfo"
	"github.com/avelichko/schoolinv/internal/cli"
	"github.com/avelichko/schoolinv/internal/config"
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
