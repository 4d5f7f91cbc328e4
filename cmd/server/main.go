package main

import (
	"log"

	"github.com/TypeTerrors/gonfig"

	"imgproxy/config"
	"imgproxy/internal/mediator"
)

func main() {

	cfg, err := gonfig.Load[config.Config](
		gonfig.WithConfigFile("config/config.yaml"),
		gonfig.WithDotenv(".env"), // ignored if missing
		gonfig.WithStrict(),       // fail if ${VAR} has no value/default
	)
	if err != nil {
		log.Fatal(err)
	}

	app, err := mediator.NewApp(cfg)
	if err != nil {
		log.Fatal(err)
	}

	app.Start()
}
