package main

import (
	"os"

	_ "go.uber.org/automaxprocs"

	"github.com/abyounis/biofilmwatch/internal/app"
	"github.com/abyounis/biofilmwatch/internal/catalog"
	"github.com/abyounis/biofilmwatch/internal/components"
)

func config() app.Config {
	port := os.Getenv("GOPORT")
	if port == "" {
		port = "8000"
	}

	return app.Config{Port: port}
}

func main() {
	componentBuilder := app.ComponentBuilder{
		Index:        components.Index,
		Genomics:     components.Genomics,
		Regulatory:   components.Regulatory,
		Surveillance: components.Surveillance,
		RNA:          components.RNA,
		Cocktail:     components.Cocktail,
		Upload:       components.Upload,
		Error:        components.Error,
	}

	a := app.App{
		AgentRepo:        catalog.AgentRepo{},
		IsolateRepo:      catalog.IsolateRepo{},
		SurveillanceRepo: catalog.SurveillanceRepo{},
		GwasRepo:         catalog.GwasRepo{},
		ModelRepo:        catalog.ModelRepo{},
		RegulatoryRepo:   catalog.RegulatoryRepo{},
		RNARepo:          catalog.RNARepo{},
		ComponentBuilder: componentBuilder,
		Config:           config(),
	}

	a.Start()
}
