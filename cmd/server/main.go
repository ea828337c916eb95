package main

import (
	"os"

	"go.uber.org/fx"

	"github.com/maxviazov/wrestling-analytics/internal/app"
)

func main() {
	path := os.Getenv("APP_CONFIG")
	if path == "" {
		path = "config.yaml"
	}
	fx.New(app.Module(path)).Run()
}
