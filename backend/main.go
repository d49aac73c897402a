package main

import (
	"flag"
	"fmt"
	"net/http"

	"trackfitnessgoals/backend/global"
	"trackfitnessgoals/backend/initialize"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to config file")
	flag.Parse()

	app, err := initialize.Build(*configPath)
	if err != nil {
		global.Logger.Fatal().Err(err).Msg("failed to build application")
	}

	addr := fmt.Sprintf("%s:%d", app.Cfg.HTTP.Host, app.Cfg.HTTP.Port)
	global.Logger.Info().Str("addr", addr).Msg("listening")
	if err := http.ListenAndServe(addr, app.Router); err != nil {
		global.Logger.Fatal().Err(err).Msg("server stopped")
	}
}
