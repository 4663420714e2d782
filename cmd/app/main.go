package main

import (
	"jumpy/config"
	"jumpy/di"
	"jumpy/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
