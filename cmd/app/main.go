package main

import (
	"campusbook/config"
	"campusbook/di"
	"campusbook/shared/logger"
)

// @title Campusbook API
// @version 1.0
// @description Campus resource booking service.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
