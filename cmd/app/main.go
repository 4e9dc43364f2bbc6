package main

import (
	_ "github.com/humanbelnik/kinomatch/docs"
	"github.com/humanbelnik/kinomatch/internal/app"
	"github.com/humanbelnik/kinomatch/internal/config"
)

// @title Kinomatch API
// @version 1.0
// @description Movie matching for pairs of friends: shared favorites, a daily pick and watch tracking.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.
func main() {
	app.Go(config.Load())
}
