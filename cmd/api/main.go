// Package main SweepScout Tracker API
//
// SweepScout Tracker is the backend for a sweepstakes casino review site.
// It keeps a per-user list of saved casinos with tracked balances and
// deposits, maintains the aggregate totals behind the community
// leaderboard, and serves the editorial casino catalog.
//
//	Schemes: http, https
//	Host: localhost:8080
//	BasePath: /api/v1
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
//	Security:
//	- bearer
package main

import (
	"context"

	_ "github.com/sweepscout/tracker/docs"
	"github.com/sweepscout/tracker/internal/app"
)

// @title SweepScout Tracker API Service
// @version 1.0
// @description SweepScout Tracker keeps per-user saved casino lists, balance tracking, the community leaderboard and the casino catalog for the review site.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	ctx := context.Background()
	application := app.NewApplication(ctx)
	application.Setup()
}
