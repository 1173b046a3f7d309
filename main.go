package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/shandysiswandi/academia/internal/app"
)

// @title           Academia API
// @version         1.0
// @description     Academia provides the admin backend for courses, students, staff, careers and applications.
// @termsOfService  https://academia.local/terms
// @contact.name    Academia Support
// @contact.email   support@academia.local
// @license.name    MIT
// @license.url     https://mit-license.org/
// @server          http://localhost:8080
// @securityDefinitions.apikey  BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT.
func main() {
	if err := app.New().Run(context.Background(), 15*time.Second); err != nil {
		slog.Error("application exited", "error", err)
		os.Exit(1)
	}
}
