package main

import (
	"net/http"

	"replink_backend/internal/app"
	"replink_backend/internal/logger"
)

func main() {
	a, err := app.New()
	if err != nil {
		logger.Fatal("failed to start", "error", err.Error())
	}

	if err := a.Run(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", "error", err.Error())
	}
}
