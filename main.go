package main

import (
	"secretary-api/core/logger"
	"secretary-api/core/server"
)

// @title Secretary API
// @version 1.0
// @description Scheduling-request backend: records meeting requests to a
// @description spreadsheet, or finds and books open calendar slots.

// @host localhost:7070
// @BasePath /api/v1

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", "error", err)
	}
}
