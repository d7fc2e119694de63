package main

import (
	"playzio-api/core/logger"
	"playzio-api/core/server"
)

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", err)
	}
}
