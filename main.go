package main

import (
	"trendwatch/cmd/handlers"
	"trendwatch/internal/logger"
)

func main() {
	logger.Init()
	handlers.Execute()
}
