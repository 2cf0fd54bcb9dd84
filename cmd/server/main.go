package main

import (
	"github.com/black-vein/oracle/backend/internal/server"
	"github.com/black-vein/oracle/backend/internal/util"
	"github.com/black-vein/oracle/backend/pkg/logger"
	"github.com/black-vein/oracle/backend/pkg/logger/console"

	_ "github.com/lib/pq"
)

func main() {
	util.LoadEnv()

	debug := util.GetEnvBool("DEBUG", false)

	consoleLogger := console.NewConsoleLogger(console.ConsoleLoggerParams{
		Debug: debug,
	})
	logger.Init(consoleLogger)

	server.Init()
}
