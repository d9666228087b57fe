package main

import (
	"github.com/banana-boutique/bananaservice/internal/server"
	"github.com/banana-boutique/bananaservice/internal/util"
	"github.com/banana-boutique/bananaservice/pkg/logger"
	"github.com/banana-boutique/bananaservice/pkg/logger/console"
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
