package cmd

import (
	"github.com/klwxsrx/go-mediator/pkg/env"
	"github.com/klwxsrx/go-mediator/pkg/log"
)

// InitLogger reads LOG_LEVEL, info level is used when it is missing or unknown.
func InitLogger(appName string) log.Logger {
	levelName, err := env.Parse[string]("LOG_LEVEL")
	if err != nil {
		return log.New(log.LevelInfo, log.WithAttributes(log.Fields{"app": appName}))
	}

	level, _ := log.ParseLevel(levelName)
	return log.New(level, log.WithAttributes(log.Fields{"app": appName}))
}
