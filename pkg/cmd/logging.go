package cmd

import (
	"sync"

	"github.com/rifflock/lfshook"
	log "github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/c9s/fraccalc/pkg/envvar"
)

var fileHookOnce sync.Once

func setupLogging(debug bool) {
	log.SetFormatter(&prefixed.TextFormatter{})

	logger := log.StandardLogger()
	if debug {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.InfoLevel)
	}

	environment, _ := envvar.String("FRACCALC_ENV")
	switch environment {
	case "production", "prod":
		fileHookOnce.Do(func() {
			logFile, _ := envvar.String("FRACCALC_LOG_FILE", "log/fraccalc.log")
			writer := &lumberjack.Logger{
				Filename:   logFile,
				MaxSize:    10, // megabytes
				MaxBackups: 7,
				MaxAge:     28, // days
			}

			logger.AddHook(
				lfshook.NewHook(
					lfshook.WriterMap{
						log.DebugLevel: writer,
						log.InfoLevel:  writer,
						log.WarnLevel:  writer,
						log.ErrorLevel: writer,
						log.FatalLevel: writer,
					},
					&log.JSONFormatter{},
				),
			)
		})
	}
}
