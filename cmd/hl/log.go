package main

import (
	"log"
	"os"
	"strings"
)

type loglevel int

const (
	debuglvl loglevel = iota
	infolvl
	warnlvl
	errorlvl
)

const logLevelEnv = "HL_LOG_LEVEL"

// warn is the default so that shadowed field bindings are reported.
var logLevel = parseLogLevel(os.Getenv(logLevelEnv))

func parseLogLevel(lvl string) loglevel {
	switch strings.ToLower(strings.TrimSpace(lvl)) {
	case "debug":
		return debuglvl
	case "info":
		return infolvl
	case "warn", "warning":
		return warnlvl
	case "error":
		return errorlvl
	default:
		return warnlvl
	}
}

// fatal logs err and exits. error is the highest level, so it is never
// filtered out.
func fatal(err error) {
	logerror("%v", err)
	os.Exit(1)
}

func logdebug(format string, args ...interface{}) {
	if logLevel <= debuglvl {
		log.Printf("[debug] "+format, args...)
	}
}

func loginfo(format string, args ...interface{}) {
	if logLevel <= infolvl {
		log.Printf("[info] "+format, args...)
	}
}

func logwarn(format string, args ...interface{}) {
	if logLevel <= warnlvl {
		log.Printf("[warn] "+format, args...)
	}
}

func logerror(format string, args ...interface{}) {
	if logLevel <= errorlvl {
		log.Printf("[error] "+format, args...)
	}
}
