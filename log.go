package main

import (
	stdlog "log"
	"time"

	"github.com/fatih/color"
)

type logger struct {
	quiet bool
}

var log logger

var (
	infoPrefix  = color.New(color.FgGreen).Sprint("[INFO]")
	warnPrefix  = color.New(color.FgYellow).Sprint("[WARN]")
	errPrefix   = color.New(color.FgRed).Sprint("[ERROR]")
	fatalPrefix = color.New(color.FgRed, color.Bold).Sprint("[FATAL]")
)

func (l *logger) Info(format string, value ...any) {
	if l.quiet {
		return
	}
	stdlog.Printf(infoPrefix+" "+format, value...)
}

func (l *logger) Warn(format string, value ...any) {
	stdlog.Printf(warnPrefix+" "+format, value...)
}

func (l *logger) Err(format string, value ...any) {
	stdlog.Printf(errPrefix+" "+format, value...)
}

func (l *logger) Fatal(format string, value ...any) {
	stdlog.Fatalf(fatalPrefix+" "+format, value...)
}

// measure logs the time elapsed between its call and the call of the returned func
func measure(name string) func() {
	start := time.Now()
	return func() {
		log.Info("%s execution time: %v\n", name, time.Since(start))
	}
}
