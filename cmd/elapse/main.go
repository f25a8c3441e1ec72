package main

import (
	"fmt"
	"log"
	"os"
	"runtime"
)

const version = "0.1.0"

func main() {
	log.SetFlags(log.Ltime | log.Lmicroseconds)

	// If no arguments or "demo", launch the interactive stopwatch
	if len(os.Args) < 2 || os.Args[1] == "demo" {
		if err := startTUI(); err != nil {
			log.Fatalf("TUI error: %v", err)
		}
		return
	}

	cmd := os.Args[1]

	switch cmd {
	case "version":
		fmt.Printf("elapse v%s\n", version)
		fmt.Printf("Platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		return
	case "help", "-h", "--help":
		usage()
		return
	default:
		log.Fatalf("ERROR: unknown command %q (try 'elapse help')", cmd)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Elapse - Elapsed-Time Measurement Library Demo

Usage:
  elapse [demo]
      Launch the interactive stopwatch

  elapse version
      Show version and platform information

  elapse help
      Show this help message

Keys (inside the stopwatch):
  space   start / stop
  l       record a lap while running
  r       reset
  q       quit and dump the recorded laps as JSON

About:
  Elapse is a nanosecond-resolution elapsed-time measurement library
  for Go. The demo drives the library's stopwatch over the system
  monotonic clock and journals every completed measurement.
`)
}
