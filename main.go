// ABOUTME: Entry point for the harmonic-flow playlist optimizer
// ABOUTME: Handles command-line parsing, profiling, and routing to CLI or view modes

// Package main provides the entry point for harmonic-flow, a Camelot wheel
// playlist optimizer that reorders DJ track lists for harmonic mixing.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"
)

func main() {
	os.Exit(run())
}

func run() int {
	cpuprofile := flag.String("cpuprofile", "", "write cpu profile to file")
	memprofile := flag.String("memprofile", "", "write memory profile to file")
	policy := flag.String("policy", "", "energy policy: ramp_up, ramp_down or wave (default from config)")
	output := flag.String("output", "", "write sorted playlist CSV to this file (default: <input>_sorted.csv)")
	dryRun := flag.Bool("dry-run", false, "preview optimization without writing the export")
	view := flag.Bool("view", false, "watch and browse a playlist file instead of optimizing")
	debug := flag.Bool("debug", false, "enable debug logging to harmonic-flow-debug.log")
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		fmt.Println("Usage: harmonic-flow [flags] <playlist export>")
		fmt.Println("Example: harmonic-flow -policy ramp_up rekordbox_export.txt")
		fmt.Println("\nAccepts Rekordbox TXT/CSV exports and M3U8 playlists.")
		fmt.Println("\nFlags:")
		flag.PrintDefaults()

		return 1
	}

	inputPath := args[0]

	if *cpuprofile != "" {
		stopCPUProfile := setupCPUProfile(*cpuprofile)
		defer stopCPUProfile()
	}

	if *memprofile != "" {
		defer writeMemoryProfile(*memprofile)
	}

	if *view {
		if err := RunViewMode(inputPath); err != nil {
			log.Printf("View error: %v", err)

			return 1
		}

		return 0
	}

	if err := RunCLI(RunOptions{
		InputPath:  inputPath,
		OutputPath: *output,
		Policy:     *policy,
		DryRun:     *dryRun,
		DebugLog:   *debug,
	}); err != nil {
		log.Printf("CLI error: %v", err)

		return 1
	}

	return 0
}

// setupCPUProfile starts CPU profiling, returns cleanup function
func setupCPUProfile(filename string) func() {
	f, err := os.Create(filename)
	if err != nil {
		log.Fatalf("could not create CPU profile: %v", err)
	}

	if err := pprof.StartCPUProfile(f); err != nil {
		_ = f.Close()
		log.Fatalf("could not start CPU profile: %v", err)
	}

	return func() {
		pprof.StopCPUProfile()

		if err := f.Close(); err != nil {
			log.Printf("Warning: failed to close CPU profile: %v", err)
		}
	}
}

// writeMemoryProfile writes memory profile to file
func writeMemoryProfile(filename string) {
	f, err := os.Create(filename)
	if err != nil {
		log.Printf("could not create memory profile: %v", err)

		return
	}

	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("Warning: failed to close memory profile: %v", err)
		}
	}()

	runtime.GC()

	if err := pprof.WriteHeapProfile(f); err != nil {
		log.Printf("could not write memory profile: %v", err)
	}
}
