// ABOUTME: CLI mode implementation for one-shot playlist optimization
// ABOUTME: Handles result table output, the quality summary, and CSV export

package main

import (
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"harmonic-flow/config"
	"harmonic-flow/playlist"
)

// RunCLI executes one optimization run end to end: load, optimize, report,
// export
func RunCLI(opts RunOptions) error {
	if opts.DebugLog {
		if err := SetupDebugLog("harmonic-flow-debug.log"); err != nil {
			return err
		}
	}

	cfg, _ := config.LoadConfig(config.GetConfigPath())

	policy, err := resolvePolicy(opts.Policy, cfg)
	if err != nil {
		return err
	}

	tracks, err := LoadTracks(LoadOptions{
		Path:    opts.InputPath,
		Verbose: cfg.Verbose,
	})
	if err != nil {
		return err
	}

	keyed := 0

	for i := range tracks {
		if tracks[i].Parsed != nil {
			keyed++
		}
	}

	fmt.Printf("Loaded %d tracks (%d with a recognised key)\n", len(tracks), keyed)

	if keyed == 0 {
		fmt.Println("Warning: no track resolved to a Camelot key; output keeps the original order")
	}

	debugf("[CLI] optimizing %d tracks, policy %s", len(tracks), policy)

	sorted := playlist.Optimize(tracks, playlist.OptimizeOptions{
		Policy:      policy,
		SolverLimit: cfg.ExactSolverLimit,
	})

	fmt.Printf("\nOptimized playlist (%s):\n\n", policy)
	printTrackTable(sorted)

	report := playlist.BuildReport(sorted)
	printReport(report)

	if opts.DryRun {
		fmt.Println("\n--dry-run mode: no export written")

		return nil
	}

	outputPath := opts.OutputPath
	if outputPath == "" {
		outputPath = defaultOutputPath(opts.InputPath)
	}

	fmt.Printf("\nWriting sorted playlist to: %s\n", outputPath)

	if err := playlist.WriteCSV(outputPath, sorted); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}

	fmt.Println("Done!")

	return nil
}

// printTrackTable renders the reordered playlist as an aligned table
func printTrackTable(tracks []playlist.Track) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	if _, err := fmt.Fprintln(w, "#\tKey\tWheel\tBPM\tArtist\tTitle"); err != nil {
		log.Printf("Warning: failed to write header: %v", err)
	}

	if _, err := fmt.Fprintln(w, "---\t---\t-----\t---\t------\t-----"); err != nil {
		log.Printf("Warning: failed to write separator: %v", err)
	}

	for i, track := range tracks {
		wheel := "-"
		if track.Parsed != nil {
			wheel = track.Parsed.String()
		}

		if _, err := fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			i+1,
			truncate(track.Key, 10),
			wheel,
			FormatBPM(track.BPM),
			truncate(track.Artist, 25),
			truncate(track.Title, 35),
		); err != nil {
			log.Printf("Warning: failed to write track %d: %v", i+1, err)
		}
	}

	if err := w.Flush(); err != nil {
		log.Printf("Warning: failed to flush output: %v", err)
	}
}

// printReport renders the transition quality summary
func printReport(report playlist.Report) {
	if report.Transitions == 0 {
		return
	}

	fmt.Printf("\nTransitions: %d  perfect: %d  good: %d  rough: %d\n",
		report.Transitions, report.Perfect, report.Good, report.Bad)
	fmt.Printf("Total harmonic distance: %d (worst single jump: %d)\n",
		report.TotalDistance, report.WorstJump)
}
