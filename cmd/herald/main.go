// Herald - a UCI chess engine core.
package main

import (
	"flag"
	"log"
	"os"
	"runtime/pprof"

	"github.com/heraldchess/herald/internal/board"
	"github.com/heraldchess/herald/internal/storage"
	"github.com/heraldchess/herald/internal/uci"
)

var (
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
	nostorage  = flag.Bool("nostorage", false, "run without the preferences database")
	startFEN   = flag.String("fen", "", "verify a FEN parses and print it back, then exit")
)

func main() {
	flag.Parse()

	// Start CPU profiling if requested (via flag or environment variable)
	profilePath := *cpuprofile
	if profilePath == "" {
		profilePath = os.Getenv("CPUPROFILE")
	}
	if profilePath != "" {
		f, err := os.Create(profilePath)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
		log.Printf("CPU profiling enabled, writing to %s", profilePath)
	}

	if *startFEN != "" {
		pos, err := board.ParseFEN(*startFEN)
		if err != nil {
			log.Fatal("invalid FEN: ", err)
		}
		os.Stdout.WriteString(pos.ToFEN() + "\n")
		return
	}

	var store *storage.Store
	if !*nostorage {
		s, err := storage.OpenDefault()
		if err != nil {
			log.Printf("Warning: storage unavailable: %v (options will not persist)", err)
		} else {
			store = s
			defer store.Close()
		}
	}

	uci.Run(os.Stdin, os.Stdout, store)
}
