package main

import (
	"flag"
	"os"
	"path/filepath"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"qscientist/internal/game"
	"qscientist/internal/level"
	"qscientist/internal/logging"
	"qscientist/internal/perf"
)

func main() {
	levelPath := flag.String("level", "assets/levels/containment_lab.json", "level file (.json, .yaml)")
	logLevel := flag.String("log", "info", "log level: debug, info, warn, error")
	soundDir := flag.String("sounds", "assets/sounds", "sound cue directory, empty to disable audio")
	flag.Parse()

	log, err := logging.New(*logLevel)
	if err != nil {
		os.Exit(1)
	}
	defer log.Sync()

	// Deployed builds load assets relative to the binary; "go run" puts the
	// binary in a temp directory, so keep the caller's cwd there.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	lvl, err := level.LoadFile(*levelPath)
	if err != nil {
		log.Fatal("load level", zap.String("path", *levelPath), zap.Error(err))
	}

	tier := perf.Detect(log)

	rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagWindowHighdpi)
	rl.InitWindow(1600, 900, "Quantum Scientist")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)
	rl.DisableCursor()

	session := game.NewSession(lvl, tier, *soundDir, log)
	session.Run()
	session.Dispose()
}
