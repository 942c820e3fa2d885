package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/philipparndt/gohalfedge/pkg/analysis"
	"github.com/philipparndt/gohalfedge/pkg/watcher"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Rebuild the mesh whenever the source file changes",
	Long: `Build the mesh, print a one-line summary, and rebuild it each time the file
changes. For OpenSCAD files every used or included file is watched as well.`,
	Args: cobra.ExactArgs(1),
	Run:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 500*time.Millisecond, "Quiet period before a change triggers a rebuild")
}

func runWatch(cmd *cobra.Command, args []string) {
	filename := args[0]

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fw, err := watcher.NewFileWatcher(watchDebounce, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating file watcher: %v\n", err)
		os.Exit(1)
	}
	defer fw.Close()

	changed := make(chan string, 1)
	notify := func(path string) {
		select {
		case changed <- path:
		default:
			// a rebuild is already queued
		}
	}

	rebuild(ctx, filename)
	if err := rewatch(fw, filename, notify); err != nil {
		fmt.Fprintf(os.Stderr, "Error watching files: %v\n", err)
		os.Exit(1)
	}
	fw.Start()

	for {
		select {
		case <-ctx.Done():
			fmt.Println("Stopped watching.")
			return
		case path := <-changed:
			logger.Info("source changed", zap.String("path", path))
			rebuild(ctx, filename)
			// OpenSCAD dependencies may have changed with the edit
			if err := rewatch(fw, filename, notify); err != nil {
				logger.Warn("failed to refresh watch list", zap.Error(err))
			}
		}
	}
}

// rewatch replaces the watched set with the current dependency list
func rewatch(fw *watcher.FileWatcher, filename string, notify func(string)) error {
	files, err := watchList(filename)
	if err != nil {
		return err
	}
	if err := fw.RemoveAll(); err != nil {
		return err
	}
	if err := fw.Watch(files, notify); err != nil {
		return err
	}
	logger.Debug("watching files", zap.Strings("files", files))
	return nil
}

// rebuild loads a fresh mesh and prints its summary; failures are reported
// and the previous state is simply dropped
func rebuild(ctx context.Context, filename string) {
	start := time.Now()

	mesh, report, err := loadMesh(ctx, filename)
	if err != nil {
		logger.Error("rebuild failed", zap.String("file", filename), zap.Error(err))
		return
	}

	result, err := analysis.AnalyzeMesh(mesh)
	if err != nil {
		logger.Error("analysis failed", zap.String("file", filename), zap.Error(err))
		return
	}

	fmt.Printf("[%s] %s: %d vertices, %d edges, %d faces, closed=%t, skipped=%d (%s)\n",
		time.Now().Format("15:04:05"),
		filename,
		result.VertexCount,
		result.EdgeCount,
		result.FaceCount,
		result.Closed,
		report.Degenerate+report.NonManifold,
		time.Since(start).Round(time.Millisecond),
	)
}
