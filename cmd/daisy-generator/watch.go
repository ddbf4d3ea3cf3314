package main

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"daisy-generator/internal/pipeline"
)

func (a *app) watchCmd() *cobra.Command {
	o := &genOptions{}

	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Regenerate the Daisy project whenever the patch changes",
		Long: `watch runs gen once and then again after every change to the patch
sources, the externs file, the metadata file or the board file.
Runs never overlap; changes arriving during a run trigger one more run.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return a.watch(ctx, cmd, o, debounce)
		},
	}

	o.register(cmd)
	cmd.Flags().DurationVar(&debounce, "debounce", 300*time.Millisecond, "Quiet period before regenerating")

	return cmd
}

// watchSet decides which filesystem events should trigger a run.
type watchSet struct {
	srcDir string
	outDir string
	files  map[string]struct{}
}

func newWatchSet(o *genOptions) (*watchSet, error) {
	srcDir, err := filepath.Abs(o.src)
	if err != nil {
		return nil, err
	}

	outRoot, err := filepath.Abs(o.out)
	if err != nil {
		return nil, err
	}

	// only the generated tree is excluded; hvcc puts the patch sources next to it
	outDir := filepath.Join(outRoot, pipeline.OutSubdir)

	ws := &watchSet{srcDir: srcDir, outDir: outDir, files: map[string]struct{}{}}

	for _, f := range []string{o.externs, o.meta, o.boardFile} {
		if f == "" {
			continue
		}

		abs, err := filepath.Abs(f)
		if err != nil {
			return nil, err
		}

		ws.files[abs] = struct{}{}
	}

	return ws, nil
}

func within(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)

	return err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// relevant reports whether a change to path affects the generated project.
func (ws *watchSet) relevant(path string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}

	if within(ws.outDir, abs) {
		return false
	}

	if _, ok := ws.files[abs]; ok {
		return true
	}

	return within(ws.srcDir, abs)
}

// dirs lists the directories to register with the watcher.
func (ws *watchSet) dirs() ([]string, error) {
	var dirs []string

	err := filepath.WalkDir(ws.srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if within(ws.outDir, path) {
				return filepath.SkipDir
			}

			dirs = append(dirs, path)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", ws.srcDir, err)
	}

	for f := range ws.files {
		dirs = append(dirs, filepath.Dir(f))
	}

	return dirs, nil
}

func (a *app) watch(ctx context.Context, cmd *cobra.Command, o *genOptions, debounce time.Duration) error {
	ws, err := newWatchSet(o)
	if err != nil {
		return err
	}

	dirs, err := ws.dirs()
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	a.logger.Info("watching for changes", zap.Strings("dirs", dirs))

	run := func() {
		if _, err := a.generate(cmd, o); err != nil {
			a.logger.Warn("generation failed, waiting for changes", zap.Error(err))
		}
	}

	run()

	timer := time.NewTimer(debounce)
	timer.Stop()

	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if !ws.relevant(event.Name) {
				continue
			}

			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = watcher.Add(event.Name)
				}
			}

			a.logger.Debug("change detected", zap.String("path", event.Name), zap.Stringer("op", event.Op))
			timer.Reset(debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			a.logger.Error("watcher error", zap.Error(err))

		case <-timer.C:
			run()
		}
	}
}
