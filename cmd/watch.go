package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/yogeshrao/jaxb2-maven-plugin/internal/config"
	"github.com/yogeshrao/jaxb2-maven-plugin/internal/logging"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-run the generation step whenever schema or binding files change",
	RunE:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 500*time.Millisecond, "Quiet period after a change before regenerating")
}

func runWatch(cmd *cobra.Command, args []string) error {
	fs := afero.NewOsFs()
	log := logging.NewEntry("watch")

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	watched := 0
	for _, dir := range append(config.GetSourceDirs(), config.GetBindingDirs()...) {
		if exists, _ := afero.DirExists(fs, dir); !exists {
			continue
		}
		err := afero.Walk(fs, dir, func(path string, info os.FileInfo, err error) error {
			if err != nil || !info.IsDir() {
				return err
			}
			if err := watcher.Add(path); err != nil {
				return fmt.Errorf("failed to watch %s: %w", path, err)
			}
			watched++
			return nil
		})
		if err != nil {
			return err
		}
	}
	if watched == 0 {
		return fmt.Errorf("no source or binding directories to watch")
	}

	// Initial run so the output is current before waiting for changes.
	if err := executeGeneration(fs, false); err != nil {
		log.Errorf("generation failed: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Watching %d directories for changes (Ctrl-C to stop)...\n", watched)

	// The timer stays stopped until an event arrives, then fires once
	// after the debounce quiet period.
	timer := time.NewTimer(watchDebounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			fmt.Println("Stopped watching.")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			log.Debugf("change detected: %s", event)
			if event.Op&fsnotify.Create != 0 {
				if info, err := fs.Stat(event.Name); err == nil && info.IsDir() {
					watcher.Add(event.Name)
				}
			}
			timer.Reset(watchDebounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Errorf("watch error: %v", err)

		case <-timer.C:
			if err := executeGeneration(fs, false); err != nil {
				log.Errorf("generation failed: %v", err)
			}
		}
	}
}
