// Package observer re-runs a conversion whenever its input file changes.
package observer

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Handler performs one conversion.
type Handler func(ctx context.Context) error

type Observer struct {
	input    string
	debounce time.Duration
	handler  Handler
	logger   *zap.Logger

	mu       sync.Mutex
	runs     int
	failures int
}

func NewObserver(input string, debounce time.Duration, handler Handler, logger *zap.Logger) *Observer {
	return &Observer{
		input:    input,
		debounce: debounce,
		handler:  handler,
		logger:   logger,
	}
}

// Start converts once, then watches the input file and converts again after
// every burst of changes has been quiet for the debounce interval. It blocks
// until ctx is cancelled or the watcher fails. Conversion errors are logged
// and do not stop the watch.
func (o *Observer) Start(ctx context.Context) error {
	input, err := filepath.Abs(o.input)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// the directory, so a file replaced by an editor is still seen
	dir := filepath.Dir(input)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	o.logger.Info("watching for changes", zap.String("input", input), zap.Duration("debounce", o.debounce))

	o.process(ctx)

	timer := time.NewTimer(o.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != input {
				continue
			}
			// some editors move the input aside before saving
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				o.logger.Debug("detected change", zap.String("op", event.Op.String()))
				timer.Reset(o.debounce)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			o.logger.Warn("watcher error", zap.Error(err))

		case <-timer.C:
			o.process(ctx)

		case <-ctx.Done():
			o.logger.Info("watch stopped")
			return nil
		}
	}
}

func (o *Observer) process(ctx context.Context) {
	err := o.handler(ctx)

	o.mu.Lock()
	o.runs++
	if err != nil {
		o.failures++
	}
	o.mu.Unlock()

	if err != nil {
		o.logger.Warn("conversion failed, waiting for the next change", zap.Error(err))
	}
}

// Stats returns the number of conversions run and how many failed.
func (o *Observer) Stats() (runs, failures int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.runs, o.failures
}
