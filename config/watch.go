package config

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a config file on change and publishes valid results
// Consumers drain Updates at their tick boundary; only the newest pending config is kept
type Watcher struct {
	path     string
	overlays []func(*Config)
	fsw      *fsnotify.Watcher
	updates  chan *Config

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewWatcher creates a watcher for path; nothing is opened until Init
// overlays run in order on every reloaded file, before validation
func NewWatcher(path string, overlays ...func(*Config)) *Watcher {
	return &Watcher{
		path:     filepath.Clean(path),
		overlays: overlays,
		updates:  make(chan *Config, 1),
		stopChan: make(chan struct{}),
	}
}

// Name implements service.Service
func (w *Watcher) Name() string {
	return "config"
}

// Dependencies implements service.Service
func (w *Watcher) Dependencies() []string {
	return nil
}

// Init opens the fsnotify handle on the file's directory
// Watching the directory survives editors that save by rename
func (w *Watcher) Init(args ...any) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		fsw.Close()
		return fmt.Errorf("config watcher: watch %s: %w", filepath.Dir(w.path), err)
	}
	w.fsw = fsw
	return nil
}

// Start launches the event loop
func (w *Watcher) Start() error {
	if w.fsw == nil {
		return fmt.Errorf("config watcher: not initialized")
	}
	w.wg.Add(1)
	go w.loop()
	return nil
}

// Stop halts the loop and closes the fsnotify handle, idempotent
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.stopChan)
		w.wg.Wait()
		if w.fsw != nil {
			err = w.fsw.Close()
		}
	})
	return err
}

// Updates delivers freshly loaded configs
func (w *Watcher) Updates() <-chan *Config {
	return w.updates
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	for {
		select {
		case <-w.stopChan:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			w.reload()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Printf("config watcher: %v", err)
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err != nil {
		// Half-written files fail to parse; the next write event retries
		log.Printf("config reload skipped: %v", err)
		return
	}
	for _, overlay := range w.overlays {
		overlay(cfg)
	}
	if err := cfg.Validate(); err != nil {
		log.Printf("config reload skipped: %v", err)
		return
	}

	// Replace any pending update with the newer one
	select {
	case <-w.updates:
	default:
	}
	select {
	case w.updates <- cfg:
	default:
	}
	log.Printf("config reloaded from %s", w.path)
}
