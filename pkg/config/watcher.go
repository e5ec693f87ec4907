package config

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce coalesces the event bursts editors and configmap updates
// produce into a single reload.
const watchDebounce = 250 * time.Millisecond

// WatchPolicy re-reads argus.yaml whenever it changes and applies the
// triage action_policy to the live store. Only the policy is hot;
// everything else requires a restart.
//
// The directory is watched rather than the file so Kubernetes configmap
// symlink swaps (remove + create) keep working. Returns a stop function.
func WatchPolicy(ctx context.Context, configDir string, store *PolicyStore) (func(), error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := watcher.Add(configDir); err != nil {
		watcher.Close()
		return nil, err
	}

	log := slog.With("config_dir", configDir)
	target := filepath.Join(configDir, "argus.yaml")
	done := make(chan struct{})

	go func() {
		defer close(done)

		var pending *time.Timer
		var pendingC <-chan time.Time

		for {
			select {
			case <-ctx.Done():
				return

			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				if pending == nil {
					pending = time.NewTimer(watchDebounce)
					pendingC = pending.C
				} else {
					pending.Reset(watchDebounce)
				}

			case <-pendingC:
				pending = nil
				pendingC = nil
				reloadPolicy(configDir, store, log)

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Warn("Config watcher error", "error", err)
			}
		}
	}()

	stop := func() {
		watcher.Close()
		<-done
	}
	return stop, nil
}

// reloadPolicy parses argus.yaml and applies the action policy. A file that
// fails to load or validate leaves the running policy untouched.
func reloadPolicy(configDir string, store *PolicyStore, log *slog.Logger) {
	loader := &configLoader{configDir: configDir}

	argusConfig, err := loader.loadArgusYAML()
	if err != nil {
		log.Warn("Ignoring config change, reload failed", "error", err)
		return
	}

	if argusConfig.Triage == nil || argusConfig.Triage.ActionPolicy == "" {
		return
	}

	if err := store.Set(argusConfig.Triage.ActionPolicy); err != nil {
		log.Warn("Ignoring config change, invalid action_policy",
			"action_policy", argusConfig.Triage.ActionPolicy,
			"error", err)
	}
}
