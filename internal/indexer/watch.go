package indexer

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"jasper/internal/model"
)

// Watch re-indexes files as they change under the configured folders until
// ctx is done. fsnotify is not recursive, so every subdirectory gets its own
// watch, including ones created later.
func (ix *Indexer) Watch(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	for _, folder := range ix.cfg.Folders {
		if err := ix.addTree(ctx, w, folder); err != nil {
			return err
		}
	}
	ix.l.Infof(ctx, "%s.Watch: watching %d folders", LogPrefix, len(ix.cfg.Folders))

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			ix.handle(ctx, w, ev)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			ix.l.Warnf(ctx, "%s.Watch: %v", LogPrefix, err)
		}
	}
}

func (ix *Indexer) handle(ctx context.Context, w *fsnotify.Watcher, ev fsnotify.Event) {
	path, err := filepath.Abs(ev.Name)
	if err != nil {
		return
	}

	switch {
	case ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename):
		if !ix.Allowed(path) {
			return
		}
		if err := ix.Remove(ctx, path); err != nil {
			ix.l.Warnf(ctx, "%s.Watch: remove %s: %v", LogPrefix, path, err)
		}

	case ev.Has(fsnotify.Create) || ev.Has(fsnotify.Write):
		info, err := os.Stat(path)
		if err != nil {
			return
		}
		if info.IsDir() {
			if ev.Has(fsnotify.Create) && !skipDir(info.Name()) {
				if err := ix.addTree(ctx, w, path); err != nil {
					ix.l.Warnf(ctx, "%s.Watch: %v", LogPrefix, err)
				}
			}
			return
		}
		if !info.Mode().IsRegular() || !ix.Allowed(path) {
			return
		}

		ix.status(ctx, model.IndexStatus{Percent: 0, Status: model.IndexStatusIndexing})
		n, err := ix.IndexFile(ctx, path, false)
		if err != nil {
			ix.l.Warnf(ctx, "%s.Watch: index %s: %v", LogPrefix, path, err)
			ix.status(ctx, model.IndexStatus{Status: model.IndexStatusError, Error: err.Error()})
			return
		}
		if n > 0 {
			ix.l.Infof(ctx, "%s.Watch: re-indexed %s (%d chunks)", LogPrefix, filepath.Base(path), n)
		}
		ix.status(ctx, model.IndexStatus{Percent: 100, Status: model.IndexStatusIdle})
	}
}

func (ix *Indexer) addTree(ctx context.Context, w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && skipDir(d.Name()) {
			return filepath.SkipDir
		}
		if err := w.Add(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			ix.l.Debugf(ctx, "%s.addTree: %s: %v", LogPrefix, path, err)
		}
		return nil
	})
}
