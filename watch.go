package devblog

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// Watch invalidates the cache whenever a file under dir is written, created,
// removed or renamed. Directories created later are watched too. Watching
// stops when ctx is done.
func (c *CollectionCache) Watch(ctx context.Context, dir string, log zerolog.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watchTree(watcher, dir); err != nil {
		watcher.Close()
		return err
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !(event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)) {
					continue
				}
				if event.Has(fsnotify.Create) && isDir(event.Name) {
					if err := watchTree(watcher, event.Name); err != nil {
						log.Warn().Err(err).Str("dir", event.Name).Msg("watch new directory")
					}
				}
				log.Debug().Str("path", event.Name).Str("op", event.Op.String()).Msg("content changed")
				c.Invalidate()
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Warn().Err(err).Msg("content watcher")
			}
		}
	}()
	return nil
}

func watchTree(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.Add(p)
		}
		return nil
	})
}

func isDir(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.IsDir()
}
