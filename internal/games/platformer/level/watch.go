package level

import (
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce drops repeated events for one file; editors often write a file
// several times per save.
const debounce = 100 * time.Millisecond

// Watcher reports level files that changed on disk.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan string // Paths of changed level files
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// NewWatcher starts watching the given directories and every directory below
// them, matching what Loader.LoadAll reads. Directories created later are
// watched as they appear.
func NewWatcher(dirs ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := addTree(fw, dir); err != nil {
			_ = fw.Close()
			return nil, err
		}
	}

	w := &Watcher{
		watcher: fw,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.Events)
	defer close(w.Errors)

	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := addTree(w.watcher, event.Name); err != nil {
						w.sendError(err)
					}
					w.sendLevelsIn(event.Name)
					continue
				}
			}
			if !IsLevelFile(event.Name) {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < debounce {
				continue
			}
			last[event.Name] = now
			select {
			case w.Events <- event.Name:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.sendError(err)
		case <-w.closeCh:
			return
		}
	}
}

// sendError reports err unless an earlier error is still unread.
func (w *Watcher) sendError(err error) {
	select {
	case w.Errors <- err:
	default:
	}
}

// sendLevelsIn reports level files already inside a new directory; they can
// be written before the directory itself is watched.
func (w *Watcher) sendLevelsIn(dir string) {
	_ = filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !IsLevelFile(p) {
			return nil
		}
		select {
		case w.Events <- p:
		case <-w.closeCh:
			return filepath.SkipAll
		}
		return nil
	})
}

// addTree watches dir and every directory below it.
func addTree(fw *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		return fw.Add(p)
	})
}
