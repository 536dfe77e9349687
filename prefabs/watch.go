package prefabs

import (
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadQuiet is how long a file must go unwritten before it is reported.
const reloadQuiet = 100 * time.Millisecond

// Watcher reports edited prefab files by base name, e.g. "player.yaml".
// A burst of writes to the same file is reported once, after the file has
// been quiet for reloadQuiet, so a partly written file is never reported.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Close stops the watcher. Events and Errors are closed once the reader
// goroutine has exited.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
	})
	return err
}

func (w *Watcher) run() {
	defer func() {
		close(w.Events)
		close(w.Errors)
		close(w.done)
	}()

	lastWrite := make(map[string]time.Time)
	timer := time.NewTimer(reloadQuiet)
	timer.Stop()
	defer timer.Stop()
	var fire <-chan time.Time

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !isSpecFile(event.Name) {
				continue
			}
			lastWrite[event.Name] = time.Now()
			if fire == nil {
				timer.Reset(reloadQuiet)
				fire = timer.C
			}
		case now := <-fire:
			fire = nil
			for _, name := range settled(lastWrite, now) {
				select {
				case w.Events <- filepath.Base(name):
				case <-w.closeCh:
					return
				}
			}
			if wait, ok := nextSettle(lastWrite, time.Now()); ok {
				timer.Reset(wait)
				fire = timer.C
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

// settled removes and returns the files quiet for at least reloadQuiet.
func settled(lastWrite map[string]time.Time, now time.Time) []string {
	var out []string
	for name, t := range lastWrite {
		if now.Sub(t) >= reloadQuiet {
			out = append(out, name)
			delete(lastWrite, name)
		}
	}
	sort.Strings(out)
	return out
}

// nextSettle reports how long until the next pending file goes quiet.
func nextSettle(lastWrite map[string]time.Time, now time.Time) (time.Duration, bool) {
	var wait time.Duration
	found := false
	for _, t := range lastWrite {
		d := reloadQuiet - now.Sub(t)
		if d < 0 {
			d = 0
		}
		if !found || d < wait {
			wait, found = d, true
		}
	}
	return wait, found
}

func isSpecFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
