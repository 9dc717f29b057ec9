package prefabs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce collapses the burst of writes most editors produce on save.
const DefaultDebounce = 100 * time.Millisecond

// ChangeKind says which loader a changed file feeds.
type ChangeKind int

const (
	ChangeTuning ChangeKind = iota + 1
	ChangeScript
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeTuning:
		return "tuning"
	case ChangeScript:
		return "script"
	default:
		return "unknown"
	}
}

// Change reports one edited file.
type Change struct {
	Path string
	Kind ChangeKind
}

// Watcher reports edits to tuning and spawn script files. Events and Errors
// are closed by Close.
type Watcher struct {
	Events chan Change
	Errors chan error

	fs       *fsnotify.Watcher
	debounce time.Duration
	stop     chan struct{}
	done     chan struct{}
	once     sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, err
		}
	}

	w := &Watcher{
		Events:   make(chan Change, 16),
		Errors:   make(chan error, 1),
		fs:       fw,
		debounce: DefaultDebounce,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go w.pump()
	return w, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.stop)
		err = w.fs.Close()
		<-w.done
		close(w.Events)
		close(w.Errors)
	})
	return err
}

func (w *Watcher) pump() {
	defer close(w.done)
	seen := make(map[string]time.Time)
	for {
		select {
		case <-w.stop:
			return
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			change, ok := classify(ev)
			if !ok {
				continue
			}
			now := time.Now()
			if at, hit := seen[change.Path]; hit && now.Sub(at) < w.debounce {
				continue
			}
			seen[change.Path] = now
			select {
			case w.Events <- change:
			case <-w.stop:
				return
			}
		}
	}
}

// classify drops removals and chmods, and files no loader reads.
func classify(ev fsnotify.Event) (Change, bool) {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
		return Change{}, false
	}
	switch strings.ToLower(filepath.Ext(ev.Name)) {
	case ".yaml", ".yml":
		return Change{Path: ev.Name, Kind: ChangeTuning}, true
	case ".tengo":
		return Change{Path: ev.Name, Kind: ChangeScript}, true
	}
	return Change{}, false
}
