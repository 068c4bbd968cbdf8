package syncinfo

import (
	"context"
	"path/filepath"
	gosync "sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// UpdatedMsg is a tea.Msg carrying freshly loaded sync info. Info is
// nil when no provenance is available; the header simply drops the
// indicator.
type UpdatedMsg struct {
	Info *Info
}

// Watcher refreshes the provenance indicator whenever the sync log
// changes on disk. When a remote info URL is configured it is preferred
// over reading the file directly; the file watch still drives refresh
// timing in both cases.
type Watcher struct {
	logPath string
	infoURL string

	msgCh  chan UpdatedMsg
	stopCh chan struct{}

	mu      gosync.Mutex
	running bool
}

// NewWatcher creates a watcher for the given log path. infoURL may be
// empty.
func NewWatcher(logPath, infoURL string) *Watcher {
	return &Watcher{
		logPath: logPath,
		infoURL: infoURL,
		msgCh:   make(chan UpdatedMsg, 4),
		stopCh:  make(chan struct{}),
	}
}

// Start begins watching and returns a tea.Cmd that delivers the initial
// load. Subsequent updates arrive through WaitForUpdate subscriptions.
func (w *Watcher) Start() tea.Cmd {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return w.WaitForUpdate()
	}
	w.running = true
	w.mu.Unlock()

	go w.watch()

	return func() tea.Msg {
		return UpdatedMsg{Info: w.load()}
	}
}

// Stop halts the watch goroutine.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.running {
		return
	}
	close(w.stopCh)
	w.running = false
}

// WaitForUpdate returns a tea.Cmd that blocks until the next update.
// The root model re-issues it after handling each UpdatedMsg.
func (w *Watcher) WaitForUpdate() tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-w.msgCh:
			return msg
		case <-w.stopCh:
			return nil
		}
	}
}

func (w *Watcher) load() *Info {
	if w.infoURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		return Fetch(ctx, nil, w.infoURL)
	}
	info, err := ParseFile(w.logPath)
	if err != nil {
		return nil
	}
	return info
}

func (w *Watcher) watch() {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return
	}
	defer fw.Close()

	// Watch the directory: sync scripts typically replace the log file
	// atomically, which drops a watch on the file itself.
	if err := fw.Add(filepath.Dir(w.logPath)); err != nil {
		return
	}

	// Writers often emit several events per sync; debounce them.
	var pending *time.Timer
	defer func() {
		if pending != nil {
			pending.Stop()
		}
	}()

	for {
		select {
		case <-w.stopCh:
			return

		case ev, ok := <-fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != filepath.Clean(w.logPath) {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if pending != nil {
				pending.Stop()
			}
			pending = time.AfterFunc(200*time.Millisecond, func() {
				select {
				case w.msgCh <- UpdatedMsg{Info: w.load()}:
				case <-w.stopCh:
				}
			})

		case _, ok := <-fw.Errors:
			if !ok {
				return
			}
		}
	}
}
