package localization

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

const defaultDebounce = 300 * time.Millisecond

// Watcher 监听语言目录，语言文件变化后重新加载 Localization。
// 编辑器保存时往往连续产生多个事件，这些事件会被合并为一次重载。
type Watcher struct {
	loc      *Localization
	fsw      *fsnotify.Watcher
	debounce time.Duration
	onReload func(error)
	log      *logrus.Entry

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// WatchOption 配置 Watcher。
type WatchOption func(*Watcher)

// WithDebounce 设置合并事件的时间窗口。
func WithDebounce(d time.Duration) WatchOption {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// OnReload 设置每次重载完成后的回调，err 为重载结果。
func OnReload(fn func(err error)) WatchOption {
	return func(w *Watcher) {
		w.onReload = fn
	}
}

// NewWatcher 创建语言目录的监听器，需要调用 Start 才会开始工作。
func NewWatcher(loc *Localization, opts ...WatchOption) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(loc.Folder()); err != nil {
		fsw.Close()
		return nil, err
	}
	w := &Watcher{
		loc:      loc,
		fsw:      fsw,
		debounce: defaultDebounce,
		log:      loc.log.WithField("watch", loc.Folder()),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Start 在后台开始监听，ctx 取消或调用 Stop 后结束。
func (w *Watcher) Start(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return
	}
	w.running = true
	go w.loop(ctx)
}

// Stop 停止监听并等待后台 goroutine 退出。
func (w *Watcher) Stop() {
	w.mu.Lock()
	running := w.running
	if running {
		select {
		case <-w.stopCh:
		default:
			close(w.stopCh)
		}
	}
	w.mu.Unlock()

	if running {
		<-w.doneCh
		return
	}
	w.fsw.Close()
}

func (w *Watcher) loop(ctx context.Context) {
	defer close(w.doneCh)
	defer w.fsw.Close()

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Ext(ev.Name) != fileExt {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			timer.Reset(w.debounce)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.WithError(err).Warn("language folder watch error")
		case <-timer.C:
			err := w.loc.Reload()
			if err != nil {
				w.log.WithError(err).Error("reload languages failed")
			} else {
				w.log.Info("languages reloaded")
			}
			if w.onReload != nil {
				w.onReload(err)
			}
		}
	}
}
