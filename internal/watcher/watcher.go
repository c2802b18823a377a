// Package watcher delivers debounced filesystem events. It drives live
// reload of palette files as they are edited.
package watcher

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gobwas/glob"
	"github.com/rjeczalik/notify"
)

type EventInfo struct {
	Path  string
	Event string
}

// Editors save in bursts (write, chmod, rename); one batch per burst.
const debounceInterval = 200 * time.Millisecond

// Watch observes the file or directory at inputPath, which may contain a
// glob ("palettes/*.toml" watches the palettes directory recursively and
// reports only matching files). Events are debounced and delivered in
// batches. Watch is a variable so tests can replace it; see Mock.
var Watch = func(inputPath string) (<-chan []EventInfo, func(), error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, nil, err
	}

	watchPath, match := split(inputPath)

	c := make(chan notify.EventInfo, 1)
	out := make(chan EventInfo)

	go func() {
		for ev := range c {
			p := strings.TrimPrefix(ev.Path(), cwd+"/")
			if match != nil && !match.Match(p) {
				continue
			}
			out <- EventInfo{
				Path:  p,
				Event: strings.TrimPrefix(ev.Event().String(), "notify."),
			}
		}
		close(out)
	}()

	var stopOnce sync.Once
	stop := func() {
		stopOnce.Do(func() {
			notify.Stop(c)
			close(c)
		})
	}

	if err := notify.Watch(watchPath, c, notify.All); err != nil {
		stop()
		return nil, nil, err
	}

	return debounce(debounceInterval, out), stop, nil
}

func debounce(dur time.Duration, c <-chan EventInfo) <-chan []EventInfo {
	out := make(chan []EventInfo)

	go func() {
		defer close(out)

		var pending []EventInfo
		var timer <-chan time.Time
		for {
			select {
			case ev, ok := <-c:
				if !ok {
					return
				}
				pending = append(pending, ev)
				if timer == nil {
					timer = time.After(dur)
				}
			case <-timer:
				// Non-blocking: if the consumer is gone, drop
				// the batch rather than wedge the watch
				// goroutine.
				select {
				case out <- pending:
				default:
				}
				pending = nil
				timer = nil
			}
		}
	}()

	return out
}

// split breaks an input path that may contain a glob into a watchable
// path and a matcher. "palettes/*.toml" becomes a recursive watch at
// "palettes" plus the glob "palettes/*.toml"; a plain path watches
// directly with no matcher.
func split(input string) (string, glob.Glob) {
	input = filepath.Clean(input)
	segments := strings.Split(input, "/")
	for i, seg := range segments {
		if strings.Contains(seg, "*") {
			w := strings.Join(segments[:i], "/")
			return filepath.Join(w, "..."), glob.MustCompile(input)
		}
	}
	return input, nil
}
