package watcher

import (
	"fmt"
	"sync"
)

var OriginalWatch = Watch

var (
	mocks   map[string]chan []EventInfo
	mocksmu sync.Mutex
)

// Mock replaces Watch with an in-memory fake. Tests trigger events with
// Dispatch and restore the real implementation with Unmock.
func Mock() {
	mocksmu.Lock()
	defer mocksmu.Unlock()

	mocks = map[string]chan []EventInfo{}
	Watch = func(inputPath string) (<-chan []EventInfo, func(), error) {
		mocksmu.Lock()
		defer mocksmu.Unlock()

		mock, hasMock := mocks[inputPath]
		if !hasMock {
			mock = make(chan []EventInfo)
			mocks[inputPath] = mock
		}
		var stopOnce sync.Once
		stop := func() { stopOnce.Do(func() { close(mock) }) }
		return mock, stop, nil
	}
}

// Dispatch delivers a synthetic event for a mocked path.
func Dispatch(path string) {
	mocksmu.Lock()
	defer mocksmu.Unlock()

	mock, hasMock := mocks[path]
	if !hasMock {
		panic(fmt.Errorf("can't dispatch on unwatched path '%s'", path))
	}
	mock <- []EventInfo{{Path: path, Event: "Write"}}
}

func Unmock() {
	mocksmu.Lock()
	defer mocksmu.Unlock()

	mocks = nil
	Watch = OriginalWatch
}
