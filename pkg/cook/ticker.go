package cook

import (
	"sync"
	"time"
)

// Ticker is the part of *time.Ticker the cook timer needs.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type TickerFactory func(d time.Duration) Ticker

type timeTicker struct {
	t *time.Ticker
}

func (t timeTicker) C() <-chan time.Time { return t.t.C }
func (t timeTicker) Stop()               { t.t.Stop() }

func NewTimeTicker(d time.Duration) Ticker {
	return timeTicker{t: time.NewTicker(d)}
}

// tickLoop is one running timer goroutine.
type tickLoop struct {
	quit chan struct{}
	once sync.Once
	wg   sync.WaitGroup
}

func newTickLoop() *tickLoop {
	return &tickLoop{quit: make(chan struct{})}
}

// run ticks until quit is closed or tick reports false.
func (l *tickLoop) run(t Ticker, tick func() bool) {
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		defer t.Stop()
		for {
			select {
			case <-l.quit:
				return
			case <-t.C():
				if !tick() {
					return
				}
			}
		}
	}()
}

// stop signals the goroutine and waits for it to return. It must not be
// called from the goroutine itself.
func (l *tickLoop) stop() {
	if l == nil {
		return
	}
	l.once.Do(func() { close(l.quit) })
	l.wg.Wait()
}
