// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package signalbroker

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

type watchFixture struct {
	root    context.Context
	cancel  context.CancelFunc
	admit   context.Context
	stop    context.CancelFunc
	sigCh   chan os.Signal
	wg      sync.WaitGroup
	settled time.Duration
}

func newWatchFixture(t *testing.T) *watchFixture {
	t.Helper()

	f := &watchFixture{sigCh: make(chan os.Signal, 2), settled: 50 * time.Millisecond}
	f.root, f.cancel = context.WithCancel(context.Background())
	f.admit, f.stop = context.WithCancel(f.root)

	f.wg.Add(1)

	go func() {
		defer f.wg.Done()
		Watch(f.root, f.sigCh, f.stop, f.cancel)
	}()

	return f
}

func TestWatch_FirstSignalStopsAdmission(t *testing.T) {
	defer goleak.VerifyNone(t)

	f := newWatchFixture(t)
	f.sigCh <- os.Interrupt

	time.Sleep(f.settled)
	assert.Error(t, f.admit.Err(), "admission context should be stopped after first signal")
	assert.NoError(t, f.root.Err(), "root context should survive the first signal")

	close(f.sigCh)
	f.wg.Wait()
	f.cancel()
}

func TestWatch_SecondSignalCancels(t *testing.T) {
	defer goleak.VerifyNone(t)

	f := newWatchFixture(t)
	f.sigCh <- os.Interrupt
	f.sigCh <- os.Interrupt

	f.wg.Wait()
	assert.Error(t, f.root.Err(), "root context should be cancelled after second signal")
}

func TestWatch_DifferentSignalsDoNotCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	f := newWatchFixture(t)
	f.sigCh <- os.Interrupt
	f.sigCh <- os.Kill

	time.Sleep(f.settled)
	assert.NoError(t, f.root.Err(), "root context should not be cancelled by different signals")

	close(f.sigCh)
	f.wg.Wait()
	f.cancel()
}

func TestWatch_ReturnsWhenContextDone(t *testing.T) {
	defer goleak.VerifyNone(t)

	f := newWatchFixture(t)
	f.cancel()
	f.wg.Wait()
}
