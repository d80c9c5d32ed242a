// This file is part of vc64.
//
// vc64 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// vc64 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with vc64.  If not, see <https://www.gnu.org/licenses/>.

// Package breakkey watches the controlling terminal for a key press. The
// debugger uses it to stop a freely running emulation.
//
// The terminal is put into cbreak mode, with a short read timeout, while the
// watcher is running. The original mode is restored by Stop().
package breakkey

import (
	"sync/atomic"
	"time"

	"github.com/pkg/term"
)

// the device opened by Start()
const device = "/dev/tty"

// how long a read waits before checking whether the watcher should stop
const pollInterval = 100 * time.Millisecond

// BreakKey implements a key press watcher.
type BreakKey struct {
	pressed atomic.Bool

	tty  *term.Term
	stop chan struct{}
	done chan struct{}
}

// NewBreakKey is the preferred method of initialisation for the BreakKey
// type.
func NewBreakKey() *BreakKey {
	return &BreakKey{}
}

// Start watching for a key press. Calling Start() on a running watcher does
// nothing.
func (bk *BreakKey) Start() error {
	if bk.tty != nil {
		return nil
	}

	tty, err := term.Open(device, term.CBreakMode)
	if err != nil {
		return err
	}

	if err := tty.SetReadTimeout(pollInterval); err != nil {
		_ = tty.Restore()
		_ = tty.Close()
		return err
	}

	bk.tty = tty
	bk.stop = make(chan struct{})
	bk.done = make(chan struct{})
	bk.pressed.Store(false)

	go bk.watch(tty, bk.stop, bk.done)

	return nil
}

func (bk *BreakKey) watch(tty *term.Term, stop chan struct{}, done chan struct{}) {
	defer close(done)

	b := make([]byte, 1)
	for {
		select {
		case <-stop:
			return
		default:
		}

		n, _ := tty.Read(b)
		if n > 0 {
			bk.pressed.Store(true)
		}
	}
}

// Stop watching and restore the terminal.
func (bk *BreakKey) Stop() {
	if bk.tty == nil {
		return
	}

	close(bk.stop)
	<-bk.done

	_ = bk.tty.Restore()
	_ = bk.tty.Close()
	bk.tty = nil
}

// Pressed returns true if a key has been pressed since the last call to
// Pressed() or since Start().
func (bk *BreakKey) Pressed() bool {
	return bk.pressed.Swap(false)
}
