/*
 * events.go, part of protview.
 *
 * Copyright 2024 The protview authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */


//Package events implements typed publish/subscribe topics. A subscription
//is an explicit value that must be disposed to stop receiving events.
package events

import (
	"log"
	"sync"
)

type handler[T any] struct {
	id uint64
	fn func(T)
}

// Topic delivers values of type T to its subscribers, synchronously and
// in subscription order. It is safe for concurrent use.
type Topic[T any] struct {
	name   string
	logger *log.Logger
	mu     sync.RWMutex
	next   uint64
	subs   []handler[T]
}

// NewTopic returns a topic with the given name. Panics in handlers are
// recovered and reported to logger, or to the standard logger if nil.
func NewTopic[T any](name string, logger *log.Logger) *Topic[T] {
	if logger == nil {
		logger = log.Default()
	}
	return &Topic[T]{name: name, logger: logger}
}

// Name returns the name of the topic.
func (t *Topic[T]) Name() string { return t.name }

// Subscribe registers fn, which will be called with every value
// published from now on, until the returned subscription is disposed.
func (t *Topic[T]) Subscribe(fn func(T)) *Subscription {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.next++
	id := t.next
	t.subs = append(t.subs, handler[T]{id, fn})
	return &Subscription{cancel: func() { t.remove(id) }}
}

func (t *Topic[T]) remove(id uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i, h := range t.subs {
		if h.id == id {
			t.subs = append(t.subs[:i:i], t.subs[i+1:]...)
			return
		}
	}
}

// Len returns the number of live subscriptions.
func (t *Topic[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.subs)
}

// Publish delivers v to all the current subscribers and returns how many
// of them handled it without panicking. Handlers may subscribe or dispose
// while being called, the changes apply to the next Publish.
func (t *Topic[T]) Publish(v T) int {
	t.mu.RLock()
	subs := t.subs
	t.mu.RUnlock()
	n := 0
	for _, h := range subs {
		if t.deliver(h, v) {
			n++
		}
	}
	return n
}

func (t *Topic[T]) deliver(h handler[T], v T) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			t.logger.Printf("events: handler %d of topic %s panicked: %v", h.id, t.name, r)
			ok = false
		}
	}()
	h.fn(v)
	return true
}

// Subscription is a registration in a topic.
type Subscription struct {
	once   sync.Once
	cancel func()
}

// Dispose ends the subscription. Calling it more than once does nothing.
func (s *Subscription) Dispose() {
	if s == nil {
		return
	}
	s.once.Do(s.cancel)
}
