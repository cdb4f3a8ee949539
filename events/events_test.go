/*
 * events_test.go, part of protview.
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

package events

import (
	"bytes"
	"log"
	"strings"
	"sync"
	"testing"
)

func TestPublish(Te *testing.T) {
	t := NewTopic[string]("loaded", nil)
	var got []string
	s1 := t.Subscribe(func(v string) { got = append(got, "1:"+v) })
	s2 := t.Subscribe(func(v string) { got = append(got, "2:"+v) })
	if n := t.Publish("a"); n != 2 {
		Te.Errorf("Expected 2 deliveries, got %d", n)
	}
	s1.Dispose()
	s1.Dispose()
	t.Publish("b")
	want := []string{"1:a", "2:a", "2:b"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		Te.Errorf("Got %v, want %v", got, want)
	}
	s2.Dispose()
	if t.Len() != 0 || t.Publish("c") != 0 {
		Te.Error("No subscriber should be left")
	}
}

func TestPanickingHandler(Te *testing.T) {
	var buf bytes.Buffer
	t := NewTopic[int]("failed", log.New(&buf, "", 0))
	calls := 0
	t.Subscribe(func(int) { panic("boom") })
	t.Subscribe(func(int) { calls++ })
	if n := t.Publish(1); n != 1 || calls != 1 {
		Te.Errorf("The second handler should still run, n=%d calls=%d", n, calls)
	}
	if !strings.Contains(buf.String(), "boom") {
		Te.Errorf("The panic should be logged, got %q", buf.String())
	}
}

func TestConcurrent(Te *testing.T) {
	t := NewTopic[int]("n", nil)
	var mu sync.Mutex
	sum := 0
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s := t.Subscribe(func(v int) {
				mu.Lock()
				sum += v
				mu.Unlock()
			})
			t.Publish(1)
			s.Dispose()
		}()
	}
	wg.Wait()
	if t.Len() != 0 {
		Te.Errorf("%d subscriptions left", t.Len())
	}
	if sum < 8 {
		Te.Errorf("Each publisher should at least reach itself, sum=%d", sum)
	}
}
