package debounce

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	mu    sync.Mutex
	calls []string
}

func (r *recorder) record(v string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, v)
}

func (r *recorder) get() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string{}, r.calls...)
}

func TestTrigger_BurstFiresOnceWithLastValue(t *testing.T) {
	var r recorder
	d := New(20*time.Millisecond, r.record)

	for _, v := range []string{"a", "ab", "abc"} {
		d.Trigger(v)
		time.Sleep(2 * time.Millisecond)
	}

	assert.Eventually(t, func() bool { return len(r.get()) == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, []string{"abc"}, r.get())
}

func TestTrigger_SeparateWindowsFireSeparately(t *testing.T) {
	var r recorder
	d := New(10*time.Millisecond, r.record)

	d.Trigger("first")
	assert.Eventually(t, func() bool { return len(r.get()) == 1 }, time.Second, 2*time.Millisecond)
	d.Trigger("second")
	assert.Eventually(t, func() bool { return len(r.get()) == 2 }, time.Second, 2*time.Millisecond)
	assert.Equal(t, []string{"first", "second"}, r.get())
}

func TestFlush(t *testing.T) {
	var r recorder
	d := New(time.Hour, r.record)

	d.Flush()
	assert.Empty(t, r.get())

	d.Trigger("now")
	d.Flush()
	assert.Equal(t, []string{"now"}, r.get())
	d.Flush()
	assert.Equal(t, []string{"now"}, r.get())
}

func TestStop(t *testing.T) {
	var r recorder
	d := New(10*time.Millisecond, r.record)
	d.Trigger("dropped")
	d.Stop()
	time.Sleep(40 * time.Millisecond)
	assert.Empty(t, r.get())
}

func TestNew_DefaultWait(t *testing.T) {
	d := New(0, func(int) {})
	assert.Equal(t, DefaultWait, d.wait)
}

func TestFire_StaleTimerIsIgnored(t *testing.T) {
	var r recorder
	d := New(time.Hour, r.record)

	d.Trigger("a")
	d.mu.Lock()
	stale := d.gen
	d.mu.Unlock()
	d.Trigger("ab")

	// A timer armed for "a" that was already running when "ab" arrived.
	d.fire(stale)
	assert.Empty(t, r.get())

	d.Flush()
	assert.Equal(t, []string{"ab"}, r.get())
}
