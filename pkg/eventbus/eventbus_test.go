package eventbus_test

import (
	"testing"
	"time"

	"github.com/roffe/readoutplot/pkg/eventbus"
	"github.com/roffe/readoutplot/pkg/readout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, ch chan float64) float64 {
	t.Helper()
	select {
	case v, ok := <-ch:
		require.True(t, ok, "channel closed")
		return v
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for value")
	}
	return 0
}

func TestPublish(t *testing.T) {
	tests := []struct {
		name    string
		topic   string
		data    float64
		wantErr bool
	}{
		{
			name:  "readout x",
			topic: "readout.x",
			data:  1.23,
		},
		{
			name:  "readout y",
			topic: "readout.y",
			data:  -4.5,
		},
	}
	bus := eventbus.New(nil)
	defer bus.Close()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotErr := bus.Publish(tt.topic, tt.data)
			if gotErr != nil {
				if !tt.wantErr {
					t.Errorf("Publish() failed: %v", gotErr)
				}
				return
			}
			if tt.wantErr {
				t.Fatal("Publish() succeeded unexpectedly")
			}
		})
	}
}

func TestPublishChannelFull(t *testing.T) {
	bus := eventbus.New(&eventbus.Config{ChannelBuffer: 1, CacheTTL: time.Minute})
	defer bus.Close()
	var err error
	for i := 0; i < 1000 && err == nil; i++ {
		err = bus.Publish("flood", float64(i))
	}
	// the bus may keep up with an unbuffered channel, so only check the error kind
	if err != nil {
		assert.ErrorIs(t, err, eventbus.ErrPublishChannelFull)
	}
}

func TestSubscribe(t *testing.T) {
	bus := eventbus.New(nil)
	defer bus.Close()

	ch := bus.Subscribe("test")
	require.NoError(t, bus.Publish("test", 3.14))
	assert.Equal(t, 3.14, receive(t, ch))

	bus.Unsubscribe(ch)
	require.Eventually(t, func() bool {
		_, ok := <-ch
		return !ok
	}, time.Second, 10*time.Millisecond)
}

func TestSubscribeGetsCachedValue(t *testing.T) {
	bus := eventbus.New(nil)
	defer bus.Close()

	require.NoError(t, bus.Publish("cached", 42))
	require.Eventually(t, func() bool {
		_, ok := bus.Values()["cached"]
		return ok
	}, time.Second, 10*time.Millisecond)

	ch := bus.Subscribe("cached")
	assert.Equal(t, 42.0, receive(t, ch))
}

func TestSubscribeFunc(t *testing.T) {
	bus := eventbus.New(nil)
	defer bus.Close()

	got := make(chan float64, 1)
	cancel := bus.SubscribeFunc("func", func(v float64) {
		got <- v
	})
	defer cancel()

	require.NoError(t, bus.Publish("func", 2.5))
	assert.Equal(t, 2.5, receive(t, got))
}

func TestCloseClosesSubscribers(t *testing.T) {
	bus := eventbus.New(nil)
	ch := bus.Subscribe("closing")
	// make sure the subscription has been handled
	require.NoError(t, bus.Publish("closing", 1))
	receive(t, ch)

	bus.Close()
	_, ok := <-ch
	assert.False(t, ok)
	assert.Empty(t, bus.Values())
}

func TestReadoutListener(t *testing.T) {
	bus := eventbus.New(nil)
	defer bus.Close()

	xs := bus.Subscribe("readout.x")
	ys := bus.Subscribe("readout.y")

	l := bus.ReadoutListener("readout.x", "readout.y")
	l.ReadoutData(nil, 50, 25)

	assert.Equal(t, 50.0, receive(t, xs))
	assert.Equal(t, 25.0, receive(t, ys))

	var _ readout.Listener = l
}

func TestUseAfterClose(t *testing.T) {
	for i := 0; i < 50; i++ {
		bus := eventbus.New(nil)
		bus.Close()

		assert.ErrorIs(t, bus.Publish("late", 1), eventbus.ErrClosed)

		ch := bus.Subscribe("late")
		_, ok := <-ch
		assert.False(t, ok)

		done := make(chan struct{})
		cancel := bus.SubscribeFunc("late", func(float64) {})
		go func() {
			cancel()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("cancel blocked on a closed bus")
		}
	}
}
