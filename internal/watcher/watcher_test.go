package watcher

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/deskcoach/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_Sample(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		probe     Probe
		threshold time.Duration
		want      domain.ActivityState
	}{
		{"below threshold", StaticProbe{Idle: 30 * time.Second}, 90 * time.Second, domain.ActivityActive},
		{"at threshold", StaticProbe{Idle: 90 * time.Second}, 90 * time.Second, domain.ActivityIdle},
		{"above threshold", StaticProbe{Idle: 5 * time.Minute}, 90 * time.Second, domain.ActivityIdle},
		{"probe failure counts as active", StaticProbe{Idle: time.Hour, Err: errors.New("boom")}, 90 * time.Second, domain.ActivityActive},
		{"nil probe counts as active", nil, 90 * time.Second, domain.ActivityActive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := New(tt.probe, tt.threshold)
			assert.Equal(t, tt.want, w.Sample(ctx))
		})
	}
}

func TestWatcher_SetThreshold(t *testing.T) {
	w := New(StaticProbe{Idle: 2 * time.Minute}, 5*time.Minute)
	assert.Equal(t, domain.ActivityActive, w.Sample(context.Background()))

	w.SetThreshold(time.Minute)
	assert.Equal(t, domain.ActivityIdle, w.Sample(context.Background()))
}

func TestParseMillis(t *testing.T) {
	d, err := parseMillis("125000\n")
	require.NoError(t, err)
	assert.Equal(t, 125*time.Second, d)

	_, err = parseMillis("not a number")
	assert.Error(t, err)
}

func TestParseHIDIdleTime(t *testing.T) {
	out := `+-o IOHIDSystem  <class IOHIDSystem>
    {
      "HIDIdleTime" = 2500000000
    }`
	d, err := parseHIDIdleTime(out)
	require.NoError(t, err)
	assert.Equal(t, 2500*time.Millisecond, d)

	_, err = parseHIDIdleTime("no idle key here")
	assert.Error(t, err)
}
