package watcher

import (
	"context"
	"errors"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
	"time"
)

// ErrNoProbe indicates no idle probe is available on this platform.
var ErrNoProbe = errors.New("no idle probe available")

// ExecProbe shells out to a platform tool that prints the input idle
// time. Capability is probed once at construction via exec.LookPath.
type ExecProbe struct {
	path  string
	args  []string
	parse func(out string) (time.Duration, error)
}

// probeCandidates maps GOOS to known idle-time tools.
var probeCandidates = map[string]struct {
	name  string
	args  []string
	parse func(out string) (time.Duration, error)
}{
	// xprintidle prints idle milliseconds on X11.
	"linux": {
		name:  "xprintidle",
		parse: parseMillis,
	},
	// ioreg exposes HIDIdleTime in nanoseconds.
	"darwin": {
		name:  "ioreg",
		args:  []string{"-c", "IOHIDSystem", "-d", "4", "-k", "HIDIdleTime"},
		parse: parseHIDIdleTime,
	},
}

// NewExecProbe returns a probe for the current platform, or ErrNoProbe
// when none of the known tools is installed.
func NewExecProbe() (*ExecProbe, error) {
	cand, ok := probeCandidates[runtime.GOOS]
	if !ok {
		return nil, ErrNoProbe
	}
	path, err := exec.LookPath(cand.name)
	if err != nil {
		return nil, ErrNoProbe
	}
	return &ExecProbe{path: path, args: cand.args, parse: cand.parse}, nil
}

func (p *ExecProbe) IdleFor(ctx context.Context) (time.Duration, error) {
	out, err := exec.CommandContext(ctx, p.path, p.args...).Output()
	if err != nil {
		return 0, err
	}
	return p.parse(string(out))
}

func parseMillis(out string) (time.Duration, error) {
	ms, err := strconv.ParseInt(strings.TrimSpace(out), 10, 64)
	if err != nil {
		return 0, err
	}
	return time.Duration(ms) * time.Millisecond, nil
}

func parseHIDIdleTime(out string) (time.Duration, error) {
	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(line, "HIDIdleTime") {
			continue
		}
		idx := strings.LastIndex(line, "=")
		if idx < 0 {
			continue
		}
		ns, err := strconv.ParseInt(strings.TrimSpace(line[idx+1:]), 10, 64)
		if err != nil {
			continue
		}
		return time.Duration(ns), nil
	}
	return 0, errors.New("HIDIdleTime not found in ioreg output")
}
