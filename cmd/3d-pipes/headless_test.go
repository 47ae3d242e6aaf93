package main

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Garyljackson/3d-pipes/config"
	"github.com/Garyljackson/3d-pipes/status"
)

// parseStats keeps "key value" lines and drops reset reports and epoch ids
func parseStats(out string) map[string]string {
	stats := make(map[string]string)
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) != 2 || fields[0] == status.KeyEpochID {
			continue
		}
		stats[fields[0]] = fields[1]
	}
	return stats
}

func TestRunHeadless(t *testing.T) {
	cfg := config.Default()
	cfg.GridSize = 6

	var buf bytes.Buffer
	if err := runHeadless(cfg, 42, 300, false, &buf); err != nil {
		t.Fatal(err)
	}
	stats := parseStats(buf.String())

	if stats[status.KeyTicks] != "300" || stats["seed"] != "42" {
		t.Errorf("unexpected header stats: ticks=%q seed=%q", stats[status.KeyTicks], stats["seed"])
	}
	caps, err := strconv.Atoi(stats["directives.cap"])
	if err != nil || caps == 0 {
		t.Errorf("expected cap directives, got %q", stats["directives.cap"])
	}
	if stats["directives.joint"] != "0" {
		t.Errorf("elbow style emitted joints: %q", stats["directives.joint"])
	}
}

func TestRunHeadlessDump(t *testing.T) {
	cfg := config.Default()
	cfg.GridSize = 4

	var buf bytes.Buffer
	if err := runHeadless(cfg, 3, 40, true, &buf); err != nil {
		t.Fatal(err)
	}

	seen := make(map[string]bool)
	for _, line := range strings.Split(buf.String(), "\n") {
		fields := strings.Fields(line)
		if len(fields) != 4 || fields[0] != "cell" {
			continue
		}
		for _, f := range fields[1:] {
			if v, err := strconv.Atoi(f); err != nil || v < 0 || v >= cfg.GridSize {
				t.Errorf("cell out of bounds: %q", line)
			}
		}
		key := strings.Join(fields[1:], ",")
		if seen[key] {
			t.Errorf("cell listed twice: %q", line)
		}
		seen[key] = true
	}

	occupied, err := strconv.Atoi(parseStats(buf.String())["grid.occupied"])
	if err != nil || occupied == 0 {
		t.Fatalf("grid.occupied missing or zero: %v", err)
	}
	if len(seen) != occupied {
		t.Errorf("dumped %d cells, grid.occupied %d", len(seen), occupied)
	}

	buf.Reset()
	if err := runHeadless(cfg, 3, 40, false, &buf); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "cell ") {
		t.Error("cells listed without dump")
	}
}

func TestRunHeadlessDeterministic(t *testing.T) {
	runOnce := func() map[string]string {
		cfg := config.Default()
		cfg.GridSize = 5
		cfg.JointStyle = config.StyleBall
		var buf bytes.Buffer
		if err := runHeadless(cfg, 7, 500, false, &buf); err != nil {
			t.Fatal(err)
		}
		return parseStats(buf.String())
	}
	if diff := cmp.Diff(runOnce(), runOnce()); diff != "" {
		t.Errorf("same seed produced different stats (-first +second):\n%s", diff)
	}
}

func TestRunEntryPoint(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := run([]string{"-headless", "-ticks", "20", "-seed", "5", "-grid", "4"}, &out, &errOut); code != 0 {
		t.Fatalf("exit %d: %s", code, errOut.String())
	}
	if parseStats(out.String())[status.KeyTicks] != "20" {
		t.Errorf("unexpected output:\n%s", out.String())
	}

	errOut.Reset()
	if code := run([]string{"-grid", "999", "-headless"}, &out, &errOut); code != 2 {
		t.Errorf("invalid config exit %d", code)
	}
	if !strings.Contains(errOut.String(), "invalid config") {
		t.Errorf("stderr %q", errOut.String())
	}
	if code := run([]string{"-h"}, &out, &errOut); code != 0 {
		t.Errorf("help exit %d", code)
	}
}
