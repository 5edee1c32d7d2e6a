package logging

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	saved := baseLogger
	baseLogger = newLogger(&buf)
	t.Cleanup(func() { baseLogger = saved })
	return &buf
}

func TestInfof_NoDoubleFormattingWithPercent(t *testing.T) {
	buf := capture(t)
	SetLogLevel("info")

	msg := "plotly_histogram recomputed: 17 bins, Adelie 49.4% of 79 rows"
	Infof(msg)

	out := buf.String()
	if !strings.Contains(out, "49.4% of 79") {
		t.Fatalf("log output missing expected percent segment: %s", out)
	}
	if strings.Contains(out, "%!o(MISSING)") {
		t.Fatalf("log output still shows fmt artifact: %s", out)
	}
}

func TestSetLogLevel_Filters(t *testing.T) {
	buf := capture(t)
	SetLogLevel("warn")
	Infof("hidden %d", 1)
	Warnf("shown %d", 2)
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown 2") {
		t.Fatalf("unexpected output: %s", out)
	}
	if !strings.Contains(out, "level=warning") {
		t.Fatalf("missing level field: %s", out)
	}

	SetLogLevel("bogus")
	if GetLogLevel().String() != "warning" {
		t.Fatalf("unknown name changed level to %s", GetLogLevel())
	}
	if DebugEnabled() {
		t.Fatalf("debug should be off at warn")
	}
}

func TestTimeTrack_DebugOnly(t *testing.T) {
	buf := capture(t)
	SetLogLevel("info")
	TimeTrack(time.Now(), "phase one")
	if buf.Len() != 0 {
		t.Fatalf("TimeTrack logged at info: %s", buf.String())
	}
	SetLogLevel("DEBUG")
	TimeTrack(time.Now(), "phase two")
	if !strings.Contains(buf.String(), "phase two took") {
		t.Fatalf("missing timing line: %s", buf.String())
	}
}

func TestValidLevel(t *testing.T) {
	for _, s := range []string{"debug", "Info", " warn ", "warning", "error"} {
		if !ValidLevel(s) {
			t.Fatalf("%q should be valid", s)
		}
	}
	if ValidLevel("trace") {
		t.Fatalf("trace is not offered")
	}
}
