package recovery

import (
	"bytes"
	"os"
	"os/exec"
	"strings"
	"testing"
)

// TestHandlePanic_NoPanic verifies that HandlePanic does nothing when there's no panic
func TestHandlePanic_NoPanic(t *testing.T) {
	exited := false
	exit = func(int) { exited = true }
	defer func() { exit = os.Exit }()

	func() {
		defer HandlePanic()
	}()

	if exited {
		t.Error("exit was called without a panic")
	}
}

// TestHandlePanic_RecoversAndExits swaps exit so the panic path runs in-process
func TestHandlePanic_RecoversAndExits(t *testing.T) {
	code := -1
	exit = func(c int) { code = c }
	defer func() { exit = os.Exit }()

	func() {
		defer HandlePanic()
		panic("boom")
	}()

	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
}

func TestLog_WritesPanicAndStack(t *testing.T) {
	var buf bytes.Buffer
	Log(&buf, "bad spectrum", []byte("goroutine 1 [running]"))

	out := buf.String()
	for _, want := range []string{"FTL", "unrecovered panic", "bad spectrum", "goroutine 1 [running]"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q: %s", want, out)
		}
	}
}

// TestHandlePanic_ExitsOnPanic uses a subprocess to test the real exit path
func TestHandlePanic_ExitsOnPanic(t *testing.T) {
	if os.Getenv("TEST_PANIC_EXIT") == "1" {
		defer HandlePanic()
		panic("test panic")
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestHandlePanic_ExitsOnPanic")
	cmd.Env = append(os.Environ(), "TEST_PANIC_EXIT=1")

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()

	if exitErr, ok := err.(*exec.ExitError); ok {
		if exitErr.ExitCode() != 1 {
			t.Errorf("exit code = %d, want 1", exitErr.ExitCode())
		}
	} else if err == nil {
		t.Error("expected process to exit with error, but it succeeded")
	}

	output := stderr.String()
	if !strings.Contains(output, "test panic") {
		t.Errorf("stderr should contain 'test panic', got: %s", output)
	}
	if !strings.Contains(output, "stack") {
		t.Errorf("stderr should contain the stack field, got: %s", output)
	}
}
