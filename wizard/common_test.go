package wizard

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func newTestConsole(input string) (*Console, *bytes.Buffer) {
	var out bytes.Buffer
	return NewConsole(strings.NewReader(input), &out), &out
}

func TestLineReturnsRawReply(t *testing.T) {
	console, out := newTestConsole("  vim extra  \nnext\n")

	reply, err := console.Line("Enter:")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if reply != "  vim extra  " {
		t.Errorf("Expected raw reply, got %q", reply)
	}
	if !strings.Contains(out.String(), "Enter:") {
		t.Errorf("Expected question in output, got %q", out.String())
	}

	reply, err = console.Line("Again:")
	if err != nil || reply != "next" {
		t.Errorf("Expected second line 'next', got %q (%v)", reply, err)
	}
}

func TestLineAcceptsWindowsNewline(t *testing.T) {
	console, _ := newTestConsole("curl\r\n")

	reply, err := console.Line("Enter:")
	if err != nil || reply != "curl" {
		t.Errorf("Expected 'curl', got %q (%v)", reply, err)
	}
}

func TestLineAcceptsFinalLineWithoutNewline(t *testing.T) {
	console, _ := newTestConsole("curl")

	reply, err := console.Line("Enter:")
	if err != nil || reply != "curl" {
		t.Errorf("Expected 'curl', got %q (%v)", reply, err)
	}
}

func TestLineReportsClosedInput(t *testing.T) {
	console, _ := newTestConsole("")

	_, err := console.Line("Enter:")
	if !errors.Is(err, io.EOF) {
		t.Errorf("Expected io.EOF, got %v", err)
	}
}

func TestChooseAsksUntilValid(t *testing.T) {
	console, out := newTestConsole("maybe\n\n  b \n")

	reply, err := console.Choose("Pick one", []string{"a", "b"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if reply != "b" {
		t.Errorf("Expected 'b', got %q", reply)
	}
	if count := strings.Count(out.String(), "Please select one of the available options"); count != 2 {
		t.Errorf("Expected 2 rejections, got %d in %q", count, out.String())
	}
	if !strings.Contains(out.String(), "Pick one [a/b]") {
		t.Errorf("Expected choices listed in prompt, got %q", out.String())
	}
}

func TestChooseWithoutChoices(t *testing.T) {
	console, _ := newTestConsole("a\n")

	_, err := console.Choose("Pick one", nil)
	if !errors.Is(err, ErrNoChoices) {
		t.Errorf("Expected ErrNoChoices, got %v", err)
	}
}

func TestChooseClosedInput(t *testing.T) {
	console, _ := newTestConsole("nope\n")

	_, err := console.Choose("Pick one", []string{"a"})
	if !errors.Is(err, io.EOF) {
		t.Errorf("Expected io.EOF after invalid reply, got %v", err)
	}
}
