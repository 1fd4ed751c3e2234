package wizard

import (
	"errors"
	"runtime"
	"strings"
	"testing"

	"github.com/joshyorko/aptcli/pretty"
)

func skipOnWindows(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
}

func TestParseInputMethod(t *testing.T) {
	tests := []struct {
		input    string
		expected InputMethod
	}{
		{"", ""},
		{"CLI", InputPlain},
		{"plain", InputPlain},
		{"gui", InputDialog},
		{"Dialog", InputDialog},
		{"CLI Rainbow", InputRainbow},
		{" rainbow ", InputRainbow},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			method, err := ParseInputMethod(tt.input)
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if method != tt.expected {
				t.Errorf("ParseInputMethod(%q) = %q, want %q", tt.input, method, tt.expected)
			}
		})
	}

	if _, err := ParseInputMethod("telepathy"); !errors.Is(err, ErrUnknownInputMethod) {
		t.Errorf("Expected ErrUnknownInputMethod, got %v", err)
	}
}

type recordingSource struct {
	reply string
	calls int
}

func (it *recordingSource) ReadInput(console *Console) (string, error) {
	it.calls++
	return it.reply, nil
}

func TestCollectorAsksForMethod(t *testing.T) {
	console, out := newTestConsole("Braille\nGUI\n")
	gui := &recordingSource{reply: "curl"}
	plain := &recordingSource{reply: "wrong"}
	collector := &Collector{Sources: map[InputMethod]InputSource{InputPlain: plain, InputDialog: gui}}

	reply, err := collector.Collect(console)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if reply != "curl" || gui.calls != 1 || plain.calls != 0 {
		t.Errorf("Expected GUI source to answer once, got %q gui=%d plain=%d", reply, gui.calls, plain.calls)
	}
	if !strings.Contains(out.String(), "Choose input method [CLI/GUI/CLI Rainbow]") {
		t.Errorf("Expected method prompt, got %q", out.String())
	}
}

func TestCollectorPresetMethodSkipsQuestion(t *testing.T) {
	console, out := newTestConsole("")
	plain := &recordingSource{reply: "vim"}
	collector := &Collector{Method: InputPlain, Sources: map[InputMethod]InputSource{InputPlain: plain}}

	reply, err := collector.Collect(console)
	if err != nil || reply != "vim" {
		t.Errorf("Expected 'vim', got %q (%v)", reply, err)
	}
	if strings.Contains(out.String(), "Choose input method") {
		t.Errorf("Did not expect method prompt, got %q", out.String())
	}
}

func TestCollectorMissingSource(t *testing.T) {
	console, _ := newTestConsole("")
	collector := &Collector{Method: InputDialog, Sources: map[InputMethod]InputSource{}}

	_, err := collector.Collect(console)
	if !errors.Is(err, ErrUnknownInputMethod) {
		t.Errorf("Expected ErrUnknownInputMethod, got %v", err)
	}
}

func TestPlainInput(t *testing.T) {
	console, out := newTestConsole("vim extra\n")

	reply, err := PlainInput{}.ReadInput(console)
	if err != nil || reply != "vim extra" {
		t.Errorf("Expected 'vim extra', got %q (%v)", reply, err)
	}
	if !strings.Contains(out.String(), PackageQuestion) {
		t.Errorf("Expected package question, got %q", out.String())
	}
}

func TestDialogInputCapturesStdout(t *testing.T) {
	skipOnWindows(t)
	console, _ := newTestConsole("")

	reply, err := DialogInput{Command: []string{"sh", "-c", "echo '  curl wget  '"}}.ReadInput(console)
	if err != nil || reply != "curl wget" {
		t.Errorf("Expected 'curl wget', got %q (%v)", reply, err)
	}
}

func TestDialogInputFailureIsReported(t *testing.T) {
	skipOnWindows(t)
	console, out := newTestConsole("")

	reply, err := DialogInput{Command: []string{"sh", "-c", "exit 1"}}.ReadInput(console)
	if err != nil {
		t.Fatalf("Expected helper failure to be swallowed, got %v", err)
	}
	if reply != "" {
		t.Errorf("Expected empty reply, got %q", reply)
	}
	if !strings.Contains(out.String(), "Error with dialog") {
		t.Errorf("Expected dialog error message, got %q", out.String())
	}
}

func TestDialogInputWithoutCommand(t *testing.T) {
	console, out := newTestConsole("")

	reply, err := DialogInput{}.ReadInput(console)
	if err != nil || reply != "" {
		t.Errorf("Expected empty reply and no error, got %q (%v)", reply, err)
	}
	if !strings.Contains(out.String(), ErrNoHelperCommand.Error()) {
		t.Errorf("Expected missing command message, got %q", out.String())
	}
}

func TestDecoratedInputEchoesThroughDecorator(t *testing.T) {
	skipOnWindows(t)
	console, out := newTestConsole("curl\n")

	reply, err := DecoratedInput{Decorator: []string{"tr", "a-z", "A-Z"}}.ReadInput(console)
	if err != nil || reply != "curl" {
		t.Errorf("Expected undecorated reply 'curl', got %q (%v)", reply, err)
	}
	if !strings.Contains(out.String(), "CURL") {
		t.Errorf("Expected decorated echo, got %q", out.String())
	}
}

func TestDecoratedInputFallsBackWhenDecoratorFails(t *testing.T) {
	previous := pretty.Colorless
	pretty.Colorless = true
	defer func() { pretty.Colorless = previous }()

	console, out := newTestConsole("")
	prompt := func(question string) (string, error) {
		if question != PackageQuestion {
			t.Errorf("Unexpected question %q", question)
		}
		return "vim", nil
	}

	reply, err := DecoratedInput{Decorator: []string{"aptcli-no-such-decorator"}, Prompt: prompt}.ReadInput(console)
	if err != nil || reply != "vim" {
		t.Errorf("Expected 'vim', got %q (%v)", reply, err)
	}
	if !strings.Contains(out.String(), "Error with decorator") {
		t.Errorf("Expected decorator error, got %q", out.String())
	}
	if !strings.Contains(out.String(), "vim") {
		t.Errorf("Expected fallback echo of the reply, got %q", out.String())
	}
}

func TestDecoratedInputPrefersReadAheadLines(t *testing.T) {
	previous := pretty.Colorless
	pretty.Colorless = true
	defer func() { pretty.Colorless = previous }()

	console, out := newTestConsole("first\nvim extra\n")
	if _, err := console.Line("Warm up:"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if console.Buffered() == 0 {
		t.Fatal("Expected second line to be buffered already")
	}
	prompt := func(string) (string, error) {
		t.Error("Styled prompt must not run while console input is buffered")
		return "", nil
	}

	reply, err := DecoratedInput{Prompt: prompt}.ReadInput(console)
	if err != nil || reply != "vim extra" {
		t.Errorf("Expected buffered 'vim extra', got %q (%v)", reply, err)
	}
	if !strings.Contains(out.String(), PackageQuestion) {
		t.Errorf("Expected package question on console, got %q", out.String())
	}
}

func TestDecoratedInputPromptError(t *testing.T) {
	console, _ := newTestConsole("")
	boom := errors.New("terminal gone")
	prompt := func(string) (string, error) { return "", boom }

	_, err := DecoratedInput{Prompt: prompt}.ReadInput(console)
	if !errors.Is(err, boom) {
		t.Errorf("Expected prompt error, got %v", err)
	}
}

func TestNewCollectorRegistersAllMethods(t *testing.T) {
	collector := NewCollector(InputRainbow, []string{"dialog"}, []string{"lolcat"})

	if collector.Method != InputRainbow {
		t.Errorf("Expected preset method, got %q", collector.Method)
	}
	for _, method := range []InputMethod{InputPlain, InputDialog, InputRainbow} {
		if _, ok := collector.Sources[method]; !ok {
			t.Errorf("Expected source for %q", method)
		}
	}
}
