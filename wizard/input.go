package wizard

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/joshyorko/aptcli/common"
	"github.com/joshyorko/aptcli/pretty"
)

const PackageQuestion = "Enter package name(s) and version(s) if needed:"

type InputMethod string

const (
	InputPlain   InputMethod = "CLI"
	InputDialog  InputMethod = "GUI"
	InputRainbow InputMethod = "CLI Rainbow"
)

var (
	ErrUnknownInputMethod = errors.New("unknown input method")
	ErrNoHelperCommand    = errors.New("helper command line is empty")

	inputMethods = []InputMethod{InputPlain, InputDialog, InputRainbow}

	inputAliases = map[string]InputMethod{
		"cli":         InputPlain,
		"plain":       InputPlain,
		"gui":         InputDialog,
		"dialog":      InputDialog,
		"cli rainbow": InputRainbow,
		"rainbow":     InputRainbow,
	}
)

// ParseInputMethod accepts method names case-insensitively plus a few
// aliases. Empty input means "ask every time" and is not an error.
func ParseInputMethod(value string) (InputMethod, error) {
	cleaned := strings.ToLower(strings.TrimSpace(value))
	if len(cleaned) == 0 {
		return "", nil
	}
	method, ok := inputAliases[cleaned]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownInputMethod, value)
	}
	return method, nil
}

// InputSource produces one raw line of package input. Helper failures are
// reported to the console and yield an empty string, never an error; errors
// are reserved for the console itself going away.
type InputSource interface {
	ReadInput(console *Console) (string, error)
}

type PlainInput struct{}

func (it PlainInput) ReadInput(console *Console) (string, error) {
	return console.Line(PackageQuestion)
}

// DialogInput runs an external dialog program and captures what it prints on
// standard output.
type DialogInput struct {
	Command []string
	Stdin   io.Reader
	Stderr  io.Writer
}

func (it DialogInput) ReadInput(console *Console) (string, error) {
	if len(it.Command) == 0 {
		console.Failure("Error with dialog: %v", ErrNoHelperCommand)
		return "", nil
	}
	task := exec.Command(it.Command[0], it.Command[1:]...)
	task.Stdin = it.Stdin
	task.Stderr = it.Stderr
	output, err := task.Output()
	if err != nil {
		common.Debug("dialog %v failed: %v", it.Command, err)
		console.Failure("Error with dialog: %v", err)
		return "", nil
	}
	return strings.TrimSpace(string(output)), nil
}

// DecoratedInput reads the line through a styled prompt and then echoes it
// back through a decorator program such as lolcat. When the console already
// holds read-ahead input, the line is taken from the console instead, since
// the styled prompt reads the raw input stream.
type DecoratedInput struct {
	Decorator []string
	Prompt    func(question string) (string, error)
}

func (it DecoratedInput) ReadInput(console *Console) (string, error) {
	var reply string
	var err error
	if it.Prompt != nil && console.Buffered() == 0 {
		reply, err = it.Prompt(PackageQuestion)
	} else {
		reply, err = console.Line(PackageQuestion)
	}
	if err != nil {
		return "", err
	}
	decorated, err := decorate(it.Decorator, reply)
	if err != nil {
		console.Failure("Error with decorator: %v", err)
		decorated = pretty.Rainbow(reply)
	}
	console.Printf("%s\n", strings.TrimRight(decorated, "\r\n"))
	return reply, nil
}

func decorate(command []string, text string) (string, error) {
	if len(command) == 0 {
		return "", ErrNoHelperCommand
	}
	task := exec.Command(command[0], command[1:]...)
	task.Stdin = strings.NewReader(text)
	var output bytes.Buffer
	task.Stdout = &output
	task.Stderr = &output
	if err := task.Run(); err != nil {
		return "", fmt.Errorf("%s: %w", command[0], err)
	}
	return output.String(), nil
}

// Collector picks an input method, either preset or asked for each time, and
// delegates to the matching source.
type Collector struct {
	Method  InputMethod
	Sources map[InputMethod]InputSource
}

func NewCollector(method InputMethod, dialog, decorator []string) *Collector {
	var prompt func(string) (string, error)
	if pretty.Interactive {
		prompt = StyledPrompt
	}
	return &Collector{
		Method: method,
		Sources: map[InputMethod]InputSource{
			InputPlain:   PlainInput{},
			InputDialog:  DialogInput{Command: dialog, Stdin: os.Stdin, Stderr: os.Stderr},
			InputRainbow: DecoratedInput{Decorator: decorator, Prompt: prompt},
		},
	}
}

func (it *Collector) Collect(console *Console) (string, error) {
	method := it.Method
	if len(method) == 0 {
		names := make([]string, 0, len(inputMethods))
		for _, candidate := range inputMethods {
			names = append(names, string(candidate))
		}
		reply, err := console.Choose("Choose input method", names)
		if err != nil {
			return "", err
		}
		method = InputMethod(reply)
	}
	source, ok := it.Sources[method]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownInputMethod, method)
	}
	common.Trace("collecting package input with %q", method)
	return source.ReadInput(console)
}
