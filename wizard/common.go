package wizard

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/joshyorko/aptcli/pretty"
)

const (
	UNIX_NEWLINE    = "\n"
	WINDOWS_NEWLINE = "\r\n"

	newline = '\n'
)

type Validator func(string) bool

// Console is the line-oriented terminal the session talks through. All reads
// share one buffered reader so typed-ahead lines are not lost between prompts.
type Console struct {
	source *bufio.Reader
	sink   io.Writer
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		source: bufio.NewReader(in),
		sink:   out,
	}
}

func (it *Console) Out() io.Writer {
	return it.sink
}

// Buffered is the number of input bytes already read ahead but not consumed.
// Anything else reading the same input stream cannot see them.
func (it *Console) Buffered() int {
	return it.source.Buffered()
}

func (it *Console) Printf(form string, details ...interface{}) {
	fmt.Fprintf(it.sink, form, details...)
}

func (it *Console) Success(form string, details ...interface{}) {
	it.Printf("%s%s%s\n", pretty.StatusColor("success"), fmt.Sprintf(form, details...), pretty.Reset)
}

// Running announces a command line that is about to start.
func (it *Console) Running(form string, details ...interface{}) {
	it.Printf("%s%s%s\n", pretty.StatusColor("running"), fmt.Sprintf(form, details...), pretty.Reset)
}

func (it *Console) Warning(form string, details ...interface{}) {
	it.Printf("%s%s%s\n", pretty.Yellow, fmt.Sprintf(form, details...), pretty.Reset)
}

func (it *Console) Failure(form string, details ...interface{}) {
	it.Printf("%s%s%s\n", pretty.StatusColor("failed"), fmt.Sprintf(form, details...), pretty.Reset)
}

// readLine returns one line without its terminator. A last line that ends at
// EOF without a newline still counts as a reply.
func (it *Console) readLine() (string, error) {
	reply, err := it.source.ReadString(newline)
	if err != nil && !(errors.Is(err, io.EOF) && len(reply) > 0) {
		return "", err
	}
	reply = strings.TrimSuffix(reply, UNIX_NEWLINE)
	return strings.TrimSuffix(reply, "\r"), nil
}

// Line asks a free-form question and returns the reply as typed.
func (it *Console) Line(question string) (string, error) {
	it.Printf("%s%s%s ", pretty.White, question, pretty.Reset)
	return it.readLine()
}

func (it *Console) ask(question, defaults string, validator Validator) (string, error) {
	for {
		if len(defaults) > 0 {
			it.Printf("%s? %s%s %s[%s]:%s ", pretty.Green, pretty.White, question, pretty.Grey, defaults, pretty.Reset)
		} else {
			it.Printf("%s? %s%s:%s ", pretty.Green, pretty.White, question, pretty.Reset)
		}
		reply, err := it.readLine()
		if err != nil {
			return "", err
		}
		reply = strings.TrimSpace(reply)
		if len(reply) == 0 {
			reply = defaults
		}
		if !validator(reply) {
			continue
		}
		return reply, nil
	}
}

// Choose keeps asking until the reply is one of the choices.
func (it *Console) Choose(question string, choices []string) (string, error) {
	if len(choices) == 0 {
		return "", ErrNoChoices
	}
	listing := fmt.Sprintf("%s [%s]", question, strings.Join(choices, "/"))
	return it.ask(listing, "", it.memberValidation(choices, "Please select one of the available options"))
}

func (it *Console) memberValidation(members []string, erratic string) Validator {
	return func(input string) bool {
		for _, member := range members {
			if input == member {
				return true
			}
		}
		it.Printf("%s%s%s\n\n", pretty.Red, erratic, pretty.Reset)
		return false
	}
}
