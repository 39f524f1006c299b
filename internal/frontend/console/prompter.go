package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter reads answers line by line from an input stream and writes prompts
// and messages to an output stream.
type Prompter struct {
	in    *bufio.Reader
	out   io.Writer
	color bool
}

// NewPrompter returns a Prompter over in and out. When color is false every
// line is written without escape sequences, including any carried in roster text.
//
// Precondition: in and out must be non-nil.
func NewPrompter(in io.Reader, out io.Writer, color bool) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out, color: color}
}

// Style applies color to text when the prompter is in color mode.
func (p *Prompter) Style(color, text string) string {
	if !p.color {
		return text
	}
	return Colorize(color, text)
}

// Stylef formats according to format and applies color like Style.
func (p *Prompter) Stylef(color, format string, args ...any) string {
	if !p.color {
		return fmt.Sprintf(format, args...)
	}
	return Colorf(color, format, args...)
}

// WriteLine writes text followed by a newline.
func (p *Prompter) WriteLine(text string) error {
	_, err := fmt.Fprintln(p.out, p.plain(text))
	return err
}

// WritePrompt writes text without a trailing newline.
func (p *Prompter) WritePrompt(text string) error {
	_, err := io.WriteString(p.out, p.plain(text))
	return err
}

func (p *Prompter) plain(text string) string {
	if p.color {
		return text
	}
	return StripANSI(text)
}

// ReadLine reads one line of input without its trailing "\n" or "\r\n".
// A final line without a newline is returned with a nil error; io.EOF is
// returned only when nothing was read.
func (p *Prompter) ReadLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

// Ask writes prompt and returns the reply as typed.
func (p *Prompter) Ask(prompt string) (string, error) {
	if err := p.WritePrompt(p.Style(BrightWhite, prompt)); err != nil {
		return "", err
	}
	return p.ReadLine()
}

// AskTeamSize asks for the number of heroes per team until the reply is
// exactly "3" or "4".
//
// Postcondition: returns 3 or 4, or the read error.
func (p *Prompter) AskTeamSize() (int, error) {
	for {
		reply, err := p.Ask("Would you like to play with 3 or 4 heroes per team? ")
		if err != nil {
			return 0, fmt.Errorf("reading team size: %w", err)
		}
		switch reply {
		case "3":
			return 3, nil
		case "4":
			return 4, nil
		}
		_ = p.WriteLine(p.Style(Red, `Please enter only "3" or "4".`))
		_ = p.WriteLine("")
	}
}

// AskYesNo asks question until the reply is y, yes, n, or no in any case.
func (p *Prompter) AskYesNo(question string) (bool, error) {
	for {
		reply, err := p.Ask(question)
		if err != nil {
			return false, fmt.Errorf("reading yes/no answer: %w", err)
		}
		switch strings.ToLower(reply) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		_ = p.WriteLine(p.Style(Red, "Please enter (y)es or (n)o."))
		_ = p.WriteLine("")
	}
}

// AskTeamNames asks for both captains' names, asking for both again while
// they are equal.
//
// Postcondition: first != second, or a read error is returned.
func (p *Prompter) AskTeamNames() (first, second string, err error) {
	for {
		first, err = p.Ask("Please enter a name for the first team captain: ")
		if err != nil {
			return "", "", fmt.Errorf("reading first team name: %w", err)
		}
		second, err = p.Ask("Please enter a name for the second team captain: ")
		if err != nil {
			return "", "", fmt.Errorf("reading second team name: %w", err)
		}
		if first != second {
			return first, second, nil
		}
		_ = p.WriteLine(p.Style(Red, "Please choose a different name for each team."))
		_ = p.WriteLine("")
	}
}
