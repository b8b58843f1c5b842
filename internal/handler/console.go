package handler

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const (
	clearSequence = "\033[H\033[2J"
	pausePrompt   = "\nPress Enter to continue."
)

// Console is the terminal Presenter: line prompts on in, framed text on out.
type Console struct {
	in       *bufio.Reader
	out      io.Writer
	bankName string
	clear    bool
}

func NewConsole(in io.Reader, out io.Writer, bankName string, clear bool) *Console {
	return &Console{
		in:       bufio.NewReader(in),
		out:      out,
		bankName: bankName,
		clear:    clear,
	}
}

// PromptText writes message and reads one line without its terminator.
// A final unterminated line is still returned; after that, io.EOF.
func (c *Console) PromptText(message string) (string, error) {
	fmt.Fprint(c.out, message)
	line, err := c.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Display prints a single line as is and frames multi-line output.
func (c *Console) Display(lines ...string) {
	switch len(lines) {
	case 0:
	case 1:
		fmt.Fprintln(c.out, lines[0])
	default:
		writePanel(c.out, lines, frameWidth(c.bankName, lines...))
	}
}

func (c *Console) Confirm(message string) (bool, error) {
	for {
		input, err := c.PromptText(message + " (Y/N): ")
		if err != nil {
			return false, err
		}
		switch strings.ToUpper(strings.TrimSpace(input)) {
		case "Y":
			return true, nil
		case "N":
			return false, nil
		}
		fmt.Fprintln(c.out, "Invalid choice. Please try again.")
	}
}

// Choose shows a lettered menu under title and returns the picked index.
func (c *Console) Choose(title string, options []string) (int, error) {
	items := make([]string, len(options))
	for i, opt := range options {
		items[i] = fmt.Sprintf("%s. %s", letter(i), opt)
	}
	width := frameWidth(c.bankName, append(items, title)...)

	writeBanner(c.out, c.bankName)
	writeHeader(c.out, title, width)
	writePanel(c.out, items, width)

	for {
		input, err := c.PromptText("Enter the letter of your choice: ")
		if err != nil {
			return 0, err
		}
		choice := strings.ToUpper(strings.TrimSpace(input))
		if len(choice) == 1 {
			if i := int(choice[0] - 'A'); choice[0] >= 'A' && i < len(options) {
				return i, nil
			}
		}
		fmt.Fprintln(c.out, "Invalid choice. Please try again.")
	}
}

// Pause holds the current screen until a line is entered.
func (c *Console) Pause() error {
	_, err := c.PromptText(pausePrompt)
	return err
}

// Screen starts a new screen: optional clear, banner, then title.
func (c *Console) Screen(title string) {
	c.Clear()
	writeBanner(c.out, c.bankName)
	writeHeader(c.out, title, frameWidth(c.bankName, title))
}

func (c *Console) Clear() {
	if c.clear {
		fmt.Fprint(c.out, clearSequence)
	}
}
