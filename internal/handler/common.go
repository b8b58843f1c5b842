package handler

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// padding is the space added on each side of the widest line in a frame.
const padding = 5

func frameWidth(bankName string, contents ...string) int {
	widest := utf8.RuneCountInString(bankName)
	for _, s := range contents {
		if n := utf8.RuneCountInString(s); n > widest {
			widest = n
		}
	}
	return 2*padding + widest
}

func rule(w io.Writer, width int) {
	fmt.Fprintln(w, strings.Repeat("-", width))
}

func center(s string, width int) string {
	gap := width - utf8.RuneCountInString(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}

func ljust(s string, width int) string {
	gap := width - utf8.RuneCountInString(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

func writeBanner(w io.Writer, bankName string) {
	width := frameWidth(bankName)
	rule(w, width)
	fmt.Fprintf(w, "|%s|\n", center(bankName, width-2))
	rule(w, width)
}

func writeHeader(w io.Writer, title string, width int) {
	rule(w, width)
	fmt.Fprintf(w, "| %s|\n", center(title, width-3))
	rule(w, width)
}

func writePanel(w io.Writer, lines []string, width int) {
	rule(w, width)
	for _, line := range lines {
		fmt.Fprintf(w, "| %s|\n", ljust(line, width-3))
	}
	rule(w, width)
}

// letter maps an option index to its menu key: 0 -> A, 1 -> B, ...
func letter(i int) string {
	return string(rune('A' + i))
}
