package domain

import (
	"math/rand"
	"regexp"
	"strconv"
)

var (
	accountIDPattern = regexp.MustCompile(`^\d{4}-\d{4}-\d{4}$`)
	pinPattern       = regexp.MustCompile(`^\d{4}$`)
	namePattern      = regexp.MustCompile(`^[A-Za-z ]*[A-Za-z][A-Za-z ]*$`)
)

// ValidAccountID reports whether id has the DDDD-DDDD-DDDD shape.
func ValidAccountID(id string) bool {
	return accountIDPattern.MatchString(id)
}

func ValidPIN(pin string) bool {
	return pinPattern.MatchString(pin)
}

// ValidName accepts ASCII letters and spaces with at least one letter.
func ValidName(name string) bool {
	return namePattern.MatchString(name)
}

// IDGroupSource returns one 4-digit group in [1000, 9999].
type IDGroupSource func() int

// RandomIDGroup draws a group uniformly from [1000, 9999].
func RandomIDGroup() int {
	return 1000 + rand.Intn(9000)
}

// NewAccountID builds a candidate id from three independent groups.
func NewAccountID(next IDGroupSource) string {
	return strconv.Itoa(next()) + "-" + strconv.Itoa(next()) + "-" + strconv.Itoa(next())
}
