// Package idiom walks through a handful of Go conventions: one statement per
// line, explicit zero-value checks in place of truthiness, nil identity
// checks, and matching errors by identity.
package idiom

import (
	"errors"
	"fmt"
	"io"
)

var errNotFound = errors.New("not found")

// Check is one demonstration: its label and whether the idiomatic form of the
// condition holds.
type Check struct {
	Label string
	Holds bool
}

// Checks evaluates each demonstration in tour order.
func Checks() []Check {
	trueValue := "aaa"       // non-empty, or 1, or []int{1}
	falseValue := []string{} // empty, or 0, or "", or nil
	var noneValue *string

	// Bad: isSet == true. A bool is already a condition.
	isSet := trueValue != ""

	err := fmt.Errorf("lookup: %w", errNotFound)

	return []Check{
		{Label: "Truthy", Holds: isSet},
		{Label: "Falsy", Holds: len(falseValue) == 0},
		{Label: "nil", Holds: noneValue == nil},
		{Label: "not nil", Holds: noneValue != nil},
		// err.Error() == "not found" would miss the wrapped sentinel.
		{Label: errNotFound.Error(), Holds: errors.Is(err, errNotFound)},
	}
}

// Tour writes each demonstration that holds to w, one per line.
func Tour(w io.Writer) error {
	// One statement per line.
	if _, err := fmt.Fprintln(w, "Hello"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "World"); err != nil {
		return err
	}

	// gofmt splits `a(); b()` onto two lines, so there is no one-line form.
	for _, s := range []string{"Hello", "World"} {
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
	}

	for _, c := range Checks() {
		if !c.Holds {
			continue
		}
		if _, err := fmt.Fprintln(w, c.Label); err != nil {
			return err
		}
	}
	return nil
}
