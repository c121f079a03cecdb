package models

import (
	"golang.org/x/exp/slices"
)

// Recurrence describes how often an expense repeats. It is informational only.
type Recurrence string

const (
	RecurrenceNone    Recurrence = "none"
	RecurrenceWeekly  Recurrence = "weekly"
	RecurrenceMonthly Recurrence = "monthly"
	RecurrenceYearly  Recurrence = "yearly"
)

// Recurrences lists all valid recurrences in display order.
var Recurrences = []Recurrence{
	RecurrenceNone,
	RecurrenceWeekly,
	RecurrenceMonthly,
	RecurrenceYearly,
}

var recurrenceLabels = map[Recurrence]string{
	RecurrenceNone:    "Nenhuma",
	RecurrenceWeekly:  "Semanal",
	RecurrenceMonthly: "Mensal",
	RecurrenceYearly:  "Anual",
}

// ParseRecurrence returns the Recurrence for its tag.
func ParseRecurrence(s string) (Recurrence, error) {
	r := Recurrence(s)
	if !r.Valid() {
		return "", ErrRecurrenceInvalid
	}

	return r, nil
}

// Valid reports whether r is one of the known recurrences.
func (r Recurrence) Valid() bool {
	return slices.Contains(Recurrences, r)
}

// Label is the human readable name of the recurrence.
func (r Recurrence) Label() string {
	return recurrenceLabels[r]
}
