package dashboard

import (
	"github.com/cmlabs-hris/event-checkin-go/internal/domain/attendance"
	"github.com/cmlabs-hris/event-checkin-go/internal/pkg/validator"
)

// State is where a Selection sits in the settle sequence.
type State string

const (
	StateNoYear        State = "no-year"
	StateYearOnly      State = "year-only"
	StateFullySelected State = "fully-selected"
)

// Selection is the year and period currently shown on the dashboard.
type Selection struct {
	Year      string
	SheetName string
}

func (s Selection) State() State {
	switch {
	case s.Year == "":
		return StateNoYear
	case s.SheetName == "":
		return StateYearOnly
	default:
		return StateFullySelected
	}
}

// ActionKind enumerates the inputs of Reduce.
type ActionKind int

const (
	// ActionNone only settles defaults.
	ActionNone ActionKind = iota
	// ActionSelectYear is an explicit year pick; it clears the month.
	ActionSelectYear
	// ActionSelectMonth is an explicit month pick.
	ActionSelectMonth
	// ActionDataReloaded means the month list was fetched again.
	ActionDataReloaded
)

type Action struct {
	Kind  ActionKind
	Value string
}

func SelectYear(year string) Action {
	return Action{Kind: ActionSelectYear, Value: year}
}

func SelectMonth(sheetName string) Action {
	return Action{Kind: ActionSelectMonth, Value: sheetName}
}

func DataReloaded() Action {
	return Action{Kind: ActionDataReloaded}
}

// ChooseDefaultSelection performs one settle step. It only fills gaps and never
// replaces a choice that is already made.
func ChooseDefaultSelection(months []attendance.MonthSheet, current Selection) Selection {
	next := current
	if next.Year == "" {
		if years := DeriveYears(months); len(years) > 0 {
			next.Year = years[0]
		}
		// the month step runs on the next evaluation, after the year change lands
		return next
	}
	if next.SheetName == "" {
		if list := MonthsForYear(months, next.Year); len(list) > 0 {
			next.SheetName = list[0].SheetName
		}
	}
	return next
}

// Settle applies ChooseDefaultSelection until nothing changes.
func Settle(months []attendance.MonthSheet, current Selection) Selection {
	for {
		next := ChooseDefaultSelection(months, current)
		if next == current {
			return next
		}
		current = next
	}
}

// Reduce applies a user or data action and settles the result.
func Reduce(months []attendance.MonthSheet, current Selection, action Action) Selection {
	next := current
	switch action.Kind {
	case ActionSelectYear:
		// a malformed year would prefix-match sheets of other years
		if validator.IsValidYear(action.Value) {
			next = Selection{Year: action.Value}
		}
	case ActionSelectMonth:
		next.SheetName = action.Value
		if year, ok := YearOf(action.Value); ok {
			next.Year = year
		}
	case ActionDataReloaded, ActionNone:
	}
	return Settle(months, next)
}
