package dashboard

import (
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/cmlabs-hris/event-checkin-go/internal/domain/attendance"
	"github.com/cmlabs-hris/event-checkin-go/internal/pkg/validator"
)

// DeriveYears returns the distinct YYYY prefixes of well-formed sheet names, newest first.
// Sheet names that are not exactly six digits are skipped.
func DeriveYears(months []attendance.MonthSheet) []string {
	seen := make(map[string]struct{})
	years := make([]string, 0)
	for _, m := range months {
		if !validator.IsValidSheetName(m.SheetName) {
			continue
		}
		year := m.SheetName[:4]
		if _, ok := seen[year]; ok {
			continue
		}
		seen[year] = struct{}{}
		years = append(years, year)
	}
	// four digit strings order numerically and lexically the same way
	slices.SortFunc(years, func(a, b string) int { return strings.Compare(b, a) })
	return years
}

// MonthsForYear returns the months whose sheet name starts with year, newest first.
func MonthsForYear(months []attendance.MonthSheet, year string) []attendance.MonthSheet {
	result := make([]attendance.MonthSheet, 0)
	if year == "" {
		return result
	}
	for _, m := range months {
		if strings.HasPrefix(m.SheetName, year) {
			result = append(result, m)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return sheetNumber(result[i].SheetName) > sheetNumber(result[j].SheetName)
	})
	return result
}

// sheetNumber mirrors Number(sheetName): anything non-numeric sorts last.
func sheetNumber(sheetName string) int64 {
	n, err := strconv.ParseInt(sheetName, 10, 64)
	if err != nil {
		return -1
	}
	return n
}

// MonthLabel renders "202405" as "2024-05" for the month select.
func MonthLabel(sheetName string) string {
	if !validator.IsValidSheetName(sheetName) {
		return sheetName
	}
	return sheetName[:4] + "-" + sheetName[4:]
}

// YearOf returns the year part of a well-formed sheet name.
func YearOf(sheetName string) (string, bool) {
	if !validator.IsValidSheetName(sheetName) {
		return "", false
	}
	return sheetName[:4], true
}
