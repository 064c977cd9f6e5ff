package attendance

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// MonthSheet identifies one reporting period as listed by the backend.
type MonthSheet struct {
	Order     int    `json:"order"`
	SheetName string `json:"sheetName"`
	Label     string `json:"label"`
	Exists    bool   `json:"exists"`
}

// AttendanceRecord is one participant's status for one period.
// Datetime is "YYYY-MM-DD HH:mm:ss" or empty when the participant has not checked in.
type AttendanceRecord struct {
	No       int    `json:"no"`
	Datetime string `json:"datetime"`
	CCCD     string `json:"cccd"`
	Name     string `json:"name"`
	Join     bool   `json:"join"`
	Group    int    `json:"group"`
}

// UnmarshalJSON treats a null, empty or non-numeric group as group 0.
func (r *AttendanceRecord) UnmarshalJSON(data []byte) error {
	type alias AttendanceRecord
	aux := struct {
		*alias
		Group json.RawMessage `json:"group"`
	}{alias: (*alias)(r)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	r.Group = parseGroup(aux.Group)
	return nil
}

func parseGroup(raw json.RawMessage) int {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return int(n)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if v, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			return v
		}
	}
	return 0
}

// SheetMeta accompanies an attendance listing.
type SheetMeta struct {
	SheetName string `json:"sheetName,omitempty"`
	Total     int    `json:"total,omitempty"`
}

// GroupSummary is one partition of a period's records by group.
type GroupSummary struct {
	Group  int                `json:"group"`
	Items  []AttendanceRecord `json:"items"`
	Joined int                `json:"joined"`
	Absent int                `json:"absent"`
}

// SheetAttendance is the decoded attendance payload for one period.
type SheetAttendance struct {
	Records []AttendanceRecord
	Meta    SheetMeta
}
