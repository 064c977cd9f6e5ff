package dashboard

import (
	"sort"

	"github.com/cmlabs-hris/event-checkin-go/internal/domain/attendance"
)

// PartitionByGroup splits records by group, ordering groups ascending and each
// group's items present-first then by No. The input slice is not modified.
func PartitionByGroup(records []attendance.AttendanceRecord) []attendance.GroupSummary {
	byGroup := make(map[int][]attendance.AttendanceRecord)
	keys := make([]int, 0)
	for _, r := range records {
		if _, ok := byGroup[r.Group]; !ok {
			keys = append(keys, r.Group)
		}
		byGroup[r.Group] = append(byGroup[r.Group], r)
	}
	sort.Ints(keys)

	groups := make([]attendance.GroupSummary, 0, len(keys))
	for _, key := range keys {
		items := byGroup[key]
		sort.SliceStable(items, func(i, j int) bool {
			if items[i].Join != items[j].Join {
				return items[i].Join
			}
			return items[i].No < items[j].No
		})

		joined := 0
		for _, item := range items {
			if item.Join {
				joined++
			}
		}
		groups = append(groups, attendance.GroupSummary{
			Group:  key,
			Items:  items,
			Joined: joined,
			Absent: len(items) - joined,
		})
	}
	return groups
}
