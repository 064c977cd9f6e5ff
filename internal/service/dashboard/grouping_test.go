package dashboard

import (
	"testing"

	"github.com/cmlabs-hris/event-checkin-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartitionByGroup_Scenario(t *testing.T) {
	records := []attendance.AttendanceRecord{
		{No: 1, Group: 1, Join: true},
		{No: 2, Group: 1, Join: false},
		{No: 3, Group: 2, Join: true},
	}

	groups := PartitionByGroup(records)

	require.Len(t, groups, 2)
	assert.Equal(t, 1, groups[0].Group)
	assert.Equal(t, 1, groups[0].Joined)
	assert.Equal(t, 1, groups[0].Absent)
	assert.Equal(t, []int{1, 2}, nos(groups[0].Items))
	assert.Equal(t, 2, groups[1].Group)
	assert.Equal(t, 1, groups[1].Joined)
	assert.Equal(t, 0, groups[1].Absent)
	assert.Equal(t, []int{3}, nos(groups[1].Items))
}

func TestPartitionByGroup_PresentFirstThenNo(t *testing.T) {
	records := []attendance.AttendanceRecord{
		{No: 5, Group: 0, Join: false},
		{No: 4, Group: 0, Join: true},
		{No: 1, Group: 0, Join: false},
		{No: 9, Group: 0, Join: true},
		{No: 2, Group: 0, Join: true},
	}

	groups := PartitionByGroup(records)

	require.Len(t, groups, 1)
	assert.Equal(t, []int{2, 4, 9, 1, 5}, nos(groups[0].Items))
}

func TestPartitionByGroup_Invariants(t *testing.T) {
	records := make([]attendance.AttendanceRecord, 0)
	for i := 1; i <= 60; i++ {
		records = append(records, attendance.AttendanceRecord{No: i, Group: (i * 7) % 5, Join: i%3 != 0})
	}

	groups := PartitionByGroup(records)

	seen := make(map[int]int)
	total := 0
	for gi, g := range groups {
		if gi > 0 {
			assert.Less(t, groups[gi-1].Group, g.Group)
		}
		assert.Equal(t, len(g.Items), g.Joined+g.Absent)
		absentSeen := false
		for i, item := range g.Items {
			assert.Equal(t, g.Group, item.Group)
			seen[item.No]++
			if !item.Join {
				absentSeen = true
			} else {
				assert.False(t, absentSeen, "present record after an absent one in group %d", g.Group)
			}
			if i > 0 && g.Items[i-1].Join == item.Join {
				assert.Less(t, g.Items[i-1].No, item.No)
			}
		}
		total += len(g.Items)
	}
	assert.Equal(t, len(records), total)
	for _, r := range records {
		assert.Equal(t, 1, seen[r.No], "record %d", r.No)
	}
}

func TestPartitionByGroup_Deterministic(t *testing.T) {
	records := []attendance.AttendanceRecord{
		{No: 3, Group: 2, Join: false},
		{No: 1, Group: 0, Join: true},
		{No: 2, Group: 2, Join: true},
		{No: 4, Group: 1, Join: false},
	}
	original := append([]attendance.AttendanceRecord(nil), records...)

	first := PartitionByGroup(records)
	second := PartitionByGroup(records)

	assert.Equal(t, first, second)
	assert.Equal(t, original, records)
	assert.Equal(t, []int{0, 1, 2}, []int{first[0].Group, first[1].Group, first[2].Group})
}

func TestPartitionByGroup_Empty(t *testing.T) {
	assert.Empty(t, PartitionByGroup(nil))
}

func nos(items []attendance.AttendanceRecord) []int {
	out := make([]int, 0, len(items))
	for _, item := range items {
		out = append(out, item.No)
	}
	return out
}
