package docgen

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dayPtr(y int, m time.Month, d int) *time.Time {
	t := day(y, m, d)
	return &t
}

func TestWeekStart(t *testing.T) {
	t.Run("monday stays", func(t *testing.T) {
		// 2026-03-02 是周一
		assert.Equal(t, day(2026, time.March, 2), weekStart(day(2026, time.March, 2)))
	})

	t.Run("midweek rolls back", func(t *testing.T) {
		// 2026-03-05 周四 -> 2026-03-02 周一
		assert.Equal(t, day(2026, time.March, 2), weekStart(day(2026, time.March, 5)))
	})

	t.Run("sunday rolls back six days", func(t *testing.T) {
		// 2026-03-08 周日 -> 2026-03-02 周一
		assert.Equal(t, day(2026, time.March, 2), weekStart(day(2026, time.March, 8)))
	})
}

func TestBuildWeekColumns(t *testing.T) {
	activities := []Activity{
		{ID: 1, Name: "Design", Start: dayPtr(2026, time.March, 4), End: dayPtr(2026, time.March, 20)},
		{ID: 2, Name: "Unscheduled"},
	}

	columns := BuildWeekColumns(activities)
	require.Len(t, columns, 3)

	// 周列连续无缺口，全部为周一
	assert.Equal(t, day(2026, time.March, 2), columns[0].WeekStart)
	assert.Equal(t, day(2026, time.March, 9), columns[1].WeekStart)
	assert.Equal(t, day(2026, time.March, 16), columns[2].WeekStart)
	for _, col := range columns {
		assert.Equal(t, time.Monday, col.WeekStart.Weekday())
	}
}

func TestBuildWeekColumns_FinalPartialWeek(t *testing.T) {
	// 结束日落在最后一周中途，该周仍需生成
	activities := []Activity{
		{ID: 1, Name: "Works", Start: dayPtr(2026, time.March, 2), End: dayPtr(2026, time.March, 17)},
	}

	columns := BuildWeekColumns(activities)
	require.Len(t, columns, 3)
	assert.Equal(t, day(2026, time.March, 16), columns[2].WeekStart)
}

func TestBuildWeekColumns_NoDatedActivities(t *testing.T) {
	activities := []Activity{
		{ID: 1, Name: "No dates"},
		{ID: 2, Name: "Only start", Start: dayPtr(2026, time.March, 2)},
	}
	assert.Nil(t, BuildWeekColumns(activities))
}

func TestGroupByMonth(t *testing.T) {
	activities := []Activity{
		{ID: 1, Name: "Long", Start: dayPtr(2026, time.March, 23), End: dayPtr(2026, time.April, 10)},
	}
	columns := BuildWeekColumns(activities)
	bands := GroupByMonth(columns)

	// 月带跨列数之和必须等于周列总数
	total := 0
	for _, band := range bands {
		total += band.ColumnSpan
	}
	assert.Equal(t, len(columns), total)

	require.Len(t, bands, 2)
	assert.Equal(t, "Mar", bands[0].Label)
	assert.Equal(t, "Apr", bands[1].Label)
}

func TestGroupByMonth_YearBoundary(t *testing.T) {
	// 同月不同年不得合并
	columns := []WeekColumn{
		{WeekStart: day(2026, time.December, 28), Month: "Dec", Year: 2026},
		{WeekStart: day(2027, time.January, 4), Month: "Jan", Year: 2027},
		{WeekStart: day(2027, time.December, 6), Month: "Dec", Year: 2027},
	}
	bands := GroupByMonth(columns)
	require.Len(t, bands, 3)
}

func TestCellOccupied(t *testing.T) {
	col := WeekColumn{WeekStart: day(2026, time.March, 2)} // 周跨度 3-02 ~ 3-08

	t.Run("overlap at week end", func(t *testing.T) {
		// 活动从周日开始也算占据，重叠而非包含
		assert.True(t, CellOccupied(col, day(2026, time.March, 8), day(2026, time.March, 20)))
	})

	t.Run("overlap at week start", func(t *testing.T) {
		assert.True(t, CellOccupied(col, day(2026, time.February, 20), day(2026, time.March, 2)))
	})

	t.Run("fully inside week", func(t *testing.T) {
		assert.True(t, CellOccupied(col, day(2026, time.March, 4), day(2026, time.March, 5)))
	})

	t.Run("no overlap", func(t *testing.T) {
		assert.False(t, CellOccupied(col, day(2026, time.March, 9), day(2026, time.March, 12)))
		assert.False(t, CellOccupied(col, day(2026, time.February, 1), day(2026, time.March, 1)))
	})
}

func TestOrderActivities(t *testing.T) {
	activities := []Activity{
		{ID: 1, Name: "Stage 1"},
		{ID: 2, Name: "Stage 2"},
		{ID: 21, ParentID: 2, Name: "Stage 2 - b", SortOrder: 2},
		{ID: 22, ParentID: 2, Name: "Stage 2 - a", SortOrder: 1},
		{ID: 99, ParentID: 404, Name: "Orphan"},
		{ID: 11, ParentID: 1, Name: "Stage 1 - a", SortOrder: 1},
	}

	ordered := OrderActivities(activities)
	require.Len(t, ordered, 6)

	names := make([]string, 0, len(ordered))
	for _, a := range ordered {
		names = append(names, a.Name)
	}
	assert.Equal(t, []string{
		"Stage 1",
		"Stage 1 - a",
		"Stage 2",
		"Stage 2 - a",
		"Stage 2 - b",
		"Orphan",
	}, names)
}

func TestOrderActivities_NestedParents(t *testing.T) {
	t.Run("多级子活动不丢失", func(t *testing.T) {
		ordered := OrderActivities([]Activity{
			{ID: 1, Name: "Stage 1"},
			{ID: 2, ParentID: 1, Name: "Design"},
			{ID: 3, ParentID: 2, Name: "Concept Design"},
		})
		require.Len(t, ordered, 3)
		assert.Equal(t, "Stage 1", ordered[0].Name)
		assert.Equal(t, "Design", ordered[1].Name)
		assert.Equal(t, "Concept Design", ordered[2].Name)
	})

	t.Run("环引用不丢失也不死循环", func(t *testing.T) {
		ordered := OrderActivities([]Activity{
			{ID: 1, Name: "Stage 1"},
			{ID: 2, ParentID: 3, Name: "Loop A"},
			{ID: 3, ParentID: 2, Name: "Loop B"},
		})
		require.Len(t, ordered, 3)
		assert.Equal(t, "Stage 1", ordered[0].Name)
	})
}
