package docgen

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGanttNode(t *testing.T) {
	theme := DefaultTheme()
	activities := []Activity{
		{ID: 1, Name: "Design", Start: dayPtr(2026, time.March, 2), End: dayPtr(2026, time.March, 13)},
		{ID: 11, ParentID: 1, Name: "Concept", SortOrder: 1, Start: dayPtr(2026, time.March, 2), End: dayPtr(2026, time.March, 6)},
	}

	node := BuildGanttNode(activities, theme)
	require.Equal(t, NodeTable, node.Kind)
	plan := node.Table
	require.NotNil(t, plan)
	assert.Equal(t, TableGantt, plan.Kind)

	// 两行表头：月带行 + 日号行
	require.Len(t, plan.HeaderRows, 2)
	bandRow, dayRow := plan.HeaderRows[0], plan.HeaderRows[1]

	// 月带跨列数之和等于周列数
	weekCount := len(dayRow) - 1
	spanTotal := 0
	for _, cell := range bandRow[1:] {
		span := cell.ColSpan
		if span == 0 {
			span = 1
		}
		spanTotal += span
	}
	assert.Equal(t, weekCount, spanTotal)
	assert.Equal(t, "Activity", dayRow[0].Text)

	// 活动行：父活动加粗，子活动缩进
	require.Len(t, plan.BodyRows, 2)
	parent, child := plan.BodyRows[0], plan.BodyRows[1]
	assert.True(t, parent[0].Style.Bold)
	assert.Equal(t, "Design", parent[0].Text)
	assert.False(t, child[0].Style.Bold)
	assert.Equal(t, "    Concept", child[0].Text)

	// 占据的周格填充强调色：父活动跨两周
	assert.Equal(t, theme.Accent, parent[1].Style.Fill)
	assert.Equal(t, theme.Accent, parent[2].Style.Fill)
	// 子活动只占第一周
	assert.Equal(t, theme.Accent, child[1].Style.Fill)
	assert.Empty(t, child[2].Style.Fill)

	// 列宽：名称列 + 等宽周列，总和100
	require.Len(t, plan.ColumnWidths, weekCount+1)
	sum := 0.0
	for _, w := range plan.ColumnWidths {
		sum += w
	}
	assert.InDelta(t, 100.0, sum, 0.001)
	assert.Equal(t, plan.ColumnWidths[1], plan.ColumnWidths[2])
}

func TestBuildGanttNode_UndatedActivityRow(t *testing.T) {
	activities := []Activity{
		{ID: 1, Name: "Scheduled", Start: dayPtr(2026, time.March, 2), End: dayPtr(2026, time.March, 6)},
		{ID: 2, Name: "Unscheduled"},
	}

	node := BuildGanttNode(activities, DefaultTheme())
	require.Equal(t, NodeTable, node.Kind)
	require.Len(t, node.Table.BodyRows, 2)

	// 未排期活动仍占一行，但不占任何周格
	unscheduled := node.Table.BodyRows[1]
	for _, cell := range unscheduled[1:] {
		assert.Empty(t, cell.Style.Fill)
	}
}

func TestBuildGanttNode_NoDatedActivities(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		node := BuildGanttNode(nil, DefaultTheme())
		assert.Equal(t, NodePlaceholder, node.Kind)
		assert.Equal(t, "No activities with scheduled dates", node.Text)
	})

	t.Run("only undated activities", func(t *testing.T) {
		node := BuildGanttNode([]Activity{{ID: 1, Name: "x"}}, DefaultTheme())
		assert.Equal(t, NodePlaceholder, node.Kind)
	})
}
