package docgen

import "fmt"

// 甘特图中活动名称列占表宽的比例
const ganttNameColWidth = 25.0

// BuildGanttNode 将活动集合栅格化为甘特表节点：
// 两行表头（月带跨列 + 周一日号），每个活动一行，
// 占据的周格填充统一强调色，父活动加粗、子活动缩进。
// 没有任何带日期的活动时返回显式占位节点。
func BuildGanttNode(activities []Activity, theme Theme) Node {
	columns := BuildWeekColumns(activities)
	if len(columns) == 0 {
		return Node{Kind: NodePlaceholder, Text: "No activities with scheduled dates"}
	}
	bands := GroupByMonth(columns)
	ordered := OrderActivities(activities)

	plan := &TableLayoutPlan{
		Kind:         TableGantt,
		ColumnWidths: ganttWidths(len(columns)),
	}

	// 表头第一行：月带
	bandRow := []TableCell{{Text: "", Style: CellStyle{Fill: theme.HeaderFill}}}
	for _, band := range bands {
		bandRow = append(bandRow, TableCell{
			Text:    fmt.Sprintf("%s %d", band.Label, band.Year),
			ColSpan: band.ColumnSpan,
			Style:   CellStyle{Bold: true, Fill: theme.HeaderFill, Align: "center"},
		})
	}
	// 表头第二行：周一的日号
	dayRow := []TableCell{{Text: "Activity", Style: CellStyle{Bold: true, Fill: theme.HeaderFill}}}
	for _, col := range columns {
		dayRow = append(dayRow, TableCell{
			Text:  fmt.Sprintf("%d", col.Day),
			Style: CellStyle{Fill: theme.HeaderFill, Align: "center"},
		})
	}
	plan.HeaderRows = [][]TableCell{bandRow, dayRow}

	// 活动行：未排期的活动仅显示名称行，不占格
	for _, act := range ordered {
		name := TableCell{Text: act.Name}
		if act.ParentID == 0 {
			name.Style.Bold = true
		} else {
			name.Text = "    " + name.Text
		}
		row := []TableCell{name}
		for _, col := range columns {
			cell := TableCell{}
			if act.dated() && CellOccupied(col, *act.Start, *act.End) {
				cell.Style.Fill = theme.Accent
			}
			row = append(row, cell)
		}
		plan.BodyRows = append(plan.BodyRows, row)
	}

	return Node{Kind: NodeTable, Table: plan}
}

// ganttWidths 名称列固定，周列均分剩余宽度。
// 周列必须等宽，分页后端按固定宽度栅格渲染。
func ganttWidths(weekCount int) []float64 {
	widths := make([]float64, weekCount+1)
	widths[0] = ganttNameColWidth
	share := (100 - ganttNameColWidth) / float64(weekCount)
	for i := 1; i < len(widths); i++ {
		widths[i] = share
	}
	return widths
}
