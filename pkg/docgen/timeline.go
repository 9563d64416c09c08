package docgen

import (
	"sort"
	"time"
)

// Activity 进度计划中的一项活动，只读输入。
// 起止日期任一为空的活动不参与时间轴栅格，
// 但仍会出现在其他位置。
type Activity struct {
	ID        uint64
	ParentID  uint64 // 0 表示顶层活动
	Name      string
	Start     *time.Time
	End       *time.Time
	SortOrder int
}

// dated 判断活动是否具备完整起止日期
func (a Activity) dated() bool {
	return a.Start != nil && a.End != nil
}

// WeekColumn 时间轴上的一个周列，WeekStart 恒为周一
type WeekColumn struct {
	WeekStart time.Time
	Day       int    // 表头显示的日
	Month     string // 月份标签
	Year      int
}

// MonthBand 连续同月周列合并成的月带，
// 用于渲染两行表头（月行跨N个周列，日行在下）
type MonthBand struct {
	Label      string
	Year       int
	ColumnSpan int
}

// weekStart 回退到最近的周一。周日按0处理需回退6天，
// 其余回退 weekday-1 天。
func weekStart(t time.Time) time.Time {
	d := dateOnly(t)
	back := int(d.Weekday()) - 1
	if d.Weekday() == time.Sunday {
		back = 6
	}
	return d.AddDate(0, 0, -back)
}

// dateOnly 去掉时分秒，统一到UTC日期
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// BuildWeekColumns 根据活动集合生成连续无缺口的周列序列，
// 范围为最早开始日到最晚结束日（含最后一个不完整周）。
// 没有任何带日期的活动时返回nil。
func BuildWeekColumns(activities []Activity) []WeekColumn {
	var minStart, maxEnd time.Time
	found := false
	for _, a := range activities {
		if !a.dated() {
			continue
		}
		s, e := dateOnly(*a.Start), dateOnly(*a.End)
		if !found {
			minStart, maxEnd = s, e
			found = true
			continue
		}
		if s.Before(minStart) {
			minStart = s
		}
		if e.After(maxEnd) {
			maxEnd = e
		}
	}
	if !found {
		return nil
	}

	var columns []WeekColumn
	for d := weekStart(minStart); !d.After(maxEnd); d = d.AddDate(0, 0, 7) {
		columns = append(columns, WeekColumn{
			WeekStart: d,
			Day:       d.Day(),
			Month:     d.Month().String()[:3],
			Year:      d.Year(),
		})
	}
	return columns
}

// GroupByMonth 将周列按月份分组为月带，
// 月或年变化处即为月带边界
func GroupByMonth(columns []WeekColumn) []MonthBand {
	var bands []MonthBand
	for _, col := range columns {
		if n := len(bands); n > 0 && bands[n-1].Label == col.Month && bands[n-1].Year == col.Year {
			bands[n-1].ColumnSpan++
			continue
		}
		bands = append(bands, MonthBand{Label: col.Month, Year: col.Year, ColumnSpan: 1})
	}
	return bands
}

// CellOccupied 判断活动条是否占据该周列。
// 采用区间重叠判断而非包含判断：周跨度 [周一, 周日]
// 与活动区间有任何重叠即视为占据。
func CellOccupied(col WeekColumn, start, end time.Time) bool {
	ws := col.WeekStart
	we := ws.AddDate(0, 0, 6)
	return !ws.After(dateOnly(end)) && !we.Before(dateOnly(start))
}

// OrderActivities 整理活动的显示顺序：
// 顶层活动保持原顺序，每个顶层活动后按深度优先紧跟其全部后代
// （同级按SortOrder）。父活动缺失或形成环而挂不到任何顶层活动
// 的行统一追加在最后，保持原相对顺序，任何活动都不会丢失。
func OrderActivities(activities []Activity) []Activity {
	children := make(map[uint64][]Activity)
	var roots []Activity
	for _, a := range activities {
		if a.ParentID == 0 {
			roots = append(roots, a)
			continue
		}
		children[a.ParentID] = append(children[a.ParentID], a)
	}
	for pid := range children {
		cs := children[pid]
		sort.SliceStable(cs, func(i, j int) bool { return cs[i].SortOrder < cs[j].SortOrder })
		children[pid] = cs
	}

	ordered := make([]Activity, 0, len(activities))
	seen := make(map[uint64]bool, len(activities))
	var emit func(a Activity)
	emit = func(a Activity) {
		if seen[a.ID] {
			return
		}
		seen[a.ID] = true
		ordered = append(ordered, a)
		for _, c := range children[a.ID] {
			emit(c)
		}
	}
	for _, r := range roots {
		emit(r)
	}
	for _, a := range activities {
		emit(a)
	}
	return ordered
}
