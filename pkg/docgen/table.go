package docgen

import (
	"strconv"
	"strings"
)

// TableKind 表格角色，决定列宽与着色规则
type TableKind int

const (
	TableGenericNCol TableKind = iota
	TableGeneric2Col
	TableProjectInfo
	TableTransmittal
	TableEvalPrice
	TableGantt
)

// CellStyle 单元格样式决策，计算一次后两个后端共用
type CellStyle struct {
	Bold  bool
	Fill  string // RRGGBB，空表示无底色
	Align string // "" / "right" / "center"
	Color string // 文字颜色，空表示默认
}

// TableCell 布局后的单元格
type TableCell struct {
	Text    string
	ColSpan int // 0或1表示不跨列
	Style   CellStyle
}

// TableLayoutPlan 表格布局方案：列宽百分比与逐格样式。
// 由表格角色推导，渲染后端只负责落到各自的原生格式。
type TableLayoutPlan struct {
	Kind           TableKind
	ColumnWidths   []float64 // 百分比，空表示交给后端默认
	HorizontalOnly bool      // 仅保留水平细线（项目信息表）
	HeaderRows     [][]TableCell
	BodyRows       [][]TableCell
}

// 运输清单6列的固定列宽：序号/图号/名称/版次/类别/子类别
var transmittalWidths = []float64{5, 10, 35, 8, 21, 21}

// ClassifyTable 识别表格角色。按class标记优先，
// 无标记时2列表按通用双列表处理（首列为标签列）。
func ClassifyTable(table *Elem) TableKind {
	class := table.Class()
	switch {
	case strings.Contains(class, "project-info"):
		return TableProjectInfo
	case strings.Contains(class, "eval-price"):
		return TableEvalPrice
	case strings.Contains(class, "transmittal"):
		return TableTransmittal
	}
	if rows := table.childRows(); len(rows) > 0 && len(rows[0].childCells()) == 2 {
		return TableGeneric2Col
	}
	return TableGenericNCol
}

// BuildTablePlan 对表格计算布局方案。
// 处理后没有任何数据行时返回nil，由调用方渲染占位内容。
func BuildTablePlan(table *Elem, theme Theme) *TableLayoutPlan {
	kind := ClassifyTable(table)
	rows := table.childRows()
	if len(rows) == 0 {
		return nil
	}

	plan := &TableLayoutPlan{
		Kind:           kind,
		HorizontalOnly: kind == TableProjectInfo,
	}

	for _, row := range rows {
		cells := row.childCells()
		if len(cells) == 0 {
			continue
		}
		headerRow := isHeaderRow(cells)
		out := make([]TableCell, 0, len(cells))
		for _, cell := range cells {
			out = append(out, layoutCell(cell, headerRow, kind, theme))
		}
		if headerRow && len(plan.BodyRows) == 0 {
			plan.HeaderRows = append(plan.HeaderRows, out)
		} else {
			plan.BodyRows = append(plan.BodyRows, out)
		}
	}
	if len(plan.BodyRows) == 0 {
		return nil
	}

	// 通用双列表：首列作为标签列加底色加粗
	if kind == TableGeneric2Col {
		for i := range plan.BodyRows {
			if len(plan.BodyRows[i]) == 0 {
				continue
			}
			if plan.BodyRows[i][0].Style.Fill == "" {
				plan.BodyRows[i][0].Style.Fill = theme.HeaderFill
			}
			plan.BodyRows[i][0].Style.Bold = true
		}
	}

	plan.ColumnWidths = columnWidths(kind, rows, columnCount(plan))
	return plan
}

// columnCount 取表格列数（按最宽的行）
func columnCount(plan *TableLayoutPlan) int {
	n := 0
	for _, row := range plan.HeaderRows {
		if len(row) > n {
			n = len(row)
		}
	}
	for _, row := range plan.BodyRows {
		if len(row) > n {
			n = len(row)
		}
	}
	return n
}

// columnWidths 按表格角色分配列宽百分比，各角色的结果和为100
func columnWidths(kind TableKind, rows []*Elem, count int) []float64 {
	if count == 0 {
		return nil
	}
	switch kind {
	case TableProjectInfo:
		return projectInfoWidths(rows, count)
	case TableEvalPrice:
		// 描述列固定40%，其余列均分60%
		widths := make([]float64, count)
		widths[0] = 40
		if count > 1 {
			share := 60.0 / float64(count-1)
			for i := 1; i < count; i++ {
				widths[i] = share
			}
		} else {
			widths[0] = 100
		}
		return widths
	case TableTransmittal:
		widths := make([]float64, count)
		for i := range widths {
			if i < len(transmittalWidths) {
				widths[i] = transmittalWidths[i]
			} else {
				widths[i] = 15 // 未定义列的兜底宽度
			}
		}
		return normalizeWidths(widths)
	default:
		// 通用表交给后端默认布局
		return nil
	}
}

// projectInfoWidths 项目信息表：标签列18%，签发日期列22%，其余均分
func projectInfoWidths(rows []*Elem, count int) []float64 {
	widths := make([]float64, count)
	fixed := 0.0
	flex := 0
	cells := rows[0].childCells()
	for i := 0; i < count; i++ {
		var cell *Elem
		if i < len(cells) {
			cell = cells[i]
		}
		switch {
		case i == 0 || (cell != nil && cell.HasClass("label")):
			widths[i] = 18
			fixed += 18
		case cell != nil && cell.HasClass("issued"):
			widths[i] = 22
			fixed += 22
		default:
			flex++
		}
	}
	if flex > 0 {
		share := (100 - fixed) / float64(flex)
		for i := range widths {
			if widths[i] == 0 {
				widths[i] = share
			}
		}
	}
	return normalizeWidths(widths)
}

// normalizeWidths 归一化列宽使其和为100
func normalizeWidths(widths []float64) []float64 {
	sum := 0.0
	for _, w := range widths {
		sum += w
	}
	if sum <= 0 {
		return widths
	}
	for i := range widths {
		widths[i] = widths[i] * 100 / sum
	}
	return widths
}

// isHeaderRow 全部为th的行视为表头行
func isHeaderRow(cells []*Elem) bool {
	for _, c := range cells {
		if c.Kind != KindHeaderCell {
			return false
		}
	}
	return true
}

// layoutCell 推导单元格样式，规则与表格角色无关、逐格应用
func layoutCell(cell *Elem, headerRow bool, kind TableKind, theme Theme) TableCell {
	out := TableCell{
		Text:    cell.InnerText(),
		ColSpan: attrInt(cell, "colspan"),
	}
	class := cell.Class()

	// 加粗：含加粗元素 / 表头格 / 标签列 / 内联加粗样式
	out.Style.Bold = headerRow ||
		cell.Kind == KindHeaderCell ||
		cell.containsKind(KindBold) ||
		strings.Contains(class, "label") ||
		fontWeightBold(cell.StyleProp("font-weight"))

	// 底色：内联背景色优先，标签列与表头用主题色
	if fill := normalizeColor(cell.StyleProp("background-color")); fill != "" {
		out.Style.Fill = fill
	} else if headerRow || cell.Kind == KindHeaderCell {
		out.Style.Fill = theme.HeaderFill
	} else if strings.Contains(class, "label") || (kind == TableGeneric2Col && strings.Contains(class, "label-col")) {
		out.Style.Fill = theme.HeaderFill
	}

	// 对齐：内联样式或数字/签发列标记靠右
	if strings.EqualFold(cell.StyleProp("text-align"), "right") ||
		strings.Contains(class, "issued") ||
		strings.Contains(class, "num") {
		out.Style.Align = "right"
	}

	// 标签/签发列使用强调文字颜色
	if strings.Contains(class, "label") || strings.Contains(class, "issued") {
		out.Style.Color = theme.LabelColor
	}

	return out
}

// fontWeightBold 判断内联font-weight是否达到加粗（>=600或bold）
func fontWeightBold(v string) bool {
	v = strings.TrimSpace(strings.ToLower(v))
	if v == "bold" || v == "bolder" {
		return true
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n >= 600
	}
	return false
}

// attrInt 取整数属性值，无效时返回0
func attrInt(e *Elem, name string) int {
	if e.Attrs == nil {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(e.Attrs[name]))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
