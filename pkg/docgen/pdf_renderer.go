package docgen

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/jung-kurt/gofpdf"
)

const (
	pdfLineHeight = 5.0 // mm
	pdfMinRowH    = 6.5
	pdfCellPad    = 1.0
)

// PrintRenderer 分页打印（PDF）渲染后端。
// 消费与流式后端完全相同的节点序列，区别只在原生样式的落法：
// 周列按固定毫米宽度栅格化，着色一律使用直接填充。
type PrintRenderer struct {
	theme Theme
}

// NewPrintRenderer 创建PDF渲染器
func NewPrintRenderer(theme Theme) *PrintRenderer {
	return &PrintRenderer{theme: theme}
}

// Render 渲染节点序列为PDF字节流
func (r *PrintRenderer) Render(nodes []Node, title string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, true)
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	if title != "" {
		pdf.SetFont("Helvetica", "B", r.theme.H1Size+4)
		r.setTextColor(pdf, r.theme.HeadingColors[0])
		pdf.MultiCell(0, 10, tr(title), "", "L", false)
		pdf.Ln(4)
	}

	for _, node := range nodes {
		r.renderNode(pdf, tr, node)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("PDF序列化失败: %v", err)
	}
	return buf.Bytes(), nil
}

func (r *PrintRenderer) renderNode(pdf *gofpdf.Fpdf, tr func(string) string, node Node) {
	switch node.Kind {
	case NodeHeading:
		size := r.theme.headingSize(node.Level)
		pdf.SetFont("Helvetica", "B", size)
		r.setTextColor(pdf, node.Color)
		pdf.MultiCell(0, size*0.55, tr(node.Text), "", "L", false)
		pdf.Ln(1.5)

	case NodeParagraph:
		pdf.SetTextColor(0, 0, 0)
		for _, run := range node.Runs {
			if run.Break {
				pdf.Ln(pdfLineHeight)
				continue
			}
			style := ""
			if run.Bold {
				style += "B"
			}
			if run.Italic {
				style += "I"
			}
			pdf.SetFont("Helvetica", style, r.theme.BodySize)
			pdf.Write(pdfLineHeight, tr(run.Text))
		}
		pdf.Ln(pdfLineHeight)
		pdf.Ln(2)

	case NodeBulletList:
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont("Helvetica", "", r.theme.BodySize)
		for _, item := range node.Items {
			pdf.CellFormat(7, pdfLineHeight, tr("•"), "", 0, "R", false, 0, "")
			pdf.MultiCell(0, pdfLineHeight, tr(item), "", "L", false)
		}
		pdf.Ln(2)

	case NodeTable:
		r.renderTable(pdf, tr, node.Table)
		pdf.Ln(3)

	case NodeSpacer:
		pdf.Ln(4)

	case NodePlaceholder:
		pdf.SetFont("Helvetica", "I", r.theme.BodySize)
		pdf.SetTextColor(128, 128, 128)
		pdf.MultiCell(0, pdfLineHeight, tr(node.Text), "", "L", false)
		pdf.Ln(2)
	}
}

// renderTable 按布局方案绘制表格。
// 打印后端无法按内容自适应列宽，所有列按固定毫米宽度绘制。
func (r *PrintRenderer) renderTable(pdf *gofpdf.Fpdf, tr func(string) string, plan *TableLayoutPlan) {
	count := columnCount(plan)
	if count == 0 {
		return
	}

	pageW, pageH := pdf.GetPageSize()
	left, _, right, bottom := pdf.GetMargins()
	usable := pageW - left - right

	// 周列/数据列的固定宽度
	colW := make([]float64, count)
	for i := range colW {
		if len(plan.ColumnWidths) == count {
			colW[i] = plan.ColumnWidths[i] / 100 * usable
		} else {
			colW[i] = usable / float64(count)
		}
	}

	fontSize := r.theme.BodySize - 1.5
	for _, row := range plan.HeaderRows {
		r.renderRow(pdf, tr, plan, row, colW, fontSize, pageH-bottom, left)
	}
	for _, row := range plan.BodyRows {
		r.renderRow(pdf, tr, plan, row, colW, fontSize, pageH-bottom, left)
	}
}

func (r *PrintRenderer) renderRow(pdf *gofpdf.Fpdf, tr func(string) string, plan *TableLayoutPlan,
	row []TableCell, colW []float64, fontSize, breakY, left float64) {

	// 先算行高：取各格换行后的最大行数
	rowH := pdfMinRowH
	col := 0
	for _, cell := range row {
		w := r.spanWidth(colW, col, cell.ColSpan)
		col += cellSpan(cell)
		if cell.Text == "" {
			continue
		}
		pdf.SetFont("Helvetica", cellFontStyle(cell), fontSize)
		lines := pdf.SplitLines([]byte(tr(cell.Text)), w-2*pdfCellPad)
		if h := float64(len(lines))*pdfLineHeight + 2*pdfCellPad; h > rowH {
			rowH = h
		}
	}

	// 行内不分页，放不下整行时换页
	if pdf.GetY()+rowH > breakY {
		pdf.AddPage()
	}

	y := pdf.GetY()
	x := left
	col = 0
	for _, cell := range row {
		w := r.spanWidth(colW, col, cell.ColSpan)
		col += cellSpan(cell)

		if cell.Style.Fill != "" {
			fr, fg, fb := hexToRGB(cell.Style.Fill)
			pdf.SetFillColor(fr, fg, fb)
			pdf.Rect(x, y, w, rowH, "F")
		}
		br, bg, bb := hexToRGB(r.theme.BorderColor)
		pdf.SetDrawColor(br, bg, bb)
		if plan.HorizontalOnly {
			pdf.Line(x, y+rowH, x+w, y+rowH)
		} else {
			pdf.Rect(x, y, w, rowH, "D")
		}

		if cell.Text != "" {
			pdf.SetFont("Helvetica", cellFontStyle(cell), fontSize)
			if cell.Style.Color != "" {
				r.setTextColor(pdf, cell.Style.Color)
			} else {
				pdf.SetTextColor(0, 0, 0)
			}
			align := "L"
			switch cell.Style.Align {
			case "right":
				align = "R"
			case "center":
				align = "C"
			}
			pdf.SetXY(x+pdfCellPad, y+pdfCellPad)
			pdf.MultiCell(w-2*pdfCellPad, pdfLineHeight, tr(cell.Text), "", align, false)
		}
		x += w
	}
	pdf.SetXY(left, y+rowH)
}

// spanWidth 跨列单元格的宽度为被合并各列之和
func (r *PrintRenderer) spanWidth(colW []float64, col, span int) float64 {
	if span < 1 {
		span = 1
	}
	w := 0.0
	for i := col; i < col+span && i < len(colW); i++ {
		w += colW[i]
	}
	return w
}

func cellSpan(cell TableCell) int {
	if cell.ColSpan > 1 {
		return cell.ColSpan
	}
	return 1
}

func cellFontStyle(cell TableCell) string {
	if cell.Style.Bold {
		return "B"
	}
	return ""
}

func (r *PrintRenderer) setTextColor(pdf *gofpdf.Fpdf, hex string) {
	cr, cg, cb := hexToRGB(hex)
	pdf.SetTextColor(cr, cg, cb)
}

// hexToRGB RRGGBB转RGB分量，无效值按黑色处理
func hexToRGB(hex string) (int, int, int) {
	if len(hex) != 6 {
		return 0, 0, 0
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0
	}
	return int(v >> 16), int(v >> 8 & 0xff), int(v & 0xff)
}
