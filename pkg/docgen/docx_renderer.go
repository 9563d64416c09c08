package docgen

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"
)

// FlowRenderer 流式文档（DOCX）渲染后端。
// 消费抽象节点序列，在内存中组装WordprocessingML压缩包。
type FlowRenderer struct {
	theme Theme
}

// NewFlowRenderer 创建DOCX渲染器
func NewFlowRenderer(theme Theme) *FlowRenderer {
	return &FlowRenderer{theme: theme}
}

// Render 渲染节点序列为DOCX字节流
func (r *FlowRenderer) Render(nodes []Node, title string) ([]byte, error) {
	var body strings.Builder
	if title != "" {
		body.WriteString(`<w:p><w:pPr><w:pStyle w:val="Title"/></w:pPr><w:r><w:t>` +
			xmlEscape(title) + `</w:t></w:r></w:p>` + "\n")
	}
	for _, node := range nodes {
		r.appendNode(&body, node)
	}

	documentXML := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
` + body.String() + `  </w:body>
</w:document>`

	// 在内存中写入所有部件到ZIP
	outputBuffer := new(bytes.Buffer)
	zipWriter := zip.NewWriter(outputBuffer)

	files := map[string]string{
		"[Content_Types].xml":          contentTypesXML,
		"_rels/.rels":                  relsXML,
		"word/_rels/document.xml.rels": wordRelsXML,
		"word/styles.xml":              r.stylesXML(),
		"word/numbering.xml":           numberingXML,
		"word/document.xml":            documentXML,
	}
	for path, content := range files {
		entry, err := zipWriter.Create(path)
		if err != nil {
			return nil, fmt.Errorf("创建压缩包条目失败: %v", err)
		}
		if _, err = entry.Write([]byte(content)); err != nil {
			return nil, fmt.Errorf("写入压缩包条目失败: %v", err)
		}
	}
	if err := zipWriter.Close(); err != nil {
		return nil, fmt.Errorf("关闭压缩包失败: %v", err)
	}
	return outputBuffer.Bytes(), nil
}

// appendNode 单个节点映射到原生段落/表格结构
func (r *FlowRenderer) appendNode(sb *strings.Builder, node Node) {
	switch node.Kind {
	case NodeHeading:
		style := fmt.Sprintf("Heading%d", node.Level)
		sb.WriteString(`<w:p><w:pPr><w:pStyle w:val="` + style + `"/></w:pPr>`)
		sb.WriteString(`<w:r><w:rPr><w:color w:val="` + node.Color + `"/></w:rPr><w:t xml:space="preserve">` +
			xmlEscape(node.Text) + `</w:t></w:r></w:p>` + "\n")

	case NodeParagraph:
		sb.WriteString(`<w:p>`)
		for _, run := range node.Runs {
			if run.Break {
				sb.WriteString(`<w:r><w:br/></w:r>`)
				continue
			}
			sb.WriteString(`<w:r>`)
			if run.Bold || run.Italic {
				sb.WriteString(`<w:rPr>`)
				if run.Bold {
					sb.WriteString(`<w:b/>`)
				}
				if run.Italic {
					sb.WriteString(`<w:i/>`)
				}
				sb.WriteString(`</w:rPr>`)
			}
			sb.WriteString(`<w:t xml:space="preserve">` + xmlEscape(run.Text) + `</w:t></w:r>`)
		}
		sb.WriteString(`</w:p>` + "\n")

	case NodeBulletList:
		for _, item := range node.Items {
			sb.WriteString(`<w:p><w:pPr><w:pStyle w:val="ListParagraph"/>` +
				`<w:numPr><w:ilvl w:val="0"/><w:numId w:val="1"/></w:numPr></w:pPr>` +
				`<w:r><w:t xml:space="preserve">` + xmlEscape(item) + `</w:t></w:r></w:p>` + "\n")
		}

	case NodeTable:
		r.appendTable(sb, node.Table)

	case NodeSpacer:
		sb.WriteString(`<w:p/>` + "\n")

	case NodePlaceholder:
		sb.WriteString(`<w:p><w:r><w:rPr><w:i/><w:color w:val="808080"/></w:rPr>` +
			`<w:t xml:space="preserve">` + xmlEscape(node.Text) + `</w:t></w:r></w:p>` + "\n")
	}
}

// appendTable 按布局方案生成w:tbl
func (r *FlowRenderer) appendTable(sb *strings.Builder, plan *TableLayoutPlan) {
	sb.WriteString(`<w:tbl>
  <w:tblPr>
    <w:tblStyle w:val="TableGrid"/>
    <w:tblW w:w="5000" w:type="pct"/>
` + r.tableBorders(plan.HorizontalOnly) + `  </w:tblPr>
`)

	// 列定义：百分比宽度换算为1/50百分比单位
	count := columnCount(plan)
	sb.WriteString("  <w:tblGrid>\n")
	for i := 0; i < count; i++ {
		w := 5000 / count
		if len(plan.ColumnWidths) == count {
			w = int(plan.ColumnWidths[i] * 50)
		}
		sb.WriteString(fmt.Sprintf("    <w:gridCol w:w=\"%d\"/>\n", w))
	}
	sb.WriteString("  </w:tblGrid>\n")

	for _, row := range plan.HeaderRows {
		r.appendTableRow(sb, plan, row, true)
	}
	for _, row := range plan.BodyRows {
		r.appendTableRow(sb, plan, row, false)
	}
	sb.WriteString("</w:tbl>\n")
}

func (r *FlowRenderer) appendTableRow(sb *strings.Builder, plan *TableLayoutPlan, row []TableCell, header bool) {
	sb.WriteString("  <w:tr>\n    <w:trPr><w:cantSplit/>")
	if header {
		sb.WriteString("<w:tblHeader/>")
	}
	sb.WriteString("</w:trPr>\n")

	count := columnCount(plan)
	col := 0
	for _, cell := range row {
		sb.WriteString("    <w:tc>\n      <w:tcPr>\n")
		span := cell.ColSpan
		if span < 1 {
			span = 1
		}
		w := 5000 * span / count
		if len(plan.ColumnWidths) == count {
			// 跨列单元格的宽度为被合并各列之和
			sum := 0.0
			for i := col; i < col+span && i < count; i++ {
				sum += plan.ColumnWidths[i]
			}
			w = int(sum * 50)
		}
		sb.WriteString(fmt.Sprintf("        <w:tcW w:w=\"%d\" w:type=\"pct\"/>\n", w))
		if cell.ColSpan > 1 {
			sb.WriteString(fmt.Sprintf("        <w:gridSpan w:val=\"%d\"/>\n", cell.ColSpan))
		}
		if cell.Style.Fill != "" {
			sb.WriteString(`        <w:shd w:val="clear" w:color="auto" w:fill="` + cell.Style.Fill + `"/>` + "\n")
		}
		sb.WriteString("      </w:tcPr>\n      <w:p>\n        <w:pPr><w:spacing w:before=\"0\" w:after=\"0\"/>")
		switch cell.Style.Align {
		case "right":
			sb.WriteString(`<w:jc w:val="right"/>`)
		case "center":
			sb.WriteString(`<w:jc w:val="center"/>`)
		}
		sb.WriteString("</w:pPr>\n        <w:r>\n          <w:rPr>")
		if cell.Style.Bold {
			sb.WriteString(`<w:b/>`)
		}
		if cell.Style.Color != "" {
			sb.WriteString(`<w:color w:val="` + cell.Style.Color + `"/>`)
		}
		sb.WriteString("</w:rPr>\n          <w:t xml:space=\"preserve\">" + xmlEscape(cell.Text) + "</w:t>\n        </w:r>\n      </w:p>\n    </w:tc>\n")

		col += span
	}
	sb.WriteString("  </w:tr>\n")
}

// tableBorders 项目信息表仅保留水平细线，其余表格用完整网格
func (r *FlowRenderer) tableBorders(horizontalOnly bool) string {
	c := r.theme.BorderColor
	if horizontalOnly {
		return `    <w:tblBorders>
      <w:insideH w:val="single" w:sz="2" w:space="0" w:color="` + c + `"/>
    </w:tblBorders>
`
	}
	return `    <w:tblBorders>
      <w:top w:val="single" w:sz="4" w:space="0" w:color="` + c + `"/>
      <w:left w:val="single" w:sz="4" w:space="0" w:color="` + c + `"/>
      <w:bottom w:val="single" w:sz="4" w:space="0" w:color="` + c + `"/>
      <w:right w:val="single" w:sz="4" w:space="0" w:color="` + c + `"/>
      <w:insideH w:val="single" w:sz="4" w:space="0" w:color="` + c + `"/>
      <w:insideV w:val="single" w:sz="4" w:space="0" w:color="` + c + `"/>
    </w:tblBorders>
`
}

// xmlEscape 转义XML文本内容
func xmlEscape(s string) string {
	return xmlReplacer.Replace(s)
}

var xmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\"", "&quot;",
)

// stylesXML 样式表：标题颜色与字号来自共享主题
func (r *FlowRenderer) stylesXML() string {
	t := r.theme
	// w:sz 单位为半磅
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:style w:type="paragraph" w:styleId="Normal">
    <w:name w:val="Normal"/>
    <w:qFormat/>
    <w:pPr>
      <w:spacing w:after="120" w:line="240" w:lineRule="auto"/>
    </w:pPr>
    <w:rPr>
      <w:sz w:val="%d"/>
    </w:rPr>
  </w:style>
  <w:style w:type="paragraph" w:styleId="Title">
    <w:name w:val="Title"/>
    <w:basedOn w:val="Normal"/>
    <w:qFormat/>
    <w:pPr>
      <w:spacing w:before="0" w:after="240"/>
    </w:pPr>
    <w:rPr>
      <w:b/>
      <w:color w:val="%s"/>
      <w:sz w:val="%d"/>
    </w:rPr>
  </w:style>
  <w:style w:type="paragraph" w:styleId="Heading1">
    <w:name w:val="heading 1"/>
    <w:basedOn w:val="Normal"/>
    <w:next w:val="Normal"/>
    <w:qFormat/>
    <w:pPr>
      <w:keepNext/>
      <w:spacing w:before="480" w:after="0"/>
      <w:outlineLvl w:val="0"/>
    </w:pPr>
    <w:rPr>
      <w:b/>
      <w:color w:val="%s"/>
      <w:sz w:val="%d"/>
    </w:rPr>
  </w:style>
  <w:style w:type="paragraph" w:styleId="Heading2">
    <w:name w:val="heading 2"/>
    <w:basedOn w:val="Normal"/>
    <w:next w:val="Normal"/>
    <w:qFormat/>
    <w:pPr>
      <w:keepNext/>
      <w:spacing w:before="360" w:after="0"/>
      <w:outlineLvl w:val="1"/>
    </w:pPr>
    <w:rPr>
      <w:b/>
      <w:color w:val="%s"/>
      <w:sz w:val="%d"/>
    </w:rPr>
  </w:style>
  <w:style w:type="paragraph" w:styleId="Heading3">
    <w:name w:val="heading 3"/>
    <w:basedOn w:val="Normal"/>
    <w:next w:val="Normal"/>
    <w:qFormat/>
    <w:pPr>
      <w:keepNext/>
      <w:spacing w:before="280" w:after="0"/>
      <w:outlineLvl w:val="2"/>
    </w:pPr>
    <w:rPr>
      <w:b/>
      <w:color w:val="%s"/>
      <w:sz w:val="%d"/>
    </w:rPr>
  </w:style>
  <w:style w:type="paragraph" w:styleId="ListParagraph">
    <w:name w:val="List Paragraph"/>
    <w:basedOn w:val="Normal"/>
    <w:qFormat/>
    <w:pPr>
      <w:ind w:left="720"/>
      <w:contextualSpacing/>
    </w:pPr>
  </w:style>
  <w:style w:type="table" w:styleId="TableGrid">
    <w:name w:val="Table Grid"/>
    <w:uiPriority w:val="59"/>
    <w:pPr>
      <w:spacing w:after="0" w:line="240" w:lineRule="auto"/>
    </w:pPr>
  </w:style>
</w:styles>`,
		int(t.BodySize*2),
		t.HeadingColors[0], int(t.H1Size*2+8),
		t.HeadingColors[0], int(t.H1Size*2),
		t.HeadingColors[1], int(t.H2Size*2),
		t.HeadingColors[2], int(t.H3Size*2),
	)
}

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
  <Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>
  <Override PartName="/word/numbering.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.numbering+xml"/>
</Types>`

const relsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

const wordRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>
  <Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/numbering" Target="numbering.xml"/>
</Relationships>`

const numberingXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:numbering xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:abstractNum w:abstractNumId="0">
    <w:nsid w:val="12345678"/>
    <w:multiLevelType w:val="hybridMultilevel"/>
    <w:lvl w:ilvl="0">
      <w:start w:val="1"/>
      <w:numFmt w:val="bullet"/>
      <w:lvlText w:val="•"/>
      <w:lvlJc w:val="left"/>
      <w:pPr>
        <w:ind w:left="720" w:hanging="360"/>
      </w:pPr>
      <w:rPr>
        <w:rFonts w:ascii="Symbol" w:hAnsi="Symbol" w:hint="default"/>
      </w:rPr>
    </w:lvl>
  </w:abstractNum>
  <w:num w:numId="1">
    <w:abstractNumId w:val="0"/>
  </w:num>
</w:numbering>`
