package docgen

import "errors"

// Format 导出格式
type Format string

const (
	FormatDocx Format = "docx"
	FormatPdf  Format = "pdf"
)

// 导出格式对应的MIME类型
const (
	MimeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimePdf  = "application/pdf"
)

// ErrUnsupportedFormat 请求了未知的导出格式，
// 属于调用方参数错误，在任何解析工作开始前返回
var ErrUnsupportedFormat = errors.New("不支持的导出格式")

// Generator 文档导出生成器。
// 每次调用独立构建节点树，无共享可变状态，可安全并发使用。
type Generator struct {
	theme   Theme
	builder *DocumentBuilder
}

// NewGenerator 创建默认主题的生成器
func NewGenerator() *Generator {
	return NewGeneratorWithTheme(DefaultTheme())
}

// NewGeneratorWithTheme 创建指定主题的生成器
func NewGeneratorWithTheme(theme Theme) *Generator {
	return &Generator{
		theme:   theme,
		builder: NewDocumentBuilder(theme),
	}
}

// Ext 格式对应的文件扩展名
func (f Format) Ext() string {
	return "." + string(f)
}

// Valid 判断格式是否受支持
func (f Format) Valid() bool {
	return f == FormatDocx || f == FormatPdf
}

// Mime 格式对应的MIME类型
func (f Format) Mime() string {
	if f == FormatPdf {
		return MimePdf
	}
	return MimeDocx
}

// Render 将HTML文档体渲染为指定格式的字节流，返回内容与MIME类型。
// 内容问题（残缺HTML、缺失字段）一律消化为占位节点，导出不会因此失败；
// 只有格式非法与序列化错误向上返回。
func (g *Generator) Render(htmlBody, title string, format Format) ([]byte, string, error) {
	if !format.Valid() {
		return nil, "", ErrUnsupportedFormat
	}
	nodes := g.builder.Build(htmlBody)
	return g.RenderNodes(nodes, title, format)
}

// RenderNodes 渲染已构建的节点序列。
// 两个后端消费完全相同的节点序列，任何内容决策都在此之前完成。
func (g *Generator) RenderNodes(nodes []Node, title string, format Format) ([]byte, string, error) {
	switch format {
	case FormatDocx:
		data, err := NewFlowRenderer(g.theme).Render(nodes, title)
		return data, MimeDocx, err
	case FormatPdf:
		data, err := NewPrintRenderer(g.theme).Render(nodes, title)
		return data, MimePdf, err
	default:
		return nil, "", ErrUnsupportedFormat
	}
}

// RenderProgram 将进度计划活动渲染为甘特图文档
func (g *Generator) RenderProgram(activities []Activity, title string, format Format) ([]byte, string, error) {
	if !format.Valid() {
		return nil, "", ErrUnsupportedFormat
	}
	nodes := []Node{
		{Kind: NodeHeading, Level: 1, Text: "Programme", Color: g.theme.headingColor(1)},
		BuildGanttNode(activities, g.theme),
	}
	return g.RenderNodes(nodes, title, format)
}

// Theme 生成器使用的主题
func (g *Generator) Theme() Theme {
	return g.theme
}
