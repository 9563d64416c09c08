package docgen

import (
	"strings"
)

// NodeKind 抽象文档节点类型
type NodeKind int

const (
	NodeHeading NodeKind = iota
	NodeParagraph
	NodeBulletList
	NodeTable
	NodeSpacer
	NodePlaceholder
)

// Run 段落内的一段连续文本及其样式
type Run struct {
	Text   string
	Bold   bool
	Italic bool
	Break  bool // 显式换行标记，渲染为换行而不是空格
}

// Node 抽象文档节点。每次导出重新构建，渲染后即丢弃，
// 两个渲染后端消费完全相同的节点序列。
type Node struct {
	Kind  NodeKind
	Level int    // 标题级别
	Text  string // 标题/占位文本
	Color string // 标题颜色（RRGGBB）
	Runs  []Run
	Items []string
	Table *TableLayoutPlan
}

// DocumentBuilder 将HTML文档体解析为抽象节点序列
type DocumentBuilder struct {
	theme Theme
}

// NewDocumentBuilder 创建文档树构建器
func NewDocumentBuilder(theme Theme) *DocumentBuilder {
	return &DocumentBuilder{theme: theme}
}

// Build 遍历HTML文档体的顶层元素，产出有序节点序列。
// 输入无法解析时返回空序列，绝不抛错。
// 不含标签的输入走内容块解析，保留整行加粗作标题的约定。
func (b *DocumentBuilder) Build(body string) []Node {
	body = strings.TrimSpace(body)
	if body != "" && !strings.Contains(body, "<") {
		return b.blockNodes(ParseContent(body))
	}
	var nodes []Node
	for _, e := range ParseFragment(body) {
		nodes = b.appendNodes(nodes, e)
	}
	return nodes
}

// blockNodes 将内容块序列转换为抽象节点，连续的列表项合并为一个列表
func (b *DocumentBuilder) blockNodes(blocks []ContentBlock) []Node {
	var nodes []Node
	for _, blk := range blocks {
		switch blk.Kind {
		case BlockHeading:
			nodes = append(nodes, b.pseudoHeading(blk.Text))
		case BlockBullet:
			if n := len(nodes); n > 0 && nodes[n-1].Kind == NodeBulletList {
				nodes[n-1].Items = append(nodes[n-1].Items, blk.Text)
				continue
			}
			nodes = append(nodes, Node{Kind: NodeBulletList, Items: []string{blk.Text}})
		default:
			nodes = append(nodes, Node{Kind: NodeParagraph, Runs: []Run{{Text: blk.Text}}})
		}
	}
	return nodes
}

// appendNodes 按标签与class标记分发单个顶层元素
func (b *DocumentBuilder) appendNodes(nodes []Node, e *Elem) []Node {
	switch e.Kind {
	case KindText:
		if text := strings.TrimSpace(e.Text); text != "" {
			nodes = append(nodes, Node{Kind: NodeParagraph, Runs: []Run{{Text: text}}})
		}
		return nodes

	case KindHeading1, KindHeading2, KindHeading3:
		return append(nodes, b.headingNode(e))

	case KindParagraph:
		text := e.InnerText()
		if text == "" {
			return nodes
		}
		// 整段加粗的段落按小标题处理，与内容块解析的规则一致
		if isWhollyBold(e) {
			return append(nodes, b.pseudoHeading(text))
		}
		if m := boldLineRegex.FindStringSubmatch(text); m != nil {
			return append(nodes, b.pseudoHeading(strings.TrimSpace(m[1])))
		}
		return append(nodes, Node{Kind: NodeParagraph, Runs: collectRuns(e)})

	case KindBulletList, KindOrderedList:
		var items []string
		for _, li := range e.Children {
			if li.Kind != KindListItem {
				continue
			}
			if text := li.InnerText(); text != "" {
				items = append(items, text)
			}
		}
		if len(items) == 0 {
			return nodes
		}
		return append(nodes, Node{Kind: NodeBulletList, Items: items})

	case KindTable:
		plan := BuildTablePlan(e, b.theme)
		if plan == nil {
			return append(nodes, Node{Kind: NodePlaceholder, Text: "No data"})
		}
		nodes = append(nodes, Node{Kind: NodeTable, Table: plan})
		// 项目信息表后留空行
		if plan.Kind == TableProjectInfo {
			nodes = append(nodes, Node{Kind: NodeSpacer})
		}
		return nodes

	case KindContainer:
		if e.HasClass("content-section") || e.HasClass("transmittal-section") {
			for _, c := range e.Children {
				nodes = b.appendNodes(nodes, c)
			}
			return append(nodes, Node{Kind: NodeSpacer})
		}
		for _, c := range e.Children {
			nodes = b.appendNodes(nodes, c)
		}
		return nodes

	default:
		return nodes
	}
}

// headingNode 构建标题节点：内联颜色优先，
// 否则按级别回退到主题色，保证两个后端导出颜色一致
func (b *DocumentBuilder) headingNode(e *Elem) Node {
	level := 1
	switch e.Kind {
	case KindHeading2:
		level = 2
	case KindHeading3:
		level = 3
	}
	color := normalizeColor(e.StyleProp("color"))
	if color == "" {
		color = b.theme.headingColor(level)
	}
	return Node{Kind: NodeHeading, Level: level, Text: e.InnerText(), Color: color}
}

// pseudoHeading 由加粗段落提升而来的小标题，按三级标题取主题色
func (b *DocumentBuilder) pseudoHeading(text string) Node {
	return Node{Kind: NodeHeading, Level: 3, Text: text, Color: b.theme.headingColor(3)}
}

// collectRuns 收集段落内的样式文本段，
// 保留加粗、斜体与显式换行
func collectRuns(e *Elem) []Run {
	var runs []Run
	appendRuns(&runs, e, false, false)
	return runs
}

func appendRuns(runs *[]Run, e *Elem, bold, italic bool) {
	switch e.Kind {
	case KindText:
		if e.Text == "" {
			return
		}
		text := strings.ReplaceAll(e.Text, "\n", " ")
		if strings.TrimSpace(text) == "" {
			return
		}
		*runs = append(*runs, Run{Text: text, Bold: bold, Italic: italic})
	case KindBreak:
		*runs = append(*runs, Run{Break: true})
	case KindBold:
		for _, c := range e.Children {
			appendRuns(runs, c, true, italic)
		}
	case KindItalic:
		for _, c := range e.Children {
			appendRuns(runs, c, bold, true)
		}
	default:
		for _, c := range e.Children {
			appendRuns(runs, c, bold, italic)
		}
	}
}
