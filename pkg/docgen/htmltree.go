package docgen

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ElemKind 元素类型，后续处理统一按类型分发，
// 不再到处比较标签字符串
type ElemKind int

const (
	KindText ElemKind = iota
	KindHeading1
	KindHeading2
	KindHeading3
	KindParagraph
	KindBold
	KindItalic
	KindBreak
	KindBulletList
	KindOrderedList
	KindListItem
	KindTable
	KindRow
	KindCell
	KindHeaderCell
	KindContainer
	KindOther
)

// Elem HTML解析后的树节点
type Elem struct {
	Kind     ElemKind
	Tag      string
	Text     string // KindText 时的文本内容
	Attrs    map[string]string
	Children []*Elem
}

// ParseFragment 将HTML片段解析为元素树。
// 解析始终尽力而为：不合法的输入返回空结果而不是错误，
// 保证导出流程不会因为内容问题中断。
func ParseFragment(fragment string) []*Elem {
	ctx := &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), ctx)
	if err != nil {
		return nil
	}

	var elems []*Elem
	for _, n := range nodes {
		if e := convertNode(n); e != nil {
			elems = append(elems, e)
		}
	}
	return elems
}

// convertNode 转换单个HTML节点，忽略注释等无关节点
func convertNode(n *html.Node) *Elem {
	switch n.Type {
	case html.TextNode:
		return &Elem{Kind: KindText, Text: n.Data}
	case html.ElementNode:
		e := &Elem{
			Kind: kindForTag(n.Data),
			Tag:  n.Data,
		}
		if len(n.Attr) > 0 {
			e.Attrs = make(map[string]string, len(n.Attr))
			for _, a := range n.Attr {
				e.Attrs[a.Key] = a.Val
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if child := convertNode(c); child != nil {
				e.Children = append(e.Children, child)
			}
		}
		return e
	default:
		return nil
	}
}

// kindForTag 标签名到元素类型的映射
func kindForTag(tag string) ElemKind {
	switch tag {
	case "h1":
		return KindHeading1
	case "h2":
		return KindHeading2
	case "h3":
		return KindHeading3
	case "p":
		return KindParagraph
	case "b", "strong":
		return KindBold
	case "i", "em":
		return KindItalic
	case "br":
		return KindBreak
	case "ul":
		return KindBulletList
	case "ol":
		return KindOrderedList
	case "li":
		return KindListItem
	case "table":
		return KindTable
	case "tr":
		return KindRow
	case "td":
		return KindCell
	case "th":
		return KindHeaderCell
	case "div", "section", "tbody", "thead", "span":
		return KindContainer
	default:
		return KindOther
	}
}

// Class 取class属性
func (e *Elem) Class() string {
	if e.Attrs == nil {
		return ""
	}
	return e.Attrs["class"]
}

// HasClass 判断class中是否含有指定标记（按包含匹配）
func (e *Elem) HasClass(marker string) bool {
	return strings.Contains(e.Class(), marker)
}

// StyleProp 取内联style中指定属性的值，没有则返回空
func (e *Elem) StyleProp(name string) string {
	if e.Attrs == nil {
		return ""
	}
	style := e.Attrs["style"]
	for _, decl := range strings.Split(style, ";") {
		parts := strings.SplitN(decl, ":", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), name) {
			return strings.TrimSpace(parts[1])
		}
	}
	return ""
}

// InnerText 取元素的全部文本内容（去除首尾空白）
func (e *Elem) InnerText() string {
	var sb strings.Builder
	e.appendText(&sb)
	return strings.TrimSpace(sb.String())
}

func (e *Elem) appendText(sb *strings.Builder) {
	if e.Kind == KindText {
		sb.WriteString(e.Text)
		return
	}
	if e.Kind == KindBreak {
		sb.WriteString("\n")
		return
	}
	for _, c := range e.Children {
		c.appendText(sb)
	}
}

// findAll 按类型收集直接及间接子元素
func (e *Elem) findAll(kinds ...ElemKind) []*Elem {
	var out []*Elem
	for _, c := range e.Children {
		for _, k := range kinds {
			if c.Kind == k {
				out = append(out, c)
				break
			}
		}
		out = append(out, c.findAll(kinds...)...)
	}
	return out
}

// childRows 收集表格的行（tr可能包在thead/tbody里）
func (e *Elem) childRows() []*Elem {
	var rows []*Elem
	for _, c := range e.Children {
		switch c.Kind {
		case KindRow:
			rows = append(rows, c)
		case KindContainer:
			rows = append(rows, c.childRows()...)
		}
	}
	return rows
}

// childCells 收集行内的单元格
func (e *Elem) childCells() []*Elem {
	var cells []*Elem
	for _, c := range e.Children {
		if c.Kind == KindCell || c.Kind == KindHeaderCell {
			cells = append(cells, c)
		}
	}
	return cells
}

// containsKind 判断是否含有指定类型的后代元素
func (e *Elem) containsKind(kind ElemKind) bool {
	for _, c := range e.Children {
		if c.Kind == kind || c.containsKind(kind) {
			return true
		}
	}
	return false
}

// normalizeColor 规范化颜色值为RRGGBB形式；
// 无法识别的值返回空，由调用方回退主题色
func normalizeColor(v string) string {
	v = strings.TrimSpace(v)
	v = strings.TrimPrefix(v, "#")
	if len(v) == 3 {
		// #abc 展开为 #aabbcc
		var sb strings.Builder
		for _, r := range v {
			sb.WriteRune(r)
			sb.WriteRune(r)
		}
		v = sb.String()
	}
	if len(v) != 6 {
		return ""
	}
	for _, r := range v {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return ""
		}
	}
	return strings.ToUpper(v)
}
