package docgen

import (
	"regexp"
	"strings"
)

// BlockKind 内容块类型
type BlockKind int

const (
	BlockHeading BlockKind = iota
	BlockParagraph
	BlockBullet
)

// ContentBlock 从富文本内容中提取的一个语义单元，
// 始终扁平化，不嵌套，顺序与源文档一致
type ContentBlock struct {
	Kind       BlockKind
	Text       string
	Emphasized bool
}

// 整行被**包裹视为标题
var boldLineRegex = regexp.MustCompile(`^\*\*(.+)\*\*$`)

// ParseContent 将富文本HTML片段解析为内容块序列。
// 输入不含标签时退化为纯文本处理。解析不会抛错，
// 无法理解的输入产生空结果。
func ParseContent(content string) []ContentBlock {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil
	}

	// 纯文本：按行切分，整行加粗标记的行作为标题
	if !strings.Contains(content, "<") {
		return parsePlainText(content)
	}

	var blocks []ContentBlock
	for _, e := range ParseFragment(content) {
		blocks = appendBlocks(blocks, e)
	}
	return blocks
}

// parsePlainText 纯文本降级处理
func parsePlainText(content string) []ContentBlock {
	var blocks []ContentBlock
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if m := boldLineRegex.FindStringSubmatch(line); m != nil {
			blocks = append(blocks, ContentBlock{
				Kind:       BlockHeading,
				Text:       strings.TrimSpace(m[1]),
				Emphasized: true,
			})
			continue
		}
		blocks = append(blocks, ContentBlock{Kind: BlockParagraph, Text: line})
	}
	return blocks
}

// appendBlocks 前序遍历元素树，逐个产出内容块
func appendBlocks(blocks []ContentBlock, e *Elem) []ContentBlock {
	switch e.Kind {
	case KindText:
		if text := strings.TrimSpace(e.Text); text != "" {
			blocks = append(blocks, ContentBlock{Kind: BlockParagraph, Text: text})
		}
		return blocks

	case KindHeading1, KindHeading2, KindHeading3:
		text := e.InnerText()
		if text == "" {
			return blocks
		}
		return append(blocks, ContentBlock{Kind: BlockHeading, Text: text, Emphasized: true})

	case KindParagraph:
		text := e.InnerText()
		if text == "" {
			return blocks
		}
		// 整段加粗识别为标题：内容编辑器里常用加粗段落充当小标题
		if isWhollyBold(e) {
			return append(blocks, ContentBlock{Kind: BlockHeading, Text: text, Emphasized: true})
		}
		if m := boldLineRegex.FindStringSubmatch(text); m != nil {
			return append(blocks, ContentBlock{
				Kind:       BlockHeading,
				Text:       strings.TrimSpace(m[1]),
				Emphasized: true,
			})
		}
		return append(blocks, ContentBlock{Kind: BlockParagraph, Text: text})

	case KindBulletList, KindOrderedList:
		for _, li := range e.Children {
			if li.Kind != KindListItem {
				continue
			}
			if text := li.InnerText(); text != "" {
				blocks = append(blocks, ContentBlock{Kind: BlockBullet, Text: text})
			}
		}
		return blocks

	case KindContainer, KindOther:
		// 透明容器，递归处理子元素
		if e.InnerText() == "" {
			return blocks
		}
		for _, c := range e.Children {
			blocks = appendBlocks(blocks, c)
		}
		return blocks

	default:
		return blocks
	}
}

// isWhollyBold 判断段落的全部文本是否都在加粗元素内。
// 只含局部加粗（句中部分加粗）的段落不算。
func isWhollyBold(e *Elem) bool {
	full := collapseSpace(e.InnerText())
	if full == "" {
		return false
	}
	var sb strings.Builder
	for _, b := range e.findAll(KindBold) {
		sb.WriteString(b.InnerText())
		sb.WriteString(" ")
	}
	return collapseSpace(sb.String()) == full
}

// collapseSpace 折叠连续空白，便于文本比较
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
