package docgen

// Theme 文档主题，两个渲染后端共用同一份常量，
// 避免标题颜色等在不同格式间不一致
type Theme struct {
	HeadingColors [3]string // 一至三级标题颜色（RRGGBB）
	Accent        string    // 强调色：甘特条、标签列底色
	LabelColor    string    // 标签/签发列文字颜色
	HeaderFill    string    // 表头底色
	BorderColor   string    // 表格边框颜色
	H1Size        float64   // 字号（pt）
	H2Size        float64
	H3Size        float64
	BodySize      float64
}

// DefaultTheme 默认主题
func DefaultTheme() Theme {
	return Theme{
		HeadingColors: [3]string{"1F4E79", "2E75B6", "5B9BD5"},
		Accent:        "4472C4",
		LabelColor:    "1F4E79",
		HeaderFill:    "E7E6E6",
		BorderColor:   "BFBFBF",
		H1Size:        18,
		H2Size:        16,
		H3Size:        14,
		BodySize:      10.5,
	}
}

// headingColor 取指定级别的主题标题颜色，级别越界时按三级处理
func (t Theme) headingColor(level int) string {
	if level < 1 {
		level = 1
	}
	if level > 3 {
		level = 3
	}
	return t.HeadingColors[level-1]
}

// headingSize 取指定级别的标题字号
func (t Theme) headingSize(level int) float64 {
	switch level {
	case 1:
		return t.H1Size
	case 2:
		return t.H2Size
	default:
		return t.H3Size
	}
}
