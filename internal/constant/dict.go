package constant

// 字典类型编码
const (
	DictTypeCodeDocCategory = "doc_category"
	DictTypeCodeCostSection = "cost_section"
)
