package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"

	"github.com/kordia/tender_tools/internal/model"
)

func testReportService() *reportService {
	return &reportService{markdown: goldmark.New()}
}

func TestWriteProjectInfoTable(t *testing.T) {
	s := testReportService()
	issued := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)

	var b strings.Builder
	s.writeProjectInfoTable(&b,
		&model.Project{Name: "Harbour Upgrade", Client: "Port Authority"},
		&model.RftPackage{Reference: "RFT-001", IssuedDate: &issued},
	)
	html := b.String()

	assert.Contains(t, html, `<table class="project-info">`)
	assert.Contains(t, html, `<td class="label">Project</td>`)
	assert.Contains(t, html, `<td class="issued">02 Mar 2026</td>`)
	// 未填的截标日期用占位文本
	assert.Contains(t, html, "TBC")
}

func TestWriteTransmittalTable(t *testing.T) {
	s := testReportService()
	issued := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)

	var b strings.Builder
	s.writeTransmittalTable(&b, []*model.TransmittalDocument{
		{DrawingNumber: "A-101", Name: "Site Plan", Revision: "B", Subcategory: "Plans", IssuedDate: &issued},
		{DrawingNumber: "A-102", Name: "Elevations <North>", Revision: "A", Subcategory: "Plans"},
	})
	html := b.String()

	assert.Contains(t, html, `<table class="transmittal">`)
	assert.Contains(t, html, `<th class="num">No.</th>`)
	assert.Contains(t, html, `<td class="num">1</td>`)
	assert.Contains(t, html, `<td class="num">2</td>`)
	// 文本必须转义
	assert.Contains(t, html, "Elevations &lt;North&gt;")
	assert.NotContains(t, html, "<North>")
}

func TestWriteEvalPriceTable(t *testing.T) {
	s := testReportService()

	var b strings.Builder
	s.writeEvalPriceTable(&b, []*model.CostLine{
		{Section: model.CostSectionConstruction, Name: "Structural Steel"},
		{Section: model.CostSectionFees, Name: "Consent Fees"},
	})
	html := b.String()

	assert.Contains(t, html, `<table class="eval-price">`)
	assert.Contains(t, html, "Structural Steel")
	// 非施工分区的预算行不进入价格表
	assert.NotContains(t, html, "Consent Fees")

	// 没有施工预算行时整节省略
	b.Reset()
	s.writeEvalPriceTable(&b, []*model.CostLine{{Section: model.CostSectionFees, Name: "Fees"}})
	assert.Empty(t, b.String())
}

func TestRichText(t *testing.T) {
	s := testReportService()

	t.Run("markdown converted", func(t *testing.T) {
		html := s.richText("## Scope\n\nDemolition works.")
		assert.Contains(t, html, "<h2")
		assert.Contains(t, html, "Demolition works.")
	})

	t.Run("html passed through", func(t *testing.T) {
		src := "<p>Already <strong>html</strong></p>"
		assert.Equal(t, src, s.richText(src))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, s.richText(""))
	})
}

func TestGroupByCategory(t *testing.T) {
	docs := []*model.TransmittalDocument{
		{Category: "Architectural", Name: "a1"},
		{Category: "Architectural", Name: "a2"},
		{Category: "Structural", Name: "s1"},
		{Category: "", Name: "u1"},
	}

	groups := groupByCategory(docs)
	require.Len(t, groups, 3)
	assert.Len(t, groups[0], 2)
	assert.Equal(t, "Structural", groups[1][0].Category)
	assert.Equal(t, "u1", groups[2][0].Name)
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "TBC", formatDate(nil))
	d := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "02 Mar 2026", formatDate(&d))
}
