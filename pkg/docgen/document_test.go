package docgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentBuilder_Build(t *testing.T) {
	b := NewDocumentBuilder(DefaultTheme())
	body := `<h1>Tender Package</h1>
		<p>Lump sum <strong>fixed price</strong> contract.<br>No variations.</p>
		<ul><li>Item one</li><li>Item two</li></ul>`

	nodes := b.Build(body)
	require.Len(t, nodes, 3)

	assert.Equal(t, NodeHeading, nodes[0].Kind)
	assert.Equal(t, 1, nodes[0].Level)
	assert.Equal(t, "Tender Package", nodes[0].Text)

	require.Equal(t, NodeParagraph, nodes[1].Kind)
	var sawBold, sawBreak bool
	for _, r := range nodes[1].Runs {
		if r.Bold {
			sawBold = true
		}
		if r.Break {
			sawBreak = true
		}
	}
	assert.True(t, sawBold, "加粗span应保留为加粗run")
	assert.True(t, sawBreak, "br应保留为换行run")

	assert.Equal(t, NodeBulletList, nodes[2].Kind)
	assert.Equal(t, []string{"Item one", "Item two"}, nodes[2].Items)
}

func TestDocumentBuilder_BoldParagraphHeading(t *testing.T) {
	theme := DefaultTheme()
	b := NewDocumentBuilder(theme)

	t.Run("整段加粗提升为小标题", func(t *testing.T) {
		nodes := b.Build(`<div class="content-section"><p><strong>Key Dates</strong></p></div>`)
		require.Len(t, nodes, 2) // 标题 + 区块尾部空行
		assert.Equal(t, NodeHeading, nodes[0].Kind)
		assert.Equal(t, 3, nodes[0].Level)
		assert.Equal(t, "Key Dates", nodes[0].Text)
		assert.Equal(t, theme.HeadingColors[2], nodes[0].Color)
	})

	t.Run("句中局部加粗仍是段落", func(t *testing.T) {
		nodes := b.Build("<p>The closing date is <strong>final</strong> for all tenderers.</p>")
		require.Len(t, nodes, 1)
		assert.Equal(t, NodeParagraph, nodes[0].Kind)
	})

	t.Run("字面加粗标记剥除后作标题", func(t *testing.T) {
		nodes := b.Build("<p>**Key Dates**</p>")
		require.Len(t, nodes, 1)
		assert.Equal(t, NodeHeading, nodes[0].Kind)
		assert.Equal(t, "Key Dates", nodes[0].Text)
	})
}

func TestDocumentBuilder_PlainTextBody(t *testing.T) {
	b := NewDocumentBuilder(DefaultTheme())

	nodes := b.Build("**Key Dates**\nTenders close Friday.\n\nLate tenders rejected.")
	require.Len(t, nodes, 3)
	assert.Equal(t, NodeHeading, nodes[0].Kind)
	assert.Equal(t, "Key Dates", nodes[0].Text)
	assert.Equal(t, NodeParagraph, nodes[1].Kind)
	assert.Equal(t, "Tenders close Friday.", nodes[1].Runs[0].Text)
	assert.Equal(t, NodeParagraph, nodes[2].Kind)
}

func TestDocumentBuilder_HeadingColors(t *testing.T) {
	theme := DefaultTheme()
	b := NewDocumentBuilder(theme)

	t.Run("theme color by level", func(t *testing.T) {
		nodes := b.Build("<h2>Section</h2>")
		require.Len(t, nodes, 1)
		assert.Equal(t, theme.HeadingColors[1], nodes[0].Color)
	})

	t.Run("inline color wins", func(t *testing.T) {
		nodes := b.Build(`<h2 style="color:#aa0000">Section</h2>`)
		require.Len(t, nodes, 1)
		assert.Equal(t, "AA0000", nodes[0].Color)
	})
}

func TestDocumentBuilder_EmptyTablePlaceholder(t *testing.T) {
	b := NewDocumentBuilder(DefaultTheme())

	nodes := b.Build("<table></table>")
	require.Len(t, nodes, 1)
	assert.Equal(t, NodePlaceholder, nodes[0].Kind)
	assert.Equal(t, "No data", nodes[0].Text)
}

func TestDocumentBuilder_ProjectInfoSpacer(t *testing.T) {
	b := NewDocumentBuilder(DefaultTheme())
	body := `<table class="project-info"><tr><td class="label">Project</td><td>X</td></tr></table>`

	nodes := b.Build(body)
	require.Len(t, nodes, 2)
	assert.Equal(t, NodeTable, nodes[0].Kind)
	assert.Equal(t, NodeSpacer, nodes[1].Kind)
}

func TestDocumentBuilder_Sections(t *testing.T) {
	b := NewDocumentBuilder(DefaultTheme())
	body := `<div class="content-section"><h2>Scope</h2><p>Works.</p></div>`

	nodes := b.Build(body)
	require.Len(t, nodes, 3)
	assert.Equal(t, NodeHeading, nodes[0].Kind)
	assert.Equal(t, NodeParagraph, nodes[1].Kind)
	assert.Equal(t, NodeSpacer, nodes[2].Kind)
}

func TestDocumentBuilder_MalformedInput(t *testing.T) {
	b := NewDocumentBuilder(DefaultTheme())

	assert.NotPanics(t, func() {
		b.Build("<div><p>unclosed everywhere")
		b.Build("")
	})
	assert.Empty(t, b.Build(""))
}
