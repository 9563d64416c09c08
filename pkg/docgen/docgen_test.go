package docgen

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleBody = `<table class="project-info"><tr><td class="label">Project</td><td>Harbour Upgrade</td></tr></table>
<div class="content-section"><h2>Scope of Works</h2><p>Demolition and <strong>new build</strong>.</p>
<ul><li>Stage one</li><li>Stage two</li></ul></div>`

func TestFormat(t *testing.T) {
	assert.True(t, FormatDocx.Valid())
	assert.True(t, FormatPdf.Valid())
	assert.False(t, Format("xlsx").Valid())

	assert.Equal(t, ".docx", FormatDocx.Ext())
	assert.Equal(t, ".pdf", FormatPdf.Ext())
	assert.Equal(t, MimeDocx, FormatDocx.Mime())
	assert.Equal(t, MimePdf, FormatPdf.Mime())
}

func TestGenerator_UnsupportedFormat(t *testing.T) {
	g := NewGenerator()

	data, mime, err := g.Render(sampleBody, "Report", Format("xlsx"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.Nil(t, data)
	assert.Empty(t, mime)
}

func TestGenerator_RenderDocx(t *testing.T) {
	g := NewGenerator()

	data, mime, err := g.Render(sampleBody, "RFT-001 Harbour Upgrade", FormatDocx)
	require.NoError(t, err)
	assert.Equal(t, MimeDocx, mime)

	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	parts := make(map[string]string, len(reader.File))
	for _, f := range reader.File {
		rc, err := f.Open()
		require.NoError(t, err)
		content, err := io.ReadAll(rc)
		require.NoError(t, err)
		rc.Close()
		parts[f.Name] = string(content)
	}

	require.Contains(t, parts, "word/document.xml")
	require.Contains(t, parts, "word/styles.xml")
	require.Contains(t, parts, "[Content_Types].xml")

	doc := parts["word/document.xml"]
	assert.Contains(t, doc, "RFT-001 Harbour Upgrade")
	assert.Contains(t, doc, "Scope of Works")
	assert.Contains(t, doc, "<w:tbl>")
	assert.Contains(t, doc, `<w:numId w:val="1"/>`)

	// 标题颜色来自主题
	assert.Contains(t, parts["word/styles.xml"], DefaultTheme().HeadingColors[1])
}

func TestGenerator_RenderPdf(t *testing.T) {
	g := NewGenerator()

	data, mime, err := g.Render(sampleBody, "RFT-001 Harbour Upgrade", FormatPdf)
	require.NoError(t, err)
	assert.Equal(t, MimePdf, mime)

	require.Greater(t, len(data), 500)
	assert.True(t, strings.HasPrefix(string(data[:5]), "%PDF-"))
}

func TestGenerator_BothBackendsRenderSameNodes(t *testing.T) {
	g := NewGenerator()
	nodes := g.builder.Build(sampleBody)
	require.NotEmpty(t, nodes)

	docx, _, err := g.RenderNodes(nodes, "Report", FormatDocx)
	require.NoError(t, err)
	pdf, _, err := g.RenderNodes(nodes, "Report", FormatPdf)
	require.NoError(t, err)

	assert.NotEmpty(t, docx)
	assert.NotEmpty(t, pdf)
}

func TestGenerator_RenderProgram(t *testing.T) {
	g := NewGenerator()
	start := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 11)
	activities := []Activity{
		{ID: 1, Name: "Early Works", Start: &start, End: &end},
	}

	t.Run("docx", func(t *testing.T) {
		data, mime, err := g.RenderProgram(activities, "Programme", FormatDocx)
		require.NoError(t, err)
		assert.Equal(t, MimeDocx, mime)
		assert.NotEmpty(t, data)
	})

	t.Run("pdf with no activities still renders", func(t *testing.T) {
		data, _, err := g.RenderProgram(nil, "Programme", FormatPdf)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(data[:5]), "%PDF-"))
	})

	t.Run("invalid format", func(t *testing.T) {
		_, _, err := g.RenderProgram(activities, "Programme", Format("txt"))
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})
}

func TestGenerator_DegradedContentStillRenders(t *testing.T) {
	g := NewGenerator()

	for _, body := range []string{"", "<table></table>", "<div><p>unclosed"} {
		data, _, err := g.Render(body, "Report", FormatDocx)
		require.NoError(t, err)
		assert.NotEmpty(t, data)
	}
}
