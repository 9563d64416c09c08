package docgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseContent_PlainTextFallback(t *testing.T) {
	content := "Line one\n**Key Dates**\nLine two"

	blocks := ParseContent(content)
	require.Len(t, blocks, 3)

	assert.Equal(t, BlockParagraph, blocks[0].Kind)
	assert.Equal(t, "Line one", blocks[0].Text)

	assert.Equal(t, BlockHeading, blocks[1].Kind)
	assert.Equal(t, "Key Dates", blocks[1].Text)
	assert.True(t, blocks[1].Emphasized)

	assert.Equal(t, BlockParagraph, blocks[2].Kind)
	assert.Equal(t, "Line two", blocks[2].Text)
}

func TestParseContent_Deterministic(t *testing.T) {
	content := "<h2>Scope</h2><p>Body <strong>text</strong></p><ul><li>One</li></ul>"

	first := ParseContent(content)
	second := ParseContent(content)
	assert.Equal(t, first, second)
}

func TestParseContent_Headings(t *testing.T) {
	blocks := ParseContent("<h2>Scope of Works</h2><p>Concrete and steel.</p>")
	require.Len(t, blocks, 2)

	assert.Equal(t, BlockHeading, blocks[0].Kind)
	assert.Equal(t, "Scope of Works", blocks[0].Text)
	assert.Equal(t, BlockParagraph, blocks[1].Kind)
	assert.Equal(t, "Concrete and steel.", blocks[1].Text)
}

func TestParseContent_BoldParagraphs(t *testing.T) {
	t.Run("wholly bold paragraph becomes heading", func(t *testing.T) {
		blocks := ParseContent("<p><strong>Key Dates</strong></p>")
		require.Len(t, blocks, 1)
		assert.Equal(t, BlockHeading, blocks[0].Kind)
		assert.Equal(t, "Key Dates", blocks[0].Text)
	})

	t.Run("bold span inside sentence stays paragraph", func(t *testing.T) {
		blocks := ParseContent("<p>The closing date is <strong>final</strong> for all tenderers.</p>")
		require.Len(t, blocks, 1)
		assert.Equal(t, BlockParagraph, blocks[0].Kind)
	})

	t.Run("literal marker pair stripped", func(t *testing.T) {
		blocks := ParseContent("<p>**Submission Details**</p>")
		require.Len(t, blocks, 1)
		assert.Equal(t, BlockHeading, blocks[0].Kind)
		assert.Equal(t, "Submission Details", blocks[0].Text)
	})
}

func TestParseContent_Bullets(t *testing.T) {
	blocks := ParseContent("<ul><li>First item</li><li>Second item</li></ul>")
	require.Len(t, blocks, 2)

	for _, b := range blocks {
		assert.Equal(t, BlockBullet, b.Kind)
	}
	assert.Equal(t, "First item", blocks[0].Text)
	assert.Equal(t, "Second item", blocks[1].Text)
}

func TestParseContent_DegradedInput(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		assert.Nil(t, ParseContent(""))
		assert.Nil(t, ParseContent("   \n  "))
	})

	t.Run("unclosed tag does not panic", func(t *testing.T) {
		assert.NotPanics(t, func() {
			ParseContent("<p>unclosed paragraph")
		})
	})

	t.Run("empty elements are skipped", func(t *testing.T) {
		blocks := ParseContent("<p></p><h2></h2><p>real content</p>")
		require.Len(t, blocks, 1)
		assert.Equal(t, "real content", blocks[0].Text)
	})
}
