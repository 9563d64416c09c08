package docgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseTable(t *testing.T, html string) *Elem {
	t.Helper()
	for _, e := range ParseFragment(html) {
		if e.Kind == KindTable {
			return e
		}
	}
	t.Fatal("测试HTML中没有table元素")
	return nil
}

func TestClassifyTable(t *testing.T) {
	cases := []struct {
		name string
		html string
		want TableKind
	}{
		{"project info marker", `<table class="project-info"><tr><td>a</td></tr></table>`, TableProjectInfo},
		{"eval price marker", `<table class="eval-price"><tr><td>a</td></tr></table>`, TableEvalPrice},
		{"transmittal marker", `<table class="transmittal"><tr><td>a</td></tr></table>`, TableTransmittal},
		{"unmarked two columns", `<table><tr><td>k</td><td>v</td></tr></table>`, TableGeneric2Col},
		{"unmarked three columns", `<table><tr><td>a</td><td>b</td><td>c</td></tr></table>`, TableGenericNCol},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ClassifyTable(parseTable(t, tc.html)))
		})
	}
}

func TestBuildTablePlan_WidthsSumToHundred(t *testing.T) {
	cases := []struct {
		name string
		html string
	}{
		{"project info", `<table class="project-info"><tr><td class="label">Project</td><td>X</td><td class="label">Issued</td><td class="issued">1 Mar</td></tr></table>`},
		{"eval price", `<table class="eval-price"><tr><th>Desc</th><th>Amount</th><th>Total</th></tr><tr><td>a</td><td></td><td></td></tr></table>`},
		{"transmittal", `<table class="transmittal"><tr><th>No.</th><th>Dwg</th><th>Name</th><th>Rev</th><th>Cat</th><th>Issued</th></tr><tr><td>1</td><td>A-01</td><td>Plan</td><td>B</td><td>Arch</td><td>1 Mar</td></tr></table>`},
		{"transmittal extra columns", `<table class="transmittal"><tr><td>1</td><td>2</td><td>3</td><td>4</td><td>5</td><td>6</td><td>7</td><td>8</td></tr></table>`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			plan := BuildTablePlan(parseTable(t, tc.html), DefaultTheme())
			require.NotNil(t, plan)
			require.NotEmpty(t, plan.ColumnWidths)

			sum := 0.0
			for _, w := range plan.ColumnWidths {
				sum += w
			}
			assert.InDelta(t, 100.0, sum, 0.001)
		})
	}
}

func TestBuildTablePlan_NoBodyRows(t *testing.T) {
	t.Run("empty table", func(t *testing.T) {
		assert.Nil(t, BuildTablePlan(parseTable(t, `<table></table>`), DefaultTheme()))
	})

	t.Run("header only", func(t *testing.T) {
		plan := BuildTablePlan(parseTable(t, `<table><tr><th>Only header</th></tr></table>`), DefaultTheme())
		assert.Nil(t, plan)
	})
}

func TestBuildTablePlan_HeaderAndCellStyles(t *testing.T) {
	theme := DefaultTheme()
	html := `<table class="transmittal">
		<tr><th>No.</th><th>Name</th></tr>
		<tr><td class="num">1</td><td>Site Plan</td></tr>
	</table>`
	plan := BuildTablePlan(parseTable(t, html), theme)
	require.NotNil(t, plan)
	require.Len(t, plan.HeaderRows, 1)
	require.Len(t, plan.BodyRows, 1)

	for _, cell := range plan.HeaderRows[0] {
		assert.True(t, cell.Style.Bold)
		assert.Equal(t, theme.HeaderFill, cell.Style.Fill)
	}

	num := plan.BodyRows[0][0]
	assert.Equal(t, "right", num.Style.Align)
	assert.False(t, plan.BodyRows[0][1].Style.Bold)
}

func TestBuildTablePlan_TwoColumnLabelColumn(t *testing.T) {
	theme := DefaultTheme()
	html := `<table><tr><td>Client</td><td>Kordia Group</td></tr><tr><td>Address</td><td>1 Main St</td></tr></table>`
	plan := BuildTablePlan(parseTable(t, html), theme)
	require.NotNil(t, plan)
	require.Len(t, plan.BodyRows, 2)

	for _, row := range plan.BodyRows {
		assert.True(t, row[0].Style.Bold)
		assert.Equal(t, theme.HeaderFill, row[0].Style.Fill)
		assert.False(t, row[1].Style.Bold)
	}
}

func TestBuildTablePlan_ProjectInfoHorizontalOnly(t *testing.T) {
	html := `<table class="project-info"><tr><td class="label">Project</td><td>X</td></tr></table>`
	plan := BuildTablePlan(parseTable(t, html), DefaultTheme())
	require.NotNil(t, plan)
	assert.True(t, plan.HorizontalOnly)

	generic := BuildTablePlan(parseTable(t, `<table><tr><td>a</td><td>b</td><td>c</td></tr></table>`), DefaultTheme())
	require.NotNil(t, generic)
	assert.False(t, generic.HorizontalOnly)
}

func TestBuildTablePlan_InlineStylesWin(t *testing.T) {
	html := `<table><tr>
		<td style="background-color:#ffcc00;text-align:right">Total</td>
		<td style="font-weight:700">Bolded</td>
		<td>plain</td>
	</tr></table>`
	plan := BuildTablePlan(parseTable(t, html), DefaultTheme())
	require.NotNil(t, plan)

	row := plan.BodyRows[0]
	assert.Equal(t, "FFCC00", row[0].Style.Fill)
	assert.Equal(t, "right", row[0].Style.Align)
	assert.True(t, row[1].Style.Bold)
	assert.False(t, row[2].Style.Bold)
}

func TestNormalizeColor(t *testing.T) {
	assert.Equal(t, "FFCC00", normalizeColor("#ffcc00"))
	assert.Equal(t, "AABBCC", normalizeColor("#abc"))
	assert.Equal(t, "1F4E79", normalizeColor("1f4e79"))
	assert.Equal(t, "", normalizeColor("red"))
	assert.Equal(t, "", normalizeColor(""))
}
