package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kordia/tender_tools/internal/constant"
	"github.com/kordia/tender_tools/pkg/docgen"
)

// 非法格式必须在任何数据查询之前被拒绝：
// 服务实例不带任何依赖，若先查数据则会panic
func TestExportService_FormatValidatedFirst(t *testing.T) {
	s := &exportService{generator: docgen.NewGenerator()}
	ctx := context.Background()

	assert.NotPanics(t, func() {
		_, err := s.ExportRft(ctx, 1, docgen.Format("xlsx"))
		assert.ErrorIs(t, err, constant.ErrUnsupportedFormat)

		_, err = s.ExportProgram(ctx, 1, docgen.Format(""))
		assert.ErrorIs(t, err, constant.ErrUnsupportedFormat)

		_, err = s.ExportTransmittal(ctx, 1, docgen.Format("html"))
		assert.ErrorIs(t, err, constant.ErrUnsupportedFormat)

		_, err = s.ExportBatch(ctx, 1, docgen.Format("xls"))
		assert.ErrorIs(t, err, constant.ErrUnsupportedFormat)
	})
}

func TestExportService_RenderProducesFilename(t *testing.T) {
	s := &exportService{generator: docgen.NewGenerator()}

	doc, err := s.render(func() ([]byte, string, error) {
		return s.generator.Render("<p>body</p>", "RFT-001: Stage / 2", docgen.FormatPdf)
	}, "RFT-001: Stage / 2", docgen.FormatPdf)

	assert.NoError(t, err)
	assert.Equal(t, "RFT-001 Stage 2.pdf", doc.Filename)
	assert.Equal(t, docgen.MimePdf, doc.Mime)
	assert.NotEmpty(t, doc.Data)
}
