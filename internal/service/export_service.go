package service

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"github.com/kordia/tender_tools/internal/constant"
	"github.com/kordia/tender_tools/internal/model"
	"github.com/kordia/tender_tools/pkg/config"
	"github.com/kordia/tender_tools/pkg/docgen"
	"github.com/kordia/tender_tools/pkg/logger"
	"github.com/kordia/tender_tools/pkg/util"
)

type exportService struct {
	reportService   ReportService
	projectService  ProjectService
	activityService ActivityService
	rftService      RftService
	generator       *docgen.Generator
}

func NewExportService(
	reportService ReportService,
	projectService ProjectService,
	activityService ActivityService,
	rftService RftService,
) *exportService {
	return &exportService{
		reportService:   reportService,
		projectService:  projectService,
		activityService: activityService,
		rftService:      rftService,
		generator:       docgen.NewGenerator(),
	}
}

// ExportRft 导出招标文件报告。格式校验先于任何数据查询
func (s *exportService) ExportRft(ctx context.Context, rftID uint64, format docgen.Format) (*ExportDocument, error) {
	if !format.Valid() {
		return nil, constant.ErrUnsupportedFormat
	}
	title, body, err := s.reportService.BuildRftReport(ctx, rftID)
	if err != nil {
		return nil, err
	}
	return s.render(func() ([]byte, string, error) {
		return s.generator.Render(body, title, format)
	}, title, format)
}

// ExportProgram 导出进度计划（甘特图）报告
func (s *exportService) ExportProgram(ctx context.Context, projectID uint64, format docgen.Format) (*ExportDocument, error) {
	if !format.Valid() {
		return nil, constant.ErrUnsupportedFormat
	}
	project, err := s.projectService.Get(ctx, projectID)
	if err != nil {
		return nil, err
	}
	records, err := s.activityService.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	activities := make([]docgen.Activity, 0, len(records))
	for _, r := range records {
		activities = append(activities, docgen.Activity{
			ID:        r.ID,
			ParentID:  r.ParentID,
			Name:      r.Name,
			Start:     r.StartDate,
			End:       r.EndDate,
			SortOrder: r.SortOrder,
		})
	}
	title := project.Name + " Programme"
	return s.render(func() ([]byte, string, error) {
		return s.generator.RenderProgram(activities, title, format)
	}, title, format)
}

// ExportTransmittal 导出发文清单
func (s *exportService) ExportTransmittal(ctx context.Context, rftID uint64, format docgen.Format) (*ExportDocument, error) {
	if !format.Valid() {
		return nil, constant.ErrUnsupportedFormat
	}
	title, body, err := s.reportService.BuildTransmittalReport(ctx, rftID)
	if err != nil {
		return nil, err
	}
	return s.render(func() ([]byte, string, error) {
		return s.generator.Render(body, title, format)
	}, title, format)
}

func (s *exportService) render(fn func() ([]byte, string, error), title string, format docgen.Format) (*ExportDocument, error) {
	data, mime, err := fn()
	if err != nil {
		logger.Error("文档渲染失败",
			logger.F("title", title),
			logger.F("format", format),
			logger.F("err", err),
		)
		return nil, constant.ErrRenderFailed
	}
	return &ExportDocument{
		Filename: util.SanitizeFilename(title) + format.Ext(),
		Mime:     mime,
		Data:     data,
	}, nil
}

// ExportBatch 批量导出项目下全部招标包报告，写入导出目录。
// 使用有界工作池并发渲染，单包失败不影响其余
func (s *exportService) ExportBatch(ctx context.Context, projectID uint64, format docgen.Format) (*BatchExportResult, error) {
	if !format.Valid() {
		return nil, constant.ErrUnsupportedFormat
	}
	if _, err := s.projectService.Get(ctx, projectID); err != nil {
		return nil, err
	}
	rfts, err := s.rftService.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	result := &BatchExportResult{
		JobID: uuid.NewString(),
		Items: make([]BatchExportItem, len(rfts)),
	}
	outputDir := filepath.Join(config.GetString("export.output_dir"), result.JobID)
	workers := config.GetInt("export.batch_workers")
	if workers <= 0 {
		workers = 1
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				result.Items[idx] = s.exportBatchItem(ctx, rfts[idx], format, outputDir)
			}
		}()
	}
	for idx := range rfts {
		jobs <- idx
	}
	close(jobs)
	wg.Wait()

	for _, item := range result.Items {
		if item.Error == "" {
			result.Succeeded++
		} else {
			result.Failed++
		}
	}
	logger.Info("批量导出完成",
		logger.F("job_id", result.JobID),
		logger.F("succeeded", result.Succeeded),
		logger.F("failed", result.Failed),
	)
	return result, nil
}

func (s *exportService) exportBatchItem(ctx context.Context, rft *model.RftPackage, format docgen.Format, outputDir string) BatchExportItem {
	item := BatchExportItem{
		RftID: rft.ID,
		Title: rft.Title,
	}
	doc, err := s.ExportRft(ctx, rft.ID, format)
	if err != nil {
		item.Error = err.Error()
		return item
	}
	if err := util.SaveFile(filepath.Join(outputDir, doc.Filename), doc.Data); err != nil {
		logger.Error("导出文件写入失败", logger.F("filename", doc.Filename), logger.F("err", err))
		item.Error = err.Error()
		return item
	}
	item.Filename = doc.Filename
	item.Size = len(doc.Data)
	return item
}
