package api

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/kordia/tender_tools/internal/constant"
	"github.com/kordia/tender_tools/internal/service"
	"github.com/kordia/tender_tools/pkg/docgen"
	"github.com/kordia/tender_tools/pkg/logger"
)

type ExportHandler struct {
	exportService service.ExportService
	mailService   service.MailService
	logService    service.LogService
}

func RegisterExportHandler(
	exportService service.ExportService,
	mailService service.MailService,
	logService service.LogService,
) {
	handler := &ExportHandler{
		exportService: exportService,
		mailService:   mailService,
		logService:    logService,
	}
	Handlers = append(Handlers, handler)
}

func (h *ExportHandler) RegisterRoutes(router fiber.Router) {
	r := router.Group("/export")
	{
		r.Get("/rft", h.ExportRft)
		r.Get("/program", h.ExportProgram)
		r.Get("/transmittal", h.ExportTransmittal)
		r.Post("/batch", h.ExportBatch)
	}
	router.Post("/transmittal/issue", h.IssueTransmittal)
}

func (h *ExportHandler) ExportRft(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Query("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}
	format := docgen.Format(c.Query("format", string(docgen.FormatPdf)))

	doc, err := h.exportService.ExportRft(c.Context(), id, format)
	if err != nil {
		logger.Error("导出招标文件失败", logger.F("id", id), logger.F("err", err))
		return c.Status(constant.GetErrorCode(err)).JSON(service.Error(err))
	}
	go h.logService.CreateOperationLog(c.Context(), constant.LogActionExportReport, c.IP(), c.Get("User-Agent"))

	return sendDocument(c, doc)
}

func (h *ExportHandler) ExportProgram(c *fiber.Ctx) error {
	projectID, err := strconv.ParseUint(c.Query("project_id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}
	format := docgen.Format(c.Query("format", string(docgen.FormatPdf)))

	doc, err := h.exportService.ExportProgram(c.Context(), projectID, format)
	if err != nil {
		logger.Error("导出进度计划失败", logger.F("project_id", projectID), logger.F("err", err))
		return c.Status(constant.GetErrorCode(err)).JSON(service.Error(err))
	}
	go h.logService.CreateOperationLog(c.Context(), constant.LogActionExportProgram, c.IP(), c.Get("User-Agent"))

	return sendDocument(c, doc)
}

func (h *ExportHandler) ExportTransmittal(c *fiber.Ctx) error {
	rftID, err := strconv.ParseUint(c.Query("rft_id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}
	format := docgen.Format(c.Query("format", string(docgen.FormatPdf)))

	doc, err := h.exportService.ExportTransmittal(c.Context(), rftID, format)
	if err != nil {
		logger.Error("导出发文清单失败", logger.F("rft_id", rftID), logger.F("err", err))
		return c.Status(constant.GetErrorCode(err)).JSON(service.Error(err))
	}
	go h.logService.CreateOperationLog(c.Context(), constant.LogActionExportTransmittal, c.IP(), c.Get("User-Agent"))

	return sendDocument(c, doc)
}

type BatchExportRequest struct {
	ProjectID uint64 `json:"projectId,string"`
	Format    string `json:"format"`
}

func (h *ExportHandler) ExportBatch(c *fiber.Ctx) error {
	var req BatchExportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}
	if req.ProjectID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}

	result, err := h.exportService.ExportBatch(c.Context(), req.ProjectID, docgen.Format(req.Format))
	if err != nil {
		logger.Error("批量导出失败", logger.F("project_id", req.ProjectID), logger.F("err", err))
		return c.Status(constant.GetErrorCode(err)).JSON(service.Error(err))
	}
	go h.logService.CreateOperationLog(c.Context(), constant.LogActionBatchExport, c.IP(), c.Get("User-Agent"))

	return c.JSON(service.OK(result))
}

type IssueTransmittalRequest struct {
	RftID      uint64   `json:"rftId,string"`
	Recipients []string `json:"recipients"`
	Format     string   `json:"format"`
}

func (h *ExportHandler) IssueTransmittal(c *fiber.Ctx) error {
	var req IssueTransmittalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}
	if req.RftID == 0 || len(req.Recipients) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}
	format := docgen.Format(req.Format)
	if req.Format == "" {
		format = docgen.FormatPdf
	}

	if err := h.mailService.IssueTransmittal(c.Context(), req.RftID, req.Recipients, format); err != nil {
		logger.Error("发文失败", logger.F("rft_id", req.RftID), logger.F("err", err))
		return c.Status(constant.GetErrorCode(err)).JSON(service.Error(err))
	}
	go h.logService.CreateOperationLog(c.Context(), constant.LogActionIssueTransmittal, c.IP(), c.Get("User-Agent"))

	return c.JSON(service.OK(nil))
}

// sendDocument 文件流下载
func sendDocument(c *fiber.Ctx, doc *service.ExportDocument) error {
	c.Set("Content-Disposition", `attachment; filename="`+doc.Filename+`"`)
	c.Set("Content-Type", doc.Mime)
	c.Set("Content-Length", strconv.Itoa(len(doc.Data)))
	return c.Status(fiber.StatusOK).Send(doc.Data)
}
