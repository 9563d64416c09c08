package api

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/kordia/tender_tools/internal/constant"
	"github.com/kordia/tender_tools/internal/model"
	"github.com/kordia/tender_tools/internal/service"
	"github.com/kordia/tender_tools/pkg/logger"
)

type CostLineHandler struct {
	costLineService service.CostLineService
}

func RegisterCostLineHandler(costLineService service.CostLineService) {
	handler := &CostLineHandler{
		costLineService: costLineService,
	}
	Handlers = append(Handlers, handler)
}

func (h *CostLineHandler) RegisterRoutes(router fiber.Router) {
	r := router.Group("/cost_line")
	{
		r.Post("/new", h.Create)
		r.Post("/update", h.Update)
		r.Post("/delete", h.Delete)
		r.Get("/get", h.Get)
		r.Get("/list", h.List)
		r.Get("/list_by_project", h.ListByProject)
	}
}

func (h *CostLineHandler) Create(c *fiber.Ctx) error {
	record := new(model.CostLine)
	if err := c.BodyParser(record); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}
	if record.ProjectID == 0 || record.Name == "" || record.Section == "" {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}
	if err := h.costLineService.Create(c.Context(), record); err != nil {
		logger.Error("创建成本预算行失败", logger.F("err", err))
		return c.Status(constant.GetErrorCode(err)).JSON(service.Error(err))
	}
	return c.JSON(service.OK(record))
}

func (h *CostLineHandler) Update(c *fiber.Ctx) error {
	record := new(model.CostLine)
	if err := c.BodyParser(record); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}
	if err := h.costLineService.Update(c.Context(), record); err != nil {
		logger.Error("更新成本预算行失败", logger.F("err", err))
		return c.Status(constant.GetErrorCode(err)).JSON(service.Error(err))
	}
	return c.JSON(service.OK(record))
}

func (h *CostLineHandler) Delete(c *fiber.Ctx) error {
	record := new(model.CostLine)
	if err := c.BodyParser(record); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}
	if err := h.costLineService.Delete(c.Context(), record.ID); err != nil {
		logger.Error("删除成本预算行失败", logger.F("err", err))
		return c.Status(constant.GetErrorCode(err)).JSON(service.Error(err))
	}
	return c.JSON(service.OK(nil))
}

func (h *CostLineHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Query("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}
	record, err := h.costLineService.Get(c.Context(), id)
	if err != nil {
		logger.Error("获取成本预算行失败", logger.F("err", err))
		return c.Status(constant.GetErrorCode(err)).JSON(service.Error(err))
	}
	return c.JSON(service.OK(record))
}

func (h *CostLineHandler) List(c *fiber.Ctx) error {
	condition := new(model.CostLine)
	if err := c.QueryParser(condition); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}
	offset := c.QueryInt("offset", 0)
	limit := c.QueryInt("limit", service.DefaultPageSize)
	if limit > service.MaxPageSize {
		limit = service.MaxPageSize
	}

	list, total, err := h.costLineService.List(c.Context(), condition, offset, limit)
	if err != nil {
		logger.Error("获取成本预算行列表失败", logger.F("err", err))
		return c.Status(constant.GetErrorCode(err)).JSON(service.Error(err))
	}
	return c.JSON(service.OK(service.NewListResponse(list, total, offset, limit)))
}

func (h *CostLineHandler) ListByProject(c *fiber.Ctx) error {
	projectID, err := strconv.ParseUint(c.Query("project_id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}
	list, err := h.costLineService.ListByProject(c.Context(), projectID)
	if err != nil {
		logger.Error("获取项目成本预算失败", logger.F("err", err))
		return c.Status(constant.GetErrorCode(err)).JSON(service.Error(err))
	}
	return c.JSON(service.OK(list))
}
