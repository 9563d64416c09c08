package api

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/kordia/tender_tools/internal/constant"
	"github.com/kordia/tender_tools/internal/model"
	"github.com/kordia/tender_tools/internal/service"
	"github.com/kordia/tender_tools/pkg/logger"
)

type ActivityHandler struct {
	activityService service.ActivityService
	logService      service.LogService
}

func RegisterActivityHandler(
	activityService service.ActivityService,
	logService service.LogService,
) {
	handler := &ActivityHandler{
		activityService: activityService,
		logService:      logService,
	}
	Handlers = append(Handlers, handler)
}

func (h *ActivityHandler) RegisterRoutes(router fiber.Router) {
	r := router.Group("/activity")
	{
		r.Post("/new", h.Create)
		r.Post("/update", h.Update)
		r.Post("/delete", h.Delete)
		r.Get("/get", h.Get)
		r.Get("/list", h.List)
		r.Get("/list_by_project", h.ListByProject)
	}
}

func (h *ActivityHandler) Create(c *fiber.Ctx) error {
	record := new(model.ProgramActivity)
	if err := c.BodyParser(record); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}
	if record.ProjectID == 0 || record.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}
	if err := h.activityService.Create(c.Context(), record); err != nil {
		logger.Error("创建进度活动失败", logger.F("err", err))
		return c.Status(constant.GetErrorCode(err)).JSON(service.Error(err))
	}
	go h.logService.CreateOperationLog(c.Context(), constant.LogActionCreateActivity, c.IP(), c.Get("User-Agent"))

	return c.JSON(service.OK(record))
}

func (h *ActivityHandler) Update(c *fiber.Ctx) error {
	record := new(model.ProgramActivity)
	if err := c.BodyParser(record); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}
	if err := h.activityService.Update(c.Context(), record); err != nil {
		logger.Error("更新进度活动失败", logger.F("err", err))
		return c.Status(constant.GetErrorCode(err)).JSON(service.Error(err))
	}
	go h.logService.CreateOperationLog(c.Context(), constant.LogActionUpdateActivity, c.IP(), c.Get("User-Agent"))

	return c.JSON(service.OK(record))
}

func (h *ActivityHandler) Delete(c *fiber.Ctx) error {
	record := new(model.ProgramActivity)
	if err := c.BodyParser(record); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}
	if err := h.activityService.Delete(c.Context(), record.ID); err != nil {
		logger.Error("删除进度活动失败", logger.F("err", err))
		return c.Status(constant.GetErrorCode(err)).JSON(service.Error(err))
	}
	go h.logService.CreateOperationLog(c.Context(), constant.LogActionDeleteActivity, c.IP(), c.Get("User-Agent"))

	return c.JSON(service.OK(nil))
}

func (h *ActivityHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Query("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}
	record, err := h.activityService.Get(c.Context(), id)
	if err != nil {
		logger.Error("获取进度活动失败", logger.F("err", err))
		return c.Status(constant.GetErrorCode(err)).JSON(service.Error(err))
	}
	return c.JSON(service.OK(record))
}

func (h *ActivityHandler) List(c *fiber.Ctx) error {
	condition := new(model.ProgramActivity)
	if err := c.QueryParser(condition); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}
	offset := c.QueryInt("offset", 0)
	limit := c.QueryInt("limit", service.DefaultPageSize)
	if limit > service.MaxPageSize {
		limit = service.MaxPageSize
	}

	list, total, err := h.activityService.List(c.Context(), condition, offset, limit)
	if err != nil {
		logger.Error("获取进度活动列表失败", logger.F("err", err))
		return c.Status(constant.GetErrorCode(err)).JSON(service.Error(err))
	}
	return c.JSON(service.OK(service.NewListResponse(list, total, offset, limit)))
}

func (h *ActivityHandler) ListByProject(c *fiber.Ctx) error {
	projectID, err := strconv.ParseUint(c.Query("project_id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}
	list, err := h.activityService.ListByProject(c.Context(), projectID)
	if err != nil {
		logger.Error("获取项目进度活动失败", logger.F("err", err))
		return c.Status(constant.GetErrorCode(err)).JSON(service.Error(err))
	}
	return c.JSON(service.OK(list))
}
