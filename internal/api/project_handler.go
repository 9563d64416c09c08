package api

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/kordia/tender_tools/internal/constant"
	"github.com/kordia/tender_tools/internal/model"
	"github.com/kordia/tender_tools/internal/service"
	"github.com/kordia/tender_tools/pkg/logger"
)

type ProjectHandler struct {
	projectService   service.ProjectService
	objectiveService service.ObjectiveService
	logService       service.LogService
}

func RegisterProjectHandler(
	projectService service.ProjectService,
	objectiveService service.ObjectiveService,
	logService service.LogService,
) {
	handler := &ProjectHandler{
		projectService:   projectService,
		objectiveService: objectiveService,
		logService:       logService,
	}
	Handlers = append(Handlers, handler)
}

func (h *ProjectHandler) RegisterRoutes(router fiber.Router) {
	r := router.Group("/project")
	{
		r.Post("/new", h.Create)
		r.Post("/update", h.Update)
		r.Post("/delete", h.Delete)
		r.Get("/get", h.Get)
		r.Get("/list", h.List)
	}
	o := router.Group("/objective")
	{
		o.Post("/new", h.CreateObjective)
		o.Post("/update", h.UpdateObjective)
		o.Post("/delete", h.DeleteObjective)
		o.Get("/list_by_project", h.ListObjectivesByProject)
	}
}

func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	record := new(model.Project)
	if err := c.BodyParser(record); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}
	if record.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}
	if err := h.projectService.Create(c.Context(), record); err != nil {
		logger.Error("创建项目失败", logger.F("err", err))
		return c.Status(constant.GetErrorCode(err)).JSON(service.Error(err))
	}
	// 记录操作日志
	go h.logService.CreateOperationLog(c.Context(), constant.LogActionCreateProject, c.IP(), c.Get("User-Agent"))

	return c.JSON(service.OK(record))
}

func (h *ProjectHandler) Update(c *fiber.Ctx) error {
	record := new(model.Project)
	if err := c.BodyParser(record); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}
	if err := h.projectService.Update(c.Context(), record); err != nil {
		logger.Error("更新项目失败", logger.F("err", err))
		return c.Status(constant.GetErrorCode(err)).JSON(service.Error(err))
	}
	go h.logService.CreateOperationLog(c.Context(), constant.LogActionUpdateProject, c.IP(), c.Get("User-Agent"))

	return c.JSON(service.OK(record))
}

func (h *ProjectHandler) Delete(c *fiber.Ctx) error {
	record := new(model.Project)
	if err := c.BodyParser(record); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}
	if err := h.projectService.Delete(c.Context(), record.ID); err != nil {
		logger.Error("删除项目失败", logger.F("err", err))
		return c.Status(constant.GetErrorCode(err)).JSON(service.Error(err))
	}
	go h.logService.CreateOperationLog(c.Context(), constant.LogActionDeleteProject, c.IP(), c.Get("User-Agent"))

	return c.JSON(service.OK(nil))
}

func (h *ProjectHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Query("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}
	record, err := h.projectService.Get(c.Context(), id)
	if err != nil {
		logger.Error("获取项目失败", logger.F("err", err))
		return c.Status(constant.GetErrorCode(err)).JSON(service.Error(err))
	}
	return c.JSON(service.OK(record))
}

func (h *ProjectHandler) List(c *fiber.Ctx) error {
	condition := new(model.Project)
	if err := c.QueryParser(condition); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}
	offset := c.QueryInt("offset", 0)
	limit := c.QueryInt("limit", service.DefaultPageSize)
	if limit > service.MaxPageSize {
		limit = service.MaxPageSize
	}

	list, total, err := h.projectService.List(c.Context(), condition, offset, limit)
	if err != nil {
		logger.Error("获取项目列表失败", logger.F("err", err))
		return c.Status(constant.GetErrorCode(err)).JSON(service.Error(err))
	}
	return c.JSON(service.OK(service.NewListResponse(list, total, offset, limit)))
}

func (h *ProjectHandler) CreateObjective(c *fiber.Ctx) error {
	record := new(model.Objective)
	if err := c.BodyParser(record); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}
	if record.ProjectID == 0 || record.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}
	if err := h.objectiveService.Create(c.Context(), record); err != nil {
		logger.Error("创建项目目标失败", logger.F("err", err))
		return c.Status(constant.GetErrorCode(err)).JSON(service.Error(err))
	}
	return c.JSON(service.OK(record))
}

func (h *ProjectHandler) UpdateObjective(c *fiber.Ctx) error {
	record := new(model.Objective)
	if err := c.BodyParser(record); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}
	if err := h.objectiveService.Update(c.Context(), record); err != nil {
		logger.Error("更新项目目标失败", logger.F("err", err))
		return c.Status(constant.GetErrorCode(err)).JSON(service.Error(err))
	}
	return c.JSON(service.OK(record))
}

func (h *ProjectHandler) DeleteObjective(c *fiber.Ctx) error {
	record := new(model.Objective)
	if err := c.BodyParser(record); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}
	if err := h.objectiveService.Delete(c.Context(), record.ID); err != nil {
		logger.Error("删除项目目标失败", logger.F("err", err))
		return c.Status(constant.GetErrorCode(err)).JSON(service.Error(err))
	}
	return c.JSON(service.OK(nil))
}

func (h *ProjectHandler) ListObjectivesByProject(c *fiber.Ctx) error {
	projectID, err := strconv.ParseUint(c.Query("project_id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}
	list, err := h.objectiveService.ListByProject(c.Context(), projectID)
	if err != nil {
		logger.Error("获取项目目标列表失败", logger.F("err", err))
		return c.Status(constant.GetErrorCode(err)).JSON(service.Error(err))
	}
	return c.JSON(service.OK(list))
}
