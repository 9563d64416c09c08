package api

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/kordia/tender_tools/internal/constant"
	"github.com/kordia/tender_tools/internal/model"
	"github.com/kordia/tender_tools/internal/service"
	"github.com/kordia/tender_tools/pkg/logger"
)

// FirmHandler 顾问单位与承包商管理
type FirmHandler struct {
	consultantService service.ConsultantService
	contractorService service.ContractorService
}

func RegisterFirmHandler(
	consultantService service.ConsultantService,
	contractorService service.ContractorService,
) {
	handler := &FirmHandler{
		consultantService: consultantService,
		contractorService: contractorService,
	}
	Handlers = append(Handlers, handler)
}

func (h *FirmHandler) RegisterRoutes(router fiber.Router) {
	r := router.Group("/consultant")
	{
		r.Post("/new", h.CreateConsultant)
		r.Post("/update", h.UpdateConsultant)
		r.Post("/delete", h.DeleteConsultant)
		r.Get("/get", h.GetConsultant)
		r.Get("/list", h.ListConsultants)
	}
	t := router.Group("/contractor")
	{
		t.Post("/new", h.CreateContractor)
		t.Post("/update", h.UpdateContractor)
		t.Post("/delete", h.DeleteContractor)
		t.Get("/get", h.GetContractor)
		t.Get("/list", h.ListContractors)
	}
}

func (h *FirmHandler) CreateConsultant(c *fiber.Ctx) error {
	record := new(model.Consultant)
	if err := c.BodyParser(record); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}
	if record.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}
	if err := h.consultantService.Create(c.Context(), record); err != nil {
		logger.Error("创建顾问单位失败", logger.F("err", err))
		return c.Status(constant.GetErrorCode(err)).JSON(service.Error(err))
	}
	return c.JSON(service.OK(record))
}

func (h *FirmHandler) UpdateConsultant(c *fiber.Ctx) error {
	record := new(model.Consultant)
	if err := c.BodyParser(record); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}
	if err := h.consultantService.Update(c.Context(), record); err != nil {
		logger.Error("更新顾问单位失败", logger.F("err", err))
		return c.Status(constant.GetErrorCode(err)).JSON(service.Error(err))
	}
	return c.JSON(service.OK(record))
}

func (h *FirmHandler) DeleteConsultant(c *fiber.Ctx) error {
	record := new(model.Consultant)
	if err := c.BodyParser(record); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}
	if err := h.consultantService.Delete(c.Context(), record.ID); err != nil {
		logger.Error("删除顾问单位失败", logger.F("err", err))
		return c.Status(constant.GetErrorCode(err)).JSON(service.Error(err))
	}
	return c.JSON(service.OK(nil))
}

func (h *FirmHandler) GetConsultant(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Query("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}
	record, err := h.consultantService.Get(c.Context(), id)
	if err != nil {
		logger.Error("获取顾问单位失败", logger.F("err", err))
		return c.Status(constant.GetErrorCode(err)).JSON(service.Error(err))
	}
	return c.JSON(service.OK(record))
}

func (h *FirmHandler) ListConsultants(c *fiber.Ctx) error {
	condition := new(model.Consultant)
	if err := c.QueryParser(condition); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}
	offset := c.QueryInt("offset", 0)
	limit := c.QueryInt("limit", service.DefaultPageSize)
	if limit > service.MaxPageSize {
		limit = service.MaxPageSize
	}

	list, total, err := h.consultantService.List(c.Context(), condition, offset, limit)
	if err != nil {
		logger.Error("获取顾问单位列表失败", logger.F("err", err))
		return c.Status(constant.GetErrorCode(err)).JSON(service.Error(err))
	}
	return c.JSON(service.OK(service.NewListResponse(list, total, offset, limit)))
}

func (h *FirmHandler) CreateContractor(c *fiber.Ctx) error {
	record := new(model.Contractor)
	if err := c.BodyParser(record); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}
	if record.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}
	if err := h.contractorService.Create(c.Context(), record); err != nil {
		logger.Error("创建承包商失败", logger.F("err", err))
		return c.Status(constant.GetErrorCode(err)).JSON(service.Error(err))
	}
	return c.JSON(service.OK(record))
}

func (h *FirmHandler) UpdateContractor(c *fiber.Ctx) error {
	record := new(model.Contractor)
	if err := c.BodyParser(record); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}
	if err := h.contractorService.Update(c.Context(), record); err != nil {
		logger.Error("更新承包商失败", logger.F("err", err))
		return c.Status(constant.GetErrorCode(err)).JSON(service.Error(err))
	}
	return c.JSON(service.OK(record))
}

func (h *FirmHandler) DeleteContractor(c *fiber.Ctx) error {
	record := new(model.Contractor)
	if err := c.BodyParser(record); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}
	if err := h.contractorService.Delete(c.Context(), record.ID); err != nil {
		logger.Error("删除承包商失败", logger.F("err", err))
		return c.Status(constant.GetErrorCode(err)).JSON(service.Error(err))
	}
	return c.JSON(service.OK(nil))
}

func (h *FirmHandler) GetContractor(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Query("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}
	record, err := h.contractorService.Get(c.Context(), id)
	if err != nil {
		logger.Error("获取承包商失败", logger.F("err", err))
		return c.Status(constant.GetErrorCode(err)).JSON(service.Error(err))
	}
	return c.JSON(service.OK(record))
}

func (h *FirmHandler) ListContractors(c *fiber.Ctx) error {
	condition := new(model.Contractor)
	if err := c.QueryParser(condition); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}
	offset := c.QueryInt("offset", 0)
	limit := c.QueryInt("limit", service.DefaultPageSize)
	if limit > service.MaxPageSize {
		limit = service.MaxPageSize
	}

	list, total, err := h.contractorService.List(c.Context(), condition, offset, limit)
	if err != nil {
		logger.Error("获取承包商列表失败", logger.F("err", err))
		return c.Status(constant.GetErrorCode(err)).JSON(service.Error(err))
	}
	return c.JSON(service.OK(service.NewListResponse(list, total, offset, limit)))
}
