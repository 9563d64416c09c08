package api

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/kordia/tender_tools/internal/constant"
	"github.com/kordia/tender_tools/internal/model"
	"github.com/kordia/tender_tools/internal/service"
	"github.com/kordia/tender_tools/pkg/logger"
)

// 招标包状态
const (
	rftStatusDraft  = 1
	rftStatusIssued = 2
)

type RftHandler struct {
	rftService         service.RftService
	addendumService    service.AddendumService
	transmittalService service.TransmittalService
	logService         service.LogService
}

func RegisterRftHandler(
	rftService service.RftService,
	addendumService service.AddendumService,
	transmittalService service.TransmittalService,
	logService service.LogService,
) {
	handler := &RftHandler{
		rftService:         rftService,
		addendumService:    addendumService,
		transmittalService: transmittalService,
		logService:         logService,
	}
	Handlers = append(Handlers, handler)
}

func (h *RftHandler) RegisterRoutes(router fiber.Router) {
	r := router.Group("/rft")
	{
		r.Post("/new", h.Create)
		r.Post("/update", h.Update)
		r.Post("/delete", h.Delete)
		r.Post("/issue", h.Issue)
		r.Get("/get", h.Get)
		r.Get("/list", h.List)
	}
	a := router.Group("/addendum")
	{
		a.Post("/new", h.CreateAddendum)
		a.Post("/update", h.UpdateAddendum)
		a.Post("/delete", h.DeleteAddendum)
		a.Get("/list_by_rft", h.ListAddendaByRft)
	}
	t := router.Group("/transmittal_doc")
	{
		t.Post("/new", h.CreateTransmittalDoc)
		t.Post("/update", h.UpdateTransmittalDoc)
		t.Post("/delete", h.DeleteTransmittalDoc)
		t.Get("/list_by_rft", h.ListTransmittalDocsByRft)
	}
}

func (h *RftHandler) Create(c *fiber.Ctx) error {
	record := new(model.RftPackage)
	if err := c.BodyParser(record); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}
	if record.ProjectID == 0 || record.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}
	record.Status = rftStatusDraft
	if err := h.rftService.Create(c.Context(), record); err != nil {
		logger.Error("创建招标包失败", logger.F("err", err))
		return c.Status(constant.GetErrorCode(err)).JSON(service.Error(err))
	}
	go h.logService.CreateOperationLog(c.Context(), constant.LogActionCreateRft, c.IP(), c.Get("User-Agent"))

	return c.JSON(service.OK(record))
}

func (h *RftHandler) Update(c *fiber.Ctx) error {
	record := new(model.RftPackage)
	if err := c.BodyParser(record); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}
	if err := h.rftService.Update(c.Context(), record); err != nil {
		logger.Error("更新招标包失败", logger.F("err", err))
		return c.Status(constant.GetErrorCode(err)).JSON(service.Error(err))
	}
	go h.logService.CreateOperationLog(c.Context(), constant.LogActionUpdateRft, c.IP(), c.Get("User-Agent"))

	return c.JSON(service.OK(record))
}

func (h *RftHandler) Delete(c *fiber.Ctx) error {
	record := new(model.RftPackage)
	if err := c.BodyParser(record); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}
	if err := h.rftService.Delete(c.Context(), record.ID); err != nil {
		logger.Error("删除招标包失败", logger.F("err", err))
		return c.Status(constant.GetErrorCode(err)).JSON(service.Error(err))
	}
	go h.logService.CreateOperationLog(c.Context(), constant.LogActionDeleteRft, c.IP(), c.Get("User-Agent"))

	return c.JSON(service.OK(nil))
}

// Issue 签发招标包：置为已签发并盖上签发日期
func (h *RftHandler) Issue(c *fiber.Ctx) error {
	record := new(model.RftPackage)
	if err := c.BodyParser(record); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}
	existing, err := h.rftService.Get(c.Context(), record.ID)
	if err != nil {
		return c.Status(constant.GetErrorCode(err)).JSON(service.Error(err))
	}
	if existing.Status == rftStatusIssued {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidOperation))
	}
	now := time.Now()
	existing.Status = rftStatusIssued
	if existing.IssuedDate == nil {
		existing.IssuedDate = &now
	}
	if err := h.rftService.Update(c.Context(), existing); err != nil {
		logger.Error("签发招标包失败", logger.F("err", err))
		return c.Status(constant.GetErrorCode(err)).JSON(service.Error(err))
	}
	go h.logService.CreateOperationLog(c.Context(), constant.LogActionIssueRft, c.IP(), c.Get("User-Agent"))

	return c.JSON(service.OK(existing))
}

func (h *RftHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Query("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}
	record, err := h.rftService.Get(c.Context(), id)
	if err != nil {
		logger.Error("获取招标包失败", logger.F("err", err))
		return c.Status(constant.GetErrorCode(err)).JSON(service.Error(err))
	}
	return c.JSON(service.OK(record))
}

func (h *RftHandler) List(c *fiber.Ctx) error {
	condition := new(model.RftPackage)
	if err := c.QueryParser(condition); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}
	offset := c.QueryInt("offset", 0)
	limit := c.QueryInt("limit", service.DefaultPageSize)
	if limit > service.MaxPageSize {
		limit = service.MaxPageSize
	}

	list, total, err := h.rftService.List(c.Context(), condition, offset, limit)
	if err != nil {
		logger.Error("获取招标包列表失败", logger.F("err", err))
		return c.Status(constant.GetErrorCode(err)).JSON(service.Error(err))
	}
	return c.JSON(service.OK(service.NewListResponse(list, total, offset, limit)))
}

func (h *RftHandler) CreateAddendum(c *fiber.Ctx) error {
	record := new(model.Addendum)
	if err := c.BodyParser(record); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}
	if record.RftID == 0 || record.Subject == "" {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}
	if err := h.addendumService.Create(c.Context(), record); err != nil {
		logger.Error("创建补遗失败", logger.F("err", err))
		return c.Status(constant.GetErrorCode(err)).JSON(service.Error(err))
	}
	go h.logService.CreateOperationLog(c.Context(), constant.LogActionCreateAddendum, c.IP(), c.Get("User-Agent"))

	return c.JSON(service.OK(record))
}

func (h *RftHandler) UpdateAddendum(c *fiber.Ctx) error {
	record := new(model.Addendum)
	if err := c.BodyParser(record); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}
	if err := h.addendumService.Update(c.Context(), record); err != nil {
		logger.Error("更新补遗失败", logger.F("err", err))
		return c.Status(constant.GetErrorCode(err)).JSON(service.Error(err))
	}
	go h.logService.CreateOperationLog(c.Context(), constant.LogActionUpdateAddendum, c.IP(), c.Get("User-Agent"))

	return c.JSON(service.OK(record))
}

func (h *RftHandler) DeleteAddendum(c *fiber.Ctx) error {
	record := new(model.Addendum)
	if err := c.BodyParser(record); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}
	if err := h.addendumService.Delete(c.Context(), record.ID); err != nil {
		logger.Error("删除补遗失败", logger.F("err", err))
		return c.Status(constant.GetErrorCode(err)).JSON(service.Error(err))
	}
	go h.logService.CreateOperationLog(c.Context(), constant.LogActionDeleteAddendum, c.IP(), c.Get("User-Agent"))

	return c.JSON(service.OK(nil))
}

func (h *RftHandler) ListAddendaByRft(c *fiber.Ctx) error {
	rftID, err := strconv.ParseUint(c.Query("rft_id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}
	list, err := h.addendumService.ListByRft(c.Context(), rftID)
	if err != nil {
		logger.Error("获取补遗列表失败", logger.F("err", err))
		return c.Status(constant.GetErrorCode(err)).JSON(service.Error(err))
	}
	return c.JSON(service.OK(list))
}

func (h *RftHandler) CreateTransmittalDoc(c *fiber.Ctx) error {
	record := new(model.TransmittalDocument)
	if err := c.BodyParser(record); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}
	if record.RftID == 0 || record.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}
	if err := h.transmittalService.Create(c.Context(), record); err != nil {
		logger.Error("创建发文条目失败", logger.F("err", err))
		return c.Status(constant.GetErrorCode(err)).JSON(service.Error(err))
	}
	return c.JSON(service.OK(record))
}

func (h *RftHandler) UpdateTransmittalDoc(c *fiber.Ctx) error {
	record := new(model.TransmittalDocument)
	if err := c.BodyParser(record); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}
	if err := h.transmittalService.Update(c.Context(), record); err != nil {
		logger.Error("更新发文条目失败", logger.F("err", err))
		return c.Status(constant.GetErrorCode(err)).JSON(service.Error(err))
	}
	return c.JSON(service.OK(record))
}

func (h *RftHandler) DeleteTransmittalDoc(c *fiber.Ctx) error {
	record := new(model.TransmittalDocument)
	if err := c.BodyParser(record); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}
	if err := h.transmittalService.Delete(c.Context(), record.ID); err != nil {
		logger.Error("删除发文条目失败", logger.F("err", err))
		return c.Status(constant.GetErrorCode(err)).JSON(service.Error(err))
	}
	return c.JSON(service.OK(nil))
}

func (h *RftHandler) ListTransmittalDocsByRft(c *fiber.Ctx) error {
	rftID, err := strconv.ParseUint(c.Query("rft_id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}
	list, err := h.transmittalService.ListByRft(c.Context(), rftID)
	if err != nil {
		logger.Error("获取发文清单失败", logger.F("err", err))
		return c.Status(constant.GetErrorCode(err)).JSON(service.Error(err))
	}
	return c.JSON(service.OK(list))
}
