package api

import (
	"runtime"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/kordia/tender_tools/internal/service"
	"github.com/kordia/tender_tools/pkg/config"
	"github.com/kordia/tender_tools/pkg/logger"
)

type StatusHandler struct {
	startedAt time.Time
}

func RegisterStatusHandler() {
	handler := &StatusHandler{
		startedAt: time.Now(),
	}
	Handlers = append(Handlers, handler)
}

func (h *StatusHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/status", h.Status)
}

// Status 运行状态：进程信息与宿主机CPU/内存概况
func (h *StatusHandler) Status(c *fiber.Ctx) error {
	status := fiber.Map{
		"app":        config.GetString("server.app_name"),
		"uptime":     time.Since(h.startedAt).String(),
		"goroutines": runtime.NumGoroutine(),
		"go_version": runtime.Version(),
	}

	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		status["cpu_percent"] = percents[0]
	} else if err != nil {
		logger.Warn("获取CPU信息失败", logger.F("err", err))
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		status["mem_total"] = vm.Total
		status["mem_used"] = vm.Used
		status["mem_percent"] = vm.UsedPercent
	} else {
		logger.Warn("获取内存信息失败", logger.F("err", err))
	}

	if info, err := host.Info(); err == nil {
		status["hostname"] = info.Hostname
		status["os"] = info.OS
		status["platform"] = info.Platform
	} else {
		logger.Warn("获取主机信息失败", logger.F("err", err))
	}

	return c.JSON(service.OK(status))
}
