package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	middlewareLogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/kordia/tender_tools/internal/api"
	"github.com/kordia/tender_tools/internal/middleware"
	"github.com/kordia/tender_tools/internal/service"
	"github.com/kordia/tender_tools/pkg/config"
	"github.com/kordia/tender_tools/pkg/logger"
)

type Server struct {
	app *fiber.App

	// 各个service
	dictSrv        service.DictService
	logSrv         service.LogService
	projectSrv     service.ProjectService
	objectiveSrv   service.ObjectiveService
	activitySrv    service.ActivityService
	consultantSrv  service.ConsultantService
	contractorSrv  service.ContractorService
	costLineSrv    service.CostLineService
	rftSrv         service.RftService
	addendumSrv    service.AddendumService
	transmittalSrv service.TransmittalService
	reportSrv      service.ReportService
	exportSrv      service.ExportService
	mailSrv        service.MailService
}

func New() *Server {
	return &Server{}
}

func (s *Server) Start() error {
	// 创建Fiber实例
	s.app = fiber.New(fiber.Config{
		AppName:               config.GetString("server.app_name"),
		EnablePrintRoutes:     config.GetBool("server.print_routes"),
		DisableStartupMessage: true,
	})

	s.setupServices()

	// 配置中间件
	s.setupMiddleware()

	// 注册路由
	s.registerHandlers()
	s.setupRoutesV1()

	// 启动服务器
	addr := config.GetServerAddress()
	logger.Info("服务监听地址", logger.F("address", addr))

	// 优雅关闭
	go s.gracefulShutdown()

	if err := s.app.Listen(addr); err != nil {
		logger.Error("服务停止", logger.F("error", err))
		return err
	}
	return nil
}

func (s *Server) gracefulShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("服务关闭中...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.app.ShutdownWithContext(ctx); err != nil {
		logger.Error("服务关闭失败", logger.F("error", err))
	}

	logger.Info("服务已关闭")
}

// setupServices 配置服务层
func (s *Server) setupServices() {
	s.dictSrv = service.NewDictService()
	s.logSrv = service.NewLogService()

	s.projectSrv = service.NewProjectService()
	s.objectiveSrv = service.NewObjectiveService()
	s.activitySrv = service.NewActivityService()
	s.consultantSrv = service.NewConsultantService()
	s.contractorSrv = service.NewContractorService()
	s.costLineSrv = service.NewCostLineService()

	s.rftSrv = service.NewRftService()
	s.addendumSrv = service.NewAddendumService()
	s.transmittalSrv = service.NewTransmittalService()

	s.reportSrv = service.NewReportService(
		s.projectSrv,
		s.objectiveSrv,
		s.rftSrv,
		s.addendumSrv,
		s.transmittalSrv,
		s.costLineSrv,
	)
	s.exportSrv = service.NewExportService(
		s.reportSrv,
		s.projectSrv,
		s.activitySrv,
		s.rftSrv,
	)
	s.mailSrv = service.NewMailService(s.exportSrv, s.rftSrv)
}

// setupMiddleware 配置中间件
func (s *Server) setupMiddleware() {
	// 异常恢复
	s.app.Use(recover.New())

	// CORS
	s.app.Use(cors.New(cors.Config{
		AllowOrigins: config.GetString("security.allowed_origins"),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// 限流
	if config.GetBool("rate_limit.enabled") {
		s.app.Use(middleware.RateLimit(
			config.GetInt("rate_limit.max_requests"),
			time.Duration(config.GetInt("rate_limit.duration"))*time.Second,
		))
	}

	// 访问日志
	s.app.Use(middlewareLogger.New(middlewareLogger.Config{
		Format:     "[${ip}]-${time} ${status} ${latency} ${method} ${path} | ${error}\n",
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Local",
	}))
}

func (s *Server) registerHandlers() {
	api.RegisterProjectHandler(
		s.projectSrv,
		s.objectiveSrv,
		s.logSrv,
	)
	api.RegisterActivityHandler(
		s.activitySrv,
		s.logSrv,
	)
	api.RegisterFirmHandler(
		s.consultantSrv,
		s.contractorSrv,
	)
	api.RegisterCostLineHandler(
		s.costLineSrv,
	)
	api.RegisterRftHandler(
		s.rftSrv,
		s.addendumSrv,
		s.transmittalSrv,
		s.logSrv,
	)
	api.RegisterDictHandler(
		s.dictSrv,
		s.logSrv,
	)
	api.RegisterExportHandler(
		s.exportSrv,
		s.mailSrv,
		s.logSrv,
	)
	api.RegisterStatusHandler()
}

// setupRoutesV1 配置v1路由
func (s *Server) setupRoutesV1() {
	apiGroup := s.app.Group("/api/v1")

	for _, handler := range api.Handlers {
		handler.RegisterRoutes(apiGroup)
	}

	// 健康检查
	s.app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("OK")
	})
}
