package service

import (
	"context"
	"fmt"
	"io"

	"gopkg.in/gomail.v2"

	"github.com/kordia/tender_tools/internal/constant"
	"github.com/kordia/tender_tools/pkg/config"
	"github.com/kordia/tender_tools/pkg/docgen"
	"github.com/kordia/tender_tools/pkg/logger"
)

type mailService struct {
	exportService ExportService
	rftService    RftService
}

func NewMailService(exportService ExportService, rftService RftService) *mailService {
	return &mailService{
		exportService: exportService,
		rftService:    rftService,
	}
}

// IssueTransmittal 导出发文清单并作为附件发送。
// 邮件主机未配置时直接拒绝，不做静默跳过
func (s *mailService) IssueTransmittal(ctx context.Context, rftID uint64, recipients []string, format docgen.Format) error {
	if len(recipients) == 0 {
		return constant.ErrInvalidParams
	}
	host := config.GetString("mail.host")
	if host == "" {
		return constant.ErrMailNotConfigured
	}

	rft, err := s.rftService.Get(ctx, rftID)
	if err != nil {
		return err
	}
	doc, err := s.exportService.ExportTransmittal(ctx, rftID, format)
	if err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", config.GetString("mail.from"))
	m.SetHeader("To", recipients...)
	m.SetHeader("Subject", fmt.Sprintf("Transmittal: %s", rft.Title))
	m.SetBody("text/plain", fmt.Sprintf(
		"Please find attached the document transmittal for %s (%s).",
		rft.Title, rft.Reference,
	))
	m.Attach(doc.Filename, gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := w.Write(doc.Data)
		return err
	}))

	dialer := gomail.NewDialer(
		host,
		config.GetInt("mail.port"),
		config.GetString("mail.username"),
		config.GetString("mail.password"),
	)
	if err := dialer.DialAndSend(m); err != nil {
		logger.Error("发文邮件发送失败",
			logger.F("rft_id", rftID),
			logger.F("recipients", recipients),
			logger.F("err", err),
		)
		return fmt.Errorf("发送邮件失败: %v", err)
	}

	logger.Info("发文邮件已发送",
		logger.F("rft_id", rftID),
		logger.F("recipients", recipients),
		logger.F("filename", doc.Filename),
	)
	return nil
}
