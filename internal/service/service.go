package service

import (
	"context"
	"net/http"

	"github.com/kordia/tender_tools/internal/constant"
	"github.com/kordia/tender_tools/internal/model"
	"github.com/kordia/tender_tools/pkg/docgen"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

type DictService interface {
	Create(ctx context.Context, record *model.Dict) error
	Update(ctx context.Context, record *model.Dict) error
	Delete(ctx context.Context, id uint64) error
	Get(ctx context.Context, id uint64) (*model.Dict, error)
	List(ctx context.Context, condition *model.Dict, offset, limit int) ([]*model.Dict, int64, error)
	GetByCode(ctx context.Context, code string) (*model.Dict, error)
	// ListByTypeCode 按字典类型code查询全部子项，按sort排序
	ListByTypeCode(ctx context.Context, typeCode string) ([]*model.Dict, error)
}

type ProjectService interface {
	Create(ctx context.Context, record *model.Project) error
	Update(ctx context.Context, record *model.Project) error
	Delete(ctx context.Context, id uint64) error
	Get(ctx context.Context, id uint64) (*model.Project, error)
	List(ctx context.Context, condition *model.Project, offset, limit int) ([]*model.Project, int64, error)
}

type ObjectiveService interface {
	Create(ctx context.Context, record *model.Objective) error
	Update(ctx context.Context, record *model.Objective) error
	Delete(ctx context.Context, id uint64) error
	Get(ctx context.Context, id uint64) (*model.Objective, error)
	List(ctx context.Context, condition *model.Objective, offset, limit int) ([]*model.Objective, int64, error)
	ListByProject(ctx context.Context, projectID uint64) ([]*model.Objective, error)
}

type ActivityService interface {
	Create(ctx context.Context, record *model.ProgramActivity) error
	Update(ctx context.Context, record *model.ProgramActivity) error
	Delete(ctx context.Context, id uint64) error
	Get(ctx context.Context, id uint64) (*model.ProgramActivity, error)
	List(ctx context.Context, condition *model.ProgramActivity, offset, limit int) ([]*model.ProgramActivity, int64, error)
	// ListByProject 查询项目全部进度活动，不分页
	ListByProject(ctx context.Context, projectID uint64) ([]*model.ProgramActivity, error)
}

type ConsultantService interface {
	Create(ctx context.Context, record *model.Consultant) error
	Update(ctx context.Context, record *model.Consultant) error
	Delete(ctx context.Context, id uint64) error
	Get(ctx context.Context, id uint64) (*model.Consultant, error)
	List(ctx context.Context, condition *model.Consultant, offset, limit int) ([]*model.Consultant, int64, error)
}

type ContractorService interface {
	Create(ctx context.Context, record *model.Contractor) error
	Update(ctx context.Context, record *model.Contractor) error
	Delete(ctx context.Context, id uint64) error
	Get(ctx context.Context, id uint64) (*model.Contractor, error)
	List(ctx context.Context, condition *model.Contractor, offset, limit int) ([]*model.Contractor, int64, error)
}

type CostLineService interface {
	Create(ctx context.Context, record *model.CostLine) error
	Update(ctx context.Context, record *model.CostLine) error
	Delete(ctx context.Context, id uint64) error
	Get(ctx context.Context, id uint64) (*model.CostLine, error)
	List(ctx context.Context, condition *model.CostLine, offset, limit int) ([]*model.CostLine, int64, error)
	ListByProject(ctx context.Context, projectID uint64) ([]*model.CostLine, error)
}

type RftService interface {
	Create(ctx context.Context, record *model.RftPackage) error
	Update(ctx context.Context, record *model.RftPackage) error
	Delete(ctx context.Context, id uint64) error
	Get(ctx context.Context, id uint64) (*model.RftPackage, error)
	List(ctx context.Context, condition *model.RftPackage, offset, limit int) ([]*model.RftPackage, int64, error)
	ListByProject(ctx context.Context, projectID uint64) ([]*model.RftPackage, error)
}

type AddendumService interface {
	Create(ctx context.Context, record *model.Addendum) error
	Update(ctx context.Context, record *model.Addendum) error
	Delete(ctx context.Context, id uint64) error
	Get(ctx context.Context, id uint64) (*model.Addendum, error)
	List(ctx context.Context, condition *model.Addendum, offset, limit int) ([]*model.Addendum, int64, error)
	ListByRft(ctx context.Context, rftID uint64) ([]*model.Addendum, error)
}

type TransmittalService interface {
	Create(ctx context.Context, record *model.TransmittalDocument) error
	Update(ctx context.Context, record *model.TransmittalDocument) error
	Delete(ctx context.Context, id uint64) error
	Get(ctx context.Context, id uint64) (*model.TransmittalDocument, error)
	List(ctx context.Context, condition *model.TransmittalDocument, offset, limit int) ([]*model.TransmittalDocument, int64, error)
	// ListByRft 查询招标包全部发文条目，含补遗签发的，按类别与排序号排序
	ListByRft(ctx context.Context, rftID uint64) ([]*model.TransmittalDocument, error)
}

type LogService interface {
	CreateOperationLog(ctx context.Context, action int, ip, userAgent string) error
	List(ctx context.Context, condition *model.Log, offset, limit int) ([]*model.Log, int64, error)
	DeleteOldLogs(ctx context.Context, days int) error
}

type ReportService interface {
	// BuildRftReport 组装招标文件报告的HTML文档体，返回标题与HTML
	BuildRftReport(ctx context.Context, rftID uint64) (string, string, error)
	// BuildTransmittalReport 组装发文清单的HTML文档体
	BuildTransmittalReport(ctx context.Context, rftID uint64) (string, string, error)
}

// ExportDocument 一次导出产物
type ExportDocument struct {
	Filename string `json:"filename"`
	Mime     string `json:"mime"`
	Data     []byte `json:"-"`
}

// BatchExportItem 批量导出中单个招标包的结果
type BatchExportItem struct {
	RftID    uint64 `json:"rftId,string"`
	Title    string `json:"title"`
	Filename string `json:"filename,omitempty"`
	Size     int    `json:"size,omitempty"`
	Error    string `json:"error,omitempty"`
}

// BatchExportResult 批量导出任务结果
type BatchExportResult struct {
	JobID     string            `json:"jobId"`
	Succeeded int               `json:"succeeded"`
	Failed    int               `json:"failed"`
	Items     []BatchExportItem `json:"items"`
}

type ExportService interface {
	ExportRft(ctx context.Context, rftID uint64, format docgen.Format) (*ExportDocument, error)
	ExportProgram(ctx context.Context, projectID uint64, format docgen.Format) (*ExportDocument, error)
	ExportTransmittal(ctx context.Context, rftID uint64, format docgen.Format) (*ExportDocument, error)
	// ExportBatch 批量导出项目下全部招标包报告并落盘
	ExportBatch(ctx context.Context, projectID uint64, format docgen.Format) (*BatchExportResult, error)
}

type MailService interface {
	// IssueTransmittal 导出发文清单并作为附件发送给收件人
	IssueTransmittal(ctx context.Context, rftID uint64, recipients []string, format docgen.Format) error
}

// /////////////////////////////
// Response 通用响应结构
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

func OK(data interface{}) *Response {
	return NewResponse(data, nil)
}

func Error(err error) *Response {
	return NewResponse(nil, err)
}

// NewResponse 创建响应
func NewResponse(data interface{}, err error) *Response {
	if err == nil {
		return &Response{
			Code:    http.StatusOK,
			Message: "success",
			Data:    data,
		}
	}

	code := constant.GetErrorCode(err)
	return &Response{
		Code:    code,
		Message: err.Error(),
		Data:    data,
	}
}

// ListResponse 列表响应结构
type ListResponse struct {
	Total  int64       `json:"total"`
	Items  interface{} `json:"items"`
	Offset int         `json:"offset"`
	Limit  int         `json:"limit"`
}

// NewListResponse 创建列表响应
func NewListResponse(items interface{}, total int64, offset, limit int) *ListResponse {
	return &ListResponse{
		Total:  total,
		Items:  items,
		Offset: offset,
		Limit:  limit,
	}
}
