package service

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/yuin/goldmark"

	"github.com/kordia/tender_tools/internal/constant"
	"github.com/kordia/tender_tools/internal/model"
	"github.com/kordia/tender_tools/pkg/logger"
)

const reportDateLayout = "02 Jan 2006"

type reportService struct {
	projectService     ProjectService
	objectiveService   ObjectiveService
	rftService         RftService
	addendumService    AddendumService
	transmittalService TransmittalService
	costLineService    CostLineService
	markdown           goldmark.Markdown
}

func NewReportService(
	projectService ProjectService,
	objectiveService ObjectiveService,
	rftService RftService,
	addendumService AddendumService,
	transmittalService TransmittalService,
	costLineService CostLineService,
) *reportService {
	return &reportService{
		projectService:     projectService,
		objectiveService:   objectiveService,
		rftService:         rftService,
		addendumService:    addendumService,
		transmittalService: transmittalService,
		costLineService:    costLineService,
		markdown:           goldmark.New(),
	}
}

// BuildRftReport 组装招标文件报告：项目信息表、范围、目标、
// 投标条件、评标价格表与补遗，输出HTML文档体与标题
func (s *reportService) BuildRftReport(ctx context.Context, rftID uint64) (string, string, error) {
	rft, err := s.rftService.Get(ctx, rftID)
	if err != nil {
		return "", "", err
	}
	project, err := s.projectService.Get(ctx, rft.ProjectID)
	if err != nil {
		return "", "", err
	}
	objectives, err := s.objectiveService.ListByProject(ctx, project.ID)
	if err != nil {
		return "", "", err
	}
	addenda, err := s.addendumService.ListByRft(ctx, rftID)
	if err != nil {
		return "", "", err
	}
	costLines, err := s.costLineService.ListByProject(ctx, project.ID)
	if err != nil {
		return "", "", err
	}

	var b strings.Builder
	s.writeProjectInfoTable(&b, project, rft)

	if rft.Scope != "" {
		b.WriteString(`<div class="content-section"><h2>Scope of Works</h2>`)
		b.WriteString(s.richText(rft.Scope))
		b.WriteString(`</div>`)
	}

	if len(objectives) > 0 {
		b.WriteString(`<div class="content-section"><h2>Project Objectives</h2>`)
		for _, o := range objectives {
			fmt.Fprintf(&b, `<h3>%s</h3>`, html.EscapeString(o.Title))
			b.WriteString(s.richText(o.Content))
		}
		b.WriteString(`</div>`)
	}

	if rft.Conditions != "" {
		b.WriteString(`<div class="content-section"><h2>Conditions of Tendering</h2>`)
		b.WriteString(s.richText(rft.Conditions))
		b.WriteString(`</div>`)
	}

	s.writeEvalPriceTable(&b, costLines)

	if len(addenda) > 0 {
		b.WriteString(`<div class="content-section"><h2>Addenda</h2>`)
		for _, a := range addenda {
			fmt.Fprintf(&b, `<h3>Addendum %d: %s</h3>`, a.Number, html.EscapeString(a.Subject))
			if a.IssuedDate != nil {
				fmt.Fprintf(&b, `<p><strong>Issued:</strong> %s</p>`, a.IssuedDate.Format(reportDateLayout))
			}
			b.WriteString(s.richText(a.Content))
		}
		b.WriteString(`</div>`)
	}

	title := rft.Title
	if rft.Reference != "" {
		title = rft.Reference + " " + rft.Title
	}
	return title, b.String(), nil
}

// BuildTransmittalReport 组装发文清单：项目信息表 + 按类别分组的清单表
func (s *reportService) BuildTransmittalReport(ctx context.Context, rftID uint64) (string, string, error) {
	rft, err := s.rftService.Get(ctx, rftID)
	if err != nil {
		return "", "", err
	}
	project, err := s.projectService.Get(ctx, rft.ProjectID)
	if err != nil {
		return "", "", err
	}
	docs, err := s.transmittalService.ListByRft(ctx, rftID)
	if err != nil {
		return "", "", err
	}
	if len(docs) == 0 {
		return "", "", constant.ErrTransmittalEmpty
	}

	var b strings.Builder
	s.writeProjectInfoTable(&b, project, rft)

	b.WriteString(`<div class="transmittal-section">`)
	for _, group := range groupByCategory(docs) {
		category := group[0].Category
		if category == "" {
			category = "Uncategorised"
		}
		fmt.Fprintf(&b, `<h2>%s</h2>`, html.EscapeString(category))
		s.writeTransmittalTable(&b, group)
	}
	b.WriteString(`</div>`)

	title := rft.Title + " Transmittal"
	if rft.Reference != "" {
		title = rft.Reference + " Transmittal"
	}
	logger.Debug("发文清单HTML已组装",
		logger.F("rft_id", rftID),
		logger.F("documents", len(docs)),
	)
	return title, b.String(), nil
}

// writeProjectInfoTable 项目信息表，标签列与签发日期列带class标记
func (s *reportService) writeProjectInfoTable(b *strings.Builder, project *model.Project, rft *model.RftPackage) {
	b.WriteString(`<table class="project-info">`)
	writeInfoRow(b, "Project", project.Name, "Reference", rft.Reference, false)
	writeInfoRow(b, "Client", project.Client, "Issued", formatDate(rft.IssuedDate), true)
	writeInfoRow(b, "Address", project.Address, "Tenders Close", formatDate(rft.CloseDate), true)
	b.WriteString(`</table>`)
}

func writeInfoRow(b *strings.Builder, label1, value1, label2, value2 string, issued bool) {
	dateClass := ""
	if issued {
		dateClass = ` class="issued"`
	}
	fmt.Fprintf(b, `<tr><td class="label">%s</td><td>%s</td><td class="label">%s</td><td%s>%s</td></tr>`,
		html.EscapeString(label1), html.EscapeString(value1),
		html.EscapeString(label2), dateClass, html.EscapeString(value2))
}

// writeEvalPriceTable 评标价格表，金额列由投标人填写故留空
func (s *reportService) writeEvalPriceTable(b *strings.Builder, costLines []*model.CostLine) {
	var lines []*model.CostLine
	for _, line := range costLines {
		if line.Section == model.CostSectionConstruction {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return
	}
	b.WriteString(`<div class="content-section"><h2>Schedule of Prices</h2>`)
	b.WriteString(`<table class="eval-price">`)
	b.WriteString(`<tr><th>Description</th><th>Amount (excl. GST)</th><th>Amount (incl. GST)</th></tr>`)
	for _, line := range lines {
		fmt.Fprintf(b, `<tr><td>%s</td><td class="num"></td><td class="num"></td></tr>`,
			html.EscapeString(line.Name))
	}
	b.WriteString(`</table></div>`)
}

// writeTransmittalTable 单个类别的发文清单表，六列
func (s *reportService) writeTransmittalTable(b *strings.Builder, docs []*model.TransmittalDocument) {
	b.WriteString(`<table class="transmittal">`)
	b.WriteString(`<tr><th class="num">No.</th><th>Drawing No.</th><th>Document Name</th><th>Rev</th><th>Subcategory</th><th class="issued">Issued</th></tr>`)
	for i, doc := range docs {
		fmt.Fprintf(b, `<tr><td class="num">%d</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td class="issued">%s</td></tr>`,
			i+1,
			html.EscapeString(doc.DrawingNumber),
			html.EscapeString(doc.Name),
			html.EscapeString(doc.Revision),
			html.EscapeString(doc.Subcategory),
			formatDate(doc.IssuedDate))
	}
	b.WriteString(`</table>`)
}

// richText 富文本字段既可能是HTML也可能是markdown，
// 含标签的按HTML原样使用，否则经goldmark转HTML
func (s *reportService) richText(content string) string {
	if content == "" {
		return ""
	}
	if strings.Contains(content, "<") {
		return content
	}
	var buf bytes.Buffer
	if err := s.markdown.Convert([]byte(content), &buf); err != nil {
		logger.Error("markdown转换失败", logger.F("err", err))
		return "<p>" + html.EscapeString(content) + "</p>"
	}
	return buf.String()
}

// groupByCategory 保持输入顺序按类别切分，输入已按类别排序
func groupByCategory(docs []*model.TransmittalDocument) [][]*model.TransmittalDocument {
	var groups [][]*model.TransmittalDocument
	for _, doc := range docs {
		n := len(groups)
		if n > 0 && groups[n-1][0].Category == doc.Category {
			groups[n-1] = append(groups[n-1], doc)
			continue
		}
		groups = append(groups, []*model.TransmittalDocument{doc})
	}
	return groups
}

func formatDate(t *time.Time) string {
	if t == nil {
		return "TBC"
	}
	return t.Format(reportDateLayout)
}
