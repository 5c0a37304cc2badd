package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"bluedock/models"
	"bluedock/store"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04:05"
	xlsxMIME       = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ExportHandler spreadsheet exports
type ExportHandler struct {
	store store.Store
	now   func() time.Time
}

// NewExportHandler creates the export handler
func NewExportHandler(st store.Store) *ExportHandler {
	return &ExportHandler{store: st, now: time.Now}
}

var exportHeaders = []string{
	"ID", "OS", "Cliente", "Telefone", "E-mail", "Item", "Categoria",
	"Detalhes", "Preço", "Status", "Entrada", "Finalizado",
}

// dateRange reads the optional start_date/end_date (YYYY-MM-DD) query
// parameters. end_date covers the whole day.
func dateRange(c *gin.Context) (from, to *time.Time, ok bool) {
	if s := c.Query("start_date"); s != "" {
		t, err := time.ParseInLocation(dateLayout, s, time.Local)
		if err != nil {
			BadRequest(c, "start_date inválida, use AAAA-MM-DD")
			return nil, nil, false
		}
		from = &t
	}
	if s := c.Query("end_date"); s != "" {
		t, err := time.ParseInLocation(dateLayout, s, time.Local)
		if err != nil {
			BadRequest(c, "end_date inválida, use AAAA-MM-DD")
			return nil, nil, false
		}
		t = t.Add(24*time.Hour - time.Second)
		to = &t
	}
	if from != nil && to != nil && to.Before(*from) {
		BadRequest(c, "end_date anterior a start_date")
		return nil, nil, false
	}
	return from, to, true
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// exportRow one service as spreadsheet cells
func exportRow(v models.ServiceOrderView) []interface{} {
	finished := ""
	if v.FinishedAt != nil {
		finished = v.FinishedAt.Format(dateTimeLayout)
	}
	return []interface{}{
		v.ID,
		v.ReceiptNumber,
		v.CustomerName,
		deref(v.CustomerPhone),
		deref(v.CustomerEmail),
		v.ItemDescription,
		deref(v.CategoryName),
		deref(v.ServiceDetails),
		v.Price,
		string(v.Status),
		v.CreatedAt.Format(dateTimeLayout),
		finished,
	}
}

func (h *ExportHandler) load(c *gin.Context) ([]models.ServiceOrderView, bool) {
	from, to, ok := dateRange(c)
	if !ok {
		return nil, false
	}
	rows, err := h.store.ExportServices(c.Request.Context(), from, to)
	if err != nil {
		storageError(c, "export services", err, "Erro ao exportar serviços")
		return nil, false
	}
	return rows, true
}

// ExportExcel exports services as xlsx
// @Summary Export services to Excel
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param start_date query string false "from (YYYY-MM-DD)"
// @Param end_date query string false "to, inclusive (YYYY-MM-DD)"
// @Success 200 {file} file "xlsx file"
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/services/export/excel [get]
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	rows, ok := h.load(c)
	if !ok {
		return
	}

	buf, err := buildWorkbook(rows)
	if err != nil {
		storageError(c, "build workbook", err, "Erro ao gerar planilha")
		return
	}

	filename := fmt.Sprintf("servicos_%s.xlsx", h.now().Format("20060102_150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, xlsxMIME, buf.Bytes())
}

// buildWorkbook renders one sheet with a header row, the services and a
// closing total row
func buildWorkbook(rows []models.ServiceOrderView) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Serviços"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"0E7490"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	})
	if err != nil {
		return nil, err
	}
	totalStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
		Border: border,
	})
	if err != nil {
		return nil, err
	}

	widths := []float64{8, 14, 24, 16, 26, 30, 14, 30, 10, 20, 20, 20}
	for i, w := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(sheet, col, col, w); err != nil {
			return nil, err
		}
	}

	lastCol, _ := excelize.ColumnNumberToName(len(exportHeaders))
	if err := f.SetSheetRow(sheet, "A1", &exportHeaders); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", headerStyle); err != nil {
		return nil, err
	}

	var total float64
	for i, v := range rows {
		row := exportRow(v)
		if err := f.SetSheetRow(sheet, "A"+strconv.Itoa(i+2), &row); err != nil {
			return nil, err
		}
		total += v.Price
	}

	totalRow := strconv.Itoa(len(rows) + 2)
	f.SetCellValue(sheet, "A"+totalRow, "Total")
	f.SetCellValue(sheet, "I"+totalRow, total)
	if err := f.SetCellStyle(sheet, "A"+totalRow, lastCol+totalRow, totalStyle); err != nil {
		return nil, err
	}

	return f.WriteToBuffer()
}

// ExportCSV exports services as CSV
// @Summary Export services to CSV
// @Tags export
// @Produce text/csv
// @Param start_date query string false "from (YYYY-MM-DD)"
// @Param end_date query string false "to, inclusive (YYYY-MM-DD)"
// @Success 200 {file} file "CSV file"
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/services/export/csv [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	rows, ok := h.load(c)
	if !ok {
		return
	}

	buf := new(bytes.Buffer)
	// BOM so spreadsheet apps detect UTF-8
	buf.WriteString("\xEF\xBB\xBF")

	w := csv.NewWriter(buf)
	w.Write(exportHeaders)
	for _, v := range rows {
		cells := exportRow(v)
		record := make([]string, len(cells))
		for i, cell := range cells {
			switch x := cell.(type) {
			case float64:
				record[i] = strconv.FormatFloat(x, 'f', 2, 64)
			default:
				record[i] = fmt.Sprint(x)
			}
		}
		w.Write(record)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		storageError(c, "write csv", err, "Erro ao gerar CSV")
		return
	}

	filename := fmt.Sprintf("servicos_%s.csv", h.now().Format("20060102_150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
