package api

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strings"
	"testing"
	"time"

	"bluedock/models"
	"bluedock/store/storemock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

func exportFixture() []models.ServiceOrderView {
	done := time.Date(2026, 2, 3, 16, 0, 0, 0, time.Local)
	return []models.ServiceOrderView{
		{
			ServiceOrder: models.ServiceOrder{
				ID: 2, ReceiptNumber: "2026-000002", CustomerName: "Ana", ItemDescription: "Molinete",
				Price: 150, Status: models.StatusCompleted,
				CreatedAt: time.Date(2026, 2, 1, 10, 0, 0, 0, time.Local), FinishedAt: &done,
			},
			CategoryName: strPtr("Molinetes"),
		},
		{
			ServiceOrder: models.ServiceOrder{
				ID: 1, ReceiptNumber: "2026-000001", CustomerName: "Bruno, Jr", ItemDescription: "Vara",
				Price: 49.9, Status: models.StatusPending,
				CreatedAt: time.Date(2026, 1, 30, 9, 0, 0, 0, time.Local),
			},
		},
	}
}

func setupExportRouter(t *testing.T) (*gin.Engine, *storemock.MockStore) {
	gin.SetMode(gin.TestMode)
	st := storemock.NewMockStore(gomock.NewController(t))
	h := NewExportHandler(st)
	h.now = func() time.Time { return fixedNow }

	r := gin.New()
	r.GET("/api/services/export/excel", h.ExportExcel)
	r.GET("/api/services/export/csv", h.ExportCSV)
	return r, st
}

func TestExportHandler_Excel(t *testing.T) {
	r, st := setupExportRouter(t)
	st.EXPECT().ExportServices(gomock.Any(), gomock.Nil(), gomock.Nil()).Return(exportFixture(), nil)

	w := doJSON(r, "GET", "/api/services/export/excel", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, xlsxMIME, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "servicos_20261016_093000.xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Serviços")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, exportHeaders, rows[0])
	assert.Equal(t, "2026-000002", rows[1][1])
	assert.Equal(t, "Molinetes", rows[1][6])
	assert.Equal(t, "Concluído", rows[1][9])
	assert.Equal(t, "Total", rows[3][0])
}

func TestExportHandler_CSV_DateRange(t *testing.T) {
	r, st := setupExportRouter(t)

	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local)
	to := time.Date(2026, 2, 28, 23, 59, 59, 0, time.Local)
	st.EXPECT().ExportServices(gomock.Any(), &from, &to).Return(exportFixture(), nil)

	w := doJSON(r, "GET", "/api/services/export/csv?start_date=2026-01-01&end_date=2026-02-28", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")

	body := strings.TrimPrefix(w.Body.String(), "\xEF\xBB\xBF")
	records, err := csv.NewReader(strings.NewReader(body)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "150.00", records[1][8])
	assert.Equal(t, "2026-02-03 16:00:00", records[1][11])
	assert.Equal(t, "Bruno, Jr", records[2][2])
	assert.Equal(t, "", records[2][11])
}

func TestExportHandler_InvalidDates(t *testing.T) {
	r, _ := setupExportRouter(t)

	for _, q := range []string{
		"start_date=01/02/2026",
		"end_date=2026-13-01",
		"start_date=2026-03-01&end_date=2026-02-01",
	} {
		w := doJSON(r, "GET", "/api/services/export/csv?"+q, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, q)
	}
}
