package api

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"bluedock/models"
	"bluedock/store/storemock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupDashboardRouter(t *testing.T) (*gin.Engine, *storemock.MockStore) {
	gin.SetMode(gin.TestMode)
	st := storemock.NewMockStore(gomock.NewController(t))

	cfg := newTestConfig()
	dash := NewDashboardHandler(st, cfg)
	cats := NewCategoryHandler(st)

	r := gin.New()
	r.GET("/api/dashboard/productivity", dash.Productivity)
	r.GET("/api/dashboard/summary", dash.Summary)
	r.GET("/api/categories", cats.List)
	return r, st
}

func TestDashboardHandler_Productivity(t *testing.T) {
	r, st := setupDashboardRouter(t)

	since := time.Date(2025, 11, 27, 0, 0, 0, 0, time.Local)
	st.EXPECT().Productivity(gomock.Any(), since).Return([]models.ProductivityDay{
		{Date: "2025-11-27", Total: 3, Concluidos: 1, Prontos: 1},
		{Date: "2025-12-01", Total: 2, Concluidos: 2, Prontos: 0},
	}, nil)

	w := doJSON(r, "GET", "/api/dashboard/productivity", "")
	require.Equal(t, http.StatusOK, w.Code)

	data := decode(t, w)["data"].([]interface{})
	require.Len(t, data, 2)
	assert.Equal(t, map[string]interface{}{
		"date":       "2025-11-27",
		"total":      float64(3),
		"concluidos": float64(1),
		"prontos":    float64(1),
	}, data[0])
}

func TestDashboardHandler_Productivity_Empty(t *testing.T) {
	r, st := setupDashboardRouter(t)
	st.EXPECT().Productivity(gomock.Any(), gomock.Any()).Return(nil, nil)

	w := doJSON(r, "GET", "/api/dashboard/productivity", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []interface{}{}, decode(t, w)["data"])
}

func TestDashboardHandler_Summary(t *testing.T) {
	r, st := setupDashboardRouter(t)
	st.EXPECT().Summary(gomock.Any()).Return(models.DashboardSummary{
		Total:      6,
		Revenue:    300,
		Pending:    2,
		InProgress: 1,
		ByStatus:   map[models.Status]int64{models.StatusCompleted: 3, models.StatusPending: 2, models.StatusInProgress: 1},
	}, nil)

	w := doJSON(r, "GET", "/api/dashboard/summary", "")
	require.Equal(t, http.StatusOK, w.Code)

	data := decode(t, w)["data"].(map[string]interface{})
	assert.Equal(t, float64(300), data["revenue"])
	assert.Equal(t, float64(1), data["in_progress"])
	assert.Equal(t, float64(3), data["by_status"].(map[string]interface{})["Concluído"])
}

func TestDashboardHandler_StorageErrors(t *testing.T) {
	r, st := setupDashboardRouter(t)
	st.EXPECT().Summary(gomock.Any()).Return(models.DashboardSummary{}, errors.New("timeout"))
	st.EXPECT().Productivity(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

	assert.Equal(t, http.StatusInternalServerError, doJSON(r, "GET", "/api/dashboard/summary", "").Code)
	assert.Equal(t, http.StatusInternalServerError, doJSON(r, "GET", "/api/dashboard/productivity", "").Code)
}

func TestCategoryHandler_List(t *testing.T) {
	r, st := setupDashboardRouter(t)
	st.EXPECT().ListCategories(gomock.Any()).Return([]models.Category{
		{ID: 5, Name: "Acessórios"},
		{ID: 3, Name: "Carabinas"},
	}, nil)

	w := doJSON(r, "GET", "/api/categories", "")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode(t, w)
	assert.Equal(t, "success", resp["message"])
	data := resp["data"].([]interface{})
	require.Len(t, data, 2)
	assert.Equal(t, map[string]interface{}{"id": float64(5), "name": "Acessórios"}, data[0])
}

func TestCategoryHandler_List_StorageError(t *testing.T) {
	r, st := setupDashboardRouter(t)
	st.EXPECT().ListCategories(gomock.Any()).Return(nil, errors.New("down"))

	w := doJSON(r, "GET", "/api/categories", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "down", decode(t, w)["error"])
}
