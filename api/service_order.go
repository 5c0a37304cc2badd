package api

import (
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"bluedock/config"
	"bluedock/middleware"
	"bluedock/models"
	"bluedock/store"

	"github.com/gin-gonic/gin"
)

// StatusNotifier receives status changes after they are stored
type StatusNotifier interface {
	StatusChanged(n models.StatusNotification)
}

// ServiceHandler service-order endpoints
type ServiceHandler struct {
	store    store.Store
	cfg      *config.Config
	notifier StatusNotifier
	now      func() time.Time
}

// NewServiceHandler creates the service-order handler. notifier may be nil.
func NewServiceHandler(st store.Store, cfg *config.Config, notifier StatusNotifier) *ServiceHandler {
	return &ServiceHandler{store: st, cfg: cfg, notifier: notifier, now: time.Now}
}

// CreateServiceRequest body of POST /api/services. price and category_id
// accept numbers or numeric strings.
type CreateServiceRequest struct {
	CustomerName    string      `json:"customer_name" example:"Ana Souza"`
	CustomerPhone   *string     `json:"customer_phone" example:"11 98888-0000"`
	CustomerAddress *string     `json:"customer_address"`
	CustomerEmail   *string     `json:"customer_email"`
	ItemDescription string      `json:"item_description" example:"Molinete Shimano 4000"`
	ServiceDetails  *string     `json:"service_details"`
	Price           interface{} `json:"price" swaggertype:"number" example:"150.00"`
	CategoryID      interface{} `json:"category_id" swaggertype:"integer" example:"1"`
}

// UpdateServiceRequest body of PUT /api/services/:id. Omitted fields are left
// unchanged except category_id, which is always replaced.
type UpdateServiceRequest struct {
	CustomerName    *string     `json:"customer_name"`
	CustomerPhone   *string     `json:"customer_phone"`
	CustomerAddress *string     `json:"customer_address"`
	CustomerEmail   *string     `json:"customer_email"`
	ItemDescription *string     `json:"item_description"`
	ServiceDetails  *string     `json:"service_details"`
	Price           interface{} `json:"price" swaggertype:"number"`
	Status          *string     `json:"status" example:"Pronto"`
	CategoryID      interface{} `json:"category_id" swaggertype:"integer"`
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		BadRequest(c, "ID inválido")
		return 0, false
	}
	return uint(id), true
}

// queryInt parses a positive integer query parameter, def when absent or invalid
func queryInt(c *gin.Context, key string, def int) int {
	n, err := strconv.Atoi(c.Query(key))
	if err != nil || n < 1 {
		return def
	}
	return n
}

func (h *ServiceHandler) initialStatus() models.Status {
	if st, ok := models.ParseStatus(h.cfg.Orders.InitialStatus); ok {
		return st
	}
	return models.StatusPending
}

// List lists services page by page
// @Summary List service orders
// @Description Most recent first, joined with the category name
// @Tags services
// @Produce json
// @Param page query int false "page (default 1)"
// @Param limit query int false "page size (default 10, max 100)"
// @Param status query string false "status filter"
// @Param q query string false "text search on customer, item, receipt or category"
// @Success 200 {object} Response{data=[]models.ServiceOrderView,meta=PageMeta}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/services [get]
func (h *ServiceHandler) List(c *gin.Context) {
	limit := queryInt(c, "limit", h.cfg.Orders.DefaultPageSize)
	if limit > h.cfg.Orders.MaxPageSize {
		limit = h.cfg.Orders.MaxPageSize
	}
	page := min(queryInt(c, "page", 1), store.MaxPage(limit))

	q := store.ServiceQuery{Page: page, Limit: limit, Search: strings.TrimSpace(c.Query("q"))}
	if raw := c.Query("status"); raw != "" {
		st, ok := models.ParseStatus(raw)
		if !ok {
			BadRequest(c, "Status inválido: "+raw)
			return
		}
		q.Status = st
	}

	rows, total, err := h.store.ListServices(c.Request.Context(), q)
	if err != nil {
		storageError(c, "list services", err, "Erro ao buscar serviços")
		return
	}
	if rows == nil {
		rows = []models.ServiceOrderView{}
	}
	SuccessPage(c, rows, NewPageMeta(total, page, limit))
}

// Get returns one service
// @Summary Get a service order
// @Tags services
// @Produce json
// @Param id path int true "service id"
// @Success 200 {object} Response{data=models.ServiceOrderView}
// @Failure 404 {object} ErrorResponse
// @Router /api/services/{id} [get]
func (h *ServiceHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	v, err := h.store.GetService(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		NotFound(c, "Serviço não encontrado")
		return
	}
	if err != nil {
		storageError(c, "get service", err, "Erro ao buscar serviço")
		return
	}
	Success(c, v)
}

// Create registers a new service order
// @Summary Create a service order
// @Description Assigns receipt number, initial status and creation time
// @Tags services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateServiceRequest true "service order"
// @Success 201 {object} Response{data=models.ServiceOrderView}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/services [post]
func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "JSON inválido: "+err.Error())
		return
	}

	name := strings.TrimSpace(req.CustomerName)
	item := strings.TrimSpace(req.ItemDescription)
	if name == "" || item == "" {
		BadRequest(c, "Faltam dados. Nome do cliente e descrição do item são obrigatórios.")
		return
	}

	// unparseable price is stored as 0
	price, _ := models.CoercePrice(req.Price)
	if price < 0 {
		BadRequest(c, "O preço não pode ser negativo")
		return
	}

	o := &models.ServiceOrder{
		CustomerName:    name,
		CustomerPhone:   models.NullableString(req.CustomerPhone),
		CustomerAddress: models.NullableString(req.CustomerAddress),
		CustomerEmail:   models.NullableString(req.CustomerEmail),
		ItemDescription: item,
		ServiceDetails:  models.NullableString(req.ServiceDetails),
		Price:           price,
		Status:          h.initialStatus(),
		CreatedAt:       h.now(),
		CategoryID:      models.CoerceCategoryID(req.CategoryID),
	}
	if err := h.store.CreateService(c.Request.Context(), o); err != nil {
		storageError(c, "create service", err, "Erro ao cadastrar serviço")
		return
	}

	view := models.ServiceOrderView{ServiceOrder: *o}
	if o.CategoryID != nil {
		v, err := h.store.GetService(c.Request.Context(), o.ID)
		if err != nil {
			log.Printf("[%s] category name of service %d: %v", middleware.GetRequestID(c), o.ID, err)
		} else {
			view = v
		}
	}
	Created(c, view)
}

func isBlank(v interface{}) bool {
	s, ok := v.(string)
	return ok && strings.TrimSpace(s) == ""
}

// buildPatch validates an update request. The returned message is empty when
// the request is valid.
func buildPatch(req UpdateServiceRequest) (models.ServicePatch, string) {
	var p models.ServicePatch

	if req.CustomerName != nil {
		v := strings.TrimSpace(*req.CustomerName)
		if v == "" {
			return p, "O nome do cliente não pode ficar vazio"
		}
		p.CustomerName = &v
	}
	if req.ItemDescription != nil {
		v := strings.TrimSpace(*req.ItemDescription)
		if v == "" {
			return p, "A descrição do item não pode ficar vazia"
		}
		p.ItemDescription = &v
	}

	trimmed := func(s *string) *string {
		if s == nil {
			return nil
		}
		v := strings.TrimSpace(*s)
		return &v
	}
	p.CustomerPhone = trimmed(req.CustomerPhone)
	p.CustomerAddress = trimmed(req.CustomerAddress)
	p.CustomerEmail = trimmed(req.CustomerEmail)
	p.ServiceDetails = trimmed(req.ServiceDetails)

	if req.Price != nil && !isBlank(req.Price) {
		price, ok := models.CoercePrice(req.Price)
		if !ok || price < 0 {
			return p, "Preço inválido"
		}
		p.Price = &price
	}

	if req.Status != nil {
		st, ok := models.ParseStatus(*req.Status)
		if !ok {
			return p, "Status inválido: " + *req.Status
		}
		p.Status = &st
	}

	p.CategoryID = models.CoerceCategoryID(req.CategoryID)
	return p, ""
}

// Update applies a sparse update
// @Summary Update a service order
// @Description Omitted fields stay unchanged except category_id, which is always replaced (absent clears it). Entering Pronto/Concluído stamps finished_at once; any other status clears it.
// @Tags services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "service id"
// @Param request body UpdateServiceRequest true "fields to change"
// @Success 200 {object} ChangesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/services/{id} [put]
func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "JSON inválido: "+err.Error())
		return
	}
	patch, msg := buildPatch(req)
	if msg != "" {
		BadRequest(c, msg)
		return
	}

	now := h.now()
	n, err := h.store.UpdateService(c.Request.Context(), id, patch, now)
	if err != nil {
		storageError(c, "update service", err, "Erro ao atualizar serviço")
		return
	}
	if n > 0 && patch.Status != nil {
		h.notifyStatus(c, id, now)
	}
	Changes(c, "success", n)
}

// notifyStatus hands the updated order to the notifier; failures only log
func (h *ServiceHandler) notifyStatus(c *gin.Context, id uint, changedAt time.Time) {
	if h.notifier == nil {
		return
	}
	v, err := h.store.GetService(c.Request.Context(), id)
	if err != nil {
		log.Printf("[%s] load service %d for notification: %v", middleware.GetRequestID(c), id, err)
		return
	}
	h.notifier.StatusChanged(v.Notification(changedAt))
}

// Delete removes a service
// @Summary Delete a service order
// @Tags services
// @Produce json
// @Security BearerAuth
// @Param id path int true "service id"
// @Success 200 {object} ChangesResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/services/{id} [delete]
func (h *ServiceHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	n, err := h.store.DeleteService(c.Request.Context(), id)
	if err != nil {
		storageError(c, "delete service", err, "Erro ao excluir serviço")
		return
	}
	Changes(c, "deleted", n)
}

// Notification returns the messaging payload of a service
// @Summary Messaging payload of a service order
// @Description Fields the chat integration needs to notify the customer
// @Tags services
// @Produce json
// @Param id path int true "service id"
// @Success 200 {object} Response{data=models.StatusNotification}
// @Failure 404 {object} ErrorResponse
// @Router /api/services/{id}/notification [get]
func (h *ServiceHandler) Notification(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	v, err := h.store.GetService(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		NotFound(c, "Serviço não encontrado")
		return
	}
	if err != nil {
		storageError(c, "get service", err, "Erro ao buscar serviço")
		return
	}
	Success(c, v.Notification(time.Time{}))
}
