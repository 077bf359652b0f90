package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/onegreenvn/campaign-generator-backend/internal/database/repository"
	"gorm.io/gorm"
)

// reserved query parameters of the generic table endpoint
var restReserved = map[string]bool{"select": true, "order": true, "limit": true, "offset": true}

// RestHandler serves a small Supabase-compatible subset over whitelisted tables
type RestHandler struct {
	tableRepo *repository.TableRepository
}

func NewRestHandler(db *gorm.DB) *RestHandler {
	return &RestHandler{tableRepo: repository.NewTableRepository(db)}
}

// parseTableQuery turns select/order/limit/offset and col=eq.value parameters into a TableQuery
func parseTableQuery(params map[string][]string) (repository.TableQuery, error) {
	q := repository.TableQuery{Filters: map[string]string{}}

	if sel := first(params, "select"); sel != "" && sel != "*" {
		for _, col := range strings.Split(sel, ",") {
			if col = strings.TrimSpace(col); col != "" {
				q.Select = append(q.Select, col)
			}
		}
	}

	if order := first(params, "order"); order != "" {
		col, dir, _ := strings.Cut(order, ".")
		switch dir {
		case "", "asc":
		case "desc":
			q.Desc = true
		default:
			return q, fmt.Errorf("invalid order direction: %s", dir)
		}
		q.Order = col
	}

	var err error
	if q.Limit, err = nonNegative(params, "limit"); err != nil {
		return q, err
	}
	if q.Offset, err = nonNegative(params, "offset"); err != nil {
		return q, err
	}

	for key := range params {
		if restReserved[key] {
			continue
		}
		value, err := eqValue(first(params, key))
		if err != nil {
			return q, fmt.Errorf("filter %s: %w", key, err)
		}
		q.Filters[key] = value
	}
	return q, nil
}

func first(params map[string][]string, key string) string {
	if v := params[key]; len(v) > 0 {
		return v[0]
	}
	return ""
}

func nonNegative(params map[string][]string, key string) (int, error) {
	raw := first(params, key)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid %s: %s", key, raw)
	}
	return n, nil
}

// eqValue accepts "eq.value"; other operators are not supported
func eqValue(raw string) (string, error) {
	op, value, ok := strings.Cut(raw, ".")
	if !ok || op != "eq" {
		return "", fmt.Errorf("only eq filters are supported")
	}
	return value, nil
}

// rowID reads ?id=eq.x or ?id=x
func rowID(c *gin.Context) string {
	id := c.Query("id")
	if v, err := eqValue(id); err == nil {
		return v
	}
	return id
}

func (h *RestHandler) checkTable(c *gin.Context) (string, bool) {
	table := c.Param("table")
	if !repository.HasTable(table) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown table: " + table})
		return "", false
	}
	return table, true
}

// Select godoc
// @Summary Read rows of a table
// @Description Supports select, order=col.asc|desc, limit, offset and col=eq.value filters
// @Tags rest
// @Produce json
// @Param table path string true "Table" Enums(organizations, products, services, campaigns)
// @Param select query string false "Comma separated columns"
// @Param order query string false "Ordering, e.g. created_at.desc"
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Success 200 {array} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /rest/v1/{table} [get]
func (h *RestHandler) Select(c *gin.Context) {
	table, ok := h.checkTable(c)
	if !ok {
		return
	}
	q, err := parseTableQuery(c.Request.URL.Query())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rows, err := h.tableRepo.Select(table, q)
	if err != nil {
		respondRepoError(c, err, "Row")
		return
	}
	c.JSON(http.StatusOK, rows)
}

// Insert godoc
// @Summary Insert rows into a table
// @Description Body is a single object or an array of objects; inserted rows are returned
// @Tags rest
// @Accept json
// @Produce json
// @Param table path string true "Table"
// @Success 201 {array} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /rest/v1/{table} [post]
func (h *RestHandler) Insert(c *gin.Context) {
	table, ok := h.checkTable(c)
	if !ok {
		return
	}
	var raw json.RawMessage
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}
	rows, err := decodeRows(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	inserted := make([]map[string]interface{}, 0, len(rows))
	for _, row := range rows {
		out, err := h.tableRepo.Insert(table, row)
		if err != nil {
			respondRepoError(c, err, "Row")
			return
		}
		inserted = append(inserted, out)
	}
	c.JSON(http.StatusCreated, inserted)
}

func decodeRows(raw json.RawMessage) ([]map[string]interface{}, error) {
	trimmed := strings.TrimSpace(string(raw))
	if strings.HasPrefix(trimmed, "[") {
		var rows []map[string]interface{}
		if err := json.Unmarshal(raw, &rows); err != nil {
			return nil, err
		}
		if len(rows) == 0 {
			return nil, fmt.Errorf("empty insert")
		}
		return rows, nil
	}
	var row map[string]interface{}
	if err := json.Unmarshal(raw, &row); err != nil {
		return nil, err
	}
	return []map[string]interface{}{row}, nil
}

// Update godoc
// @Summary Update a row
// @Tags rest
// @Accept json
// @Produce json
// @Param table path string true "Table"
// @Param id query string true "Row id, id=eq.<id> or id=<id>"
// @Success 200 {array} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /rest/v1/{table} [patch]
func (h *RestHandler) Update(c *gin.Context) {
	table, ok := h.checkTable(c)
	if !ok {
		return
	}
	id := rowID(c)
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id filter is required"})
		return
	}
	updates, ok := bindUpdates(c)
	if !ok {
		return
	}

	row, err := h.tableRepo.Update(table, id, updates)
	if err != nil {
		respondRepoError(c, err, "Row")
		return
	}
	c.JSON(http.StatusOK, []map[string]interface{}{row})
}

// Delete godoc
// @Summary Delete a row
// @Tags rest
// @Param table path string true "Table"
// @Param id query string true "Row id, id=eq.<id> or id=<id>"
// @Success 204
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /rest/v1/{table} [delete]
func (h *RestHandler) Delete(c *gin.Context) {
	table, ok := h.checkTable(c)
	if !ok {
		return
	}
	id := rowID(c)
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id filter is required"})
		return
	}
	if err := h.tableRepo.Delete(table, id); err != nil {
		respondRepoError(c, err, "Row")
		return
	}
	c.Status(http.StatusNoContent)
}
