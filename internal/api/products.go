package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mcastellanos/storefront/internal/apperr"
	"github.com/mcastellanos/storefront/internal/catalog"
)

type ProductHandler struct {
	store catalog.Store
}

func NewProductHandler(store catalog.Store) *ProductHandler {
	return &ProductHandler{store: store}
}

type createProductRequest struct {
	SKU         string  `json:"sku"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Stock       int     `json:"stock"`
}

// List handles GET /api/products. Sort comes from the X-Sort header
// (asc/desc) and the sort query param (low/high); the query param wins
// when both are present. Limit is clamped at catalog.MaxLimit.
func (h *ProductHandler) List(c *gin.Context) {
	page, err := intQuery(c, "page", catalog.DefaultPage)
	if err != nil {
		respondError(c, err)
		return
	}
	limit, err := intQuery(c, "limit", catalog.DefaultLimit)
	if err != nil {
		respondError(c, err)
		return
	}

	q := catalog.ListQuery{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Page:     page,
		Limit:    limit,
		Sort:     catalog.ResolveSort(c.GetHeader("X-Sort"), c.Query("sort")),
	}
	result, err := h.store.List(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"total":    result.Total,
		"page":     result.Page,
		"pages":    result.Pages,
		"products": result.Products,
	})
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.New(apperr.InvalidArgument, "invalid json body"))
		return
	}
	if req.SKU == "" || req.Name == "" || req.Category == "" {
		respondError(c, apperr.New(apperr.InvalidArgument, "sku, name and category are required"))
		return
	}
	if req.Price < 0 || req.Stock < 0 {
		respondError(c, apperr.New(apperr.InvalidArgument, "price and stock must be non-negative"))
		return
	}
	p := &catalog.Product{
		ID:          uuid.NewString(),
		SKU:         req.SKU,
		Name:        req.Name,
		Price:       req.Price,
		Category:    req.Category,
		Description: req.Description,
		Image:       req.Image,
		Stock:       req.Stock,
	}
	if err := h.store.Create(c.Request.Context(), p); err != nil {
		if errors.Is(err, catalog.ErrDuplicateSKU) {
			respondError(c, apperr.New(apperr.InvalidArgument, "sku already exists"))
			return
		}
		respondError(c, apperr.Wrap(apperr.StoreUnavailable, "error adding product", err))
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Product created successfully",
		"product": p,
	})
}

func (h *ProductHandler) Update(c *gin.Context) {
	var upd catalog.Update
	if err := c.ShouldBindJSON(&upd); err != nil {
		respondError(c, apperr.New(apperr.InvalidArgument, "invalid json body"))
		return
	}
	if upd.Price != nil && *upd.Price < 0 {
		respondError(c, apperr.New(apperr.InvalidArgument, "price must be non-negative"))
		return
	}
	if upd.Stock != nil && *upd.Stock < 0 {
		respondError(c, apperr.New(apperr.InvalidArgument, "stock must be non-negative"))
		return
	}
	p, err := h.store.Update(c.Request.Context(), c.Param("id"), upd)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			respondError(c, apperr.New(apperr.NotFound, "product not found"))
			return
		}
		respondError(c, apperr.Wrap(apperr.StoreUnavailable, "error updating product", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Product updated successfully",
		"product": p,
	})
}

func (h *ProductHandler) Delete(c *gin.Context) {
	ok, err := h.store.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, apperr.Wrap(apperr.StoreUnavailable, "error deleting product", err))
		return
	}
	if !ok {
		respondError(c, apperr.New(apperr.NotFound, "product not found"))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Product deleted successfully",
	})
}

func intQuery(c *gin.Context, name string, def int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperr.Newf(apperr.InvalidArgument, "%s must be an integer", name)
	}
	return v, nil
}
