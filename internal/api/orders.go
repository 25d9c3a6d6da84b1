package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mcastellanos/storefront/internal/apperr"
	"github.com/mcastellanos/storefront/internal/order"
)

type OrderHandler struct {
	svc *order.Service
}

func NewOrderHandler(svc *order.Service) *OrderHandler {
	return &OrderHandler{svc: svc}
}

func (h *OrderHandler) Create(c *gin.Context) {
	var req order.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.New(apperr.InvalidArgument, "invalid json body"))
		return
	}
	o, err := h.svc.Create(c.Request.Context(), c.GetString(ctxUserID), req.Items)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Order created successfully",
		"order":   o,
	})
}

func (h *OrderHandler) ListMine(c *gin.Context) {
	orders, err := h.svc.ListForUser(c.Request.Context(), c.GetString(ctxUserID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders})
}

func (h *OrderHandler) ListAll(c *gin.Context) {
	orders, err := h.svc.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders})
}
