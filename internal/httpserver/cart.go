package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type addCartItemRequest struct {
	ProductID *int64 `json:"productId"`
	Quantity  *int   `json:"quantity"`
}

type setCartItemRequest struct {
	Quantity *int `json:"quantity"`
}

func getCartHandler(svc cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := svc.Get(c.Request.Context())
		if err != nil {
			respondServiceError(c, err)
			return
		}
		respondData(c, http.StatusOK, cart)
	}
}

func addCartItemHandler(svc cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.ProductID == nil {
			respondError(c, http.StatusBadRequest, "productId is required")
			return
		}
		// Omitted quantity means one unit; zero and below stay rejected.
		quantity := 1
		if req.Quantity != nil {
			quantity = *req.Quantity
		}
		cart, err := svc.Add(c.Request.Context(), *req.ProductID, quantity)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		respondData(c, http.StatusOK, cart)
	}
}

func setCartItemHandler(svc cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
		if err != nil {
			respondError(c, http.StatusBadRequest, "productId is required")
			return
		}
		var req setCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Quantity == nil {
			respondError(c, http.StatusBadRequest, "quantity is required")
			return
		}
		cart, err := svc.SetQuantity(c.Request.Context(), productID, *req.Quantity)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		respondData(c, http.StatusOK, cart)
	}
}

func removeCartItemHandler(svc cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
		if err != nil {
			respondError(c, http.StatusBadRequest, "productId is required")
			return
		}
		cart, err := svc.Remove(c.Request.Context(), productID)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		respondData(c, http.StatusOK, cart)
	}
}

func clearCartHandler(svc cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := svc.Clear(c.Request.Context())
		if err != nil {
			respondServiceError(c, err)
			return
		}
		respondData(c, http.StatusOK, cart)
	}
}
