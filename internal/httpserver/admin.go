package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	adminsvc "triply/internal/service/admin"
)

func createProductHandler(svc adminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in adminsvc.ProductInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, http.StatusBadRequest, "invalid request body")
			return
		}
		product, err := svc.CreateProduct(c.Request.Context(), in)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		respondData(c, http.StatusCreated, product)
	}
}

func createPostHandler(svc adminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in adminsvc.PostInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, http.StatusBadRequest, "invalid request body")
			return
		}
		post, err := svc.CreatePost(c.Request.Context(), in)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		respondData(c, http.StatusCreated, post)
	}
}

func createDestinationHandler(svc adminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in adminsvc.DestinationInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, http.StatusBadRequest, "invalid request body")
			return
		}
		destination, err := svc.CreateDestination(c.Request.Context(), in)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		respondData(c, http.StatusCreated, destination)
	}
}
