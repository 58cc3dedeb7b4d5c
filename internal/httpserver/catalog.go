package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"triply/internal/domain"
)

func listProductsHandler(svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.Products(c.Request.Context())
		if err != nil {
			respondServiceError(c, err)
			return
		}
		if products == nil {
			products = []domain.Product{}
		}
		respondData(c, http.StatusOK, products)
	}
}

func listPostsHandler(svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		posts, err := svc.Posts(c.Request.Context())
		if err != nil {
			respondServiceError(c, err)
			return
		}
		if posts == nil {
			posts = []domain.Post{}
		}
		respondData(c, http.StatusOK, posts)
	}
}

func listDestinationsHandler(svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		destinations, err := svc.Destinations(c.Request.Context())
		if err != nil {
			respondServiceError(c, err)
			return
		}
		if destinations == nil {
			destinations = []domain.Destination{}
		}
		respondData(c, http.StatusOK, destinations)
	}
}

func summaryHandler(svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		summary, err := svc.Summary(c.Request.Context())
		if err != nil {
			respondServiceError(c, err)
			return
		}
		respondData(c, http.StatusOK, summary)
	}
}
