package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront/internal/domain"
)

func queryBool(c *gin.Context, key string) bool {
	b, _ := strconv.ParseBool(c.Query(key))
	return b
}

func (h *handlers) listProducts(c *gin.Context) {
	products, err := h.svc.GetProducts(c.Request.Context(), domain.ProductQuery{
		Query:   c.Query("q"),
		SortKey: c.Query("sort"),
		Reverse: queryBool(c, "reverse"),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h *handlers) getProduct(c *gin.Context) {
	product, err := h.svc.GetProduct(c.Request.Context(), c.Param("handle"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": product})
}

func (h *handlers) getProductExtras(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"extras": h.svc.ProductExtras(c.Request.Context(), c.Param("handle"))})
}

func (h *handlers) getRecommendations(c *gin.Context) {
	products, err := h.svc.GetProductRecommendations(c.Request.Context(), c.Param("productId"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h *handlers) listCollections(c *gin.Context) {
	cols, err := h.svc.GetCollections(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"collections": cols})
}

func (h *handlers) getCollection(c *gin.Context) {
	col, err := h.svc.GetCollection(c.Request.Context(), c.Param("handle"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"collection": col})
}

func (h *handlers) getCollectionProducts(c *gin.Context) {
	products, err := h.svc.GetCollectionProducts(c.Request.Context(), domain.CollectionProductsQuery{
		Collection: c.Param("handle"),
		SortKey:    c.Query("sort"),
		Reverse:    queryBool(c, "reverse"),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h *handlers) getMenu(c *gin.Context) {
	items, err := h.svc.GetMenu(c.Request.Context(), c.Param("handle"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"menu": items})
}

func (h *handlers) listPages(c *gin.Context) {
	pages, err := h.svc.GetPages(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pages": pages})
}

func (h *handlers) getPage(c *gin.Context) {
	page, err := h.svc.GetPage(c.Request.Context(), c.Param("handle"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"page": page})
}
