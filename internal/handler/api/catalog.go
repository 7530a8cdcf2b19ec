package api

import (
	"net/http"
	"strings"

	reqdto "click-collect/internal/handler/dto/request"
	resdto "click-collect/internal/handler/dto/response"
	"click-collect/internal/handler/httperr"
	"click-collect/internal/handler/middleware"
	"click-collect/internal/usecase/commands"
	"click-collect/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalog queries.CatalogQueries
	ratings queries.RatingQueries
	rate    commands.RatingCommands
}

func NewCatalogHandler(catalog queries.CatalogQueries, ratings queries.RatingQueries, rate commands.RatingCommands) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, ratings: ratings, rate: rate}
}

// @Summary List categories
// @Tags catalog
// @Produce json
// @Success 200 {array} resdto.CategoryResponse
// @Router /categories [get]
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	views, err := h.catalog.ListCategories(c.Request.Context())
	if err != nil {
		httperr.Handle(c, err, "Failed to fetch categories")
		return
	}
	res, err := resdto.FromList[resdto.CategoryResponse](views)
	if err != nil {
		httperr.Handle(c, err, "Failed to fetch categories")
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary List products
// @Description Active products, filtered and paginated
// @Tags catalog
// @Produce json
// @Param search query string false "Name substring"
// @Param category query string false "Category slug"
// @Param sort query string false "newest | price_asc | price_desc | popular"
// @Param page query int false "Page (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} resdto.ProductPageResponse
// @Router /products [get]
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	page, err := h.catalog.ListProducts(c.Request.Context(), queries.ListProductsParams{
		Search:       c.Query("search"),
		CategorySlug: c.Query("category"),
		Sort:         c.Query("sort"),
		Page:         queryInt(c, "page", 1),
		PageSize:     queryInt(c, "page_size", 0),
	})
	if err != nil {
		httperr.Handle(c, err, "Failed to fetch products")
		return
	}
	res, err := resdto.From[resdto.ProductPageResponse](page)
	if err != nil {
		httperr.Handle(c, err, "Failed to fetch products")
		return
	}
	if res.Results == nil {
		res.Results = []*resdto.ProductResponse{}
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Product suggestions
// @Description Up to 5 name matches for autocomplete
// @Tags catalog
// @Produce json
// @Param q query string false "Search term"
// @Success 200 {array} resdto.SuggestionResponse
// @Router /products/suggest [get]
func (h *CatalogHandler) Suggest(c *gin.Context) {
	term := strings.TrimSpace(c.Query("q"))
	if term == "" {
		c.JSON(http.StatusOK, []*resdto.SuggestionResponse{})
		return
	}
	views, err := h.catalog.Suggest(c.Request.Context(), term)
	if err != nil {
		httperr.Handle(c, err, "Failed to fetch suggestions")
		return
	}
	res, err := resdto.FromList[resdto.SuggestionResponse](views)
	if err != nil {
		httperr.Handle(c, err, "Failed to fetch suggestions")
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get product
// @Tags catalog
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} resdto.ProductResponse
// @Failure 404 {object} httperr.Response
// @Router /products/{id} [get]
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	view, err := h.catalog.GetProduct(c.Request.Context(), id)
	if err != nil {
		httperr.Handle(c, err, "Failed to fetch product")
		return
	}
	res, err := resdto.From[resdto.ProductResponse](view)
	if err != nil {
		httperr.Handle(c, err, "Failed to fetch product")
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary List product ratings
// @Tags ratings
// @Produce json
// @Param id path string true "Product ID"
// @Param page query int false "Page (10 per page)"
// @Success 200 {object} resdto.RatingPageResponse
// @Failure 404 {object} httperr.Response
// @Router /products/{id}/ratings [get]
func (h *CatalogHandler) ListRatings(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	page, err := h.ratings.ListByProduct(c.Request.Context(), id, queryInt(c, "page", 1))
	if err != nil {
		httperr.Handle(c, err, "Failed to fetch ratings")
		return
	}
	res, err := resdto.From[resdto.RatingPageResponse](page)
	if err != nil {
		httperr.Handle(c, err, "Failed to fetch ratings")
		return
	}
	if res.Results == nil {
		res.Results = []*resdto.RatingResponse{}
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Rate a product
// @Description 1 to 5 stars with an optional comment; recomputes the product average
// @Tags ratings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body reqdto.RateRequest true "Rating"
// @Success 201 {object} resdto.IDResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /products/{id}/ratings [post]
func (h *CatalogHandler) Rate(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthorized, "Unauthorized", nil)
		return
	}
	productID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.RateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Rating must be between 1 and 5", nil)
		return
	}

	id, err := h.rate.Rate(c.Request.Context(), userID, productID, req.ToInput())
	if err != nil {
		httperr.Handle(c, err, "Rating failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.IDResponse{ID: id.String()})
}
