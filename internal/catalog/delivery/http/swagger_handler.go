package http

// ListProducts godoc
// @Summary List products
// @Description List catalog products, optionally filtered by exact category and a case-insensitive search over name and brand
// @Tags Catalog
// @Produce json
// @Param category query string false "Category slug"
// @Param search query string false "Search text"
// @Success 200 {object} object{products=array,total=int}
// @Failure 502 {object} object{statusCode=int,statusMessage=string}
// @Router /products [get]
func (h *CatalogHandler) ListProductsDoc() {}

// GetProduct godoc
// @Summary Get product by ID
// @Description Get a single product; numeric and string ids are equivalent
// @Tags Catalog
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} object
// @Failure 404 {object} object{statusCode=int,statusMessage=string}
// @Router /products/{id} [get]
func (h *CatalogHandler) GetProductDoc() {}

// ListCategories godoc
// @Summary List categories
// @Tags Catalog
// @Produce json
// @Success 200 {object} object{categories=array}
// @Failure 502 {object} object{statusCode=int,statusMessage=string}
// @Router /categories [get]
func (h *CatalogHandler) ListCategoriesDoc() {}
