package http

// List godoc
// @Summary List favorites
// @Tags Favorites
// @Produce json
// @Param X-Session-ID header string false "Anonymous session id"
// @Success 200 {object} object{success=bool,data=object{ids=array,count=int}}
// @Router /favorites [get]
func (h *FavoritesHandler) ListDoc() {}

// Toggle godoc
// @Summary Toggle favorite
// @Description Adds the product when absent, removes it when present
// @Tags Favorites
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} object{success=bool,data=object{ids=array,count=int,productId=string,isFavorite=bool}}
// @Router /favorites/{id}/toggle [post]
func (h *FavoritesHandler) ToggleDoc() {}

// Add godoc
// @Summary Add favorite
// @Tags Favorites
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Router /favorites/{id} [put]
func (h *FavoritesHandler) AddDoc() {}

// Remove godoc
// @Summary Remove favorite
// @Tags Favorites
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Router /favorites/{id} [delete]
func (h *FavoritesHandler) RemoveDoc() {}

// IsFavorite godoc
// @Summary Check favorite
// @Tags Favorites
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} object{success=bool,data=object{productId=string,isFavorite=bool}}
// @Router /favorites/{id} [get]
func (h *FavoritesHandler) IsFavoriteDoc() {}

// Clear godoc
// @Summary Clear favorites
// @Tags Favorites
// @Produce json
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Router /favorites [delete]
func (h *FavoritesHandler) ClearDoc() {}
