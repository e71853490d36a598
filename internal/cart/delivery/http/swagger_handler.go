package http

// GetCart godoc
// @Summary Get cart
// @Description Returns the session cart with totals
// @Tags Cart
// @Produce json
// @Param X-Session-ID header string false "Anonymous session id"
// @Success 200 {object} object{success=bool,data=object{items=array,totalItems=int,totalPrice=number,totalSavings=number}}
// @Router /cart [get]
func (h *CartHandler) GetCartDoc() {}

// AddItem godoc
// @Summary Add item
// @Description Adds a catalog product; adding an existing product increments its quantity
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body object{productId=string,quantity=int} true "Item"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /cart/items [post]
func (h *CartHandler) AddItemDoc() {}

// UpdateQuantity godoc
// @Summary Update quantity
// @Description Sets the quantity of a line; zero or less removes it, unknown products are ignored
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body object{quantity=int} true "Quantity"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /cart/items/{id} [patch]
func (h *CartHandler) UpdateQuantityDoc() {}

// RemoveItem godoc
// @Summary Remove item
// @Tags Cart
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Router /cart/items/{id} [delete]
func (h *CartHandler) RemoveItemDoc() {}

// IsInCart godoc
// @Summary Check cart membership
// @Tags Cart
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} object{success=bool,data=object{productId=string,inCart=bool}}
// @Router /cart/items/{id} [get]
func (h *CartHandler) IsInCartDoc() {}

// ClearCart godoc
// @Summary Clear cart
// @Tags Cart
// @Produce json
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Router /cart [delete]
func (h *CartHandler) ClearCartDoc() {}
