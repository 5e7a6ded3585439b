package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/gourmet-pos/services"
	"github.com/yeremiapane/gourmet-pos/utils"
)

// respondServiceError memetakan error bertipe dari services ke status HTTP.
// Pesan error bisnis (stok kurang, PO sudah diterima) diteruskan apa adanya
// ke client; error lain dianggap kegagalan store.
func respondServiceError(c *gin.Context, err error) {
	var productNotFound *services.ProductNotFoundError
	var insufficient *services.InsufficientStockError

	switch {
	case errors.Is(err, services.ErrEmptyCart),
		errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrIncompletePO),
		errors.Is(err, services.ErrInvalidTransition):
		utils.RespondError(c, http.StatusBadRequest, err)
	case errors.As(err, &productNotFound),
		errors.Is(err, services.ErrIngredientNotFound),
		errors.Is(err, services.ErrSupplierNotFound),
		errors.Is(err, services.ErrPONotFound):
		utils.RespondError(c, http.StatusNotFound, err)
	case errors.As(err, &insufficient):
		utils.RespondError(c, http.StatusUnprocessableEntity, err)
	case errors.Is(err, services.ErrAlreadyReceived):
		utils.RespondError(c, http.StatusConflict, err)
	default:
		utils.RespondError(c, http.StatusInternalServerError, err)
	}
}
