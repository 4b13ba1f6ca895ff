package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"mkt-merchant-api/internal/constant"
	"mkt-merchant-api/internal/platform"
	"mkt-merchant-api/internal/service"
)

// ShopHandler is the storefront-facing surface: a single computed field
// resolving a product to its owning merchant's public contact info.
type ShopHandler struct {
	products *platform.ProductService
	svc      *service.MerchantService
}

func NewShopHandler() *ShopHandler {
	return &ShopHandler{
		products: platform.NewProductService(),
		svc:      service.NewMerchantService(),
	}
}

// Merchant resolves a product's owning merchant. Null data means the product
// only lives in the default channel, or the owning merchant is gone.
func (h *ShopHandler) Merchant(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(400, gin.H{"code": constant.CodeBadRequest, "msg": "invalid product id"})
		return
	}
	channels, err := h.products.GetProductChannels(productID)
	if err != nil {
		c.JSON(500, gin.H{"code": constant.CodeDatabaseError, "msg": err.Error()})
		return
	}
	vo, err := h.svc.PublicProfileForProduct(channels)
	if err != nil {
		c.JSON(500, gin.H{"code": constant.CodeDatabaseError, "msg": err.Error()})
		return
	}
	if vo == nil {
		c.JSON(200, gin.H{"code": constant.CodeSuccess, "data": nil})
		return
	}
	c.JSON(200, gin.H{"code": constant.CodeSuccess, "data": vo})
}
