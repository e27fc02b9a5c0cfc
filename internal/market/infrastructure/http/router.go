package http

import (
	"github.com/gin-gonic/gin"
)

func NewRouter(
	auth *AuthHandler,
	orders *OrderHandler,
	items *ItemHandler,
	accounts *AccountHandler,
	authMiddleware gin.HandlerFunc,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	public := router.Group("/api/auth")
	{
		public.POST("/register", auth.Register)
		public.POST("/login", auth.Login)
	}

	api := router.Group("/api", authMiddleware)
	{
		api.POST("/orders", orders.CreateOrder)
		api.GET("/orders/purchases", orders.ListPurchases)
		api.GET("/orders/sales", orders.ListSales)
		api.GET("/orders/:"+OrderIDKey, orders.GetOrder)
		api.POST("/orders/:"+OrderIDKey+"/confirm", orders.ConfirmOrder)
		api.POST("/orders/:"+OrderIDKey+"/complete", orders.CompleteOrder)
		api.POST("/orders/:"+OrderIDKey+"/cancel", orders.CancelOrder)
		api.GET("/orders/:"+OrderIDKey+"/contacts", orders.ExchangeContacts)

		api.GET("/items", items.ListAvailableItems)
		api.POST("/items", items.PublishItem)
		api.GET("/items/:"+ItemIDKey, items.GetItem)
		api.PUT("/items/:"+ItemIDKey, items.UpdateItem)
		api.DELETE("/items/:"+ItemIDKey, items.DelistItem)
		api.GET("/sellers/:"+SellerIDKey+"/items", items.ListItemsBySeller)

		api.GET("/me", accounts.GetSummary)
		api.POST("/me/recharge", accounts.Recharge)
		api.PUT("/me/contacts", accounts.UpdateContacts)
		api.POST("/me/password", auth.ChangePassword)
		api.DELETE("/me", accounts.DeleteAccount)
		api.GET("/me/audit", accounts.ListAuditEvents)
	}

	return router
}
