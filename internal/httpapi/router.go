package httpapi

import (
	"github.com/gin-gonic/gin"
)

type RouterConfig struct {
	Cart        CartService
	Orders      OrderService
	Books       BookCatalog
	Recommender Recommender
	Limiter     Limiter
	JWTSecret   []byte
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	cartHandler := NewCartHandler(cfg.Cart)
	orderHandler := NewOrderHandler(cfg.Orders)
	bookHandler := NewBookHandler(cfg.Books)
	recommendHandler := NewRecommendHandler(cfg.Recommender, cfg.Limiter)

	api := r.Group("/api")
	{
		api.GET("/books", bookHandler.ListBooks)
		api.GET("/books/:id", bookHandler.GetBook)
		api.GET("/books/:id/recommendations", recommendHandler.Recommend)

		authed := api.Group("/")
		authed.Use(RequireIdentity(cfg.JWTSecret))
		{
			authed.GET("/cart", cartHandler.GetCart)
			authed.POST("/cart/items", cartHandler.AddItem)
			authed.PUT("/cart/items/:bookId", cartHandler.SetQuantity)
			authed.DELETE("/cart/items/:bookId", cartHandler.RemoveItem)

			authed.POST("/orders", orderHandler.Checkout)
			authed.GET("/orders", orderHandler.ListUserOrders)
			authed.GET("/orders/:id", orderHandler.GetUserOrder)

			admin := authed.Group("/admin")
			admin.Use(RequireAdmin())
			{
				admin.POST("/books", bookHandler.CreateBook)
				admin.PUT("/books/:id", bookHandler.UpdateBook)
				admin.DELETE("/books/:id", bookHandler.DeleteBook)

				admin.GET("/orders", orderHandler.ListOrders)
				admin.GET("/orders/:id", orderHandler.GetOrder)
				admin.PUT("/orders/:id/status", orderHandler.SetStatus)
			}
		}
	}

	return r
}
