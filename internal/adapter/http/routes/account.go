package routes

import (
	"giramae/internal/adapter/http/handlers"
	"giramae/internal/adapter/ws"

	"github.com/gin-gonic/gin"
)

const (
	PathGoals         = "/goals"
	PathWallet        = "/wallet"
	PathPurchases     = "/girinhas/purchases"
	PathNotifications = "/notifications"
	PathRealtime      = "/realtime"
)

func addAccountRoutes(rg *gin.RouterGroup, goalHandler *handlers.GoalHandler, walletHandler *handlers.WalletHandler, purchaseHandler *handlers.GirinhaPurchaseHandler, notificationHandler *handlers.NotificationHandler, hub *ws.Hub) {
	rg.GET(PathGoals, goalHandler.GetBoard)

	wallet := rg.Group(PathWallet)
	{
		wallet.GET("", walletHandler.GetWallet)
		wallet.GET("/transactions", walletHandler.ListTransactions)
	}

	purchases := rg.Group(PathPurchases)
	{
		purchases.POST("", purchaseHandler.Create)
		purchases.GET("", purchaseHandler.List)
		purchases.GET("/:purchase_id", purchaseHandler.GetByID)
	}

	rg.POST(PathNotifications+"/devices", notificationHandler.RegisterDevice)
	rg.GET(PathRealtime, hub.ServeWS)
}
