package routes

import (
	"giramae/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathItems        = "/items"
	PathReservations = "/reservations"
	PathQueues       = "/queues"
	PathRPC          = "/rpc"
)

func addMarketplaceRoutes(rg *gin.RouterGroup, itemHandler *handlers.ItemHandler, reservationHandler *handlers.ReservationHandler, queueHandler *handlers.QueueHandler) {
	items := rg.Group(PathItems)
	{
		items.POST("", itemHandler.Publish)
		items.GET("/:item_id", itemHandler.GetByID)
		items.POST("/:item_id/reservations", reservationHandler.RequestItem)
		items.GET("/:item_id/queue", queueHandler.GetQueueInfo)
		items.DELETE("/:item_id/queue", reservationHandler.LeaveQueue)
	}

	reservations := rg.Group(PathReservations)
	{
		reservations.POST("/:reservation_id/confirm", reservationHandler.Confirm)
		reservations.POST("/:reservation_id/cancel", reservationHandler.Cancel)
	}

	rg.GET(PathQueues, queueHandler.GetQueueInfoBatch)
}

// addRPCRoutes keeps the function names the web client already calls. The sweep is
// reserved to backend jobs.
func addRPCRoutes(rg *gin.RouterGroup, auth, serviceKey gin.HandlerFunc, rpcHandler *handlers.RPCHandler) {
	rpc := rg.Group(PathRPC)
	{
		rpc.POST("/obter_fila_espera", auth, rpcHandler.ObterFilaEspera)
		rpc.POST("/finalizar_troca_com_codigo", auth, rpcHandler.FinalizarTrocaComCodigo)
		rpc.POST("/processar_reservas_expiradas_batch", serviceKey, rpcHandler.ProcessarReservasExpiradasBatch)
	}
}
