package request

type ConfirmReservationRequest struct {
	Codigo string `json:"codigo" binding:"required,codigo"`
}

// ObterFilaEsperaRequest mirrors the obter_fila_espera RPC arguments.
type ObterFilaEsperaRequest struct {
	PItemID string `json:"p_item_id" binding:"required"`
}

// FinalizarTrocaRequest mirrors finalizar_troca_com_codigo. The code format is checked
// by the use case so a malformed code answers {sucesso:false} like a wrong one.
type FinalizarTrocaRequest struct {
	PReservaID string `json:"p_reserva_id" binding:"required"`
	PCodigo    string `json:"p_codigo" binding:"required"`
}

type ProcessExpiredRequest struct {
	BatchSize int `json:"batch_size" binding:"omitempty,gte=0"`
}

type RegisterDeviceRequest struct {
	DeviceToken string `json:"device_token" binding:"required"`
}
