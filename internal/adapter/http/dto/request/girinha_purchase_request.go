package request

import "encoding/json"

// GirinhaPurchaseCreateRequest is the payload for buying Girinhas.
//
// `mp_payload` is forwarded as-is (raw JSON) to support varying Mercado Pago schemas;
// amount, description and external reference are filled in by the service.

type GirinhaPurchaseCreateRequest struct {
	Quantidade int             `json:"quantidade" binding:"required,gt=0"`
	MPPayload  json.RawMessage `json:"mp_payload"`
}
