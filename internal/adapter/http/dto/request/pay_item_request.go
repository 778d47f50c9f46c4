package request

import "encoding/json"

// PayItemRequest is the payload for collecting a payment item.
//
// `mp_payload` is forwarded as raw JSON so the Mercado Pago card/pix schemas can
// vary; amount, reference and description are overwritten by the service.

type PayItemRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
