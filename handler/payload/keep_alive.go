package payload

// KeepAliveResponse is what /ping and /ping-db answer with.
type KeepAliveResponse struct {
	Message  string `json:"message"`
	DateTime string `json:"date_time"`
}
