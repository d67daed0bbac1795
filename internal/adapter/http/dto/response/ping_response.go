package response

type PingResponse struct {
	Message string `json:"message" example:"pong"`
}
