package api

// ErrorResponse 全域錯誤響應模型
// swagger:model api.ErrorResponse
type ErrorResponse struct {
	// message 錯誤描述
	Message string `json:"message"`
}

// MessageResponse 一般訊息響應模型
// swagger:model api.MessageResponse
type MessageResponse struct {
	Message string `json:"message"`
}
