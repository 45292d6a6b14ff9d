package dto

// ErrorResponse 统一错误返回体
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// HealthResponse 存活探针返回体
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
