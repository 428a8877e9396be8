package dto

// ErrorResponseDTO는 공통 에러 응답 형식이다.
// Message/Hint 는 사용자에게 그대로 보여줄 수 있는 문구다.
type ErrorResponseDTO struct {
	Error   string `json:"error" example:"ollama_unreachable"`
	Message string `json:"message,omitempty" example:"Could not connect to Ollama. Is Ollama running and have you downloaded a model?"`
	Hint    string `json:"hint,omitempty" example:"Make sure Ollama is installed and run \"ollama run llama2\" in a separate terminal."`
}

type HealthResponseDTO struct {
	Status         string `json:"status" example:"ok"`
	Ollama         string `json:"ollama" example:"up"`
	Model          string `json:"model" example:"llama2"`
	ModelAvailable bool   `json:"model_available"`
	Error          string `json:"error,omitempty"`
}
