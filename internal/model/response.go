package model

type ErrorResponse struct {
	Error string `json:"error"`
}

type DetailResponse struct {
	Detail string `json:"detail"`
}
