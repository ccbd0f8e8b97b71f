package handler

import (
	usecase "github.com/renttrack/renttrack/usecase/rentcheck"
)

type RentCheckHandler struct {
	Usecase usecase.RentCheckUsecase
}

func NewRentCheckHandler(uc usecase.RentCheckUsecase) *RentCheckHandler {
	return &RentCheckHandler{Usecase: uc}
}

type APIResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}
