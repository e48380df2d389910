package models

type ReplaceTipsRequest struct {
	Tips []string `json:"tips"`
}
