package models

type ReplaceTipsResponse struct {
	Tips []string `json:"tips"`
}
