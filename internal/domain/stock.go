package domain

import "time"

type Stock struct {
	ID          uint      `json:"id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Industry    string    `json:"industry,omitempty"`
	LastUpdated time.Time `json:"last_updated"`
}
