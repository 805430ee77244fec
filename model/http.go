package model

type ChordRequestBody struct {
	Root      string `json:"root"`
	Size      int    `json:"size"`
	Unit      string `json:"unit"`
	Inversion int    `json:"inversion"`
	Mode      string `json:"mode"`
	Folds     []int  `json:"folds"`
}

type ChordResponse struct {
	Unit      string   `json:"unit"`
	Size      int      `json:"size"`
	Inversion int      `json:"inversion"`
	Mode      string   `json:"mode"`
	Base      []string `json:"base"`
	Current   []string `json:"current"`
	Keys      []int    `json:"keys"`
	Span      int      `json:"span"`
}

type ErrorResponse struct {
	Error string    `json:"detail"`
	Code  ErrorCode `json:"code,omitempty"`
}
