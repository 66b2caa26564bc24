package models

type TicketStats struct {
	Total  int `json:"total"`
	Used   int `json:"used"`
	Unused int `json:"unused"`
}

type TypeBreakdown struct {
	VIP      int `json:"vip"`
	Premium  int `json:"premium"`
	Standard int `json:"standard"`
}
