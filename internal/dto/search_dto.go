package dto

import "lexdesk/internal/model"

type SearchReq struct {
	Query string `form:"q" binding:"required"`
}

type SearchResp struct {
	Projects []model.Project `json:"projects"`
	Tickets  []model.Ticket  `json:"tickets"`
	Articles []model.Article `json:"articles"`
}

type DashboardStats struct {
	Projects         int64 `json:"projects"`
	OpenTickets      int64 `json:"open_tickets"`
	MeetingsThisWeek int64 `json:"meetings_this_week"`
	UnreadCount      int64 `json:"unread_notifications"`
}
