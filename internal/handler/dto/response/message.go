package response

import (
	"eventora/internal/usecase/queries"
)

type MessageResponse struct {
	ID         string `json:"id"`
	RequestID  string `json:"request_id"`
	SenderID   string `json:"sender_id"`
	SenderRole string `json:"sender_role"`
	SenderName string `json:"sender_name"`
	Content    string `json:"content"`
	SentAt     int64  `json:"sent_at"`
	Read       bool   `json:"read"`
	ReadAt     *int64 `json:"read_at,omitempty"`
}

func FromMessages(items []queries.MessageView) []MessageResponse {
	res := make([]MessageResponse, len(items))
	for i, m := range items {
		res[i] = MessageResponse{
			ID:         m.ID.String(),
			RequestID:  m.RequestID.String(),
			SenderID:   m.SenderID.String(),
			SenderRole: m.SenderRole,
			SenderName: m.SenderName,
			Content:    m.Content,
			SentAt:     m.SentAt.Unix(),
			Read:       m.Read,
			ReadAt:     unixPtr(m.ReadAt),
		}
	}
	return res
}

type ConversationResponse struct {
	RequestID       string `json:"request_id"`
	CounterpartID   string `json:"counterpart_id"`
	CounterpartName string `json:"counterpart_name"`
	RequestStatus   string `json:"request_status"`
	LastMessage     string `json:"last_message"`
	LastSentAt      int64  `json:"last_sent_at"`
	UnreadCount     int    `json:"unread_count"`
}

func FromConversations(items []queries.ConversationView) []ConversationResponse {
	res := make([]ConversationResponse, len(items))
	for i, cv := range items {
		res[i] = ConversationResponse{
			RequestID:       cv.RequestID.String(),
			CounterpartID:   cv.CounterpartID.String(),
			CounterpartName: cv.CounterpartName,
			RequestStatus:   cv.RequestStatus,
			LastMessage:     cv.LastMessage,
			LastSentAt:      cv.LastSentAt.Unix(),
			UnreadCount:     cv.UnreadCount,
		}
	}
	return res
}
