package response

import (
	"time"

	"eventora/internal/usecase/queries"
)

const dateLayout = "2006-01-02"

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

func unixPtr(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	u := t.Unix()
	return &u
}

type RequestListItemResponse struct {
	ID            string   `json:"id"`
	ClientID      string   `json:"client_id"`
	ClientName    string   `json:"client_name"`
	ProviderID    string   `json:"provider_id"`
	ProviderName  string   `json:"provider_name"`
	EventDate     string   `json:"event_date"`
	EventType     string   `json:"event_type"`
	Status        string   `json:"status"`
	ResponsePrice *float64 `json:"response_price,omitempty"`
	SentAt        int64    `json:"sent_at"`
	RespondedAt   *int64   `json:"responded_at,omitempty"`
}

func FromRequestList(items []queries.RequestListItem) []RequestListItemResponse {
	res := make([]RequestListItemResponse, len(items))
	for i, it := range items {
		res[i] = RequestListItemResponse{
			ID:            it.ID.String(),
			ClientID:      it.ClientID.String(),
			ClientName:    it.ClientName,
			ProviderID:    it.ProviderID.String(),
			ProviderName:  it.ProviderName,
			EventDate:     it.EventDate.Format(dateLayout),
			EventType:     it.EventType,
			Status:        it.Status,
			ResponsePrice: it.ResponsePrice,
			SentAt:        it.SentAt.Unix(),
			RespondedAt:   unixPtr(it.RespondedAt),
		}
	}
	return res
}

type ProposalResponse struct {
	Message       string  `json:"message"`
	Price         float64 `json:"price"`
	Details       *string `json:"details,omitempty"`
	AvailableDate *string `json:"available_date,omitempty"`
}

type RequestedServiceResponse struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type RequestDetailResponse struct {
	ID             string                     `json:"id"`
	ClientID       string                     `json:"client_id"`
	ClientName     string                     `json:"client_name"`
	ProviderID     string                     `json:"provider_id"`
	ProviderName   string                     `json:"provider_name"`
	EventDate      string                     `json:"event_date"`
	GuestCount     *int32                     `json:"guest_count,omitempty"`
	EventType      string                     `json:"event_type"`
	BudgetEstimate *float64                   `json:"budget_estimate,omitempty"`
	Description    *string                    `json:"description,omitempty"`
	Status         string                     `json:"status"`
	Response       *ProposalResponse          `json:"response,omitempty"`
	Services       []RequestedServiceResponse `json:"services"`
	SentAt         int64                      `json:"sent_at"`
	RespondedAt    *int64                     `json:"responded_at,omitempty"`
	AcceptedAt     *int64                     `json:"accepted_at,omitempty"`
}

func FromRequestDetail(d *queries.RequestDetail) *RequestDetailResponse {
	services := make([]RequestedServiceResponse, len(d.Services))
	for i, svc := range d.Services {
		services[i] = RequestedServiceResponse{
			ID:    svc.ID.String(),
			Name:  svc.Name,
			Price: svc.Price,
		}
	}

	resp := &RequestDetailResponse{
		ID:             d.ID.String(),
		ClientID:       d.ClientID.String(),
		ClientName:     d.ClientName,
		ProviderID:     d.ProviderID.String(),
		ProviderName:   d.ProviderName,
		EventDate:      d.EventDate.Format(dateLayout),
		GuestCount:     d.GuestCount,
		EventType:      d.EventType,
		BudgetEstimate: d.BudgetEstimate,
		Description:    d.Description,
		Status:         d.Status,
		Services:       services,
		SentAt:         d.SentAt.Unix(),
		RespondedAt:    unixPtr(d.RespondedAt),
		AcceptedAt:     unixPtr(d.AcceptedAt),
	}
	if d.Response != nil {
		resp.Response = &ProposalResponse{
			Message:       d.Response.Message,
			Price:         d.Response.Price,
			Details:       d.Response.Details,
			AvailableDate: formatDatePtr(d.Response.AvailableDate),
		}
	}
	return resp
}

type RequestStatsResponse struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Answered int `json:"answered"`
	Accepted int `json:"accepted"`
	Rejected int `json:"rejected"`
	Canceled int `json:"canceled"`
}

func FromRequestStats(s queries.RequestStats) RequestStatsResponse {
	return RequestStatsResponse(s)
}
