package request

import (
	"time"
)

const dateLayout = "2006-01-02"

// BlockDatesRequest blocks one or more days with an optional reason.
type BlockDatesRequest struct {
	Dates  []string `json:"dates" binding:"required,min=1,dive,required"`
	Reason *string  `json:"reason" binding:"omitempty,max=200"`
}

type UnblockDatesRequest struct {
	Dates []string `json:"dates" binding:"required,min=1,dive,required"`
}

func ParseDates(raw []string) ([]time.Time, error) {
	dates := make([]time.Time, 0, len(raw))
	for _, s := range raw {
		d, err := time.Parse(dateLayout, s)
		if err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}
	return dates, nil
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}
