package request

import "time"

type CreateOfferRequest struct {
	Subject     string `json:"subject" binding:"required"`
	Description string `json:"description"`
	HourlyRate  int64  `json:"hourly_rate" binding:"required,gt=0"`
}

type AddSlotRequest struct {
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
}
