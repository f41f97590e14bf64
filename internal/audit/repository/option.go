package repository

import "time"

type CreateAuditLogOptions struct {
	Timestamp      time.Time
	Endpoint       string
	Method         string
	LatencyMs      float64
	RequestData    string
	ResponseStatus int
	UserMessage    string
}
