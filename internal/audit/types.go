package audit

// RecordInput describes one handled HTTP request.
type RecordInput struct {
	Endpoint       string
	Method         string
	LatencyMs      float64
	RequestData    string
	ResponseStatus int
	UserMessage    string
}
