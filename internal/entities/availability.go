package entities

// AvailabilityReport answers a check_availability call. SuggestedTimes always
// contains the requested time first, followed by up to two nearby offsets; the
// offsets are a best-effort hint and are not checked against the ledger.
type AvailabilityReport struct {
	Resource       string   `json:"resource"`
	Category       string   `json:"category"`
	Date           string   `json:"date"`
	RequestedTime  string   `json:"requested_time"`
	Available      bool     `json:"available"`
	SuggestedTimes []string `json:"suggested_times"`
}
