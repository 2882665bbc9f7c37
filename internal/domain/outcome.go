package domain

import "time"

// CallOutcome is the classified result of one device creation call.
type CallOutcome struct {
	Row         int
	Record      DeviceRecord
	Status      OutcomeStatus
	StatusCode  int
	BodySnippet string
	Cause       error
	Duration    time.Duration
}

func Success(row int, record DeviceRecord, statusCode int) CallOutcome {
	return CallOutcome{Row: row, Record: record, Status: OutcomeSuccess, StatusCode: statusCode}
}

func Rejected(row int, record DeviceRecord, statusCode int, bodySnippet string) CallOutcome {
	return CallOutcome{
		Row:         row,
		Record:      record,
		Status:      OutcomeRejected,
		StatusCode:  statusCode,
		BodySnippet: bodySnippet,
	}
}

func TransportError(row int, record DeviceRecord, cause error) CallOutcome {
	return CallOutcome{Row: row, Record: record, Status: OutcomeTransportError, Cause: cause}
}

// Detail returns the diagnostic text kept for failed outcomes.
func (o *CallOutcome) Detail() string {
	switch o.Status {
	case OutcomeRejected:
		return o.BodySnippet
	case OutcomeTransportError:
		if o.Cause != nil {
			return o.Cause.Error()
		}
	}

	return ""
}

// OutcomeEntry is a persisted outcome as exposed by the query API.
type OutcomeEntry struct {
	BatchID     string        `db:"batch_id"     json:"batch_id"`
	Position    int           `db:"position"     json:"position"`
	Row         int           `db:"row_number"   json:"row"`
	DisplayName string        `db:"display_name" json:"display_name"`
	IPAddress   string        `db:"ip_address"   json:"ip_address"`
	Location    string        `db:"location"     json:"location"`
	Description string        `db:"description"  json:"description"`
	Department  string        `db:"department"   json:"department"`
	Contact     string        `db:"contact"      json:"contact"`
	Status      OutcomeStatus `db:"status"       json:"status"`
	StatusCode  int           `db:"status_code"  json:"status_code"`
	Detail      string        `db:"detail"       json:"detail,omitempty"`
}
