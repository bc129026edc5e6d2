package models

const (
	MonthTagCurrent = "current"
	MonthTagDue     = "due"
	MonthTagAdvance = "advance"
)

// MonthStatus is one entry of the per-member deposit calendar: a month
// in the reporting window together with its payment tag. Paid months
// are omitted from the projection entirely; months where every deposit
// was rejected carry Rejected=true instead.
type MonthStatus struct {
	Month    string `json:"month"`
	Tag      string `json:"tag"`
	Rejected bool   `json:"rejected,omitempty"`
}
