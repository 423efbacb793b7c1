package model

type ErrorDTO struct {
	Error string `json:"error"`
}

type HealthDTO struct {
	Status string `json:"status"`
}

type DeletedRoleDTO struct {
	Deleted Role `json:"deleted"`
}

type SummaryPercentDTO struct {
	Sleep   int `json:"sleep"`
	Buffer  int `json:"buffer"`
	Tracked int `json:"tracked"`
	Other   int `json:"other"`
}

type TodayDTO struct {
	Log            *DayLog           `json:"log"`
	OtherMinutes   int               `json:"otherMinutes"`
	SummaryPercent SummaryPercentDTO `json:"summaryPercent"`
}

type AppendSegmentResponseDTO struct {
	OK           bool    `json:"ok"`
	Log          *DayLog `json:"log"`
	OtherMinutes int     `json:"otherMinutes"`
}
