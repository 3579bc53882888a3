package summary

// DailySummary holds one employee's aggregated minutes for one local
// calendar day. Derived on demand, never persisted.
type DailySummary struct {
	EmployeeID      string `json:"employee_id"`
	Date            string `json:"date"`
	WorkMinutes     int    `json:"work_minutes"`
	BreakMinutes    int    `json:"break_minutes"`
	OvertimeMinutes int    `json:"overtime_minutes"`
}

type Totals struct {
	TotalWorkMinutes     int `json:"total_work_minutes"`
	TotalBreakMinutes    int `json:"total_break_minutes"`
	TotalOvertimeMinutes int `json:"total_overtime_minutes"`
	AverageWorkMinutes   int `json:"average_work_minutes"`
}

type Alert struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Message    string `json:"message"`
}

type RangeSummaryResponse struct {
	Daily  []DailySummary `json:"daily"`
	Totals Totals         `json:"totals"`
	Alerts []Alert        `json:"alerts"`
}
