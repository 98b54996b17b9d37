package domain

type ROIInput struct {
	MonthlyRevenue  float64 `json:"monthlyRevenue"`
	AutomationHours float64 `json:"automationHours"`
	HourlyRate      float64 `json:"hourlyRate"`
}

// ROIResult is derived from an ROIInput on every request and never stored.
// PaybackAvailable is false when revenue is positive but the automation
// saves nothing, so the payback period has no finite value.
type ROIResult struct {
	MonthlySavings   float64 `json:"monthlySavings"`
	AnnualSavings    float64 `json:"annualSavings"`
	ROI              float64 `json:"roi"`
	PaybackMonths    float64 `json:"paybackMonths"`
	PaybackAvailable bool    `json:"paybackAvailable"`
}

// ROIRequest is the JSON body accepted by the ROI API. Fields keep the raw
// client text so the same coercion applies as for the HTML form.
type ROIRequest struct {
	MonthlyRevenue  RawNumber `json:"monthlyRevenue"`
	AutomationHours RawNumber `json:"automationHours"`
	HourlyRate      RawNumber `json:"hourlyRate"`
}
