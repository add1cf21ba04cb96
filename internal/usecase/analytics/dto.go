package analytics

import (
	domainTrip "trip-expense-tracker/internal/domain/trip"
)

type SummaryResponse struct {
	TripCount       int64         `json:"tripCount"`
	TotalDistanceKM float64       `json:"totalDistanceKm"`
	TotalCost       float64       `json:"totalCost"`
	Costs           CostBreakdown `json:"costs"`
}

type CostBreakdown struct {
	Fuel    float64 `json:"fuel"`
	Parking float64 `json:"parking"`
	Toll    float64 `json:"toll"`
	Other   float64 `json:"other"`
}

type MonthlyStatResponse struct {
	Month           string  `json:"month"`
	TripCount       int64   `json:"tripCount"`
	TotalDistanceKM float64 `json:"totalDistanceKm"`
	TotalCost       float64 `json:"totalCost"`
}

type RouteStatResponse struct {
	Origin          string  `json:"origin"`
	Destination     string  `json:"destination"`
	TripCount       int64   `json:"tripCount"`
	TotalDistanceKM float64 `json:"totalDistanceKm"`
	TotalCost       float64 `json:"totalCost"`
}

func toSummaryResponse(s *domainTrip.Summary) *SummaryResponse {
	return &SummaryResponse{
		TripCount:       s.TripCount,
		TotalDistanceKM: s.TotalDistanceKM,
		TotalCost:       s.TotalCost,
		Costs: CostBreakdown{
			Fuel:    s.TotalFuelCost,
			Parking: s.TotalParkingCost,
			Toll:    s.TotalTollCost,
			Other:   s.TotalOtherCost,
		},
	}
}

func toMonthlyStatResponses(stats []*domainTrip.MonthlyStat) []*MonthlyStatResponse {
	responses := make([]*MonthlyStatResponse, len(stats))
	for i, st := range stats {
		responses[i] = &MonthlyStatResponse{
			Month:           st.Month,
			TripCount:       st.TripCount,
			TotalDistanceKM: st.TotalDistanceKM,
			TotalCost:       st.TotalCost,
		}
	}
	return responses
}

func toRouteStatResponses(stats []*domainTrip.RouteStat) []*RouteStatResponse {
	responses := make([]*RouteStatResponse, len(stats))
	for i, st := range stats {
		responses[i] = &RouteStatResponse{
			Origin:          st.Origin,
			Destination:     st.Destination,
			TripCount:       st.TripCount,
			TotalDistanceKM: st.TotalDistanceKM,
			TotalCost:       st.TotalCost,
		}
	}
	return responses
}
