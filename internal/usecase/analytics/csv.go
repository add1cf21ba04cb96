package analytics

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"

	domainTrip "trip-expense-tracker/internal/domain/trip"

	"github.com/google/uuid"
)

var csvHeader = []string{
	"date", "origin", "destination", "distance_km",
	"fuel_cost", "parking_cost", "toll_cost", "other_cost", "total_cost",
}

// ExportCSV streams all of the user's trips as CSV rows, newest first.
func (s *Service) ExportCSV(ctx context.Context, userID uuid.UUID, w io.Writer) error {
	trips, _, err := s.tripRepo.GetByUser(ctx, userID, domainTrip.Filter{})
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, t := range trips {
		record := []string{
			t.TripDate.Format("2006-01-02"),
			t.Origin,
			t.Destination,
			formatAmount(t.DistanceKM),
			formatAmount(t.FuelCost),
			formatAmount(t.ParkingCost),
			formatAmount(t.TollCost),
			formatAmount(t.OtherCost),
			formatAmount(t.TotalCost()),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
