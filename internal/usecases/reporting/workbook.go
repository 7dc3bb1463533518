package reporting

import (
	"github.com/360EntSecGroup-Skylar/excelize/v2"
	"github.com/pkg/errors"
	"github.com/vfg2006/food-delivery-analytics/internal/domain"
)

const (
	SummarySheet     = "Resumo"
	SegmentsSheet    = "Segmentos"
	RestaurantsSheet = "Restaurantes"
	ForecastSheet    = "Previsao"

	defaultSheet = "Sheet1"
)

// writeWorkbook monta a pasta XLSX com os indicadores e os insights na
// primeira aba e as tabelas de segmentos, restaurantes e previsão nas demais
func writeWorkbook(path string, s *domain.Snapshot) error {
	f := excelize.NewFile()

	sheets := []struct {
		name   string
		header []interface{}
		rows   [][]interface{}
	}{
		{name: SummarySheet, header: []interface{}{"indicador", "valor"}, rows: summaryRows(s)},
		{name: SegmentsSheet, header: []interface{}{"segment_name", "customers", "mean_total_spent", "total_spent", "mean_order_frequency", "mean_order_value"}, rows: segmentRows(s)},
		{name: RestaurantsSheet, header: []interface{}{"position", "restaurant_name", "city", "cuisine_type", "total_orders", "total_revenue", "revenue_per_customer"}, rows: restaurantRows(s)},
		{name: ForecastSheet, header: []interface{}{"order_date", "predicted_revenue", "days_since_start"}, rows: forecastRows(s)},
	}

	for i, sheet := range sheets {
		index := f.NewSheet(sheet.name)
		if i == 0 {
			f.SetActiveSheet(index)
		}

		if err := setRow(f, sheet.name, 1, sheet.header); err != nil {
			return err
		}
		for r, row := range sheet.rows {
			if err := setRow(f, sheet.name, r+2, row); err != nil {
				return err
			}
		}
	}
	f.DeleteSheet(defaultSheet)

	if err := f.SaveAs(path); err != nil {
		return errors.Wrapf(err, "erro ao salvar %s", path)
	}

	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return errors.Wrap(err, "erro ao calcular célula")
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return errors.Wrapf(err, "erro ao escrever linha %d da aba %s", row, sheet)
	}
	return nil
}

func summaryRows(s *domain.Snapshot) [][]interface{} {
	rows := make([][]interface{}, 0, 8+len(s.Insights))
	rows = append(rows, []interface{}{"session_id", s.SessionID})

	if s.Operations != nil {
		kpis := s.Operations.KPIs
		rows = append(rows,
			[]interface{}{"total_revenue", kpis.TotalRevenue},
			[]interface{}{"total_orders", kpis.TotalOrders},
			[]interface{}{"active_customers", kpis.ActiveCustomers},
			[]interface{}{"avg_order_value", kpis.AvgOrderValue},
		)
	}
	if s.Forecast != nil {
		rows = append(rows,
			[]interface{}{"forecast_method", s.Forecast.Method},
			[]interface{}{"forecast_r_squared", s.Forecast.RSquared},
		)
	}
	if s.Segmentation != nil && s.Segmentation.Silhouette != nil {
		rows = append(rows, []interface{}{"silhouette", *s.Segmentation.Silhouette})
	}
	for _, insight := range s.Insights {
		rows = append(rows, []interface{}{"insight", insight})
	}

	return rows
}

func segmentRows(s *domain.Snapshot) [][]interface{} {
	if s.Segmentation == nil {
		return nil
	}
	rows := make([][]interface{}, 0, len(s.Segmentation.Summary))
	for _, seg := range s.Segmentation.Summary {
		rows = append(rows, []interface{}{
			seg.SegmentName, seg.Customers, seg.MeanTotalSpent, seg.TotalSpent, seg.MeanOrderFrequency, seg.MeanOrderValue,
		})
	}
	return rows
}

func restaurantRows(s *domain.Snapshot) [][]interface{} {
	rows := make([][]interface{}, 0, len(s.RestaurantPerformance))
	for _, r := range s.RestaurantPerformance {
		rows = append(rows, []interface{}{
			r.Position, r.RestaurantName, r.City, r.CuisineType, r.TotalOrders, r.TotalRevenue, r.RevenuePerCustomer,
		})
	}
	return rows
}

func forecastRows(s *domain.Snapshot) [][]interface{} {
	if s.Forecast == nil {
		return nil
	}
	rows := make([][]interface{}, 0, len(s.Forecast.Forecast))
	for _, p := range s.Forecast.Forecast {
		rows = append(rows, []interface{}{p.OrderDate.String(), p.PredictedRevenue, p.DaysSinceStart})
	}
	return rows
}
