package dto

import "strconv"

// Table is a report result set projected to strings for export. The header
// names the columns in row order.
type Table struct {
	Name   string
	Header []string
	Rows   [][]string
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func (s SalesSummary) Table() Table {
	return Table{
		Name:   "sales_summary",
		Header: []string{"total_revenue", "total_items"},
		Rows:   [][]string{{money(s.TotalRevenue), strconv.Itoa(s.TotalItems)}},
	}
}

func TrendTable(points []TrendPoint) Table {
	rows := make([][]string, len(points))
	for i, p := range points {
		rows[i] = []string{p.Date, money(p.Total)}
	}
	return Table{Name: "sales_trend", Header: []string{"date", "total"}, Rows: rows}
}

func ProductRankTable(ranks []ProductRank) Table {
	rows := make([][]string, len(ranks))
	for i, r := range ranks {
		rows[i] = []string{r.Name, strconv.Itoa(r.UnitsSold), money(r.Revenue)}
	}
	return Table{Name: "top_products", Header: []string{"product", "units_sold", "revenue"}, Rows: rows}
}

func CategoryTable(totals []CategoryTotal) Table {
	rows := make([][]string, len(totals))
	for i, c := range totals {
		rows[i] = []string{c.Category, money(c.Total)}
	}
	return Table{Name: "category_sales", Header: []string{"category", "total"}, Rows: rows}
}

func StaffTable(perf []StaffPerformance) Table {
	rows := make([][]string, len(perf))
	for i, p := range perf {
		rows[i] = []string{p.Name, money(p.Revenue), strconv.Itoa(p.ItemsSold)}
	}
	return Table{Name: "staff_performance", Header: []string{"staff", "revenue", "items_sold"}, Rows: rows}
}

func BucketTable(name string, buckets []BucketTotal) Table {
	rows := make([][]string, len(buckets))
	for i, b := range buckets {
		rows[i] = []string{b.Bucket, money(b.Total)}
	}
	return Table{Name: name, Header: []string{"bucket", "total"}, Rows: rows}
}
