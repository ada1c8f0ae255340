package config

// defaultTableColumnPresets returns the named column sets for demo tables.
func defaultTableColumnPresets() map[string][]string {
	return map[string][]string{
		"sales":    {"Name", "Sales", "Region"},
		"users":    {"Username", "Email", "Role", "Status"},
		"products": {"Product", "Category", "Price", "Stock"},
	}
}

// defaultChartPresetsRaw returns chart presets in the loosely typed form
// viper expects for SetDefault. Keys here must stay in sync with the
// fallback order used by chart preset resolution.
func defaultChartPresetsRaw() map[string]map[string]any {
	return map[string]map[string]any{
		"sales_line": {
			"chartType":   "line",
			"title":       "Sales Trend",
			"xAxis":       []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"},
			"seriesLabel": "Sales",
			"values":      []float64{1000, 1200, 1500, 1400, 1800, 2100},
		},
		"revenue_bar": {
			"chartType":   "bar",
			"title":       "Revenue by Region",
			"xAxis":       []string{"North America", "Europe", "Asia Pacific", "Latin America"},
			"seriesLabel": "Revenue",
			"values":      []float64{12500, 23400, 18900, 34500},
		},
		"growth_line": {
			"chartType":   "line",
			"title":       "User Growth",
			"xAxis":       []string{"Q1", "Q2", "Q3", "Q4"},
			"seriesLabel": "Users",
			"values":      []float64{340, 520, 810, 1260},
		},
		"performance_bar": {
			"chartType":   "bar",
			"title":       "Team Performance",
			"xAxis":       []string{"Alpha", "Beta", "Gamma", "Delta"},
			"seriesLabel": "Score",
			"values":      []float64{87, 92, 78, 95},
		},
	}
}
