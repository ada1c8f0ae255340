package stream

// Demo row data for the named table presets. Row shapes match the preset
// columns in config; truncation to MaxTableRows happens once at
// data-preparation time.
func sampleRows(tableType string) [][]any {
	switch tableType {
	case "users":
		return [][]any{
			{"alice_j", "alice@example.com", "Admin", "Active"},
			{"bob_smith", "bob@example.com", "User", "Active"},
			{"carlos_r", "carlos@example.com", "Manager", "Active"},
			{"diana_c", "diana@example.com", "User", "Inactive"},
			{"ethan_b", "ethan@example.com", "User", "Active"},
		}
	case "products":
		return [][]any{
			{"Laptop Pro", "Electronics", 1299.99, 45},
			{"Desk Chair", "Furniture", 249.99, 120},
			{"Coffee Maker", "Appliances", 89.99, 78},
			{"Monitor 27\"", "Electronics", 399.99, 32},
			{"Standing Desk", "Furniture", 549.99, 15},
		}
	default: // sales
		return [][]any{
			{"Alice Johnson", 12500, "North America"},
			{"Bob Smith", 23400, "Europe"},
			{"Carlos Rodriguez", 34500, "Latin America"},
			{"Diana Chen", 18900, "Asia Pacific"},
			{"Ethan Brown", 29200, "North America"},
		}
	}
}
