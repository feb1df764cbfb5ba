package utils

type statusInfo struct {
	Label string
	Color string
}

// Status lookup tables, one per entity domain. Every status stored in
// the database must have an entry here; anything else falls back to
// "Unknown"/"gray".
var statusTables = map[string]map[string]statusInfo{
	"content": {
		"draft":     {"Draft", "yellow"},
		"published": {"Published", "green"},
		"archived":  {"Archived", "blue"},
	},
	"product": {
		"active":       {"Active", "green"},
		"inactive":     {"Inactive", "yellow"},
		"discontinued": {"Discontinued", "red"},
	},
	"service": {
		"available":   {"Available", "green"},
		"unavailable": {"Unavailable", "red"},
	},
	"team": {
		"active":   {"Active", "green"},
		"inactive": {"Inactive", "red"},
		"on_leave": {"On Leave", "yellow"},
	},
	"subscription": {
		"active":    {"Active", "green"},
		"pending":   {"Pending", "yellow"},
		"expired":   {"Expired", "red"},
		"cancelled": {"Cancelled", "orange"},
	},
	"consultation": {
		"pending":   {"Pending", "yellow"},
		"contacted": {"Contacted", "blue"},
		"scheduled": {"Scheduled", "purple"},
		"completed": {"Completed", "green"},
		"cancelled": {"Cancelled", "red"},
	},
	"assessment": {
		"pending":   {"Pending", "yellow"},
		"reviewed":  {"Reviewed", "blue"},
		"contacted": {"Contacted", "purple"},
		"scheduled": {"Scheduled", "orange"},
		"completed": {"Completed", "green"},
	},
	"question": {
		"pending":  {"Pending", "yellow"},
		"reviewed": {"Reviewed", "blue"},
		"answered": {"Answered", "green"},
	},
}

func GetStatusLabel(domain, status string) string {
	if info, ok := statusTables[domain][status]; ok {
		return info.Label
	}
	return "Unknown"
}

func GetStatusColor(domain, status string) string {
	if info, ok := statusTables[domain][status]; ok {
		return info.Color
	}
	return "gray"
}

// StatusesFor lists the valid status codes of a domain, for request
// validation.
func StatusesFor(domain string) []string {
	table := statusTables[domain]
	statuses := make([]string, 0, len(table))
	for status := range table {
		statuses = append(statuses, status)
	}
	return statuses
}

func IsValidStatus(domain, status string) bool {
	_, ok := statusTables[domain][status]
	return ok
}
