package models

// Categories
const (
	CategoryUncategorized = "Uncategorized"
)

// File permissions
const (
	PermissionConfigFile = 0600
	PermissionDirectory  = 0750
	PermissionReportFile = 0644
)
