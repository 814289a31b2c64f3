package persistence

import (
	"strings"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "DESC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField validates the sort field against a whitelist of allowed
// fields. Returns the defaultField if the input is invalid, empty, or not
// in the whitelist.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// SupplierSortFields contains allowed sort fields for suppliers
var SupplierSortFields = map[string]bool{
	"id":           true,
	"created_at":   true,
	"updated_at":   true,
	"name":         true,
	"scale_number": true,
}

// ProductSortFields contains allowed sort fields for products
var ProductSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"name":       true,
	"base_price": true,
}

// PurchaseSortFields contains allowed sort fields for purchases
var PurchaseSortFields = map[string]bool{
	"id":              true,
	"created_at":      true,
	"updated_at":      true,
	"date":            true,
	"supplier_id":     true,
	"status":          true,
	"total":           true,
	"abatement_value": true,
}

// LedgerEntrySortFields contains allowed sort fields for ledger entries
var LedgerEntrySortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"date":       true,
	"value":      true,
	"type":       true,
}

// UserSortFields contains allowed sort fields for users
var UserSortFields = map[string]bool{
	"id":           true,
	"created_at":   true,
	"updated_at":   true,
	"username":     true,
	"display_name": true,
	"role":         true,
}
