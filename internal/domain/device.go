package domain

import "strings"

// CatalogPrefix is prepended to every order number handed to the engineering tool
const CatalogPrefix = "OrderNumber:"

// ModuleSpec describes one plug-in module requested for a device
type ModuleSpec struct {
	CatalogID   string `json:"catalog_id" yaml:"catalog_id"`
	DisplayName string `json:"display_name,omitempty" yaml:"display_name,omitempty"`
}

// HasName reports whether the module should be renamed after plugging
func (m ModuleSpec) HasName() bool {
	return m.DisplayName != ""
}

// TypeIdentifier returns the catalog id in the form the engineering tool expects
func (m ModuleSpec) TypeIdentifier() string {
	return TypeIdentifier(m.CatalogID)
}

// DeviceRow is one normalized spreadsheet row: a device and its modules
type DeviceRow struct {
	Index      int          `json:"index" yaml:"index"`
	DeviceType string       `json:"device_type" yaml:"device_type"`
	DeviceName string       `json:"device_name" yaml:"device_name"`
	CatalogID  string       `json:"catalog_id" yaml:"catalog_id"`
	IP         string       `json:"ip" yaml:"ip"`
	SubnetName string       `json:"subnet_name" yaml:"subnet_name"`
	Modules    []ModuleSpec `json:"modules,omitempty" yaml:"modules,omitempty"`
}

// TypeIdentifier returns the device catalog id in the form the engineering tool expects
func (r DeviceRow) TypeIdentifier() string {
	return TypeIdentifier(r.CatalogID)
}

// TypeIdentifier prefixes a raw order number with CatalogPrefix.
// Already prefixed values are returned unchanged.
func TypeIdentifier(orderNumber string) string {
	if strings.HasPrefix(orderNumber, CatalogPrefix) {
		return orderNumber
	}
	return CatalogPrefix + orderNumber
}

// TrimCatalogPrefix strips CatalogPrefix if present
func TrimCatalogPrefix(typeIdentifier string) string {
	return strings.TrimPrefix(typeIdentifier, CatalogPrefix)
}
