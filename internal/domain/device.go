package domain

import "strings"

type DeviceRecord struct {
	DisplayName string `csv:"AssetName"   db:"display_name" json:"display_name"`
	IPAddress   string `csv:"IPAddress"   db:"ip_address"   json:"ip_address"`
	Location    string `csv:"Location"    db:"location"     json:"location"`
	Description string `csv:"Description" db:"description"  json:"description"`
	Department  string `csv:"Department"  db:"department"   json:"department"`
	Contact     string `csv:"Contact"     db:"contact"      json:"contact"`
}

func (d *DeviceRecord) Normalize() {
	d.DisplayName = strings.TrimSpace(d.DisplayName)
	d.IPAddress = strings.TrimSpace(d.IPAddress)
	d.Location = strings.TrimSpace(d.Location)
	d.Description = strings.TrimSpace(d.Description)
	d.Department = strings.TrimSpace(d.Department)
	d.Contact = strings.TrimSpace(d.Contact)
}

// MissingFields lists the CSV columns of required fields that are empty.
func (d *DeviceRecord) MissingFields() []string {
	var missing []string

	if d.DisplayName == "" {
		missing = append(missing, "AssetName")
	}

	if d.IPAddress == "" {
		missing = append(missing, "IPAddress")
	}

	return missing
}
