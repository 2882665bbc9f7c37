package onboarding

import "github.com/kurochkinivan/device_onboarder/internal/domain"

const DevicesPath = "/device/devices"

type DevicePayload struct {
	Name                 string     `json:"name"`
	DisplayName          string     `json:"displayName"`
	PreferredCollectorID int        `json:"preferredCollectorId"`
	HostGroupIDs         string     `json:"hostGroupIds,omitempty"`
	Description          string     `json:"description,omitempty"`
	CustomProperties     []Property `json:"customProperties,omitempty"`
}

type Property struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func NewDevicePayload(record domain.DeviceRecord, collectorID int, hostGroupIDs string) DevicePayload {
	payload := DevicePayload{
		Name:                 record.IPAddress,
		DisplayName:          record.DisplayName,
		PreferredCollectorID: collectorID,
		HostGroupIDs:         hostGroupIDs,
		Description:          record.Description,
	}

	for _, prop := range []Property{
		{Name: "location", Value: record.Location},
		{Name: "department", Value: record.Department},
		{Name: "contact", Value: record.Contact},
	} {
		if prop.Value != "" {
			payload.CustomProperties = append(payload.CustomProperties, prop)
		}
	}

	return payload
}
