package entities

// AvailabilityStatus represents the availability state of a vehicle
type AvailabilityStatus int

const (
	Available AvailabilityStatus = iota
	Reserved
	UnderMaintenance
)

// String method for AvailabilityStatus enum
func (s AvailabilityStatus) String() string {
	switch s {
	case Available:
		return "Available"
	case Reserved:
		return "Reserved"
	case UnderMaintenance:
		return "Under Maintenance"
	default:
		return "Unknown"
	}
}

// AllAvailabilityStatuses returns the statuses in display order
func AllAvailabilityStatuses() []AvailabilityStatus {
	return []AvailabilityStatus{Available, Reserved, UnderMaintenance}
}
