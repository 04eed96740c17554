package models

// Relationship is a directed, scaled link from one provider account to one
// copyer account. Duplicates are allowed and fire independently; links are
// deactivated, never deleted.
type Relationship struct {
	ProviderID       string  `json:"provider_id"`
	CopyerID         string  `json:"copyer_id"`
	VolumeMultiplier float64 `json:"volume_multiplier"`
	Active           bool    `json:"is_active"`
}
