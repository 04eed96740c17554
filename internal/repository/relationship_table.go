package repository

import (
	"sync"

	"github.com/bl00dycrusher/trade-nexus-orchestrator/internal/domain/models"
)

// RelationshipTable is the in-memory provider→copyer link table. Entries
// keep creation order, which is also the fan-out delivery order. Duplicates
// are allowed and fire independently; links are deactivated, never removed.
type RelationshipTable struct {
	mu    sync.RWMutex
	links []models.Relationship
}

// NewRelationshipTable creates an empty table.
func NewRelationshipTable() *RelationshipTable {
	return &RelationshipTable{}
}

// Add appends a new active link. No uniqueness check.
func (t *RelationshipTable) Add(providerID, copyerID string, multiplier float64) models.Relationship {
	t.mu.Lock()
	defer t.mu.Unlock()

	rel := models.Relationship{
		ProviderID:       providerID,
		CopyerID:         copyerID,
		VolumeMultiplier: multiplier,
		Active:           true,
	}
	t.links = append(t.links, rel)
	return rel
}

// Deactivate flips active off for every link matching the pair and returns
// how many were touched. Links are never removed from the table.
func (t *RelationshipTable) Deactivate(providerID, copyerID string) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	n := 0
	for i := range t.links {
		if t.links[i].ProviderID == providerID && t.links[i].CopyerID == copyerID && t.links[i].Active {
			t.links[i].Active = false
			n++
		}
	}
	return n
}

// ActiveForProvider returns all active links for providerID in table order.
func (t *RelationshipTable) ActiveForProvider(providerID string) []models.Relationship {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var out []models.Relationship
	for _, rel := range t.links {
		if rel.ProviderID == providerID && rel.Active {
			out = append(out, rel)
		}
	}
	return out
}

// List returns a snapshot of all links in table order.
func (t *RelationshipTable) List() []models.Relationship {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]models.Relationship, len(t.links))
	copy(out, t.links)
	return out
}
