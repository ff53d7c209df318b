// Package catalog holds the fixed, ordered sequence of daily content.
// Index i is "day i+1". Nothing in this package mutates the content after start-up.
package catalog

import (
	"errors"
	"fmt"

	"github.com/julianstephens/daylearn/internal/models"
)

// ErrDayOutOfRange is returned when a day index falls outside the catalog
var ErrDayOutOfRange = errors.New("day index out of range")

// Catalog is a read-only view over a sequence of day records.
type Catalog struct {
	days []models.DayRecord
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return &Catalog{days: days}
}

// New builds a catalog over a copy of the given records.
func New(records []models.DayRecord) *Catalog {
	cp := make([]models.DayRecord, len(records))
	copy(cp, records)
	return &Catalog{days: cp}
}

// Len returns the number of days in the catalog
func (c *Catalog) Len() int {
	return len(c.days)
}

// LastIndex returns the index of the final day, or -1 for an empty catalog
func (c *Catalog) LastIndex() int {
	return len(c.days) - 1
}

// Contains reports whether index addresses a day in the catalog
func (c *Catalog) Contains(index int) bool {
	return index >= 0 && index < len(c.days)
}

// GetDay returns the record for the given zero-based index.
func (c *Catalog) GetDay(index int) (models.DayRecord, error) {
	if !c.Contains(index) {
		return models.DayRecord{}, fmt.Errorf("%w: %d not in [0, %d)", ErrDayOutOfRange, index, len(c.days))
	}
	return c.days[index], nil
}

// Days returns a copy of every record in order
func (c *Catalog) Days() []models.DayRecord {
	cp := make([]models.DayRecord, len(c.days))
	copy(cp, c.days)
	return cp
}
