package mapper

import (
	"github.com/amirasaad/oilfield/pkg/dto"
	"github.com/amirasaad/oilfield/pkg/registry"
)

// MapDepositEntryToRead maps a registry entry to a dto.DepositRead.
// Income is rounded to two places and left at zero when it is not finite.
func MapDepositEntryToRead(e *registry.Entry) *dto.DepositRead {
	d := e.Deposit
	read := &dto.DepositRead{
		ID:                e.ID,
		Number:            e.Number,
		Name:              d.Name(),
		DiscoveryYear:     d.DiscoveryYear(),
		UnitCost:          d.UnitCost(),
		ExtractedQuantity: d.ExtractedQuantity(),
		Category:          d.Category().String(),
	}
	if income, err := d.NetIncome(); err == nil {
		read.Income = income.Round(2)
	}
	for _, err := range d.Errors() {
		read.Errors = append(read.Errors, err.Error())
	}
	return read
}

// MapDepositEntriesToRead maps every entry, preserving order.
func MapDepositEntriesToRead(entries []*registry.Entry) []*dto.DepositRead {
	out := make([]*dto.DepositRead, 0, len(entries))
	for _, e := range entries {
		out = append(out, MapDepositEntryToRead(e))
	}
	return out
}
