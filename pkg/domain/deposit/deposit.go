// Package deposit models an oil extraction site.
//
// A Deposit never rejects a mutation loudly: invalid values are left
// unapplied and recorded in the deposit's error log, which callers inspect
// through Err, Errors or ErrorLog.
//
// Invariants:
//   - DiscoveryYear is 0 or within [MinDiscoveryYear, current year].
//   - ExtractedQuantity is never negative.
//
// A Deposit is not safe for concurrent mutation.
package deposit

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const (
	// TaxRate is the fraction of gross revenue withheld as tax.
	TaxRate = 0.15

	// MinDiscoveryYear is the earliest accepted discovery year.
	MinDiscoveryYear = 1800
)

const (
	defaultName     = "Unknown"
	defaultYear     = 2000
	defaultUnitCost = 200.0
)

// ErrNonFiniteIncome is returned by NetIncome when the income is NaN or infinite.
var ErrNonFiniteIncome = errors.New("income is not a finite number")

var validate = validator.New()

// Deposit is a single oil extraction site.
type Deposit struct {
	name              string
	discoveryYear     int
	unitCost          float64
	extractedQuantity float64
	category          Category
	errors            ErrorLog
	now               func() time.Time
}

// Option configures a Deposit at construction time.
type Option func(d *Deposit)

// WithClock sets the clock used to determine the current calendar year.
func WithClock(now func() time.Time) Option {
	return func(d *Deposit) {
		if now != nil {
			d.now = now
		}
	}
}

// New creates a deposit. The discovery year and extracted quantity go through
// their validating setters, so invalid values are logged and left at zero
// instead of failing construction.
func New(
	name string,
	discoveryYear int,
	unitCost float64,
	extractedQuantity float64,
	category Category,
	opts ...Option,
) *Deposit {
	d := &Deposit{
		name: name,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.SetDiscoveryYear(discoveryYear)
	d.SetExtractedQuantity(extractedQuantity)
	d.unitCost = unitCost
	d.category = category
	return d
}

// NewDefault creates a deposit named "Unknown", discovered in 2000, with a unit
// cost of 200, nothing extracted and the Crude category.
func NewDefault(opts ...Option) *Deposit {
	return New(defaultName, defaultYear, defaultUnitCost, 0, Crude, opts...)
}

func (d *Deposit) Name() string               { return d.name }
func (d *Deposit) DiscoveryYear() int         { return d.discoveryYear }
func (d *Deposit) UnitCost() float64          { return d.unitCost }
func (d *Deposit) ExtractedQuantity() float64 { return d.extractedQuantity }
func (d *Deposit) Category() Category         { return d.category }

func (d *Deposit) SetName(name string) {
	d.name = name
}

func (d *Deposit) SetUnitCost(cost float64) {
	d.unitCost = cost
}

// SetDiscoveryYear applies year if it lies within [MinDiscoveryYear, current year].
// Otherwise the field is unchanged and one entry is added to the error log.
func (d *Deposit) SetDiscoveryYear(year int) {
	current := d.now().Year()
	rule := fmt.Sprintf("gte=%d,lte=%d", MinDiscoveryYear, current)
	if err := validate.Var(year, rule); err != nil {
		d.errors.add(fmt.Errorf("%w: %d is outside [%d, %d]",
			ErrInvalidDiscoveryYear, year, MinDiscoveryYear, current))
		return
	}
	d.discoveryYear = year
}

// SetExtractedQuantity applies quantity if it is not negative.
// Otherwise the field is unchanged and one entry is added to the error log.
func (d *Deposit) SetExtractedQuantity(quantity float64) {
	if err := validate.Var(quantity, "gte=0"); err != nil {
		d.errors.add(fmt.Errorf("%w: extracted quantity %s must not be negative",
			ErrInvalidQuantity, formatFloat(quantity)))
		return
	}
	d.extractedQuantity = quantity
}

// Extract adds a positive amount to the extracted quantity. A zero, negative
// or NaN amount is logged and ignored.
func (d *Deposit) Extract(amount float64) {
	if err := validate.Var(amount, "gt=0"); err != nil {
		d.errors.add(fmt.Errorf("%w: extraction amount %s is incorrect",
			ErrInvalidQuantity, formatFloat(amount)))
		return
	}
	d.extractedQuantity += amount
}

// CalculateIncome returns the net income after tax:
// unitCost * extractedQuantity * (1 - TaxRate).
func (d *Deposit) CalculateIncome() float64 {
	return d.unitCost * d.extractedQuantity * (1 - TaxRate)
}

// NetIncome is CalculateIncome evaluated in decimal arithmetic, starting from
// the shortest decimal form of each float input.
func (d *Deposit) NetIncome() (decimal.Decimal, error) {
	if !isFinite(d.unitCost) || !isFinite(d.extractedQuantity) {
		return decimal.Zero, ErrNonFiniteIncome
	}
	keep := decimal.NewFromInt(1).Sub(decimal.NewFromFloat(TaxRate))
	return decimal.NewFromFloat(d.unitCost).
		Mul(decimal.NewFromFloat(d.extractedQuantity)).
		Mul(keep), nil
}

// Errors returns the logged validation failures in the order they occurred.
func (d *Deposit) Errors() []error {
	return d.errors.Entries()
}

// Err returns all logged validation failures joined, or nil.
// Use errors.Is with ErrInvalidDiscoveryYear or ErrInvalidQuantity to inspect it.
func (d *Deposit) Err() error {
	return d.errors.Err()
}

// HasErrors reports whether any mutation has been rejected.
func (d *Deposit) HasErrors() bool {
	return d.errors.Len() > 0
}

// ErrorLog renders the error log, one newline-terminated line per entry.
func (d *Deposit) ErrorLog() string {
	return d.errors.String()
}

// Equal reports whether both deposits share name, discovery year, unit cost and
// extracted quantity. Category and error log are ignored.
func (d *Deposit) Equal(other *Deposit) bool {
	if d == other {
		return true
	}
	if d == nil || other == nil {
		return false
	}
	return d.discoveryYear == other.discoveryYear &&
		compareFloat(d.unitCost, other.unitCost) == 0 &&
		compareFloat(d.extractedQuantity, other.extractedQuantity) == 0 &&
		d.name == other.name
}

// Compare orders deposits by extracted quantity, ascending. Negative zero sorts
// before positive zero and NaN sorts after every other value.
func (d *Deposit) Compare(other *Deposit) int {
	return compareFloat(d.extractedQuantity, other.extractedQuantity)
}

// Clone returns an independent copy, error log included.
func (d *Deposit) Clone() *Deposit {
	c := *d
	c.errors = d.errors.clone()
	return &c
}

func (d *Deposit) String() string {
	return fmt.Sprintf(
		"Deposit{name='%s', discoveryYear=%d, unitCost=%s, extractedQuantity=%s, category=%s}",
		d.name,
		d.discoveryYear,
		formatFloat(d.unitCost),
		formatFloat(d.extractedQuantity),
		d.category,
	)
}

// canonicalNaN is the bit pattern every NaN collapses to before comparison.
const canonicalNaN = 0x7ff8000000000000

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	bits := func(f float64) int64 {
		if math.IsNaN(f) {
			return canonicalNaN
		}
		return int64(math.Float64bits(f))
	}
	return cmp.Compare(bits(a), bits(b))
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
