// Package pricing maintains the derived-total invariants of a quote
// document: item total = quantity*days*pricePerDay, item totalCost =
// quantity*days*costPerDay, quote total = sum of item totals minus the
// discount. All functions mutate the quote in place and never fail; id
// misses report false and invalid numeric input coerces to zero.
package pricing

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/avquote/backend/internal/models"
)

// Editable item fields recognised by SetItemField. The four numeric ones
// trigger a re-derivation of the item's total and totalCost.
const (
	FieldQuantity    = "quantity"
	FieldDays        = "days"
	FieldPricePerDay = "pricePerDay"
	FieldCostPerDay  = "costPerDay"
	FieldName        = "name"
	FieldType        = "type"
	FieldNote        = "note"
	FieldEquipmentID = "equipmentId"
	FieldSupplier    = "supplier"
)

// Number coerces a decoded JSON value to a float64 under the
// treat-invalid-as-zero policy: NaN, Inf, unparseable strings and
// non-numeric types all become 0. Negative values pass through untouched.
func Number(v any) float64 {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		f = parsed
	case bool:
		if n {
			f = 1
		}
	default:
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func recomputeItem(it *models.QuoteItem) {
	it.Total = it.Quantity * it.Days * it.PricePerDay
	it.TotalCost = it.Quantity * it.Days * it.CostPerDay
}

func findSection(q *models.Quote, sectionID string) *models.QuoteSection {
	for i := range q.Sections {
		if q.Sections[i].ID == sectionID {
			return &q.Sections[i]
		}
	}
	return nil
}

func findItem(s *models.QuoteSection, itemID string) *models.QuoteItem {
	for i := range s.Items {
		if s.Items[i].ID == itemID {
			return &s.Items[i]
		}
	}
	return nil
}

// SetItemField updates one field of one item. Numeric fields run through
// Number and re-derive the item's total/totalCost from the other current
// values plus the new one; text fields are set verbatim. Quote totals are
// re-derived afterwards. Returns false when the section or item does not
// exist, leaving the quote untouched.
func SetItemField(q *models.Quote, sectionID, itemID, field string, value any) bool {
	sec := findSection(q, sectionID)
	if sec == nil {
		return false
	}
	it := findItem(sec, itemID)
	if it == nil {
		return false
	}
	switch field {
	case FieldQuantity:
		it.Quantity = Number(value)
	case FieldDays:
		it.Days = Number(value)
	case FieldPricePerDay:
		it.PricePerDay = Number(value)
	case FieldCostPerDay:
		it.CostPerDay = Number(value)
	case FieldName:
		it.Name, _ = value.(string)
	case FieldType:
		it.Type, _ = value.(string)
	case FieldNote:
		it.Note, _ = value.(string)
	case FieldEquipmentID:
		it.EquipmentID, _ = value.(string)
	case FieldSupplier:
		it.Supplier, _ = value.(string)
	default:
		return false
	}
	switch field {
	case FieldQuantity, FieldDays, FieldPricePerDay, FieldCostPerDay:
		recomputeItem(it)
	}
	RecomputeTotals(q)
	return true
}

// parseDate accepts the date-only wire format and full RFC 3339 timestamps,
// which is what the editing screens historically sent.
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// DaysBetween is the inclusive day count of a rental range: one day when
// both dates are equal, ceil of the span plus one otherwise. Order of the
// arguments does not matter.
func DaysBetween(start, end time.Time) float64 {
	span := end.Sub(start)
	if span < 0 {
		span = -span
	}
	return math.Ceil(span.Hours()/24) + 1
}

// SetSectionDateRange stores the range on the section and, when both dates
// parse, re-derives days (and therefore totals) for every item in that
// section. Unparseable dates leave the items' days unchanged. Returns false
// when the section does not exist.
func SetSectionDateRange(q *models.Quote, sectionID, start, end string) bool {
	sec := findSection(q, sectionID)
	if sec == nil {
		return false
	}
	sec.StartDate = start
	sec.EndDate = end
	from, okFrom := parseDate(start)
	to, okTo := parseDate(end)
	if okFrom && okTo {
		days := DaysBetween(from, to)
		for i := range sec.Items {
			sec.Items[i].Days = days
			recomputeItem(&sec.Items[i])
		}
	}
	RecomputeTotals(q)
	return true
}

// ItemDays resolves the default duration for a new item in a section:
// the section's own range when set, the quote's global range otherwise,
// and 1 when neither parses.
func ItemDays(q *models.Quote, sec *models.QuoteSection) float64 {
	if sec != nil {
		if from, ok := parseDate(sec.StartDate); ok {
			if to, ok2 := parseDate(sec.EndDate); ok2 {
				return DaysBetween(from, to)
			}
		}
	}
	if from, ok := parseDate(q.StartDate); ok {
		if to, ok2 := parseDate(q.EndDate); ok2 {
			return DaysBetween(from, to)
		}
	}
	return 1
}

// RecomputeTotals re-derives the quote-level totals from the item-level
// derived fields. Call it after every structural mutation; nothing caches
// or memoizes the result.
func RecomputeTotals(q *models.Quote) {
	var total, cost float64
	for si := range q.Sections {
		for ii := range q.Sections[si].Items {
			total += q.Sections[si].Items[ii].Total
			cost += q.Sections[si].Items[ii].TotalCost
		}
	}
	q.Total = total - q.Discount
	q.TotalCost = cost
}

// Renormalize re-derives every item's total/totalCost from its inputs and
// then the quote totals. Used when a whole document arrives from a client
// so the stored derived fields always honour the invariants.
func Renormalize(q *models.Quote) {
	for si := range q.Sections {
		for ii := range q.Sections[si].Items {
			recomputeItem(&q.Sections[si].Items[ii])
		}
	}
	RecomputeTotals(q)
}

// SetDiscount coerces and stores the discount, then re-derives totals.
func SetDiscount(q *models.Quote, value any) {
	q.Discount = Number(value)
	RecomputeTotals(q)
}

// AddSection appends an empty section and re-derives totals.
func AddSection(q *models.Quote, sec models.QuoteSection) {
	if sec.Items == nil {
		sec.Items = []models.QuoteItem{}
	}
	q.Sections = append(q.Sections, sec)
	RecomputeTotals(q)
}

// RemoveSection deletes a section by id. Returns false on miss.
func RemoveSection(q *models.Quote, sectionID string) bool {
	for i := range q.Sections {
		if q.Sections[i].ID == sectionID {
			q.Sections = append(q.Sections[:i], q.Sections[i+1:]...)
			RecomputeTotals(q)
			return true
		}
	}
	return false
}

// AddItem appends an item to a section, defaulting days from the section
// or quote range when unset, and re-derives totals. Returns false when the
// section does not exist.
func AddItem(q *models.Quote, sectionID string, it models.QuoteItem) bool {
	sec := findSection(q, sectionID)
	if sec == nil {
		return false
	}
	if it.Days == 0 {
		it.Days = ItemDays(q, sec)
	}
	recomputeItem(&it)
	sec.Items = append(sec.Items, it)
	RecomputeTotals(q)
	return true
}

// RemoveItem deletes an item by id. Returns false on miss.
func RemoveItem(q *models.Quote, sectionID, itemID string) bool {
	sec := findSection(q, sectionID)
	if sec == nil {
		return false
	}
	for i := range sec.Items {
		if sec.Items[i].ID == itemID {
			sec.Items = append(sec.Items[:i], sec.Items[i+1:]...)
			RecomputeTotals(q)
			return true
		}
	}
	return false
}

// Profit is total minus totalCost.
func Profit(q *models.Quote) float64 { return q.Total - q.TotalCost }

// Margin is profit as a percentage of total, 0 when total is 0 so an empty
// quote never reports NaN.
func Margin(q *models.Quote) float64 {
	if q.Total == 0 {
		return 0
	}
	return Profit(q) / q.Total * 100
}
