// Package report reduces persisted payments into hour-bucketed sales
// summaries.
package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tillpoint/pospay/internal/domain"
)

// Aggregate groups payments into UTC hour buckets, summing final price and
// points per hour. Only payments with start <= datetime <= end (both ends
// inclusive) count, so correctness does not depend on whether the caller
// prefiltered. Buckets come back in ascending hour order, one per hour
// that has at least one payment — empty hours are omitted, not
// zero-filled.
//
// Aggregate is pure: it never caches, and start >= end fails with a
// validation error on startDateTime.
func Aggregate(payments []domain.Payment, start, end time.Time) ([]domain.HourlySales, error) {
	if !start.Before(end) {
		return nil, domain.NewValidationError("startDateTime",
			"start datetime must be before end datetime")
	}

	buckets := make(map[time.Time]*domain.HourlySales)
	for i := range payments {
		p := &payments[i]
		if p.Datetime.Before(start) || p.Datetime.After(end) {
			continue
		}
		hour := p.Datetime.UTC().Truncate(time.Hour)
		b, ok := buckets[hour]
		if !ok {
			b = &domain.HourlySales{Hour: hour, Sales: decimal.Zero}
			buckets[hour] = b
		}
		b.Sales = b.Sales.Add(p.FinalPrice)
		b.Points += p.Points
	}

	out := make([]domain.HourlySales, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Hour.Before(out[j].Hour) })

	return out, nil
}
