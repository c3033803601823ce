// Package reminder selects which due reminders are sent on a given day
// under a hard per-user daily capacity, and spreads the overflow across the
// following days.
package reminder

import (
	"sort"
	"time"
)

// Allocation is the partition an allocation run produces. Slots in ToSend
// are delivered today; slots in ToReschedule carry their new scheduled date
// and incremented reschedule count; slots in ToSkip exhausted their budget
// under the drop policy.
type Allocation struct {
	ToSend       []Slot
	ToReschedule []Slot
	ToSkip       []Slot
}

// Allocate partitions the user's pending reminders for the given date. It is
// a pure function over a consistent snapshot: identical inputs produce an
// identical partition.
//
// slots must hold every PENDING slot with scheduledDate <= date for one
// user. sentToday is how many reminders were already SENT for the date in
// an earlier run. scheduledAhead maps future dates to the number of pending
// slots already parked on them, so overflow never lands on a day that is
// itself at capacity.
//
// Ordering: budget-exhausted slots first (force policy), then overdue before
// on-time, then weight descending, then creation order. The first free
// capacity units go out today; the rest spread across date+1, date+2, …
// filling each day up to MaxPerDay.
func Allocate(slots []Slot, date time.Time, sentToday int, scheduledAhead map[time.Time]int, cfg Config) Allocation {
	day := dateOnly(date)

	ordered := make([]Slot, len(slots))
	copy(ordered, slots)
	sort.SliceStable(ordered, func(i, j int) bool {
		return slotLess(ordered[i], ordered[j], day, cfg)
	})

	capacity := cfg.MaxPerDay - sentToday
	if capacity < 0 {
		capacity = 0
	}

	var allocation Allocation
	ahead := make(map[time.Time]int, len(scheduledAhead))
	for d, n := range scheduledAhead {
		ahead[dateOnly(d)] = n
	}

	for _, slot := range ordered {
		if len(allocation.ToSend) < capacity {
			slot.Status = StatusSent
			slot.ScheduledDate = day
			allocation.ToSend = append(allocation.ToSend, slot)
			continue
		}

		if slot.RescheduleCount >= cfg.MaxReschedules && cfg.ExhaustPolicy == ExhaustDrop {
			slot.Status = StatusSkipped
			allocation.ToSkip = append(allocation.ToSkip, slot)
			continue
		}

		target := nextFreeDay(day, ahead, cfg.MaxPerDay)
		ahead[target]++
		slot.Status = StatusRescheduled
		slot.ScheduledDate = target
		slot.RescheduleCount++
		allocation.ToReschedule = append(allocation.ToReschedule, slot)
	}

	return allocation
}

// slotLess is the deterministic total order of the allocator. Ties fall back
// to slot ID, which follows creation order.
func slotLess(a, b Slot, day time.Time, cfg Config) bool {
	aExhausted := a.RescheduleCount >= cfg.MaxReschedules && cfg.ExhaustPolicy == ExhaustForce
	bExhausted := b.RescheduleCount >= cfg.MaxReschedules && cfg.ExhaustPolicy == ExhaustForce
	if aExhausted != bExhausted {
		return aExhausted
	}

	aOverdue := a.Overdue(day)
	bOverdue := b.Overdue(day)
	if aOverdue != bOverdue {
		return aOverdue
	}

	if a.Weight != b.Weight {
		return a.Weight > b.Weight
	}

	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return a.ID < b.ID
}

// nextFreeDay walks forward from day+1 until it finds a date with spare
// capacity.
func nextFreeDay(day time.Time, ahead map[time.Time]int, maxPerDay int) time.Time {
	target := day.AddDate(0, 0, 1)
	for ahead[target] >= maxPerDay {
		target = target.AddDate(0, 0, 1)
	}
	return target
}
