package planner

import (
	"sort"

	"github.com/Kas-Kady/bbq/internal/models"
	"github.com/google/uuid"
)

// DateBucket holds, for one proposed date, every attendee that marked the
// date as available. Popularity is the bucket size divided by the total
// number of attendees on the BBQ, 0 when there are none.
type DateBucket struct {
	Date       string
	Attendees  []models.Attendee
	Popularity float64
}

// Aggregate walks the attendees of a BBQ and buckets them per available
// date. Dates nobody picked are left out. The result is sorted by bucket
// size, most popular first; ties keep the order of bbq.ProposedDates.
// Dates that are no longer proposed (stale selections from before an edit)
// sort after the proposed ones, in the order they were first seen.
func Aggregate(bbq *models.BBQ) []DateBucket {
	buckets := make(map[string][]models.Attendee)
	var seen []string

	for _, attendee := range bbq.Attendees {
		for _, date := range attendee.AvailableDates {
			if _, ok := buckets[date]; !ok {
				seen = append(seen, date)
			}
			buckets[date] = append(buckets[date], attendee)
		}
	}

	rank := make(map[string]int, len(bbq.ProposedDates))
	for i, date := range bbq.ProposedDates {
		rank[date] = i
	}
	next := len(bbq.ProposedDates)
	for _, date := range seen {
		if _, ok := rank[date]; !ok {
			rank[date] = next
			next++
		}
	}
	sort.SliceStable(seen, func(i, j int) bool {
		return rank[seen[i]] < rank[seen[j]]
	})

	total := len(bbq.Attendees)
	list := make([]DateBucket, 0, len(seen))
	for _, date := range seen {
		bucket := DateBucket{Date: date, Attendees: buckets[date]}
		if total > 0 {
			bucket.Popularity = float64(len(bucket.Attendees)) / float64(total)
		}
		list = append(list, bucket)
	}
	sort.SliceStable(list, func(i, j int) bool {
		return len(list[i].Attendees) > len(list[j].Attendees)
	})

	return list
}

// Absentees returns the users attending the BBQ that are not in the given
// bucket. When everyone can make the date the result is empty.
func Absentees(bucket DateBucket, attendees []models.Attendee) []models.User {
	present := make(map[uuid.UUID]struct{}, len(bucket.Attendees))
	for _, attendee := range bucket.Attendees {
		present[attendee.UserID] = struct{}{}
	}

	absent := make([]models.User, 0, len(attendees))
	for _, attendee := range attendees {
		if _, ok := present[attendee.UserID]; !ok {
			absent = append(absent, attendee.User)
		}
	}
	return absent
}
