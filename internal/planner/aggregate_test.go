package planner

import (
	"testing"

	"github.com/Kas-Kady/bbq/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	d1 = "2024-06-01T18:00:00Z"
	d2 = "2024-06-08T18:00:00Z"
	d3 = "2024-06-15T18:00:00Z"
)

func newAttendee(name string, dates ...string) models.Attendee {
	id := uuid.New()
	return models.Attendee{
		ID:             uuid.New(),
		UserID:         id,
		User:           models.User{ID: id, Name: name},
		AvailableDates: dates,
	}
}

func newBBQ(proposed []string, attendees ...models.Attendee) *models.BBQ {
	return &models.BBQ{
		ID:            uuid.New(),
		Slug:          "zomer-bbq",
		Title:         "Zomer BBQ",
		ProposedDates: proposed,
		Attendees:     attendees,
	}
}

func TestAggregate_BucketsAndTieBreak(t *testing.T) {
	bbq := newBBQ(
		[]string{d1, d2},
		newAttendee("A", d1),
		newAttendee("B", d1, d2),
		newAttendee("C", d2),
	)

	list := Aggregate(bbq)
	require.Len(t, list, 2)

	// Both dates have two attendees; the tie keeps the proposed order.
	assert.Equal(t, d1, list[0].Date)
	assert.Equal(t, d2, list[1].Date)

	require.Len(t, list[0].Attendees, 2)
	assert.Equal(t, "A", list[0].Attendees[0].User.Name)
	assert.Equal(t, "B", list[0].Attendees[1].User.Name)

	require.Len(t, list[1].Attendees, 2)
	assert.Equal(t, "B", list[1].Attendees[0].User.Name)
	assert.Equal(t, "C", list[1].Attendees[1].User.Name)

	assert.InDelta(t, 2.0/3.0, list[0].Popularity, 1e-9)
	assert.InDelta(t, 2.0/3.0, list[1].Popularity, 1e-9)
}

func TestAggregate_MostPopularFirst(t *testing.T) {
	bbq := newBBQ(
		[]string{d1, d2, d3},
		newAttendee("A", d2),
		newAttendee("B", d2, d3),
		newAttendee("C", d2),
	)

	list := Aggregate(bbq)
	require.Len(t, list, 2)
	assert.Equal(t, d2, list[0].Date)
	assert.Equal(t, d3, list[1].Date)

	for i := 1; i < len(list); i++ {
		assert.GreaterOrEqual(t, list[i-1].Popularity, list[i].Popularity)
	}
}

func TestAggregate_NeverEmitsEmptyBuckets(t *testing.T) {
	bbq := newBBQ(
		[]string{d1, d2, d3},
		newAttendee("A", d1),
		newAttendee("B"),
	)

	list := Aggregate(bbq)
	require.Len(t, list, 1)
	assert.Equal(t, d1, list[0].Date)
	for _, bucket := range list {
		assert.NotEmpty(t, bucket.Attendees)
	}
}

func TestAggregate_NoAttendees(t *testing.T) {
	list := Aggregate(newBBQ([]string{d1, d2}))
	assert.Empty(t, list)
}

func TestAggregate_StaleDatesSortAfterProposedOnes(t *testing.T) {
	// A date that was removed from the proposal list can linger in an
	// attendee's selection; it must rank after the proposed dates with the
	// same bucket size.
	bbq := newBBQ(
		[]string{d2},
		newAttendee("A", d1, d2),
	)

	list := Aggregate(bbq)
	require.Len(t, list, 2)
	assert.Equal(t, d2, list[0].Date)
	assert.Equal(t, d1, list[1].Date)
}

func TestAggregate_Idempotent(t *testing.T) {
	bbq := newBBQ(
		[]string{d1, d2, d3},
		newAttendee("A", d1, d3),
		newAttendee("B", d1, d2),
		newAttendee("C", d2),
	)

	first := Aggregate(bbq)
	second := Aggregate(bbq)
	assert.Equal(t, first, second)
}

func TestAbsentees_Complement(t *testing.T) {
	a := newAttendee("A", d1)
	b := newAttendee("B", d1, d2)
	c := newAttendee("C", d2)
	bbq := newBBQ([]string{d1, d2}, a, b, c)

	list := Aggregate(bbq)
	require.Len(t, list, 2)

	for _, bucket := range list {
		absent := Absentees(bucket, bbq.Attendees)
		assert.Len(t, absent, len(bbq.Attendees)-len(bucket.Attendees))

		// Present and absent are disjoint and cover every attendee.
		seen := make(map[uuid.UUID]bool)
		for _, attendee := range bucket.Attendees {
			seen[attendee.UserID] = true
		}
		for _, user := range absent {
			assert.False(t, seen[user.ID])
			seen[user.ID] = true
		}
		assert.Len(t, seen, len(bbq.Attendees))
	}
}

func TestAbsentees_NobodyAbsent(t *testing.T) {
	a := newAttendee("A", d1)
	b := newAttendee("B", d1)
	bbq := newBBQ([]string{d1}, a, b)

	list := Aggregate(bbq)
	require.Len(t, list, 1)

	absent := Absentees(list[0], bbq.Attendees)
	assert.Empty(t, absent)
}
