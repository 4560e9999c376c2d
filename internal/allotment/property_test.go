package allotment

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func randomScenario(seed int64) ([]*Room, []CourseRow) {
	rng := rand.New(rand.NewSource(seed))
	s := slot("01-01-2025")

	roomCount := 2 + rng.Intn(4)
	rooms := make([]*Room, roomCount)
	for i := range rooms {
		rooms[i] = &Room{Number: string(rune('A' + i)), Capacity: 10 + rng.Intn(50)}
	}

	courseCount := 2 + rng.Intn(4)
	rows := make([]CourseRow, courseCount)
	for i := range rows {
		rows[i] = CourseRow{Code: string(rune('0' + i)), Name: "course", Strength: rng.Intn(60), Slot: s}
	}
	return rooms, rows
}

// Invariant 2: a course's total placed seats never exceed its strength.
// Rebalance and tail-cleanup only ever move seats between fragments of the
// SAME course, so the per-course total is conserved through both passes —
// this holds regardless of room/capacity geometry.
func TestInvariantSeatsNeverExceedStrength(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		rooms, rows := randomScenario(seed)
		batches := BuildBatches(rows)
		PackDouble(rooms, batches)

		placed := map[string]int{}
		for _, r := range rooms {
			for _, a := range r.Allotments {
				placed[a.Course.Code] += a.Seats
			}
		}
		for _, batch := range batches {
			for _, c := range batch.Courses {
				assert.LessOrEqualf(t, placed[c.Code], c.Strength, "seed %d course %s", seed, c.Code)
			}
		}
	}
}

func TestInvariantSeatsNeverExceedStrengthSingleMode(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		rooms, rows := randomScenario(seed)
		batches := BuildBatches(rows)
		PackSingle(rooms, batches)

		placed := map[string]int{}
		for _, r := range rooms {
			for _, a := range r.Allotments {
				placed[a.Course.Code] += a.Seats
			}
		}
		for _, batch := range batches {
			for _, c := range batch.Courses {
				assert.LessOrEqualf(t, placed[c.Code], c.Strength, "seed %d course %s", seed, c.Code)
			}
		}
	}
}

// Invariant 1, single mode: a sequential single-course-per-room fill never
// lets a room's allotments exceed its capacity.
func TestInvariantCapacityNeverExceededSingleMode(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		rooms, rows := randomScenario(seed)
		PackSingle(rooms, BuildBatches(rows))
		for _, r := range rooms {
			total := 0
			for _, a := range r.Allotments {
				total += a.Seats
			}
			assert.LessOrEqualf(t, total, r.Capacity, "seed %d room %s", seed, r.Number)
		}
	}
}

// Invariant 1, double mode: after rebalance and tail-cleanup redistribute
// fragments between paired rooms, no room's allotments exceed its capacity.
func TestInvariantCapacityNeverExceededDoubleMode(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		rooms, rows := randomScenario(seed)
		PackDouble(rooms, BuildBatches(rows))
		Coalesce(rooms)
		for _, r := range rooms {
			total := 0
			for _, a := range r.Allotments {
				total += a.Seats
			}
			assert.LessOrEqualf(t, total, r.Capacity, "seed %d room %s", seed, r.Number)
		}
	}
}

// Determinism: re-running the same inputs in the same order yields a
// bit-identical result.
func TestDeterminism(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		rooms1, rows1 := randomScenario(seed)
		rooms2, rows2 := randomScenario(seed)

		PackDouble(rooms1, BuildBatches(rows1))
		PackDouble(rooms2, BuildBatches(rows2))
		Coalesce(rooms1)
		Coalesce(rooms2)

		assert.Equal(t, len(rooms1), len(rooms2))
		for i := range rooms1 {
			assert.Equal(t, len(rooms1[i].Allotments), len(rooms2[i].Allotments))
			for j := range rooms1[i].Allotments {
				a, b := rooms1[i].Allotments[j], rooms2[i].Allotments[j]
				assert.Equal(t, a.Course.Code, b.Course.Code)
				assert.Equal(t, a.Seats, b.Seats)
				assert.Equal(t, a.Remarks, b.Remarks)
			}
		}
	}
}
