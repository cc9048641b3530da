package leaderboard

import (
	"sort"
	"time"
)

// Recompute builds the full replacement set of leaderboard entries from the
// complete user and activity sets. It is a pure function: no I/O, no side
// effects, deterministic for identical inputs.
//
// Every user gets exactly one entry, including users with no activities (they
// carry all-zero totals). Activities whose user_id matches no user are ignored;
// deleting a user does not delete their activities, so orphans can exist.
//
// Entries are ordered by total_calories descending with user ID ascending as
// the tie-break, and rank is the 1-based position in that order. Ranks are
// always distinct consecutive integers; tied totals do NOT share a rank.
func Recompute(users []UserRef, activities []ActivityStat, now time.Time) []Entry {
	entries := make([]Entry, 0, len(users))
	index := make(map[string]int, len(users))

	for _, u := range users {
		index[u.ID] = len(entries)
		entries = append(entries, Entry{
			ID:        EntryID(u.ID),
			UserID:    u.ID,
			UserName:  u.Name,
			TeamID:    u.TeamID,
			UpdatedAt: now,
		})
	}

	for _, a := range activities {
		i, ok := index[a.UserID]
		if !ok {
			continue // orphaned activity, no matching user
		}
		entries[i].TotalActivities++
		entries[i].TotalCalories += a.CaloriesBurned
		entries[i].TotalDurationMinutes += a.DurationMinutes
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].TotalCalories != entries[j].TotalCalories {
			return entries[i].TotalCalories > entries[j].TotalCalories
		}
		return entries[i].UserID < entries[j].UserID
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

// TopN returns the first n entries of an already rank-ordered set. n == 0
// yields an empty slice; n larger than the set yields the whole set.
func TopN(entries []Entry, n int) []Entry {
	if n < 0 {
		n = 0
	}
	if n > len(entries) {
		n = len(entries)
	}
	return entries[:n]
}

// ByTeam filters entries down to an exact team_id match, preserving their
// relative rank order. An unknown team simply yields an empty result.
func ByTeam(entries []Entry, teamID string) []Entry {
	filtered := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.TeamID == teamID {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
