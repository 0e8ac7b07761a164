package scoring

import (
	"context"
	"sort"
)

type repoMock struct {
	points    map[int]int
	userNames map[int]string
}

func NewMockScoringRepo(userNames map[int]string) *repoMock {
	return &repoMock{
		points:    make(map[int]int),
		userNames: userNames,
	}
}

func (r *repoMock) AddPoint(_ context.Context, userID int) (int, error) {
	if _, ok := r.userNames[userID]; !ok {
		return 0, ErrUserNotFound
	}
	r.points[userID]++
	return r.points[userID], nil
}

func (r *repoMock) Ranking(_ context.Context, limit int) ([]RankingEntry, error) {
	if limit <= 0 {
		limit = DefaultRankingLimit
	}

	entries := make([]RankingEntry, 0, len(r.userNames))
	for userID, userName := range r.userNames {
		entries = append(entries, RankingEntry{
			UserID:   userID,
			UserName: userName,
			Points:   r.points[userID],
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Points != entries[j].Points {
			return entries[i].Points > entries[j].Points
		}
		return entries[i].UserName < entries[j].UserName
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}
	for i := range entries {
		entries[i].Position = i + 1
	}
	return entries, nil
}
