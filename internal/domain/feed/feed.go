// Package feed decorates a page of posts with interaction signals and
// orders it. Ranking only ever reorders the page it is given.
package feed

import (
	"slices"
	"sort"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/query"

	"github.com/google/uuid"
)

// RankedPost is a post with its request-scoped aggregates.
type RankedPost struct {
	*entity.Post
	AvgRating    float64
	Score        int
	CommentCount int
	VoteCount    int
}

// Enrich pairs each post with its signals. Posts without signals get zeros.
func Enrich(posts []*entity.Post, signals map[uuid.UUID]entity.PostSignals) []*RankedPost {
	items := make([]*RankedPost, 0, len(posts))
	for _, post := range posts {
		s := signals[post.ID]
		items = append(items, &RankedPost{
			Post:         post,
			AvgRating:    s.AvgRating,
			Score:        s.Score,
			CommentCount: s.CommentCount,
			VoteCount:    s.VoteCount,
		})
	}

	return items
}

// Rank orders items in place and returns them.
//
//   - new: store order is kept
//   - popular: score descending, ties keep store order
//   - rating: average rating descending, ties keep store order
//   - price: price key ascending, reversed as a whole when order is desc
func Rank(items []*RankedPost, sortBy query.SortBy, order query.Order) []*RankedPost {
	switch sortBy {
	case query.SortPopular:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Score > items[j].Score
		})
	case query.SortRating:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].AvgRating > items[j].AvgRating
		})
	case query.SortPrice:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].PriceKey() < items[j].PriceKey()
		})
		if order == query.OrderDesc {
			slices.Reverse(items)
		}
	case query.SortNew:
	}

	return items
}

// PostIDs collects the ids of a page for the batched signal query.
func PostIDs(posts []*entity.Post) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
	}

	return ids
}
