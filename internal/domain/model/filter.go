package model

// RewardSortKey enumerates catalog sort columns.
type RewardSortKey string

const (
	RewardSortName       RewardSortKey = "name"
	RewardSortPointsCost RewardSortKey = "points_cost"
	RewardSortCreatedAt  RewardSortKey = "created_at"
)

// RewardFilter narrows and orders catalog listings. Zero values mean "no
// constraint"; paging is 1-based.
type RewardFilter struct {
	Category   RewardCategory
	Search     string
	MinPoints  int64
	MaxPoints  int64
	SortBy     RewardSortKey
	Descending bool
	Page       int
	PageSize   int
}

// Normalize clamps paging and falls back to the default sort order.
func (f RewardFilter) Normalize() RewardFilter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = 20
	}
	if f.PageSize > 100 {
		f.PageSize = 100
	}
	switch f.SortBy {
	case RewardSortName, RewardSortPointsCost, RewardSortCreatedAt:
	default:
		f.SortBy = RewardSortCreatedAt
		f.Descending = true
	}
	return f
}

// Offset returns the SQL offset for the normalized filter.
func (f RewardFilter) Offset() int {
	return (f.Page - 1) * f.PageSize
}

// RewardPage is one page of a filtered catalog listing. Total counts the
// filtered set, not the whole catalog.
type RewardPage struct {
	Rewards []Reward
	Total   int64
}
