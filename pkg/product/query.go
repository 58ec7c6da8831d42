package product

import (
	"strings"
	"time"

	"myfridge-backend/domain"
)

// Op tags a predicate so the repository can render it into whatever query
// language the store speaks without the compiler knowing about SQL.
type Op string

const (
	OpEq    Op = "eq"
	OpLte   Op = "lte"
	OpGte   Op = "gte"
	OpGt    Op = "gt"
	OpILike Op = "ilike"
)

type (
	Predicate struct {
		Column string
		Op     Op
		Value  interface{}
	}

	// QueryPlan is an ordered predicate conjunction plus a single sort
	// clause. No secondary sort key; ties fall back to storage order.
	QueryPlan struct {
		Predicates []Predicate
		SortBy     string
		SortDesc   bool
	}
)

// Expiration categories. The windows are contiguous: soon covers everything
// up to today+3 (expired items included), medium is today+4..today+10
// inclusive, later is strictly after today+10.
const (
	CategorySoon   = "soon"
	CategoryMedium = "medium"
	CategoryLater  = "later"
)

var allowedSortColumns = map[string]bool{
	"name":            true,
	"created_at":      true,
	"expiration_date": true,
	"quantity":        true,
}

// CompileFilter turns a request filter into a query plan. It never fails:
// bad sort fields fall back to created_at and unknown categories simply add
// no date predicate. Owner and is_deleted predicates are unconditional.
func CompileFilter(filter domain.ProductFilter, userID string, today time.Time) QueryPlan {
	predicates := []Predicate{
		{Column: "user_id", Op: OpEq, Value: userID},
		{Column: "is_deleted", Op: OpEq, Value: false},
	}

	if term := strings.TrimSpace(filter.SearchTerm); term != "" {
		predicates = append(predicates, Predicate{Column: "name", Op: OpILike, Value: "%" + term + "%"})
	}

	if filter.IsFavorite != nil {
		predicates = append(predicates, Predicate{Column: "is_favorite", Op: OpEq, Value: *filter.IsFavorite})
	}

	if filter.StorageID != nil {
		predicates = append(predicates, Predicate{Column: "storage_place_id", Op: OpEq, Value: *filter.StorageID})
	}

	// ExpiringInDays wins over ExpirationCategory when both are set.
	if filter.ExpiringInDays != nil {
		predicates = append(predicates, Predicate{
			Column: "expiration_date",
			Op:     OpLte,
			Value:  today.AddDate(0, 0, *filter.ExpiringInDays),
		})
	} else if filter.ExpirationCategory != "" {
		predicates = append(predicates, CategoryWindow(filter.ExpirationCategory, today)...)
	}

	sortBy := filter.SortBy
	if !allowedSortColumns[sortBy] {
		sortBy = "created_at"
	}

	return QueryPlan{
		Predicates: predicates,
		SortBy:     sortBy,
		SortDesc:   filter.SortDescending,
	}
}

// CategoryWindow maps a category tag to its date predicates. Unknown tags
// return nil, which means no date filtering at all.
func CategoryWindow(category string, today time.Time) []Predicate {
	switch strings.ToLower(category) {
	case CategorySoon:
		return []Predicate{
			{Column: "expiration_date", Op: OpLte, Value: today.AddDate(0, 0, 3)},
		}
	case CategoryMedium:
		return []Predicate{
			{Column: "expiration_date", Op: OpGte, Value: today.AddDate(0, 0, 4)},
			{Column: "expiration_date", Op: OpLte, Value: today.AddDate(0, 0, 10)},
		}
	case CategoryLater:
		return []Predicate{
			{Column: "expiration_date", Op: OpGt, Value: today.AddDate(0, 0, 10)},
		}
	}
	return nil
}

// Categorize derives the expiration category for a single product. The
// category is never stored; it is always a function of the expiration date
// and today's date.
func Categorize(expirationDate *time.Time, today time.Time) string {
	if expirationDate == nil {
		return ""
	}

	d := expirationDate.UTC()
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)

	switch {
	case !day.After(today.AddDate(0, 0, 3)):
		return CategorySoon
	case !day.After(today.AddDate(0, 0, 10)):
		return CategoryMedium
	default:
		return CategoryLater
	}
}

// TodayUTC is the day boundary used for all window arithmetic: midnight UTC,
// never wall-clock time of day.
func TodayUTC() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
