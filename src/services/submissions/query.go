package submissions

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"Backend-BenefitsIntake/src/models"
)

// The query layer is pure: it takes the full set from ListAll and applies
// search, ordering and paging in memory, mirroring what the dashboard does.

// Filter keeps submissions whose name, email, reference number or phone
// number contains the term, case-insensitively. An empty term keeps
// everything.
func Filter(submissions []models.Submission, term string) []models.Submission {
	if term == "" {
		return submissions
	}
	needle := strings.ToLower(term)

	matched := make([]models.Submission, 0, len(submissions))
	for _, s := range submissions {
		if strings.Contains(strings.ToLower(s.Name), needle) ||
			strings.Contains(strings.ToLower(s.Email), needle) ||
			strings.Contains(strings.ToLower(s.ReferenceNumber), needle) ||
			strings.Contains(strings.ToLower(s.PhoneNumber), needle) {
			matched = append(matched, s)
		}
	}
	return matched
}

// Sort orders a copy of the set by one of name, email, createdAt or
// referenceNumber. Strings compare with locale-aware collation, createdAt
// numerically. Unknown fields fall back to createdAt, unknown orders to
// descending.
func Sort(submissions []models.Submission, sortBy, order string) []models.Submission {
	sorted := make([]models.Submission, len(submissions))
	copy(sorted, submissions)

	asc := strings.EqualFold(order, "asc")
	collator := collate.New(language.English)

	byString := func(key func(models.Submission) string) func(i, j int) bool {
		return func(i, j int) bool {
			cmp := collator.CompareString(key(sorted[i]), key(sorted[j]))
			if asc {
				return cmp < 0
			}
			return cmp > 0
		}
	}

	var less func(i, j int) bool
	switch sortBy {
	case "name":
		less = byString(func(s models.Submission) string { return s.Name })
	case "email":
		less = byString(func(s models.Submission) string { return s.Email })
	case "referenceNumber":
		less = byString(func(s models.Submission) string { return s.ReferenceNumber })
	default: // createdAt
		less = func(i, j int) bool {
			if asc {
				return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
			}
			return sorted[j].CreatedAt.Before(sorted[i].CreatedAt)
		}
	}

	sort.SliceStable(sorted, less)
	return sorted
}

// Paginate clamps the requested page into [1, totalPages] (minimum one page,
// even empty) and slices out the current page.
func Paginate(submissions []models.Submission, params models.PaginationParams) *models.PaginatedResponse {
	total := int64(len(submissions))
	params.Clamp(total)

	start := params.GetSkip()
	if start > len(submissions) {
		start = len(submissions)
	}
	end := start + params.Limit
	if end > len(submissions) {
		end = len(submissions)
	}

	return models.NewPaginatedResponse(submissions[start:end], total, params)
}

// Query applies filter, sort and pagination in that order.
func Query(submissions []models.Submission, params models.PaginationParams) *models.PaginatedResponse {
	filtered := Filter(submissions, params.Search)
	ordered := Sort(filtered, params.SortBy, params.Order)
	return Paginate(ordered, params)
}
