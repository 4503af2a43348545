package model

// PageSize is the fixed number of posts per feed page.
const PageSize = 10

// Page describes one resolved slice of an ordered list. Number is 1-indexed
// and always within [1, TotalPages]; Offset and Limit are ready to feed into
// a LIMIT/START query.
type Page struct {
	Number     int `json:"number"`
	TotalPages int `json:"total_pages"`
	TotalItems int `json:"total_items"`
	Offset     int `json:"-"`
	Limit      int `json:"-"`
}

// Paginate resolves a requested page number against a total item count.
// Out-of-range requests clamp to the nearest valid page instead of failing:
// page < 1 resolves to the first page, page > TotalPages to the last. An
// empty list still has exactly one (empty) page.
func Paginate(totalItems, pageSize, page int) Page {
	if pageSize < 1 {
		pageSize = PageSize
	}

	totalPages := (totalItems + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	return Page{
		Number:     page,
		TotalPages: totalPages,
		TotalItems: totalItems,
		Offset:     (page - 1) * pageSize,
		Limit:      pageSize,
	}
}

// Feed is one page of posts together with its pagination envelope.
type Feed struct {
	Posts []PostView `json:"posts"`
	Page  Page       `json:"page"`
}
