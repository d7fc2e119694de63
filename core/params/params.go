package params

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// QueryParams holds common list-endpoint parameters.
type QueryParams struct {
	PageNumber int
	PageSize   int
	Search     string
}

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// FromContext reads pagination and search parameters from the query string.
func FromContext(c echo.Context) QueryParams {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}

	size, _ := strconv.Atoi(c.QueryParam("page_size"))
	if size < 1 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}

	return QueryParams{
		PageNumber: page,
		PageSize:   size,
		Search:     c.QueryParam("search"),
	}
}
