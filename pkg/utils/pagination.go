package utils

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

type PaginationParams struct {
	Page     int
	PageSize int
	Offset   int
	// Requested is false when the caller sent neither page nor limit and
	// expects the whole collection.
	Requested bool
}

func GetPaginationParams(c echo.Context) PaginationParams {
	rawPage, rawLimit := c.QueryParam("page"), c.QueryParam("limit")

	page, _ := strconv.Atoi(rawPage)
	pageSize, _ := strconv.Atoi(rawLimit)

	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > MaxPageSize {
		pageSize = DefaultPageSize
	}

	return PaginationParams{
		Page:      page,
		PageSize:  pageSize,
		Offset:    (page - 1) * pageSize,
		Requested: rawPage != "" || rawLimit != "",
	}
}
