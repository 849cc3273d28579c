package reports

import (
	"net/url"
	"strconv"
)

const (
	DefaultPageSize = 100
	MaxPageSize     = 500
)

// PageParams - page ve page_size query parametrelerinden çözülür.
type PageParams struct {
	Page     int
	PageSize int
}

// ParsePageParams - Geçersiz değerler hata değil varsayılan üretir,
// page_size üst sınıra kırpılır. Aralık dışı sayfa boş sonuç döner.
func ParsePageParams(pageStr, sizeStr string) PageParams {
	p := PageParams{Page: 1, PageSize: DefaultPageSize}

	if pageStr != "" {
		if v, err := strconv.Atoi(pageStr); err == nil && v >= 1 {
			p.Page = v
		}
	}
	if sizeStr != "" {
		if v, err := strconv.Atoi(sizeStr); err == nil && v >= 1 {
			p.PageSize = v
			if p.PageSize > MaxPageSize {
				p.PageSize = MaxPageSize
			}
		}
	}

	return p
}

func (p PageParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Page - Sayfalı liste zarfı: toplam sayı + önceki/sonraki sayfa linkleri.
type Page struct {
	Count    int64       `json:"count"`
	Next     *string     `json:"next"`
	Previous *string     `json:"previous"`
	Results  interface{} `json:"results"`
}

// PageEnvelope - Zarfı kurar. next/previous, istek path'i + mevcut query
// parametreleri üzerinden üretilir; kenarlarda null kalır.
func PageEnvelope(path string, query url.Values, p PageParams, count int64, results interface{}) Page {
	page := Page{Count: count, Results: results}

	if int64(p.Page)*int64(p.PageSize) < count {
		u := pageURL(path, query, p.Page+1)
		page.Next = &u
	}
	if p.Page > 1 {
		u := pageURL(path, query, p.Page-1)
		page.Previous = &u
	}

	return page
}

func pageURL(path string, query url.Values, page int) string {
	q := url.Values{}
	for k, vs := range query {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	q.Set("page", strconv.Itoa(page))
	return path + "?" + q.Encode()
}
