package pagination

import (
	"encoding/json"
	"net/http"
	"reflect"
	"strconv"

	"github.com/ONSdigital/dp-sdmx-api/apierrors"
	"github.com/ONSdigital/log.go/v2/log"
)

// ListFetcher returns a page of items, and the total number of items, for the given limit and offset
type ListFetcher func(w http.ResponseWriter, r *http.Request, limit int, offset int) (list interface{}, totalCount int, err error)

// Paginator holds the default paging values applied to list endpoints
type Paginator struct {
	DefaultLimit    int
	DefaultOffset   int
	DefaultMaxLimit int
}

type page struct {
	Items      interface{} `json:"items"`
	Count      int         `json:"count"`
	Offset     int         `json:"offset"`
	Limit      int         `json:"limit"`
	TotalCount int         `json:"total_count"`
}

// NewPaginator creates a new instance
func NewPaginator(defaultLimit, defaultOffset, defaultMaxLimit int) *Paginator {
	return &Paginator{
		DefaultLimit:    defaultLimit,
		DefaultOffset:   defaultOffset,
		DefaultMaxLimit: defaultMaxLimit,
	}
}

// getPaginationParameters reads offset and limit from the query, falling back to the defaults
func (p *Paginator) getPaginationParameters(r *http.Request) (offset int, limit int, err error) {
	ctx := r.Context()
	query := r.URL.Query()

	if offset, err = queryInt(query.Get("offset"), p.DefaultOffset); err != nil {
		log.Error(ctx, "invalid query parameter: offset", err, log.Data{"offset": query.Get("offset")})
		return 0, 0, err
	}
	if limit, err = queryInt(query.Get("limit"), p.DefaultLimit); err != nil {
		log.Error(ctx, "invalid query parameter: limit", err, log.Data{"limit": query.Get("limit")})
		return 0, 0, err
	}

	if limit > p.DefaultMaxLimit {
		err = apierrors.ErrInvalidQueryParameter
		log.Error(ctx, "limit is greater than the maximum allowed", err, log.Data{"limit": limit, "max_limit": p.DefaultMaxLimit})
		return 0, 0, err
	}
	return offset, limit, nil
}

// queryInt parses a non-negative query value, or returns def when the value is empty
func queryInt(value string, def int) (int, error) {
	if value == "" {
		return def, nil
	}
	v, err := strconv.Atoi(value)
	if err != nil || v < 0 {
		return 0, apierrors.ErrInvalidQueryParameter
	}
	return v, nil
}

func renderPage(list interface{}, offset int, limit int, totalCount int) page {
	return page{
		Items:      list,
		Count:      listLength(list),
		Offset:     offset,
		Limit:      limit,
		TotalCount: totalCount,
	}
}

// listLength counts the items of a slice, treating nil as empty
func listLength(list interface{}) int {
	v := reflect.ValueOf(list)
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		return v.Len()
	case reflect.Invalid:
		return 0
	default:
		return 1
	}
}

// Paginate wraps a list fetcher, passing it the requested limit and offset and writing the resulting page
func (p *Paginator) Paginate(listFetcher ListFetcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		offset, limit, err := p.getPaginationParameters(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		list, totalCount, err := listFetcher(w, r, limit, offset)
		if err != nil {
			return
		}

		returnPaginatedResults(w, r, renderPage(list, offset, limit, totalCount))
	}
}

func returnPaginatedResults(w http.ResponseWriter, r *http.Request, list page) {
	logData := log.Data{"path": r.URL.Path, "method": r.Method, "count": list.Count, "total_count": list.TotalCount}

	b, err := json.Marshal(list)
	if err != nil {
		log.Error(r.Context(), "failed to marshal page", err, logData)
		http.Error(w, apierrors.ErrInternalServer.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err = w.Write(b); err != nil {
		log.Error(r.Context(), "failed to write page", err, logData)
		return
	}

	log.Info(r.Context(), "paginated request successful", logData)
}
