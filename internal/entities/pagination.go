package entities

const (
	DefaultPage     int64 = 1
	DefaultPageSize int64 = 20
	MaxPageSize     int64 = 100
)

// PageRequest это единый контракт постраничной выдачи списковых ручек:
// page >= 1, size в [1, 100].
type PageRequest struct {
	Page int64
	Size int64
}

func (p PageRequest) Valid() bool {
	return p.Page >= 1 && p.Size >= 1 && p.Size <= MaxPageSize
}

func (p PageRequest) Skip() int64 {
	return (p.Page - 1) * p.Size
}

type Pagination struct {
	Page  int64
	Size  int64
	Total int64
	Pages int64
}

func NewPagination(req PageRequest, total int64) Pagination {
	return Pagination{
		Page:  req.Page,
		Size:  req.Size,
		Total: total,
		Pages: (total + req.Size - 1) / req.Size,
	}
}
