package pagination

const (
	MinPage      = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

type Paginate struct {
	Page     int
	Limit    int
	NumItems int64
}

// NewPaginate clamps the page to at least MinPage and the limit to [1, MaxLimit].
func NewPaginate(page, limit int) Paginate {
	if page < MinPage {
		page = MinPage
	}

	if limit < 1 {
		limit = DefaultLimit
	}

	if limit > MaxLimit {
		limit = MaxLimit
	}

	return Paginate{Page: page, Limit: limit}
}

func (a *Paginate) SetNumItems(number int64) {
	a.NumItems = number
}

func (a *Paginate) GetNumItemsAsInt() int64 {
	return a.NumItems
}

func (a *Paginate) GetNumItemsAsFloat() float64 {
	return float64(a.NumItems)
}

func (a *Paginate) GetLimit() int {
	return a.Limit
}

func (a *Paginate) Offset() int {
	return (a.Page - 1) * a.Limit
}
