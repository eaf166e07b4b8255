package response

// ListResponse wraps a collection with its size.
type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

func NewListResponse[T any](data []T) *ListResponse[T] {
	if data == nil {
		data = []T{}
	}

	return &ListResponse[T]{
		Data:  data,
		Total: len(data),
	}
}
