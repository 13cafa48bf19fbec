package request

// DefaultTake is how many rows a list returns when the client does not
// say otherwise. There is no upper bound on an explicit take.
const DefaultTake = 50

type ListParams struct {
	Skip int `json:"skip"`
	Take int `json:"take"`
}

func (p *ListParams) Offset() int {
	if p.Skip < 0 {
		return 0
	}
	return p.Skip
}

func (p *ListParams) Limit() int {
	if p.Take < 1 {
		return DefaultTake
	}
	return p.Take
}
