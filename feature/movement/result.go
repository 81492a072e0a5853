package movement

import "errors"

// KeyResult is the outcome of one key.
type KeyResult struct {
	Key         string   `json:"key"`
	Success     bool     `json:"success"`
	MovementIDs []string `json:"movement_ids"`
	Code        string   `json:"code,omitempty"`
	Error       string   `json:"error,omitempty"`
}

// BatchResult lists the outcome of every key in call order.
type BatchResult struct {
	Results   []KeyResult `json:"results"`
	Succeeded int         `json:"succeeded"`
	Failed    int         `json:"failed"`
}

func (b *BatchResult) add(key string, ids []string, err error) {
	r := KeyResult{Key: key, Success: err == nil, MovementIDs: ids}
	if r.MovementIDs == nil {
		r.MovementIDs = []string{}
	}

	if err != nil {
		r.Error = err.Error()
		r.Code = "internal"
		var pe *PreconditionError
		if errors.As(err, &pe) {
			r.Code = pe.Code()
			r.Error = pe.Err.Error()
		}
		b.Failed++
	} else {
		b.Succeeded++
	}
	b.Results = append(b.Results, r)
}
