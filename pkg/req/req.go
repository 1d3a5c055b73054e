package req

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"
)

// Decode читает JSON тело запроса, лишние поля запрещены
func Decode[T any](body io.Reader) (T, error) {
	var payload T
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&payload); err != nil {
		return payload, errors.Wrap(err, "decode request body")
	}
	return payload, nil
}
