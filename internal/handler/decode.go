package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/BuzzLyutic/task-list-api/internal/service"
)

const maxBodyBytes = 1 << 20 // 1 MiB

// decodeObject читает из тела ровно один JSON-объект. Пустое тело равносильно {},
// данные после объекта и не-объекты дают ErrInvalidJSON.
func decodeObject(w http.ResponseWriter, r *http.Request) (map[string]json.RawMessage, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)

	var obj map[string]json.RawMessage
	if err := dec.Decode(&obj); err != nil {
		if errors.Is(err, io.EOF) {
			return map[string]json.RawMessage{}, nil
		}
		return nil, service.ErrInvalidJSON
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, service.ErrInvalidJSON
	}
	return obj, nil
}

// decodeField разбирает поле key с точным совпадением имени. Отсутствующее
// поле оставляет dst как есть, значение не того типа возвращает typeErr.
func decodeField(obj map[string]json.RawMessage, key string, dst any, typeErr error) error {
	raw, ok := obj[key]
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return typeErr
	}
	return nil
}
