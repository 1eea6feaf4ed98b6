package practicum

import (
	"encoding/json"
	"fmt"

	errs "homework_bot/internal/errors"
)

const (
	keyHomeworks   = "homeworks"
	keyCurrentDate = "current_date"
)

// Answer хранит проверенный ответ API.
type Answer struct {
	// Как пришло от API, самая свежая работа первая
	Homeworks   []any
	CurrentDate int64
}

// CheckResponse проверяет структуру ответа GetAPIAnswer.
func CheckResponse(v any) (*Answer, error) {
	body, ok := v.(map[string]any)
	if !ok {
		return nil, errs.NewMalformedResponse(fmt.Sprintf("ответ API не является словарём: %T", v), nil)
	}

	rawHomeworks, ok := body[keyHomeworks]
	if !ok {
		return nil, errs.NewMalformedResponse("в ответе API нет ключа "+keyHomeworks, nil)
	}
	rawDate, ok := body[keyCurrentDate]
	if !ok {
		return nil, errs.NewMalformedResponse("в ответе API нет ключа "+keyCurrentDate, nil)
	}

	homeworks, ok := rawHomeworks.([]any)
	if !ok {
		return nil, errs.NewMalformedResponse(fmt.Sprintf("%s не является списком: %T", keyHomeworks, rawHomeworks), nil)
	}

	date, err := toInt64(rawDate)
	if err != nil {
		return nil, errs.NewMalformedResponse(keyCurrentDate+" не является целым числом", err)
	}

	return &Answer{
		Homeworks:   homeworks,
		CurrentDate: date,
	}, nil
}

func toInt64(v any) (int64, error) {
	switch n := v.(type) {
	case json.Number:
		return n.Int64()
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	case float64:
		if n != float64(int64(n)) {
			return 0, fmt.Errorf("not an integer: %v", n)
		}
		return int64(n), nil
	default:
		return 0, fmt.Errorf("unexpected type %T", v)
	}
}
