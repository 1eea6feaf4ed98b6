package homework

import (
	"fmt"

	errs "homework_bot/internal/errors"
)

const (
	StatusApproved  = "approved"
	StatusReviewing = "reviewing"
	StatusRejected  = "rejected"
)

const (
	fieldName   = "homework_name"
	fieldStatus = "status"
)

var verdicts = map[string]string{
	StatusApproved:  "Работа проверена: ревьюеру всё понравилось. Ура!",
	StatusReviewing: "Работа взята на проверку ревьюером.",
	StatusRejected:  "Работа проверена: у ревьюера есть замечания.",
}

// Verdict возвращает вердикт для известного статуса.
func Verdict(status string) (string, bool) {
	v, ok := verdicts[status]
	return v, ok
}

// ParseStatus превращает запись из списка homeworks в сообщение для чата.
func ParseStatus(record any) (string, error) {
	hw, ok := record.(map[string]any)
	if !ok {
		return "", errs.NewMalformedResponse(
			fmt.Sprintf("запись о работе не является словарём: %T", record), nil)
	}

	rawName, ok := hw[fieldName]
	if !ok {
		return "", errs.NewMissingField(fieldName)
	}
	rawStatus, ok := hw[fieldStatus]
	if !ok {
		return "", errs.NewMissingField(fieldStatus)
	}

	name, ok := rawName.(string)
	if !ok {
		return "", errs.NewMalformedResponse(
			fmt.Sprintf("%s не является строкой: %T", fieldName, rawName), nil)
	}
	status, ok := rawStatus.(string)
	if !ok {
		return "", errs.NewUnknownStatus(fmt.Sprint(rawStatus))
	}

	verdict, ok := Verdict(status)
	if !ok {
		return "", errs.NewUnknownStatus(status)
	}

	return fmt.Sprintf("Изменился статус проверки работы \"%s\". %s", name, verdict), nil
}
