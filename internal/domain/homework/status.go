// internal/domain/homework/status.go
package homework

import (
	"fmt"

	"homework_status_bot/internal/domain/fault"
)

// ParseStatus builds the chat message announcing a homework's review status.
func ParseStatus(hw Homework) (string, error) {
	name, ok := hw.Name()
	if !ok {
		return "", fault.MissingName()
	}
	status, _ := hw.Status()
	verdict, ok := Verdict(status)
	if !ok {
		return "", fault.UnknownStatus(string(status))
	}
	return fmt.Sprintf("Изменился статус проверки работы \"%s\". %s", name, verdict), nil
}
