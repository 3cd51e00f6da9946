// internal/domain/homework/homework.go
package homework

// Status is a review status code reported by the homework API.
type Status string

const (
	StatusApproved  Status = "approved"
	StatusReviewing Status = "reviewing"
	StatusRejected  Status = "rejected"
)

// verdicts maps every known status to the text shown in the chat.
var verdicts = map[Status]string{
	StatusApproved:  "Работа проверена: ревьюеру всё понравилось. Ура!",
	StatusReviewing: "Работа взята на проверку ревьюером.",
	StatusRejected:  "Работа проверена: у ревьюера есть замечания.",
}

// Verdict returns the localized verdict for a status.
func Verdict(s Status) (string, bool) {
	v, ok := verdicts[s]
	return v, ok
}

// Homework is one record of the "homeworks" array, kept as the raw JSON object
// so that absent keys can be told apart from empty ones.
type Homework map[string]any

// Name returns homework_name; ok is false when the key is absent or not a string.
func (h Homework) Name() (string, bool) {
	name, ok := h["homework_name"].(string)
	return name, ok
}

// Status returns the status code; ok is false when the key is absent or not a string.
func (h Homework) Status() (Status, bool) {
	s, ok := h["status"].(string)
	return Status(s), ok
}

// Response is a validated API answer. Homeworks holds the raw records in API order.
type Response struct {
	Homeworks   []any
	CurrentDate int64
}
