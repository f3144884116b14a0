package domain

const (
	ActionInstantiate     = "instantiate"
	ActionAddWriter       = "add_writer"
	ActionRemoveWriter    = "remove_writer"
	ActionRegisterMessage = "register_message"
)

type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Response is the outcome of a successful state-changing request.
// Message is only set for register_message.
type Response struct {
	Attributes []Attribute     `json:"attributes"`
	Message    *MessageRecord `json:"message,omitempty"`
}

func NewResponse() Response {
	return Response{}
}

func (r Response) AddAttribute(key, value string) Response {
	r.Attributes = append(r.Attributes, Attribute{Key: key, Value: value})
	return r
}

// Attribute returns the first value stored under key.
func (r Response) Attribute(key string) (string, bool) {
	for _, a := range r.Attributes {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// QueryResponse holds the result of a Query. Only the field matching the
// query variant is meaningful: Message (nil when no record exists) for
// GetMessageQuery, Writers for GetWritersQuery.
type QueryResponse struct {
	Message *MessageRecord `json:"message"`
	Writers []Identity     `json:"writers"`
}
