package clickatell

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Response is the raw outcome of one provider call. The library does not
// interpret provider-level failures; callers inspect StatusCode and Body.
type Response struct {
	API        API
	StatusCode int
	Body       string
}

// Legacy send acknowledgements carry a fixed four-character prefix before the
// identifier, one line per destination.
const legacyIDPrefix = "ID: "

type sendReply struct {
	Data struct {
		Message []struct {
			Accepted     bool   `json:"accepted"`
			To           string `json:"to"`
			APIMessageID string `json:"apiMessageId"`
		} `json:"message"`
	} `json:"data"`
}

// MessageID extracts the provider-assigned identifier from a send response.
// For multi-destination sends it returns the first identifier; MessageIDs
// returns all of them.
func (r Response) MessageID() (string, error) {
	ids, err := r.MessageIDs()
	if err != nil {
		return "", err
	}
	return ids[0], nil
}

// MessageIDs extracts every identifier from a send response, one per
// destination, in response order. It returns ErrNoMessageID when the body is
// not a send acknowledgement, wrapping the offending content.
func (r Response) MessageIDs() ([]string, error) {
	if r.API == APIREST {
		return r.restMessageIDs()
	}
	return r.legacyMessageIDs()
}

func (r Response) legacyMessageIDs() ([]string, error) {
	var ids []string
	for _, line := range strings.Split(r.Body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, legacyIDPrefix) {
			return nil, fmt.Errorf("%w: %q", ErrNoMessageID, line)
		}
		id := line[len(legacyIDPrefix):]
		// multi-destination acknowledgements append a "To: <msisdn>" column
		if cut := strings.Index(id, " To:"); cut >= 0 {
			id = id[:cut]
		}
		if id = strings.TrimSpace(id); id == "" {
			return nil, fmt.Errorf("%w: blank identifier", ErrNoMessageID)
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: empty body", ErrNoMessageID)
	}
	return ids, nil
}

func (r Response) restMessageIDs() ([]string, error) {
	var reply sendReply
	if err := json.Unmarshal([]byte(r.Body), &reply); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoMessageID, err)
	}
	ids := make([]string, 0, len(reply.Data.Message))
	for _, m := range reply.Data.Message {
		if m.APIMessageID != "" {
			ids = append(ids, m.APIMessageID)
		}
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: no apiMessageId in body", ErrNoMessageID)
	}
	return ids, nil
}
