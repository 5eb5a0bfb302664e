package sandbox

import "fmt"

// Gateway error codes shared by both API faces. The legacy face renders them
// as "ERR: <code>, <description>" bodies with status 200, the REST face as an
// error envelope with a matching HTTP status.
const (
	codeAuthFailed      = "001"
	codeMissingParams   = "101"
	codeMessageNotFound = "102"
	codeNoCredit        = "301"
)

var errorDescriptions = map[string]string{
	codeAuthFailed:      "Authentication failed",
	codeMissingParams:   "Invalid or missing parameters",
	codeMessageNotFound: "Message not found",
	codeNoCredit:        "No credit left",
}

func errorDescription(code string) string {
	if description, exists := errorDescriptions[code]; exists {
		return description
	}
	return "Internal error"
}

func legacyError(code string) string {
	return fmt.Sprintf("ERR: %s, %s", code, errorDescription(code))
}

func restStatus(code string) int {
	switch code {
	case codeAuthFailed:
		return 401
	case codeMissingParams:
		return 400
	case codeMessageNotFound:
		return 404
	case codeNoCredit:
		return 402
	default:
		return 500
	}
}
