package protocol

const (
	// Protocol/transport validation.
	ErrProtoBadRequest     = "E_PROTO_BAD_REQUEST"
	ErrProtoVersionUnknown = "E_PROTO_VERSION"

	// Session layer.
	ErrRateLimit = "E_RATE_LIMIT"
	ErrInternal  = "E_INTERNAL"
)

var knownCodes = map[string]struct{}{
	ErrProtoBadRequest:     {},
	ErrProtoVersionUnknown: {},
	ErrRateLimit:           {},
	ErrInternal:            {},
}

func IsKnownCode(code string) bool {
	if code == "" {
		return true
	}
	_, ok := knownCodes[code]
	return ok
}

func NewError(code, message string) ErrorMsg {
	return ErrorMsg{
		Type:            TypeError,
		ProtocolVersion: Version,
		Code:            code,
		Message:         message,
	}
}
