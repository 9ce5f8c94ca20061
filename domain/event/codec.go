package event

import (
	"collab-hub/domain"
	"collab-hub/errors"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/tidwall/gjson"
)

var validate = validator.New()

// Frame is the wire envelope shared by both directions.
type Frame struct {
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
}

// Decode turns a raw client frame into a typed inbound event.
// Every failure is returned as a *errors.ValidationError.
func Decode(raw []byte) (Inbound, error) {
	var frame Frame
	if err := json.Unmarshal(raw, &frame); err != nil {
		return nil, errors.NewValidationError("", fmt.Errorf("%w: %v", errors.ErrInvalidFrame, err))
	}
	kind := InboundKind(frame.Event)

	if rule, ok := roomEvents[kind]; ok {
		key := roomKey(frame.Payload, rule.field)
		if key == "" {
			return nil, errors.NewValidationError(frame.Event, errors.ErrEmptyRoomKey)
		}
		return RoomChange{Event: kind, Room: domain.NewRoomID(rule.kind, key), Join: rule.join}, nil
	}

	switch kind {
	case DocumentUpdate:
		return decodePayload[DocumentUpdated](frame)
	case CursorUpdate:
		return decodePayload[CursorMoved](frame)
	case SelectionUpdate:
		return decodePayload[SelectionChanged](frame)
	case WhiteboardUpdate:
		return decodePayload[WhiteboardChanged](frame)
	default:
		return nil, errors.NewValidationError(frame.Event, errors.ErrUnknownEvent)
	}
}

func decodePayload[T Inbound](frame Frame) (Inbound, error) {
	var payload T
	if err := json.Unmarshal(frame.Payload, &payload); err != nil {
		return nil, errors.NewValidationError(frame.Event, err)
	}
	if err := validate.Struct(payload); err != nil {
		return nil, errors.NewValidationError(frame.Event, err)
	}
	return payload, nil
}

// roomKey accepts either a bare JSON string or an object carrying the id field.
func roomKey(payload json.RawMessage, field string) string {
	if len(payload) == 0 {
		return ""
	}
	result := gjson.ParseBytes(payload)
	switch result.Type {
	case gjson.String:
		return domain.NewRoomID("", result.Str).Key
	case gjson.JSON:
		value := result.Get(field)
		if value.Type != gjson.String {
			return ""
		}
		return domain.NewRoomID("", value.Str).Key
	default:
		return ""
	}
}

// Encode renders an outbound event as a wire frame.
func Encode(out Outbound) ([]byte, error) {
	payload, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", out.Kind(), err)
	}
	return json.Marshal(Frame{Event: string(out.Kind()), Payload: payload})
}
