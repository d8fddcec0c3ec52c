package handler

import (
	"encoding/json"
	"fmt"

	"dematkyc/internal/nomination/models"
	"dematkyc/internal/nomination/rules"
	dErrors "dematkyc/pkg/domain-errors"
)

// EventRequest is the wire form of one form event.
type EventRequest struct {
	Type  string          `json:"type"`
	Index int             `json:"index,omitempty"`
	Value json.RawMessage `json:"value,omitempty"`
}

// ApplyEventRequest carries the current form state and the event to apply.
type ApplyEventRequest struct {
	Submission models.Submission `json:"submission"`
	Event      EventRequest      `json:"event"`
}

// decodeEvent maps a wire event onto a reducer event.
func decodeEvent(req EventRequest) (rules.Event, error) {
	switch req.Type {
	case "setWishToNominate":
		var v models.YesNo
		if err := decodeValue(req, &v); err != nil {
			return nil, err
		}
		return rules.SetWishToNominate{Value: v}, nil
	case "addNominee":
		return rules.AddNominee{}, nil
	case "removeNominee":
		return rules.RemoveNominee{Index: req.Index}, nil
	case "setNomineeDob":
		var v string
		if err := decodeValue(req, &v); err != nil {
			return nil, err
		}
		return rules.SetNomineeDOB{Index: req.Index, DOB: v}, nil
	case "setNomineeMinor":
		var v bool
		if err := decodeValue(req, &v); err != nil {
			return nil, err
		}
		return rules.SetNomineeMinor{Index: req.Index, Value: v}, nil
	case "setNomineeShare":
		var v int
		if err := decodeValue(req, &v); err != nil {
			return nil, err
		}
		return rules.SetNomineeShare{Index: req.Index, Value: v}, nil
	case "setWishToPoa":
		var v models.YesNo
		if err := decodeValue(req, &v); err != nil {
			return nil, err
		}
		return rules.SetWishToPOA{Value: v}, nil
	case "addPoa":
		return rules.AddPOA{}, nil
	case "removePoa":
		return rules.RemovePOA{Index: req.Index}, nil
	case "setAddSecondHolder":
		var v bool
		if err := decodeValue(req, &v); err != nil {
			return nil, err
		}
		return rules.SetAddSecondHolder{Value: v}, nil
	case "setAddThirdHolder":
		var v bool
		if err := decodeValue(req, &v); err != nil {
			return nil, err
		}
		return rules.SetAddThirdHolder{Value: v}, nil
	case "":
		return nil, dErrors.New(dErrors.CodeBadRequest, "event type is required")
	default:
		return nil, dErrors.New(dErrors.CodeBadRequest, fmt.Sprintf("unknown event type %q", req.Type))
	}
}

func decodeValue(req EventRequest, dst any) error {
	if len(req.Value) == 0 {
		return dErrors.New(dErrors.CodeBadRequest, req.Type+" requires a value")
	}
	if err := json.Unmarshal(req.Value, dst); err != nil {
		return dErrors.New(dErrors.CodeBadRequest, "invalid value for "+req.Type)
	}
	return nil
}
