package status

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindOK Kind = iota
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindOK:
		return "ok"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

// Status is the outcome of some operation. An error status carries a
// message, an ok status never does.
type Status struct {
	Kind    Kind
	Message string
}

func OK() Status {
	return Status{Kind: KindOK}
}

func Error(msg string) Status {
	return Status{Kind: KindError, Message: msg}
}

// FromErr converts err into a status, nil maps to OK.
func FromErr(err error) Status {
	if err == nil {
		return OK()
	}
	return Error(err.Error())
}

func (s Status) IsOK() bool {
	return s.Kind == KindOK
}

func (s Status) String() string {
	if s.IsOK() {
		return s.Kind.String()
	}
	return fmt.Sprintf("%s: %s", s.Kind, s.Message)
}

// Err returns nil for an ok status.
func (s Status) Err() error {
	if s.IsOK() {
		return nil
	}
	return errors.New(s.Message)
}
