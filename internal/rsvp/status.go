package rsvp

// Status is the state of a Form.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// canTransition lists the only moves a Form may make. Success is terminal.
func (s Status) canTransition(to Status) bool {
	switch s {
	case StatusIdle, StatusError:
		return to == StatusLoading || to == StatusError
	case StatusLoading:
		return to == StatusSuccess || to == StatusError
	default:
		return false
	}
}

// Kind classifies why a submission ended in StatusError.
type Kind string

const (
	KindNone          Kind = ""
	KindValidation    Kind = "validation"
	KindDuplicate     Kind = "duplicate"
	KindSchemaMissing Kind = "schema_missing"
	KindBackend       Kind = "backend"
)

const (
	MsgInvalidFields       = "please fill in all fields correctly"
	MsgDuplicateNationalID = "this national ID is already registered for the event"
	MsgSchemaMissing       = "the database (invites table) has not been created yet"
	MsgConnectivity        = "could not confirm attendance, check your connection"
)
