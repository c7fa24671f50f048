package labmanager

import (
	"fmt"
	"strings"

	"github.com/vmware/govmomi/vim25/soap"
)

// Fault is a structured failure reported by the Lab Manager service in
// place of a result.
type Fault struct {
	Op      string // operation that faulted
	Code    string // SOAP fault code, e.g. "soap:Server"
	Message string // display message, see classifyFault for preference order
	Detail  string // nested fault detail, when present
	Raw     string // stringified fault payload for diagnostics
}

func (f *Fault) Error() string {
	return fmt.Sprintf("labmanager: %s: %s", f.Op, f.Message)
}

// CallerError reports invalid or missing arguments. It is returned before
// any network call is attempted, independent of the fail-fast policy.
type CallerError struct {
	Op     string
	Reason string
}

func (e *CallerError) Error() string {
	return fmt.Sprintf("labmanager: %s: %s", e.Op, e.Reason)
}

// TransportError reports a channel failure (connection, TLS, timeout) as
// opposed to a service-level fault.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("labmanager: %s: transport: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// classifyFault turns a SOAP fault into a *Fault. The display message
// prefers the faultstring, then the nested detail, then whatever payload
// is present. Lab Manager wraps most errors in a .NET "Server was unable
// to process request. ---> actual message" string; the marker is stripped
// so callers see the actual message.
func classifyFault(op string, sf *soap.Fault) *Fault {
	detail := ""
	if sf.Detail.Fault != nil {
		detail = fmt.Sprintf("%v", sf.Detail.Fault)
	}

	msg := strings.TrimSpace(sf.String)
	if msg == "" {
		msg = detail
	}
	if msg == "" {
		msg = sf.Code
	}
	if i := strings.LastIndex(msg, "--->"); i >= 0 {
		msg = strings.TrimSpace(msg[i+len("--->"):])
	}

	return &Fault{
		Op:      op,
		Code:    sf.Code,
		Message: msg,
		Detail:  detail,
		Raw:     fmt.Sprintf("%+v", *sf),
	}
}
