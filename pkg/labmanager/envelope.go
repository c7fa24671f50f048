package labmanager

import (
	"fmt"
	"strconv"

	"github.com/vmware/govmomi/vim25/soap"
	"github.com/vmware/govmomi/vim25/xml"
)

// paramKind is the wire type of an operation parameter.
type paramKind int

const (
	kindInt paramKind = iota
	kindLong
	kindString
	kindBool
	kindRecords // ordered key/value groups, e.g. machine copy data
)

// paramSpec declares one positional parameter of a catalog operation.
type paramSpec struct {
	Name     string // wire element name, e.g. "configurationId"
	Kind     paramKind
	Optional bool
	Default  any   // substituted when an optional argument is omitted; nil omits the element
	Enum     []int // allowed values for int kinds; nil accepts any
}

// A Record is one named key/value group within a records parameter, e.g.
// a single VMCopyData entry. Field order is preserved on the wire.
type Record struct {
	Name   string
	Fields []Field
}

// Field is a single key/value pair inside a Record. Value may be a
// string, int, int64, bool, Record or []Record; records nest recursively.
type Field struct {
	Name  string
	Value any
}

// wireParam is a fully converted parameter: either text content or a list
// of child elements, never both.
type wireParam struct {
	name     string
	text     string
	children []wireParam
	parent   bool
}

// buildParams validates positional args against the operation's parameter
// specs and converts them to wire form. All validation happens here so a
// bad call never reaches the network.
func buildParams(op *operation, args []any) ([]wireParam, error) {
	if len(args) > len(op.Params) {
		return nil, &CallerError{
			Op:     op.Name,
			Reason: fmt.Sprintf("too many arguments: got %d, operation takes %d", len(args), len(op.Params)),
		}
	}

	params := make([]wireParam, 0, len(op.Params))
	for i, spec := range op.Params {
		var arg any
		switch {
		case i < len(args):
			arg = args[i]
		case spec.Optional:
			if spec.Default == nil {
				continue
			}
			arg = spec.Default
		default:
			return nil, &CallerError{
				Op:     op.Name,
				Reason: fmt.Sprintf("missing required argument %q", spec.Name),
			}
		}

		p, err := convertParam(op.Name, spec, arg)
		if err != nil {
			return nil, err
		}
		params = append(params, p)
	}

	return params, nil
}

func convertParam(op string, spec paramSpec, arg any) (wireParam, error) {
	bad := func(format string, a ...any) (wireParam, error) {
		return wireParam{}, &CallerError{Op: op, Reason: fmt.Sprintf("argument %q: ", spec.Name) + fmt.Sprintf(format, a...)}
	}

	switch spec.Kind {
	case kindInt, kindLong:
		n, ok := toInt64(arg)
		if !ok {
			return bad("expected integer, got %T", arg)
		}
		if spec.Enum != nil && !enumContains(spec.Enum, n) {
			return bad("value %d outside allowed set %v", n, spec.Enum)
		}
		return wireParam{name: spec.Name, text: strconv.FormatInt(n, 10)}, nil

	case kindString:
		s, ok := arg.(string)
		if !ok {
			return bad("expected string, got %T", arg)
		}
		return wireParam{name: spec.Name, text: s}, nil

	case kindBool:
		b, ok := arg.(bool)
		if !ok {
			return bad("expected bool, got %T", arg)
		}
		return wireParam{name: spec.Name, text: strconv.FormatBool(b)}, nil

	case kindRecords:
		recs, ok := arg.([]Record)
		if !ok {
			return bad("expected []Record, got %T", arg)
		}
		children := make([]wireParam, 0, len(recs))
		for _, rec := range recs {
			child, err := convertRecord(op, spec.Name, rec)
			if err != nil {
				return wireParam{}, err
			}
			children = append(children, child)
		}
		return wireParam{name: spec.Name, children: children, parent: true}, nil

	default:
		return bad("unknown parameter kind %d", spec.Kind)
	}
}

func convertRecord(op, param string, rec Record) (wireParam, error) {
	if rec.Name == "" {
		return wireParam{}, &CallerError{Op: op, Reason: fmt.Sprintf("argument %q: record with empty name", param)}
	}

	out := wireParam{name: rec.Name, parent: true}
	for _, f := range rec.Fields {
		switch v := f.Value.(type) {
		case string:
			out.children = append(out.children, wireParam{name: f.Name, text: v})
		case int:
			out.children = append(out.children, wireParam{name: f.Name, text: strconv.Itoa(v)})
		case int64:
			out.children = append(out.children, wireParam{name: f.Name, text: strconv.FormatInt(v, 10)})
		case bool:
			out.children = append(out.children, wireParam{name: f.Name, text: strconv.FormatBool(v)})
		case Record:
			child, err := convertRecord(op, param, v)
			if err != nil {
				return wireParam{}, err
			}
			child.name = f.Name
			out.children = append(out.children, child)
		case []Record:
			group := wireParam{name: f.Name, parent: true}
			for _, sub := range v {
				child, err := convertRecord(op, param, sub)
				if err != nil {
					return wireParam{}, err
				}
				group.children = append(group.children, child)
			}
			out.children = append(out.children, group)
		default:
			return wireParam{}, &CallerError{
				Op:     op,
				Reason: fmt.Sprintf("argument %q: field %q has unsupported type %T", param, f.Name, f.Value),
			}
		}
	}

	return out, nil
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	}
	return 0, false
}

func enumContains(enum []int, n int64) bool {
	for _, e := range enum {
		if int64(e) == n {
			return true
		}
	}
	return false
}

// requestBody is the operation element inside the SOAP body:
// <OpName xmlns="http://vmware.com/labmanager">...params...</OpName>.
type requestBody struct {
	op        string
	namespace string
	params    []wireParam
}

func (r *requestBody) MarshalXML(e *xml.Encoder, _ xml.StartElement) error {
	start := xml.StartElement{
		Name: xml.Name{Local: r.op},
		Attr: []xml.Attr{{Name: xml.Name{Local: "xmlns"}, Value: r.namespace}},
	}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	for _, p := range r.params {
		if err := encodeParam(e, p); err != nil {
			return err
		}
	}
	return e.EncodeToken(start.End())
}

func encodeParam(e *xml.Encoder, p wireParam) error {
	start := xml.StartElement{Name: xml.Name{Local: p.name}}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if p.parent {
		for _, c := range p.children {
			if err := encodeParam(e, c); err != nil {
				return err
			}
		}
	} else if p.text != "" {
		if err := e.EncodeToken(xml.CharData(p.text)); err != nil {
			return err
		}
	}
	return e.EncodeToken(start.End())
}

// callBody is the SOAP body for one request/response exchange, shaped the
// way govmomi's generated method bodies are so soap.Client.RoundTrip can
// drive it.
type callBody struct {
	Req    *requestBody `xml:",omitempty"`
	Res    *Element     `xml:",any,omitempty"`
	Fault_ *soap.Fault  `xml:"http://schemas.xmlsoap.org/soap/envelope/ Fault,omitempty"`
}

func (b *callBody) Fault() *soap.Fault { return b.Fault_ }

// AuthenticationHeader is the per-call credential block Lab Manager
// expects in the SOAP header.
type AuthenticationHeader struct {
	XMLName          xml.Name `xml:"http://vmware.com/labmanager AuthenticationHeader"`
	Username         string   `xml:"username"`
	Password         string   `xml:"password"`
	OrganizationName string   `xml:"organizationname,omitempty"`
	WorkspaceName    string   `xml:"workspacename,omitempty"`
}
