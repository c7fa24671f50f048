package labmanager

import (
	"fmt"

	"github.com/vmware/govmomi/vim25/xml"
)

// Element is a generic view of one response element. The service's
// document/literal responses are decoded into this tree first and only
// then into typed entities, so one normalization routine can serve every
// operation regardless of its payload type.
type Element struct {
	XMLName  xml.Name
	Text     string    `xml:",chardata"`
	Children []Element `xml:",any"`
}

// Child returns the first child with the given local name, or nil.
func (e *Element) Child(local string) *Element {
	if e == nil {
		return nil
	}
	for i := range e.Children {
		if e.Children[i].XMLName.Local == local {
			return &e.Children[i]
		}
	}
	return nil
}

// ChildText returns the text content of the named child, or "".
func (e *Element) ChildText(local string) string {
	if c := e.Child(local); c != nil {
		return c.Text
	}
	return ""
}

// Decode unmarshals this element's content into v.
func (e *Element) Decode(v any) error {
	b, err := xml.Marshal(e)
	if err != nil {
		return fmt.Errorf("labmanager: re-encode %s: %w", e.XMLName.Local, err)
	}
	if err := xml.Unmarshal(b, v); err != nil {
		return fmt.Errorf("labmanager: decode %s: %w", e.XMLName.Local, err)
	}
	return nil
}

// resultShape declares how an operation's response payload is unwrapped.
type resultShape int

const (
	shapeNone   resultShape = iota // no payload, success is the absence of a fault
	shapeScalar                    // single text value inside the result wrapper
	shapeObject                    // single structure inside the result wrapper
	shapeList                      // zero or more item elements inside the result wrapper
)

// resultWrapper returns the element holding the operation's payload,
// conventionally <OpNameResult> inside <OpNameResponse>. Nil when the
// service omitted it (empty or void results).
func resultWrapper(op *operation, body *Element) *Element {
	if body == nil {
		return nil
	}
	name := op.Result
	if name == "" {
		name = op.Name + "Result"
	}
	return body.Child(name)
}

// normalizeObject returns the result structure, applying the operation's
// post-processing hook when declared.
func normalizeObject(op *operation, body *Element) (*Element, error) {
	res := resultWrapper(op, body)
	if res == nil {
		return nil, &Fault{Op: op.Name, Message: "response carries no result", Raw: rawBody(body)}
	}
	if op.Post != nil {
		return op.Post(res)
	}
	return res, nil
}

// normalizeScalar returns the result wrapper's text content.
func normalizeScalar(op *operation, body *Element) (string, error) {
	res := resultWrapper(op, body)
	if res == nil {
		return "", &Fault{Op: op.Name, Message: "response carries no result", Raw: rawBody(body)}
	}
	if op.Post != nil {
		p, err := op.Post(res)
		if err != nil {
			return "", err
		}
		res = p
	}
	return res.Text, nil
}

// normalizeList returns the result items as a slice. The wire format does
// not distinguish "one child element" from "a list of one": a missing
// wrapper yields an empty slice, a single item element a one-element
// slice, and so on, so callers can always range over the result.
func normalizeList(op *operation, body *Element) ([]Element, error) {
	res := resultWrapper(op, body)
	if res == nil {
		return []Element{}, nil
	}
	if op.Post != nil {
		p, err := op.Post(res)
		if err != nil {
			return nil, err
		}
		res = p
	}

	if op.Item == "" {
		return append([]Element{}, res.Children...), nil
	}
	items := []Element{}
	for _, c := range res.Children {
		if c.XMLName.Local == op.Item {
			items = append(items, c)
		}
	}
	return items, nil
}

func rawBody(body *Element) string {
	if body == nil {
		return ""
	}
	b, err := xml.Marshal(body)
	if err != nil {
		return fmt.Sprintf("%+v", *body)
	}
	return string(b)
}

// decodeList decodes normalized list items into a typed slice.
func decodeList[T any](items []Element) ([]T, error) {
	out := make([]T, 0, len(items))
	for i := range items {
		var v T
		if err := items[i].Decode(&v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
