package fabric

import "encoding/json"

// managedObject is a node of the controller's object tree, serialized as
// {"<class>": {"attributes": {...}, "children": [...]}}.
type managedObject struct {
	class      string
	attributes map[string]string
	children   []managedObject
}

func newMO(class string, attributes map[string]string, children ...managedObject) managedObject {
	return managedObject{class: class, attributes: attributes, children: children}
}

func (m *managedObject) add(children ...managedObject) {
	m.children = append(m.children, children...)
}

func (m managedObject) MarshalJSON() ([]byte, error) {
	body := struct {
		Attributes map[string]string `json:"attributes"`
		Children   []managedObject   `json:"children,omitempty"`
	}{
		Attributes: m.attributes,
		Children:   m.children,
	}
	if body.Attributes == nil {
		body.Attributes = map[string]string{}
	}
	return json.Marshal(map[string]any{m.class: body})
}
