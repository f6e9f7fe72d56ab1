package ast

// Plain converts a syntax tree into plain Go values for downstream
// consumers: scalar values stay strings (the parser performs no type
// inference), maps become map[string]any with the last duplicate key
// winning, and sequences become []any.
func Plain(n Node) any {
	switch t := n.(type) {
	case nil:
		return nil
	case *Scalar:
		return t.Value
	case *Map:
		res := make(map[string]any, len(t.Properties))
		for i := range t.Properties {
			res[t.Properties[i].Key.Value] = Plain(t.Properties[i].Value)
		}
		return res
	case *Sequence:
		res := make([]any, len(t.Items))
		for i, item := range t.Items {
			res[i] = Plain(item)
		}
		return res
	}
	return nil
}
