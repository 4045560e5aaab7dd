package eventjson

import "iter"

// Collect materializes seq into a single Go value: map[string]any for
// the root object, []any for the root array, nested the same way.
// Containers are only inserted into their parent once fully built —
// on EndMap/EndArray, not on StartMap/StartArray — which sidesteps the
// classic aliasing hazard of storing a slice header into a parent and
// then continuing to append to it.
func Collect(seq iter.Seq[Event]) (any, error) {
	type collectFrame struct {
		isMap      bool
		m          map[string]any
		a          []any
		pendingKey string
	}
	var stack []collectFrame
	var root any

	placeIntoParent := func(v any) {
		top := &stack[len(stack)-1]
		if top.isMap {
			top.m[top.pendingKey] = v
		} else {
			top.a = append(top.a, v)
		}
	}

	for ev := range seq {
		switch ev.Kind {
		case StartMap:
			stack = append(stack, collectFrame{isMap: true, m: map[string]any{}})
		case StartArray:
			stack = append(stack, collectFrame{a: []any{}})
		case MapKey:
			stack[len(stack)-1].pendingKey = ev.Key
		case EndMap:
			v := stack[len(stack)-1].m
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				root = v
			} else {
				placeIntoParent(v)
			}
		case EndArray:
			v := stack[len(stack)-1].a
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				root = v
			} else {
				placeIntoParent(v)
			}
		case Value:
			if len(stack) == 0 {
				root = ev.Val
			} else {
				placeIntoParent(ev.Val)
			}
		}
	}
	return root, nil
}
