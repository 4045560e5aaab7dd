package eventjson

import (
	"iter"
	"strings"
)

// Annotation pairs a parse event with the dotted path of its location
// in the document. The path is the prefix in effect at that event —
// see Annotate.
type Annotation struct {
	Prefix string
	Event  Event
}

// Annotate wraps seq, attaching a dotted-path prefix to every event:
// "" at the root container, the key name at a MapKey and its value,
// and "item" appended per array nesting level. For
// {"a":{"b":[10,20]}} the prefixes run "", "a", "a", "a.b", "a.b",
// "a.b.item", "a.b.item", "a.b", "a", "".
func Annotate(seq iter.Seq[Event]) iter.Seq[Annotation] {
	return func(yield func(Annotation) bool) {
		var segs []string

		prefix := func() string { return strings.Join(segs, ".") }

		for ev := range seq {
			switch ev.Kind {
			case StartMap:
				if !yield(Annotation{Prefix: prefix(), Event: ev}) {
					return
				}
				segs = append(segs, "")
			case StartArray:
				if !yield(Annotation{Prefix: prefix(), Event: ev}) {
					return
				}
				segs = append(segs, "item")
			case MapKey:
				segs[len(segs)-1] = ev.Key
				if !yield(Annotation{Prefix: prefix(), Event: ev}) {
					return
				}
			case EndMap, EndArray:
				segs = segs[:len(segs)-1]
				if !yield(Annotation{Prefix: prefix(), Event: ev}) {
					return
				}
			case Value:
				if !yield(Annotation{Prefix: prefix(), Event: ev}) {
					return
				}
			}
		}
	}
}
