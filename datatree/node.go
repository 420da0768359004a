// Copyright 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package datatree

// Node is the sealed tagged union over the ten normalized-node variants
// (design §3). The unexported marker method restricts implementations to
// this package, mirroring how the teacher's GoStruct interface restricts
// implementations to generated types.
type Node interface {
	// Identifier returns the PathArgument this node occupies under its
	// parent's Children map.
	Identifier() PathArgument
	node()
}

// Leaf is a single scalar value identified by its schema QName.
type Leaf struct {
	Id    NodeIdentifier
	Value any
}

func (l *Leaf) Identifier() PathArgument { return l.Id }
func (*Leaf) node()                      {}

// LeafSetEntry is one value of a leaf-list, identified by QName+value.
type LeafSetEntry struct {
	Id    LeafSetEntryIdentifier
	Value any
}

func (l *LeafSetEntry) Identifier() PathArgument { return l.Id }
func (*LeafSetEntry) node()                      {}

// LeafSet is the ordered collection of a leaf-list's entries.
type LeafSet struct {
	Id      NodeIdentifier
	Entries []*LeafSetEntry
}

func (l *LeafSet) Identifier() PathArgument { return l.Id }
func (*LeafSet) node()                      {}

// WithEntry returns a new LeafSet with entry appended (or replacing an
// existing entry with the same identifier), leaving the receiver untouched.
func (l *LeafSet) WithEntry(entry *LeafSetEntry) *LeafSet {
	out := &LeafSet{Id: l.Id}
	replaced := false
	for _, e := range l.Entries {
		if e.Id == entry.Id {
			out.Entries = append(out.Entries, entry)
			replaced = true
			continue
		}
		out.Entries = append(out.Entries, e)
	}
	if !replaced {
		out.Entries = append(out.Entries, entry)
	}
	return out
}

// Container is an unkeyed structural node: schema containers, and the
// non-presence "default" container an automatic-lifecycle node synthesizes.
type Container struct {
	Id       NodeIdentifier
	Presence bool
	Children map[PathArgument]Node
}

func (c *Container) Identifier() PathArgument { return c.Id }
func (*Container) node()                      {}

// WithChild returns a new Container with child set under key, sharing every
// other child by reference (design §3 "building a new node yields a new
// value").
func (c *Container) WithChild(key PathArgument, child Node) *Container {
	out := &Container{Id: c.Id, Presence: c.Presence, Children: make(map[PathArgument]Node, len(c.Children)+1)}
	for k, v := range c.Children {
		out.Children[k] = v
	}
	out.Children[key] = child
	return out
}

// WithoutChild returns a new Container with key removed.
func (c *Container) WithoutChild(key PathArgument) *Container {
	out := &Container{Id: c.Id, Presence: c.Presence, Children: make(map[PathArgument]Node, len(c.Children))}
	for k, v := range c.Children {
		if k == key {
			continue
		}
		out.Children[k] = v
	}
	return out
}

// IsEmpty reports whether c has no children, the condition the
// automatic-lifecycle mixin uses to prune a non-presence container after a
// recursive apply removes its last child (design §4.3).
func (c *Container) IsEmpty() bool { return len(c.Children) == 0 }

// List is the unordered (by path-argument identity) collection of a keyed
// list's entries.
type List struct {
	Id      NodeIdentifier
	Entries map[PathArgument]*ListEntry
}

func (l *List) Identifier() PathArgument { return l.Id }
func (*List) node()                      {}

// WithEntry returns a new List with entry set under its own key identifier.
func (l *List) WithEntry(entry *ListEntry) *List {
	out := &List{Id: l.Id, Entries: make(map[PathArgument]*ListEntry, len(l.Entries)+1)}
	for k, v := range l.Entries {
		out.Entries[k] = v
	}
	out.Entries[entry.Id] = entry
	return out
}

// WithoutEntry returns a new List with key removed.
func (l *List) WithoutEntry(key ListEntryIdentifier) *List {
	out := &List{Id: l.Id, Entries: make(map[PathArgument]*ListEntry, len(l.Entries))}
	for k, v := range l.Entries {
		if k == key {
			continue
		}
		out.Entries[k] = v
	}
	return out
}

// ListEntry is one keyed entry of a List.
type ListEntry struct {
	Id       ListEntryIdentifier
	Children map[PathArgument]Node
}

func (l *ListEntry) Identifier() PathArgument { return l.Id }
func (*ListEntry) node()                      {}

// WithChild mirrors Container.WithChild.
func (l *ListEntry) WithChild(key PathArgument, child Node) *ListEntry {
	out := &ListEntry{Id: l.Id, Children: make(map[PathArgument]Node, len(l.Children)+1)}
	for k, v := range l.Children {
		out.Children[k] = v
	}
	out.Children[key] = child
	return out
}

// WithoutChild mirrors Container.WithoutChild.
func (l *ListEntry) WithoutChild(key PathArgument) *ListEntry {
	out := &ListEntry{Id: l.Id, Children: make(map[PathArgument]Node, len(l.Children))}
	for k, v := range l.Children {
		if k == key {
			continue
		}
		out.Children[k] = v
	}
	return out
}

// Choice holds the children of at most one case (design §3 invariant "A
// choice node contains children from at most one case"); the case itself is
// not a normalized-node level, matching the schema-inference stack's
// enterDataTree eliding choice/case intermediates.
type Choice struct {
	Id       NodeIdentifier
	Children map[PathArgument]Node
}

func (c *Choice) Identifier() PathArgument { return c.Id }
func (*Choice) node()                      {}

// WithChild mirrors Container.WithChild.
func (c *Choice) WithChild(key PathArgument, child Node) *Choice {
	out := &Choice{Id: c.Id, Children: make(map[PathArgument]Node, len(c.Children)+1)}
	for k, v := range c.Children {
		out.Children[k] = v
	}
	out.Children[key] = child
	return out
}

// WithoutChild mirrors Container.WithoutChild.
func (c *Choice) WithoutChild(key PathArgument) *Choice {
	out := &Choice{Id: c.Id, Children: make(map[PathArgument]Node, len(c.Children))}
	for k, v := range c.Children {
		if k == key {
			continue
		}
		out.Children[k] = v
	}
	return out
}

// Augmentation groups the children an augment statement added to its
// target, identified by the set of QNames it carries rather than a QName of
// its own.
type Augmentation struct {
	Id       AugmentationIdentifier
	Children map[PathArgument]Node
}

func (a *Augmentation) Identifier() PathArgument { return a.Id }
func (*Augmentation) node()                      {}

// WithChild mirrors Container.WithChild.
func (a *Augmentation) WithChild(key PathArgument, child Node) *Augmentation {
	out := &Augmentation{Id: a.Id, Children: make(map[PathArgument]Node, len(a.Children)+1)}
	for k, v := range a.Children {
		out.Children[k] = v
	}
	out.Children[key] = child
	return out
}

// WithoutChild mirrors Container.WithoutChild.
func (a *Augmentation) WithoutChild(key PathArgument) *Augmentation {
	out := &Augmentation{Id: a.Id, Children: make(map[PathArgument]Node, len(a.Children))}
	for k, v := range a.Children {
		if k == key {
			continue
		}
		out.Children[k] = v
	}
	return out
}

// AnyData is an opaque instance-data value whose internal structure the
// schema does not describe (design §4.3: "same strategy as anydata").
type AnyData struct {
	Id    NodeIdentifier
	Value any
}

func (a *AnyData) Identifier() PathArgument { return a.Id }
func (*AnyData) node()                      {}

// AnyXML is an opaque XML-shaped instance-data value, given the same
// apply-engine treatment as AnyData (design §5.3 supplement).
type AnyXML struct {
	Id    NodeIdentifier
	Value any
}

func (a *AnyXML) Identifier() PathArgument { return a.Id }
func (*AnyXML) node()                      {}
