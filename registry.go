package wetsplit

// Registry is an ordered set of extractors. Registration order is the
// tie-break order for equal scores.
type Registry struct {
	extractors []Extractor
	names      map[string]int
}

// NewRegistry creates a registry holding exs in order.
func NewRegistry(exs ...Extractor) (*Registry, error) {
	r := &Registry{names: make(map[string]int)}
	if err := r.Register(exs...); err != nil {
		return nil, err
	}
	return r, nil
}

// Register appends extractors. Names must be unique and non-empty.
func (r *Registry) Register(exs ...Extractor) error {
	if r.names == nil {
		r.names = make(map[string]int)
	}
	for _, ex := range exs {
		if ex == nil {
			return Errorf(EINVALID, "nil extractor")
		}
		name := ex.Name()
		if name == "" {
			return Errorf(EINVALID, "extractor name required")
		}
		if _, ok := r.names[name]; ok {
			return Errorf(ECONFLICT, "extractor %q already registered", name)
		}
		r.names[name] = len(r.extractors)
		r.extractors = append(r.extractors, ex)
	}
	return nil
}

// Extractors returns the registered extractors in registration order.
func (r *Registry) Extractors() []Extractor {
	out := make([]Extractor, len(r.extractors))
	copy(out, r.extractors)
	return out
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.extractors))
	for i, ex := range r.extractors {
		out[i] = ex.Name()
	}
	return out
}

// Lookup returns the extractor registered under name.
func (r *Registry) Lookup(name string) (Extractor, error) {
	i, ok := r.names[name]
	if !ok {
		return nil, Errorf(ENOTFOUND, "extractor %q not registered", name)
	}
	return r.extractors[i], nil
}

// Without returns a new registry lacking the named extractors.
// Unknown names are reported as ENOTFOUND.
func (r *Registry) Without(names ...string) (*Registry, error) {
	skip := make(map[string]bool, len(names))
	for _, n := range names {
		if _, ok := r.names[n]; !ok {
			return nil, Errorf(ENOTFOUND, "extractor %q not registered", n)
		}
		skip[n] = true
	}
	out := &Registry{names: make(map[string]int)}
	for _, ex := range r.extractors {
		if skip[ex.Name()] {
			continue
		}
		out.names[ex.Name()] = len(out.extractors)
		out.extractors = append(out.extractors, ex)
	}
	return out, nil
}
