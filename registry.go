package lingua

import (
	"fmt"
	"slices"
	"sync"
)

// Service names.
const (
	ServiceInfo   = "Info"
	ServiceLang   = "Lang"
	ServiceMorpho = "Morpho"
	ServiceTrans  = "Trans"
)

// Registry maps (service, language) pairs to implementations. It is safe
// for concurrent use.
//
// Implementations by service:
//
//	Info    Info
//	Lang    Lang
//	Morpho  Morpho
//	Trans   *SchemeSet; every Trans call hands out a fresh Transliterator
type Registry struct {
	mu    sync.RWMutex
	impls map[string]map[string]any
	order map[string][]string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		impls: make(map[string]map[string]any),
		order: make(map[string][]string),
	}
}

// Register adds impl as the service implementation for lang.
//
// Lang and Morpho accept any value implementing the interface. Trans
// takes the scheme tables rather than a Trans value: the current scheme
// is per instance, so the registry keeps the shared *SchemeSet and Trans
// builds a new Transliterator over it on every call. A custom Trans
// implementation is rejected.
func (r *Registry) Register(service, lang string, impl any) error {
	code, err := NormalizeCode(lang)
	if err != nil {
		return err
	}
	switch service {
	case ServiceInfo:
		_, ok := impl.(Info)
		if !ok {
			return fmt.Errorf("register %s/%s: want Info, got %T", service, code, impl)
		}
	case ServiceLang:
		if _, ok := impl.(Lang); !ok {
			return fmt.Errorf("register %s/%s: %T does not implement Lang", service, code, impl)
		}
	case ServiceMorpho:
		if _, ok := impl.(Morpho); !ok {
			return fmt.Errorf("register %s/%s: %T does not implement Morpho", service, code, impl)
		}
	case ServiceTrans:
		set, ok := impl.(*SchemeSet)
		if !ok {
			return fmt.Errorf("register %s/%s: want *SchemeSet, got %T (a Trans value cannot be shared)", service, code, impl)
		}
		if len(set.schemes) == 0 {
			return fmt.Errorf("register %s/%s: no schemes", service, code)
		}
	default:
		return fmt.Errorf("register %s/%s: unknown service", service, code)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.impls[service]
	if !ok {
		m = make(map[string]any)
		r.impls[service] = m
	}
	if _, dup := m[code]; dup {
		return fmt.Errorf("register %s/%s: already registered", service, code)
	}
	m[code] = impl
	r.order[service] = append(r.order[service], code)
	return nil
}

// Lookup returns the raw implementation registered for (service, lang):
// for Trans this is the *SchemeSet, not a Trans.
func (r *Registry) Lookup(service, lang string) (any, bool) {
	code, err := NormalizeCode(lang)
	if err != nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	impl, ok := r.impls[service][code]
	return impl, ok
}

// Languages returns the codes registered for service, in registration
// order. Unknown services have no languages.
func (r *Registry) Languages(service string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.order[service])
}

// Morpho returns the morphology engine of lang.
func (r *Registry) Morpho(lang string) (Morpho, error) {
	impl, ok := r.Lookup(ServiceMorpho, lang)
	if !ok {
		return nil, fmt.Errorf("morpho %q: %w", lang, ErrUnknownLanguage)
	}
	return impl.(Morpho), nil
}

// Trans returns a new transliterator for lang, positioned on its first
// scheme.
func (r *Registry) Trans(lang string) (*Transliterator, error) {
	impl, ok := r.Lookup(ServiceTrans, lang)
	if !ok {
		return nil, fmt.Errorf("trans %q: %w", lang, ErrUnknownLanguage)
	}
	return NewTransliterator(impl.(*SchemeSet)), nil
}

// Lang returns the general language service of lang.
func (r *Registry) Lang(lang string) (Lang, error) {
	impl, ok := r.Lookup(ServiceLang, lang)
	if !ok {
		return nil, fmt.Errorf("lang %q: %w", lang, ErrUnknownLanguage)
	}
	return impl.(Lang), nil
}

// Info returns the metadata of lang.
func (r *Registry) Info(lang string) (Info, error) {
	impl, ok := r.Lookup(ServiceInfo, lang)
	if !ok {
		return Info{}, fmt.Errorf("info %q: %w", lang, ErrUnknownLanguage)
	}
	return impl.(Info), nil
}

// Dir returns the writing direction of lang, LTR when unknown.
func (r *Registry) Dir(lang string) string {
	info, err := r.Info(lang)
	if err != nil {
		return LTR
	}
	return info.Dir
}

// register adds every service loaded for a language.
func (r *Registry) register(l *langData) error {
	code := l.info.Code
	if err := r.Register(ServiceInfo, code, l.info); err != nil {
		return err
	}
	if l.numbers != nil {
		if err := r.Register(ServiceLang, code, l.numbers); err != nil {
			return err
		}
	}
	if l.morpho != nil {
		if err := r.Register(ServiceMorpho, code, NewInflector(l.morpho)); err != nil {
			return err
		}
	}
	if l.schemes != nil {
		if err := r.Register(ServiceTrans, code, l.schemes); err != nil {
			return err
		}
	}
	return nil
}
