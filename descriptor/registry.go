package descriptor

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"

	"reflector/options"
)

// ErrConflictingDescriptor reports a manual registration that disagrees with a
// descriptor already held for the same type.
var ErrConflictingDescriptor = errors.New("a different descriptor is already registered for this type")

// registry memoizes one verified descriptor per target type. First writer
// wins; later writers observe the stored descriptor.
var registry sync.Map // reflect.Type -> *Descriptor

var mode atomic.Int64

// Configure sets the process-wide reflection options. It is meant to be called
// once during program initialization, before descriptors are resolved.
func Configure(o options.ReflectEnum) {
	mode.Store(int64(o))
}

// Options returns the process-wide reflection options.
func Options() options.ReflectEnum {
	return options.ReflectEnum(mode.Load())
}

// Register builds a manual descriptor for T and stores it in the registry, so
// later Describe calls resolve it without probing. Registering the same slot
// sequence twice is a no-op; registering a conflicting one is an error.
func Register[T any](accessors ...Accessor[T]) error {
	d, err := Provide[T](accessors...)
	if err != nil {
		return err
	}

	prev, loaded := registry.LoadOrStore(d.Target(), d)
	if loaded && !prev.(*Descriptor).Equal(d) {
		return fmt.Errorf("reflector: %s: %w", typeName(d.Target()), ErrConflictingDescriptor)
	}

	return nil
}

// MustRegister is Register, panicking on failure. Generated registration code
// uses it so descriptor problems abort at program initialization.
func MustRegister[T any](accessors ...Accessor[T]) {
	if err := Register[T](accessors...); err != nil {
		panic(err)
	}
}

// Describe resolves the structural descriptor for a target type: a registered
// manual descriptor when one exists, otherwise automatic probing, memoized per
// type. In manual-only mode an unregistered type fails with
// MissingDescriptorError instead of being probed.
func Describe(target reflect.Type) (*Descriptor, error) {
	if cached, ok := registry.Load(target); ok {
		return cached.(*Descriptor), nil
	}

	opts := Options()

	if opts.Has(options.OptionManualOnly) {
		return nil, &MissingDescriptorError{Target: target}
	}

	d, err := Probe(target)
	if err != nil {
		return nil, err
	}

	if opts.Has(options.OptionCacheDisabled) {
		return d, nil
	}

	stored, _ := registry.LoadOrStore(target, d)

	return stored.(*Descriptor), nil
}

// For resolves the descriptor for the type parameter T.
func For[T any]() (*Descriptor, error) {
	return Describe(reflect.TypeFor[T]())
}
