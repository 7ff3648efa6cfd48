// SPDX-License-Identifier: MIT

package misc

import (
	"fmt"
	"reflect"
)

// Module identifies the array backend a value belongs to.
type Module int

const (
	// Unknown is any value that is not a recognized array.
	Unknown Module = iota
	// Host is a flat numeric slice in main memory.
	Host
	// Device is an array living in accelerator memory.
	Device
	// Lazy is a deferred array that must be computed before use.
	Lazy
)

func (m Module) String() string {
	switch m {
	case Host:
		return "host"
	case Device:
		return "device"
	case Lazy:
		return "lazy"
	default:
		return "unknown"
	}
}

// DeviceArray is an array held outside main memory.
type DeviceArray interface {
	CopyToHost() ([]float64, error)
}

// LazyArray is a deferred computation producing an array.
type LazyArray interface {
	Compute() ([]float64, error)
}

// ModuleOf classifies x. Interfaces are checked before slice kinds, so a
// slice type implementing DeviceArray is reported as Device.
func ModuleOf(x any) Module {
	switch x.(type) {
	case DeviceArray:
		return Device
	case LazyArray:
		return Lazy
	}
	if isNumericSlice(x) {
		return Host
	}

	return Unknown
}

// IsDeviceArray reports whether x lives in device memory.
func IsDeviceArray(x any) bool {
	return ModuleOf(x) == Device
}

// ToHost returns the values of x as a fresh []float64.
// Lazy arrays, nested slices and non-numeric values return ErrNotArray.
func ToHost(x any) ([]float64, error) {
	switch ModuleOf(x) {
	case Device:
		out, err := x.(DeviceArray).CopyToHost()
		if err != nil {
			return nil, fmt.Errorf("misc: copy to host: %w", err)
		}
		return out, nil
	case Host:
		rv := reflect.ValueOf(x)
		out := make([]float64, rv.Len())
		for i := range out {
			out[i] = numeric(rv.Index(i))
		}
		return out, nil
	default:
		return nil, fmt.Errorf("misc: %T (%s): %w", x, ModuleOf(x), ErrNotArray)
	}
}

func isNumericSlice(x any) bool {
	if x == nil {
		return false
	}
	t := reflect.TypeOf(x)
	if t.Kind() != reflect.Slice && t.Kind() != reflect.Array {
		return false
	}
	switch t.Elem().Kind() {
	case reflect.Float32, reflect.Float64,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	default:
		return false
	}
}

// numeric reads a value already known to be of numeric kind.
func numeric(rv reflect.Value) float64 {
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint())
	default:
		return float64(rv.Int())
	}
}
