// Package electra exposes the Electra block shapes bound to a preset:
// SSZ and JSON codecs, hash tree roots, header extraction and signing
// composition. One Codec exists per preset; containers decoded under
// one preset never interoperate with another.
package electra

import (
	"encoding/json"
	"fmt"
	"time"

	dynssz "github.com/pk910/dynamic-ssz"

	"github.com/geanlabs/beacontypes/observability/metrics"
	"github.com/geanlabs/beacontypes/preset"
	"github.com/geanlabs/beacontypes/types"
)

// Codec binds the container family to one preset's constant table. All
// methods are safe for concurrent use; the codec holds no mutable
// state after construction.
type Codec struct {
	preset *preset.Preset
	ds     *dynssz.DynSsz
}

// The process-wide codecs, one per compiled-in preset. Read-only after
// package init.
var (
	Mainnet = ForPreset(preset.Mainnet)
	Minimal = ForPreset(preset.Minimal)
	Gnosis  = ForPreset(preset.Gnosis)
)

// ForPreset builds a codec whose capacity bounds come from the given
// preset's spec table.
func ForPreset(p *preset.Preset) *Codec {
	return &Codec{
		preset: p,
		ds:     dynssz.NewDynSsz(p.Specs()),
	}
}

// ForName resolves a codec from a preset name.
func ForName(name string) (*Codec, error) {
	p, err := preset.ByName(name)
	if err != nil {
		return nil, err
	}
	switch p {
	case preset.Mainnet:
		return Mainnet, nil
	case preset.Minimal:
		return Minimal, nil
	default:
		return Gnosis, nil
	}
}

// Preset returns the bound constant table.
func (c *Codec) Preset() *preset.Preset { return c.preset }

// capacityChecked is implemented by shapes that validate their list
// lengths against a preset. The JSON decode path relies on it; the
// binary path gets the same bounds from the SSZ engine.
type capacityChecked interface {
	CheckCapacity(*preset.Preset) error
}

// jsonEnvelope is the {"data": ...} text format wrapper.
type jsonEnvelope[T any] struct {
	Data *T `json:"data"`
}

// DecodeSSZ decodes SSZ bytes into a new instance of T under the
// codec's preset. Fails with ErrMalformedBinary when the byte layout
// does not match the shape: short buffer, over-capacity list, or
// trailing unconsumed bytes. The engine validates the byte structure;
// list bounds are checked here after decoding, the same pass the JSON
// path runs.
func DecodeSSZ[T any](c *Codec, data []byte) (*T, error) {
	start := time.Now()
	v := new(T)
	if err := c.ds.UnmarshalSSZ(v, data); err != nil {
		metrics.CodecErrors.WithLabelValues("decode", "ssz").Inc()
		return nil, fmt.Errorf("%w: %v", ErrMalformedBinary, err)
	}
	if checked, ok := any(v).(capacityChecked); ok {
		if err := checked.CheckCapacity(c.preset); err != nil {
			metrics.CodecErrors.WithLabelValues("decode", "ssz").Inc()
			return nil, fmt.Errorf("%w: %v", ErrMalformedBinary, err)
		}
	}
	metrics.CodecOps.WithLabelValues("decode", "ssz").Inc()
	metrics.CodecDuration.WithLabelValues("decode", "ssz").Observe(time.Since(start).Seconds())
	return v, nil
}

// EncodeSSZ encodes an instance to SSZ bytes. Total for any instance
// reachable through the public constructors.
func EncodeSSZ[T any](c *Codec, v *T) ([]byte, error) {
	start := time.Now()
	data, err := c.ds.MarshalSSZ(v)
	if err != nil {
		metrics.CodecErrors.WithLabelValues("encode", "ssz").Inc()
		return nil, fmt.Errorf("encode ssz: %w", err)
	}
	metrics.CodecOps.WithLabelValues("encode", "ssz").Inc()
	metrics.CodecDuration.WithLabelValues("encode", "ssz").Observe(time.Since(start).Seconds())
	metrics.EncodedSizeBytes.WithLabelValues("ssz").Observe(float64(len(data)))
	return data, nil
}

// DecodeJSON decodes the {"data": ...} envelope into a new instance of
// T. Fails with ErrMalformedText on invalid syntax, a missing data key,
// mistyped fields, or list fields exceeding the preset's capacities.
func DecodeJSON[T any](c *Codec, data []byte) (*T, error) {
	var env jsonEnvelope[T]
	if err := json.Unmarshal(data, &env); err != nil {
		metrics.CodecErrors.WithLabelValues("decode", "json").Inc()
		return nil, fmt.Errorf("%w: %v", ErrMalformedText, err)
	}
	if env.Data == nil {
		metrics.CodecErrors.WithLabelValues("decode", "json").Inc()
		return nil, fmt.Errorf("%w: missing data field", ErrMalformedText)
	}
	if checked, ok := any(env.Data).(capacityChecked); ok {
		if err := checked.CheckCapacity(c.preset); err != nil {
			metrics.CodecErrors.WithLabelValues("decode", "json").Inc()
			return nil, fmt.Errorf("%w: %v", ErrMalformedText, err)
		}
	}
	metrics.CodecOps.WithLabelValues("decode", "json").Inc()
	return env.Data, nil
}

// EncodeJSON encodes an instance into the {"data": ...} envelope.
func EncodeJSON[T any](c *Codec, v *T) ([]byte, error) {
	data, err := json.Marshal(jsonEnvelope[T]{Data: v})
	if err != nil {
		metrics.CodecErrors.WithLabelValues("encode", "json").Inc()
		return nil, fmt.Errorf("encode json: %w", err)
	}
	metrics.CodecOps.WithLabelValues("encode", "json").Inc()
	metrics.EncodedSizeBytes.WithLabelValues("json").Observe(float64(len(data)))
	return data, nil
}

// HashTreeRoot computes the canonical identity of a container under
// the codec's preset. Deterministic and sensitive to every field,
// including list order.
func HashTreeRoot[T any](c *Codec, v *T) (types.Root, error) {
	root, err := c.ds.HashTreeRoot(v)
	if err != nil {
		return types.Root{}, fmt.Errorf("hash tree root: %w", err)
	}
	metrics.HashTreeRoots.Inc()
	return types.Root(root), nil
}
