package electra

import (
	"fmt"
	"sort"

	"github.com/geanlabs/beacontypes/preset"
	"github.com/geanlabs/beacontypes/types"
)

// NamedType is a dynamically typed facade over one (shape, preset)
// pair. Callers that only know a type name at runtime resolve it with
// Lookup and get the full codec surface on plain any values.
type NamedType struct {
	name  string
	codec *Codec

	decodeSSZ  func([]byte) (any, error)
	encodeSSZ  func(any) ([]byte, error)
	decodeJSON func([]byte) (any, error)
	encodeJSON func(any) ([]byte, error)
	treeRoot   func(any) (types.Root, error)
}

// Name returns the registered type name.
func (n *NamedType) Name() string { return n.name }

// Preset returns the constant table the type is bound to.
func (n *NamedType) Preset() *preset.Preset { return n.codec.Preset() }

// Codec returns the underlying preset-bound codec.
func (n *NamedType) Codec() *Codec { return n.codec }

func (n *NamedType) DecodeSSZ(data []byte) (any, error)  { return n.decodeSSZ(data) }
func (n *NamedType) EncodeSSZ(v any) ([]byte, error)     { return n.encodeSSZ(v) }
func (n *NamedType) DecodeJSON(data []byte) (any, error) { return n.decodeJSON(data) }
func (n *NamedType) EncodeJSON(v any) ([]byte, error)    { return n.encodeJSON(v) }
func (n *NamedType) HashTreeRoot(v any) (types.Root, error) {
	return n.treeRoot(v)
}

func facade[T any](name string, c *Codec) *NamedType {
	as := func(v any) (*T, error) {
		t, ok := v.(*T)
		if !ok {
			return nil, fmt.Errorf("%s: unexpected value type %T", name, v)
		}
		return t, nil
	}
	return &NamedType{
		name:  name,
		codec: c,
		decodeSSZ: func(data []byte) (any, error) {
			return DecodeSSZ[T](c, data)
		},
		encodeSSZ: func(v any) ([]byte, error) {
			t, err := as(v)
			if err != nil {
				return nil, err
			}
			return EncodeSSZ(c, t)
		},
		decodeJSON: func(data []byte) (any, error) {
			return DecodeJSON[T](c, data)
		},
		encodeJSON: func(v any) ([]byte, error) {
			t, err := as(v)
			if err != nil {
				return nil, err
			}
			return EncodeJSON(c, t)
		},
		treeRoot: func(v any) (types.Root, error) {
			t, err := as(v)
			if err != nil {
				return types.Root{}, err
			}
			return HashTreeRoot(c, t)
		},
	}
}

var registry = buildRegistry()

func buildRegistry() map[string]*NamedType {
	m := make(map[string]*NamedType)
	add := func(nt *NamedType) { m[nt.name] = nt }
	for _, pc := range []struct {
		suffix string
		codec  *Codec
	}{
		{"Mainnet", Mainnet},
		{"Minimal", Minimal},
		{"Gnosis", Gnosis},
	} {
		add(facade[types.SignedBeaconBlock]("ElectraSignedBeaconBlock"+pc.suffix, pc.codec))
		add(facade[types.BeaconBlockContents]("ElectraBeaconBlockContents"+pc.suffix, pc.codec))
		add(facade[types.SignedBeaconBlockContents]("ElectraSignedBeaconBlockContents"+pc.suffix, pc.codec))
		add(facade[types.BlindedBeaconBlock]("ElectraBlindedBeaconBlock"+pc.suffix, pc.codec))
		add(facade[types.SignedBlindedBeaconBlock]("ElectraSignedBlindedBeaconBlock"+pc.suffix, pc.codec))
	}
	return m
}

// Lookup resolves a registered type name. Names follow the pattern
// Electra<Shape><Preset>, e.g. ElectraSignedBeaconBlockMinimal.
func Lookup(name string) (*NamedType, error) {
	nt, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown type name: %q", name)
	}
	return nt, nil
}

// Names lists every registered type name in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
