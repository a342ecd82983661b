// ABOUTME: Protobuf binary codec that checks encoded messages before decoding them
// ABOUTME: Messages with a ValidateWire method get their raw bytes inspected first

package grpctool

import (
	"fmt"

	"google.golang.org/protobuf/proto"
)

// CodecName is the content-subtype the codec answers to.
const CodecName = "proto"

// WireValidator is implemented by messages that can reject their encoded form.
type WireValidator interface {
	ValidateWire(b []byte) error
}

// Codec marshals protobuf messages in binary form. Install it with
// grpc.ForceServerCodec and grpc.ForceCodec.
type Codec struct{}

// Marshal encodes v, which must be a proto.Message.
func (Codec) Marshal(v any) ([]byte, error) {
	m, ok := v.(proto.Message)
	if !ok {
		return nil, fmt.Errorf("failed to marshal, message is %T, want proto.Message", v)
	}
	return proto.Marshal(m)
}

// Unmarshal runs ValidateWire on data when v supports it, then decodes.
func (Codec) Unmarshal(data []byte, v any) error {
	m, ok := v.(proto.Message)
	if !ok {
		return fmt.Errorf("failed to unmarshal, message is %T, want proto.Message", v)
	}
	if wv, ok := v.(WireValidator); ok {
		if err := wv.ValidateWire(data); err != nil {
			return fmt.Errorf("invalid %s: %w", m.ProtoReflect().Descriptor().FullName(), err)
		}
	}
	return proto.Unmarshal(data, m)
}

// Name returns CodecName.
func (Codec) Name() string {
	return CodecName
}
